package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"empdir/internal/config"
	"empdir/internal/directory"
	"empdir/internal/ui/state"
	"empdir/internal/ui/views"
)

// ViewModel transforms session and presentation state into view-ready data
type ViewModel struct {
	state  *state.AppState
	config *config.Config
	width  int
	height int
	help   help.Model
	keys   help.KeyMap

	searchActive bool
	searchPrompt string
	searchInput  textinput.Model

	formInputs []textinput.Model
	formFocus  int
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, cfg *config.Config, keys help.KeyMap) *ViewModel {
	return &ViewModel{
		state:  appState,
		config: cfg,
		help:   help.New(),
		keys:   keys,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetShowAll switches the key hints between short and full
func (vm *ViewModel) SetShowAll(all bool) {
	vm.help.ShowAll = all
}

// SetSearchInput shows the search input, or hides it when ti is nil
func (vm *ViewModel) SetSearchInput(prompt string, ti *textinput.Model) {
	vm.searchActive = ti != nil
	vm.searchPrompt = prompt
	if ti != nil {
		vm.searchInput = *ti
	}
}

// SetForm sets the add-form inputs and the focused field
func (vm *ViewModel) SetForm(inputs []textinput.Model, focus int) {
	vm.formInputs = inputs
	vm.formFocus = focus
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(snap directory.Snapshot) views.ViewState {
	vs := views.ViewState{
		Width:          vm.width,
		Height:         vm.height,
		Employees:      snap.Employees,
		Results:        snap.Results,
		ShowResults:    vm.config == nil || vm.config.UI.ShowSearchResults,
		Focus:          vm.state.Focus,
		DirectoryIndex: vm.state.DirectoryIndex,
		ResultsIndex:   vm.state.ResultsIndex,
		ViewportOffset: vm.state.ViewportOffset,
		ViewportHeight: vm.state.ViewportHeight,
		FormVisible:    snap.FormVisible,
		FormFocus:      vm.formFocus,
		DetailVisible:  snap.DetailVisible,
		Selected:       snap.Selected,
		SearchActive:   vm.searchActive,
		SearchPrompt:   vm.searchPrompt,
		StatusMessage:  vm.state.StatusMessage,
		StatusKind:     vm.state.StatusKind,
		HelpModel:      vm.help,
		Keys:           vm.keys,
	}
	if vm.searchActive {
		vs.SearchInput = vm.searchInput.View()
	}
	if snap.FormVisible {
		vs.FormInputs = make([]string, len(vm.formInputs))
		for i, ti := range vm.formInputs {
			vs.FormInputs[i] = ti.View()
		}
	}
	if vm.state.ConfirmPending {
		vs.ConfirmText = directory.MsgConfirmDelete
	}
	return vs
}
