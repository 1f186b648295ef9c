package types

import "empdir/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type SwitchPaneAction struct{}

func (a SwitchPaneAction) Type() string { return "switch_pane" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Directory actions
type OpenAddFormAction struct{}

func (a OpenAddFormAction) Type() string { return "open_add_form" }

type CloseAddFormAction struct{}

func (a CloseAddFormAction) Type() string { return "close_add_form" }

type SetFieldAction struct {
	Field domain.Field
	Value string
}

func (a SetFieldAction) Type() string { return "set_field" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

type ShowDetailAction struct {
	ID int
}

func (a ShowDetailAction) Type() string { return "show_detail" }

type CloseDetailAction struct{}

func (a CloseDetailAction) Type() string { return "close_detail" }

type RequestDeleteAction struct {
	ID int
}

func (a RequestDeleteAction) Type() string { return "request_delete" }

type ConfirmAction struct {
	Yes bool
}

func (a ConfirmAction) Type() string { return "confirm" }

type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

// Misc actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
