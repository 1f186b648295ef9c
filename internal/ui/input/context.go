package input

import (
	"empdir/internal/directory"
	"empdir/internal/domain"
	"empdir/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State   *state.AppState
	Session *directory.Session
}

// CurrentEmployeeID returns the id under the cursor in the focused pane
func (c *ModelContext) CurrentEmployeeID() (int, bool) {
	if c.State.Focus == state.PaneResults {
		results := c.Session.Results()
		if c.State.ResultsIndex >= 0 && c.State.ResultsIndex < len(results) {
			return results[c.State.ResultsIndex].ID, true
		}
		return 0, false
	}
	emps := c.Session.Employees()
	if c.State.DirectoryIndex >= 0 && c.State.DirectoryIndex < len(emps) {
		return emps[c.State.DirectoryIndex].ID, true
	}
	return 0, false
}

func (c *ModelContext) HasResults() bool {
	return len(c.Session.Results()) > 0
}

func (c *ModelContext) FormVisible() bool {
	return c.Session.FormVisible()
}

func (c *ModelContext) DetailVisible() bool {
	return c.Session.DetailVisible()
}

func (c *ModelContext) Draft() domain.Employee {
	return c.Session.Draft()
}

func (c *ModelContext) Query() string {
	return c.Session.Query()
}
