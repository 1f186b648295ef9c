// Package directory holds the employee directory session state and the
// operations that move it from one consistent snapshot to the next.
package directory

import (
	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"empdir/internal/domain"
	"empdir/internal/eventbus"
)

// Messages shown to the user through the Dialog
const (
	MsgRequired        = "Id and Name can't be empty"
	MsgDuplicateID     = "Employee with this ID already exists! Please use some different id"
	MsgAdded           = "Your Details Added Successfully"
	MsgConfirmDelete   = "Are you sure you want to delete this employee?"
	MsgDeleted         = "Employee deleted successfully!"
	MsgNoSearchResults = "No result found"
)

// Dialog is the blocking interaction surface the session talks to.
// Confirm must not return until the user has answered.
type Dialog interface {
	Confirm(text string) bool
	Notify(text string)
}

// Renderer receives a copy of the session state after every operation
type Renderer interface {
	Render(snap Snapshot)
}

// Snapshot is a deep copy of the session state
type Snapshot struct {
	Employees     []domain.Employee
	Draft         domain.Employee
	Results       []domain.Employee
	Query         string
	Selected      *domain.Employee
	FormVisible   bool
	DetailVisible bool
}

// Option configures a Session
type Option func(*Session)

// WithRenderer sets the sink handed a snapshot after each operation
func WithRenderer(r Renderer) Option {
	return func(s *Session) { s.renderer = r }
}

// WithEventBus makes the session publish domain events on bus
func WithEventBus(bus eventbus.EventBus) Option {
	return func(s *Session) { s.bus = bus }
}

// Session owns the directory, the draft buffer, the search projection and
// the selection for one interactive session. It is not safe for concurrent
// use; drive it from a single goroutine.
type Session struct {
	employees []domain.Employee
	draft     domain.Employee
	results   []domain.Employee
	query     string
	selected  *domain.Employee

	formVisible   bool
	detailVisible bool

	dialog   Dialog
	renderer Renderer
	bus      eventbus.EventBus
	validate *validator.Validate
}

// NewSession creates a session whose directory starts as a copy of seed.
// The seed is taken as is; see the seed package for load-time checks.
func NewSession(seed []domain.Employee, dialog Dialog, opts ...Option) *Session {
	s := &Session{
		employees: append([]domain.Employee(nil), seed...),
		dialog:    dialog,
		validate:  validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends record to the directory. It fails with a *ValidationError when
// the id is zero or the name empty, and with a *DuplicateIDError when the id
// is taken; either way the state is unchanged and the user is notified.
func (s *Session) Add(record domain.Employee) error {
	logger := log.WithField("id", record.ID)

	if err := s.check(record); err != nil {
		logger.WithError(err).Debug("Add rejected")
		var dup *DuplicateIDError
		if errors.As(err, &dup) {
			s.notify(MsgDuplicateID)
		} else {
			s.notify(MsgRequired)
		}
		s.publish(domain.AddRejectedEvent{Employee: record, Reason: err.Error()})
		s.render()
		return err
	}

	s.employees = append(s.employees, record)
	s.draft = domain.Employee{}
	s.formVisible = false
	logger.WithField("count", len(s.employees)).Debug("Employee added")

	s.notify(MsgAdded)
	s.publish(domain.EmployeeAddedEvent{Employee: record})
	s.render()
	return nil
}

// Commit attempts to add the draft buffer to the directory
func (s *Session) Commit() error {
	return s.Add(s.draft)
}

func (s *Session) check(record domain.Employee) error {
	if err := s.validate.Struct(record); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return &ValidationError{Fields: fields}
		}
		return errors.Wrap(err, "validate employee")
	}
	if _, ok := s.indexOf(record.ID); ok {
		return &DuplicateIDError{ID: record.ID}
	}
	return nil
}

// Delete asks the user for confirmation and then removes the record with
// the given id. A missing id is not an error. Deleting the selected record
// closes the detail view. The search projection is left as it was.
// It reports whether a record was removed.
func (s *Session) Delete(id int) bool {
	logger := log.WithField("id", id)

	if !s.dialog.Confirm(MsgConfirmDelete) {
		logger.Debug("Delete declined")
		return false
	}

	kept := make([]domain.Employee, 0, len(s.employees))
	for _, e := range s.employees {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	found := len(kept) != len(s.employees)
	s.employees = kept

	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
		s.detailVisible = false
	}
	logger.WithField("found", found).Debug("Delete confirmed")

	s.notify(MsgDeleted)
	s.publish(domain.EmployeeDeletedEvent{ID: id, Found: found})
	s.render()
	return found
}

// OpenAddForm shows the add form. The draft is kept, so reopening the form
// shows whatever was typed before.
func (s *Session) OpenAddForm() {
	s.formVisible = true
	s.detailVisible = false
	s.render()
}

// CloseAddForm dismisses the add form and resets the draft
func (s *Session) CloseAddForm() {
	s.formVisible = false
	s.draft = domain.Employee{}
	s.render()
}

// ShowDetail selects the directory record with the given id and opens the
// detail view. Ids not in the directory are ignored.
func (s *Session) ShowDetail(id int) bool {
	i, ok := s.indexOf(id)
	if !ok {
		log.WithField("id", id).Debug("ShowDetail: id not in directory")
		return false
	}

	rec := s.employees[i]
	s.selected = &rec
	s.detailVisible = true
	s.formVisible = false

	s.publish(domain.DetailShownEvent{ID: id})
	s.render()
	return true
}

// CloseDetail hides the detail view. The selected record is retained.
func (s *Session) CloseDetail() {
	s.detailVisible = false
	s.render()
}

// Employees returns a copy of the directory in insertion order
func (s *Session) Employees() []domain.Employee {
	return append([]domain.Employee(nil), s.employees...)
}

// Len returns the number of records in the directory
func (s *Session) Len() int {
	return len(s.employees)
}

// Find returns the directory record with the given id
func (s *Session) Find(id int) (domain.Employee, bool) {
	i, ok := s.indexOf(id)
	if !ok {
		return domain.Employee{}, false
	}
	return s.employees[i], true
}

// Draft returns the draft buffer
func (s *Session) Draft() domain.Employee {
	return s.draft
}

// Results returns a copy of the search projection
func (s *Session) Results() []domain.Employee {
	return append([]domain.Employee(nil), s.results...)
}

// Query returns the pending search text
func (s *Session) Query() string {
	return s.query
}

// Selected returns the selected record, if any
func (s *Session) Selected() (domain.Employee, bool) {
	if s.selected == nil {
		return domain.Employee{}, false
	}
	return *s.selected, true
}

// FormVisible reports whether the add form is shown
func (s *Session) FormVisible() bool {
	return s.formVisible
}

// DetailVisible reports whether the detail view is shown
func (s *Session) DetailVisible() bool {
	return s.detailVisible
}

// Snapshot returns a deep copy of the whole session state
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Employees:     s.Employees(),
		Draft:         s.draft,
		Results:       s.Results(),
		Query:         s.query,
		FormVisible:   s.formVisible,
		DetailVisible: s.detailVisible,
	}
	if s.selected != nil {
		sel := *s.selected
		snap.Selected = &sel
	}
	return snap
}

// Render hands the current state to the renderer, if one is set
func (s *Session) Render() {
	s.render()
}

func (s *Session) indexOf(id int) (int, bool) {
	for i, e := range s.employees {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}

func (s *Session) notify(text string) {
	if s.dialog != nil {
		s.dialog.Notify(text)
	}
}

func (s *Session) publish(event domain.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}

func (s *Session) render() {
	if s.renderer != nil {
		s.renderer.Render(s.Snapshot())
	}
}
