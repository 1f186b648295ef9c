package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSeedLoaded      EventType = "SeedLoaded"
	EventEmployeeAdded   EventType = "EmployeeAdded"
	EventAddRejected     EventType = "AddRejected"
	EventEmployeeDeleted EventType = "EmployeeDeleted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchCleared   EventType = "SearchCleared"
	EventDetailShown     EventType = "DetailShown"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SeedLoadedEvent is emitted once the session has its initial directory
type SeedLoadedEvent struct {
	Count   int
	Skipped int // seed records dropped for a duplicate id or missing name
}

func (e SeedLoadedEvent) Type() EventType { return EventSeedLoaded }

// EmployeeAddedEvent is emitted after a record is appended to the directory
type EmployeeAddedEvent struct {
	Employee Employee
}

func (e EmployeeAddedEvent) Type() EventType { return EventEmployeeAdded }

// AddRejectedEvent is emitted when an add attempt fails validation
type AddRejectedEvent struct {
	Employee Employee
	Reason   string
}

func (e AddRejectedEvent) Type() EventType { return EventAddRejected }

// EmployeeDeletedEvent is emitted after a confirmed delete.
// Found is false when no record carried the id.
type EmployeeDeletedEvent struct {
	ID    int
	Found bool
}

func (e EmployeeDeletedEvent) Type() EventType { return EventEmployeeDeleted }

// SearchCompletedEvent is emitted after every executed search
type SearchCompletedEvent struct {
	Query   string
	Matches int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchClearedEvent is emitted when the search projection is reset
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// DetailShownEvent is emitted when a record is opened in the detail view
type DetailShownEvent struct {
	ID int
}

func (e DetailShownEvent) Type() EventType { return EventDetailShown }
