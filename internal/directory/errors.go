package directory

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

var (
	// ErrValidation marks an add attempt with a zero id or an empty name
	ErrValidation = errors.New("id and name are required")
	// ErrDuplicateID marks an add attempt reusing an id already in the directory
	ErrDuplicateID = errors.New("employee id already exists")
)

// ValidationError is returned by Add when required fields are missing
type ValidationError struct {
	Fields []string // names of the missing fields, e.g. "ID", "Name"
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// DuplicateIDError is returned by Add when the id is already taken
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s: %d", ErrDuplicateID, e.ID)
}

func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateID }
