package domain

import "strconv"

// Employee represents one directory entry
type Employee struct {
	ID      int    `toml:"id" validate:"required"`
	Name    string `toml:"name" validate:"required"`
	Age     int    `toml:"age"`
	Address string `toml:"address"`
	Email   string `toml:"email"`
	Mobile  string `toml:"mobile"`
	DOB     string `toml:"dob"`
}

// IsZero reports whether e is the empty draft form
func (e Employee) IsZero() bool {
	return e == Employee{}
}

// Field identifies one editable attribute of an Employee
type Field int

const (
	FieldID Field = iota
	FieldName
	FieldAge
	FieldAddress
	FieldEmail
	FieldMobile
	FieldDOB
)

// Fields lists every field in form order
var Fields = []Field{
	FieldID,
	FieldName,
	FieldAge,
	FieldAddress,
	FieldEmail,
	FieldMobile,
	FieldDOB,
}

// Label returns the human-readable label shown next to the field
func (f Field) Label() string {
	switch f {
	case FieldID:
		return "ID"
	case FieldName:
		return "Name"
	case FieldAge:
		return "Age"
	case FieldAddress:
		return "Address"
	case FieldEmail:
		return "Email"
	case FieldMobile:
		return "Mobile Number"
	case FieldDOB:
		return "Date of Birth"
	default:
		return ""
	}
}

// IsNumeric reports whether raw input for the field is coerced to an integer
func (f Field) IsNumeric() bool {
	return f == FieldID || f == FieldAge
}

// Value returns the field of e formatted as form text.
// Numeric fields at zero render as empty text, like an untouched input.
func (e Employee) Value(f Field) string {
	switch f {
	case FieldID:
		return intText(e.ID)
	case FieldName:
		return e.Name
	case FieldAge:
		return intText(e.Age)
	case FieldAddress:
		return e.Address
	case FieldEmail:
		return e.Email
	case FieldMobile:
		return e.Mobile
	case FieldDOB:
		return e.DOB
	default:
		return ""
	}
}

func intText(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
