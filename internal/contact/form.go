// Package contact implements the contact form: field values, validation and
// the lifecycle of a submission attempt.
package contact

import (
	"errors"
	"regexp"
	"strings"
)

// Field names a contact form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldMessage Field = "message"
)

// Fields lists the form inputs in render order.
func Fields() []Field {
	return []Field{FieldName, FieldEmail, FieldMessage}
}

// ErrUnknownField is returned when updating a field the form does not have.
var ErrUnknownField = errors.New("contact: unknown field")

// Values holds the free-text inputs of the form.
type Values struct {
	Name    string
	Email   string
	Message string
}

// Get returns the value of field.
func (v Values) Get(field Field) string {
	switch field {
	case FieldName:
		return v.Name
	case FieldEmail:
		return v.Email
	case FieldMessage:
		return v.Message
	default:
		return ""
	}
}

// Set overwrites field with value.
func (v *Values) Set(field Field, value string) error {
	switch field {
	case FieldName:
		v.Name = value
	case FieldEmail:
		v.Email = value
	case FieldMessage:
		v.Message = value
	default:
		return ErrUnknownField
	}
	return nil
}

// Errors maps invalid fields to their message. Valid fields have no entry.
type Errors map[Field]string

// Has reports whether field failed validation.
func (e Errors) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks values and returns one message per invalid field.
func Validate(values Values) Errors {
	errs := Errors{}
	if strings.TrimSpace(values.Name) == "" {
		errs[FieldName] = "Name is required"
	}
	if strings.TrimSpace(values.Email) == "" {
		errs[FieldEmail] = "Email is required"
	} else if !emailPattern.MatchString(values.Email) {
		errs[FieldEmail] = "Enter a valid email"
	}
	if strings.TrimSpace(values.Message) == "" {
		errs[FieldMessage] = "Message is required"
	}
	return errs
}
