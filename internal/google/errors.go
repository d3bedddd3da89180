package google

import (
	"errors"
	"fmt"
)

// ErrMissingField is returned when a provider payload lacks a field the mapping needs.
var ErrMissingField = errors.New("missing required field")

// ErrMixedEventTimes is returned when one end of an event is a date and the other a date-time.
var ErrMixedEventTimes = errors.New("start and end must both be dates or both be date-times")

// MappingError reports which entity and field made a mapping fail.
type MappingError struct {
	Entity string
	Field  string
	ID     string
	Err    error
}

func (e *MappingError) Error() string {
	msg := fmt.Sprintf("%s: %s %q", e.Entity, e.Err, e.Field)
	if e.ID != "" {
		msg = fmt.Sprintf("%s %s: %s %q", e.Entity, e.ID, e.Err, e.Field)
	}
	return msg
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

func missing(entity, field, id string) error {
	return &MappingError{Entity: entity, Field: field, ID: id, Err: ErrMissingField}
}
