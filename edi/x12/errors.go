package x12

import "fmt"

// MissingFieldError reports a required entity field absent when an add
// operation was invoked.
type MissingFieldError struct {
	Entity string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: required field %s is missing", e.Entity, e.Field)
}

// InvalidValueError reports an enumerated code that does not match any
// known value in its code set.
type InvalidValueError struct {
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Field)
}

// DanglingReferenceError reports an index that references an entity
// never registered with the store. Detected at build time.
type DanglingReferenceError struct {
	Kind  string
	Index int
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s index %d does not reference a registered record", e.Kind, e.Index)
}
