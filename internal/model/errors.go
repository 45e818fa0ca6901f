package model

import "fmt"

// ErrInvalidArgument is returned when a configuration field holds a value the
// simulation cannot run with. Message is optional.
type ErrInvalidArgument struct {
	Name    string      // Name of the field, e.g. "basic_training_dropout_rate"
	Value   interface{} // The rejected value
	Message string      // Why the value is invalid
}

func (err *ErrInvalidArgument) Error() string {
	if err.Message == "" {
		return fmt.Sprintf("value %v is invalid for field %q", err.Value, err.Name)
	}
	return fmt.Sprintf("value %v is invalid for field %q; %s", err.Value, err.Name, err.Message)
}
