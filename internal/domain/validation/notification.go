package validation

import (
	"fmt"
	"strings"
)

// Error represents a single field-level validation error.
type Error struct {
	Field   string
	Message string
}

func (e Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewError creates a new validation error for a field
func NewError(field, message string) Error {
	return Error{Field: field, Message: message}
}

// Handler accumulates validation errors instead of failing on the first one.
type Handler interface {
	// AddError appends one error to the handler
	AddError(err error)
	// Append copies all errors from another handler
	Append(other Handler)
	// HasErrors reports whether any errors were accumulated
	HasErrors() bool
	// Errors returns the accumulated errors
	Errors() []error
}

// Notification is the default error-accumulating Handler. The zero value is
// not usable; construct it with NewNotification.
type Notification struct {
	errors []error
}

// NewNotification creates an empty notification
func NewNotification() *Notification {
	return &Notification{errors: []error{}}
}

// AddError appends one error to the notification
func (n *Notification) AddError(err error) {
	if err != nil {
		n.errors = append(n.errors, err)
	}
}

// Append copies all errors from another handler
func (n *Notification) Append(other Handler) {
	if other == nil {
		return
	}
	n.errors = append(n.errors, other.Errors()...)
}

// Check runs a block of validation logic, capturing any error it returns
// into the accumulated list instead of propagating it.
func (n *Notification) Check(fn func() error) {
	if err := fn(); err != nil {
		n.errors = append(n.errors, err)
	}
}

// HasErrors reports whether any errors were accumulated
func (n *Notification) HasErrors() bool {
	return len(n.errors) > 0
}

// Errors returns the accumulated errors
func (n *Notification) Errors() []error {
	return n.errors
}

// NotificationError surfaces all accumulated validation errors as one failure.
type NotificationError struct {
	Errs []error
}

// Error joins every accumulated error into a single message
func (e *NotificationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// NewNotificationError creates a failure carrying the full error list
func NewNotificationError(errs []error) *NotificationError {
	return &NotificationError{Errs: errs}
}
