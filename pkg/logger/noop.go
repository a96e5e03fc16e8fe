package logger

import (
	"github.com/coralstream/catalog/pkg/interfaces"
)

// NoopLogger is a logger that does nothing.
type NoopLogger struct{}

// NewNoop creates a new no-op logger.
func NewNoop() interfaces.Logger {
	return &NoopLogger{}
}

// NewNoopLogger creates a new no-op logger (alias for NewNoop).
func NewNoopLogger() interfaces.Logger {
	return NewNoop()
}

// Debug does nothing.
func (n *NoopLogger) Debug(msg string, fields ...interfaces.Field) {}

// Info does nothing.
func (n *NoopLogger) Info(msg string, fields ...interfaces.Field) {}

// Warn does nothing.
func (n *NoopLogger) Warn(msg string, fields ...interfaces.Field) {}

// Error does nothing.
func (n *NoopLogger) Error(msg string, fields ...interfaces.Field) {}

// WithFields returns the same logger.
func (n *NoopLogger) WithFields(fields ...interfaces.Field) interfaces.Logger {
	return n
}
