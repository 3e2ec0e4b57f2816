package messaging

import (
	"reflect"

	"github.com/google/uuid"
)

// Message is implemented by every type the bus can dispatch.
type Message interface {
	MessageID() uuid.UUID
}

// Base carries the identity shared by all messages. Embed it by value.
type Base struct {
	ID uuid.UUID
}

// NewBase returns a Base with a fresh random ID.
func NewBase() Base { return Base{ID: uuid.New()} }

// MessageID returns the message identifier.
func (b Base) MessageID() uuid.UUID { return b.ID }

// TypeOf returns the registry key of message type M.
func TypeOf[M Message]() reflect.Type { return reflect.TypeFor[M]() }

// typeName renders a registry key without its package path, e.g. "Greeting" or "*Greeting".
func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return "*" + typeName(t.Elem())
	}
	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}
