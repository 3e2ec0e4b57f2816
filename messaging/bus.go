package messaging

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// ErrNilMessage is returned by Handle for a nil message.
var ErrNilMessage = errors.New("messaging: nil message")

// Bus dispatches messages to the handlers registered for their type.
type Bus struct {
	registry *Registry
	log      *zap.Logger
}

// Option configures a Bus.
type Option func(*Bus)

// WithRegistry shares an existing registry. Nil is ignored.
func WithRegistry(r *Registry) Option {
	return func(b *Bus) {
		if r != nil {
			b.registry = r
		}
	}
}

// WithLogger sets the dispatch logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bus) {
		if l != nil {
			b.log = l
		}
	}
}

// NewBus returns a bus with an empty registry and a no-op logger unless configured.
func NewBus(opts ...Option) *Bus {
	b := &Bus{log: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	if b.registry == nil {
		b.registry = NewRegistry()
	}

	return b
}

// Registry returns the bus registry.
func (b *Bus) Registry() *Registry { return b.registry }

// Handle passes msg to every handler registered for its concrete type.
// The handler list is snapshotted first, so handlers may publish on b.
//
// Errors:
//   - ErrNilMessage when msg is nil.
//   - ErrNoHandlers (wrapped) when the type has no handler; nothing runs.
//   - The joined handler errors otherwise; every handler runs.
func (b *Bus) Handle(ctx context.Context, msg Message) error {
	if msg == nil {
		return ErrNilMessage
	}
	t := reflect.TypeOf(msg)
	handlers, err := b.registry.Handlers(t)
	if err != nil {
		b.log.Debug("message dropped", zap.String("type", typeName(t)), zap.Stringer("id", msg.MessageID()))
		return err
	}

	var errs []error
	for i, h := range handlers {
		if err := h.Handle(ctx, msg); err != nil {
			b.log.Warn("handler failed",
				zap.String("type", typeName(t)),
				zap.Stringer("id", msg.MessageID()),
				zap.Int("handler", i),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("handler %d: %w", i, err))
		}
	}
	b.log.Debug("message dispatched",
		zap.String("type", typeName(t)),
		zap.Stringer("id", msg.MessageID()),
		zap.Int("handlers", len(handlers)),
	)

	return errors.Join(errs...)
}

// String reports the number of registered message types, e.g. Bus{registry=0}.
func (b *Bus) String() string {
	return fmt.Sprintf("Bus{registry=%d}", b.registry.Len())
}
