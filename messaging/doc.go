// Package messaging is a small in-process message bus.
//
// A message is any type embedding Base, which stamps it with a random UUID:
//
//	type Greeting struct {
//		messaging.Base
//		To, Text string
//	}
//	msg := Greeting{Base: messaging.NewBase(), To: "Liz", Text: "Hello!"}
//
// Handlers are registered per concrete message type in a Registry; a Bus
// dispatches each message to every handler registered for its type, in
// registration order:
//
//	bus := messaging.NewBus(messaging.WithLogger(log))
//	messaging.Register[Greeting](bus.Registry(), handler)
//	err := bus.Handle(ctx, msg)
//
// Dispatch without handlers fails with ErrNoHandlers. Handler errors do not
// stop dispatch; they are joined and returned together.
//
// Registry and Bus are safe for concurrent use. Handlers may publish
// follow-up messages on the bus they are bound to.
package messaging
