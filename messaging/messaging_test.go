package messaging_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/frequent/messaging"
)

type jobRequest struct {
	messaging.Base
	Target string
	Code   int
}

type chat struct {
	messaging.Base
	To, Sender, Text string
}

func newChat(to, sender, text string) chat {
	return chat{Base: messaging.NewBase(), To: to, Sender: sender, Text: text}
}

// replier answers chats addressed to Liz on the bus it is bound to.
type replier struct {
	bus *messaging.Bus

	mu   sync.Mutex
	seen []chat
}

func (r *replier) Handle(ctx context.Context, msg messaging.Message) error {
	c := msg.(chat)
	r.mu.Lock()
	r.seen = append(r.seen, c)
	r.mu.Unlock()

	if c.To == "Liz" {
		return r.bus.Handle(ctx, newChat(c.Sender, c.To, "Hi!"))
	}

	return nil
}

func TestMessage_Create(t *testing.T) {
	msg := jobRequest{Base: messaging.NewBase(), Target: "calc_func", Code: 42}

	assert.NotEqual(t, uuid.Nil, msg.MessageID())
	assert.Equal(t, uuid.Version(4), msg.MessageID().Version())
	assert.Equal(t, "calc_func", msg.Target)
	assert.Equal(t, 42, msg.Code)
	assert.NotEqual(t, msg.MessageID(), messaging.NewBase().MessageID())
}

func TestMessage_Embedded(t *testing.T) {
	msg := newChat("Liz", "Doug", "Hello!")

	assert.Equal(t, "Liz", msg.To)
	assert.Equal(t, "Doug", msg.Sender)
	assert.Equal(t, "Hello!", msg.Text)
	assert.Equal(t, msg.ID, msg.MessageID())
}

func TestBus_NoHandlers(t *testing.T) {
	bus := messaging.NewBus()
	assert.Equal(t, "Bus{registry=0}", bus.String())

	err := bus.Handle(context.Background(), newChat("Liz", "Doug", "Hi!"))
	require.ErrorIs(t, err, messaging.ErrNoHandlers)
	assert.EqualError(t, err, `messaging: no handlers found for message type "chat"`)

	assert.ErrorIs(t, bus.Handle(context.Background(), nil), messaging.ErrNilMessage)
}

type RegistrySuite struct {
	suite.Suite
	reg *messaging.Registry
}

func (s *RegistrySuite) SetupTest() { s.reg = messaging.NewRegistry() }

func (s *RegistrySuite) TestEmpty() {
	s.Equal(0, s.reg.Len())
	s.Equal("Registry{}", s.reg.String())
	s.Nil(s.reg.Get(messaging.TypeOf[chat]()))
}

func (s *RegistrySuite) TestAddGetRemove() {
	a := &replier{bus: messaging.NewBus()}
	messaging.Register[chat](s.reg, a)

	s.Equal(1, s.reg.Len())
	s.Equal([]messaging.Handler{a}, s.reg.Get(messaging.TypeOf[chat]()))
	s.Nil(s.reg.Get(messaging.TypeOf[jobRequest]()))
	s.Equal("Registry{chat: 1 handler}", s.reg.String())

	removed := s.reg.Remove(messaging.TypeOf[chat]())
	s.Require().Len(removed, 1)
	s.Same(a, removed[0])
	s.Equal(0, s.reg.Len())
}

func (s *RegistrySuite) TestMultipleHandlers() {
	a := &replier{bus: messaging.NewBus()}
	b := &replier{bus: messaging.NewBus()}
	s.reg.Add(messaging.TypeOf[chat](), b, a, nil)

	s.Equal(1, s.reg.Len())
	hs, err := s.reg.Handlers(messaging.TypeOf[chat]())
	s.Require().NoError(err)
	s.Equal([]messaging.Handler{b, a}, hs, "registration order is kept, nil skipped")
	s.Equal("Registry{chat: 2 handlers}", s.reg.String())

	s.reg.Clear()
	s.Equal(0, s.reg.Len())
	_, err = s.reg.Handlers(messaging.TypeOf[chat]())
	s.ErrorIs(err, messaging.ErrNoHandlers)
}

func (s *RegistrySuite) TestGetReturnsCopy() {
	a := &replier{}
	messaging.Register[chat](s.reg, a)

	hs := s.reg.Get(messaging.TypeOf[chat]())
	hs[0] = nil
	s.Same(a, s.reg.Get(messaging.TypeOf[chat]())[0])
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

func TestBus_DispatchAndReply(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	bus := messaging.NewBus(messaging.WithLogger(zap.New(core)))
	h := &replier{bus: bus}
	messaging.Register[chat](bus.Registry(), h)

	msg := newChat("Liz", "Doug", "Hello!")
	require.NoError(t, bus.Handle(context.Background(), msg))

	require.Len(t, h.seen, 2, "the reply is dispatched to the same handler")
	assert.Equal(t, msg.ID, h.seen[0].ID)
	assert.Equal(t, "Doug", h.seen[1].To)
	assert.Equal(t, "Hi!", h.seen[1].Text)
	assert.NotEqual(t, msg.ID, h.seen[1].ID)
	assert.Equal(t, 2, logs.FilterMessage("message dispatched").Len())
}

func TestBus_HandlerErrorsJoined(t *testing.T) {
	errA := errors.New("a failed")
	errB := errors.New("b failed")
	var ran []string

	reg := messaging.NewRegistry()
	reg.Add(messaging.TypeOf[jobRequest](),
		messaging.HandlerFunc(func(context.Context, messaging.Message) error {
			ran = append(ran, "a")
			return errA
		}),
		messaging.HandlerFunc(func(context.Context, messaging.Message) error {
			ran = append(ran, "ok")
			return nil
		}),
		messaging.HandlerFunc(func(context.Context, messaging.Message) error {
			ran = append(ran, "b")
			return errB
		}),
	)
	bus := messaging.NewBus(messaging.WithRegistry(reg), messaging.WithLogger(nil))

	err := bus.Handle(context.Background(), jobRequest{Base: messaging.NewBase()})
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Equal(t, []string{"a", "ok", "b"}, ran)
	assert.Equal(t, "Bus{registry=1}", bus.String())
}

func TestBus_PointerMessagesAreDistinctTypes(t *testing.T) {
	bus := messaging.NewBus()
	var got int
	messaging.Register[*jobRequest](bus.Registry(), messaging.HandlerFunc(
		func(context.Context, messaging.Message) error { got++; return nil },
	))

	require.NoError(t, bus.Handle(context.Background(), &jobRequest{Base: messaging.NewBase()}))
	assert.Equal(t, 1, got)

	err := bus.Handle(context.Background(), jobRequest{Base: messaging.NewBase()})
	assert.ErrorIs(t, err, messaging.ErrNoHandlers)
	assert.Equal(t, "Registry{*jobRequest: 1 handler}", bus.Registry().String())
}

func TestBus_ConcurrentDispatch(t *testing.T) {
	bus := messaging.NewBus()
	h := &replier{bus: bus}
	messaging.Register[chat](bus.Registry(), h)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, bus.Handle(context.Background(), newChat("Bob", "Ann", "ping")))
		}()
	}
	wg.Wait()

	assert.Len(t, h.seen, 16)
}
