package eventbus_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	infra_eventbus "github.com/amirasaad/ledgerdesk/infra/eventbus"
	"github.com/amirasaad/ledgerdesk/pkg/eventbus"
	"github.com/stretchr/testify/assert"
)

type pingEvent struct{ n int }

func (pingEvent) Type() string { return "Ping" }

type pongEvent struct{}

func (pongEvent) Type() string { return "Pong" }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryEventBus_DispatchesByType(t *testing.T) {
	t.Parallel()
	bus := infra_eventbus.NewWithMemory(quietLogger())

	var got []int
	bus.Register("Ping", func(_ context.Context, e eventbus.Event) error {
		got = append(got, e.(pingEvent).n)
		return nil
	})
	bus.Register("Ping", func(_ context.Context, e eventbus.Event) error {
		got = append(got, e.(pingEvent).n*10)
		return nil
	})

	assert.NoError(t, bus.Emit(context.Background(), pingEvent{n: 1}))
	assert.NoError(t, bus.Emit(context.Background(), pongEvent{}))

	assert.Equal(t, []int{1, 10}, got)
	assert.Len(t, bus.Published(), 2)

	bus.ClearPublished()
	assert.Empty(t, bus.Published())
}

func TestMemoryEventBus_HandlerFailuresAreIsolated(t *testing.T) {
	t.Parallel()
	bus := infra_eventbus.NewWithMemory(quietLogger())

	var reached bool
	bus.Register("Ping", func(context.Context, eventbus.Event) error {
		return errors.New("boom")
	})
	bus.Register("Ping", func(context.Context, eventbus.Event) error {
		panic("handler bug")
	})
	bus.Register("Ping", func(context.Context, eventbus.Event) error {
		reached = true
		return nil
	})

	assert.NoError(t, bus.Emit(context.Background(), pingEvent{}))
	assert.True(t, reached)
}
