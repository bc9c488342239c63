package infrastructure

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/mateusmacedo/go-fleetseed/pkg/domain"
	zapAdapter "github.com/mateusmacedo/go-fleetseed/pkg/infrastructure/zaplogger/adapter"
)

type namedMessage struct {
	name    string
	payload string
}

func (m namedMessage) CommandName() string { return m.name }
func (m namedMessage) QueryName() string   { return m.name }
func (m namedMessage) EventName() string   { return m.name }
func (m namedMessage) Payload() string     { return m.payload }

type commandHandlerFunc func(ctx context.Context, c domain.Command[string]) error

func (f commandHandlerFunc) Handle(ctx context.Context, c domain.Command[string]) error {
	return f(ctx, c)
}

type queryHandlerFunc func(ctx context.Context, q domain.Query[string]) (int, error)

func (f queryHandlerFunc) Handle(ctx context.Context, q domain.Query[string]) (int, error) {
	return f(ctx, q)
}

type eventHandlerFunc func(ctx context.Context, e domain.Event[string]) error

func (f eventHandlerFunc) Handle(ctx context.Context, e domain.Event[string]) error { return f(ctx, e) }

func TestSimpleCommandBus(t *testing.T) {
	bus := NewSimpleCommandBus[domain.Command[string], string](zapAdapter.NewNop())

	var got string
	bus.RegisterHandler("SeedFleet", commandHandlerFunc(func(_ context.Context, c domain.Command[string]) error {
		got = c.Payload()
		return nil
	}))

	if err := bus.Dispatch(context.Background(), namedMessage{"SeedFleet", "run-1"}); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if got != "run-1" {
		t.Errorf("payload = %q, want run-1", got)
	}

	if err := bus.Dispatch(context.Background(), namedMessage{"Unknown", ""}); !errors.Is(err, ErrNoHandler) {
		t.Errorf("Dispatch() error = %v, want %v", err, ErrNoHandler)
	}
}

func TestSimpleQueryBus(t *testing.T) {
	bus := NewSimpleQueryBus[domain.Query[string], string, int](zapAdapter.NewNop())
	bus.RegisterHandler("Length", queryHandlerFunc(func(_ context.Context, q domain.Query[string]) (int, error) {
		return len(q.Payload()), nil
	}))
	bus.RegisterHandler("Broken", queryHandlerFunc(func(context.Context, domain.Query[string]) (int, error) {
		return 0, errors.New("boom")
	}))

	n, err := bus.Dispatch(context.Background(), namedMessage{"Length", "route"})
	if err != nil || n != 5 {
		t.Fatalf("Dispatch() = %d, %v; want 5, nil", n, err)
	}
	if _, err := bus.Dispatch(context.Background(), namedMessage{"Broken", ""}); err == nil {
		t.Error("expected handler error to propagate")
	}
	if _, err := bus.Dispatch(context.Background(), namedMessage{"Unknown", ""}); !errors.Is(err, ErrNoHandler) {
		t.Errorf("Dispatch() error = %v, want %v", err, ErrNoHandler)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	block := make(chan struct{})
	defer close(block)
	bus.RegisterHandler("Slow", queryHandlerFunc(func(context.Context, domain.Query[string]) (int, error) {
		<-block
		return 0, nil
	}))
	if _, err := bus.Dispatch(ctx, namedMessage{"Slow", ""}); !errors.Is(err, context.Canceled) {
		t.Errorf("Dispatch() error = %v, want context.Canceled", err)
	}
}

func TestSimpleEventBus(t *testing.T) {
	bus := NewSimpleEventBus[domain.Event[string], string](zapAdapter.NewNop())

	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		bus.RegisterHandler("FleetSeeded", eventHandlerFunc(func(context.Context, domain.Event[string]) error {
			calls.Add(1)
			return nil
		}))
	}

	if err := bus.Publish(context.Background(), namedMessage{"FleetSeeded", "done"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("handlers called %d times, want 3", calls.Load())
	}

	if err := bus.Publish(context.Background(), namedMessage{"Nobody", ""}); err != nil {
		t.Errorf("Publish() without handlers error = %v", err)
	}

	failing := errors.New("handler failed")
	bus.RegisterHandler("Fails", eventHandlerFunc(func(context.Context, domain.Event[string]) error {
		return failing
	}))
	if err := bus.Publish(context.Background(), namedMessage{"Fails", ""}); !errors.Is(err, failing) {
		t.Errorf("Publish() error = %v, want %v", err, failing)
	}
}

func TestUUIDGenerator(t *testing.T) {
	a, b := UUIDGenerator(), UUIDGenerator()
	if a == "" || a == b {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}
