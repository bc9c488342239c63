package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/mateusmacedo/go-fleetseed/pkg/application"
	"github.com/mateusmacedo/go-fleetseed/pkg/domain"
	watermillLogAdapter "github.com/mateusmacedo/go-fleetseed/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mateusmacedo/go-fleetseed/pkg/infrastructure/zaplogger/adapter"
)

type seededEvent struct{ summary string }

func (e seededEvent) EventName() string { return "FleetSeeded" }
func (e seededEvent) Payload() string   { return e.summary }

type recordingHandler struct{ got []string }

func (h *recordingHandler) Handle(_ context.Context, e domain.Event[string]) error {
	h.got = append(h.got, e.Payload())
	return nil
}

func TestWatermillEventBusPublishesAndHandles(t *testing.T) {
	ctx := application.WithRequestID(context.Background(), "run-7")
	appLogger := zapAdapter.NewNop()
	pubSub := gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 1}, watermillLogAdapter.NewWatermillLoggerAdapter(ctx, appLogger))
	defer pubSub.Close()

	messages, err := pubSub.Subscribe(ctx, "FleetSeeded")
	if err != nil {
		t.Fatalf("Subscribe() error = %v", err)
	}

	bus := NewWatermillEventBus[domain.Event[string], string](pubSub, appLogger)
	handler := &recordingHandler{}
	bus.RegisterHandler("FleetSeeded", handler)

	if err := bus.Publish(ctx, seededEvent{"10 rides"}); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(handler.got) != 1 || handler.got[0] != "10 rides" {
		t.Errorf("handler received %v", handler.got)
	}

	select {
	case msg := <-messages:
		if string(msg.Payload) != `"10 rides"` {
			t.Errorf("payload = %s", msg.Payload)
		}
		if msg.Metadata.Get("requestID") != "run-7" {
			t.Errorf("requestID metadata = %q", msg.Metadata.Get("requestID"))
		}
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("message not delivered to subscriber")
	}
}
