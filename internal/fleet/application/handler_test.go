package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mateusmacedo/go-fleetseed/internal/fleet/export"
	"github.com/mateusmacedo/go-fleetseed/internal/fleet/infrastructure"
	pkgApp "github.com/mateusmacedo/go-fleetseed/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-fleetseed/pkg/domain"
	zapAdapter "github.com/mateusmacedo/go-fleetseed/pkg/infrastructure/zaplogger/adapter"
)

type recordingEventBus struct {
	events []pkgDomain.Event[string]
	err    error
}

func (b *recordingEventBus) RegisterHandler(string, pkgApp.EventHandler[pkgDomain.Event[string], string]) {
}

func (b *recordingEventBus) Publish(_ context.Context, event pkgDomain.Event[string]) error {
	b.events = append(b.events, event)
	return b.err
}

func TestSeedFleetHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zapAdapter.NewFromZap(zap.New(core))
	repo := infrastructure.NewInMemoryFleetRepository(logger)
	bus := &recordingEventBus{}

	handler := NewSeedFleetHandler(bus, repo, logger)
	if err := handler.Handle(context.Background(), NewSeedFleetCommand(SeedFleetData{RunID: "run-1"})); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if got := len(repo.Transactions()); got != 5 {
		t.Errorf("transactions = %d, want 5", got)
	}
	if len(bus.events) != 1 {
		t.Fatalf("published %d events, want 1", len(bus.events))
	}
	if name := bus.events[0].EventName(); name != FleetSeededEventName {
		t.Errorf("event name = %q", name)
	}
	if payload := bus.events[0].Payload(); !strings.Contains(payload, "10 rides") {
		t.Errorf("payload = %q", payload)
	}

	seeded := logs.FilterMessage("fleet seeded").All()
	if len(seeded) != 1 {
		t.Fatalf("got %d 'fleet seeded' entries", len(seeded))
	}
	if got := seeded[0].ContextMap()[string(pkgApp.RequestIDKey)]; got != "run-1" {
		t.Errorf("requestID = %v, want run-1", got)
	}
}

func TestSeedFleetHandlerPublishError(t *testing.T) {
	logger := zapAdapter.NewNop()
	errPublish := errors.New("publish failed")
	bus := &recordingEventBus{err: errPublish}

	handler := NewSeedFleetHandler(bus, infrastructure.NewInMemoryFleetRepository(logger), logger)
	err := handler.Handle(context.Background(), NewSeedFleetCommand(SeedFleetData{}))
	if !errors.Is(err, errPublish) {
		t.Fatalf("Handle() error = %v, want %v", err, errPublish)
	}
}

func TestSeedFleetHandlerCancelledContext(t *testing.T) {
	logger := zapAdapter.NewNop()
	repo := infrastructure.NewInMemoryFleetRepository(logger)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSeedFleetHandler(&recordingEventBus{}, repo, logger).Handle(ctx, NewSeedFleetCommand(SeedFleetData{}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Handle() error = %v, want context.Canceled", err)
	}
	if len(repo.Employees()) != 0 {
		t.Error("repository was populated after cancellation")
	}
}

func seededRepository(t *testing.T) *infrastructure.InMemoryFleetRepository {
	t.Helper()
	logger := zapAdapter.NewNop()
	repo := infrastructure.NewInMemoryFleetRepository(logger)
	if err := NewSeedFleetHandler(&recordingEventBus{}, repo, logger).Handle(context.Background(), NewSeedFleetCommand(SeedFleetData{})); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return repo
}

func TestExportScriptHandler(t *testing.T) {
	repo := seededRepository(t)
	handler := NewExportScriptHandler(repo, zapAdapter.NewNop())

	tests := []struct {
		name    string
		data    ExportScriptData
		want    string
		wantErr bool
	}{
		{name: "json", data: ExportScriptData{Database: "fleet", Format: export.FormatJSON}, want: "db.Employees.insertMany([\n"},
		{name: "extjson", data: ExportScriptData{Database: "fleet", Format: export.FormatExtJSON}, want: "db.Employees.insertMany(EJSON.parse("},
		{name: "unknown format", data: ExportScriptData{Database: "fleet", Format: "xml"}, wantErr: true},
		{name: "missing database", data: ExportScriptData{Format: export.FormatJSON}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := handler.Handle(context.Background(), NewExportScriptQuery(tt.data))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Handle() error = %v", err)
			}
			if !strings.HasPrefix(script, "use fleet\n") {
				t.Errorf("script does not select the database: %.40q", script)
			}
			if !strings.Contains(script, tt.want) {
				t.Errorf("script missing %q", tt.want)
			}
		})
	}
}

func TestExportDocumentsHandler(t *testing.T) {
	repo := seededRepository(t)
	handler := NewExportDocumentsHandler(repo, zapAdapter.NewNop())

	documents, err := handler.Handle(context.Background(), NewExportDocumentsQuery(ExportDocumentsData{Format: export.FormatJSON}))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	var names []string
	for _, doc := range documents {
		names = append(names, doc.Name)
	}
	want := "Employees,Buses,Clients,Routes,Tickets,BusStops,Transactions"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("documents = %s, want %s", got, want)
	}
}

func TestFleetSeededEventHandler(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := NewFleetSeededEventHandler(zapAdapter.NewFromZap(zap.New(core)))

	if err := handler.Handle(context.Background(), NewFleetSeededEvent("done")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	entries := logs.FilterMessage("event received").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	if got := entries[0].ContextMap()["payload"]; got != "done" {
		t.Errorf("payload = %v", got)
	}
}
