package application

import (
	"context"

	"github.com/mateusmacedo/go-fleetseed/internal/fleet/domain"
	"github.com/mateusmacedo/go-fleetseed/internal/fleet/export"
	"github.com/mateusmacedo/go-fleetseed/internal/fleet/seed"
	pkgApp "github.com/mateusmacedo/go-fleetseed/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-fleetseed/pkg/domain"
)

type seedFleetHandler struct {
	eventBus   pkgApp.EventBus[pkgDomain.Event[string], string]
	repository domain.FleetWriter
	logger     pkgApp.AppLogger
}

func (h *seedFleetHandler) Handle(ctx context.Context, command pkgDomain.Command[SeedFleetData]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return ctx.Err()
	}

	data := command.Payload()
	if data.RunID != "" {
		ctx = pkgApp.WithRequestID(ctx, data.RunID)
	}

	pkgApp.LogInfo(ctx, h.logger, "seeding fleet", nil)
	summary, err := seed.Populate(ctx, h.repository)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error seeding fleet", err, map[string]interface{}{"summary": summary})
		return err
	}

	event := NewFleetSeededEvent("Fleet seeded: " + summary.String())
	if err := h.eventBus.Publish(ctx, event); err != nil {
		pkgApp.LogError(ctx, h.logger, "error publishing event", err, nil)
		return err
	}

	pkgApp.LogInfo(ctx, h.logger, "fleet seeded", map[string]interface{}{"summary": summary})
	return nil
}

func NewSeedFleetHandler(eventBus pkgApp.EventBus[pkgDomain.Event[string], string], repo domain.FleetWriter, logger pkgApp.AppLogger) pkgApp.CommandHandler[pkgDomain.Command[SeedFleetData], SeedFleetData] {
	return &seedFleetHandler{
		eventBus:   eventBus,
		repository: repo,
		logger:     logger,
	}
}

type exportScriptHandler struct {
	repository domain.FleetReader
	logger     pkgApp.AppLogger
}

func (h *exportScriptHandler) Handle(ctx context.Context, query pkgDomain.Query[ExportScriptData]) (string, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return "", ctx.Err()
	}

	data := query.Payload()
	serializer, err := export.NewSerializer(data.Format)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error creating serializer", err, map[string]interface{}{"format": data.Format})
		return "", err
	}

	script, err := export.NewScriptEmitter(serializer, data.Database).Emit(h.repository)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error emitting script", err, map[string]interface{}{"database": data.Database})
		return "", err
	}

	pkgApp.LogInfo(ctx, h.logger, "script emitted", map[string]interface{}{
		"database": data.Database,
		"format":   data.Format,
		"bytes":    len(script),
	})
	return script, nil
}

func NewExportScriptHandler(repo domain.FleetReader, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[ExportScriptData], ExportScriptData, string] {
	return &exportScriptHandler{
		repository: repo,
		logger:     logger,
	}
}

type exportDocumentsHandler struct {
	repository domain.FleetReader
	logger     pkgApp.AppLogger
}

func (h *exportDocumentsHandler) Handle(ctx context.Context, query pkgDomain.Query[ExportDocumentsData]) ([]export.Document, error) {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return nil, ctx.Err()
	}

	data := query.Payload()
	serializer, err := export.NewSerializer(data.Format)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error creating serializer", err, map[string]interface{}{"format": data.Format})
		return nil, err
	}

	documents, err := export.Documents(serializer, h.repository)
	if err != nil {
		pkgApp.LogError(ctx, h.logger, "error serializing collections", err, map[string]interface{}{"format": data.Format})
		return nil, err
	}

	pkgApp.LogInfo(ctx, h.logger, "documents serialized", map[string]interface{}{
		"format":    data.Format,
		"documents": len(documents),
	})
	return documents, nil
}

func NewExportDocumentsHandler(repo domain.FleetReader, logger pkgApp.AppLogger) pkgApp.QueryHandler[pkgDomain.Query[ExportDocumentsData], ExportDocumentsData, []export.Document] {
	return &exportDocumentsHandler{
		repository: repo,
		logger:     logger,
	}
}

type fleetSeededEventHandler struct {
	logger pkgApp.AppLogger
}

func (h *fleetSeededEventHandler) Handle(ctx context.Context, event pkgDomain.Event[string]) error {
	if ctx.Err() != nil {
		pkgApp.LogError(ctx, h.logger, "context cancelled", ctx.Err(), nil)
		return ctx.Err()
	}

	pkgApp.LogInfo(ctx, h.logger, "event received", map[string]interface{}{
		"event_name": event.EventName(),
		"payload":    event.Payload(),
	})
	return nil
}

func NewFleetSeededEventHandler(logger pkgApp.AppLogger) pkgApp.EventHandler[pkgDomain.Event[string], string] {
	return &fleetSeededEventHandler{
		logger: logger,
	}
}
