package cli

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/mateusmacedo/go-fleetseed/internal/config"
	"github.com/mateusmacedo/go-fleetseed/internal/fleet"
	"github.com/mateusmacedo/go-fleetseed/internal/fleet/application"
	"github.com/mateusmacedo/go-fleetseed/internal/fleet/export"
	"github.com/mateusmacedo/go-fleetseed/internal/fleet/infrastructure"
	pkgApp "github.com/mateusmacedo/go-fleetseed/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-fleetseed/pkg/domain"
	pkgInfra "github.com/mateusmacedo/go-fleetseed/pkg/infrastructure"
	channelsAdapter "github.com/mateusmacedo/go-fleetseed/pkg/infrastructure/channels/adapter"
	watermillLogAdapter "github.com/mateusmacedo/go-fleetseed/pkg/infrastructure/watermill/adapter"
	zapAdapter "github.com/mateusmacedo/go-fleetseed/pkg/infrastructure/zaplogger/adapter"
)

// app reúne a configuração efetiva e a fatia da frota já populada.
type app struct {
	cfg    *config.Config
	format export.Format
	logger pkgApp.AppLogger
	slice  *fleet.FleetSlice
	close  func() error
}

// bootstrap carrega a configuração, aplica as flags, monta os barramentos e
// popula o repositório. O contexto devolvido carrega o id da execução.
func bootstrap(ctx context.Context, opts *options) (context.Context, *app, error) {
	cfg, err := config.New(opts.configPath)
	if err != nil {
		return ctx, nil, err
	}
	if opts.format != "" {
		cfg.Export.Format = opts.format
	}
	if opts.database != "" {
		cfg.Export.Database = opts.database
	}
	if opts.debug {
		cfg.Log.Level = "debug"
	}

	format, err := export.ParseFormat(cfg.Export.Format)
	if err != nil {
		return ctx, nil, err
	}

	logger, err := zapAdapter.NewZapAppLogger(zapAdapter.Config{AppName: cfg.App.Name, Level: cfg.Log.Level})
	if err != nil {
		return ctx, nil, err
	}

	runID := pkgInfra.UUIDGenerator()
	ctx = pkgApp.WithRequestID(ctx, runID)

	eventBus, closeEvents := newEventBus(ctx, cfg.Events.Transport, logger)

	repository := infrastructure.NewSynchronizedFleetRepository(infrastructure.NewInMemoryFleetRepository(logger))
	slice := fleet.NewFleetSlice(
		pkgInfra.NewSimpleCommandBus[pkgDomain.Command[application.SeedFleetData], application.SeedFleetData](logger),
		pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.ExportScriptData], application.ExportScriptData, string](logger),
		pkgInfra.NewSimpleQueryBus[pkgDomain.Query[application.ExportDocumentsData], application.ExportDocumentsData, []export.Document](logger),
		eventBus,
		repository,
		logger,
	)

	if err := slice.Seed(ctx, runID); err != nil {
		_ = closeEvents()
		return ctx, nil, fmt.Errorf("seed fleet: %w", err)
	}

	return ctx, &app{cfg: cfg, format: format, logger: logger, slice: slice, close: closeEvents}, nil
}

func newEventBus(ctx context.Context, transport string, logger pkgApp.AppLogger) (fleet.FleetEventBus, func() error) {
	if transport == config.TransportGoChannel {
		pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogAdapter.NewWatermillLoggerAdapter(ctx, logger))
		return channelsAdapter.NewWatermillEventBus[pkgDomain.Event[string], string](pubSub, logger), pubSub.Close
	}
	return pkgInfra.NewSimpleEventBus[pkgDomain.Event[string], string](logger), func() error { return nil }
}
