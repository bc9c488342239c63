package fleet

import (
	"context"

	"github.com/mateusmacedo/go-fleetseed/internal/fleet/application"
	"github.com/mateusmacedo/go-fleetseed/internal/fleet/domain"
	"github.com/mateusmacedo/go-fleetseed/internal/fleet/export"
	pkgApp "github.com/mateusmacedo/go-fleetseed/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-fleetseed/pkg/domain"
)

type (
	SeedCommandBus    = pkgApp.CommandBus[pkgDomain.Command[application.SeedFleetData], application.SeedFleetData]
	ScriptQueryBus    = pkgApp.QueryBus[pkgDomain.Query[application.ExportScriptData], application.ExportScriptData, string]
	DocumentsQueryBus = pkgApp.QueryBus[pkgDomain.Query[application.ExportDocumentsData], application.ExportDocumentsData, []export.Document]
	FleetEventBus     = pkgApp.EventBus[pkgDomain.Event[string], string]
)

// FleetSlice registra os manipuladores da frota nos barramentos e expõe
// as operações usadas pela CLI.
type FleetSlice struct {
	commandBus   SeedCommandBus
	scriptBus    ScriptQueryBus
	documentsBus DocumentsQueryBus
}

func NewFleetSlice(
	commandBus SeedCommandBus,
	scriptBus ScriptQueryBus,
	documentsBus DocumentsQueryBus,
	eventBus FleetEventBus,
	repository domain.FleetRepository,
	logger pkgApp.AppLogger,
) *FleetSlice {
	commandBus.RegisterHandler(application.SeedFleetCommandName, application.NewSeedFleetHandler(eventBus, repository, logger))
	scriptBus.RegisterHandler(application.ExportScriptQueryName, application.NewExportScriptHandler(repository, logger))
	documentsBus.RegisterHandler(application.ExportDocumentsQueryName, application.NewExportDocumentsHandler(repository, logger))
	eventBus.RegisterHandler(application.FleetSeededEventName, application.NewFleetSeededEventHandler(logger))

	return &FleetSlice{
		commandBus:   commandBus,
		scriptBus:    scriptBus,
		documentsBus: documentsBus,
	}
}

func (s *FleetSlice) Seed(ctx context.Context, runID string) error {
	return s.commandBus.Dispatch(ctx, application.NewSeedFleetCommand(application.SeedFleetData{RunID: runID}))
}

func (s *FleetSlice) Script(ctx context.Context, database string, format export.Format) (string, error) {
	return s.scriptBus.Dispatch(ctx, application.NewExportScriptQuery(application.ExportScriptData{
		Database: database,
		Format:   format,
	}))
}

func (s *FleetSlice) Documents(ctx context.Context, format export.Format) ([]export.Document, error) {
	return s.documentsBus.Dispatch(ctx, application.NewExportDocumentsQuery(application.ExportDocumentsData{Format: format}))
}
