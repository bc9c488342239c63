package application

import (
	"github.com/mateusmacedo/go-fleetseed/pkg/domain"
)

const SeedFleetCommandName = "SeedFleet"

// SeedFleetData identifica a execução que popula o repositório.
type SeedFleetData struct {
	RunID string
}

type seedFleetCommand struct {
	data SeedFleetData
}

func (c seedFleetCommand) CommandName() string {
	return SeedFleetCommandName
}

func (c seedFleetCommand) Payload() SeedFleetData {
	return c.data
}

// NewSeedFleetCommand cria um novo comando para popular a frota.
func NewSeedFleetCommand(data SeedFleetData) domain.Command[SeedFleetData] {
	return seedFleetCommand{data: data}
}
