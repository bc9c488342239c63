package application

import (
	"github.com/mateusmacedo/go-fleetseed/pkg/domain"
)

const FleetSeededEventName = "FleetSeeded"

type fleetSeededEvent struct {
	data string
}

func (e fleetSeededEvent) EventName() string {
	return FleetSeededEventName
}

func (e fleetSeededEvent) Payload() string {
	return e.data
}

// NewFleetSeededEvent cria o evento publicado ao fim da carga da frota.
func NewFleetSeededEvent(data string) domain.Event[string] {
	return fleetSeededEvent{data: data}
}
