package export

import (
	"github.com/mateusmacedo/go-fleetseed/internal/fleet/domain"
)

// Nomes das coleções no banco de destino.
const (
	EmployeesCollection    = "Employees"
	BusesCollection        = "Buses"
	ClientsCollection      = "Clients"
	RoutesCollection       = "Routes"
	TicketsCollection      = "Tickets"
	BusStopsCollection     = "BusStops"
	TransactionsCollection = "Transactions"
)

// Collection é uma coleção do repositório pronta para serialização.
type Collection struct {
	Name  string
	Items interface{}
}

// Document é uma coleção já serializada.
type Document struct {
	Name   string `json:"name"`
	Format Format `json:"format"`
	Body   []byte `json:"-"`
}

// Collections lê o repositório e devolve as coleções na ordem de carga:
// employees, buses, clients, routes, tickets, bus stops, transactions.
func Collections(reader domain.FleetReader) []Collection {
	return []Collection{
		{Name: EmployeesCollection, Items: nonNil(reader.Employees())},
		{Name: BusesCollection, Items: nonNil(reader.Buses())},
		{Name: ClientsCollection, Items: nonNil(reader.Clients())},
		{Name: RoutesCollection, Items: nonNil(reader.Routes())},
		{Name: TicketsCollection, Items: nonNil(reader.Tickets())},
		{Name: BusStopsCollection, Items: nonNil(reader.BusStops())},
		{Name: TransactionsCollection, Items: nonNil(reader.Transactions())},
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
