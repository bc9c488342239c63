package domain

import (
	"context"
	"time"
)

// FleetWriter cria entidades. O modelo é somente de inclusão: não há update nem delete.
type FleetWriter interface {
	RegisterEmployee(ctx context.Context, firstName, lastName, pesel string, contract Contract) (Employee, error)
	RegisterBus(ctx context.Context, productionYear int, model string, tankCapacity, seatsCount int, condition string) (Bus, error)
	RegisterClient(ctx context.Context, firstName, lastName, email, login, password string) (*Client, error)
	RegisterBusStop(ctx context.Context, name string, address Address) (BusStop, error)
	RegisterRoute(ctx context.Context, stops []BusStop, length float64) (*Route, error)
	AddRide(ctx context.Context, route *Route, stops []BusStop, employee Employee, start, end time.Time, bus Bus) (BusRide, error)
	CreateTicket(ctx context.Context, ride BusRide, basePrice, discountPercent float64, discountName string) (Ticket, error)
	MakeTransaction(ctx context.Context, paymentMethod string, purchaseDate time.Time, tickets []Ticket, status string, client *Client) (Transaction, error)
}

// FleetReader devolve cada coleção completa em ordem de inclusão.
// Os slices retornados são novos; rotas e clientes continuam sendo os ponteiros do repositório.
type FleetReader interface {
	Employees() []Employee
	Buses() []Bus
	Clients() []*Client
	BusStops() []BusStop
	Routes() []*Route
	Tickets() []Ticket
	Transactions() []Transaction
}

type FleetRepository interface {
	FleetWriter
	FleetReader
}
