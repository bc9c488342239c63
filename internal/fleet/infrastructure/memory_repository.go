package infrastructure

import (
	"context"
	"slices"
	"time"

	"github.com/mateusmacedo/go-fleetseed/internal/fleet/domain"
	pkgApp "github.com/mateusmacedo/go-fleetseed/pkg/application"
	pkgDomain "github.com/mateusmacedo/go-fleetseed/pkg/domain"
)

// InMemoryFleetRepository é a implementação em memória do repositório da frota.
// Não tem trava interna: supõe um único escritor por vez (ver SynchronizedFleetRepository).
type InMemoryFleetRepository struct {
	employees    []domain.Employee
	buses        []domain.Bus
	clients      []*domain.Client
	busStops     []domain.BusStop
	routes       []*domain.Route
	tickets      []domain.Ticket
	transactions []domain.Transaction
	logger       pkgApp.AppLogger
}

var _ domain.FleetRepository = (*InMemoryFleetRepository)(nil)

func NewInMemoryFleetRepository(logger pkgApp.AppLogger) *InMemoryFleetRepository {
	return &InMemoryFleetRepository{logger: logger}
}

func (r *InMemoryFleetRepository) RegisterEmployee(ctx context.Context, firstName, lastName, pesel string, contract domain.Contract) (domain.Employee, error) {
	employee := domain.Employee{
		ID:        pkgDomain.NextID(r.employees, func(e domain.Employee) int { return e.ID }),
		FirstName: firstName,
		LastName:  lastName,
		Pesel:     pesel,
		Contract:  contract,
	}
	r.employees = append(r.employees, employee)

	pkgApp.LogDebug(ctx, r.logger, "employee registered", map[string]interface{}{"employee_id": employee.ID})
	return employee, nil
}

func (r *InMemoryFleetRepository) RegisterBus(ctx context.Context, productionYear int, model string, tankCapacity, seatsCount int, condition string) (domain.Bus, error) {
	bus := domain.Bus{
		ID:             pkgDomain.NextID(r.buses, func(b domain.Bus) int { return b.ID }),
		ProductionYear: productionYear,
		Model:          model,
		TankCapacity:   tankCapacity,
		SeatsCount:     seatsCount,
		Condition:      condition,
	}
	r.buses = append(r.buses, bus)

	pkgApp.LogDebug(ctx, r.logger, "bus registered", map[string]interface{}{"bus_id": bus.ID})
	return bus, nil
}

func (r *InMemoryFleetRepository) RegisterClient(ctx context.Context, firstName, lastName, email, login, password string) (*domain.Client, error) {
	id := pkgDomain.NextID(r.clients, func(c *domain.Client) int { return c.ID })
	client := domain.NewClient(id, firstName, lastName, email, login, password)
	r.clients = append(r.clients, client)

	pkgApp.LogDebug(ctx, r.logger, "client registered", map[string]interface{}{"client_id": client.ID})
	return client, nil
}

func (r *InMemoryFleetRepository) RegisterBusStop(ctx context.Context, name string, address domain.Address) (domain.BusStop, error) {
	busStop := domain.BusStop{
		ID:      pkgDomain.NextID(r.busStops, func(s domain.BusStop) int { return s.ID }),
		Name:    name,
		Address: address,
	}
	r.busStops = append(r.busStops, busStop)

	pkgApp.LogDebug(ctx, r.logger, "bus stop registered", map[string]interface{}{"bus_stop_id": busStop.ID})
	return busStop, nil
}

func (r *InMemoryFleetRepository) RegisterRoute(ctx context.Context, stops []domain.BusStop, length float64) (*domain.Route, error) {
	id := pkgDomain.NextID(r.routes, func(rt *domain.Route) int { return rt.ID })
	route := domain.NewRoute(id, stops, length)
	r.routes = append(r.routes, route)

	pkgApp.LogDebug(ctx, r.logger, "route registered", map[string]interface{}{
		"route_id": route.ID,
		"stops":    len(route.BusStops),
	})
	return route, nil
}

// AddRide valida o curso contra a rota e só então o anexa a route.BusRides.
// Os ids de curso são únicos entre todas as rotas.
func (r *InMemoryFleetRepository) AddRide(ctx context.Context, route *domain.Route, stops []domain.BusStop, employee domain.Employee, start, end time.Time, bus domain.Bus) (domain.BusRide, error) {
	if err := route.CheckRide(stops, start, end); err != nil {
		pkgApp.LogError(ctx, r.logger, "ride rejected", err, map[string]interface{}{"route_id": route.ID})
		return domain.BusRide{}, err
	}

	id := pkgDomain.NextID(r.allRides(), func(ride domain.BusRide) int { return ride.ID })
	ride := domain.NewBusRide(id, route, stops, employee, start, end, bus)
	route.AppendRide(ride)

	pkgApp.LogInfo(ctx, r.logger, "ride added", map[string]interface{}{
		"ride_id":  ride.ID,
		"route_id": route.ID,
		"length":   ride.Length,
	})
	return ride, nil
}

func (r *InMemoryFleetRepository) allRides() []domain.BusRide {
	var rides []domain.BusRide
	for _, route := range r.routes {
		rides = append(rides, route.BusRides...)
	}
	return rides
}

func (r *InMemoryFleetRepository) CreateTicket(ctx context.Context, ride domain.BusRide, basePrice, discountPercent float64, discountName string) (domain.Ticket, error) {
	id := pkgDomain.NextID(r.tickets, func(t domain.Ticket) int { return t.ID })
	ticket := domain.NewTicket(id, ride, basePrice, discountPercent, discountName)
	r.tickets = append(r.tickets, ticket)

	pkgApp.LogInfo(ctx, r.logger, "ticket created", map[string]interface{}{
		"ticket_id": ticket.ID,
		"ride_id":   ride.ID,
		"price":     ticket.PriceAfterDiscount,
	})
	return ticket, nil
}

func (r *InMemoryFleetRepository) MakeTransaction(ctx context.Context, paymentMethod string, purchaseDate time.Time, tickets []domain.Ticket, status string, client *domain.Client) (domain.Transaction, error) {
	id := pkgDomain.NextID(r.transactions, func(t domain.Transaction) int { return t.ID })
	transaction := domain.NewTransaction(id, paymentMethod, purchaseDate, tickets, status, client)
	client.RecordTransaction(transaction.ID)
	r.transactions = append(r.transactions, transaction)

	pkgApp.LogInfo(ctx, r.logger, "transaction made", map[string]interface{}{
		"transaction_id": transaction.ID,
		"client_id":      client.ID,
		"total_price":    transaction.TotalPrice().StringFixed(domain.TotalPricePlaces),
	})
	return transaction, nil
}

func (r *InMemoryFleetRepository) Employees() []domain.Employee {
	return slices.Clone(r.employees)
}

func (r *InMemoryFleetRepository) Buses() []domain.Bus {
	return slices.Clone(r.buses)
}

func (r *InMemoryFleetRepository) Clients() []*domain.Client {
	return slices.Clone(r.clients)
}

func (r *InMemoryFleetRepository) BusStops() []domain.BusStop {
	return slices.Clone(r.busStops)
}

func (r *InMemoryFleetRepository) Routes() []*domain.Route {
	return slices.Clone(r.routes)
}

func (r *InMemoryFleetRepository) Tickets() []domain.Ticket {
	return slices.Clone(r.tickets)
}

func (r *InMemoryFleetRepository) Transactions() []domain.Transaction {
	return slices.Clone(r.transactions)
}
