package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/mateusmacedo/go-fleetseed/internal/fleet/domain"
)

// SynchronizedFleetRepository serializa o acesso a um FleetRepository com um único mutex.
// Usado quando os manipuladores do barramento rodam em goroutines distintas.
type SynchronizedFleetRepository struct {
	mu   sync.Mutex
	next domain.FleetRepository
}

var _ domain.FleetRepository = (*SynchronizedFleetRepository)(nil)

func NewSynchronizedFleetRepository(next domain.FleetRepository) *SynchronizedFleetRepository {
	return &SynchronizedFleetRepository{next: next}
}

func (r *SynchronizedFleetRepository) RegisterEmployee(ctx context.Context, firstName, lastName, pesel string, contract domain.Contract) (domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.RegisterEmployee(ctx, firstName, lastName, pesel, contract)
}

func (r *SynchronizedFleetRepository) RegisterBus(ctx context.Context, productionYear int, model string, tankCapacity, seatsCount int, condition string) (domain.Bus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.RegisterBus(ctx, productionYear, model, tankCapacity, seatsCount, condition)
}

func (r *SynchronizedFleetRepository) RegisterClient(ctx context.Context, firstName, lastName, email, login, password string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.RegisterClient(ctx, firstName, lastName, email, login, password)
}

func (r *SynchronizedFleetRepository) RegisterBusStop(ctx context.Context, name string, address domain.Address) (domain.BusStop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.RegisterBusStop(ctx, name, address)
}

func (r *SynchronizedFleetRepository) RegisterRoute(ctx context.Context, stops []domain.BusStop, length float64) (*domain.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.RegisterRoute(ctx, stops, length)
}

func (r *SynchronizedFleetRepository) AddRide(ctx context.Context, route *domain.Route, stops []domain.BusStop, employee domain.Employee, start, end time.Time, bus domain.Bus) (domain.BusRide, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.AddRide(ctx, route, stops, employee, start, end, bus)
}

func (r *SynchronizedFleetRepository) CreateTicket(ctx context.Context, ride domain.BusRide, basePrice, discountPercent float64, discountName string) (domain.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.CreateTicket(ctx, ride, basePrice, discountPercent, discountName)
}

func (r *SynchronizedFleetRepository) MakeTransaction(ctx context.Context, paymentMethod string, purchaseDate time.Time, tickets []domain.Ticket, status string, client *domain.Client) (domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.MakeTransaction(ctx, paymentMethod, purchaseDate, tickets, status, client)
}

func (r *SynchronizedFleetRepository) Employees() []domain.Employee {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.Employees()
}

func (r *SynchronizedFleetRepository) Buses() []domain.Bus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.Buses()
}

func (r *SynchronizedFleetRepository) Clients() []*domain.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.Clients()
}

func (r *SynchronizedFleetRepository) BusStops() []domain.BusStop {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.BusStops()
}

func (r *SynchronizedFleetRepository) Routes() []*domain.Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.Routes()
}

func (r *SynchronizedFleetRepository) Tickets() []domain.Ticket {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.Tickets()
}

func (r *SynchronizedFleetRepository) Transactions() []domain.Transaction {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next.Transactions()
}
