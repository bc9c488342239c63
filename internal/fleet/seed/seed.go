// Package seed popula um repositório com o conjunto fixo de dados de demonstração.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/mateusmacedo/go-fleetseed/internal/fleet/domain"
)

// Summary conta as entidades de cada coleção após a carga.
type Summary struct {
	Employees    int `json:"employees"`
	Buses        int `json:"buses"`
	Clients      int `json:"clients"`
	BusStops     int `json:"busStops"`
	Routes       int `json:"routes"`
	Rides        int `json:"rides"`
	Tickets      int `json:"tickets"`
	Transactions int `json:"transactions"`
}

func (s Summary) String() string {
	return fmt.Sprintf("%d employees, %d buses, %d clients, %d bus stops, %d routes, %d rides, %d tickets, %d transactions",
		s.Employees, s.Buses, s.Clients, s.BusStops, s.Routes, s.Rides, s.Tickets, s.Transactions)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

type employeeRow struct {
	firstName, lastName, pesel string
	contract                   domain.Contract
}

var employees = []employeeRow{
	{"Patryk", "Maj", "97237784563", domain.Contract{PositionName: "Kierowca", SigningDate: date(2021, 3, 13), ExpiryDate: date(2025, 3, 13), SalaryAmount: 4200}},
	{"Filip", "Lipiec", "95252452785", domain.Contract{PositionName: "Kierowca", SigningDate: date(2020, 5, 24), ExpiryDate: date(2023, 5, 24), SalaryAmount: 4300}},
	{"Dawid", "Dudek", "93134574891", domain.Contract{PositionName: "Administrator", SigningDate: date(2018, 1, 1), ExpiryDate: date(2028, 1, 1), SalaryAmount: 5500}},
	{"Kamil", "Goch", "91114790263", domain.Contract{PositionName: "Mechanik", SigningDate: date(2020, 5, 12), ExpiryDate: date(2024, 5, 12), SalaryAmount: 3800}},
	{"Kinga", "Kowalska", "00278934594", domain.Contract{PositionName: "Księgowa", SigningDate: date(2018, 3, 18), ExpiryDate: date(2023, 3, 18), SalaryAmount: 4000}},
}

var buses = []domain.Bus{
	{ProductionYear: 1998, Model: "Mercedes", TankCapacity: 240, SeatsCount: 55, Condition: "Niesprawny"},
	{ProductionYear: 2004, Model: "MAN", TankCapacity: 300, SeatsCount: 65, Condition: "Sprawny"},
	{ProductionYear: 2002, Model: "Iveco", TankCapacity: 280, SeatsCount: 60, Condition: "Niesprawny"},
	{ProductionYear: 2010, Model: "Mercedes", TankCapacity: 350, SeatsCount: 70, Condition: "Sprawny"},
	{ProductionYear: 2018, Model: "Scania", TankCapacity: 180, SeatsCount: 50, Condition: "Sprawny"},
}

var clients = []domain.Client{
	{FirstName: "Andrzej", LastName: "Kowalski", Email: "andrzejoK123@gmail.com", Login: "AK123", Password: "haslo321"},
	{FirstName: "Marta", LastName: "Nowak", Email: "mnowak@gmail.com", Login: "martaaa", Password: "qwerty.1"},
	{FirstName: "Zbigniew", LastName: "Wodecki", Email: "zbigoAmigo@wp.pl", Login: "zibi3", Password: "pass00"},
	{FirstName: "Katarzyna", LastName: "Babicka", Email: "babik123@wp.pl", Login: "kaba2", Password: "zaqzaq123"},
	{FirstName: "Andrzej", LastName: "Król", Email: "andrzejkrol@gmail.com", Login: "andrzejK", Password: "andrzejo320"},
}

var busStops = []domain.BusStop{
	{Name: "Lubelska 1", Address: domain.Address{StreetName: "Lubelska", City: "Puławy", ZipCode: "24-100"}},
	{Name: "Ruska 2", Address: domain.Address{StreetName: "Ruska", City: "Lublin", ZipCode: "20-126"}},
	{Name: "Słoneczna 2", Address: domain.Address{StreetName: "Słoneczna", City: "Warszawa", ZipCode: "00-789"}},
	{Name: "Piłsudskiego 1", Address: domain.Address{StreetName: "Piłsudskiego", City: "Bychawa", ZipCode: "23-100"}},
	{Name: "Sienkiewicza 1", Address: domain.Address{StreetName: "Sienkiewicza", City: "Kielce", ZipCode: "25-501"}},
}

// Índices (base zero) em busStops e comprimento de cada rota.
var routes = []struct {
	stops  []int
	length float64
}{
	{[]int{0, 1, 2}, 56},
	{[]int{1, 2, 3}, 77},
	{[]int{4, 3, 2, 0}, 241},
	{[]int{2, 1}, 43},
	{[]int{0, 4, 3, 2, 1}, 556},
}

// Cada curso cobre todas as paradas da sua rota.
var rides = []struct {
	route, employee, bus int
	start, end           time.Time
}{
	{0, 0, 0, at(2021, 2, 2, 15, 5), at(2021, 2, 2, 16, 0)},
	{0, 1, 1, at(2021, 2, 3, 16, 5), at(2021, 2, 3, 17, 0)},
	{1, 2, 2, at(2021, 2, 4, 17, 5), at(2021, 2, 4, 18, 0)},
	{1, 3, 3, at(2021, 2, 5, 18, 5), at(2021, 2, 5, 19, 0)},
	{2, 4, 4, at(2021, 2, 6, 19, 5), at(2021, 2, 6, 20, 0)},
	{2, 0, 0, at(2021, 2, 7, 20, 5), at(2021, 2, 7, 21, 0)},
	{3, 1, 1, at(2021, 2, 8, 21, 5), at(2021, 2, 8, 22, 0)},
	{3, 2, 2, at(2021, 2, 9, 22, 5), at(2021, 2, 9, 23, 0)},
	{4, 3, 3, at(2021, 2, 10, 23, 5), at(2021, 2, 11, 0, 0)},
	{4, 4, 4, at(2021, 2, 12, 0, 5), at(2021, 2, 12, 1, 0)},
}

var tickets = []struct {
	ride            int
	basePrice       float64
	discountPercent float64
	discountName    string
}{
	{0, 300, .51, "Ulga studencka (51%)"},
	{0, 300, .49, "Ulga uczniowska (49%)"},
	{1, 150, .78, "Ulga dziecko niepełnosprawne (78%)"},
	{2, 90, .37, "Ulga kombatanta (37%)"},
	{3, 200, .33, "Ulga nauczyciela (33%)"},
	{4, 200, .51, "Ulga studencka (51%)"},
}

var transactions = []struct {
	paymentMethod string
	purchaseDate  time.Time
	tickets       []int
	status        string
	client        int
}{
	{"Karta kredytowa", date(2021, 2, 3), []int{0}, "Zrealizowane", 0},
	{"Gotówka", date(2022, 3, 14), []int{3}, "Zrealizowane", 1},
	{"Blik", date(2022, 2, 14), []int{1}, "Odmowa", 2},
	{"Karta kredytowa", date(2022, 1, 12), []int{2}, "Zwrócono", 3},
	{"Blik", date(2022, 2, 16), []int{4, 5}, "Zrealizowane", 4},
}

// Populate cria as entidades na ordem de dependência e para no primeiro erro.
func Populate(ctx context.Context, repo domain.FleetWriter) (Summary, error) {
	var summary Summary

	registeredEmployees := make([]domain.Employee, 0, len(employees))
	for _, e := range employees {
		employee, err := repo.RegisterEmployee(ctx, e.firstName, e.lastName, e.pesel, e.contract)
		if err != nil {
			return summary, fmt.Errorf("register employee %s %s: %w", e.firstName, e.lastName, err)
		}
		registeredEmployees = append(registeredEmployees, employee)
	}
	summary.Employees = len(registeredEmployees)

	registeredBuses := make([]domain.Bus, 0, len(buses))
	for _, b := range buses {
		bus, err := repo.RegisterBus(ctx, b.ProductionYear, b.Model, b.TankCapacity, b.SeatsCount, b.Condition)
		if err != nil {
			return summary, fmt.Errorf("register bus %s: %w", b.Model, err)
		}
		registeredBuses = append(registeredBuses, bus)
	}
	summary.Buses = len(registeredBuses)

	registeredClients := make([]*domain.Client, 0, len(clients))
	for _, c := range clients {
		client, err := repo.RegisterClient(ctx, c.FirstName, c.LastName, c.Email, c.Login, c.Password)
		if err != nil {
			return summary, fmt.Errorf("register client %s: %w", c.Login, err)
		}
		registeredClients = append(registeredClients, client)
	}
	summary.Clients = len(registeredClients)

	registeredStops := make([]domain.BusStop, 0, len(busStops))
	for _, s := range busStops {
		stop, err := repo.RegisterBusStop(ctx, s.Name, s.Address)
		if err != nil {
			return summary, fmt.Errorf("register bus stop %s: %w", s.Name, err)
		}
		registeredStops = append(registeredStops, stop)
	}
	summary.BusStops = len(registeredStops)

	registeredRoutes := make([]*domain.Route, 0, len(routes))
	for _, r := range routes {
		route, err := repo.RegisterRoute(ctx, pick(registeredStops, r.stops), r.length)
		if err != nil {
			return summary, fmt.Errorf("register route: %w", err)
		}
		registeredRoutes = append(registeredRoutes, route)
	}
	summary.Routes = len(registeredRoutes)

	registeredRides := make([]domain.BusRide, 0, len(rides))
	for _, r := range rides {
		route := registeredRoutes[r.route]
		ride, err := repo.AddRide(ctx, route, route.BusStops, registeredEmployees[r.employee], r.start, r.end, registeredBuses[r.bus])
		if err != nil {
			return summary, fmt.Errorf("add ride to route %d: %w", route.ID, err)
		}
		registeredRides = append(registeredRides, ride)
	}
	summary.Rides = len(registeredRides)

	registeredTickets := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		ticket, err := repo.CreateTicket(ctx, registeredRides[t.ride], t.basePrice, t.discountPercent, t.discountName)
		if err != nil {
			return summary, fmt.Errorf("create ticket: %w", err)
		}
		registeredTickets = append(registeredTickets, ticket)
	}
	summary.Tickets = len(registeredTickets)

	for _, t := range transactions {
		client := registeredClients[t.client]
		if _, err := repo.MakeTransaction(ctx, t.paymentMethod, t.purchaseDate, pick(registeredTickets, t.tickets), t.status, client); err != nil {
			return summary, fmt.Errorf("make transaction for client %d: %w", client.ID, err)
		}
		summary.Transactions++
	}

	return summary, nil
}

func pick[T any](items []T, indexes []int) []T {
	out := make([]T, len(indexes))
	for i, idx := range indexes {
		out[i] = items[idx]
	}
	return out
}
