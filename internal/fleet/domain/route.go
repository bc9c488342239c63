package domain

import "time"

// Route é o trajeto fixo contra o qual os cursos são validados.
// BusStops e Length não mudam; BusRides só cresce, via AppendRide.
type Route struct {
	ID       int       `json:"Id" bson:"Id"`
	BusStops []BusStop `json:"BusStops" bson:"BusStops"`
	Length   float64   `json:"Length" bson:"Length"`
	BusRides []BusRide `json:"BusRides" bson:"BusRides"`
}

// NewRoute aceita qualquer sequência de paradas, inclusive vazia ou com repetições.
func NewRoute(id int, stops []BusStop, length float64) *Route {
	return &Route{
		ID:       id,
		BusStops: cloneStops(stops),
		Length:   length,
		BusRides: []BusRide{},
	}
}

// CheckRide aplica, nesta ordem, a validação de cobertura e a de intervalo.
func (r *Route) CheckRide(stops []BusStop, start, end time.Time) error {
	if err := r.checkCoverage(stops); err != nil {
		return err
	}
	if end.Before(start) {
		return &RideIntervalError{RouteID: r.ID, Start: start, End: end}
	}
	return nil
}

// checkCoverage verifica pertinência e cardinalidade; a ordem das paradas não é conferida.
func (r *Route) checkCoverage(stops []BusStop) error {
	if len(stops) <= len(r.BusStops) && r.containsAll(stops) {
		return nil
	}
	return &RideCoverageError{
		RouteID:      r.ID,
		RouteStopIDs: busStopIDs(r.BusStops),
		RideStopIDs:  busStopIDs(stops),
	}
}

func (r *Route) containsAll(stops []BusStop) bool {
	for _, stop := range stops {
		if !r.hasStop(stop) {
			return false
		}
	}
	return true
}

func (r *Route) hasStop(stop BusStop) bool {
	for _, candidate := range r.BusStops {
		if candidate == stop {
			return true
		}
	}
	return false
}

// RideLength estima a distância de um curso proporcionalmente às paradas atendidas.
// Uma rota sem paradas produz 0.
func (r *Route) RideLength(stopCount int) float64 {
	if len(r.BusStops) == 0 {
		return 0
	}
	return r.Length * (float64(stopCount) / float64(len(r.BusStops)))
}

func (r *Route) AppendRide(ride BusRide) {
	r.BusRides = append(r.BusRides, ride)
}
