package domain

import "time"

type BusRide struct {
	ID        int          `json:"Id" bson:"Id"`
	BusStops  []BusStop    `json:"BusStops" bson:"BusStops"`
	Employee  RideEmployee `json:"Employee" bson:"Employee"`
	StartTime time.Time    `json:"StartTime" bson:"StartTime"`
	EndTime   time.Time    `json:"EndTime" bson:"EndTime"`
	Length    float64      `json:"Length" bson:"Length"`
	BusID     int          `json:"BusId" bson:"BusId"`
}

// NewBusRide monta o curso já validado por Route.CheckRide.
// O funcionário é copiado e o ônibus é referenciado apenas pelo id.
func NewBusRide(id int, route *Route, stops []BusStop, employee Employee, start, end time.Time, bus Bus) BusRide {
	return BusRide{
		ID:        id,
		BusStops:  cloneStops(stops),
		Employee:  NewRideEmployee(employee),
		StartTime: start,
		EndTime:   end,
		Length:    route.RideLength(len(stops)),
		BusID:     bus.ID,
	}
}
