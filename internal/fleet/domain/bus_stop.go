package domain

type Address struct {
	StreetName string `json:"StreetName" bson:"StreetName"`
	City       string `json:"City" bson:"City"`
	ZipCode    string `json:"ZipCode" bson:"ZipCode"`
}

// BusStop é comparável por valor; duas paradas são a mesma quando todos os campos coincidem.
type BusStop struct {
	ID      int     `json:"Id" bson:"Id"`
	Name    string  `json:"Name" bson:"Name"`
	Address Address `json:"Address" bson:"Address"`
}

func busStopIDs(stops []BusStop) []int {
	ids := make([]int, len(stops))
	for i, stop := range stops {
		ids[i] = stop.ID
	}
	return ids
}

func cloneStops(stops []BusStop) []BusStop {
	return append(make([]BusStop, 0, len(stops)), stops...)
}
