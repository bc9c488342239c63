package domain

// Ticket carrega o curso por valor, de modo que continua autodescritivo
// mesmo sem as coleções de rotas.
type Ticket struct {
	ID                 int     `json:"Id" bson:"Id"`
	BusRide            BusRide `json:"BusRide" bson:"BusRide"`
	BasePrice          float64 `json:"BasePrice" bson:"BasePrice"`
	PriceAfterDiscount float64 `json:"PriceAfterDiscount" bson:"PriceAfterDiscount"`
	DiscountName       string  `json:"DiscountName" bson:"DiscountName"`
}

// DiscountedPrice não restringe o percentual: valores fora de [0,1] geram
// preços negativos ou maiores que o base.
func DiscountedPrice(basePrice, discountPercent float64) float64 {
	return basePrice * (1 - discountPercent)
}

func NewTicket(id int, ride BusRide, basePrice, discountPercent float64, discountName string) Ticket {
	ride.BusStops = cloneStops(ride.BusStops)
	return Ticket{
		ID:                 id,
		BusRide:            ride,
		BasePrice:          basePrice,
		PriceAfterDiscount: DiscountedPrice(basePrice, discountPercent),
		DiscountName:       discountName,
	}
}
