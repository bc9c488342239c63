package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TotalPricePlaces é a precisão de Transaction.TotalPrice.
const TotalPricePlaces = 2

// Transaction guarda cópias dos bilhetes e do id/e-mail do cliente.
type Transaction struct {
	ID            int       `json:"Id" bson:"Id"`
	PaymentMethod string    `json:"PaymentMethod" bson:"PaymentMethod"`
	PurchaseDate  time.Time `json:"PurchaseDate" bson:"PurchaseDate"`
	Tickets       []Ticket  `json:"Tickets" bson:"Tickets"`
	Status        string    `json:"Status" bson:"Status"`
	ClientID      int       `json:"ClientId" bson:"ClientId"`
	ClientEmail   string    `json:"ClientEmail" bson:"ClientEmail"`
}

func NewTransaction(id int, paymentMethod string, purchaseDate time.Time, tickets []Ticket, status string, client *Client) Transaction {
	copied := make([]Ticket, len(tickets))
	for i, ticket := range tickets {
		ticket.BusRide.BusStops = cloneStops(ticket.BusRide.BusStops)
		copied[i] = ticket
	}
	return Transaction{
		ID:            id,
		PaymentMethod: paymentMethod,
		PurchaseDate:  purchaseDate,
		Tickets:       copied,
		Status:        status,
		ClientID:      client.ID,
		ClientEmail:   client.Email,
	}
}

// TotalPrice soma os preços com desconto em aritmética decimal e arredonda
// para TotalPricePlaces casas, com empate para o par. Não é armazenado.
func (t Transaction) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, ticket := range t.Tickets {
		total = total.Add(decimal.NewFromFloat(ticket.PriceAfterDiscount))
	}
	return total.RoundBank(TotalPricePlaces)
}
