package domain

// Client é mantido por ponteiro no repositório: TransactionIDs cresce a cada transação.
// Os demais campos não mudam depois do cadastro.
type Client struct {
	ID             int    `json:"Id" bson:"Id"`
	FirstName      string `json:"FirstName" bson:"FirstName"`
	LastName       string `json:"LastName" bson:"LastName"`
	Email          string `json:"Email" bson:"Email"`
	Login          string `json:"Login" bson:"Login"`
	Password       string `json:"Password" bson:"Password"`
	TransactionIDs []int  `json:"TransactionIds" bson:"TransactionIds"`
}

func NewClient(id int, firstName, lastName, email, login, password string) *Client {
	return &Client{
		ID:             id,
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		Login:          login,
		Password:       password,
		TransactionIDs: []int{},
	}
}

// RecordTransaction anexa o id ao final da lista; ids anteriores não são reordenados.
func (c *Client) RecordTransaction(id int) {
	c.TransactionIDs = append(c.TransactionIDs, id)
}
