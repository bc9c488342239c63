package domain

import "time"

// Contract descreve o vínculo empregatício de um funcionário.
type Contract struct {
	PositionName string    `json:"PositionName" bson:"PositionName"`
	SigningDate  time.Time `json:"SigningDate" bson:"SigningDate"`
	ExpiryDate   time.Time `json:"ExpiryDate" bson:"ExpiryDate"`
	SalaryAmount float64   `json:"SalaryAmount" bson:"SalaryAmount"`
}

type Employee struct {
	ID        int      `json:"Id" bson:"Id"`
	FirstName string   `json:"FirstName" bson:"FirstName"`
	LastName  string   `json:"LastName" bson:"LastName"`
	Pesel     string   `json:"Pesel" bson:"Pesel"`
	Contract  Contract `json:"Contract" bson:"Contract"`
}

// RideEmployee é a cópia do funcionário gravada no curso no momento da criação.
// Não acompanha alterações posteriores do Employee.
type RideEmployee struct {
	ID        int    `json:"Id" bson:"Id"`
	FirstName string `json:"FirstName" bson:"FirstName"`
	LastName  string `json:"LastName" bson:"LastName"`
}

func NewRideEmployee(employee Employee) RideEmployee {
	return RideEmployee{
		ID:        employee.ID,
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
	}
}
