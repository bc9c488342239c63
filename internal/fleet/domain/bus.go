package domain

type Bus struct {
	ID             int    `json:"Id" bson:"Id"`
	ProductionYear int    `json:"ProductionYear" bson:"ProductionYear"`
	Model          string `json:"Model" bson:"Model"`
	TankCapacity   int    `json:"TankCapacity" bson:"TankCapacity"`
	SeatsCount     int    `json:"SeatsCount" bson:"SeatsCount"`
	Condition      string `json:"Condition" bson:"Condition"`
}
