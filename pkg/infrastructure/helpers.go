package infrastructure

import (
	"github.com/google/uuid"

	"github.com/mateusmacedo/go-fleetseed/pkg/domain"
)

func GenerateUUID() string {
	return uuid.New().String()
}

// UUIDGenerator é o gerador padrão para ids de execução e correlação.
var UUIDGenerator domain.IDGenerator[string] = GenerateUUID
