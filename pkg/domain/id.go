package domain

// IDGenerator produz identificadores para novas entidades.
type IDGenerator[T any] func() T

// NextID retorna 1 para uma coleção vazia e, caso contrário, o maior id existente + 1.
// O valor é sempre derivado do máximo atual, nunca de um contador.
func NextID[E any](items []E, id func(E) int) int {
	next := 1
	for _, item := range items {
		if candidate := id(item) + 1; candidate > next {
			next = candidate
		}
	}
	return next
}
