package domain

// Command representa uma intenção de alterar o estado da frota.
type Command[T any] interface {
	CommandName() string
	Payload() T
}

// Query representa uma leitura sem efeitos colaterais.
type Query[T any] interface {
	QueryName() string
	Payload() T
}

// Event representa algo que já aconteceu.
type Event[T any] interface {
	EventName() string
	Payload() T
}
