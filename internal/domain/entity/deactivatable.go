package entity

// Deactivatable es la capacidad compartida de las entidades con nombre y baja
// lógica. Customer y Product la implementan por composición; nunca se borran
// filas para no romper las referencias históricas de las ventas.
type Deactivatable interface {
	EntityName() string
	IsActive() bool
	Rename(newName string) error
	Deactivate()
}
