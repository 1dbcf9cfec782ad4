package entity

import "time"

// Customer representa un cliente (entidad de referencia, solo CRUD).
type Customer struct {
	ID        string
	Name      string
	Tags      string
	Owner     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
