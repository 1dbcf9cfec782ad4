package entity

import "time"

// Supplier representa un proveedor referenciado desde Product.Supplier.
type Supplier struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Tags        string
	Owner       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
