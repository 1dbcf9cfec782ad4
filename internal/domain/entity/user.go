package entity

import "time"

// Roles reconocidos en el token.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// User representa un usuario de la plataforma; es el autor de los movimientos.
type User struct {
	ID        string
	Name      string
	FirstName string
	LastName  string
	AvatarURL string
	ProfileID string
	Tags      string
	Owner     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
