package dto

import "time"

// CreateUserRequest entrada para crear un usuario de la plataforma.
type CreateUserRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
	ProfileID string `json:"profile_id"`
	Tags      string `json:"tags"`
}

// UpdateUserRequest actualización parcial.
type UpdateUserRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
	ProfileID *string `json:"profile_id"`
	Tags      *string `json:"tags"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	AvatarURL string    `json:"avatar_url"`
	ProfileID string    `json:"profile_id"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
