package auth

import (
	"time"

	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/db/models"
	"github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/enums"
	"github.com/google/uuid"
)

// LoginRequest is the credentials payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserDTO is the account payload returned to clients. The password hash
// never leaves the service layer.
type UserDTO struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Role        enums.Role `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// LoginResult carries the minted token alongside the authenticated user.
type LoginResult struct {
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserDTO   `json:"user"`
}

// NewUserDTO builds a DTO from the persisted model.
func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Email:       user.Email,
		Role:        user.Role,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
	}
}
