package request

import (
	"strings"

	"parkspot/internal/usecase/commands"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Role     string `json:"role" binding:"omitempty,oneof=user owner"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
		Name:     strings.TrimSpace(r.Name),
		Phone:    strings.TrimSpace(r.Phone),
		Role:     r.Role,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

// RefreshRequest is optional; the refresh cookie takes precedence.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
