package response

import (
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"
)

type AuthResponse struct {
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func FromLoginResult(r *commands.LoginResult) *AuthResponse {
	return &AuthResponse{
		UserID:       r.UserID.String(),
		Role:         r.Role.String(),
		AccessToken:  r.TokenPair.AccessToken,
		RefreshToken: r.TokenPair.RefreshToken,
	}
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Role      string  `json:"role"`
	LastLogin *int64  `json:"last_login,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

func FromUserView(v *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID.String(),
		Email:     v.Email,
		Name:      v.Name,
		Phone:     v.Phone,
		Role:      v.Role,
		LastLogin: unixOrNil(v.LastLogin),
		CreatedAt: v.CreatedAt.Unix(),
	}
}
