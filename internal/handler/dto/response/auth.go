package response

import (
	"shuttlebook/internal/domain/user"
	"shuttlebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromAuthResult(token string, u *user.User) *AuthResponse {
	return &AuthResponse{
		Token: token,
		User: UserResponse{
			ID:    u.ID(),
			Name:  u.Name(),
			Email: u.Email(),
			Role:  u.Role().String(),
		},
	}
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:    v.ID,
		Name:  v.Name,
		Email: v.Email,
		Role:  v.Role,
	}
}
