package shared

import (
	"shuttlebook/internal/domain/user"
	"shuttlebook/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the acting user. The handler
// layer depends on this interface so tests can swap the JWT service out.
type TokenValidator interface {
	ValidateToken(token string) (Actor, error)
}

type jwtTokenValidator struct {
	service *jwt.Service
}

func NewJWTTokenValidator(service *jwt.Service) TokenValidator {
	return &jwtTokenValidator{service: service}
}

func (v *jwtTokenValidator) ValidateToken(token string) (Actor, error) {
	claims, err := v.service.ValidateToken(token)
	if err != nil {
		return Actor{}, err
	}
	return Actor{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   user.Role(claims.Role),
	}, nil
}
