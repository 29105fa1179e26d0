package repository

import (
	"context"

	"shuttlebook/internal/domain/user"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) error {
	_, err := dbtx.Exec(ctx, `
INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID(), u.Name(), u.Email(), u.PasswordHash(), u.Role().String(), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("inserting user", err)
	}
	return nil
}
