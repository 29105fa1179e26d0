package commands

import (
	"context"

	"shuttlebook/internal/domain/user"
	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
	"shuttlebook/internal/pkg/clock"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/pkg/jwt"
	"shuttlebook/internal/pkg/password"
	"shuttlebook/internal/usecase/shared"
)

type SignupParams struct {
	Name     string
	Email    string
	Password string
}

type LoginParams struct {
	Email    string
	Password string
}

// AuthResult carries the issued token together with the account it belongs
// to, so handlers can shape a login response without a second lookup.
type AuthResult struct {
	Token string
	User  *user.User
}

type AuthCommands interface {
	Signup(ctx context.Context, params SignupParams) (*AuthResult, error)
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow      shared.UnitOfWork
	userRepo shared.UserRepository
	tokens   *jwt.Service
	clock    clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, userRepo shared.UserRepository, tokens *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{uow: uow, userRepo: userRepo, tokens: tokens, clock: clk}
}

func (c *authCommandsImpl) Signup(ctx context.Context, params SignupParams) (*AuthResult, error) {
	hash, err := password.Hash(params.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	entity, err := user.NewUser(params.Name, params.Email, hash, user.RoleMember, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := c.userRepo.Create(ctx, dbtx, entity); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrEmailTaken)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := c.tokens.GenerateToken(entity.ID(), entity.Name(), entity.Email(), entity.Role())
	if err != nil {
		return nil, errs.Wrap(err, "generating token")
	}
	return &AuthResult{Token: token, User: entity}, nil
}

func (c *authCommandsImpl) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	var entity *user.User

	err := c.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		entity, err = c.uow.Reads().UserByEmail(ctx, dbtx, params.Email)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrInvalidCredentials)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := password.Compare(entity.PasswordHash(), params.Password); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := c.tokens.GenerateToken(entity.ID(), entity.Name(), entity.Email(), entity.Role())
	if err != nil {
		return nil, errs.Wrap(err, "generating token")
	}
	return &AuthResult{Token: token, User: entity}, nil
}
