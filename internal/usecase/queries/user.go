package queries

import (
	"context"

	"shuttlebook/internal/infra"
	"shuttlebook/internal/infra/db"
	"shuttlebook/internal/pkg/errs"
	"shuttlebook/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewUserQueries(uow shared.UnitOfWork) UserQueries {
	return &userQueriesImpl{uow: uow}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	var view *UserView

	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		u, err := q.uow.Reads().UserByID(ctx, dbtx, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrUserNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		view = &UserView{
			ID:    u.ID(),
			Name:  u.Name(),
			Email: u.Email(),
			Role:  u.Role().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}
