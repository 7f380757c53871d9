package queries

import (
	"context"

	"voucher-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.Kind("user not found", errs.ErrNotFound)
	ErrUserInactive = errs.Kind("user account is inactive", errs.ErrUnauthorized)
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	// FindByEmail also returns the password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}

	if !u.IsActive {
		return nil, ErrUserInactive
	}

	return u, nil
}
