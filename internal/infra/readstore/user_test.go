//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"voucher-ledger/internal/infra"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	estID := uuid.New()
	testUser := builder.NewUserBuilder().BuildInfra()
	boundUser := builder.NewUserBuilder().
		WithEmail("posto@example.com").
		WithRole("establishment").
		WithEstablishmentID(&estID).
		BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantEstID  *uuid.UUID
		wantError  bool
	}{
		{
			name:       "success - cashier",
			email:      testUser.Email,
			mockReturn: testUser,
		},
		{
			name:       "success - establishment user keeps binding",
			email:      boundUser.Email,
			mockReturn: boundUser,
			wantEstID:  &estID,
		},
		{
			name:       "user not found",
			email:      "notfound@example.com",
			mockReturn: sqlc.Users{},
			mockError:  sql.ErrNoRows,
			wantError:  true,
		},
		{
			name:       "database error",
			email:      testUser.Email,
			mockReturn: sqlc.Users{},
			mockError:  assert.AnError,
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil, discardLogger)

			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
				if tt.mockError == sql.ErrNoRows {
					assert.True(t, infra.IsKind(err, infra.KindNotFound))
				} else {
					assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, view.Email)
				assert.Equal(t, tt.mockReturn.PasswordHash, hash)
				assert.Equal(t, tt.wantEstID, view.EstablishmentID)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn sqlc.Users
		mockError  error
		wantActive bool
		wantError  bool
	}{
		{name: "success - active user", userID: testUser.ID, mockReturn: testUser, wantActive: true},
		{name: "success - inactive user (for validation)", userID: inactiveUser.ID, mockReturn: inactiveUser},
		{name: "user not found", userID: uuid.New(), mockReturn: sqlc.Users{}, mockError: sql.ErrNoRows, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil, discardLogger)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, infra.KindNotFound))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Equal(t, tt.wantActive, view.IsActive)
				assert.Nil(t, view.LastLogin)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
