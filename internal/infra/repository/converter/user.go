package converter

import (
	"voucher-ledger/internal/domain/user"
	sqlc "voucher-ledger/internal/infra/sqlc/generated"
	"voucher-ledger/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:              u.ID(),
		Email:           u.Email().Value(),
		PasswordHash:    u.PasswordHash(),
		Name:            u.Name(),
		Role:            u.Role().String(),
		EstablishmentID: pgconv.UUIDPtrToPgtype(u.EstablishmentID()),
		IsActive:        u.IsActive(),
		CreatedAt:       pgconv.TimeToPgtype(u.CreatedAt()),
		UpdatedAt:       pgconv.TimeToPgtype(u.UpdatedAt()),
	}
}
