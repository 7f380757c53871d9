package shared

import (
	"voucher-ledger/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as established by the access token.
type Actor struct {
	UserID          uuid.UUID
	Name            string
	Role            user.Role
	EstablishmentID *uuid.UUID
}

// OwnsEstablishment reports whether the actor is bound to establishmentID.
func (a Actor) OwnsEstablishment(establishmentID uuid.UUID) bool {
	return a.EstablishmentID != nil && *a.EstablishmentID == establishmentID
}
