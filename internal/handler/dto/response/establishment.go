package response

import (
	"voucher-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type EstablishmentResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromEstablishmentViews(views []*queries.EstablishmentView) []*EstablishmentResponse {
	res := make([]*EstablishmentResponse, len(views))
	for i, v := range views {
		res[i] = &EstablishmentResponse{ID: v.ID, Name: v.Name}
	}
	return res
}
