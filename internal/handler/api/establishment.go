package api

import (
	"net/http"

	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EstablishmentHandler struct {
	q queries.EstablishmentQueries
}

func NewEstablishmentHandler(q queries.EstablishmentQueries) *EstablishmentHandler {
	return &EstablishmentHandler{q: q}
}

// @Summary List establishments
// @Tags establishments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EstablishmentResponse
// @Router /api/establishments [get]
func (h *EstablishmentHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEstablishmentViews(views))
}
