package api

import (
	"net/http"

	reqdto "voucher-ledger/internal/handler/dto/request"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TierHandler struct {
	cmds commands.TierCommands
	q    queries.TierQueries
}

func NewTierHandler(cmds commands.TierCommands, q queries.TierQueries) *TierHandler {
	return &TierHandler{cmds: cmds, q: q}
}

// @Summary List active tiers
// @Description Active tiers ordered by minimum volume, optionally for one establishment
// @Tags tiers
// @Produce json
// @Security BearerAuth
// @Param establishment_id query string false "Establishment ID"
// @Success 200 {array} resdto.TierResponse
// @Failure 400 {object} httperr.Response
// @Router /api/tiers [get]
func (h *TierHandler) List(c *gin.Context) {
	var query reqdto.ListTiersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}

	views, err := h.q.ListActive(c.Request.Context(), reqdto.OptionalUUID(query.EstablishmentID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTierViews(views))
}

// @Summary Preview eligible tier
// @Description Returns the tier a voucher for this volume would be priced with
// @Tags tiers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ResolveTierRequest true "Resolve request"
// @Success 200 {object} resdto.TierResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/tiers/resolve [post]
func (h *TierHandler) Resolve(c *gin.Context) {
	var req reqdto.ResolveTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	view, err := h.q.Resolve(c.Request.Context(), req.EstablishmentID, req.Volume)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTierView(view))
}

// @Summary Create tier
// @Tags tiers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTierRequest true "Create tier request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/tiers [post]
func (h *TierHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	id, err := h.cmds.Add(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update tier
// @Description Partial update. Vouchers already issued keep their value.
// @Tags tiers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Tier ID"
// @Param request body reqdto.UpdateTierRequest true "Update tier request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/tiers/{id} [patch]
func (h *TierHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	if err := h.cmds.Update(c.Request.Context(), actor, id, req.ToPatch()); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
