package api

import (
	"context"
	"net/http"

	reqdto "voucher-ledger/internal/handler/dto/request"
	resdto "voucher-ledger/internal/handler/dto/response"
	"voucher-ledger/internal/handler/httperr"
	"voucher-ledger/internal/handler/middleware"
	"voucher-ledger/internal/usecase/commands"
	"voucher-ledger/internal/usecase/queries"
	"voucher-ledger/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VoucherHandler struct {
	cmds commands.VoucherCommands
	q    queries.VoucherQueries
}

func NewVoucherHandler(cmds commands.VoucherCommands, q queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{cmds: cmds, q: q}
}

// @Summary Issue voucher
// @Description Issue a voucher priced by the eligible tier, a pinned tier, or a custom value
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueVoucherRequest true "Issue request"
// @Success 201 {object} resdto.VoucherResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/vouchers [post]
func (h *VoucherHandler) Issue(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.IssueVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Issue(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.VoucherID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromVoucherView(view))
}

// @Summary Redeem voucher
// @Description Redeem an issued voucher of the caller's establishment. Each voucher is redeemed at most once.
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RedeemVoucherRequest true "Redeem request"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/vouchers/redeem [post]
func (h *VoucherHandler) Redeem(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.RedeemVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}

	result, err := h.cmds.Redeem(c.Request.Context(), actor, req.Code)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.VoucherID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherView(view))
}

// @Summary Get voucher by code
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param code path string true "Voucher code"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 404 {object} httperr.Response
// @Router /api/vouchers/code/{code} [get]
func (h *VoucherHandler) GetByCode(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherView(view))
}

// @Summary Get voucher
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 200 {object} resdto.VoucherResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/vouchers/{id} [get]
func (h *VoucherHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherView(view))
}

// @Summary Voucher dashboard
// @Description Counts and summed values per status, scoped to what the caller may see
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param establishment_id query string false "Establishment filter (admin, cashier)"
// @Param issuer_id query string false "Issuer filter (admin)"
// @Success 200 {object} resdto.VoucherStatsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/vouchers/stats [get]
func (h *VoucherHandler) Stats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var query reqdto.StatsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}

	stats, err := h.q.Stats(c.Request.Context(), actor, queries.StatsFilter{
		EstablishmentID: reqdto.OptionalUUID(query.EstablishmentID),
		IssuerID:        reqdto.OptionalUUID(query.IssuerID),
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherStats(stats))
}

// @Summary Cancel voucher
// @Tags vouchers
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/vouchers/{id}/cancel [post]
func (h *VoucherHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Cancel(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete voucher
// @Description Soft-deletes a redeemed or cancelled voucher. Issued vouchers must be cancelled first.
// @Tags vouchers
// @Security BearerAuth
// @Param id path string true "Voucher ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/vouchers/{id} [delete]
func (h *VoucherHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List vouchers by issuer
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Issuer ID"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.VoucherPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/issuers/{id}/vouchers [get]
func (h *VoucherHandler) ListByIssuer(c *gin.Context) {
	h.list(c, h.q.ListByIssuer)
}

// @Summary List vouchers by establishment
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Establishment ID"
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.VoucherPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/establishments/{id}/vouchers [get]
func (h *VoucherHandler) ListByEstablishment(c *gin.Context) {
	h.list(c, h.q.ListByEstablishment)
}

type listFunc func(ctx context.Context, actor shared.Actor, id uuid.UUID, cursor *queries.Cursor, limit int) (*queries.Page[*queries.VoucherView], error)

func (h *VoucherHandler) list(c *gin.Context, fetch listFunc) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var query reqdto.ListVouchersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.BadRequest(c, err, "Invalid query")
		return
	}

	page, err := fetch(c.Request.Context(), actor, id, &queries.Cursor{After: query.After}, query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherPage(page))
}

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.CodeUnauthorized, nil, "Unauthorized", nil)
	}
	return actor, ok
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
