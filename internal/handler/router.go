package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"voucher-ledger/internal/domain/user"
	"voucher-ledger/internal/handler/api"
	"voucher-ledger/internal/handler/middleware"
	"voucher-ledger/internal/handler/validation"
	"voucher-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth          *api.AuthHandler
	Voucher       *api.VoucherHandler
	Tier          *api.TierHandler
	Establishment *api.EstablishmentHandler
}

func NewHandlers(auth *api.AuthHandler, voucher *api.VoucherHandler, tier *api.TierHandler, establishment *api.EstablishmentHandler) Handlers {
	return Handlers{Auth: auth, Voucher: voucher, Tier: tier, Establishment: establishment}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.WrapLogger(logger, cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := authMiddleware.RequireRole(user.RoleAdmin)
	issuers := authMiddleware.RequireRole(user.RoleAdmin, user.RoleCashier)
	redeemers := authMiddleware.RequireRole(user.RoleEstablishment)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		establishments := apiGroup.Group("/establishments")
		establishments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(establishments, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Establishment.List},
				// ownership is checked by the use case
				{Method: http.MethodGet, Path: "/:id/vouchers", Handler: h.Voucher.ListByEstablishment,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleAdmin, user.RoleEstablishment)}},
			})
		}

		tiers := apiGroup.Group("/tiers")
		tiers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tiers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Tier.List},
				{Method: http.MethodPost, Path: "/resolve", Handler: h.Tier.Resolve},
				{Method: http.MethodPost, Path: "", Handler: h.Tier.Create, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Tier.Update, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		vouchers := apiGroup.Group("/vouchers")
		vouchers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(vouchers, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Voucher.Issue, Mw: []gin.HandlerFunc{issuers}},
				{Method: http.MethodPost, Path: "/redeem", Handler: h.Voucher.Redeem, Mw: []gin.HandlerFunc{redeemers}},
				{Method: http.MethodGet, Path: "/stats", Handler: h.Voucher.Stats},
				{Method: http.MethodGet, Path: "/code/:code", Handler: h.Voucher.GetByCode},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Voucher.Get},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Voucher.Cancel, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Voucher.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		issuerGroup := apiGroup.Group("/issuers")
		issuerGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(issuerGroup, []route{
				{Method: http.MethodGet, Path: "/:id/vouchers", Handler: h.Voucher.ListByIssuer,
					Mw: []gin.HandlerFunc{issuers}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
