package components

import (
	"voucher-ledger/internal/handler"
	"voucher-ledger/internal/handler/api"
	"voucher-ledger/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewVoucherHandler,
		api.NewTierHandler,
		api.NewEstablishmentHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
