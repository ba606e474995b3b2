package components

import (
	"room-booking/internal/handler"
	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		func(cfg config.Config) config.ServerConfig { return cfg.Server },
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewHealthHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
