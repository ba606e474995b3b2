package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"room-booking/internal/domain/user"
	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"
	"room-booking/internal/infra/metrics"
	"room-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Room    *api.RoomHandler
	Health  *api.HealthHandler
}

func NewHandlers(auth *api.AuthHandler, booking *api.BookingHandler, room *api.RoomHandler, health *api.HealthHandler) Handlers {
	return Handlers{Auth: auth, Booking: booking, Room: room, Health: health}
}

// NewRouter accepts a nil Redis client; rate limiting is then disabled.
func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rdb *redis.Client) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware, middleware.NewRateLimiter(cfg.Redis, rdb))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics())
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit gin.HandlerFunc) {
	engine.GET("/health", h.Health.Check)
	engine.Static(cfg.Server.PublicUploadPath, cfg.Server.UploadDir)

	if cfg.Metrics.Enabled {
		metrics.Register()
		engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAdmin := authMiddleware.RequireRole(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPost, Path: "/admins", Handler: h.Auth.RegisterAdmin, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/availability", Handler: h.Booking.CheckAvailability},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Booking.Update, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodPatch, Path: "/:id/cancel", Handler: h.Booking.Cancel, Mw: []gin.HandlerFunc{rateLimit}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Delete, Mw: []gin.HandlerFunc{requireAdmin}},
			})
		}

		rooms := apiGroup.Group("/rooms")
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodGet, Path: "/open", Handler: h.Room.ListOpen},
				{Method: http.MethodGet, Path: "/:roomNumber", Handler: h.Room.Get},
			})

			authRequired := rooms.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/:roomNumber/bookings", Handler: h.Booking.ListByRoom},
			})

			admin := rooms.Group("")
			admin.Use(authMiddleware.RequireAuth(), requireAdmin)
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create},
				{Method: http.MethodPut, Path: "/:roomNumber", Handler: h.Room.Update},
				{Method: http.MethodPut, Path: "/:roomNumber/open", Handler: h.Room.Open},
				{Method: http.MethodPut, Path: "/:roomNumber/close", Handler: h.Room.Close},
				{Method: http.MethodDelete, Path: "/:roomNumber", Handler: h.Room.Delete},
			})
		}
	}
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
