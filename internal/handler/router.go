package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shuttlebook/internal/handler/api"
	"shuttlebook/internal/handler/middleware"
	"shuttlebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, authHandler *api.AuthHandler, bookingHandler *api.BookingHandler, adminHandler *api.AdminHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, adminHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authHandler *api.AuthHandler, bookingHandler *api.BookingHandler, adminHandler *api.AdminHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/meta", Handler: bookingHandler.GetMeta},
			{Method: http.MethodGet, Path: "/bookings/availability", Handler: bookingHandler.GetAvailability},
			{Method: http.MethodPost, Path: "/bookings/quote", Handler: bookingHandler.Quote},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.GetHistory},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelBooking},
			})
		}

		waitlist := apiGroup.Group("/waitlist")
		waitlist.Use(authMiddleware.RequireAuth())
		{
			addRoutes(waitlist, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.JoinWaitlist},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/courts", Handler: adminHandler.ListCourts},
				{Method: http.MethodPost, Path: "/courts", Handler: adminHandler.CreateCourt},
				{Method: http.MethodPatch, Path: "/courts/:id", Handler: adminHandler.UpdateCourt},
				{Method: http.MethodGet, Path: "/equipment", Handler: adminHandler.ListEquipment},
				{Method: http.MethodPost, Path: "/equipment", Handler: adminHandler.CreateEquipment},
				{Method: http.MethodPatch, Path: "/equipment/:id", Handler: adminHandler.UpdateEquipment},
				{Method: http.MethodGet, Path: "/coaches", Handler: adminHandler.ListCoaches},
				{Method: http.MethodPost, Path: "/coaches", Handler: adminHandler.CreateCoach},
				{Method: http.MethodPatch, Path: "/coaches/:id", Handler: adminHandler.UpdateCoach},
				{Method: http.MethodGet, Path: "/pricing-rules", Handler: adminHandler.ListPricingRules},
				{Method: http.MethodPost, Path: "/pricing-rules", Handler: adminHandler.CreatePricingRule},
				{Method: http.MethodPatch, Path: "/pricing-rules/:id", Handler: adminHandler.UpdatePricingRule},
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
