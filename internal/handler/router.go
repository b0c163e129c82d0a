package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"fleetdesk/internal/domain/user"
	"fleetdesk/internal/handler/api"
	"fleetdesk/internal/handler/middleware"
	"fleetdesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine       *gin.Engine
	Config       config.Config
	Logger       *middleware.Logger
	Auth         *middleware.AuthMiddleware
	Catalog      *api.CatalogHandler
	Availability *api.AvailabilityHandler
	Reservations *api.ReservationHandler
	Calendar     *api.CalendarHandler
	Analytics    *api.AnalyticsHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(p.Auth.RequireAuth())
	manager := p.Auth.RequireRoleAtLeast(user.RoleOperator)
	{
		addRoutes(apiGroup.Group("/cars"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Catalog.ListCars},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Catalog.GetCar},
		})
		addRoutes(apiGroup.Group("/clients"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Catalog.ListClients},
		})
		addRoutes(apiGroup.Group("/availability"), []route{
			{Method: http.MethodPost, Path: "/check", Handler: p.Availability.Check},
		})
		addRoutes(apiGroup.Group("/reservations"), []route{
			{Method: http.MethodPost, Path: "", Handler: p.Reservations.Create, Mw: []gin.HandlerFunc{manager}},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Reservations.Get},
			{Method: http.MethodPatch, Path: "/:id/status", Handler: p.Reservations.ChangeStatus, Mw: []gin.HandlerFunc{manager}},
			{Method: http.MethodPatch, Path: "/:id/payment", Handler: p.Reservations.ChangePayment, Mw: []gin.HandlerFunc{manager}},
		})
		addRoutes(apiGroup.Group("/calendar"), []route{
			{Method: http.MethodGet, Path: "", Handler: p.Calendar.Month},
		})
		addRoutes(apiGroup.Group("/analytics"), []route{
			{Method: http.MethodGet, Path: "/dashboard", Handler: p.Analytics.Dashboard},
			{Method: http.MethodGet, Path: "/reservations", Handler: p.Analytics.Reservations},
			{Method: http.MethodGet, Path: "/financial", Handler: p.Analytics.Financial},
			{Method: http.MethodGet, Path: "/utilization", Handler: p.Analytics.Utilization},
			{Method: http.MethodGet, Path: "/upcoming", Handler: p.Analytics.Upcoming},
			{Method: http.MethodGet, Path: "/overview", Handler: p.Analytics.Overview},
		})
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
