package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"innkeeper/internal/handler/api"
	"innkeeper/internal/handler/middleware"
	"innkeeper/internal/pkg/config"
	"innkeeper/internal/pkg/jwt"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	reservationHandler *api.ReservationHandler,
	roomHandler *api.RoomHandler,
	maintenanceHandler *api.MaintenanceHandler,
	availabilityHandler *api.AvailabilityHandler,
	dashboardHandler *api.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, reservationHandler, roomHandler, maintenanceHandler, availabilityHandler, dashboardHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	roomHandler *api.RoomHandler,
	maintenanceHandler *api.MaintenanceHandler,
	availabilityHandler *api.AvailabilityHandler,
	dashboardHandler *api.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Guest-facing surface: browse rooms, probe availability, submit a
		// booking request. No authentication.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/rooms", Handler: roomHandler.ListRoomTypes},
			{Method: http.MethodGet, Path: "/rooms/:name", Handler: roomHandler.GetRoomType},
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.Check},
			{Method: http.MethodGet, Path: "/availability/quote", Handler: availabilityHandler.Quote},
			{Method: http.MethodPost, Path: "/reservations", Handler: reservationHandler.CreateReservation},
		})

		staff := apiGroup.Group("")
		staff.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(jwt.RoleStaff))
		{
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/rooms-status", Handler: roomHandler.ListRoomStatuses},
				{Method: http.MethodGet, Path: "/reservations", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodPatch, Path: "/reservations/:id/status", Handler: reservationHandler.UpdateStatus},
				{Method: http.MethodGet, Path: "/maintenance", Handler: maintenanceHandler.ListMaintenance},
				{Method: http.MethodPost, Path: "/maintenance", Handler: maintenanceHandler.ScheduleMaintenance},
				{Method: http.MethodPatch, Path: "/maintenance/:id/status", Handler: maintenanceHandler.UpdateStatus},
			})
		}

		admin := apiGroup.Group("")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(jwt.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/rooms", Handler: roomHandler.CreateRoomType},
				{Method: http.MethodPatch, Path: "/rooms/:name", Handler: roomHandler.UpdateRoomType},
				{Method: http.MethodDelete, Path: "/rooms/:name", Handler: roomHandler.DeleteRoomType},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: reservationHandler.DeleteReservation},
				{Method: http.MethodDelete, Path: "/maintenance/:id", Handler: maintenanceHandler.DeleteMaintenance},
				{Method: http.MethodGet, Path: "/dashboard", Handler: dashboardHandler.GetDashboard},
				{Method: http.MethodGet, Path: "/dashboard/revenue", Handler: dashboardHandler.GetRevenue},
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
