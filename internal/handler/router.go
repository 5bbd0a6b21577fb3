package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-folio/internal/handler/api"
	"hotel-folio/internal/handler/middleware"
	"hotel-folio/internal/pkg/config"
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
	logger *middleware.Logger,
	reservationHandler *api.ReservationHandler,
	folioHandler *api.FolioHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, reservationHandler, folioHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	reservationHandler *api.ReservationHandler,
	folioHandler *api.FolioHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		catalog := apiGroup.Group("/catalog")
		addRoutes(catalog, []route{
			{Method: http.MethodGet, Path: "/room-types", Handler: folioHandler.RoomTypes},
			{Method: http.MethodGet, Path: "/meal-plans", Handler: folioHandler.MealPlans},
		})

		writer := []gin.HandlerFunc{authMiddleware.RequireWriter()}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "/recompute", Handler: reservationHandler.RecomputeBooking},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation, Mw: writer},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
				{Method: http.MethodGet, Path: "/:id/folio", Handler: folioHandler.GetFolio},
				{Method: http.MethodPost, Path: "/:id/bookings/draft", Handler: reservationHandler.DraftBooking},
				{Method: http.MethodPost, Path: "/:id/bookings", Handler: reservationHandler.AddBooking, Mw: writer},
				{Method: http.MethodPost, Path: "/:id/charges/:source", Handler: reservationHandler.PostCharge, Mw: writer},
				{Method: http.MethodPost, Path: "/:id/audit", Handler: reservationHandler.RecordAudit, Mw: writer},
			})
		}
	}
}

// @Summary Health check
// @Description Reports that the folio service is accepting requests
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "hotel-folio"})
}

// addRoutes registers each route with its own middleware ahead of the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		chain := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		chain = append(chain, r.Mw...)
		g.Handle(r.Method, r.Path, append(chain, r.Handler)...)
	}
}
