package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"ordering-service/internal/handler/api"
	"ordering-service/internal/handler/middleware"
	"ordering-service/internal/pkg/config"
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
	logger *slog.Logger,
	orderHandler *api.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
	metricsHandler http.Handler,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, orderHandler, authMiddleware, metricsHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	orderHandler *api.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
	metricsHandler http.Handler,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metricsHandler))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: orderHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: orderHandler.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: orderHandler.Get},
				{Method: http.MethodPost, Path: "/:id/pay", Handler: orderHandler.Pay},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: orderHandler.Cancel},
				{Method: http.MethodPost, Path: "/:id/ship", Handler: orderHandler.Ship},
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
