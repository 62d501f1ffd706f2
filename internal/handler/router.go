package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"car-rental-pricing/internal/handler/api"
	"car-rental-pricing/internal/handler/middleware"
	"car-rental-pricing/internal/pkg/config"
	"car-rental-pricing/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, rateHandler *api.RateHandler, quoteHandler *api.QuoteHandler) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, rateHandler, quoteHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogging(logger, m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, rateHandler *api.RateHandler, quoteHandler *api.QuoteHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/rates"), []route{
			{Method: http.MethodPost, Path: "/optimize", Handler: rateHandler.Optimize},
			{Method: http.MethodPost, Path: "/optimize-extra", Handler: rateHandler.OptimizeExtra},
		})

		addRoutes(apiGroup.Group("/quotes"), []route{
			{Method: http.MethodPost, Path: "", Handler: quoteHandler.Quote},
		})

		addRoutes(apiGroup.Group("/cars"), []route{
			{Method: http.MethodGet, Path: "/:id/availability", Handler: quoteHandler.Availability},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Handle(r.Method, r.Path, r.Handler)
		}
	}
}
