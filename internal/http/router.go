package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/okaycreative/studioops/internal/http/handlers"
	httpMW "github.com/okaycreative/studioops/internal/http/middleware"
	"github.com/okaycreative/studioops/internal/observability"
	"github.com/okaycreative/studioops/internal/platform/logger"
)

type RouterConfig struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	AuthMiddleware *httpMW.AuthMiddleware

	WorkflowHandler *httpH.WorkflowHandler
	IdeaHandler     *httpH.IdeaHandler
	RealtimeHandler *httpH.RealtimeHandler
	MetricsHandler  *httpH.MetricsHandler
	HealthHandler   *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(otelgin.Middleware("studioops"))
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.CORS())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.MetricsHandler != nil {
		r.GET("/metrics", cfg.MetricsHandler.Render)
	}

	api := r.Group("/api")

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Realtime (SSE)
		if cfg.RealtimeHandler != nil {
			protected.GET("/sse/stream", cfg.RealtimeHandler.SSEStream)
		}

		// Ideas
		if cfg.IdeaHandler != nil {
			protected.POST("/ideas", cfg.IdeaHandler.Create)
			protected.GET("/ideas", cfg.IdeaHandler.List)
			protected.PATCH("/ideas/:id/assign", cfg.IdeaHandler.Assign)
		}

		// Workflow
		if cfg.WorkflowHandler != nil {
			protected.GET("/workflow/items", cfg.WorkflowHandler.ListItems)
			protected.GET("/workflow/items/:id", cfg.WorkflowHandler.GetItem)
			protected.POST("/workflow/items/:id/advance", cfg.WorkflowHandler.Advance)
		}
	}

	return r
}
