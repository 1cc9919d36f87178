package app

import (
	apihttp "github.com/okaycreative/studioops/internal/http"
	"github.com/okaycreative/studioops/internal/observability"
	"github.com/okaycreative/studioops/internal/platform/logger"
)

func wireServer(log *logger.Logger, metrics *observability.Metrics, handlerset Handlers, mw Middleware) *apihttp.Server {
	log.Info("Wiring router...")
	return apihttp.NewServer(apihttp.RouterConfig{
		Log:             log,
		Metrics:         metrics,
		AuthMiddleware:  mw.Auth,
		WorkflowHandler: handlerset.Workflow,
		IdeaHandler:     handlerset.Idea,
		RealtimeHandler: handlerset.Realtime,
		MetricsHandler:  handlerset.Metrics,
		HealthHandler:   handlerset.Health,
	})
}
