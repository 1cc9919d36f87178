package app

import (
	httpH "github.com/okaycreative/studioops/internal/http/handlers"
	"github.com/okaycreative/studioops/internal/observability"
	"github.com/okaycreative/studioops/internal/platform/logger"
	"github.com/okaycreative/studioops/internal/realtime"
)

type Handlers struct {
	Workflow *httpH.WorkflowHandler
	Idea     *httpH.IdeaHandler
	Realtime *httpH.RealtimeHandler
	Metrics  *httpH.MetricsHandler
	Health   *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, hub *realtime.SSEHub, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Workflow: httpH.NewWorkflowHandler(serviceset.Workflow, serviceset.IdeaWorkflow, serviceset.Notifier),
		Idea:     httpH.NewIdeaHandler(serviceset.Idea),
		Realtime: httpH.NewRealtimeHandler(log, hub),
		Metrics:  httpH.NewMetricsHandler(metrics),
		Health:   httpH.NewHealthHandler(),
	}
}
