package app

import (
	"gorm.io/gorm"

	dataagg "github.com/okaycreative/studioops/internal/data/aggregates"
	domainagg "github.com/okaycreative/studioops/internal/domain/aggregates"
	"github.com/okaycreative/studioops/internal/observability"
	"github.com/okaycreative/studioops/internal/platform/logger"
	"github.com/okaycreative/studioops/internal/realtime"
	"github.com/okaycreative/studioops/internal/realtime/bus"
	"github.com/okaycreative/studioops/internal/services"
)

type Services struct {
	Workflow services.WorkflowService
	Idea     services.IdeaService
	Notifier services.WorkflowNotifier

	IdeaWorkflow domainagg.IdeaWorkflowAggregate
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, hub *realtime.SSEHub, b bus.Bus, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	emitters := []services.SSEEmitter{services.NewHubEmitter(hub)}
	if b != nil {
		emitters = append(emitters, services.NewRedisEmitter(log, b))
	}
	notifier := services.NewWorkflowNotifier(log, emitters...)

	ideaWorkflow := dataagg.NewIdeaWorkflowAggregate(dataagg.IdeaWorkflowAggregateDeps{
		Base: dataagg.BaseDeps{
			DB:    db,
			Log:   log,
			Hooks: dataagg.NewObservabilityHooks(metrics),
		},
		Ideas:       reposet.Idea,
		Contents:    reposet.Content,
		Productions: reposet.Production,
		SocialPosts: reposet.SocialPost,
	})

	return Services{
		Workflow:     services.NewWorkflowService(log, reposet.Idea, reposet.Content, reposet.Production, reposet.SocialPost),
		Idea:         services.NewIdeaService(log, reposet.Idea, notifier),
		Notifier:     notifier,
		IdeaWorkflow: ideaWorkflow,
	}
}
