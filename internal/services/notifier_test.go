package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/okaycreative/studioops/internal/data/repos/testutil"
	"github.com/okaycreative/studioops/internal/domain/workflow"
	"github.com/okaycreative/studioops/internal/realtime"
)

type captureEmitter struct {
	mu   sync.Mutex
	msgs []realtime.SSEMessage
}

func (c *captureEmitter) Emit(_ context.Context, msg realtime.SSEMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func (c *captureEmitter) all() []realtime.SSEMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]realtime.SSEMessage(nil), c.msgs...)
}

func TestWorkflowNotifierFansOut(t *testing.T) {
	first := &captureEmitter{}
	second := &captureEmitter{}
	n := NewWorkflowNotifier(testutil.Logger(t), first, second, nil)

	ctx := context.Background()
	n.IdeaCreated(ctx, IdeaCreatedEvent{IdeaID: uuid.New(), Title: "t"})
	n.IdeaReassigned(ctx, IdeaReassignedEvent{IdeaID: uuid.New()})
	n.StageAdvanced(ctx, StageAdvancedEvent{
		IdeaID:        uuid.New(),
		PreviousStage: workflow.StageIdea,
		NewStage:      workflow.StageScript,
	})

	for _, c := range []*captureEmitter{first, second} {
		msgs := c.all()
		if len(msgs) != 3 {
			t.Fatalf("expected 3 messages, got %d", len(msgs))
		}
		wantEvents := []realtime.SSEEvent{
			realtime.SSEEventIdeaCreated,
			realtime.SSEEventIdeaReassigned,
			realtime.SSEEventStageAdvanced,
		}
		for i, want := range wantEvents {
			if msgs[i].Event != want {
				t.Fatalf("event[%d] = %q, want %q", i, msgs[i].Event, want)
			}
			if msgs[i].Channel != WorkflowChannel {
				t.Fatalf("channel = %q", msgs[i].Channel)
			}
		}
	}
}

func TestHubEmitterDeliversToSubscribers(t *testing.T) {
	hub := realtime.NewSSEHub(testutil.Logger(t))
	client := hub.NewSSEClient(uuid.New())
	hub.AddChannel(client, WorkflowChannel)

	emitter := NewHubEmitter(hub)
	emitter.Emit(context.Background(), realtime.SSEMessage{
		Channel: WorkflowChannel,
		Event:   realtime.SSEEventStageAdvanced,
	})

	select {
	case msg := <-client.Outbound:
		if msg.Event != realtime.SSEEventStageAdvanced {
			t.Fatalf("event = %q", msg.Event)
		}
	default:
		t.Fatal("no message delivered to subscriber")
	}
}
