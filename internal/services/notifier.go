package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/okaycreative/studioops/internal/domain/workflow"
	"github.com/okaycreative/studioops/internal/platform/logger"
	"github.com/okaycreative/studioops/internal/realtime"
	"github.com/okaycreative/studioops/internal/realtime/bus"
)

// WorkflowChannel is the broadcast channel every workflow event lands on.
// Clients subscribe to it implicitly when they open an SSE stream.
const WorkflowChannel = "workflow"

type IdeaCreatedEvent struct {
	IdeaID uuid.UUID `json:"idea_id"`
	Title  string    `json:"title"`
}

type IdeaReassignedEvent struct {
	IdeaID         uuid.UUID  `json:"idea_id"`
	ContributorID  *uuid.UUID `json:"contributor_id,omitempty"`
	ScriptWriterID *uuid.UUID `json:"script_writer_id,omitempty"`
}

type StageAdvancedEvent struct {
	IdeaID          uuid.UUID      `json:"idea_id"`
	PreviousStage   workflow.Stage `json:"previous_stage"`
	NewStage        workflow.Stage `json:"new_stage"`
	CreatedRecordID *uuid.UUID     `json:"created_record_id,omitempty"`
}

// SSEEmitter abstracts where a notification goes: straight to the local hub,
// or out through the redis bus to other processes.
type SSEEmitter interface {
	Emit(ctx context.Context, msg realtime.SSEMessage)
}

type hubEmitter struct {
	hub *realtime.SSEHub
}

func NewHubEmitter(hub *realtime.SSEHub) SSEEmitter {
	return &hubEmitter{hub: hub}
}

func (e *hubEmitter) Emit(_ context.Context, msg realtime.SSEMessage) {
	if e == nil || e.hub == nil {
		return
	}
	e.hub.Broadcast(msg)
}

type redisEmitter struct {
	log *logger.Logger
	bus bus.Bus
}

func NewRedisEmitter(log *logger.Logger, b bus.Bus) SSEEmitter {
	return &redisEmitter{log: log.With("service", "RedisEmitter"), bus: b}
}

func (e *redisEmitter) Emit(ctx context.Context, msg realtime.SSEMessage) {
	if e == nil || e.bus == nil {
		return
	}
	if err := e.bus.Publish(ctx, msg); err != nil {
		// fire-and-forget: a lost notification never fails the operation
		e.log.Warn("failed to publish workflow event", "event", msg.Event, "error", err)
	}
}

// WorkflowNotifier emits best-effort notifications after state changes have
// committed. Callers must never let a notifier error surface to the client.
type WorkflowNotifier interface {
	IdeaCreated(ctx context.Context, ev IdeaCreatedEvent)
	IdeaReassigned(ctx context.Context, ev IdeaReassignedEvent)
	StageAdvanced(ctx context.Context, ev StageAdvancedEvent)
}

type workflowNotifier struct {
	log      *logger.Logger
	emitters []SSEEmitter
}

func NewWorkflowNotifier(log *logger.Logger, emitters ...SSEEmitter) WorkflowNotifier {
	return &workflowNotifier{
		log:      log.With("service", "WorkflowNotifier"),
		emitters: emitters,
	}
}

func (n *workflowNotifier) IdeaCreated(ctx context.Context, ev IdeaCreatedEvent) {
	n.emit(ctx, realtime.SSEEventIdeaCreated, ev)
}

func (n *workflowNotifier) IdeaReassigned(ctx context.Context, ev IdeaReassignedEvent) {
	n.emit(ctx, realtime.SSEEventIdeaReassigned, ev)
}

func (n *workflowNotifier) StageAdvanced(ctx context.Context, ev StageAdvancedEvent) {
	n.emit(ctx, realtime.SSEEventStageAdvanced, ev)
}

func (n *workflowNotifier) emit(ctx context.Context, event realtime.SSEEvent, data any) {
	msg := realtime.SSEMessage{
		Channel: WorkflowChannel,
		Event:   event,
		Data:    data,
	}
	for _, e := range n.emitters {
		if e != nil {
			e.Emit(ctx, msg)
		}
	}
}
