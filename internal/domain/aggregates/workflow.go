package aggregates

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okaycreative/studioops/internal/domain/workflow"
)

// AdvanceInput identifies the idea to move forward plus the optional audit
// note and acting user. Nothing else is trusted from the caller: the engine
// re-derives the chain state under the row lock.
type AdvanceInput struct {
	IdeaID  uuid.UUID
	Note    string
	ActorID *uuid.UUID
	Now     time.Time
}

// AdvanceResult reports the committed transition.
type AdvanceResult struct {
	IdeaID          uuid.UUID      `json:"idea_id"`
	PreviousStage   workflow.Stage `json:"previous_stage"`
	NewStage        workflow.Stage `json:"new_stage"`
	CreatedRecordID *uuid.UUID     `json:"created_record_id,omitempty"`
}

// IdeaWorkflowAggregate owns the single mutating operation of the pipeline.
type IdeaWorkflowAggregate interface {
	Aggregate
	Advance(ctx context.Context, in AdvanceInput) (AdvanceResult, error)
}

// IdeaWorkflowAggregateContract: one idea row locked FOR UPDATE per advance;
// all chain reads inside the write happen through that transaction.
var IdeaWorkflowAggregateContract = Contract{
	Name:             "Workflow.IdeaWorkflow",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "stage is derived from child-record presence, never stored",
}
