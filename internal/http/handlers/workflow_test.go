package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainagg "github.com/okaycreative/studioops/internal/domain/aggregates"
	"github.com/okaycreative/studioops/internal/domain/workflow"
	"github.com/okaycreative/studioops/internal/services"
)

type fakeWorkflowService struct {
	item     *services.WorkflowItem
	items    []*services.WorkflowItem
	getErr   error
	listErr  error
	lastArgs struct {
		stage string
	}
}

func (f *fakeWorkflowService) GetItem(_ context.Context, _ uuid.UUID) (*services.WorkflowItem, error) {
	return f.item, f.getErr
}

func (f *fakeWorkflowService) ListItems(_ context.Context, stage string) ([]*services.WorkflowItem, error) {
	f.lastArgs.stage = stage
	return f.items, f.listErr
}

type fakeAggregate struct {
	result domainagg.AdvanceResult
	err    error
	calls  int
}

func (f *fakeAggregate) Contract() domainagg.Contract {
	return domainagg.IdeaWorkflowAggregateContract
}

func (f *fakeAggregate) Advance(_ context.Context, _ domainagg.AdvanceInput) (domainagg.AdvanceResult, error) {
	f.calls++
	return f.result, f.err
}

type fakeNotifier struct {
	advanced []services.StageAdvancedEvent
}

func (f *fakeNotifier) IdeaCreated(context.Context, services.IdeaCreatedEvent) {}

func (f *fakeNotifier) IdeaReassigned(context.Context, services.IdeaReassignedEvent) {}
func (f *fakeNotifier) StageAdvanced(_ context.Context, ev services.StageAdvancedEvent) {
	f.advanced = append(f.advanced, ev)
}

func workflowTestRouter(svc services.WorkflowService, agg domainagg.IdeaWorkflowAggregate, n services.WorkflowNotifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWorkflowHandler(svc, agg, n)
	r := gin.New()
	r.GET("/api/workflow/items", h.ListItems)
	r.GET("/api/workflow/items/:id", h.GetItem)
	r.POST("/api/workflow/items/:id/advance", h.Advance)
	return r
}

func TestAdvanceSuccessReturnsProjection(t *testing.T) {
	ideaID := uuid.New()
	contentID := uuid.New()
	agg := &fakeAggregate{result: domainagg.AdvanceResult{
		IdeaID:          ideaID,
		PreviousStage:   workflow.StageIdea,
		NewStage:        workflow.StageScript,
		CreatedRecordID: &contentID,
	}}
	svc := &fakeWorkflowService{item: &services.WorkflowItem{
		Projection: workflow.Projection{
			Idea:    &workflow.Idea{ID: ideaID, Title: "t"},
			Content: &workflow.Content{ID: contentID, IdeaID: ideaID, Title: "t"},
		},
		Stage:          workflow.StageScript,
		CanMoveForward: true,
	}}
	notifier := &fakeNotifier{}
	r := workflowTestRouter(svc, agg, notifier)

	req := httptest.NewRequest(http.MethodPost, "/api/workflow/items/"+ideaID.String()+"/advance", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if agg.calls != 1 {
		t.Fatalf("aggregate calls = %d", agg.calls)
	}
	if len(notifier.advanced) != 1 || notifier.advanced[0].NewStage != workflow.StageScript {
		t.Fatalf("notifications = %+v", notifier.advanced)
	}

	var body struct {
		PreviousStage   string `json:"previous_stage"`
		CurrentStage    string `json:"current_stage"`
		CreatedRecordID string `json:"created_record_id"`
		Item            struct {
			Stage string `json:"stage"`
			Idea  struct {
				ID string `json:"id"`
			} `json:"idea"`
		} `json:"item"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.PreviousStage != "idea" || body.CurrentStage != "script" {
		t.Fatalf("stages = %q -> %q", body.PreviousStage, body.CurrentStage)
	}
	if body.CreatedRecordID != contentID.String() {
		t.Fatalf("created_record_id = %q", body.CreatedRecordID)
	}
	if body.Item.Stage != "script" || body.Item.Idea.ID != ideaID.String() {
		t.Fatalf("item = %+v", body.Item)
	}
}

func TestAdvancePreconditionFailureBody(t *testing.T) {
	agg := &fakeAggregate{err: domainagg.NewPreconditionError("op", []string{"production is blocked"})}
	notifier := &fakeNotifier{}
	r := workflowTestRouter(&fakeWorkflowService{}, agg, notifier)

	req := httptest.NewRequest(http.MethodPost, "/api/workflow/items/"+uuid.NewString()+"/advance", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var body struct {
		Error struct {
			Code    string   `json:"code"`
			Reasons []string `json:"reasons"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "precondition_failed" {
		t.Fatalf("code = %q", body.Error.Code)
	}
	if len(body.Error.Reasons) != 1 || body.Error.Reasons[0] != "production is blocked" {
		t.Fatalf("reasons = %v", body.Error.Reasons)
	}
	if len(notifier.advanced) != 0 {
		t.Fatal("failed advance must not notify")
	}
}

func TestAdvanceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", domainagg.NewError(domainagg.CodeNotFound, "op", "missing", nil), http.StatusNotFound},
		{"conflict", domainagg.NewError(domainagg.CodeConflict, "op", "duplicate", nil), http.StatusConflict},
		{"retryable", domainagg.NewError(domainagg.CodeRetryable, "op", "busy", nil), http.StatusServiceUnavailable},
		{"validation", domainagg.NewError(domainagg.CodeValidation, "op", "bad", nil), http.StatusBadRequest},
		{"internal", domainagg.NewError(domainagg.CodeInternal, "op", "boom", nil), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := workflowTestRouter(&fakeWorkflowService{}, &fakeAggregate{err: tc.err}, &fakeNotifier{})
			req := httptest.NewRequest(http.MethodPost, "/api/workflow/items/"+uuid.NewString()+"/advance", nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestAdvanceInvalidID(t *testing.T) {
	r := workflowTestRouter(&fakeWorkflowService{}, &fakeAggregate{}, &fakeNotifier{})
	req := httptest.NewRequest(http.MethodPost, "/api/workflow/items/not-a-uuid/advance", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestListItemsPassesStageFilter(t *testing.T) {
	svc := &fakeWorkflowService{items: []*services.WorkflowItem{}}
	r := workflowTestRouter(svc, &fakeAggregate{}, &fakeNotifier{})

	req := httptest.NewRequest(http.MethodGet, "/api/workflow/items?stage=script", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if svc.lastArgs.stage != "script" {
		t.Fatalf("stage filter = %q", svc.lastArgs.stage)
	}
}
