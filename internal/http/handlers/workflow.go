package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainagg "github.com/okaycreative/studioops/internal/domain/aggregates"
	"github.com/okaycreative/studioops/internal/http/response"
	"github.com/okaycreative/studioops/internal/platform/ctxutil"
	"github.com/okaycreative/studioops/internal/services"
)

type WorkflowHandler struct {
	svc      services.WorkflowService
	agg      domainagg.IdeaWorkflowAggregate
	notifier services.WorkflowNotifier
}

func NewWorkflowHandler(svc services.WorkflowService, agg domainagg.IdeaWorkflowAggregate, notifier services.WorkflowNotifier) *WorkflowHandler {
	return &WorkflowHandler{svc: svc, agg: agg, notifier: notifier}
}

// GET /api/workflow/items?stage=
func (h *WorkflowHandler) ListItems(c *gin.Context) {
	items, err := h.svc.ListItems(c.Request.Context(), c.Query("stage"))
	if err != nil {
		respondAggregateError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"items": items})
}

// GET /api/workflow/items/:id
func (h *WorkflowHandler) GetItem(c *gin.Context) {
	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid idea id"})
		return
	}
	item, err := h.svc.GetItem(c.Request.Context(), ideaID)
	if err != nil {
		respondAggregateError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"item": item})
}

// POST /api/workflow/items/:id/advance
func (h *WorkflowHandler) Advance(c *gin.Context) {
	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid idea id"})
		return
	}

	var req struct {
		Note string `json:"note"`
	}
	// body is optional; advance takes no other input
	_ = c.ShouldBindJSON(&req)

	in := domainagg.AdvanceInput{
		IdeaID: ideaID,
		Note:   req.Note,
		Now:    time.Now().UTC(),
	}
	if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil && rd.UserID != uuid.Nil {
		actorID := rd.UserID
		in.ActorID = &actorID
	}

	result, err := h.agg.Advance(c.Request.Context(), in)
	if err != nil {
		respondAggregateError(c, err)
		return
	}

	if h.notifier != nil {
		h.notifier.StageAdvanced(c.Request.Context(), services.StageAdvancedEvent{
			IdeaID:          result.IdeaID,
			PreviousStage:   result.PreviousStage,
			NewStage:        result.NewStage,
			CreatedRecordID: result.CreatedRecordID,
		})
	}

	// the committed transition plus the fresh full projection
	item, err := h.svc.GetItem(c.Request.Context(), result.IdeaID)
	if err != nil {
		respondAggregateError(c, err)
		return
	}
	payload := gin.H{
		"previous_stage": result.PreviousStage,
		"current_stage":  result.NewStage,
		"item":           item,
	}
	if result.CreatedRecordID != nil {
		payload["created_record_id"] = result.CreatedRecordID
	}
	response.RespondOK(c, payload)
}
