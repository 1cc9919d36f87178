package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okaycreative/studioops/internal/http/response"
	"github.com/okaycreative/studioops/internal/services"
)

type IdeaHandler struct {
	svc services.IdeaService
}

func NewIdeaHandler(svc services.IdeaService) *IdeaHandler {
	return &IdeaHandler{svc: svc}
}

// POST /api/ideas
func (h *IdeaHandler) Create(c *gin.Context) {
	var req services.CreateIdeaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	idea, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondAggregateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"idea": idea})
}

// GET /api/ideas
func (h *IdeaHandler) List(c *gin.Context) {
	ideas, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondAggregateError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ideas": ideas})
}

// PATCH /api/ideas/:id/assign
func (h *IdeaHandler) Assign(c *gin.Context) {
	ideaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid idea id"})
		return
	}
	var req services.ReassignIdeaInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	idea, err := h.svc.Reassign(c.Request.Context(), ideaID, req)
	if err != nil {
		respondAggregateError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"idea": idea})
}
