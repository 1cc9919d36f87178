package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okaycreative/studioops/internal/platform/ctxutil"
	"github.com/okaycreative/studioops/internal/platform/logger"
	"github.com/okaycreative/studioops/internal/realtime"
	"github.com/okaycreative/studioops/internal/services"
)

type RealtimeHandler struct {
	log *logger.Logger
	hub *realtime.SSEHub
}

func NewRealtimeHandler(log *logger.Logger, hub *realtime.SSEHub) *RealtimeHandler {
	return &RealtimeHandler{
		log: log.With("handler", "RealtimeHandler"),
		hub: hub,
	}
}

// GET /api/sse/stream
func (h *RealtimeHandler) SSEStream(c *gin.Context) {
	rd := ctxutil.GetRequestData(c.Request.Context())
	if rd == nil || rd.UserID == uuid.Nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	client := h.hub.NewSSEClient(rd.UserID)
	h.hub.AddChannel(client, services.WorkflowChannel)
	defer h.hub.RemoveClient(client)
	h.log.Info("SSE stream open", "user_id", rd.UserID.String(), "client_id", client.ID.String())

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case msg, ok := <-client.Outbound:
			if !ok {
				return false
			}
			payload, err := json.Marshal(msg)
			if err != nil {
				h.log.Warn("failed to encode SSE message", "error", err)
				return true
			}
			c.SSEvent(string(msg.Event), string(payload))
			return true
		}
	})
}
