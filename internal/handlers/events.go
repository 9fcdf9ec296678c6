package handlers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beauroweb/backend/internal/registry/settings"
	"github.com/beauroweb/backend/internal/registry/workflow"
	"github.com/beauroweb/backend/pkg/logger"
)

// EventsHandler streams registry snapshots over Server-Sent Events. Each
// mutation of a registry produces one snapshot event; a new subscriber
// first receives the current snapshot.
type EventsHandler struct {
	settings  *settings.Registry
	workflows *workflow.Registry
}

func NewEventsHandler(settingsRegistry *settings.Registry, workflowRegistry *workflow.Registry) *EventsHandler {
	return &EventsHandler{settings: settingsRegistry, workflows: workflowRegistry}
}

func (h *EventsHandler) StreamSettings(c *gin.Context) {
	clientID := uuid.New().String()
	events := h.settings.Subscribe(clientID)
	defer h.settings.Unsubscribe(clientID)

	logger.Info().Str("client_id", clientID).Int("total", h.settings.SubscriberCount()).Msg("settings SSE client connected")
	streamSnapshots(c, clientID, events)
}

func (h *EventsHandler) StreamWorkflows(c *gin.Context) {
	clientID := uuid.New().String()
	events := h.workflows.Subscribe(clientID)
	defer h.workflows.Unsubscribe(clientID)

	logger.Info().Str("client_id", clientID).Int("total", h.workflows.SubscriberCount()).Msg("workflow SSE client connected")
	streamSnapshots(c, clientID, events)
}

func streamSnapshots[T any](c *gin.Context, clientID string, events <-chan []T) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		select {
		case snapshot, ok := <-events:
			if !ok {
				return false
			}
			data, err := json.Marshal(snapshot)
			if err != nil {
				logger.Error().Err(err).Msg("SSE marshal error")
				return true
			}
			fmt.Fprintf(w, "data: %s\n\n", data)
			c.Writer.Flush()
			return true
		case <-c.Request.Context().Done():
			logger.Info().Str("client_id", clientID).Msg("SSE client disconnected")
			return false
		}
	})
}
