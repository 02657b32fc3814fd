package http

import (
	"encoding/json"
	"io"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/veranolabs/hotel-admin-backend/internal/auth"
	"github.com/veranolabs/hotel-admin-backend/internal/stream"
)

const pingInterval = 15 * time.Second

type Handler struct {
	broker *stream.Broker
}

func NewHandler(broker *stream.Broker) *Handler {
	return &Handler{broker: broker}
}

// Events streams change notifications for the scoped hotel over SSE.
// Clients resume with the standard Last-Event-ID header; ids are opaque
// ordered cursors.
func (h *Handler) Events(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	lastEventID := c.GetHeader("Last-Event-ID")
	ch := h.broker.Subscribe(c.Request.Context(), auth.GetHotelID(c), lastEventID)

	lastSent := lastEventID
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	// Confirm the subscription before any data flows so clients can mark
	// the connection open.
	c.Render(-1, sse.Event{Event: "connected", Data: gin.H{"at": time.Now().UTC()}})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case evt, ok := <-ch:
			if !ok {
				return false
			}
			payload, err := json.Marshal(evt)
			if err != nil {
				return true
			}
			lastSent = evt.ID
			sse.Encode(w, sse.Event{
				Id:    evt.ID,
				Event: "message",
				Data:  string(payload),
			})
			return true
		case <-ticker.C:
			sse.Encode(w, sse.Event{
				Event: "ping",
				Data:  gin.H{"lastEventId": lastSent},
			})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
