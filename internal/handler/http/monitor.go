package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/presensia/attendance-backend-go/internal/pkg/sse"
	"github.com/presensia/attendance-backend-go/internal/service/tap"
)

type MonitorHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type monitorHandlerImpl struct {
	hub *sse.Hub
}

func NewMonitorHandler(hub *sse.Hub) MonitorHandler {
	return &monitorHandlerImpl{
		hub: hub,
	}
}

// Stream implements MonitorHandler. Pushes every tap outcome to the
// client as SSE until the connection drops.
func (h *monitorHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, cleanup := h.hub.Subscribe(tap.MonitorTopic)
	defer cleanup()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Event, data)
			flusher.Flush()
		}
	}
}
