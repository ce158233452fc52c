package sse

import (
	"net/http"
	"time"

	"github.com/mcoot/wordmove/internal/model"
)

// Time between keepalive comments
const pingPeriod = 30 * time.Second

// Serve subscribes to a game's hub and streams its events to the client until
// the client disconnects or the hub closes
func Serve(w http.ResponseWriter, r *http.Request, hubs *HubManager, gameID model.GameID) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Streams outlive the server's write timeout
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	sub := NewSubscriber(r.RemoteAddr)
	hub := hubs.Subscribe(gameID, sub)
	defer hub.Unregister(sub)

	if !write(w, flusher, formatEvent("connected", []byte(`{"status":"connected"}`))) {
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-sub.Messages():
			if !ok {
				return
			}
			if !write(w, flusher, message) {
				return
			}

		case <-ticker.C:
			if !write(w, flusher, []byte(": keepalive\n\n")) {
				return
			}

		case <-r.Context().Done():
			return
		}
	}
}

func write(w http.ResponseWriter, flusher http.Flusher, message []byte) bool {
	if _, err := w.Write(message); err != nil {
		return false
	}
	flusher.Flush()
	return true
}
