package api

import (
	"encoding/json"
	"net/http"
)

// handleSchema exposes the expected-structure tables the service validates
// against, so clients can show authors what is required.
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.analyzer.Schema())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": s.orchestrator.QueueDepth(),
		"phases":      s.orchestrator.Stats().Snapshot(),
	})
}
