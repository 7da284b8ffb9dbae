// Package web serves the latest analysis result over HTTP: a JSON API plus
// a Server-Sent Events stream that pushes re-analysis updates to clients.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"

	"github.com/perqvist/nav-analyzer/pkg/logging"
	"github.com/perqvist/nav-analyzer/pkg/model"
	"github.com/perqvist/nav-analyzer/pkg/pubsub"
)

const (
	// TopicStatus carries AnalysisStatus updates while a run is in flight
	TopicStatus = "analysis_status"
	// TopicResult carries the full AnalysisResult after each run
	TopicResult = "analysis_result"
)

// Server exposes analysis results over HTTP
type Server struct {
	router    *mux.Router
	publisher pubsub.Publisher

	mu     sync.RWMutex
	result *model.AnalysisResult
	status pubsub.AnalysisStatus
}

// NewServer creates a new web server
func NewServer() *Server {
	ssePublisher := pubsub.NewSSEPublisher()

	// New subscribers only need the current state, not the history.
	ssePublisher.ConfigureTopic(TopicStatus, pubsub.TopicConfig{BufferSize: 10, ReplayAll: false})
	ssePublisher.ConfigureTopic(TopicResult, pubsub.TopicConfig{BufferSize: 1, ReplayAll: false})

	s := &Server{
		router:    mux.NewRouter(),
		publisher: ssePublisher,
	}
	s.setupRoutes()
	return s
}

// SetResult stores a freshly computed result and publishes it to subscribers
func (s *Server) SetResult(res *model.AnalysisResult) {
	s.mu.Lock()
	s.result = res
	s.mu.Unlock()

	if err := s.publisher.Publish(TopicResult, "ready", res); err != nil {
		logging.Warn("failed to publish analysis result", "error", err)
	}
}

// Result returns the most recent analysis result, or nil before the first run
func (s *Server) Result() *model.AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// PublishStatus publishes an analysis progress event
func (s *Server) PublishStatus(state, message string, step, total int) error {
	status := pubsub.AnalysisStatus{
		State:   state,
		Message: message,
		Step:    step,
		Total:   total,
	}

	s.mu.Lock()
	s.status = status
	s.mu.Unlock()

	return s.publisher.Publish(TopicStatus, state, status)
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/result", s.handleResult).Methods(http.MethodGet)
	api.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	s.router.HandleFunc("/events", s.handleEvents).Methods(http.MethodGet)
	s.router.Use(logging.RequestIDMiddleware)
}

func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	res := s.Result()
	if res == nil {
		http.Error(w, "no analysis result yet", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, res)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	status := s.status
	s.mu.RUnlock()
	writeJSON(w, status)
}

// handleEvents streams pub/sub events for one topic as SSE. The topic query
// parameter selects the stream; it defaults to analysis_status.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")
	if topic == "" {
		topic = TopicStatus
	}
	if topic != TopicStatus && topic != TopicResult {
		http.Error(w, fmt.Sprintf("unknown topic %q", topic), http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	sub, err := s.publisher.Subscribe(r.Context(), topic)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	defer sub.Close()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, ok := <-sub.Events():
			if !ok {
				return
			}
			if err := pubsub.WriteSSE(w, event); err != nil {
				logging.ErrorContext(r.Context(), "failed to write SSE event", "error", err)
				return
			}
			flusher.Flush()
		}
	}
}

// Start runs the HTTP server on the given port, blocking until it exits
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf(":%d", port)
	logging.Info("web server listening", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode response", "error", err)
	}
}
