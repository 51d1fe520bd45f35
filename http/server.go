package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gleanhq/glean"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":3000"

// ShutdownTimeout bounds graceful shutdown of in-flight requests.
const ShutdownTimeout = 5 * time.Second

// Server exposes the analyzer over a JSON HTTP API.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *mux.Router

	Addr     string
	Analyzer glean.Analyzer
}

// NewServer creates a new Server with routes registered.
func NewServer() *Server {
	s := &Server{
		router: mux.NewRouter(),
		Addr:   DefaultAddr,
	}

	s.router.Use(corsMiddleware)
	s.router.Use(metricsMiddleware)

	s.router.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost, http.MethodOptions)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	s.server = &http.Server{Handler: s.router}
	return s
}

// Open begins listening on the configured address. It returns once the
// listener is bound; request serving continues on a background goroutine.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go func() { _ = s.server.Serve(s.ln) }()
	return nil
}

// Close shuts down the server, letting in-flight requests finish up to
// ShutdownTimeout.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL the server is listening on. Useful in tests
// where the port is assigned dynamically.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Handler returns the root handler, primarily for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	// Preflight requests are answered by the CORS middleware headers.
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var req glean.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errorResponse{
			Error:   "Invalid request body: " + err.Error(),
			Details: "Request body must be JSON with url and types fields",
		})
		analysesTotal.WithLabelValues("invalid").Inc()
		return
	}

	// The failure message itself is the error field; details carries
	// only a static hint.
	result, err := s.Analyzer.Analyze(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		label := "error"
		if glean.ErrorCode(err) == glean.EINVALID {
			status = http.StatusBadRequest
			label = "invalid"
		}
		writeError(w, status, errorResponse{
			Error:   glean.ErrorMessage(err),
			Details: "Check server logs for more information",
		})
		analysesTotal.WithLabelValues(label).Inc()
		return
	}

	analysesTotal.WithLabelValues("ok").Inc()
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, resp errorResponse) {
	writeJSON(w, status, resp)
}

// corsMiddleware allows browser clients on any origin to call the API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}
