// Package server exposes poster generation over HTTP. The API mirrors the
// CLI: a scene document goes in, a base64 data URI or a written file path
// comes out.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/user/postergen/pkg/poster"
	"github.com/user/postergen/pkg/ports"
	"github.com/user/postergen/pkg/scene"
)

// maxRequestBytes caps request bodies; embedded base64 images make scene
// documents large.
const maxRequestBytes = 32 << 20

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Config json.RawMessage `json:"config"`
	// Format is "base64" (default) or "file".
	Format string `json:"format"`
}

// GenerateResponse is the envelope for every /generate reply.
type GenerateResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Server serves the poster generation API.
type Server struct {
	addr    string
	logger  ports.Logger
	options []poster.Option
	tempDir string
}

// New creates a Server listening on addr. The poster options are passed to
// every generator, so callers can swap collaborators (loaders, fonts,
// backends) for all requests at once.
func New(addr string, log ports.Logger, opts ...poster.Option) *Server {
	return &Server{
		addr:    addr,
		logger:  log.WithComponent("server"),
		options: append(opts, poster.WithLogger(log)),
		tempDir: os.TempDir(),
	}
}

// Handler returns the HTTP handler for the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return mux
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("Listening on %s", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		s.logger.Info("Server stopped")
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if len(req.Config) == 0 {
		s.fail(w, http.StatusBadRequest, errors.New("missing config"))
		return
	}

	sc, err := scene.DecodeJSON(req.Config)
	if err != nil {
		// Decode failures are input problems, including bad colors and
		// structural validation.
		s.fail(w, http.StatusBadRequest, err)
		return
	}

	format := req.Format
	if format == "" {
		format = "base64"
	}

	s.logger.Debug("Generate request: %dx%d scene, %d elements, format=%s",
		sc.Width, sc.Height, len(sc.Elements), format)

	gen := poster.FromScene(sc, s.options...)

	switch format {
	case "base64":
		data, err := gen.GenerateBase64(r.Context())
		if err != nil {
			s.fail(w, http.StatusInternalServerError, err)
			return
		}
		s.reply(w, http.StatusOK, GenerateResponse{Success: true, Data: data})
	case "file":
		path := filepath.Join(s.tempDir, fmt.Sprintf("poster_%d.png", time.Now().UnixNano()))
		if err := gen.GenerateFile(r.Context(), path); err != nil {
			s.fail(w, http.StatusInternalServerError, err)
			return
		}
		s.reply(w, http.StatusOK, GenerateResponse{Success: true, Data: path})
	default:
		s.fail(w, http.StatusBadRequest, fmt.Errorf("unknown format %q", format))
	}
}

func (s *Server) fail(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("Generate failed: %s", err)
	s.reply(w, status, GenerateResponse{Success: false, Error: err.Error()})
}

func (s *Server) reply(w http.ResponseWriter, status int, resp GenerateResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
