package console

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/arenacontrol/internal/platform/timeouts"
	"github.com/louisbranch/arenacontrol/internal/services/console/backend"
	consolesqlite "github.com/louisbranch/arenacontrol/internal/services/console/storage/sqlite"
	"github.com/louisbranch/arenacontrol/internal/services/console/submission"
)

// Config defines the inputs for the console process.
type Config struct {
	HTTPAddr   string
	BackendURL string
	// BackendTimeout caps each backend call; zero leaves calls bounded by the
	// request only.
	BackendTimeout time.Duration
	DBPath         string
}

// Server hosts the console over HTTP.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *consolesqlite.Store
}

// NewServer builds a configured console server.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if strings.TrimSpace(config.DBPath) == "" {
		return nil, errors.New("db path is required")
	}

	client, err := backend.NewClient(config.BackendURL, backend.WithTimeout(config.BackendTimeout))
	if err != nil {
		return nil, fmt.Errorf("init backend client: %w", err)
	}
	store, err := consolesqlite.Open(ctx, config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open console store: %w", err)
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           NewHandler(client, submission.NewGate(store)),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("console server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("console listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the submission store.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		log.Printf("close console store: %v", err)
	}
}
