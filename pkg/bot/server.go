// Package bot is the dispatch façade: an HTTP endpoint that verifies
// Discord's request signatures, decodes interactions and routes them
// through the command registry. It uses Echo v5 for routing and runs
// under the fx lifecycle.
package bot

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"go.uber.org/zap"

	"hookbot/pkg/command"
	"hookbot/pkg/config"
	"hookbot/pkg/logger"
	"hookbot/pkg/rest"
)

// Server is the inbound interactions endpoint.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server
	config     *config.Config
	logger     *logger.Logger
	registry   *command.Registry
	rest       *rest.Client
	publicKey  ed25519.PublicKey
}

// NewServer creates the interactions server. The configured public key
// must be valid hex; config validation guarantees the length.
func NewServer(
	cfg *config.Config,
	log *logger.Logger,
	registry *command.Registry,
	client *rest.Client,
) (*Server, error) {
	// Validation trims the key before checking it, so decode the same
	// trimmed form here.
	raw, err := hex.DecodeString(strings.TrimSpace(cfg.App.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("decoding public key: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key is %d bytes, want %d", len(raw), ed25519.PublicKeySize)
	}

	s := &Server{
		config:    cfg,
		logger:    log,
		registry:  registry,
		rest:      client,
		publicKey: ed25519.PublicKey(raw),
	}
	s.setup()
	return s, nil
}

func (s *Server) setup() {
	e := echo.New()
	e.Use(middleware.Recover())
	e.POST(s.config.Server.Path, s.handleInteraction)
	s.echo = e
}

// Handler exposes the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start begins serving in the background.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("interactions server starting",
		zap.String("addr", addr),
		zap.String("path", s.config.Server.Path),
	)

	// Use http.Server directly so we can control shutdown from fx lifecycle
	// (Echo v5's e.Start() manages its own signal handling which conflicts with fx).
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.echo,
	}

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("interactions server error", zap.Error(err))
		}
	}()

	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("interactions server stopping")
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// RegisterCommands pushes the full command tree to Discord, replacing
// whatever set the application had.
func (s *Server) RegisterCommands(ctx context.Context) error {
	payload := s.registry.MarshalWire()
	path := fmt.Sprintf("/applications/%d/commands", s.config.App.ID)
	if _, err := s.rest.Put(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}
	s.logger.Info("commands registered", zap.Int("count", s.registry.Len()))
	return nil
}
