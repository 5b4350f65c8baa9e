package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/radarr-mcp/config"
	"github.com/s0up4200/radarr-mcp/radarr"
)

const serverInstructions = "A comprehensive MCP server for managing movies through Radarr. " +
	"Provides tools for searching, adding, monitoring, and downloading movies automatically."

const shutdownTimeout = 10 * time.Second

// Server hosts the tool/resource registry over the Streamable HTTP
// transport. All handlers share one upstream gateway client; each handler
// issues its upstream calls sequentially.
type Server struct {
	api    radarr.API
	logger zerolog.Logger
	cfg    config.ServerConfig

	mcpServer *mcp.Server
}

// New builds the MCP server and registers every tool and resource.
func New(api radarr.API, cfg config.ServerConfig, version string, logger zerolog.Logger) *Server {
	s := &Server{
		api:    api,
		logger: logger,
		cfg:    cfg,
	}

	s.mcpServer = mcp.NewServer(&mcp.Implementation{
		Name:    "radarr-mcp",
		Title:   "Radarr MCP Server",
		Version: version,
	}, &mcp.ServerOptions{
		Instructions: serverInstructions,
	})

	s.registerTools()
	s.registerResources()

	return s
}

// Handler returns the HTTP handler serving the Streamable endpoint at the
// configured path.
func (s *Server) Handler() http.Handler {
	streamHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	path := s.cfg.Path
	if path == "" {
		return streamHandler
	}

	mux := http.NewServeMux()
	mux.Handle(path, streamHandler)
	if !strings.HasSuffix(path, "/") {
		mux.Handle(path+"/", streamHandler)
	}
	return mux
}

// ListenAndServe runs the HTTP server until the context is cancelled,
// then drains in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	s.logger.Info().Str("addr", addr).Str("path", s.cfg.Path).Msg("Starting MCP server")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info().Msg("Shutting down MCP server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
