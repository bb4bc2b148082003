// Package inspector is a minimal stand-in for the Ray desktop app: it accepts
// requests on the Ray port, prints their payloads and serves what it received
// as JSON.
package inspector

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/akave-ai/goray/internal/config"
)

// Server holds the Echo app and the received sessions.
type Server struct {
	Echo   *echo.Echo
	Config *config.Inspector
	Store  *Store
	logger zerolog.Logger
}

// New builds the server and registers routes. Payloads are rendered to out
// unless it is nil.
func New(cfg *config.Inspector, out io.Writer, logger zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug().Str("method", v.Method).Str("uri", v.URI).Int("status", v.Status).Msg("request")
			return nil
		},
	}))

	store := NewStore(cfg.RecentLimit)
	var renderer *Renderer
	if out != nil {
		renderer = NewRenderer(out, cfg.NoColor)
	}
	ingest := NewIngest(store, renderer, logger)

	// Ray clients post to the root path.
	e.POST("/", echo.WrapHandler(ingest))

	e.GET("/requests", func(c echo.Context) error {
		return ok(c, map[string]any{"requests": store.Recent()})
	})
	e.GET("/requests/:uuid", func(c echo.Context) error {
		rec, found := store.Get(c.Param("uuid"))
		if !found {
			return notFound(c, "unknown session "+c.Param("uuid"))
		}
		return ok(c, rec)
	})

	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout
	e.Server.IdleTimeout = cfg.IdleTimeout

	return &Server{Echo: e, Config: cfg, Store: store, logger: logger}
}

// Start serves until ctx is cancelled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.Shutdown(context.Background())
	}()
	addr := ":" + s.Config.Port
	s.logger.Info().Str("addr", addr).Msg("inspector listening")
	if err := s.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
