// Package worker serves the Pub/Sub push endpoint that delivers member notifications.
package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"fitsaga/config"
	"fitsaga/internal/delivery"
	"fitsaga/internal/delivery/middleware"
	"fitsaga/internal/delivery/worker/handler"
	"fitsaga/internal/domain/lifecycle"
	"fitsaga/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const (
	defaultWorkerPort = 8081

	// pushBodyLimit covers the largest Pub/Sub message after base64 and envelope overhead.
	pushBodyLimit = "14M"
)

type workerServer struct {
	addr   string
	logger *slog.Logger
	server *echo.Echo
}

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(workerPort(params.Cfg))),
		logger: params.Logger,
		server: NewEcho(params.Cfg, params.Logger, params.PushHandler),
	}

	params.Lc.Append(fx.StopHook(srv.stop))

	return srv, nil
}

// NewEcho builds the worker's routes: a health check and the push endpoint.
func NewEcho(cfg *config.Config, logger *slog.Logger, push *handler.PushHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(logger).Process,
		middleware.NewLoggerMiddleware(logger, cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST("/push", push.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

func workerPort(cfg *config.Config) int {
	if cfg.Worker == nil || cfg.Worker.Port == 0 {
		return defaultWorkerPort
	}

	return cfg.Worker.Port
}

func (s *workerServer) Serve(_ context.Context) error {
	s.logger.Info("Starting worker HTTP server", slog.String("host_port", s.addr))

	err := s.server.Start(s.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return errors.WithStack(err)
}

func (s *workerServer) stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker HTTP server")

	return errors.WithStack(s.server.Shutdown(ctx))
}
