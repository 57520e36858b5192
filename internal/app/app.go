package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minefield/internal/config"
	"github.com/vancomm/minefield/internal/middleware"
	"github.com/vancomm/minefield/internal/spectate"
)

const shutdownTimeout = 30 * time.Second

// App serves the spectator feed of one session.
type App struct {
	log    logrus.FieldLogger
	router *http.ServeMux
	hub    *spectate.Hub
	ws     *config.WebSocket
}

func New(log logrus.FieldLogger, hub *spectate.Hub) *App {
	return &App{
		log:    log,
		router: http.NewServeMux(),
		hub:    hub,
		ws:     config.NewWebSocket(),
	}
}

func (a *App) Handler() http.Handler {
	a.loadRoutes()
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.log),
		middleware.Cors(),
	)
}

// Start listens on addr until ctx is done, then shuts the server down.
func (a *App) Start(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
	}

	done := make(chan error, 1)
	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			done <- err
		}
		close(done)
	}()

	a.log.WithField("addr", addr).Info("spectator feed listening")
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(ctx)
	}
}
