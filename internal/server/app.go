// Package server initializes and runs the archive server.
// It configures logging and the storage backend, starts the HTTP API and
// handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/lifearchive/internal/codec"
	"github.com/dmitrijs2005/lifearchive/internal/logging"
	"github.com/dmitrijs2005/lifearchive/internal/server/config"
	"github.com/dmitrijs2005/lifearchive/internal/server/httpapi"
	"github.com/dmitrijs2005/lifearchive/internal/server/storage"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	logCloser io.Closer
	store     storage.Store
	api       *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger, logCloser := logging.NewServerLogger(logging.ParseLevel(c.LogLevel), logging.FileOptions{
		Path:       c.LogFile,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 28,
	})

	cd := codec.New(nil, time.Now)

	store, err := storage.New(ctx, c, cd, logger, time.Now)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	api := httpapi.NewServer(store, cd, logger, c.MaxBodyBytes)

	return &App{config: c, logger: logger, logCloser: logCloser, store: store, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.api.Run(ctx, app.config.Addr, app.config.ShutdownTimeout); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until the server stops, either on a signal, on cancellation
// of ctx or because the listener failed.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.store.Name())

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.close(ctx)
}

func (app *App) close(ctx context.Context) {
	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
	_ = app.logCloser.Close()
}
