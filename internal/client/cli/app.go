package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/client/client"
	"github.com/dmitrijs2005/lifearchive/internal/client/config"
	"github.com/dmitrijs2005/lifearchive/internal/client/repositories/documents"
	"github.com/dmitrijs2005/lifearchive/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/lifearchive/internal/client/syncer"
	"github.com/dmitrijs2005/lifearchive/internal/codec"
	"github.com/dmitrijs2005/lifearchive/internal/logging"
	"github.com/dmitrijs2005/lifearchive/internal/sanitize"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Archive is the part of syncer.Controller the CLI drives.
type Archive interface {
	Load(ctx context.Context) *archive.Document
	Document() *archive.Document
	Update(ctx context.Context, mutate func(doc *archive.Document)) *archive.Document
	Refresh(ctx context.Context) *archive.Document
	Import(ctx context.Context, data []byte) (sanitize.Report, error)
	Export() ([]byte, string, error)
	Pull(ctx context.Context) (*archive.Document, error)
	Push(ctx context.Context) error
	State() syncer.State
	Pending() int
	Wait()
}

// Resetter drops the on-device copy.
type Resetter interface {
	Reset(ctx context.Context) error
}

// Pinger reports whether the server is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	config  *config.Config
	archive Archive
	local   Resetter
	pinger  Pinger
	logger  logging.Logger
	db      *sql.DB

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
	intn   func(n int) int

	mu   sync.Mutex
	mode Mode
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewConsoleLogger(os.Stderr, logging.ParseLevel(c.LogLevel))

	db, err := client.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	cd := codec.New(nil, time.Now)

	local := documents.NewLocalStore(metadata.NewSQLiteRepository(db), cd, logger, time.Now)
	if _, err := local.Init(ctx); err != nil {
		logger.Warn(ctx, "failed to seed local archive", "error", err)
	}

	apiClient := client.NewHTTPClient(c.ServerEndpointAddr, nil, cd)
	ctrl := syncer.New(local, apiClient, logger, syncer.WithCodec(cd))

	return &App{
		config:  c,
		archive: ctrl,
		local:   local,
		pinger:  apiClient,
		logger:  logger,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		now:     time.Now,
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.logger.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// Run loads the archive, starts the REPL and blocks until the user exits.
// Pushes still in flight are awaited before the database is closed.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	a.archive.Load(ctx)
	a.Root(ctx)
	a.archive.Wait()
}

func (a *App) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error(context.Background(), "error closing database", "error", err)
		}
	}
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	check := func() {
		ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := a.pinger.Ping(ctx)
		cancel()

		if err != nil {
			a.setMode(ModeOffline)
		} else {
			a.setMode(ModeOnline)
		}
	}

	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			check()
		case <-ctx.Done():
			return
		}
	}
}
