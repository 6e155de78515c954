package syncer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
	"github.com/dmitrijs2005/lifearchive/internal/codec"
	"github.com/dmitrijs2005/lifearchive/internal/logging"
	"github.com/dmitrijs2005/lifearchive/internal/sanitize"
)

// Store is the on-device copy.
type Store interface {
	Load(ctx context.Context) (*archive.Document, error)
	Save(ctx context.Context, doc *archive.Document) error
}

// Remote is the server copy.
type Remote interface {
	Fetch(ctx context.Context) (*archive.Document, error)
	Push(ctx context.Context, doc *archive.Document) error
}

type State int

const (
	StateLoading State = iota
	StateLocalReady
	StateReconciled
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLocalReady:
		return "local-ready"
	case StateReconciled:
		return "reconciled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Option func(*Controller)

// WithClock replaces time.Now for stamping updates.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithCodec sets the codec used by Import and Export.
func WithCodec(cd *codec.Codec) Option {
	return func(c *Controller) { c.codec = cd }
}

// Controller owns the current document. It is safe for concurrent use.
type Controller struct {
	local  Store
	remote Remote
	codec  *codec.Codec
	log    logging.Logger
	now    func() time.Time

	mu    sync.RWMutex
	doc   *archive.Document
	state State

	tasks   sync.WaitGroup
	pmu     sync.Mutex
	pending int

	readyOnce sync.Once
	ready     chan struct{}
}

func New(local Store, remote Remote, log logging.Logger, opts ...Option) *Controller {
	c := &Controller{
		local:  local,
		remote: remote,
		log:    log,
		now:    time.Now,
		state:  StateLoading,
		ready:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.codec == nil {
		c.codec = codec.New(nil, c.now)
	}
	return c
}

// track runs fn in the background and counts it as pending until it returns.
func (c *Controller) track(fn func()) {
	c.pmu.Lock()
	c.pending++
	c.pmu.Unlock()
	c.tasks.Add(1)

	go func() {
		defer func() {
			c.pmu.Lock()
			c.pending--
			c.pmu.Unlock()
			c.tasks.Done()
		}()
		fn()
	}()
}

// Wait blocks until every background fetch and push has settled.
func (c *Controller) Wait() {
	c.tasks.Wait()
}

// Pending returns the number of background tasks still running.
func (c *Controller) Pending() int {
	c.pmu.Lock()
	defer c.pmu.Unlock()
	return c.pending
}

// Ready is closed once the first reconciliation has settled, successfully
// or not.
func (c *Controller) Ready() <-chan struct{} {
	return c.ready
}

func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Document returns a copy of the current document, or nil before Load.
func (c *Controller) Document() *archive.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.doc == nil {
		return nil
	}
	return c.doc.Clone()
}

func (c *Controller) loadLocal(ctx context.Context) *archive.Document {
	doc, err := c.local.Load(ctx)
	if err != nil || doc == nil {
		c.log.Warn(ctx, "local archive unavailable, using seed", "error", err)
		return archive.Fallback(c.now())
	}
	return doc
}

// Load makes the local copy current and starts reconciling with the server
// in the background. It returns the local copy.
func (c *Controller) Load(ctx context.Context) *archive.Document {
	doc := c.loadLocal(ctx)

	c.mu.Lock()
	c.doc = doc
	c.state = StateLocalReady
	c.mu.Unlock()

	bg := context.WithoutCancel(ctx)
	c.track(func() { c.reconcile(bg) })

	return doc.Clone()
}

func (c *Controller) reconcile(ctx context.Context) {
	defer func() {
		c.mu.Lock()
		c.state = StateReconciled
		c.mu.Unlock()
		c.readyOnce.Do(func() { close(c.ready) })
	}()

	remote, err := c.remote.Fetch(ctx)
	if err != nil {
		c.log.Debug(ctx, "remote archive unavailable, keeping local copy", "error", err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// The local copy may have changed since Load; compare against what is
	// stored now.
	local := c.loadLocal(ctx)
	remoteStamp := archive.ParseTimestamp(remote.UpdatedAt)
	localStamp := archive.ParseTimestamp(local.UpdatedAt)

	if remoteStamp >= localStamp {
		c.doc = remote
		if err := c.local.Save(ctx, remote); err != nil {
			c.log.Warn(ctx, "failed to store remote archive locally", "error", err)
		}
		c.log.Debug(ctx, "adopted remote archive", "remote", remote.UpdatedAt, "local", local.UpdatedAt)
		return
	}

	c.doc = local
	c.log.Debug(ctx, "kept local archive", "remote", remote.UpdatedAt, "local", local.UpdatedAt)
}

// Update applies mutate to a copy of the current document, stamps it, stores
// it locally and pushes it to the server in the background. Local and push
// failures are logged only. The updated document is returned.
func (c *Controller) Update(ctx context.Context, mutate func(doc *archive.Document)) *archive.Document {
	next := c.apply(ctx, mutate)

	snapshot := next.Clone()
	bg := context.WithoutCancel(ctx)
	c.track(func() {
		if err := c.remote.Push(bg, snapshot); err != nil {
			c.log.Warn(bg, "failed to push archive", "updatedAt", snapshot.UpdatedAt, "error", err)
		}
	})

	return next.Clone()
}

// apply runs mutate on a copy of the current document and makes the stamped
// result current. A panicking mutate leaves the current document unchanged.
func (c *Controller) apply(ctx context.Context, mutate func(doc *archive.Document)) *archive.Document {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.doc == nil {
		c.doc = c.loadLocal(ctx)
		c.state = StateLocalReady
	}
	next := c.doc.Clone()
	mutate(next)
	next.UpdatedAt = archive.FormatTimestamp(c.now())
	c.doc = next

	if err := c.local.Save(ctx, next); err != nil {
		c.log.Warn(ctx, "failed to save archive locally", "error", err)
	}
	return next
}

// Refresh re-reads the local copy without touching the server.
func (c *Controller) Refresh(ctx context.Context) *archive.Document {
	doc := c.loadLocal(ctx)

	c.mu.Lock()
	c.doc = doc
	if c.state == StateLoading {
		c.state = StateLocalReady
	}
	c.mu.Unlock()

	return doc.Clone()
}

// Import replaces the whole archive with a backup. Invalid JSON is returned
// as an error and leaves everything untouched.
func (c *Controller) Import(ctx context.Context, data []byte) (sanitize.Report, error) {
	imported, report, err := c.codec.Deserialize(data)
	if err != nil {
		return report, err
	}

	c.Update(ctx, func(doc *archive.Document) { *doc = *imported })
	c.Refresh(ctx)
	return report, nil
}

// Export renders the current document for a backup file and returns the
// file name to use.
func (c *Controller) Export() ([]byte, string, error) {
	doc := c.Document()
	if doc == nil {
		return nil, "", fmt.Errorf("archive not loaded")
	}
	data, err := c.codec.SerializeIndent(doc)
	if err != nil {
		return nil, "", err
	}
	return data, codec.ExportFileName(c.now()), nil
}

// Pull adopts the server copy as a regular update, so it is stamped, stored
// locally and pushed back. Unlike Load, a failed fetch is returned.
func (c *Controller) Pull(ctx context.Context) (*archive.Document, error) {
	remote, err := c.remote.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("pull: %w", err)
	}

	c.Update(ctx, func(doc *archive.Document) { *doc = *remote })
	return c.Refresh(ctx), nil
}

// Push sends the current document to the server and waits for the result.
func (c *Controller) Push(ctx context.Context) error {
	doc := c.Document()
	if doc == nil {
		doc = c.Refresh(ctx)
	}
	if err := c.remote.Push(ctx, doc); err != nil {
		return fmt.Errorf("push: %w", err)
	}
	return nil
}
