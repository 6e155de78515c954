package syncer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/lifearchive/internal/archive"
)

var errOffline = errors.New("offline")

type memStore struct {
	mu      sync.Mutex
	doc     *archive.Document
	saves   int
	saveErr error
}

func newMemStore(doc *archive.Document) *memStore {
	return &memStore{doc: doc}
}

func (m *memStore) Load(context.Context) (*archive.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.doc == nil {
		return archive.Fallback(testNow), nil
	}
	return m.doc.Clone(), nil
}

func (m *memStore) Save(_ context.Context, doc *archive.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.doc = doc.Clone()
	return nil
}

func (m *memStore) saveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *memStore) stored() *archive.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doc.Clone()
}

// fakeRemote answers Fetch from doc (or fetchErr) and records every push.
// When gated, each Fetch and Push blocks until released.
type fakeRemote struct {
	mu       sync.Mutex
	doc      *archive.Document
	fetchErr error
	pushErr  error
	pushes   []*archive.Document

	fetchGate chan struct{}
	pushGates []chan struct{}
	pushSeen  chan int
	calls     int
}

func (f *fakeRemote) Fetch(context.Context) (*archive.Document, error) {
	if f.fetchGate != nil {
		<-f.fetchGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	if f.doc == nil {
		return nil, errOffline
	}
	return f.doc.Clone(), nil
}

func (f *fakeRemote) Push(_ context.Context, doc *archive.Document) error {
	f.mu.Lock()
	n := f.calls
	f.calls++
	var gate chan struct{}
	if n < len(f.pushGates) {
		gate = f.pushGates[n]
	}
	f.mu.Unlock()

	if f.pushSeen != nil {
		f.pushSeen <- n
	}
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pushErr != nil {
		return f.pushErr
	}
	f.pushes = append(f.pushes, doc.Clone())
	f.doc = doc.Clone()
	return nil
}

func (f *fakeRemote) pushed() []*archive.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*archive.Document(nil), f.pushes...)
}

func (f *fakeRemote) current() *archive.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.doc.Clone()
}

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	t := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}
