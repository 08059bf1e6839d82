// Package enginepool keeps language-specific collaborator engines loaded and shared.
//
// Engines are created lazily, once per key, and handed out with a reference
// count. An engine is only closed when nobody holds it, so evicting one language
// to make room for another never pulls an engine out from under a running call.
package enginepool

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Factory builds the engine for key
type Factory[E io.Closer] func(ctx context.Context, key string) (E, error)

type entry[E io.Closer] struct {
	engine   E
	refs     int
	lastUsed time.Time
}

// Pool is a keyed set of lazily built, reference-counted engines
type Pool[E io.Closer] struct {
	name    string
	factory Factory[E]
	maxIdle int
	logger  *zap.Logger

	mu      sync.Mutex
	entries map[string]*entry[E]
	group   singleflight.Group
	closed  bool
}

// New creates a pool. maxIdle bounds how many engines stay loaded once released; 0 means unbounded.
func New[E io.Closer](name string, factory Factory[E], maxIdle int, logger *zap.Logger) *Pool[E] {
	return &Pool[E]{
		name:    name,
		factory: factory,
		maxIdle: maxIdle,
		logger:  logger.With(zap.String("pool", name)),
		entries: make(map[string]*entry[E]),
	}
}

// Acquire returns the engine for key, building it if needed.
// The caller must call release exactly when done; extra calls are ignored.
func (p *Pool[E]) Acquire(ctx context.Context, key string) (E, func(), error) {
	for {
		p.mu.Lock()
		if p.closed {
			p.mu.Unlock()
			var zero E
			return zero, func() {}, fmt.Errorf("%s pool is closed", p.name)
		}
		if e, ok := p.entries[key]; ok {
			e.refs++
			p.mu.Unlock()
			return e.engine, p.releaser(key, e), nil
		}
		p.mu.Unlock()

		// One build per key; concurrent callers for the same key wait on it.
		// The build outlives the caller that started it, since others may be waiting.
		buildCtx := context.WithoutCancel(ctx)
		done := p.group.DoChan(key, func() (any, error) {
			p.mu.Lock()
			_, ok := p.entries[key]
			p.mu.Unlock()
			if ok {
				return nil, nil
			}

			p.logger.Info("Initializing engine", zap.String("key", key))
			engine, err := p.factory(buildCtx, key)
			if err != nil {
				p.logger.Error("Failed to initialize engine", zap.String("key", key), zap.Error(err))
				return nil, err
			}

			p.mu.Lock()
			if p.closed {
				p.mu.Unlock()
				engine.Close()
				return nil, fmt.Errorf("%s pool is closed", p.name)
			}
			p.entries[key] = &entry[E]{engine: engine, lastUsed: time.Now()}
			p.mu.Unlock()
			return nil, nil
		})

		var err error
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case res := <-done:
			err = res.Err
		}
		if err != nil {
			var zero E
			return zero, func() {}, err
		}
		// Loop to take a reference; the fresh entry may have been evicted in between.
	}
}

func (p *Pool[E]) releaser(key string, e *entry[E]) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			e.refs--
			e.lastUsed = time.Now()
			victims := p.evictLocked(key)
			p.mu.Unlock()

			p.closeAll(victims)
		})
	}
}

// evictLocked drops idle engines, least recently used first, until at most
// maxIdle remain. keep is evicted last so the engine just used survives.
func (p *Pool[E]) evictLocked(keep string) map[string]E {
	if p.maxIdle <= 0 || len(p.entries) <= p.maxIdle {
		return nil
	}

	keys := make([]string, 0, len(p.entries))
	for k, e := range p.entries {
		if e.refs == 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == keep || keys[j] == keep {
			return keys[j] == keep
		}
		return p.entries[keys[i]].lastUsed.Before(p.entries[keys[j]].lastUsed)
	})

	victims := make(map[string]E)
	for _, k := range keys {
		if len(p.entries) <= p.maxIdle {
			break
		}
		victims[k] = p.entries[k].engine
		delete(p.entries, k)
	}
	return victims
}

func (p *Pool[E]) closeAll(engines map[string]E) {
	for k, engine := range engines {
		p.logger.Info("Releasing engine", zap.String("key", k))
		if err := engine.Close(); err != nil {
			p.logger.Warn("Failed to close engine", zap.String("key", k), zap.Error(err))
		}
	}
}

// Loaded returns the keys of the engines currently held, sorted
func (p *Pool[E]) Loaded() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	keys := make([]string, 0, len(p.entries))
	for k := range p.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Close closes every engine and rejects further Acquire calls
func (p *Pool[E]) Close() error {
	p.mu.Lock()
	p.closed = true
	engines := make(map[string]E, len(p.entries))
	for k, e := range p.entries {
		engines[k] = e.engine
	}
	p.entries = make(map[string]*entry[E])
	p.mu.Unlock()

	p.closeAll(engines)
	return nil
}
