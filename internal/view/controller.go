package view

import (
	"context"
	"sync"

	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/common/metrics"
)

// FetchFunc loads the full remote collection for an entity.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Controller owns one entity collection: the loaded items, the loading flag,
// the last load error, and the patch machinery that keeps the local copy in
// step with confirmed remote mutations. All methods are safe for concurrent
// use.
type Controller[T any] struct {
	entity string
	fetch  FetchFunc[T]
	idOf   func(T) string
	log    logger.Logger

	mu      sync.RWMutex
	items   []T
	loading bool
	loaded  bool
	lastErr error

	lockMu      sync.Mutex
	entityLocks map[string]*sync.Mutex
}

func NewController[T any](entity string, fetch FetchFunc[T], idOf func(T) string, log logger.Logger) *Controller[T] {
	return &Controller[T]{
		entity:      entity,
		fetch:       fetch,
		idOf:        idOf,
		log:         log,
		entityLocks: make(map[string]*sync.Mutex),
	}
}

// Load replaces the local collection with a fresh remote fetch. A failed
// fetch records the error and leaves the previous items untouched so the
// page keeps rendering stale data alongside the error.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.lastErr = err
		c.log.WithError(err).Error("collection load failed", map[string]interface{}{
			"entity": c.entity,
		})
		return err
	}
	c.items = items
	c.loaded = true
	c.lastErr = nil
	return nil
}

// Items returns a copy of the current collection.
func (c *Controller[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// View returns the collection narrowed by the given predicates. Nil
// predicates are inactive, so View() with no criteria set is the full
// collection.
func (c *Controller[T]) View(preds ...Predicate[T]) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Filter(c.items, preds...)
}

// Loading reports whether a load is in flight. It is independent of the
// error state: a page can be loading, errored, or both stale and reloading.
func (c *Controller[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Loaded reports whether at least one fetch has succeeded.
func (c *Controller[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// LastError returns the most recent load failure, or nil after a success.
func (c *Controller[T]) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// ApplyPatch rewrites the locally held entity with the given id after the
// remote mutation confirmed. A patch that matches nothing is a state
// inconsistency: the local copy has drifted from the remote collection, so
// it is logged and counted but the collection is left as-is.
func (c *Controller[T]) ApplyPatch(id string, apply func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	patched, ok := PatchByID(c.items, id, c.idOf, apply)
	if !ok {
		metrics.StateInconsistencies.WithLabelValues(c.entity).Inc()
		c.log.Warn("mutation patch matched no local entity", map[string]interface{}{
			"entity": c.entity,
			"id":     id,
		})
		return false
	}
	c.items = patched
	metrics.MutationsReconciled.WithLabelValues(c.entity).Inc()
	return true
}

// Remove drops the entity with the given id after a confirmed delete.
func (c *Controller[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	remaining, ok := RemoveByID(c.items, id, c.idOf)
	if !ok {
		metrics.StateInconsistencies.WithLabelValues(c.entity).Inc()
		c.log.Warn("delete matched no local entity", map[string]interface{}{
			"entity": c.entity,
			"id":     id,
		})
		return false
	}
	c.items = remaining
	metrics.MutationsReconciled.WithLabelValues(c.entity).Inc()
	return true
}

// Insert prepends a confirmed create, keeping created-at-descending order.
func (c *Controller[T]) Insert(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = Prepend(c.items, item)
	metrics.MutationsReconciled.WithLabelValues(c.entity).Inc()
}

// Replace swaps the whole collection, used by flows that refetch after a
// create instead of patching locally.
func (c *Controller[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.loaded = true
	c.lastErr = nil
}

// WithEntityLock serializes mutations targeting the same entity id.
// Mutations on distinct ids proceed concurrently.
func (c *Controller[T]) WithEntityLock(id string, fn func() error) error {
	c.lockMu.Lock()
	l, ok := c.entityLocks[id]
	if !ok {
		l = &sync.Mutex{}
		c.entityLocks[id] = l
	}
	c.lockMu.Unlock()

	l.Lock()
	defer l.Unlock()
	return fn()
}
