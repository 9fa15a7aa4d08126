package cache

import (
	"sync"

	"github.com/flowgraph/engine/pkg/function"
	"github.com/flowgraph/engine/pkg/types"
)

// Entry is the cached record for a single node. It holds only payloads, not
// the function descriptor that produced them — identity-change invalidation
// is left to the caller, which removes a stale node's entry with
// Invalidate; nothing in this module does so automatically.
type Entry struct {
	Outputs []function.Value

	// RunOrdinal is the run during which Outputs was last produced.
	RunOrdinal int

	// WasExecutedThisRun and HasOutputs are flags an engine.Run sets while
	// walking the plan. WasExecutedThisRun is diagnostic only; HasOutputs is
	// what engine.Run checks to decide whether a node has cached outputs.
	WasExecutedThisRun bool
	HasOutputs         bool
}

func (e *Entry) clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	cp.Outputs = append([]function.Value(nil), e.Outputs...)
	return &cp
}

// Cache holds one Entry per node that has ever produced outputs.
type Cache struct {
	mu         sync.RWMutex
	entries    map[types.NodeIndex]*Entry
	runOrdinal int
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[types.NodeIndex]*Entry)}
}

// RunOrdinal returns the ordinal of the most recently begun run.
func (c *Cache) RunOrdinal() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.runOrdinal
}

// BeginRun advances the run ordinal and clears the per-run diagnostic flags
// on every entry, returning the new ordinal.
func (c *Cache) BeginRun() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.runOrdinal++
	for _, e := range c.entries {
		e.WasExecutedThisRun = false
	}
	return c.runOrdinal
}

// Get returns the cached entry for a node, and whether one exists.
func (c *Cache) Get(idx types.NodeIndex) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[idx]
	if !ok {
		return Entry{}, false
	}
	return *e.clone(), true
}

// HasOutputs reports whether idx has cached outputs from a prior run.
func (c *Cache) HasOutputs(idx types.NodeIndex) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[idx]
	return ok && e.HasOutputs
}

// Put records outputs for idx outright, without touching run bookkeeping,
// e.g. to seed a cache before its first run.
func (c *Cache) Put(idx types.NodeIndex, outputs []function.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[idx] = &Entry{
		Outputs:    append([]function.Value(nil), outputs...),
		RunOrdinal: c.runOrdinal,
		HasOutputs: true,
	}
}

// MarkExecuted records that idx executed during the current run, producing
// outputs.
func (c *Cache) MarkExecuted(idx types.NodeIndex, outputs []function.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[idx] = &Entry{
		Outputs:            append([]function.Value(nil), outputs...),
		RunOrdinal:         c.runOrdinal,
		WasExecutedThisRun: true,
		HasOutputs:         true,
	}
}

// MarkSkipped records that idx was considered but not executed during the
// current run. Any previously cached outputs are left untouched.
func (c *Cache) MarkSkipped(idx types.NodeIndex) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[idx]; ok {
		e.WasExecutedThisRun = false
	}
}

// Invalidate removes a node's cached entry outright, e.g. when the function
// its node refers to changed name, slot count, slot types, or handle
// identity since the entry was produced.
func (c *Cache) Invalidate(idx types.NodeIndex) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, idx)
}

// Clear removes every cached entry and resets the run ordinal.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[types.NodeIndex]*Entry)
	c.runOrdinal = 0
}

// Clone returns a deep, independent copy of the cache. An engine runs
// against a clone so that a failed run can be discarded without disturbing
// the caller's cache.
func (c *Cache) Clone() *Cache {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cp := &Cache{
		entries:    make(map[types.NodeIndex]*Entry, len(c.entries)),
		runOrdinal: c.runOrdinal,
	}
	for idx, e := range c.entries {
		cp.entries[idx] = e.clone()
	}
	return cp
}
