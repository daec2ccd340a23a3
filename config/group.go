package config

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Group is a named collection of cells, registered once at startup and
// addressed by key afterward — each demo binary keeps its live-tunable
// settings (the windowed demo's audio volume, the headless demo's
// heartbeat interval) in one Group.
type Group struct {
	mu    sync.RWMutex
	cells map[string]cell
}

// NewGroup returns an empty Group.
func NewGroup() *Group {
	return &Group{cells: make(map[string]cell)}
}

// Register adds c to the group under key. It panics if key is already
// registered — a duplicate registration is a programming error, not a
// runtime condition callers should need to handle.
func (g *Group) Register(key string, c cell) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.cells[key]; exists {
		panic(fmt.Sprintf("config: key %q already registered", key))
	}
	g.cells[key] = c
}

// Set looks up key and forwards value to its cell's Set. Returns an error
// if key is not registered.
func (g *Group) Set(key string, value Value) error {
	g.mu.RLock()
	c, ok := g.cells[key]
	g.mu.RUnlock()

	if !ok {
		return fmt.Errorf("config: unknown key %q", key)
	}
	return c.Set(value)
}

// Get looks up key and returns its cell's current value. The second return
// is false if key is not registered.
func (g *Group) Get(key string) (Value, bool) {
	g.mu.RLock()
	c, ok := g.cells[key]
	g.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return c.Get(), true
}

// Keys returns every registered key, sorted.
func (g *Group) Keys() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := make([]string, 0, len(g.cells))
	for k := range g.cells {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders every registered cell as "key::value" pairs, separated by
// "; ", sorted by key — a compact form suitable for a command line or a log
// entry.
func (g *Group) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := make([]string, 0, len(g.cells))
	for k := range g.cells {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var s strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&s, "%s::%s; ", k, g.cells[k])
	}
	return strings.TrimSuffix(s.String(), "; ")
}
