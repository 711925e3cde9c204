package lhs

import (
	"encoding/gob"
	"fmt"
	"os"
	"sync"

	"github.com/ranamzr/ramanujan-mitm/utils/structs"
)

// gobTable mirrors Table's unexported fields as exported ones, which
// encoding/gob requires; the entries are encoded as Entry values directly.
type gobTable struct {
	Digits  int
	Entries structs.Map[int64, Entry]
}

// Save writes t to path using encoding/gob. The reference implementation
// pickles the whole Python object graph; since this module has no
// retrieved binary wire-format package of its own, gob -- the standard
// library's native equivalent -- is used instead (see DESIGN.md).
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lhs: save %s: %w", path, err)
	}
	defer f.Close()

	payload := gobTable{Digits: t.digits, Entries: t.entries}
	if err := gob.NewEncoder(f).Encode(payload); err != nil {
		return fmt.Errorf("lhs: encode %s: %w", path, err)
	}
	return nil
}

// Load reads a Table previously written by Save.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lhs: load %s: %w", path, err)
	}
	defer f.Close()

	var payload gobTable
	if err := gob.NewDecoder(f).Decode(&payload); err != nil {
		return nil, fmt.Errorf("lhs: decode %s: %w", path, err)
	}
	return &Table{digits: payload.Digits, entries: payload.Entries}, nil
}

// Registry is a process-lifetime cache of built tables, keyed by the path
// they were (or will be) persisted to. It replaces the reference
// implementation's GlobalHashTableInstance, which relied on CPython
// fork-based multiprocessing giving worker processes a copy-on-write view
// of a single global: Go's worker goroutines already share the heap, so
// the same effect is had here with an explicit map guarded by a mutex
// instead of an implicit OS-level one.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[string]*Table)}
}

// Get returns the table cached under path, if any.
func (r *Registry) Get(path string) (*Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[path]
	return t, ok
}

// Put caches t under path, also persisting it to disk.
func (r *Registry) Put(path string, t *Table) error {
	r.mu.Lock()
	r.tables[path] = t
	r.mu.Unlock()
	return t.Save(path)
}

// LoadOrBuild returns the table cached under path; if none is cached, it
// loads path from disk (if it exists) or builds a fresh one with build,
// caching and persisting the result either way.
func (r *Registry) LoadOrBuild(path string, build func() (*Table, error)) (*Table, error) {
	if t, ok := r.Get(path); ok {
		return t, nil
	}

	if _, err := os.Stat(path); err == nil {
		t, err := Load(path)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		r.tables[path] = t
		r.mu.Unlock()
		return t, nil
	}

	t, err := build()
	if err != nil {
		return nil, err
	}
	if err := r.Put(path, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DefaultRegistry is the package-level registry used by callers that don't
// need an isolated cache.
var DefaultRegistry = NewRegistry()
