package index

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Registry is a read-only name lookup over generated entries.
type Registry struct {
	entries map[string]Entry
	ordered []Entry
}

// NewRegistry builds a registry from entries. Later duplicates of a name are ignored.
func NewRegistry(entries []Entry) *Registry {
	r := &Registry{
		entries: make(map[string]Entry, len(entries)),
		ordered: make([]Entry, 0, len(entries)),
	}
	for _, e := range entries {
		if _, exists := r.entries[e.Name]; exists {
			continue
		}
		r.entries[e.Name] = e
		r.ordered = append(r.ordered, e)
	}
	return r
}

// LoadRegistry reads the list artifact in dir.
func LoadRegistry(fs afero.Fs, dir string) (*Registry, error) {
	path := filepath.Join(dir, ListFile)
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return NewRegistry(entries), nil
}

// Get returns the entry for name.
func (r *Registry) Get(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Identifier returns the markup token for name, or "" if unknown.
func (r *Registry) Identifier(name string) string {
	return r.entries[name].Identifier
}

// List returns a copy of all entries in list order.
func (r *Registry) List() []Entry {
	out := make([]Entry, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.ordered)
}
