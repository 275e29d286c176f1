package param

import (
	"fmt"
	"sync"

	"github.com/justyntemme/vst3param/pkg/framework/debug"
)

// Registry owns a plugin's parameters. It implements Subscriber: parameters
// built from an Info whose Manager is the registry add themselves, and the
// registry disposes them when they are removed.
type Registry struct {
	mu      sync.RWMutex
	entries []*Parameter // indexed by Handle, nil once removed
	byID    map[uint32]Handle
	byName  map[string]Handle
	log     *debug.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[uint32]Handle),
		byName: make(map[string]Handle),
		log:    debug.Default().With("param"),
	}
}

// SetLogger replaces the registry's logger.
func (r *Registry) SetLogger(l *debug.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = l
}

// SubscribeTo records p and returns its handle. When two parameters share an
// ID or name, lookups keep resolving to the first.
func (r *Registry) SubscribeTo(p *Parameter) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := Handle(len(r.entries))
	r.entries = append(r.entries, p)

	info := p.Info()
	if _, dup := r.byID[info.ID]; dup {
		r.log.Warn("parameter %q reuses id %d", info.Name, info.ID)
	} else {
		r.byID[info.ID] = h
	}
	if _, dup := r.byName[info.Name]; !dup {
		r.byName[info.Name] = h
	}

	r.log.Debug("registered parameter %d %q as handle %d", info.ID, info.Name, h)
	return h
}

// Add creates one parameter per info with the registry as manager. Each
// parameter gets its own copy of the info, so the caller's values are left
// untouched and may be added to several registries.
func (r *Registry) Add(infos ...*Info) ([]*Parameter, error) {
	params := make([]*Parameter, 0, len(infos))
	for i, info := range infos {
		if info == nil {
			return params, fmt.Errorf("info %d: %w", i, ErrArgumentNull)
		}
		c := *info
		c.Manager = r
		p, err := New(&c)
		if err != nil {
			return params, err
		}
		// the parameter keeps only its handle
		c.Manager = nil
		params = append(params, p)
	}
	return params, nil
}

// Get retrieves a parameter by handle.
func (r *Registry) Get(h Handle) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h < 0 || int(h) >= len(r.entries) {
		return nil
	}
	return r.entries[h]
}

// ByID retrieves a parameter by ID.
func (r *Registry) ByID(id uint32) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h, ok := r.byID[id]; ok {
		return r.entries[h]
	}
	return nil
}

// ByName retrieves a parameter by name.
func (r *Registry) ByName(name string) *Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h, ok := r.byName[name]; ok {
		return r.entries[h]
	}
	return nil
}

// Count returns the number of live parameters.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, p := range r.entries {
		if p != nil {
			n++
		}
	}
	return n
}

// All returns the live parameters in registration order.
func (r *Registry) All() []*Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Parameter, 0, len(r.entries))
	for _, p := range r.entries {
		if p != nil {
			result = append(result, p)
		}
	}
	return result
}

// Indexed returns, in registration order, the live parameters that ByID
// resolves to. A parameter whose ID is shadowed by an earlier one is left
// out, so every ID appears once.
func (r *Registry) Indexed() []*Parameter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Parameter, 0, len(r.byID))
	for h, p := range r.entries {
		if p != nil && r.byID[p.Info().ID] == Handle(h) {
			result = append(result, p)
		}
	}
	return result
}

// Remove drops the parameter at h and disposes it. It reports whether h
// referred to a live parameter.
func (r *Registry) Remove(h Handle) bool {
	r.mu.Lock()
	if h < 0 || int(h) >= len(r.entries) || r.entries[h] == nil {
		r.mu.Unlock()
		return false
	}

	p := r.entries[h]
	r.entries[h] = nil
	info := p.Info()
	if r.byID[info.ID] == h {
		delete(r.byID, info.ID)
	}
	if r.byName[info.Name] == h {
		delete(r.byName, info.Name)
	}
	r.reindex(info.ID, info.Name)
	r.log.Debug("removed parameter %d %q", info.ID, info.Name)
	r.mu.Unlock()

	p.Dispose()
	return true
}

// reindex points the ID and name lookups at the earliest live parameter
// still carrying them. r.mu must be held.
func (r *Registry) reindex(id uint32, name string) {
	_, haveID := r.byID[id]
	_, haveName := r.byName[name]

	for h, p := range r.entries {
		if haveID && haveName {
			return
		}
		if p == nil || p.Disposed() {
			continue
		}
		info := p.Info()
		if !haveID && info.ID == id {
			r.byID[id] = Handle(h)
			haveID = true
		}
		if !haveName && info.Name == name {
			r.byName[name] = Handle(h)
			haveName = true
		}
	}
}

// Close disposes every parameter and empties the registry.
func (r *Registry) Close() {
	r.mu.Lock()
	entries := r.entries
	r.entries = nil
	r.byID = make(map[uint32]Handle)
	r.byName = make(map[string]Handle)
	r.mu.Unlock()

	for _, p := range entries {
		if p != nil {
			p.Dispose()
		}
	}
}
