package pane

import "sync"

// Factory creates a pane for a name that is not registered yet
type Factory func(name string) Pane

// Registry hands out panes by name, creating them on first use
type Registry struct {
	mu      sync.Mutex
	panes   map[string]Pane
	factory Factory
}

// NewRegistry creates a registry. A nil factory creates in-memory panes.
func NewRegistry(factory Factory) *Registry {
	if factory == nil {
		factory = func(name string) Pane { return NewBuffer(name) }
	}
	return &Registry{
		panes:   make(map[string]Pane),
		factory: factory,
	}
}

// Get returns the pane called name, adding it when absent
func (r *Registry) Get(name string) Pane {
	if name == "" {
		name = DefaultPaneName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok := r.panes[name]; ok {
		return p
	}
	p := r.factory(name)
	r.panes[name] = p
	return p
}

// Add registers p under its own name, replacing any pane already there
func (r *Registry) Add(p Pane) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panes[p.Name()] = p
}

// Names lists the registered pane names
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.panes))
	for name := range r.panes {
		names = append(names, name)
	}
	return names
}
