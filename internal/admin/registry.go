// Package admin exposes registered data models to a generic management
// surface.
//
// Models are registered through an explicit, ordered list of
// (model name, presentation, data source) entries built during startup.
// There is no reflection: each registration names its fields and supplies a
// function producing rows.
package admin

import (
	"context"
	"fmt"
	"sync"
)

// Row is a single record of a registered model, keyed by field name.
type Row map[string]any

// ListFunc produces the rows of a registered model.
type ListFunc func(ctx context.Context) ([]Row, error)

// Presentation describes how a model's rows are rendered in the management
// surface.
type Presentation struct {
	ListDisplay  []string `json:"list_display"`
	SearchFields []string `json:"search_fields,omitempty"`
	Ordering     string   `json:"ordering,omitempty"`
	PerPage      int      `json:"per_page"`
}

// DefaultPresentation returns the plain presentation: all the given fields
// listed, no search, default page size.
func DefaultPresentation(fields ...string) Presentation {
	return Presentation{
		ListDisplay: fields,
		PerPage:     25,
	}
}

// Registration binds a model name to its presentation and data source.
type Registration struct {
	Model        string
	Presentation Presentation
	List         ListFunc
}

// Registry holds the registered models in registration order.
type Registry struct {
	mu     sync.RWMutex
	regs   []Registration
	byName map[string]int
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]int),
	}
}

// Register adds a model to the registry. Registering a model name twice is a
// wiring mistake and returns an error; the existing entry stays.
func (r *Registry) Register(reg Registration) error {
	if reg.Model == "" {
		return fmt.Errorf("admin: registration without a model name")
	}
	if reg.List == nil {
		return fmt.Errorf("admin: model %q registered without a data source", reg.Model)
	}
	if len(reg.Presentation.ListDisplay) == 0 {
		return fmt.Errorf("admin: model %q registered without list fields", reg.Model)
	}
	if reg.Presentation.PerPage < 1 {
		reg.Presentation.PerPage = 25
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[reg.Model]; exists {
		return fmt.Errorf("admin: model %q already registered", reg.Model)
	}

	r.byName[reg.Model] = len(r.regs)
	r.regs = append(r.regs, reg)

	return nil
}

// Registrations returns the registered models in registration order.
func (r *Registry) Registrations() []Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Registration, len(r.regs))
	copy(out, r.regs)
	return out
}

// Lookup returns the registration for the given model name.
func (r *Registry) Lookup(model string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byName[model]
	if !ok {
		return Registration{}, false
	}
	return r.regs[idx], true
}

// Project reduces a row to the fields named by the presentation's
// ListDisplay, in order. Missing fields come through as nil.
func (p Presentation) Project(row Row) Row {
	out := make(Row, len(p.ListDisplay))
	for _, field := range p.ListDisplay {
		out[field] = row[field]
	}
	return out
}
