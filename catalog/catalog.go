// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlset/sampler"
)

var (
	// ErrNotFound indicates a lookup of an unregistered name.
	ErrNotFound = errors.New("catalog: function not found")

	// ErrDuplicate indicates a second registration under the same name.
	ErrDuplicate = errors.New("catalog: function already registered")

	// ErrNonDeterministic indicates a spec whose function is not reproducible
	// and therefore must not be sampled.
	ErrNonDeterministic = errors.New("catalog: function is non-deterministic")

	// ErrInvalidSpec indicates a spec without a name or function, or with a bad domain.
	ErrInvalidSpec = errors.New("catalog: invalid function spec")
)

// FunctionSpec is an immutable description of one function.
//   - ID identifies the function for memoization; New and Register assign a
//     UUID. Validate rejects an empty ID.
//   - ValueRange is a suggested banding range covering f on Domain.
//   - Integral is ∫ f over Domain when HasIntegral is true.
type FunctionSpec struct {
	ID            string
	Name          string
	Note          string
	Domain        sampler.Domain
	ValueRange    sampler.Domain
	Fn            sampler.Func
	Deterministic bool
	HasIntegral   bool
	Integral      float64
}

// New builds a deterministic spec with a fresh UUID identity.
func New(name string, domain, valueRange sampler.Domain, fn sampler.Func) FunctionSpec {
	return FunctionSpec{
		ID:            uuid.NewString(),
		Name:          name,
		Domain:        domain,
		ValueRange:    valueRange,
		Fn:            fn,
		Deterministic: true,
	}
}

// WithIntegral returns a copy of s carrying the closed-form integral v.
func (s FunctionSpec) WithIntegral(v float64) FunctionSpec {
	s.HasIntegral, s.Integral = true, v

	return s
}

// Validate reports whether s may be handed to the sampling engines.
func (s FunctionSpec) Validate() error {
	if s.Name == "" || s.Fn == nil {
		return fmt.Errorf("%w: name and function are required", ErrInvalidSpec)
	}
	if s.ID == "" {
		return fmt.Errorf("%w: %q has no ID (build it with New or Register it)", ErrInvalidSpec, s.Name)
	}
	if err := s.Domain.Validate(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidSpec, s.Name, err)
	}
	if !s.Deterministic {
		return fmt.Errorf("%w: %q", ErrNonDeterministic, s.Name)
	}

	return nil
}

// Registry is a name-indexed set of specs. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]FunctionSpec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]FunctionSpec)}
}

// Register adds s. Specs without an ID get a UUID. Non-deterministic specs are
// accepted (they carry documentation) but fail Validate.
func (r *Registry) Register(s FunctionSpec) error {
	if s.Name == "" || s.Fn == nil {
		return fmt.Errorf("%w: name and function are required", ErrInvalidSpec)
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.specs[s.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, s.Name)
	}
	r.specs[s.Name] = s

	return nil
}

// Lookup returns the spec registered under name.
func (r *Registry) Lookup(name string) (FunctionSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.specs[name]
	if !ok {
		return FunctionSpec{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	return s, nil
}

// Names returns the registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.specs))
	for n := range r.specs {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

// All returns every spec ordered by name.
func (r *Registry) All() []FunctionSpec {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]FunctionSpec, 0, len(names))
	for _, n := range names {
		if s, ok := r.specs[n]; ok {
			out = append(out, s)
		}
	}

	return out
}
