package weave

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

var (
	// ErrDuplicateModule indicates an identifier is already registered.
	ErrDuplicateModule = errors.New("module already registered")
	// ErrRegistrySealed indicates registration after startup completed.
	ErrRegistrySealed = errors.New("registry is sealed")
	// ErrModuleNotFound indicates an identifier is not registered.
	ErrModuleNotFound = errors.New("module is not registered")
	// ErrInvalidModule indicates a nil module, a zero ID or an unknown kind.
	ErrInvalidModule = errors.New("invalid module")
)

// Registry maps identifiers to module singletons.
//
// The registry is written during startup only. sync.Map provides lock-free
// reads for the hot path (resolving loadouts on every cast), and Seal makes
// the registry read-only so it can be shared across worlds without locking.
type Registry struct {
	// modules maps ID to Module
	modules sync.Map

	// count is the number of registered modules
	count atomic.Int32

	// sealed rejects registration once startup is done
	sealed atomic.Bool

	// mu serializes writers so duplicate detection is exact
	mu sync.Mutex

	log *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger uses slog.Default().
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{log: log}
}

// Register adds a module. A duplicate identifier is logged and rejected; the
// first registration is kept.
func (r *Registry) Register(m Module) error {
	if m == nil || m.ID().IsZero() || !m.Kind().Valid() {
		r.log.Warn("weave: rejected invalid module registration")
		return ErrInvalidModule
	}
	id := m.ID()

	if r.sealed.Load() {
		r.log.Warn("weave: registration after seal", "id", id.String())
		return fmt.Errorf("%w: %s", ErrRegistrySealed, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, loaded := r.modules.LoadOrStore(id, m); loaded {
		r.log.Warn("weave: duplicate module registration", "id", id.String())
		return fmt.Errorf("%w: %s", ErrDuplicateModule, id)
	}
	r.count.Add(1)
	r.log.Debug("weave: registered module", "id", id.String(), "kind", m.Kind().String())
	return nil
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.sealed.Store(true)
}

// Sealed reports whether the registry is read-only.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Get returns the module registered under id.
func (r *Registry) Get(id ID) (Module, bool) {
	if r == nil {
		return nil, false
	}
	v, ok := r.modules.Load(id)
	if !ok {
		return nil, false
	}
	return v.(Module), true
}

// Lookup parses s and returns the registered module.
// The error wraps ErrMalformedID or ErrModuleNotFound.
func (r *Registry) Lookup(s string) (Module, error) {
	id, err := ParseID(s)
	if err != nil {
		return nil, err
	}
	m, ok := r.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrModuleNotFound, id)
	}
	return m, nil
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id ID) bool {
	_, ok := r.Get(id)
	return ok
}

// ListIDs returns all registered identifiers, sorted by their string form.
func (r *Registry) ListIDs() []ID {
	if r == nil {
		return nil
	}
	ids := make([]ID, 0, r.Len())
	r.modules.Range(func(k, _ any) bool {
		ids = append(ids, k.(ID))
		return true
	})
	slices.SortFunc(ids, func(a, b ID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return int(r.count.Load())
}
