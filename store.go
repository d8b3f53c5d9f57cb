package weave

// Store is the shared store of a Context, used for cross-module signalling.
//
// The built-in modules use the typed fields. Third-party modules can use the
// keyed values through StoreValue and SetStoreValue.
type Store struct {
	// Original is the first effect spawned in the cast. It survives
	// ResetForSubEntity so sub-effects stay traceable to their origin.
	Original *Effect

	// Last is the most recently spawned effect.
	Last *Effect

	// SplitOnHit is set by the split modifier.
	SplitOnHit bool
	// SplitCount counts split modifiers seen in the cast.
	SplitCount int

	// ExplodeOnHit is set by the explode modifier.
	ExplodeOnHit bool

	values map[string]any
}

// reset clears everything except Original.
func (s *Store) reset() {
	*s = Store{Original: s.Original}
}

// Len returns the number of populated entries, typed and keyed.
func (s *Store) Len() int {
	n := len(s.values)
	if s.Original != nil {
		n++
	}
	if s.Last != nil {
		n++
	}
	if s.SplitOnHit || s.SplitCount != 0 {
		n++
	}
	if s.ExplodeOnHit {
		n++
	}
	return n
}

// Delete removes a keyed value.
func (s *Store) Delete(key string) {
	delete(s.values, key)
}

// StoreValue returns the keyed value of type T.
// It returns false if the key is missing or holds another type.
func StoreValue[T any](s *Store, key string) (T, bool) {
	var zero T
	if s == nil || s.values == nil {
		return zero, false
	}
	v, ok := s.values[key]
	if !ok {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// SetStoreValue stores a keyed value.
func SetStoreValue[T any](s *Store, key string, v T) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[key] = v
}
