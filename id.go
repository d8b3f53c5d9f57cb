package weave

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedID is returned when an identifier string cannot be parsed.
var ErrMalformedID = errors.New("malformed module id")

// ID is a namespaced module identifier such as "weave:fireball".
// The zero ID is invalid.
type ID struct {
	Namespace string
	Path      string
}

// NewID returns an ID in the default weave namespace.
// It does not validate the path; use ParseID for user input.
func NewID(path string) ID {
	return ID{Namespace: Namespace, Path: path}
}

// ParseID parses "namespace:path" or a bare "path", which is placed in the
// default namespace. Namespaces allow [a-z0-9_.-], paths additionally allow '/'.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, fmt.Errorf("%w: empty", ErrMalformedID)
	}

	ns, path, found := strings.Cut(s, ":")
	if !found {
		ns, path = Namespace, s
	}

	if !validPart(ns, false) {
		return ID{}, fmt.Errorf("%w: namespace %q", ErrMalformedID, ns)
	}
	if !validPart(path, true) {
		return ID{}, fmt.Errorf("%w: path %q", ErrMalformedID, path)
	}
	return ID{Namespace: ns, Path: path}, nil
}

// MustParseID is like ParseID but panics on error.
// Only use it for compile-time constant identifiers.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic("weave: " + err.Error())
	}
	return id
}

// IsZero reports whether the ID is unset.
func (id ID) IsZero() bool {
	return id.Namespace == "" && id.Path == ""
}

// String returns the "namespace:path" form.
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}
	return id.Namespace + ":" + id.Path
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func validPart(s string, path bool) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '_', r == '.', r == '-':
		case r == '/' && path:
		default:
			return false
		}
	}
	return true
}
