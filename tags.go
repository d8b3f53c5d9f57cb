package weave

import (
	"slices"
	"strings"
)

// Common capability tags.
const (
	TagBase       = "base"
	TagModifier   = "modifier"
	TagProjectile = "projectile"
	TagFire       = "fire"
	TagSplit      = "split"
	TagExplode    = "explode"
)

// Tags is an immutable set of free-form capability tags.
// Tags are normalized to lower case and kept sorted.
type Tags struct {
	list []string
}

// NewTags builds a tag set. Blank and duplicate tags are dropped.
func NewTags(tags ...string) Tags {
	list := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		list = append(list, tag)
	}
	slices.Sort(list)
	return Tags{list: slices.Compact(list)}
}

// ParseTags parses a comma separated tag list, e.g. "projectile, fire".
func ParseTags(s string) Tags {
	return NewTags(strings.Split(s, ",")...)
}

// Has reports whether the set contains tag.
func (t Tags) Has(tag string) bool {
	_, found := slices.BinarySearch(t.list, strings.ToLower(tag))
	return found
}

// HasAll reports whether the set contains every tag in other.
func (t Tags) HasAll(other Tags) bool {
	for _, tag := range other.list {
		if !t.Has(tag) {
			return false
		}
	}
	return true
}

// Len returns the number of tags.
func (t Tags) Len() int {
	return len(t.list)
}

// Slice returns a sorted copy of the tags.
func (t Tags) Slice() []string {
	return slices.Clone(t.list)
}

// String returns the comma separated form.
func (t Tags) String() string {
	return strings.Join(t.list, ",")
}
