package weave

// Mark is a single marker bit carried by a spawned effect.
type Mark uint8

const (
	// MarkOwned marks an effect as produced by a weave pipeline.
	MarkOwned Mark = iota
	// MarkDerived marks an effect spawned by the split protocol.
	// Derived effects never trigger the impact protocol themselves.
	MarkDerived

	markCount
)

// Marks is a bit set of effect markers.
type Marks uint8

// MarksOf returns a set containing the given marks.
func MarksOf(marks ...Mark) Marks {
	var m Marks
	for _, mark := range marks {
		m.Set(mark)
	}
	return m
}

// Set sets a mark.
func (m *Marks) Set(mark Mark) {
	*m |= 1 << mark
}

// Clear clears a mark.
func (m *Marks) Clear(mark Mark) {
	*m &^= 1 << mark
}

// Has checks if a mark is set.
func (m Marks) Has(mark Mark) bool {
	return m&(1<<mark) != 0
}

// Or returns the union of two sets.
func (m Marks) Or(other Marks) Marks {
	return m | other
}

// String returns a debug representation such as "owned|derived".
func (m Marks) String() string {
	if m == 0 {
		return "none"
	}
	s := ""
	for mark := Mark(0); mark < markCount; mark++ {
		if !m.Has(mark) {
			continue
		}
		if s != "" {
			s += "|"
		}
		switch mark {
		case MarkOwned:
			s += "owned"
		case MarkDerived:
			s += "derived"
		}
	}
	return s
}
