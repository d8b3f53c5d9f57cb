package weave

// Kind represents the variant of a module.
// The Executor only invokes modifier hooks on Modifier modules.
type Kind int

const (
	// Producer modules create primary effects, such as launching a projectile.
	// Producers may additionally implement Cloner.
	Producer Kind = iota

	// Modifier modules never spawn primary effects themselves. They edit the
	// context or the next module, and react to externally reported events.
	Modifier

	// kindCount is the total number of kinds.
	kindCount
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Producer:
		return "Producer"
	case Modifier:
		return "Modifier"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= Producer && k < kindCount
}
