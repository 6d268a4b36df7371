package entities

// Diff holds the classified differences between two SBOMs.
// No identity appears in more than one of the three collections.
type Diff struct {
	ComponentsAdded    []Component
	ComponentsRemoved  []Component
	ModifiedComponents []ModifiedComponent
}

// ModifiedComponent pairs the original and updated side of a component
// whose version changed.
type ModifiedComponent struct {
	PreviousComponent Component
	NewComponent      Component
}

// NewDiff returns a Diff with empty, non-nil collections
func NewDiff() *Diff {
	return &Diff{
		ComponentsAdded:    make([]Component, 0),
		ComponentsRemoved:  make([]Component, 0),
		ModifiedComponents: make([]ModifiedComponent, 0),
	}
}

// IsEmpty reports whether nothing was added, removed or modified
func (d *Diff) IsEmpty() bool {
	return d == nil ||
		(len(d.ComponentsAdded) == 0 && len(d.ComponentsRemoved) == 0 && len(d.ModifiedComponents) == 0)
}

// Total returns the number of classified components
func (d *Diff) Total() int {
	if d == nil {
		return 0
	}
	return len(d.ComponentsAdded) + len(d.ComponentsRemoved) + len(d.ModifiedComponents)
}

// Change is the classification of a single component
type Change string

const (
	// ChangeAdded marks a component present only in the new SBOM
	ChangeAdded Change = "Added"
	// ChangeRemoved marks a component present only in the original SBOM
	ChangeRemoved Change = "Removed"
	// ChangeModified marks a component whose version changed
	ChangeModified Change = "Modified"
)

// DiffReasonProperty is the property name used to tag components in a derivative SBOM
const DiffReasonProperty = "diff reason"

// Diff reason values
const (
	DiffReasonAdded    = "added"
	DiffReasonModified = "modified"
)
