// Package services implements domain business logic and use cases.
package services

import (
	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

// Classify compares the component lists of two SBOMs.
//
// Matching is a linear scan by identity (name, group); the first match in the
// other list wins, so duplicate identities inside one list are not paired
// separately. Added and removed keep the order of their source list, modified
// keeps the order of updated. Nil lists are treated as empty.
func Classify(original, updated []entities.Component) *entities.Diff {
	diff := entities.NewDiff()
	diff.ComponentsAdded = append(diff.ComponentsAdded, componentsNotIn(updated, original)...)
	diff.ComponentsRemoved = append(diff.ComponentsRemoved, componentsNotIn(original, updated)...)
	diff.ModifiedComponents = append(diff.ModifiedComponents, componentsModified(updated, original)...)
	return diff
}

// findByIdentity returns the first component in list sharing want's identity
func findByIdentity(want entities.Component, list []entities.Component) (entities.Component, bool) {
	for _, c := range list {
		if entities.SameIdentity(c, want) {
			return c, true
		}
	}
	return entities.Component{}, false
}

// componentsNotIn returns the components of list1 with no identity match in list2
func componentsNotIn(list1, list2 []entities.Component) []entities.Component {
	out := make([]entities.Component, 0)
	for _, c := range list1 {
		if _, found := findByIdentity(c, list2); !found {
			out = append(out, c)
		}
	}
	return out
}

// componentsModified pairs each updated component with its first original match
// when the trimmed versions differ. An identity is reported at most once.
func componentsModified(updated, original []entities.Component) []entities.ModifiedComponent {
	out := make([]entities.ModifiedComponent, 0)
	seen := make(map[entities.Identity]bool)

	for _, c := range updated {
		id := entities.IdentityOf(c)
		if seen[id] {
			continue
		}

		prev, found := findByIdentity(c, original)
		if !found {
			continue
		}
		seen[id] = true

		if !entities.SameVersion(prev, c) {
			out = append(out, entities.ModifiedComponent{
				PreviousComponent: prev,
				NewComponent:      c,
			})
		}
	}

	return out
}
