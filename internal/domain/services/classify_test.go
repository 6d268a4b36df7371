package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochairo/sbomdiff/internal/domain/entities"
)

func comp(group, name, version string) entities.Component {
	return entities.Component{Type: "library", Group: group, Name: name, Version: version}
}

func identities(components []entities.Component) []entities.Identity {
	ids := make([]entities.Identity, 0, len(components))
	for _, c := range components {
		ids = append(ids, entities.IdentityOf(c))
	}
	return ids
}

// sampleLists covers empty lists, reorderings, version changes and duplicate identities
func sampleLists() map[string][]entities.Component {
	return map[string][]entities.Component{
		"empty": nil,
		"single": {
			comp("log4j", "log4j", "1.2.12"),
		},
		"updated": {
			comp("log4j", "log4j", "1.2.17"),
			comp("slf4j", "slf4j", "1.7.0"),
		},
		"mixed": {
			comp("org.apache", "commons-io", "2.6"),
			comp("", "lodash", "4.17.21"),
			comp("slf4j", "slf4j", " 1.7.0 "),
			comp("com.google", "guava", "30.0"),
		},
		"duplicates": {
			comp("g", "dup", "1"),
			comp("g", "dup", "2"),
			comp("", "lodash", "4.17.20"),
		},
	}
}

func TestClassify_ConcreteScenario(t *testing.T) {
	original := []entities.Component{comp("log4j", "log4j", "1.2.12")}
	updated := []entities.Component{
		comp("log4j", "log4j", "1.2.17"),
		comp("slf4j", "slf4j", "1.7.0"),
	}

	diff := Classify(original, updated)

	require.Len(t, diff.ComponentsAdded, 1)
	assert.Equal(t, "slf4j", diff.ComponentsAdded[0].Name)
	assert.Equal(t, "1.7.0", diff.ComponentsAdded[0].Version)

	assert.Empty(t, diff.ComponentsRemoved)

	require.Len(t, diff.ModifiedComponents, 1)
	assert.Equal(t, "1.2.12", diff.ModifiedComponents[0].PreviousComponent.Version)
	assert.Equal(t, "1.2.17", diff.ModifiedComponents[0].NewComponent.Version)
	assert.Equal(t, "log4j", diff.ModifiedComponents[0].NewComponent.Name)
}

func TestClassify_EmptyOriginal(t *testing.T) {
	diff := Classify(nil, []entities.Component{comp("g", "a", "1")})

	require.Len(t, diff.ComponentsAdded, 1)
	assert.Equal(t, "a", diff.ComponentsAdded[0].Name)
	assert.Empty(t, diff.ComponentsRemoved)
	assert.Empty(t, diff.ModifiedComponents)
}

func TestClassify_NilInputsYieldEmptyNonNilCollections(t *testing.T) {
	diff := Classify(nil, nil)

	assert.NotNil(t, diff.ComponentsAdded)
	assert.NotNil(t, diff.ComponentsRemoved)
	assert.NotNil(t, diff.ModifiedComponents)
	assert.True(t, diff.IsEmpty())
}

func TestClassify_VersionComparedTrimmed(t *testing.T) {
	original := []entities.Component{comp("g", "a", "1.0 ")}
	updated := []entities.Component{comp("g", "a", " 1.0")}

	diff := Classify(original, updated)

	assert.True(t, diff.IsEmpty())
}

func TestClassify_IdentityIsCaseSensitive(t *testing.T) {
	original := []entities.Component{comp("g", "Guava", "1")}
	updated := []entities.Component{comp("g", "guava", "1")}

	diff := Classify(original, updated)

	assert.Len(t, diff.ComponentsAdded, 1)
	assert.Len(t, diff.ComponentsRemoved, 1)
	assert.Empty(t, diff.ModifiedComponents)
}

func TestClassify_GroupIsPartOfIdentity(t *testing.T) {
	original := []entities.Component{comp("org.one", "core", "1")}
	updated := []entities.Component{comp("org.two", "core", "2")}

	diff := Classify(original, updated)

	assert.Len(t, diff.ComponentsAdded, 1)
	assert.Len(t, diff.ComponentsRemoved, 1)
	assert.Empty(t, diff.ModifiedComponents)
}

func TestClassify_PreservesSourceOrder(t *testing.T) {
	original := []entities.Component{
		comp("", "r1", "1"), comp("", "keep", "1"), comp("", "r2", "1"), comp("", "m1", "1"), comp("", "m2", "1"),
	}
	updated := []entities.Component{
		comp("", "a2", "1"), comp("", "m2", "2"), comp("", "keep", "1"), comp("", "a1", "1"), comp("", "m1", "2"),
	}

	diff := Classify(original, updated)

	assert.Equal(t, []entities.Identity{{Name: "a2"}, {Name: "a1"}}, identities(diff.ComponentsAdded))
	assert.Equal(t, []entities.Identity{{Name: "r1"}, {Name: "r2"}}, identities(diff.ComponentsRemoved))
	require.Len(t, diff.ModifiedComponents, 2)
	assert.Equal(t, "m2", diff.ModifiedComponents[0].NewComponent.Name)
	assert.Equal(t, "m1", diff.ModifiedComponents[1].NewComponent.Name)
}

func TestClassify_DuplicateIdentityInOriginalUsesFirstMatch(t *testing.T) {
	original := []entities.Component{comp("g", "dup", "1"), comp("g", "dup", "2")}
	updated := []entities.Component{comp("g", "dup", "2")}

	diff := Classify(original, updated)

	// the first original occurrence (1) is paired even though a later one matches exactly
	require.Len(t, diff.ModifiedComponents, 1)
	assert.Equal(t, "1", diff.ModifiedComponents[0].PreviousComponent.Version)
	assert.Equal(t, "2", diff.ModifiedComponents[0].NewComponent.Version)
	assert.Empty(t, diff.ComponentsRemoved)
	assert.Empty(t, diff.ComponentsAdded)
}

func TestClassify_DuplicateIdentityInUpdatedReportedOnce(t *testing.T) {
	original := []entities.Component{comp("g", "dup", "1")}
	updated := []entities.Component{comp("g", "dup", "2"), comp("g", "dup", "3")}

	diff := Classify(original, updated)

	require.Len(t, diff.ModifiedComponents, 1)
	assert.Equal(t, "2", diff.ModifiedComponents[0].NewComponent.Version)
}

func TestClassify_DuplicateUnchangedFirstSuppressesLaterChange(t *testing.T) {
	original := []entities.Component{comp("g", "dup", "1")}
	updated := []entities.Component{comp("g", "dup", "1"), comp("g", "dup", "9")}

	diff := Classify(original, updated)

	assert.True(t, diff.IsEmpty())
}

func TestClassify_Properties(t *testing.T) {
	lists := sampleLists()

	for nameA, a := range lists {
		for nameB, b := range lists {
			t.Run(nameA+"_vs_"+nameB, func(t *testing.T) {
				forward := Classify(a, b)
				backward := Classify(b, a)

				// added/removed swap when the lists swap
				assert.ElementsMatch(t, identities(forward.ComponentsAdded), identities(backward.ComponentsRemoved))
				assert.ElementsMatch(t, identities(forward.ComponentsRemoved), identities(backward.ComponentsAdded))

				seen := make(map[entities.Identity]string)
				mark := func(id entities.Identity, bucket string) {
					if prev, ok := seen[id]; ok && prev != bucket {
						t.Errorf("identity %s in both %s and %s", id, prev, bucket)
					}
					seen[id] = bucket
				}

				for _, c := range forward.ComponentsAdded {
					mark(entities.IdentityOf(c), "added")
				}
				for _, c := range forward.ComponentsRemoved {
					mark(entities.IdentityOf(c), "removed")
				}
				modifiedIDs := make(map[entities.Identity]int)
				for _, m := range forward.ModifiedComponents {
					assert.True(t, entities.SameIdentity(m.PreviousComponent, m.NewComponent))
					assert.False(t, entities.SameVersion(m.PreviousComponent, m.NewComponent))
					mark(entities.IdentityOf(m.NewComponent), "modified")
					modifiedIDs[entities.IdentityOf(m.NewComponent)]++
				}
				for id, n := range modifiedIDs {
					assert.Equal(t, 1, n, "identity %s modified more than once", id)
				}
			})
		}
	}
}

func TestClassify_Reflexive(t *testing.T) {
	for name, list := range sampleLists() {
		t.Run(name, func(t *testing.T) {
			assert.True(t, Classify(list, list).IsEmpty())
		})
	}
}
