package entities

import "strings"

// Component represents a software component in the SBOM
type Component struct {
	Type               string // "application", "library", "framework", etc.
	BOMRef             string
	Publisher          string
	Group              string
	Name               string
	Version            string
	Description        string
	Purl               string
	Hashes             []Hash
	Licenses           []License
	Properties         []Property
	ExternalReferences []ExternalReference
}

// Hash represents a cryptographic hash of a component
type Hash struct {
	Algorithm string // "SHA-256", "SHA-512", etc.
	Value     string
}

// License identifies a component license by SPDX id or free-form name
type License struct {
	ID   string
	Name string
}

// Property is a name/value annotation attached to a component
type Property struct {
	Name  string
	Value string
}

// ExternalReference points at a resource related to a component.
// It is carried through untouched.
type ExternalReference struct {
	Type    string // "website", "vcs", "issue-tracker", ...
	URL     string
	Comment string
}

// Identity is the pair that recognizes the same logical component across documents.
// An absent group and an empty group are the same identity.
type Identity struct {
	Name  string
	Group string
}

// IdentityOf returns the comparison identity of a component
func IdentityOf(c Component) Identity {
	return Identity{Name: c.Name, Group: c.Group}
}

// SameIdentity reports whether two components share name and group (case-sensitive)
func SameIdentity(a, b Component) bool {
	return IdentityOf(a) == IdentityOf(b)
}

// SameVersion compares versions as trimmed exact text
func SameVersion(a, b Component) bool {
	return strings.TrimSpace(a.Version) == strings.TrimSpace(b.Version)
}

// String renders the identity as group/name, or just name without a group
func (id Identity) String() string {
	if id.Group == "" {
		return id.Name
	}
	return id.Group + "/" + id.Name
}

// PropertyValue returns the value of the first property whose name matches
// one of names, ignoring case.
func (c Component) PropertyValue(names ...string) (string, bool) {
	for _, p := range c.Properties {
		for _, name := range names {
			if strings.EqualFold(p.Name, name) {
				return p.Value, true
			}
		}
	}
	return "", false
}

// WithProperty returns a copy of the component with the property appended.
// The receiver's property slice is never modified.
func (c Component) WithProperty(name, value string) Component {
	props := make([]Property, 0, len(c.Properties)+1)
	props = append(props, c.Properties...)
	c.Properties = append(props, Property{Name: name, Value: value})
	return c
}
