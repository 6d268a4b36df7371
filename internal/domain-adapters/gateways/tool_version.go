package gateways

import (
	"errors"
	"runtime/debug"
)

// errNoBuildVersion is returned when the binary carries no release version
var errNoBuildVersion = errors.New("build info has no module version")

// buildInfoResolver reads the comparator version from the Go build info
type buildInfoResolver struct {
	readBuildInfo func() (*debug.BuildInfo, bool)
}

// NewBuildInfoResolver creates a resolver backed by runtime/debug.ReadBuildInfo
//
//nolint:revive // unexported-return: Intentionally returns concrete type for testability
func NewBuildInfoResolver() *buildInfoResolver {
	return &buildInfoResolver{readBuildInfo: debug.ReadBuildInfo}
}

// ResolveVersion returns the main module version.
// Development builds report "(devel)" and are treated as unresolved.
func (r *buildInfoResolver) ResolveVersion() (string, error) {
	info, ok := r.readBuildInfo()
	if !ok || info == nil {
		return "", errors.New("build info unavailable")
	}

	version := info.Main.Version
	if version == "" || version == "(devel)" {
		return "", errNoBuildVersion
	}
	return version, nil
}
