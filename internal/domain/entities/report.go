package entities

import "time"

// ReportContext carries the minimal context the HTML report needs besides the diff
type ReportContext struct {
	OriginalName string // file reference of the original SBOM; only its last path segment is shown
	NewName      string // file reference of the new SBOM; only its last path segment is shown
	GeneratedAt  time.Time
}
