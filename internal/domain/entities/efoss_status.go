package entities

// EFossStatus is the review status carried by a component's efossStatus property
type EFossStatus string

// Known EFoss statuses. Anything else, including a missing property, is EFossUnspecified.
const (
	EFossUnspecified         EFossStatus = ""
	EFossApprovalRecommended EFossStatus = "APPROVAL_RECOMMENDED"
	EFossApproved            EFossStatus = "APPROVED"
	EFossUnderReview         EFossStatus = "UNDER_REVIEW"
	EFossLegalReviewHold     EFossStatus = "LEGAL_REVIEW_HOLD"
	EFossDenied              EFossStatus = "DENIED"
)

// EFossStatusPropertyNames are the accepted property names, matched case-insensitively
var EFossStatusPropertyNames = []string{"efossStatus", "efoss status"}

// ParseEFossStatus maps a raw property value onto a known status.
// The match is exact, so surrounding whitespace makes a value unspecified.
func ParseEFossStatus(raw string) EFossStatus {
	switch s := EFossStatus(raw); s {
	case EFossApprovalRecommended, EFossApproved, EFossUnderReview, EFossLegalReviewHold, EFossDenied:
		return s
	default:
		return EFossUnspecified
	}
}

// RawEFossStatus returns the component's efossStatus property value, or "" when absent
func (c Component) RawEFossStatus() string {
	v, _ := c.PropertyValue(EFossStatusPropertyNames...)
	return v
}
