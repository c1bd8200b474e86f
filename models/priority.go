package models

// Priority classifies a task for display purposes only. High sorts above
// med, med above low; there is no numeric meaning beyond that.
type Priority string

const (
	PriorityHigh Priority = "high"
	PriorityMed  Priority = "med"
	PriorityLow  Priority = "low"
)

// NormalizePriority coerces any value to a valid priority. Unknown, empty
// or corrupted input becomes med. Applied at every deserialization boundary
// so stored data is never trusted as-is.
func NormalizePriority(p Priority) Priority {
	switch p {
	case PriorityHigh, PriorityMed, PriorityLow:
		return p
	default:
		return PriorityMed
	}
}
