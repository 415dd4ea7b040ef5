package domain

// Mirror store keys. Each feature owns a distinct key; cross-feature
// interference is avoided by convention.
const (
	KeySavedJobs   = "savedJobs"
	KeyAppliedJobs = "appliedJobs"
	KeySession     = "session"
)
