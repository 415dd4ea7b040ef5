package domain

import "context"

// Application status constants. Transitions are admin-driven and
// unordered: any status may follow any other.
const (
	ApplicationStatusPending     = "PENDING"
	ApplicationStatusReviewed    = "REVIEWED"
	ApplicationStatusShortlisted = "SHORTLISTED"
	ApplicationStatusRejected    = "REJECTED"
)

// ValidApplicationStatus reports whether s is one of the four statuses.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Application represents a job application. The server is the source of
// truth; a shadow copy also lands in the mirror store for offline display
// and can drift from server state.
type Application struct {
	ID              ID     `json:"id"`
	ApplicantName   string `json:"applicantName" validate:"required"`
	ApplicantEmail  string `json:"applicantEmail" validate:"required,email"`
	ApplicantPhone  string `json:"applicantPhone" validate:"required,valid_phone"`
	JobTitle        string `json:"jobTitle" validate:"required"`
	Company         string `json:"company" validate:"required"`
	ApplicationDate string `json:"applicationDate"`
	Status          string `json:"status"`
	ResumeReference string `json:"resumeReference,omitempty"`
}

// SameTuple reports whether two applications cover the same
// (applicant email, job title, company) tuple, the uniqueness key.
func (a *Application) SameTuple(other *Application) bool {
	return a.ApplicantEmail == other.ApplicantEmail &&
		a.JobTitle == other.JobTitle &&
		a.Company == other.Company
}

type ApplicationRepository interface {
	FetchAll(ctx context.Context) ([]Application, error)
	FetchByUser(ctx context.Context, email string) ([]Application, error)
	// Create submits the application with an optional resume attachment.
	// On success app.ID carries the id echoed by the server, if any.
	Create(ctx context.Context, app *Application, resumeName string, resume []byte) error
	UpdateStatus(ctx context.Context, id ID, status string) error
	Delete(ctx context.Context, id ID) error
	FetchResume(ctx context.Context, id ID) ([]byte, error)
}

type ApplicationUsecase interface {
	// Apply runs the duplicate pre-check, submits, and appends the mirror
	// shadow copy
	Apply(ctx context.Context, app *Application, resumeName string, resume []byte) (*Application, error)
	// MyApplications merges the server list with mirror shadow copies,
	// deduped by tuple
	MyApplications(ctx context.Context, email string) ([]Application, error)
	RemoveApplied(email string, id ID) error

	// Admin operations
	ListAll(ctx context.Context) ([]Application, error)
	// SetStatus updates optimistically and reverts the in-memory item on
	// remote failure
	SetStatus(ctx context.Context, apps []Application, id ID, status string) ([]Application, error)
	// DeleteApplication removes from memory only after the remote delete
	// succeeds
	DeleteApplication(ctx context.Context, apps []Application, id ID) ([]Application, error)
	// StatusCounts is the dashboard's per-status breakdown
	StatusCounts(apps []Application) map[string]int
}
