package domain

import "context"

type WorkExperience struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Period           string   `json:"period"`
	Responsibilities []string `json:"responsibilities"`
}

type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type Certification struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

type Preferences struct {
	DesiredRoles []string `json:"desiredRoles"`
	JobTypes     []string `json:"jobTypes"`
	Industries   []string `json:"industries"`
	Locations    []string `json:"locations"`
	Salary       string   `json:"salary"`
	NoticePeriod string   `json:"noticePeriod"`
}

// CandidateProfile is one-per-user-email, created lazily on first
// profile-page visit.
type CandidateProfile struct {
	ID             ID               `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Phone          string           `json:"phone"`
	Location       string           `json:"location"`
	Summary        string           `json:"summary"`
	Skills         []string         `json:"skills"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []EducationEntry `json:"education"`
	Certifications []Certification  `json:"certifications"`
	Preferences    Preferences      `json:"preferences"`
	// Server-stored; the client only ever pushes 100, never a partial value
	CompletionPercentage int    `json:"completionPercentage"`
	ImageURL             string `json:"imageUrl,omitempty"`
	ResumeURL            string `json:"resumeUrl,omitempty"`
}

// Complete reports whether every field of the two-tier completion rule is
// filled: name, phone, and at least one of each of work experience,
// education, skills and certifications.
func (p *CandidateProfile) Complete() bool {
	return p.Name != "" &&
		p.Phone != "" &&
		len(p.WorkExperience) > 0 &&
		len(p.Education) > 0 &&
		len(p.Skills) > 0 &&
		len(p.Certifications) > 0
}

// DisplayCompletion is the coarse two-tier percentage: 100 when the rule
// is satisfied, otherwise whatever the server last stored. The client
// never recomputes a partial value.
func (p *CandidateProfile) DisplayCompletion() int {
	if p.Complete() {
		return 100
	}
	return p.CompletionPercentage
}

type ProfileRepository interface {
	GetByEmail(ctx context.Context, email string) (*CandidateProfile, error)
	Create(ctx context.Context, profile *CandidateProfile) error
	Save(ctx context.Context, profile *CandidateProfile) error
	UpdateCompletion(ctx context.Context, id ID, percentage int) error
	UploadImage(ctx context.Context, id ID, filename string, content []byte) (string, error)
	UploadResume(ctx context.Context, id ID, filename string, content []byte) (string, error)
	FetchResume(ctx context.Context, id ID) ([]byte, error)
}

type ProfileUsecase interface {
	// GetOrCreate treats not-found as the signal to create a fresh
	// profile, never as a user-facing error
	GetOrCreate(ctx context.Context, email string) (*CandidateProfile, error)
	// Save degrades to create when the profile has no server id yet, and
	// pushes completion to 100 on the server once the rule is satisfied
	Save(ctx context.Context, profile *CandidateProfile) error
	UploadImage(ctx context.Context, profile *CandidateProfile, filename string, content []byte) error
	UploadResume(ctx context.Context, profile *CandidateProfile, filename string, content []byte) error
}
