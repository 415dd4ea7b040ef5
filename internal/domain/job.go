package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Bullet prefix used by description, keyResponsibilities and education text
const BulletPrefix = "• "

// ID is a server-assigned opaque identifier. The backend emits numbers
// for some resources and strings for others, so it decodes from either.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Salary is a numeric amount in LPA, or undisclosed. The wire value is
// either a number or the literal string "Not Disclosed".
type Salary struct {
	Amount    float64
	Disclosed bool
}

func (s *Salary) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = Salary{}
		return nil
	}
	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if amount, err := strconv.ParseFloat(raw, 64); err == nil {
			*s = Salary{Amount: amount, Disclosed: true}
			return nil
		}
		// "Not Disclosed" or any other non-numeric text
		*s = Salary{}
		return nil
	}
	var amount float64
	if err := json.Unmarshal(data, &amount); err != nil {
		return err
	}
	*s = Salary{Amount: amount, Disclosed: true}
	return nil
}

func (s Salary) MarshalJSON() ([]byte, error) {
	if !s.Disclosed {
		return json.Marshal("Not Disclosed")
	}
	return json.Marshal(s.Amount)
}

type JobPosting struct {
	ID                  ID     `json:"id"`
	Role                string `json:"role" validate:"required"`
	CompanyName         string `json:"companyName" validate:"required"`
	Location            string `json:"location" validate:"required"`
	Description         string `json:"description" validate:"required"` // bullet-delimited
	KeyResponsibilities string `json:"keyResponsibilities"`             // bullet-delimited
	Education           string `json:"education"`                       // bullet-delimited
	SkillsRequired      string `json:"skillsRequired"`                  // comma-separated
	JobType             string `json:"jobType"`                         // comma-joined subset of fullTime/partTime/internship
	WorkMode            string `json:"workmode"`                        // comma-joined subset of remote/onSite/hybrid
	MinSalary           Salary `json:"minSalary"`
	MaxSalary           Salary `json:"maxSalary"`
	ExperienceRange     string `json:"experienceRange"`
	Openings            int    `json:"openings" validate:"gte=0"`
	DatePosted          string `json:"datePosted"`
}

// PostedAt parses datePosted. Timestamps from the backend sometimes miss
// the "Z" suffix but are UTC regardless, so a bare timestamp is read as UTC.
func (j *JobPosting) PostedAt() (time.Time, bool) {
	raw := strings.TrimSpace(j.DatePosted)
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// Skills splits the comma-separated skillsRequired field.
func (j *JobPosting) Skills() []string {
	if j.SkillsRequired == "" {
		return nil
	}
	parts := strings.Split(j.SkillsRequired, ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

// BulletLines splits bullet-delimited text into its plain lines.
func BulletLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), strings.TrimSpace(BulletPrefix)))
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// JoinBullets renders plain lines in the bullet convention.
func JoinBullets(lines []string) string {
	var b strings.Builder
	for i, line := range lines {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if i > 0 && b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(BulletPrefix)
		b.WriteString(line)
	}
	return b.String()
}

// SavedJob is a full snapshot of a posting taken at bookmark time. It is
// never refreshed from the server afterwards; staleness is handled by the
// mirror store's fetched-at stamp.
type SavedJob struct {
	JobPosting
	SavedAt time.Time `json:"savedAt"`
}

type JobRepository interface {
	// FetchAll is the admin-oriented listing
	FetchAll(ctx context.Context) ([]JobPosting, error)
	// FetchPublic is the public-facing listing
	FetchPublic(ctx context.Context) ([]JobPosting, error)
	GetByID(ctx context.Context, id ID) (*JobPosting, error)
	Create(ctx context.Context, job *JobPosting) error
	Update(ctx context.Context, job *JobPosting) error
	Delete(ctx context.Context, id ID) error
}

// JobStats summarizes the admin dashboard's per-type breakdown.
type JobStats struct {
	Total    int `json:"total"`
	FullTime int `json:"fullTime"`
	PartTime int `json:"partTime"`
	Remote   int `json:"remote"`
}

type JobUsecase interface {
	// BrowseJobs fetches the public listing and applies criteria, keeping
	// collection order
	BrowseJobs(ctx context.Context, criteria JobCriteria) ([]JobPosting, error)
	// Spotlight moves postings matching the role+location pair to the
	// front; non-matches keep their relative order at the back
	Spotlight(ctx context.Context, role, location string) ([]JobPosting, error)
	// ManageJobs fetches the admin listing
	ManageJobs(ctx context.Context) ([]JobPosting, error)
	JobDetails(ctx context.Context, id ID) (*JobPosting, error)
	PostJob(ctx context.Context, job *JobPosting) error
	EditJob(ctx context.Context, job *JobPosting) error
	// SubmitJobForm validates the raw form and routes to PostJob or
	// EditJob depending on whether it carries an id
	SubmitJobForm(ctx context.Context, form *JobForm) (*JobPosting, error)
	// DeleteJob removes from the in-memory list only after the remote
	// delete succeeds
	DeleteJob(ctx context.Context, jobs []JobPosting, id ID) ([]JobPosting, error)
	Stats(jobs []JobPosting) JobStats
}

// JobForm is the raw post-a-job form: salary inputs arrive as text,
// either a number or "Not Disclosed".
type JobForm struct {
	ID                  ID       `json:"id"`
	Role                string   `json:"role" validate:"required"`
	CompanyName         string   `json:"companyName" validate:"required"`
	Location            string   `json:"location" validate:"required"`
	Description         []string `json:"description" validate:"required,min=1"`
	KeyResponsibilities []string `json:"keyResponsibilities"`
	Education           []string `json:"education"`
	SkillsRequired      string   `json:"skillsRequired"`
	JobTypes            []string `json:"jobTypes"`
	WorkModes           []string `json:"workModes"`
	MinSalary           string   `json:"minSalary" validate:"salary_or_nd"`
	MaxSalary           string   `json:"maxSalary" validate:"salary_or_nd"`
	ExperienceRange     string   `json:"experienceRange"`
	Openings            int      `json:"openings" validate:"gte=0"`
}

// Posting converts the form into the wire entity: lines gain bullet
// prefixes, selections join with commas, salary text becomes the
// number-or-undisclosed type.
func (f *JobForm) Posting() *JobPosting {
	return &JobPosting{
		ID:                  f.ID,
		Role:                f.Role,
		CompanyName:         f.CompanyName,
		Location:            f.Location,
		Description:         JoinBullets(f.Description),
		KeyResponsibilities: JoinBullets(f.KeyResponsibilities),
		Education:           JoinBullets(f.Education),
		SkillsRequired:      f.SkillsRequired,
		JobType:             strings.Join(f.JobTypes, ", "),
		WorkMode:            strings.Join(f.WorkModes, ", "),
		MinSalary:           parseSalaryInput(f.MinSalary),
		MaxSalary:           parseSalaryInput(f.MaxSalary),
		ExperienceRange:     f.ExperienceRange,
		Openings:            f.Openings,
	}
}

func parseSalaryInput(raw string) Salary {
	raw = strings.TrimSpace(raw)
	if amount, err := strconv.ParseFloat(raw, 64); err == nil {
		return Salary{Amount: amount, Disclosed: true}
	}
	return Salary{}
}

// JobCriteria mirrors the search sidebar: free-text role/location plus
// bucketed checkbox sets. An empty set imposes no constraint.
type JobCriteria struct {
	Role             string
	Location         string
	MatchDescription bool // also match the role query against descriptions
	Experience       []string
	Salary           []string
	JobTypes         []string
	WorkModes        []string
}
