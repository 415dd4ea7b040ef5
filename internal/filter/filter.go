// Package filter holds the pure search predicates the job views share.
// Criteria fields combine with logical AND; an empty selection set for a
// category imposes no constraint.
package filter

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"go-jobportal-client/internal/domain"
)

// Bucket labels offered by the search sidebar
var (
	ExperienceBuckets = []string{"0-1 Years", "1-3 Years", "3+ Years"}
	SalaryBuckets     = []string{"0-3 LPA", "3-6 LPA", "6+ LPA"}
	JobTypeOptions    = []string{"Full-time", "Part-time", "Internship"}
	WorkModeOptions   = []string{"Remote", "Hybrid", "On-site"}
)

var experienceRanges = map[string][2]float64{
	"0-1 Years": {0, 1},
	"1-3 Years": {1, 3},
	"3+ Years":  {3, math.Inf(1)},
}

var digits = regexp.MustCompile(`\d+`)

// Normalize lowercases and strips hyphens and spaces so that
// "Full-time", "full time" and "fulltime" compare equal. "in office" is
// folded into "onsite".
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "inoffice", "onsite")
}

// parseExperienceRange pulls the numeric bounds out of free text like
// "2-4 years". A single number means an exact bound; no numbers means
// everything matches.
func parseExperienceRange(raw string) (float64, float64) {
	nums := digits.FindAllString(raw, -1)
	if len(nums) == 0 {
		return 0, math.Inf(1)
	}
	lo, _ := strconv.ParseFloat(nums[0], 64)
	hi := lo
	if len(nums) > 1 {
		hi, _ = strconv.ParseFloat(nums[1], 64)
	}
	return lo, hi
}

// Matches reports whether one posting passes every criteria category.
func Matches(job *domain.JobPosting, c domain.JobCriteria) bool {
	return matchesRole(job, c) &&
		matchesLocation(job, c) &&
		matchesExperience(job, c.Experience) &&
		matchesSalary(job, c.Salary) &&
		matchesJobType(job, c.JobTypes) &&
		matchesWorkMode(job, c.WorkModes)
}

// Apply filters the collection, preserving its order.
func Apply(jobs []domain.JobPosting, c domain.JobCriteria) []domain.JobPosting {
	out := make([]domain.JobPosting, 0, len(jobs))
	for i := range jobs {
		if Matches(&jobs[i], c) {
			out = append(out, jobs[i])
		}
	}
	return out
}

// Promote is a stable partition: postings matching both the role and
// location queries move to the front, everything else keeps its relative
// order at the back. No posting is dropped.
func Promote(jobs []domain.JobPosting, role, location string) []domain.JobPosting {
	front := make([]domain.JobPosting, 0, len(jobs))
	back := make([]domain.JobPosting, 0, len(jobs))
	for i := range jobs {
		if containsFold(jobs[i].Role, role) && containsFold(jobs[i].Location, location) {
			front = append(front, jobs[i])
		} else {
			back = append(back, jobs[i])
		}
	}
	return append(front, back...)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func matchesRole(job *domain.JobPosting, c domain.JobCriteria) bool {
	if c.Role == "" {
		return true
	}
	if containsFold(job.Role, c.Role) {
		return true
	}
	return c.MatchDescription && containsFold(job.Description, c.Role)
}

func matchesLocation(job *domain.JobPosting, c domain.JobCriteria) bool {
	return c.Location == "" || containsFold(job.Location, c.Location)
}

func matchesExperience(job *domain.JobPosting, buckets []string) bool {
	if len(buckets) == 0 {
		return true
	}
	lo, hi := parseExperienceRange(job.ExperienceRange)
	for _, bucket := range buckets {
		r, ok := experienceRanges[bucket]
		if ok && lo <= r[1] && hi >= r[0] {
			return true
		}
		// Fallback for unparsable ranges: the raw text mentions the label
		if job.ExperienceRange != "" && containsFold(job.ExperienceRange, bucket) {
			return true
		}
	}
	return false
}

// matchesSalary requires both bounds to be disclosed; undisclosed
// postings never pass a salary bucket.
func matchesSalary(job *domain.JobPosting, buckets []string) bool {
	if len(buckets) == 0 {
		return true
	}
	if !job.MinSalary.Disclosed || !job.MaxSalary.Disclosed {
		return false
	}
	lo, hi := job.MinSalary.Amount, job.MaxSalary.Amount
	for _, bucket := range buckets {
		switch bucket {
		case "0-3 LPA":
			if hi <= 3 {
				return true
			}
		case "3-6 LPA":
			if lo >= 3 && hi <= 6 {
				return true
			}
		case "6+ LPA":
			if lo >= 6 {
				return true
			}
		}
	}
	return false
}

func matchesJobType(job *domain.JobPosting, types []string) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if containsFold(job.JobType, t) || containsFold(job.Description, t) {
			return true
		}
		if strings.Contains(Normalize(job.JobType), Normalize(t)) {
			return true
		}
	}
	return false
}

// matchesWorkMode checks the workmode field first, then falls back to the
// description; containment is one-directional (posting contains label).
func matchesWorkMode(job *domain.JobPosting, modes []string) bool {
	if len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		normalized := Normalize(m)
		if normalized == "" {
			continue
		}
		if strings.Contains(Normalize(job.WorkMode), normalized) {
			return true
		}
		if strings.Contains(Normalize(job.Description), normalized) {
			return true
		}
	}
	return false
}
