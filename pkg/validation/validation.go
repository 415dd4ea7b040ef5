package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// E164-like phone: optional +, digits 7-15 length
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("salary_or_nd", SalaryOrNotDisclosed)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val)
}

// SalaryOrNotDisclosed accepts a plain number or the literal "Not Disclosed",
// matching what the post-a-job form allows in its salary inputs.
func SalaryOrNotDisclosed(fl validator.FieldLevel) bool {
	val := strings.TrimSpace(fl.Field().String())
	if val == "" || strings.EqualFold(val, "Not Disclosed") {
		return true
	}
	for _, r := range val {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

// FieldLabels maps struct field names to the labels the forms show
var FieldLabels = map[string]string{
	// Application form
	"ApplicantName":  "Full Name",
	"ApplicantEmail": "Email",
	"ApplicantPhone": "Phone Number",
	"JobTitle":       "Job Title",
	"Company":        "Company",

	// Post-a-job form
	"Role":             "Job Role",
	"CompanyName":      "Company Name",
	"Location":         "Location",
	"Description":      "Job Description",
	"SkillsRequired":   "Required Skills",
	"Openings":         "Number of Openings",
	"ExperienceRange":  "Experience Range",
	"MinSalary":        "Minimum Salary",
	"MaxSalary":        "Maximum Salary",

	// Blog editor
	"Title":    "Title",
	"Summary":  "Summary",
	"Content":  "Content",
	"Category": "Category",
	"Author":   "Author",

	// Auth / contact
	"Email":    "Email",
	"Password": "Password",
	"Name":     "Name",
	"Message":  "Message",
	"Subject":  "Subject",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", label, e.Param())
	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number", label)
	case "salary_or_nd":
		return fmt.Sprintf(`%s must be a number or "Not Disclosed"`, label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}
