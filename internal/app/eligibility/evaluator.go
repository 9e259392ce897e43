// Package eligibility decides whether a faculty member currently qualifies
// for ratification of their appointment.
package eligibility

import (
	"time"

	"github.com/yigit/facultyhub/internal/app/models"
)

// DaysPerYear is the fixed year length used for service duration
const DaysPerYear = 365.25

// Rule holds the minimum requirements for one designation
type Rule struct {
	Designation           models.Designation `json:"designation"`
	MinYearsOfService     float64            `json:"minYearsOfService"`
	MinTeachingExperience int                `json:"minTeachingExperience"`
	MinPublications       int                `json:"minPublications"`
}

var rules = map[models.Designation]Rule{
	models.DesignationAssistantProfessor: {
		Designation:           models.DesignationAssistantProfessor,
		MinYearsOfService:     3,
		MinTeachingExperience: 3,
		MinPublications:       5,
	},
	models.DesignationAssociateProfessor: {
		Designation:           models.DesignationAssociateProfessor,
		MinYearsOfService:     2,
		MinTeachingExperience: 5,
		MinPublications:       10,
	},
	models.DesignationProfessor: {
		Designation:           models.DesignationProfessor,
		MinYearsOfService:     1,
		MinTeachingExperience: 8,
		MinPublications:       15,
	},
}

// Input is the subset of a faculty record the rule looks at
type Input struct {
	DateOfJoining     time.Time
	Designation       models.Designation
	TeachingYears     int
	TotalPublications int
}

// Thresholds returns the rule for a designation
func Thresholds(d models.Designation) (Rule, bool) {
	r, ok := rules[d]
	return r, ok
}

// Rules returns every rule, most junior designation first
func Rules() []Rule {
	return []Rule{
		rules[models.DesignationAssistantProfessor],
		rules[models.DesignationAssociateProfessor],
		rules[models.DesignationProfessor],
	}
}

// YearsOfService returns the service duration in fixed-length years.
// A joining date after now counts as zero service.
func YearsOfService(joined, now time.Time) float64 {
	if joined.IsZero() || !now.After(joined) {
		return 0
	}
	days := now.Sub(joined).Hours() / 24
	return days / DaysPerYear
}

// Evaluate reports whether in satisfies every requirement of its designation's tier.
// It never fails: unknown designations and missing dates are simply not eligible.
func Evaluate(in Input, now time.Time) bool {
	rule, ok := rules[in.Designation]
	if !ok || in.DateOfJoining.IsZero() {
		return false
	}

	return YearsOfService(in.DateOfJoining, now) >= rule.MinYearsOfService &&
		in.TeachingYears >= rule.MinTeachingExperience &&
		in.TotalPublications >= rule.MinPublications
}

// ForFaculty evaluates a stored record. The record is not modified.
func ForFaculty(f *models.Faculty, now time.Time) bool {
	if f == nil {
		return false
	}
	return Evaluate(Input{
		DateOfJoining:     f.DateOfJoining,
		Designation:       f.Designation,
		TeachingYears:     f.Experience.Teaching,
		TotalPublications: f.Publications.Total(),
	}, now)
}
