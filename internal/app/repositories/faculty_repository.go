package repositories

import (
	"context"
	"strings"

	"github.com/yigit/facultyhub/internal/app/models"
)

// GroupField names a field faculty records can be grouped by
type GroupField string

const (
	GroupByDepartment  GroupField = "department"
	GroupByDesignation GroupField = "designation"
)

// IsValid reports whether f is a supported grouping
func (f GroupField) IsValid() bool {
	return f == GroupByDepartment || f == GroupByDesignation
}

// FacultyFilter narrows a faculty query. Empty strings and a nil Ratified match anything.
// A zero Limit returns every match.
type FacultyFilter struct {
	Department  string
	Designation string
	Status      string
	Ratified    *bool
	Search      string
	Offset      uint64
	Limit       int
}

// Matches applies the filter to a single record in memory
func (f FacultyFilter) Matches(r *models.Faculty) bool {
	if f.Department != "" && string(r.Department) != f.Department {
		return false
	}
	if f.Designation != "" && string(r.Designation) != f.Designation {
		return false
	}
	if f.Status != "" && string(r.Status) != f.Status {
		return false
	}
	if f.Ratified != nil && r.RatificationStatus.IsRatified != *f.Ratified {
		return false
	}
	if s := strings.ToLower(strings.TrimSpace(f.Search)); s != "" {
		for _, v := range []string{r.Name.FirstName, r.Name.LastName, r.EmployeeID, r.Email} {
			if strings.Contains(strings.ToLower(v), s) {
				return true
			}
		}
		return false
	}
	return true
}

// FacultyStore persists faculty records.
//
// Lookups by a missing id return apperrors.ErrFacultyNotFound, duplicate email or
// employeeId return an *apperrors.ConflictError, and every other failure is an
// *apperrors.StorageError. List results are ordered by createdAt descending and
// omit documents.
type FacultyStore interface {
	Create(ctx context.Context, f *models.Faculty) error
	GetByID(ctx context.Context, id string) (*models.Faculty, error)
	Update(ctx context.Context, f *models.Faculty) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter FacultyFilter) ([]*models.Faculty, int64, error)
	Count(ctx context.Context, filter FacultyFilter) (int64, error)
	CountBy(ctx context.Context, field GroupField, filter FacultyFilter) ([]models.GroupCount, error)
	SetEligibility(ctx context.Context, id string, eligible bool) error
}
