package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

// Date accepts either a plain calendar date ("2006-01-02") or an RFC3339 timestamp
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// ExperienceRequest uses pointers so a missing value can be told apart from zero
type ExperienceRequest struct {
	Teaching *int `json:"teaching"`
	Industry *int `json:"industry"`
	Research *int `json:"research"`
}

// PublicationsRequest holds optional publication counts
type PublicationsRequest struct {
	Journals    *int `json:"journals"`
	Conferences *int `json:"conferences"`
	Books       *int `json:"books"`
}

// CreateFacultyRequest represents faculty creation data
type CreateFacultyRequest struct {
	Name           models.PersonName    `json:"name"`
	Email          string               `json:"email"`
	EmployeeID     string               `json:"employeeId"`
	Department     string               `json:"department"`
	Designation    string               `json:"designation"`
	DateOfJoining  *Date                `json:"dateOfJoining"`
	Qualifications []string             `json:"qualifications"`
	Experience     *ExperienceRequest   `json:"experience"`
	Publications   *PublicationsRequest `json:"publications"`
	Phone          string               `json:"phone"`
	Address        *models.Address      `json:"address,omitempty"`
	Status         string               `json:"status,omitempty"`
	Documents      []models.Document    `json:"documents,omitempty"`
}

// ToModel builds an unsaved record. Violations that the model itself cannot
// express (a missing teaching experience is indistinguishable from zero) are returned.
func (r *CreateFacultyRequest) ToModel() (*models.Faculty, []apperrors.FieldViolation) {
	var violations []apperrors.FieldViolation

	f := &models.Faculty{
		Name:           r.Name,
		Email:          r.Email,
		EmployeeID:     r.EmployeeID,
		Department:     models.Department(strings.TrimSpace(r.Department)),
		Designation:    models.Designation(strings.TrimSpace(r.Designation)),
		Qualifications: append([]string{}, r.Qualifications...),
		Phone:          r.Phone,
		Status:         models.Status(strings.TrimSpace(r.Status)),
		Documents:      append([]models.Document{}, r.Documents...),
	}
	if r.Address != nil {
		addr := *r.Address
		f.Address = &addr
	}
	if r.DateOfJoining != nil {
		f.DateOfJoining = r.DateOfJoining.Time
	}

	if r.Experience == nil || r.Experience.Teaching == nil {
		violations = append(violations, apperrors.FieldViolation{Field: "experience.teaching", Message: "is required"})
	}
	applyExperience(&f.Experience, r.Experience)
	applyPublications(&f.Publications, r.Publications)

	return f, violations
}

// NamePatch holds optional name parts
type NamePatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// UpdateFacultyRequest represents a partial update; nil fields are left unchanged
type UpdateFacultyRequest struct {
	Name           *NamePatch           `json:"name"`
	Email          *string              `json:"email"`
	EmployeeID     *string              `json:"employeeId"`
	Department     *string              `json:"department"`
	Designation    *string              `json:"designation"`
	DateOfJoining  *Date                `json:"dateOfJoining"`
	Qualifications []string             `json:"qualifications"`
	Experience     *ExperienceRequest   `json:"experience"`
	Publications   *PublicationsRequest `json:"publications"`
	Phone          *string              `json:"phone"`
	Address        *models.Address      `json:"address"`
	Status         *string              `json:"status"`
	Documents      []models.Document    `json:"documents"`
}

// ApplyTo merges the supplied fields into f
func (r *UpdateFacultyRequest) ApplyTo(f *models.Faculty) {
	if r.Name != nil {
		if r.Name.FirstName != nil {
			f.Name.FirstName = *r.Name.FirstName
		}
		if r.Name.LastName != nil {
			f.Name.LastName = *r.Name.LastName
		}
	}
	if r.Email != nil {
		f.Email = *r.Email
	}
	if r.EmployeeID != nil {
		f.EmployeeID = *r.EmployeeID
	}
	if r.Department != nil {
		f.Department = models.Department(strings.TrimSpace(*r.Department))
	}
	if r.Designation != nil {
		f.Designation = models.Designation(strings.TrimSpace(*r.Designation))
	}
	if r.DateOfJoining != nil {
		f.DateOfJoining = r.DateOfJoining.Time
	}
	if r.Qualifications != nil {
		f.Qualifications = append([]string{}, r.Qualifications...)
	}
	applyExperience(&f.Experience, r.Experience)
	applyPublications(&f.Publications, r.Publications)
	if r.Phone != nil {
		f.Phone = *r.Phone
	}
	if r.Address != nil {
		addr := *r.Address
		f.Address = &addr
	}
	if r.Status != nil {
		f.Status = models.Status(strings.TrimSpace(*r.Status))
	}
	if r.Documents != nil {
		f.Documents = append([]models.Document{}, r.Documents...)
	}
}

func applyExperience(dst *models.Experience, src *ExperienceRequest) {
	if src == nil {
		return
	}
	if src.Teaching != nil {
		dst.Teaching = *src.Teaching
	}
	if src.Industry != nil {
		dst.Industry = *src.Industry
	}
	if src.Research != nil {
		dst.Research = *src.Research
	}
}

func applyPublications(dst *models.Publications, src *PublicationsRequest) {
	if src == nil {
		return
	}
	if src.Journals != nil {
		dst.Journals = *src.Journals
	}
	if src.Conferences != nil {
		dst.Conferences = *src.Conferences
	}
	if src.Books != nil {
		dst.Books = *src.Books
	}
}

// FacultyListQuery holds the recognised list options. "all" disables a filter.
type FacultyListQuery struct {
	Department  string `form:"department"`
	Designation string `form:"designation"`
	Status      string `form:"status"`
	Ratified    *bool  `form:"ratified"`
	Search      string `form:"search"`
	Page        int    `form:"page"`
	Limit       int    `form:"limit"`
}

// RatifyRequest represents a ratification action
type RatifyRequest struct {
	RatifiedBy string `json:"ratifiedBy"`
	Comments   string `json:"comments"`
}

// FacultyResponse is a faculty record with its derived fields
type FacultyResponse struct {
	models.Faculty
	FullName string `json:"fullName"`
}

// NewFacultyResponse converts a model into its API representation
func NewFacultyResponse(f *models.Faculty) FacultyResponse {
	return FacultyResponse{
		Faculty:  *f,
		FullName: models.FullName(f),
	}
}

// NewFacultyResponses converts a slice of models
func NewFacultyResponses(list []*models.Faculty) []FacultyResponse {
	out := make([]FacultyResponse, 0, len(list))
	for _, f := range list {
		out = append(out, NewFacultyResponse(f))
	}
	return out
}

// FacultyDetailResponse is the single-record view; documents is always present
type FacultyDetailResponse struct {
	FacultyResponse
	Documents []models.Document `json:"documents"`
}

// NewFacultyDetailResponse converts a model into its detail representation
func NewFacultyDetailResponse(f *models.Faculty) FacultyDetailResponse {
	docs := f.Documents
	if docs == nil {
		docs = []models.Document{}
	}
	return FacultyDetailResponse{
		FacultyResponse: NewFacultyResponse(f),
		Documents:       docs,
	}
}

// FacultyListResponse represents a page of faculty records
type FacultyListResponse struct {
	Faculty    []FacultyResponse `json:"faculty"`
	Pagination PaginationInfo    `json:"pagination"`
}

// StatsOverview holds the dashboard counters. Only Active records are counted.
type StatsOverview struct {
	TotalFaculty        int64 `json:"totalFaculty"`
	RatifiedFaculty     int64 `json:"ratifiedFaculty"`
	Professors          int64 `json:"professors"`
	AssociateProfessors int64 `json:"associateProfessors"`
	AssistantProfessors int64 `json:"assistantProfessors"`
}

// ChartPoint is one label/count pair of a chart data source
type ChartPoint struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}
