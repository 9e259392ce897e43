package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/yigit/facultyhub/internal/app/eligibility"
	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
	"github.com/yigit/facultyhub/internal/pkg/validation"
)

// filterAll disables a list filter
const filterAll = "all"

// maxRatifiedByLength matches the ratified_by column
const maxRatifiedByLength = 255

// FacultyPage is one page of a faculty listing
type FacultyPage struct {
	Items []*models.Faculty
	Total int64
	Page  int
	Limit int
	Pages int
}

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	List(ctx context.Context, query dto.FacultyListQuery) (*FacultyPage, error)
	GetByID(ctx context.Context, id string) (*models.Faculty, error)
	Create(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	Update(ctx context.Context, id string, req *dto.UpdateFacultyRequest) (*models.Faculty, error)
	Delete(ctx context.Context, id string) error
	ListEligible(ctx context.Context) ([]*models.Faculty, error)
	Ratify(ctx context.Context, id string, req *dto.RatifyRequest) (*models.Faculty, error)
	RefreshEligibility(ctx context.Context) (int, error)
}

// Option configures a service
type Option func(*serviceOptions)

type serviceOptions struct {
	now func() time.Time
}

// WithClock overrides the time source used for eligibility and timestamps
func WithClock(now func() time.Time) Option {
	return func(o *serviceOptions) {
		o.now = now
	}
}

func buildOptions(opts []Option) serviceOptions {
	o := serviceOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	store     repositories.FacultyStore
	validator *validation.Validator
	now       func() time.Time
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(store repositories.FacultyStore, validator *validation.Validator, opts ...Option) FacultyService {
	o := buildOptions(opts)
	return &facultyServiceImpl{
		store:     store,
		validator: validator,
		now:       o.now,
	}
}

// List returns one page of faculty records matching the query
func (s *facultyServiceImpl) List(ctx context.Context, query dto.FacultyListQuery) (*FacultyPage, error) {
	page, limit := helpers.NormalizePage(query.Page, query.Limit)
	offset, _ := helpers.CalculateOffsetLimit(page, limit)

	status := strings.TrimSpace(query.Status)
	if status == "" {
		status = string(models.StatusActive)
	}

	filter := repositories.FacultyFilter{
		Department:  optionalFilter(query.Department),
		Designation: optionalFilter(query.Designation),
		Status:      optionalFilter(status),
		Ratified:    query.Ratified,
		Search:      strings.TrimSpace(query.Search),
		Offset:      offset,
		Limit:       limit,
	}

	items, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing faculty: %w", err)
	}

	return &FacultyPage{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
		Pages: helpers.TotalPages(total, limit),
	}, nil
}

// GetByID retrieves a faculty record by ID
func (s *facultyServiceImpl) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	f, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return f, nil
}

// Create validates and stores a new faculty record
func (s *facultyServiceImpl) Create(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	if req == nil {
		return nil, apperrors.NewValidationError([]apperrors.FieldViolation{{Field: "", Message: "request body is required"}})
	}

	f, violations := req.ToModel()
	f.Normalize()
	violations = append(violations, checkClientDocuments(f.Documents, nil)...)
	violations = append(violations, s.validator.Validate(f)...)
	if err := apperrors.NewValidationError(violations); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	f.ID = uuid.NewString()
	f.RatificationStatus = models.RatificationStatus{
		IsEligible: eligibility.ForFaculty(f, now),
	}
	stampDocuments(f.Documents, now)
	f.CreatedAt = now
	f.UpdatedAt = now

	if err := s.store.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}
	return f, nil
}

// Update merges the supplied fields into an existing record
func (s *facultyServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateFacultyRequest) (*models.Faculty, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		req = &dto.UpdateFacultyRequest{}
	}

	f, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	previous := f.Documents
	req.ApplyTo(f)
	f.Normalize()
	violations := s.validator.Validate(f)
	if req.Documents != nil {
		violations = append(checkClientDocuments(f.Documents, previous), violations...)
	}
	if err := apperrors.NewValidationError(violations); err != nil {
		return nil, err
	}
	keepUploadDates(f.Documents, previous)

	now := s.now().UTC()
	f.RatificationStatus.IsEligible = eligibility.ForFaculty(f, now)
	stampDocuments(f.Documents, now)
	f.UpdatedAt = now

	if err := s.store.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("error updating faculty: %w", err)
	}
	return f, nil
}

// Delete removes a faculty record
func (s *facultyServiceImpl) Delete(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	return nil
}

// ListEligible returns Active, unratified records that are eligible right now
func (s *facultyServiceImpl) ListEligible(ctx context.Context) ([]*models.Faculty, error) {
	notRatified := false
	candidates, _, err := s.store.List(ctx, repositories.FacultyFilter{
		Status:   string(models.StatusActive),
		Ratified: &notRatified,
	})
	if err != nil {
		return nil, fmt.Errorf("error listing ratification candidates: %w", err)
	}

	now := s.now().UTC()
	eligible := make([]*models.Faculty, 0, len(candidates))
	for _, f := range candidates {
		if eligibility.ForFaculty(f, now) {
			f.RatificationStatus.IsEligible = true
			eligible = append(eligible, f)
		}
	}
	return eligible, nil
}

// Ratify marks an eligible, unratified record as ratified
func (s *facultyServiceImpl) Ratify(ctx context.Context, id string, req *dto.RatifyRequest) (*models.Faculty, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var ratifiedBy, comments string
	if req != nil {
		ratifiedBy = strings.TrimSpace(req.RatifiedBy)
		comments = strings.TrimSpace(req.Comments)
	}
	if ratifiedBy == "" {
		return nil, apperrors.NewValidationError([]apperrors.FieldViolation{{Field: "ratifiedBy", Message: "is required"}})
	}
	if utf8.RuneCountInString(ratifiedBy) > maxRatifiedByLength {
		return nil, apperrors.NewValidationError([]apperrors.FieldViolation{
			{Field: "ratifiedBy", Message: fmt.Sprintf("must be at most %d characters", maxRatifiedByLength)},
		})
	}

	f, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	if f.RatificationStatus.IsRatified {
		return nil, apperrors.ErrAlreadyRatified
	}

	now := s.now().UTC()
	if !eligibility.ForFaculty(f, now) {
		return nil, notEligibleError(f, now)
	}

	f.RatificationStatus = models.RatificationStatus{
		IsRatified:       true,
		RatificationDate: &now,
		RatifiedBy:       ratifiedBy,
		Comments:         comments,
		IsEligible:       true,
	}
	f.UpdatedAt = now

	if err := s.store.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("error ratifying faculty: %w", err)
	}
	return f, nil
}

// RefreshEligibility recomputes the cached eligibility of every record and
// persists the ones that changed. It returns how many were updated.
func (s *facultyServiceImpl) RefreshEligibility(ctx context.Context) (int, error) {
	all, _, err := s.store.List(ctx, repositories.FacultyFilter{})
	if err != nil {
		return 0, fmt.Errorf("error listing faculty for eligibility refresh: %w", err)
	}

	now := s.now().UTC()
	changed := 0
	for _, f := range all {
		eligible := eligibility.ForFaculty(f, now)
		if eligible == f.RatificationStatus.IsEligible {
			continue
		}
		if err := s.store.SetEligibility(ctx, f.ID, eligible); err != nil {
			return changed, fmt.Errorf("error refreshing eligibility of %s: %w", f.ID, err)
		}
		changed++
	}
	return changed, nil
}

// notEligibleError reports the record's standing against its designation's rule
func notEligibleError(f *models.Faculty, now time.Time) error {
	details := map[string]interface{}{
		"designation":        f.Designation,
		"yearsOfService":     math.Floor(eligibility.YearsOfService(f.DateOfJoining, now)*100) / 100,
		"teachingExperience": f.Experience.Teaching,
		"publications":       f.Publications.Total(),
	}
	if rule, ok := eligibility.Thresholds(f.Designation); ok {
		details["requirements"] = rule
	}
	return apperrors.ErrFacultyNotEligible.WithDetails(details)
}

// parseID rejects malformed identifiers and returns the canonical form
func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", apperrors.ErrInvalidFacultyID
	}
	return parsed.String(), nil
}

// optionalFilter maps "" and "all" to no filter
func optionalFilter(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, filterAll) {
		return ""
	}
	return v
}

// checkClientDocuments accepts external http(s) references and entries already on
// the record. Files in local storage are only attached through DocumentService.
func checkClientDocuments(docs, existing []models.Document) []apperrors.FieldViolation {
	known := make(map[string]struct{}, len(existing))
	for _, d := range existing {
		known[d.Path] = struct{}{}
	}

	var violations []apperrors.FieldViolation
	for i, d := range docs {
		if _, ok := known[d.Path]; ok || isExternalReference(d.Path) {
			continue
		}
		violations = append(violations, apperrors.FieldViolation{
			Field:   fmt.Sprintf("documents[%d].path", i),
			Message: "must be an http(s) URL or an existing attachment",
		})
	}
	return violations
}

// keepUploadDates restores the upload date of entries that were already attached
func keepUploadDates(docs, previous []models.Document) {
	dates := make(map[string]time.Time, len(previous))
	for _, d := range previous {
		dates[d.Path] = d.UploadDate
	}
	for i := range docs {
		if at, ok := dates[docs[i].Path]; ok {
			docs[i].UploadDate = at
		}
	}
}

func stampDocuments(docs []models.Document, now time.Time) {
	for i := range docs {
		if docs[i].UploadDate.IsZero() {
			docs[i].UploadDate = now
		}
	}
}
