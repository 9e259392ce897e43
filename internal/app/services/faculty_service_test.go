package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/models/dto"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/validation"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func intPtr(v int) *int             { return &v }
func strPtr(v string) *string       { return &v }
func datePtr(t time.Time) *dto.Date { return &dto.Date{Time: t} }

func yearsBefore(now time.Time, years float64) time.Time {
	return now.Add(-time.Duration(years * 365.25 * 24 * float64(time.Hour)))
}

type fixture struct {
	svc   FacultyService
	stats StatisticsService
	store *repositories.MemoryFacultyRepository
	clock *testClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := repositories.NewMemoryFacultyRepository()
	if err != nil {
		t.Fatalf("NewMemoryFacultyRepository: %v", err)
	}
	clock := &testClock{now: fixedNow}
	return &fixture{
		svc:   NewFacultyService(store, validation.NewValidator(), WithClock(clock.Now)),
		stats: NewStatisticsService(store),
		store: store,
		clock: clock,
	}
}

// createRequest builds a valid Assistant Professor who is eligible at fixedNow
func createRequest(n int) *dto.CreateFacultyRequest {
	return &dto.CreateFacultyRequest{
		Name:           models.PersonName{FirstName: fmt.Sprintf("First%d", n), LastName: fmt.Sprintf("Last%d", n)},
		Email:          fmt.Sprintf("faculty%d@college.edu", n),
		EmployeeID:     fmt.Sprintf("emp%03d", n),
		Department:     string(models.DeptComputerScience),
		Designation:    string(models.DesignationAssistantProfessor),
		DateOfJoining:  datePtr(yearsBefore(fixedNow, 3.5)),
		Qualifications: []string{"Ph.D", "M.Tech"},
		Experience:     &dto.ExperienceRequest{Teaching: intPtr(4)},
		Publications:   &dto.PublicationsRequest{Journals: intPtr(3), Conferences: intPtr(2)},
		Phone:          "+91-9876543210",
	}
}

func (fx *fixture) mustCreate(t *testing.T, req *dto.CreateFacultyRequest) *models.Faculty {
	t.Helper()
	f, err := fx.svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Distinct createdAt values keep list ordering deterministic
	fx.clock.now = fx.clock.now.Add(time.Second)
	return f
}

func TestCreateNormalizesAndEvaluates(t *testing.T) {
	fx := newFixture(t)
	req := createRequest(1)
	req.Email = "  Faculty1@College.EDU "
	req.Qualifications = []string{" Ph.D ", "M.Tech"}

	f := fx.mustCreate(t, req)

	if _, err := uuid.Parse(f.ID); err != nil {
		t.Errorf("id %q is not a UUID", f.ID)
	}
	if f.Email != "faculty1@college.edu" || f.EmployeeID != "EMP001" {
		t.Errorf("not normalized: email=%q employeeId=%q", f.Email, f.EmployeeID)
	}
	if f.Status != models.StatusActive {
		t.Errorf("status = %q, want Active", f.Status)
	}
	if !f.RatificationStatus.IsEligible || f.RatificationStatus.IsRatified {
		t.Errorf("unexpected ratification status %+v", f.RatificationStatus)
	}
	if !f.CreatedAt.Equal(fixedNow) || !f.UpdatedAt.Equal(fixedNow) {
		t.Errorf("timestamps not stamped with clock: %v %v", f.CreatedAt, f.UpdatedAt)
	}

	stored, err := fx.svc.GetByID(context.Background(), f.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(stored.Qualifications) != 2 || stored.Qualifications[0] != "Ph.D" || stored.Qualifications[1] != "M.Tech" {
		t.Errorf("qualifications not preserved: %v", stored.Qualifications)
	}
}

func TestCreateDuplicateEmailAnyCase(t *testing.T) {
	fx := newFixture(t)
	fx.mustCreate(t, createRequest(1))

	dup := createRequest(2)
	dup.Email = "FACULTY1@college.edu"
	_, err := fx.svc.Create(context.Background(), dup)

	var cErr *apperrors.ConflictError
	if !errors.As(err, &cErr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if cErr.Field != "email" || cErr.Value != "faculty1@college.edu" {
		t.Errorf("unexpected conflict %+v", cErr)
	}

	dupEmployee := createRequest(3)
	dupEmployee.EmployeeID = "EMP001"
	if _, err := fx.svc.Create(context.Background(), dupEmployee); !errors.As(err, &cErr) || cErr.Field != "employeeId" {
		t.Fatalf("expected employeeId conflict, got %v", err)
	}
}

func TestCreateReportsEveryViolation(t *testing.T) {
	fx := newFixture(t)
	req := createRequest(1)
	req.Name.FirstName = ""
	req.Email = "nope"
	req.Department = "Astrology"
	req.Phone = "12345"
	req.Experience = nil
	req.Publications = &dto.PublicationsRequest{Books: intPtr(-1)}

	_, err := fx.svc.Create(context.Background(), req)

	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	got := map[string]bool{}
	for _, v := range vErr.Violations {
		got[v.Field] = true
	}
	for _, field := range []string{"name.firstName", "email", "department", "phone", "experience.teaching", "publications.books"} {
		if !got[field] {
			t.Errorf("missing violation for %s in %v", field, vErr.Violations)
		}
	}

	if n, _ := fx.store.Count(context.Background(), repositories.FacultyFilter{}); n != 0 {
		t.Errorf("invalid record was stored")
	}
}

func TestCreateFutureJoiningIsIneligible(t *testing.T) {
	fx := newFixture(t)
	req := createRequest(1)
	req.DateOfJoining = datePtr(fixedNow.AddDate(1, 0, 0))
	req.Experience.Teaching = intPtr(30)
	req.Publications = &dto.PublicationsRequest{Journals: intPtr(100)}

	f := fx.mustCreate(t, req)
	if f.RatificationStatus.IsEligible {
		t.Error("future joining date must not be eligible")
	}
}

func TestListPagination(t *testing.T) {
	fx := newFixture(t)
	for i := 1; i <= 25; i++ {
		fx.mustCreate(t, createRequest(i))
	}

	page, err := fx.svc.List(context.Background(), dto.FacultyListQuery{
		Department:  "all",
		Designation: "all",
		Status:      "Active",
		Page:        2,
		Limit:       10,
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Items) != 10 || page.Total != 25 || page.Pages != 3 || page.Page != 2 || page.Limit != 10 {
		t.Errorf("unexpected page: items=%d total=%d pages=%d page=%d limit=%d",
			len(page.Items), page.Total, page.Pages, page.Page, page.Limit)
	}
	if page.Items[0].EmployeeID != "EMP015" {
		t.Errorf("expected newest-first ordering, first item %s", page.Items[0].EmployeeID)
	}
}

func TestListDefaultsAndFilters(t *testing.T) {
	fx := newFixture(t)
	fx.mustCreate(t, createRequest(1))

	inactive := createRequest(2)
	inactive.Status = string(models.StatusInactive)
	fx.mustCreate(t, inactive)

	mech := createRequest(3)
	mech.Department = string(models.DeptMechanical)
	mech.Name = models.PersonName{FirstName: "Kavya", LastName: "Menon"}
	fx.mustCreate(t, mech)

	tests := []struct {
		name  string
		query dto.FacultyListQuery
		want  int64
	}{
		{"status defaults to Active", dto.FacultyListQuery{}, 2},
		{"status all", dto.FacultyListQuery{Status: "all"}, 3},
		{"status Inactive", dto.FacultyListQuery{Status: "Inactive"}, 1},
		{"department", dto.FacultyListQuery{Department: string(models.DeptMechanical)}, 1},
		{"search", dto.FacultyListQuery{Search: "kav", Status: "all"}, 1},
		{"unknown department", dto.FacultyListQuery{Department: "Astrology"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := fx.svc.List(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if page.Total != tt.want {
				t.Errorf("total = %d, want %d", page.Total, tt.want)
			}
		})
	}
}

func TestListEmptyAndLimits(t *testing.T) {
	fx := newFixture(t)

	page, err := fx.svc.List(context.Background(), dto.FacultyListQuery{Page: -3, Limit: 1000})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Page != 1 || page.Limit != 100 || page.Pages != 0 || page.Total != 0 || len(page.Items) != 0 {
		t.Errorf("unexpected empty page %+v", page)
	}
}

func TestGetByIDErrors(t *testing.T) {
	fx := newFixture(t)

	if _, err := fx.svc.GetByID(context.Background(), "not-a-uuid"); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("malformed id: got %v", err)
	}
	if _, err := fx.svc.GetByID(context.Background(), uuid.NewString()); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("missing id: got %v", err)
	}
}

func TestUpdateCrossingThresholdFlipsEligibility(t *testing.T) {
	fx := newFixture(t)
	req := createRequest(1)
	req.DateOfJoining = datePtr(yearsBefore(fixedNow, 2))
	f := fx.mustCreate(t, req)
	if f.RatificationStatus.IsEligible {
		t.Fatal("two years of service should not be eligible")
	}

	updated, err := fx.svc.Update(context.Background(), f.ID, &dto.UpdateFacultyRequest{
		DateOfJoining: datePtr(yearsBefore(fixedNow, 4)),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.RatificationStatus.IsEligible {
		t.Error("eligibility should flip to true")
	}
	if updated.Email != f.Email || updated.Phone != f.Phone {
		t.Error("partial update changed untouched fields")
	}
	if !updated.UpdatedAt.After(f.UpdatedAt) {
		t.Error("updatedAt not advanced")
	}
	if !updated.CreatedAt.Equal(f.CreatedAt) {
		t.Error("createdAt must not change")
	}
}

func TestUpdateErrors(t *testing.T) {
	fx := newFixture(t)
	first := fx.mustCreate(t, createRequest(1))
	second := fx.mustCreate(t, createRequest(2))
	ctx := context.Background()

	if _, err := fx.svc.Update(ctx, "bad", &dto.UpdateFacultyRequest{}); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("malformed id: got %v", err)
	}
	if _, err := fx.svc.Update(ctx, uuid.NewString(), &dto.UpdateFacultyRequest{}); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("missing id: got %v", err)
	}
	if _, err := fx.svc.Update(ctx, second.ID, &dto.UpdateFacultyRequest{Email: strPtr(first.Email)}); !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("duplicate email: got %v", err)
	}
	if _, err := fx.svc.Update(ctx, second.ID, &dto.UpdateFacultyRequest{Phone: strPtr("+1-555")}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("bad phone: got %v", err)
	}

	stored, _ := fx.svc.GetByID(ctx, second.ID)
	if stored.Phone != second.Phone || stored.Email != second.Email {
		t.Error("failed updates must not be persisted")
	}
}

func TestDeleteTwice(t *testing.T) {
	fx := newFixture(t)
	f := fx.mustCreate(t, createRequest(1))

	if err := fx.svc.Delete(context.Background(), f.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := fx.svc.Delete(context.Background(), f.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("second delete: got %v", err)
	}
	if err := fx.svc.Delete(context.Background(), "123"); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Errorf("malformed id: got %v", err)
	}
}

func TestRatifyIneligibleLeavesRecordUntouched(t *testing.T) {
	fx := newFixture(t)
	req := createRequest(1)
	req.Publications = &dto.PublicationsRequest{Journals: intPtr(1)}
	f := fx.mustCreate(t, req)

	_, err := fx.svc.Ratify(context.Background(), f.ID, &dto.RatifyRequest{RatifiedBy: "Dean"})
	if !errors.Is(err, apperrors.ErrInvalidOperation) || !errors.Is(err, apperrors.ErrFacultyNotEligible) {
		t.Fatalf("expected InvalidOperation, got %v", err)
	}
	var cErr *apperrors.CustomError
	if !errors.As(err, &cErr) || cErr.Code != apperrors.CodeNotEligible || cErr.Details["publications"] != 1 {
		t.Errorf("expected eligibility details, got %+v", cErr)
	}

	stored, _ := fx.svc.GetByID(context.Background(), f.ID)
	if stored.RatificationStatus.IsRatified || stored.RatificationStatus.RatificationDate != nil {
		t.Errorf("record was modified: %+v", stored.RatificationStatus)
	}
}

func TestRatifyEligible(t *testing.T) {
	fx := newFixture(t)
	f := fx.mustCreate(t, createRequest(1))
	ctx := context.Background()

	if _, err := fx.svc.Ratify(ctx, f.ID, &dto.RatifyRequest{RatifiedBy: "  "}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("blank ratifiedBy: got %v", err)
	}
	if _, err := fx.svc.Ratify(ctx, f.ID, &dto.RatifyRequest{RatifiedBy: strings.Repeat("D", 256)}); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("overlong ratifiedBy: got %v", err)
	}

	ratified, err := fx.svc.Ratify(ctx, f.ID, &dto.RatifyRequest{RatifiedBy: "Dean of Faculty", Comments: "Approved"})
	if err != nil {
		t.Fatalf("Ratify: %v", err)
	}
	rs := ratified.RatificationStatus
	if !rs.IsRatified || rs.RatifiedBy != "Dean of Faculty" || rs.Comments != "Approved" || rs.RatificationDate == nil {
		t.Errorf("unexpected ratification status %+v", rs)
	}
	if !rs.RatificationDate.Equal(fx.clock.now) {
		t.Errorf("ratification date = %v, want %v", rs.RatificationDate, fx.clock.now)
	}

	if _, err := fx.svc.Ratify(ctx, f.ID, &dto.RatifyRequest{RatifiedBy: "Dean"}); !errors.Is(err, apperrors.ErrInvalidOperation) {
		t.Errorf("second ratify: got %v", err)
	}
}

func TestListEligible(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	eligible := fx.mustCreate(t, createRequest(1))

	short := createRequest(2)
	short.Experience.Teaching = intPtr(1)
	fx.mustCreate(t, short)

	onLeave := createRequest(3)
	onLeave.Status = string(models.StatusOnLeave)
	fx.mustCreate(t, onLeave)

	done := fx.mustCreate(t, createRequest(4))
	if _, err := fx.svc.Ratify(ctx, done.ID, &dto.RatifyRequest{RatifiedBy: "Dean"}); err != nil {
		t.Fatalf("Ratify: %v", err)
	}

	list, err := fx.svc.ListEligible(ctx)
	if err != nil {
		t.Fatalf("ListEligible: %v", err)
	}
	if len(list) != 1 || list[0].ID != eligible.ID {
		t.Fatalf("got %d records, want only %s", len(list), eligible.EmployeeID)
	}
	if !list[0].RatificationStatus.IsEligible {
		t.Error("listed record must report isEligible")
	}
}

func TestRefreshEligibilityPersistsDrift(t *testing.T) {
	fx := newFixture(t)
	req := createRequest(1)
	req.DateOfJoining = datePtr(yearsBefore(fixedNow, 2.9))
	f := fx.mustCreate(t, req)
	if f.RatificationStatus.IsEligible {
		t.Fatal("should start ineligible")
	}

	fx.clock.now = fixedNow.AddDate(0, 3, 0)
	changed, err := fx.svc.RefreshEligibility(context.Background())
	if err != nil {
		t.Fatalf("RefreshEligibility: %v", err)
	}
	if changed != 1 {
		t.Errorf("changed = %d, want 1", changed)
	}

	stored, _ := fx.svc.GetByID(context.Background(), f.ID)
	if !stored.RatificationStatus.IsEligible {
		t.Error("refreshed flag not persisted")
	}

	changed, _ = fx.svc.RefreshEligibility(context.Background())
	if changed != 0 {
		t.Errorf("second refresh changed %d records, want 0", changed)
	}
}

func TestCreateRejectsValuesLongerThanTheirColumns(t *testing.T) {
	fx := newFixture(t)
	req := createRequest(1)
	req.EmployeeID = strings.Repeat("E", 65)
	req.Email = strings.Repeat("a", 300) + "@x.edu"

	_, err := fx.svc.Create(context.Background(), req)
	var vErr *apperrors.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	fields := map[string]bool{}
	for _, v := range vErr.Violations {
		fields[v.Field] = true
	}
	if !fields["employeeId"] || !fields["email"] {
		t.Errorf("violations = %+v", vErr.Violations)
	}
	if errors.Is(err, apperrors.ErrStorageUnavailable) {
		t.Error("length violations must not surface as storage errors")
	}
}
