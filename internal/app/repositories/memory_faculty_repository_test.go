package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

var baseTime = time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

func newFaculty(n int) *models.Faculty {
	f := &models.Faculty{
		ID:             uuid.NewString(),
		Name:           models.PersonName{FirstName: fmt.Sprintf("First%d", n), LastName: fmt.Sprintf("Last%d", n)},
		Email:          fmt.Sprintf("faculty%d@college.edu", n),
		EmployeeID:     fmt.Sprintf("EMP%03d", n),
		Department:     models.DeptComputerScience,
		Designation:    models.DesignationAssistantProfessor,
		DateOfJoining:  baseTime.AddDate(-4, 0, 0),
		Qualifications: []string{"Ph.D", "M.Tech"},
		Experience:     models.Experience{Teaching: 4},
		Phone:          "+91-9876543210",
		Status:         models.StatusActive,
		Documents:      []models.Document{{Name: "cv.pdf", Path: "/docs/cv.pdf", UploadDate: baseTime}},
		CreatedAt:      baseTime.Add(time.Duration(n) * time.Minute),
	}
	f.UpdatedAt = f.CreatedAt
	return f
}

func newMemoryRepo(t *testing.T) *MemoryFacultyRepository {
	t.Helper()
	repo, err := NewMemoryFacultyRepository()
	if err != nil {
		t.Fatalf("NewMemoryFacultyRepository: %v", err)
	}
	return repo
}

func mustCreate(t *testing.T, repo FacultyStore, f *models.Faculty) {
	t.Helper()
	if err := repo.Create(context.Background(), f); err != nil {
		t.Fatalf("Create(%s): %v", f.EmployeeID, err)
	}
}

func TestMemoryCreateAndGet(t *testing.T) {
	repo := newMemoryRepo(t)
	f := newFaculty(1)
	mustCreate(t, repo, f)

	got, err := repo.GetByID(context.Background(), f.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Email != f.Email || len(got.Qualifications) != 2 || got.Qualifications[0] != "Ph.D" || got.Qualifications[1] != "M.Tech" {
		t.Errorf("unexpected record %+v", got)
	}
	if len(got.Documents) != 1 {
		t.Errorf("GetByID should include documents, got %d", len(got.Documents))
	}

	// Mutating the returned value must not leak into the store
	got.Qualifications[0] = "changed"
	again, _ := repo.GetByID(context.Background(), f.ID)
	if again.Qualifications[0] != "Ph.D" {
		t.Error("store returned an aliased record")
	}
}

func TestMemoryUniqueness(t *testing.T) {
	repo := newMemoryRepo(t)
	first := newFaculty(1)
	mustCreate(t, repo, first)

	sameEmail := newFaculty(2)
	sameEmail.Email = first.Email
	err := repo.Create(context.Background(), sameEmail)
	var cErr *apperrors.ConflictError
	if !errors.As(err, &cErr) || cErr.Field != "email" || cErr.Value != first.Email {
		t.Fatalf("expected email conflict, got %v", err)
	}

	sameEmployee := newFaculty(3)
	sameEmployee.EmployeeID = first.EmployeeID
	err = repo.Create(context.Background(), sameEmployee)
	if !errors.As(err, &cErr) || cErr.Field != "employeeId" {
		t.Fatalf("expected employeeId conflict, got %v", err)
	}

	// Updating another record onto a taken email conflicts too
	other := newFaculty(4)
	mustCreate(t, repo, other)
	other.Email = first.Email
	if err := repo.Update(context.Background(), other); !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict on update, got %v", err)
	}

	// A record keeps its own email on update
	first.Phone = "+91-1111111111"
	if err := repo.Update(context.Background(), first); err != nil {
		t.Fatalf("self update: %v", err)
	}
}

func TestMemoryNotFound(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx := context.Background()
	missing := uuid.NewString()

	if _, err := repo.GetByID(ctx, missing); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("GetByID: got %v", err)
	}
	if err := repo.Update(ctx, newFaculty(1)); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("Update: got %v", err)
	}
	if err := repo.Delete(ctx, missing); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("Delete: got %v", err)
	}
	if err := repo.SetEligibility(ctx, missing, true); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Errorf("SetEligibility: got %v", err)
	}
}

func TestMemoryDeleteTwice(t *testing.T) {
	repo := newMemoryRepo(t)
	f := newFaculty(1)
	mustCreate(t, repo, f)

	if err := repo.Delete(context.Background(), f.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(context.Background(), f.ID); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("second delete: got %v", err)
	}
}

func TestMemoryListPaginationAndOrder(t *testing.T) {
	repo := newMemoryRepo(t)
	for i := 1; i <= 25; i++ {
		mustCreate(t, repo, newFaculty(i))
	}

	items, total, err := repo.List(context.Background(), FacultyFilter{Status: string(models.StatusActive), Offset: 10, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 25 || len(items) != 10 {
		t.Fatalf("got %d items of %d, want 10 of 25", len(items), total)
	}
	// Newest first: record 25 is index 0, so offset 10 starts at record 15
	if items[0].EmployeeID != "EMP015" || items[9].EmployeeID != "EMP006" {
		t.Errorf("unexpected page bounds %s..%s", items[0].EmployeeID, items[9].EmployeeID)
	}
	for _, f := range items {
		if f.Documents != nil {
			t.Fatal("list results must not carry documents")
		}
	}

	items, _, _ = repo.List(context.Background(), FacultyFilter{Offset: 20, Limit: 10})
	if len(items) != 5 {
		t.Errorf("last page has %d items, want 5", len(items))
	}
	items, _, _ = repo.List(context.Background(), FacultyFilter{Offset: 40, Limit: 10})
	if len(items) != 0 {
		t.Errorf("page past the end has %d items, want 0", len(items))
	}
}

func TestMemoryFilters(t *testing.T) {
	repo := newMemoryRepo(t)

	a := newFaculty(1)
	a.Name = models.PersonName{FirstName: "Anita", LastName: "Sharma"}
	a.Department = models.DeptMechanical
	mustCreate(t, repo, a)

	b := newFaculty(2)
	b.Name = models.PersonName{FirstName: "Ravi", LastName: "Kumar"}
	b.Designation = models.DesignationProfessor
	b.RatificationStatus.IsRatified = true
	mustCreate(t, repo, b)

	c := newFaculty(3)
	c.Name = models.PersonName{FirstName: "Meera", LastName: "Iyer"}
	c.Status = models.StatusOnLeave
	mustCreate(t, repo, c)

	ratified := true
	tests := []struct {
		name   string
		filter FacultyFilter
		want   int64
	}{
		{"no filter", FacultyFilter{}, 3},
		{"department", FacultyFilter{Department: string(models.DeptMechanical)}, 1},
		{"designation", FacultyFilter{Designation: string(models.DesignationProfessor)}, 1},
		{"status", FacultyFilter{Status: string(models.StatusActive)}, 2},
		{"ratified", FacultyFilter{Ratified: &ratified}, 1},
		{"search first name any case", FacultyFilter{Search: "aNiTa"}, 1},
		{"search employee id", FacultyFilter{Search: "emp00"}, 3},
		{"search email", FacultyFilter{Search: "faculty2@"}, 1},
		{"search metacharacters", FacultyFilter{Search: ".*"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Count(context.Background(), tt.filter)
			if err != nil {
				t.Fatalf("Count: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMemoryCountBy(t *testing.T) {
	repo := newMemoryRepo(t)
	for i, d := range []models.Department{models.DeptCivil, models.DeptCivil, models.DeptBiotechnology} {
		f := newFaculty(i + 1)
		f.Department = d
		mustCreate(t, repo, f)
	}

	groups, err := repo.CountBy(context.Background(), GroupByDepartment, FacultyFilter{})
	if err != nil {
		t.Fatalf("CountBy: %v", err)
	}
	want := []models.GroupCount{
		{Key: string(models.DeptBiotechnology), Count: 1},
		{Key: string(models.DeptCivil), Count: 2},
	}
	if len(groups) != len(want) {
		t.Fatalf("got %v, want %v", groups, want)
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("group %d = %v, want %v", i, groups[i], want[i])
		}
	}

	if _, err := repo.CountBy(context.Background(), GroupField("phone"), FacultyFilter{}); !errors.Is(err, apperrors.ErrStorageUnavailable) {
		t.Errorf("unsupported field: got %v", err)
	}
}

func TestMemorySetEligibility(t *testing.T) {
	repo := newMemoryRepo(t)
	f := newFaculty(1)
	mustCreate(t, repo, f)

	if err := repo.SetEligibility(context.Background(), f.ID, true); err != nil {
		t.Fatalf("SetEligibility: %v", err)
	}
	got, _ := repo.GetByID(context.Background(), f.ID)
	if !got.RatificationStatus.IsEligible {
		t.Error("eligibility flag not persisted")
	}
}

func TestMemoryCancelledContext(t *testing.T) {
	repo := newMemoryRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := repo.List(ctx, FacultyFilter{}); !errors.Is(err, apperrors.ErrStorageUnavailable) {
		t.Errorf("expected storage error, got %v", err)
	}
}
