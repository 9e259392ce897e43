package repositories

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/go-memdb"

	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
)

const (
	facultyTable      = "faculty"
	pkIndex           = "id"
	emailIndex        = "email"
	employeeIDIndex   = "employee_id"
	departmentIndex   = "department"
	memoryDeleteOp    = "delete faculty"
	memoryWriteOp     = "write faculty"
	memoryReadOp      = "read faculty"
	memoryAggregateOp = "aggregate faculty"
)

// FacultySchema describes the in-memory faculty table
func FacultySchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			facultyTable: {
				Name: facultyTable,
				Indexes: map[string]*memdb.IndexSchema{
					pkIndex: {
						Name:    pkIndex,
						Unique:  true,
						Indexer: &memdb.UUIDFieldIndex{Field: "ID"},
					},
					// memdb does not reject duplicates on secondary indexes; writes check them first
					emailIndex: {
						Name:    emailIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Email", Lowercase: true},
					},
					employeeIDIndex: {
						Name:    employeeIDIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "EmployeeID"},
					},
					departmentIndex: {
						Name:    departmentIndex,
						Indexer: &memdb.StringFieldIndex{Field: "Department"},
					},
				},
			},
		},
	}
}

// MemoryFacultyRepository keeps faculty records in a go-memdb database.
// Stored objects are never handed out; callers always get clones.
type MemoryFacultyRepository struct {
	db *memdb.MemDB
}

// NewMemoryFacultyRepository creates an empty in-memory store
func NewMemoryFacultyRepository() (*MemoryFacultyRepository, error) {
	db, err := memdb.NewMemDB(FacultySchema())
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}
	return &MemoryFacultyRepository{db: db}, nil
}

// Create inserts a new record
func (r *MemoryFacultyRepository) Create(ctx context.Context, f *models.Faculty) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError(memoryWriteOp, err)
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(facultyTable, pkIndex, f.ID)
	if err != nil {
		return apperrors.NewStorageError(memoryWriteOp, err)
	}
	if existing != nil {
		return apperrors.NewConflictError("id", f.ID)
	}
	if err := checkUnique(txn, f); err != nil {
		return err
	}
	if err := txn.Insert(facultyTable, f.Clone()); err != nil {
		return apperrors.NewStorageError(memoryWriteOp, err)
	}

	txn.Commit()
	return nil
}

// GetByID returns a single record
func (r *MemoryFacultyRepository) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStorageError(memoryReadOp, err)
	}

	txn := r.db.Txn(false)
	defer txn.Abort()

	stored, err := r.get(txn, id)
	if err != nil {
		return nil, err
	}
	return stored.Clone(), nil
}

// Update replaces a stored record
func (r *MemoryFacultyRepository) Update(ctx context.Context, f *models.Faculty) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError(memoryWriteOp, err)
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	if _, err := r.get(txn, f.ID); err != nil {
		return err
	}
	if err := checkUnique(txn, f); err != nil {
		return err
	}
	if err := txn.Insert(facultyTable, f.Clone()); err != nil {
		return apperrors.NewStorageError(memoryWriteOp, err)
	}

	txn.Commit()
	return nil
}

// Delete removes a record
func (r *MemoryFacultyRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError(memoryDeleteOp, err)
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	stored, err := r.get(txn, id)
	if err != nil {
		return err
	}
	if err := txn.Delete(facultyTable, stored); err != nil {
		return apperrors.NewStorageError(memoryDeleteOp, err)
	}

	txn.Commit()
	return nil
}

// List returns one page of matching records and the total number of matches
func (r *MemoryFacultyRepository) List(ctx context.Context, filter FacultyFilter) ([]*models.Faculty, int64, error) {
	matches, err := r.scan(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})

	total := len(matches)
	start, end := helpers.CalculateSliceIndices(int(filter.Offset), filter.Limit, total)

	page := make([]*models.Faculty, 0, end-start)
	for _, f := range matches[start:end] {
		c := f.Clone()
		c.Documents = nil
		page = append(page, c)
	}
	return page, int64(total), nil
}

// Count returns the number of matching records
func (r *MemoryFacultyRepository) Count(ctx context.Context, filter FacultyFilter) (int64, error) {
	matches, err := r.scan(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(matches)), nil
}

// CountBy groups matching records by field, ordered by key
func (r *MemoryFacultyRepository) CountBy(ctx context.Context, field GroupField, filter FacultyFilter) ([]models.GroupCount, error) {
	if !field.IsValid() {
		return nil, apperrors.NewStorageError(memoryAggregateOp, fmt.Errorf("unsupported group field %q", field))
	}

	matches, err := r.scan(ctx, filter)
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{}
	for _, f := range matches {
		key := string(f.Department)
		if field == GroupByDesignation {
			key = string(f.Designation)
		}
		counts[key]++
	}

	groups := make([]models.GroupCount, 0, len(counts))
	for k, c := range counts {
		groups = append(groups, models.GroupCount{Key: k, Count: c})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups, nil
}

// SetEligibility updates only the cached eligibility flag
func (r *MemoryFacultyRepository) SetEligibility(ctx context.Context, id string, eligible bool) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError(memoryWriteOp, err)
	}

	txn := r.db.Txn(true)
	defer txn.Abort()

	stored, err := r.get(txn, id)
	if err != nil {
		return err
	}
	updated := stored.Clone()
	updated.RatificationStatus.IsEligible = eligible
	if err := txn.Insert(facultyTable, updated); err != nil {
		return apperrors.NewStorageError(memoryWriteOp, err)
	}

	txn.Commit()
	return nil
}

func (r *MemoryFacultyRepository) get(txn *memdb.Txn, id string) (*models.Faculty, error) {
	raw, err := txn.First(facultyTable, pkIndex, id)
	if err != nil {
		// The UUID indexer rejects malformed ids; such a record cannot exist.
		return nil, apperrors.ErrFacultyNotFound
	}
	if raw == nil {
		return nil, apperrors.ErrFacultyNotFound
	}
	return raw.(*models.Faculty), nil
}

func (r *MemoryFacultyRepository) scan(ctx context.Context, filter FacultyFilter) ([]*models.Faculty, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStorageError(memoryReadOp, err)
	}

	txn := r.db.Txn(false)
	defer txn.Abort()

	var (
		iter memdb.ResultIterator
		err  error
	)
	if filter.Department != "" {
		iter, err = txn.Get(facultyTable, departmentIndex, filter.Department)
	} else {
		iter, err = txn.Get(facultyTable, pkIndex)
	}
	if err != nil {
		return nil, apperrors.NewStorageError(memoryReadOp, err)
	}

	var matches []*models.Faculty
	for raw := iter.Next(); raw != nil; raw = iter.Next() {
		f := raw.(*models.Faculty)
		if filter.Matches(f) {
			matches = append(matches, f)
		}
	}
	return matches, nil
}

// checkUnique fails when another record already holds f's email or employeeId
func checkUnique(txn *memdb.Txn, f *models.Faculty) error {
	raw, err := txn.First(facultyTable, emailIndex, f.Email)
	if err != nil {
		return apperrors.NewStorageError(memoryWriteOp, err)
	}
	if raw != nil && raw.(*models.Faculty).ID != f.ID {
		return apperrors.NewConflictError("email", f.Email)
	}

	raw, err = txn.First(facultyTable, employeeIDIndex, f.EmployeeID)
	if err != nil {
		return apperrors.NewStorageError(memoryWriteOp, err)
	}
	if raw != nil && raw.(*models.Faculty).ID != f.ID {
		return apperrors.NewConflictError("employeeId", f.EmployeeID)
	}
	return nil
}
