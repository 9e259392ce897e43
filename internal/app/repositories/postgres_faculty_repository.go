package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/dberrors"
	"github.com/yigit/facultyhub/internal/pkg/helpers"
)

// Unique constraints declared in migrations/001_create_faculty.sql
const (
	facultyEmailConstraint      = "faculty_email_key"
	facultyEmployeeIDConstraint = "faculty_employee_id_key"
)

// facultyColumns is the column order every scan relies on; documents is always last
var facultyColumns = []string{
	"id", "first_name", "last_name", "email", "employee_id", "department", "designation",
	"date_of_joining", "qualifications",
	"experience_teaching", "experience_industry", "experience_research",
	"publications_journals", "publications_conferences", "publications_books",
	"phone", "address",
	"is_ratified", "ratification_date", "ratified_by", "ratification_comments", "is_eligible",
	"status", "created_at", "updated_at", "documents",
}

// listColumns omits documents
var listColumns = facultyColumns[:len(facultyColumns)-1]

// PostgresFacultyRepository handles faculty database operations
type PostgresFacultyRepository struct {
	db *pgxpool.Pool
	// Use squirrel instance with placeholder format
	sb squirrel.StatementBuilderType
}

// NewPostgresFacultyRepository creates a new PostgresFacultyRepository
func NewPostgresFacultyRepository(db *pgxpool.Pool) *PostgresFacultyRepository {
	return &PostgresFacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new faculty record
func (r *PostgresFacultyRepository) Create(ctx context.Context, f *models.Faculty) error {
	query, args, err := r.sb.Insert("faculty").
		SetMap(facultyValues(f, true)).
		ToSql()
	if err != nil {
		return apperrors.NewStorageError("build create faculty query", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if cErr := conflictFromPg(err, f); cErr != nil {
			return cErr
		}
		return apperrors.NewStorageError("create faculty", err)
	}
	return nil
}

// GetByID retrieves a faculty record by ID
func (r *PostgresFacultyRepository) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	query, args, err := r.sb.Select(facultyColumns...).
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, apperrors.NewStorageError("build get faculty query", err)
	}

	f, err := scanFaculty(r.db.QueryRow(ctx, query, args...), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, apperrors.NewStorageError("get faculty", err)
	}
	return f, nil
}

// Update replaces every mutable column of an existing record
func (r *PostgresFacultyRepository) Update(ctx context.Context, f *models.Faculty) error {
	query, args, err := r.sb.Update("faculty").
		SetMap(facultyValues(f, false)).
		Where(squirrel.Eq{"id": f.ID}).
		ToSql()
	if err != nil {
		return apperrors.NewStorageError("build update faculty query", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if cErr := conflictFromPg(err, f); cErr != nil {
			return cErr
		}
		return apperrors.NewStorageError("update faculty", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// Delete deletes a faculty record by ID
func (r *PostgresFacultyRepository) Delete(ctx context.Context, id string) error {
	query, args, err := r.sb.Delete("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return apperrors.NewStorageError("build delete faculty query", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewStorageError("delete faculty", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// List returns one page of matching records and the total number of matches
func (r *PostgresFacultyRepository) List(ctx context.Context, filter FacultyFilter) ([]*models.Faculty, int64, error) {
	total, err := r.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*models.Faculty{}, 0, nil
	}

	query, args, err := r.listQuery(filter).ToSql()
	if err != nil {
		return nil, 0, apperrors.NewStorageError("build list faculty query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.NewStorageError("list faculty", err)
	}
	defer rows.Close()

	list := []*models.Faculty{}
	for rows.Next() {
		f, err := scanFaculty(rows, false)
		if err != nil {
			return nil, 0, apperrors.NewStorageError("scan faculty row", err)
		}
		list = append(list, f)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewStorageError("iterate faculty rows", err)
	}

	return list, total, nil
}

// Count returns the number of matching records
func (r *PostgresFacultyRepository) Count(ctx context.Context, filter FacultyFilter) (int64, error) {
	query, args, err := r.sb.Select("COUNT(*)").
		From("faculty").
		Where(filterCondition(filter)).
		ToSql()
	if err != nil {
		return 0, apperrors.NewStorageError("build count faculty query", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, apperrors.NewStorageError("count faculty", err)
	}
	return total, nil
}

// CountBy groups matching records by field, ordered by key
func (r *PostgresFacultyRepository) CountBy(ctx context.Context, field GroupField, filter FacultyFilter) ([]models.GroupCount, error) {
	query, args, err := r.countByQuery(field, filter)
	if err != nil {
		return nil, apperrors.NewStorageError("build group faculty query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStorageError("group faculty", err)
	}
	defer rows.Close()

	groups := []models.GroupCount{}
	for rows.Next() {
		var g models.GroupCount
		if err := rows.Scan(&g.Key, &g.Count); err != nil {
			return nil, apperrors.NewStorageError("scan group row", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("iterate group rows", err)
	}
	return groups, nil
}

// SetEligibility updates only the cached eligibility flag
func (r *PostgresFacultyRepository) SetEligibility(ctx context.Context, id string, eligible bool) error {
	query, args, err := r.sb.Update("faculty").
		Set("is_eligible", eligible).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return apperrors.NewStorageError("build set eligibility query", err)
	}

	cmdTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewStorageError("set eligibility", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

func (r *PostgresFacultyRepository) listQuery(filter FacultyFilter) squirrel.SelectBuilder {
	q := r.sb.Select(listColumns...).
		From("faculty").
		Where(filterCondition(filter)).
		OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit)).Offset(filter.Offset)
	} else if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	return q
}

func (r *PostgresFacultyRepository) countByQuery(field GroupField, filter FacultyFilter) (string, []interface{}, error) {
	if !field.IsValid() {
		return "", nil, fmt.Errorf("unsupported group field %q", field)
	}
	column := string(field)
	return r.sb.Select(column, "COUNT(*)").
		From("faculty").
		Where(filterCondition(filter)).
		GroupBy(column).
		OrderBy(column + " ASC").
		ToSql()
}

// filterCondition turns a filter into a WHERE clause; an empty filter matches every row
func filterCondition(filter FacultyFilter) squirrel.And {
	where := squirrel.And{}
	if filter.Department != "" {
		where = append(where, squirrel.Eq{"department": filter.Department})
	}
	if filter.Designation != "" {
		where = append(where, squirrel.Eq{"designation": filter.Designation})
	}
	if filter.Status != "" {
		where = append(where, squirrel.Eq{"status": filter.Status})
	}
	if filter.Ratified != nil {
		where = append(where, squirrel.Eq{"is_ratified": *filter.Ratified})
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"employee_id": pattern},
			squirrel.ILike{"email": pattern},
		})
	}
	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func facultyValues(f *models.Faculty, withID bool) map[string]interface{} {
	values := map[string]interface{}{
		"first_name":               f.Name.FirstName,
		"last_name":                f.Name.LastName,
		"email":                    f.Email,
		"employee_id":              f.EmployeeID,
		"department":               string(f.Department),
		"designation":              string(f.Designation),
		"date_of_joining":          f.DateOfJoining,
		"qualifications":           f.Qualifications,
		"experience_teaching":      f.Experience.Teaching,
		"experience_industry":      f.Experience.Industry,
		"experience_research":      f.Experience.Research,
		"publications_journals":    f.Publications.Journals,
		"publications_conferences": f.Publications.Conferences,
		"publications_books":       f.Publications.Books,
		"phone":                    f.Phone,
		"address":                  f.Address,
		"is_ratified":              f.RatificationStatus.IsRatified,
		"ratification_date":        f.RatificationStatus.RatificationDate,
		"ratified_by":              helpers.GetContentNullString(f.RatificationStatus.RatifiedBy),
		"ratification_comments":    helpers.GetContentNullString(f.RatificationStatus.Comments),
		"is_eligible":              f.RatificationStatus.IsEligible,
		"status":                   string(f.Status),
		"documents":                f.Documents,
		"updated_at":               f.UpdatedAt,
	}
	if withID {
		values["id"] = f.ID
		values["created_at"] = f.CreatedAt
	}
	return values
}

// scanFaculty reads a row selected with facultyColumns (or listColumns when withDocuments is false)
func scanFaculty(row pgx.Row, withDocuments bool) (*models.Faculty, error) {
	var f models.Faculty
	var department, designation, status string
	var ratifiedBy, ratificationComments sql.NullString

	dest := []interface{}{
		&f.ID, &f.Name.FirstName, &f.Name.LastName, &f.Email, &f.EmployeeID, &department, &designation,
		&f.DateOfJoining, &f.Qualifications,
		&f.Experience.Teaching, &f.Experience.Industry, &f.Experience.Research,
		&f.Publications.Journals, &f.Publications.Conferences, &f.Publications.Books,
		&f.Phone, &f.Address,
		&f.RatificationStatus.IsRatified, &f.RatificationStatus.RatificationDate,
		&ratifiedBy, &ratificationComments, &f.RatificationStatus.IsEligible,
		&status, &f.CreatedAt, &f.UpdatedAt,
	}
	if withDocuments {
		dest = append(dest, &f.Documents)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	f.Department = models.Department(department)
	f.Designation = models.Designation(designation)
	f.Status = models.Status(status)
	f.RatificationStatus.RatifiedBy = ratifiedBy.String
	f.RatificationStatus.Comments = ratificationComments.String
	if f.Qualifications == nil {
		f.Qualifications = []string{}
	}
	if withDocuments && f.Documents == nil {
		f.Documents = []models.Document{}
	}
	return &f, nil
}

// conflictFromPg maps a unique violation to a ConflictError, or returns nil
func conflictFromPg(err error, f *models.Faculty) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, facultyEmailConstraint):
		return apperrors.NewConflictError("email", f.Email)
	case dberrors.IsDuplicateConstraintError(err, facultyEmployeeIDConstraint):
		return apperrors.NewConflictError("employeeId", f.EmployeeID)
	}
	if _, ok := dberrors.UniqueViolationConstraint(err); ok {
		return apperrors.NewConflictError("id", f.ID)
	}
	return nil
}
