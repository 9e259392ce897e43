package repositories

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
)

const (
	facultyCollection   = "faculty"
	emailUniqueIndex    = "email_unique"
	employeeUniqueIndex = "employee_id_unique"
)

// MongoFacultyRepository stores faculty records as documents keyed by their UUID
type MongoFacultyRepository struct {
	coll *mongo.Collection
}

// NewMongoFacultyRepository creates a repository over the faculty collection
func NewMongoFacultyRepository(db *mongo.Database) *MongoFacultyRepository {
	return &MongoFacultyRepository{coll: db.Collection(facultyCollection)}
}

// EnsureIndexes creates the unique and sort indexes the repository relies on
func (r *MongoFacultyRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName(emailUniqueIndex).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "employeeId", Value: 1}},
			Options: options.Index().SetName(employeeUniqueIndex).SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "department", Value: 1}, {Key: "designation", Value: 1}},
			Options: options.Index().SetName("status_department_designation"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	})
	if err != nil {
		return apperrors.NewStorageError("create faculty indexes", err)
	}
	return nil
}

// Create inserts a new faculty document
func (r *MongoFacultyRepository) Create(ctx context.Context, f *models.Faculty) error {
	if _, err := r.coll.InsertOne(ctx, f); err != nil {
		if cErr := conflictFromMongo(err, f); cErr != nil {
			return cErr
		}
		return apperrors.NewStorageError("create faculty", err)
	}
	return nil
}

// GetByID retrieves a faculty document by ID
func (r *MongoFacultyRepository) GetByID(ctx context.Context, id string) (*models.Faculty, error) {
	var f models.Faculty
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrFacultyNotFound
		}
		return nil, apperrors.NewStorageError("get faculty", err)
	}
	fillDefaults(&f)
	return &f, nil
}

// Update replaces an existing document
func (r *MongoFacultyRepository) Update(ctx context.Context, f *models.Faculty) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	if err != nil {
		if cErr := conflictFromMongo(err, f); cErr != nil {
			return cErr
		}
		return apperrors.NewStorageError("update faculty", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// Delete removes a document
func (r *MongoFacultyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.NewStorageError("delete faculty", err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// List returns one page of matching documents and the total number of matches
func (r *MongoFacultyRepository) List(ctx context.Context, filter FacultyFilter) ([]*models.Faculty, int64, error) {
	query := mongoFilter(filter)

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, apperrors.NewStorageError("count faculty", err)
	}
	if total == 0 {
		return []*models.Faculty{}, 0, nil
	}

	cur, err := r.coll.Find(ctx, query, mongoFindOptions(filter))
	if err != nil {
		return nil, 0, apperrors.NewStorageError("list faculty", err)
	}
	defer cur.Close(ctx)

	list := []*models.Faculty{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, 0, apperrors.NewStorageError("decode faculty", err)
	}
	for _, f := range list {
		fillDefaults(f)
		f.Documents = nil
	}
	return list, total, nil
}

// Count returns the number of matching documents
func (r *MongoFacultyRepository) Count(ctx context.Context, filter FacultyFilter) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, mongoFilter(filter))
	if err != nil {
		return 0, apperrors.NewStorageError("count faculty", err)
	}
	return total, nil
}

// CountBy groups matching documents by field, ordered by key
func (r *MongoFacultyRepository) CountBy(ctx context.Context, field GroupField, filter FacultyFilter) ([]models.GroupCount, error) {
	pipeline, err := groupPipeline(field, filter)
	if err != nil {
		return nil, apperrors.NewStorageError("build faculty aggregation", err)
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, apperrors.NewStorageError("aggregate faculty", err)
	}
	defer cur.Close(ctx)

	groups := []models.GroupCount{}
	if err := cur.All(ctx, &groups); err != nil {
		return nil, apperrors.NewStorageError("decode faculty aggregation", err)
	}
	return groups, nil
}

// SetEligibility updates only the cached eligibility flag
func (r *MongoFacultyRepository) SetEligibility(ctx context.Context, id string, eligible bool) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"ratificationStatus.isEligible": eligible}},
	)
	if err != nil {
		return apperrors.NewStorageError("set eligibility", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// mongoFilter turns a filter into a query document; an empty filter matches everything
func mongoFilter(filter FacultyFilter) bson.M {
	query := bson.M{}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	if filter.Designation != "" {
		query["designation"] = filter.Designation
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Ratified != nil {
		query["ratificationStatus.isRatified"] = *filter.Ratified
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := regexp.QuoteMeta(s)
		or := bson.A{}
		for _, field := range []string{"name.firstName", "name.lastName", "employeeId", "email"} {
			or = append(or, bson.M{field: bson.M{"$regex": pattern, "$options": "i"}})
		}
		query["$or"] = or
	}
	return query
}

func mongoFindOptions(filter FacultyFilter) *options.FindOptions {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetProjection(bson.M{"documents": 0})
	if filter.Offset > 0 {
		opts.SetSkip(int64(filter.Offset))
	}
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	return opts
}

func groupPipeline(field GroupField, filter FacultyFilter) (mongo.Pipeline, error) {
	if !field.IsValid() {
		return nil, fmt.Errorf("unsupported group field %q", field)
	}
	return mongo.Pipeline{
		{{Key: "$match", Value: mongoFilter(filter)}},
		{{Key: "$group", Value: bson.M{"_id": "$" + string(field), "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}, nil
}

// conflictFromMongo maps a duplicate key error to a ConflictError, or returns nil
func conflictFromMongo(err error, f *models.Faculty) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, emailUniqueIndex):
		return apperrors.NewConflictError("email", f.Email)
	case strings.Contains(msg, employeeUniqueIndex):
		return apperrors.NewConflictError("employeeId", f.EmployeeID)
	default:
		return apperrors.NewConflictError("id", f.ID)
	}
}

// fillDefaults replaces nil slices left by absent fields
func fillDefaults(f *models.Faculty) {
	if f.Qualifications == nil {
		f.Qualifications = []string{}
	}
	if f.Documents == nil {
		f.Documents = []models.Document{}
	}
}
