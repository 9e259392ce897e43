package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all the repository instances
type Repositories struct {
	FacultyStore FacultyStore
}

// NewPostgresRepositories initializes the PostgreSQL backed repositories
func NewPostgresRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		FacultyStore: NewPostgresFacultyRepository(db),
	}
}

// NewMongoRepositories initializes the MongoDB backed repositories
func NewMongoRepositories(db *mongo.Database) *Repositories {
	return &Repositories{
		FacultyStore: NewMongoFacultyRepository(db),
	}
}

// NewMemoryRepositories initializes in-process repositories
func NewMemoryRepositories() (*Repositories, error) {
	store, err := NewMemoryFacultyRepository()
	if err != nil {
		return nil, err
	}
	return &Repositories{FacultyStore: store}, nil
}

// IndexEnsurer is implemented by stores that create their own indexes
type IndexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

// EnsureIndexes creates the indexes of every store that manages its own
func (r *Repositories) EnsureIndexes(ctx context.Context) error {
	if ie, ok := r.FacultyStore.(IndexEnsurer); ok {
		return ie.EnsureIndexes(ctx)
	}
	return nil
}
