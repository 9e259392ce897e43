package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/yigit/facultyhub/internal/app/models"
	"github.com/yigit/facultyhub/internal/app/repositories"
	"github.com/yigit/facultyhub/internal/pkg/apperrors"
	"github.com/yigit/facultyhub/internal/pkg/filestorage"
)

// maxDocumentNameLength bounds the stored display name of a document
const maxDocumentNameLength = 255

// documentRoot is the storage sub directory holding per-record folders
const documentRoot = "faculty"

// documentDir is the storage sub path of one record's uploads
func documentDir(id string) string {
	return path.Join(documentRoot, id)
}

// ownsStoredFile reports whether p points into the upload folder of record id
func ownsStoredFile(p, id string) bool {
	if isExternalReference(p) {
		return false
	}
	dir := path.Dir(path.Clean("/" + p))
	return strings.HasSuffix(dir, "/"+documentDir(id))
}

// isExternalReference reports whether p is an absolute http(s) URL
func isExternalReference(p string) bool {
	u, err := url.Parse(strings.TrimSpace(p))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// displayName strips any client directory, including Windows separators
func displayName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	return strings.TrimSpace(name)
}

// DocumentService manages the files attached to faculty records
type DocumentService interface {
	Attach(ctx context.Context, id, filename string, content io.Reader) (*models.Document, error)
	Remove(ctx context.Context, id, storedName string) error
}

type documentServiceImpl struct {
	store   repositories.FacultyStore
	storage filestorage.FileStorage
	now     func() time.Time
}

// NewDocumentService creates a new document service instance
func NewDocumentService(store repositories.FacultyStore, storage filestorage.FileStorage, opts ...Option) DocumentService {
	o := buildOptions(opts)
	return &documentServiceImpl{
		store:   store,
		storage: storage,
		now:     o.now,
	}
}

// Attach stores the file and appends a reference to the record's documents
func (s *documentServiceImpl) Attach(ctx context.Context, id, filename string, content io.Reader) (*models.Document, error) {
	id, err := parseID(id)
	if err != nil {
		return nil, err
	}

	name := displayName(filename)
	if name == "" || name == "." || name == "/" {
		return nil, apperrors.NewValidationError([]apperrors.FieldViolation{{Field: "file", Message: "must have a file name"}})
	}
	if len(name) > maxDocumentNameLength {
		return nil, apperrors.NewValidationError([]apperrors.FieldViolation{
			{Field: "file", Message: fmt.Sprintf("name must be at most %d characters", maxDocumentNameLength)},
		})
	}

	f, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}

	publicPath, err := s.storage.Save(ctx, name, content, documentDir(id))
	if err != nil {
		return nil, apperrors.NewStorageError("save document", err)
	}

	now := s.now().UTC()
	doc := models.Document{Name: name, Path: publicPath, UploadDate: now}
	f.Documents = append(f.Documents, doc)
	f.UpdatedAt = now

	if err := s.store.Update(ctx, f); err != nil {
		// The record never referenced the file
		_ = s.storage.Delete(context.WithoutCancel(ctx), publicPath)
		return nil, fmt.Errorf("error attaching document: %w", err)
	}
	return &doc, nil
}

// Remove detaches the document whose stored file name is storedName and deletes the file
func (s *documentServiceImpl) Remove(ctx context.Context, id, storedName string) error {
	id, err := parseID(id)
	if err != nil {
		return err
	}

	f, err := s.store.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving faculty: %w", err)
	}

	idx := -1
	for i, d := range f.Documents {
		if path.Base(d.Path) == storedName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrDocumentNotFound
	}

	removed := f.Documents[idx]
	f.Documents = append(f.Documents[:idx], f.Documents[idx+1:]...)
	f.UpdatedAt = s.now().UTC()

	if err := s.store.Update(ctx, f); err != nil {
		return fmt.Errorf("error removing document: %w", err)
	}

	// Only files uploaded to this record are deleted; anything else is just unlinked
	if !ownsStoredFile(removed.Path, id) {
		return nil
	}
	if err := s.storage.Delete(ctx, removed.Path); err != nil && !errors.Is(err, filestorage.ErrInvalidPath) {
		return apperrors.NewStorageError("delete document", err)
	}
	return nil
}
