package filestorage

import (
	"context"
	"io"
)

// FileStorage stores uploaded files and maps them to public paths
type FileStorage interface {
	// Save writes content under subPath and returns the public path of the stored file
	Save(ctx context.Context, filename string, content io.Reader, subPath string) (string, error)

	// Delete removes the file behind a public path returned by Save.
	// A file that is already gone is not an error.
	Delete(ctx context.Context, publicPath string) error
}
