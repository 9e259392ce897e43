package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/facultyhub/internal/pkg/logger"
)

// ErrInvalidPath is returned for paths that do not point inside the storage root
var ErrInvalidPath = errors.New("invalid file path")

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath  string // directory the files are written to
	urlPrefix string // public path the directory is served under, e.g. /uploads
	log       zerolog.Logger
}

// NewLocalStorage creates the base directory if needed
func NewLocalStorage(basePath, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	ls := &LocalStorage{
		basePath:  basePath,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
		log:       logger.Component("filestorage"),
	}
	ls.log.Info().Str("path", basePath).Msg("Local storage directory ensured")
	return ls, nil
}

// BasePath returns the directory files are written to
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// URLPrefix returns the public path prefix of stored files
func (ls *LocalStorage) URLPrefix() string {
	return ls.urlPrefix
}

// Save stores content under a generated name that keeps the original extension
func (ls *LocalStorage) Save(ctx context.Context, filename string, content io.Reader, subPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	subPath = path.Clean("/" + filepath.ToSlash(subPath))[1:]
	dir := filepath.Join(ls.basePath, filepath.FromSlash(subPath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	storedName := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	dstPath := filepath.Join(dir, storedName)

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	publicPath := path.Join(ls.urlPrefix, subPath, storedName)
	ls.log.Info().Str("filename", filename).Str("path", publicPath).Msg("File saved successfully")
	return publicPath, nil
}

// Delete removes the file behind publicPath
func (ls *LocalStorage) Delete(ctx context.Context, publicPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	physicalPath, err := ls.physicalPath(publicPath)
	if err != nil {
		return err
	}

	if err := os.Remove(physicalPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			ls.log.Warn().Str("path", physicalPath).Msg("File to delete does not exist")
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	ls.log.Info().Str("path", physicalPath).Msg("File deleted successfully")
	return nil
}

// physicalPath maps a public path back into basePath, rejecting anything outside it
func (ls *LocalStorage) physicalPath(publicPath string) (string, error) {
	cleaned := path.Clean("/" + publicPath)
	rel, ok := strings.CutPrefix(cleaned, ls.urlPrefix+"/")
	if !ok || rel == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, publicPath)
	}
	return filepath.Join(ls.basePath, filepath.FromSlash(rel)), nil
}
