package loader

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgpinkus/jsonref/referrors"
)

// FileLoader reads documents from the local filesystem. Only file:// URIs
// are accepted; any other scheme fails with a resource-not-found error so
// that documents can never trigger network access through this loader.
type FileLoader struct {
	// RootDir, when non-empty, confines loads to this directory and its
	// subdirectories. Paths escaping it fail with a path traversal error.
	RootDir string
	// MaxFileSize is the maximum document size in bytes (0 means MaxFileSize).
	MaxFileSize int64
}

// NewFileLoader creates a filesystem loader confined to rootDir.
// An empty rootDir disables confinement.
func NewFileLoader(rootDir string) *FileLoader {
	return &FileLoader{RootDir: rootDir}
}

// Load implements Loader.
func (l *FileLoader) Load(u *url.URL) ([]byte, error) {
	if u.Scheme != "file" {
		return nil, &referrors.ResourceNotFoundError{
			URI:     u.String(),
			Message: fmt.Sprintf("scheme %q not supported by file loader", u.Scheme),
		}
	}
	path := filepath.FromSlash(u.Path)

	if l.RootDir != "" {
		if err := l.checkConfined(u, path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &referrors.ResourceNotFoundError{URI: u.String(), Cause: err}
	}
	limit := l.MaxFileSize
	if limit == 0 {
		limit = MaxFileSize
	}
	if int64(len(data)) > limit {
		return nil, &referrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Actual:       int64(len(data)),
			Message:      path,
		}
	}
	return data, nil
}

// checkConfined rejects paths outside RootDir. filepath.Rel properly handles
// all cases including different volumes on Windows (it returns an error when
// paths are on different drives).
func (l *FileLoader) checkConfined(u *url.URL, path string) error {
	absRoot, err := filepath.Abs(l.RootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve root directory: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve file path: %w", err)
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return &referrors.ResourceNotFoundError{
			URI:             u.String(),
			IsPathTraversal: true,
		}
	}
	return nil
}

// NullLoader refuses every load. It is the safe default when automatic
// fetching of referenced documents is not wanted.
type NullLoader struct{}

// NewNullLoader creates a loader that always fails.
func NewNullLoader() *NullLoader { return &NullLoader{} }

// Load implements Loader.
func (*NullLoader) Load(u *url.URL) ([]byte, error) {
	return nil, &referrors.ResourceNotFoundError{
		URI:     u.String(),
		Message: "document loading is disabled",
	}
}

var (
	_ Loader = (*FileLoader)(nil)
	_ Loader = (*NullLoader)(nil)
)
