package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/coursecraft/internal/pkg/logger"
)

// LocalStorage handles saving files to the local filesystem.
type LocalStorage struct {
	basePath string // root directory on disk
	baseURL  string // URL prefix the directory is served under
}

// NewLocalStorage creates the base directory when needed.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveFile copies the upload to basePath/subPath under a random name
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error) {
	subPath, err := cleanSubPath(subPath)
	if err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(ls.basePath, filepath.FromSlash(subPath))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create subdirectory: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	url := ls.baseURL + "/" + path.Join(subPath, name)
	logger.Info().Str("filename", fileHeader.Filename).Str("url", url).Msg("File saved")
	return url, nil
}

// DeleteFile removes the file behind a URL produced by SaveFile
func (ls *LocalStorage) DeleteFile(fileURL string) error {
	rel, ok := ls.relativePath(fileURL)
	if !ok {
		return nil
	}

	physicalPath := filepath.Join(ls.basePath, filepath.FromSlash(rel))
	if err := os.Remove(physicalPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.Info().Str("path", physicalPath).Msg("File deleted")
	return nil
}

// relativePath maps a URL back to a path under basePath. URLs from other
// hosts and paths escaping basePath are rejected.
func (ls *LocalStorage) relativePath(fileURL string) (string, bool) {
	if fileURL == "" || !strings.HasPrefix(fileURL, ls.baseURL+"/") {
		return "", false
	}
	rel, err := cleanSubPath(strings.TrimPrefix(fileURL, ls.baseURL+"/"))
	if err != nil || rel == "" {
		return "", false
	}
	return rel, true
}

func cleanSubPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	p = strings.ReplaceAll(p, "\\", "/")
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return "", fmt.Errorf("invalid path: %s", p)
		}
	}
	return strings.TrimPrefix(path.Clean("/"+p), "/"), nil
}
