package filestorage

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

// ErrUnsupportedType is returned when an upload's sniffed content type is not allowed
var ErrUnsupportedType = errors.New("unsupported file type")

// Allowed upload types for course media
var (
	ImageTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}
	VideoTypes = []string{"video/mp4", "video/webm", "video/quicktime"}
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFile stores the upload under subPath and returns its public URL
	SaveFile(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a file previously returned by SaveFile. Unknown files are ignored.
	DeleteFile(fileURL string) error
}

// DetectContentType sniffs the upload's content and checks it against allowed.
// The declared Content-Type header is not trusted.
func DetectContentType(fileHeader *multipart.FileHeader, allowed []string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to detect file type: %w", err)
	}

	if !mimetype.EqualsAny(mtype.String(), allowed...) {
		return mtype.String(), fmt.Errorf("%w: %s", ErrUnsupportedType, mtype.String())
	}
	return mtype.String(), nil
}
