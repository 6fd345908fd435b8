// Package storage abstracts where uploaded files land. The application only
// depends on ObjectStore; swapping the disk implementation for a bucket store
// is a wiring change.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"bookery/internal/models"
)

const maxUploadBytes = 5 * 1024 * 1024

// ObjectStore persists an uploaded blob and returns a URL it can be served
// from.
type ObjectStore interface {
	Store(ctx context.Context, content []byte, contentType string) (string, error)
}

// DiskStore writes uploads under a local directory, served at /media.
type DiskStore struct {
	dir string
}

// NewDiskStore returns a DiskStore rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Store validates and writes the blob under a random name.
func (s *DiskStore) Store(_ context.Context, content []byte, contentType string) (string, error) {
	if len(content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if len(content) > maxUploadBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", maxUploadBytes/(1024*1024)))
	}

	ext := extensionFor(contentType)
	if ext == "" {
		return "", models.NewValidationError("Unsupported file type")
	}
	// Trust the bytes, not the declared content type.
	if extensionFor(http.DetectContentType(content)) != ext {
		return "", models.NewValidationError("File content does not match its type")
	}

	name := uuid.NewString() + ext
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), content, 0o600); err != nil {
		return "", models.NewInternalError(err)
	}
	return "/media/" + name, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
