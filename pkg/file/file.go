package file

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
)

// File represents stored file metadata.
type File struct {
	Filename     string
	Size         int64
	MIMEType     string
	Extension    string
	AbsolutePath string
	RelativePath string
}

// Storage interface for different backends.
type Storage interface {
	// Put writes data to path, replacing any existing file, and returns metadata.
	Put(ctx context.Context, path string, data []byte) (*File, error)
	// Get reads the whole file at path.
	Get(ctx context.Context, path string) ([]byte, error)
	// Delete removes a single file.
	Delete(ctx context.Context, path string) error
	// Exists checks if a file exists.
	Exists(ctx context.Context, path string) bool
	// URL returns the public URL for a file.
	URL(path string) string
}

// DetectMIMEType identifies data by its magic bytes.
// Uses http.DetectContentType, which looks at no more than the first 512 bytes.
func DetectMIMEType(data []byte) string {
	return http.DetectContentType(data)
}

// SanitizeFilename removes any path components and dangerous characters from a filename
// to prevent path traversal attacks and other security issues.
// Returns "unnamed" for empty or special directory references.
//
// Example:
//
//	safe := file.SanitizeFilename("../../../etc/passwd") // Returns "passwd"
//	safe = file.SanitizeFilename("C:\\Windows\\file.txt") // Returns "file.txt"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}

// describe builds the metadata common to every backend.
func describe(path string, data []byte) *File {
	name := SanitizeFilename(path)
	return &File{
		Filename:     name,
		Size:         int64(len(data)),
		MIMEType:     DetectMIMEType(data),
		Extension:    filepath.Ext(name),
		RelativePath: path,
	}
}
