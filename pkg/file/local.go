package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// writeChunk is the write size between context checks.
const writeChunk = 32 * 1024

// LocalStorage implements Storage interface for local filesystem.
// All operations are confined to baseDir to prevent path traversal attacks.
// Safe for concurrent use with proper file locking by the OS.
type LocalStorage struct {
	baseDir      string        // Absolute path - all files stored within this directory
	baseURL      string        // URL prefix for serving files (e.g., "/files/")
	writeTimeout time.Duration // Optional timeout for Put
}

// LocalOption defines a function that configures LocalStorage.
type LocalOption func(*LocalStorage)

// WithLocalWriteTimeout sets the timeout for write operations.
// If not set, relies on context deadline from caller.
func WithLocalWriteTimeout(timeout time.Duration) LocalOption {
	return func(s *LocalStorage) {
		s.writeTimeout = timeout
	}
}

// NewLocalStorage creates a new local filesystem storage.
// baseDir is resolved to absolute path and created if it doesn't exist.
// baseURL is used for generating public URLs (e.g., "/files/").
func NewLocalStorage(baseDir, baseURL string, opts ...LocalOption) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	// Must resolve to absolute path for security - prevents relative path confusion
	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve base directory: %v", ErrFailedToGetAbsolutePath, err)
	}

	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	s := &LocalStorage{
		baseDir: absBaseDir,
		baseURL: baseURL,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Put writes data to path below the base directory, creating parent
// directories as needed. The file handle is closed on every exit path and a
// partially written file is removed.
func (s *LocalStorage) Put(ctx context.Context, path string, data []byte) (f *File, err error) {
	if s.writeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.writeTimeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}
	if absPath == s.baseDir {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	// Create with restrictive permissions (644 = rw-r--r--)
	dst, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateFile, err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrFailedToWriteFile, cerr)
		}
		if err != nil {
			_ = os.Remove(absPath) // Clean up partial file
			f = nil
		}
	}()

	for off := 0; off < len(data); off += writeChunk {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(off+writeChunk, len(data))
		if _, err := dst.Write(data[off:end]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
		}
	}

	f = describe(s.relPath(absPath, path), data)
	f.AbsolutePath = absPath
	return f, nil
}

// Get reads the file at path.
func (s *LocalStorage) Get(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		case isDir(absPath):
			return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	return data, nil
}

// Delete removes a single file.
// Verifies the target is a file, not a directory, to prevent accidental data loss.
func (s *LocalStorage) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("%w: %v", ErrFailedToStatPath, err)
	}

	// Safety check - prevent accidental directory deletion
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	if err := os.Remove(absPath); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToDeleteFile, err)
	}

	return nil
}

// Exists checks if a regular file exists.
// Returns false for invalid paths or on context cancellation.
func (s *LocalStorage) Exists(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return false
	}

	info, err := os.Stat(absPath)
	return err == nil && !info.IsDir()
}

// URL returns the public URL for a file.
func (s *LocalStorage) URL(path string) string {
	path = filepath.ToSlash(filepath.Clean(path))

	if strings.HasPrefix(path, "/") {
		return path
	}

	return s.baseURL + path
}

// resolvePath validates and resolves a path within the base directory.
// Ensures all resolved paths stay within baseDir bounds.
func (s *LocalStorage) resolvePath(path string) (string, error) {
	if path == "" || strings.ContainsRune(path, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	absPath, err := filepath.Abs(filepath.Join(s.baseDir, filepath.Clean(path)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGetAbsolutePath, err)
	}

	// Security check: ensure path stays within baseDir (prevents ../ attacks)
	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) && absPath != s.baseDir {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	return absPath, nil
}

func (s *LocalStorage) relPath(absPath, fallback string) string {
	rel, err := filepath.Rel(s.baseDir, absPath)
	if err != nil {
		return fallback
	}
	return filepath.ToSlash(rel)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
