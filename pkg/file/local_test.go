package file_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paycode/pkg/file"
)

func newLocal(t *testing.T, opts ...file.LocalOption) (*file.LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	storage, err := file.NewLocalStorage(dir, "/codes", opts...)
	require.NoError(t, err)
	return storage, dir
}

func TestNewLocalStorage(t *testing.T) {
	t.Parallel()

	t.Run("creates missing base directory", func(t *testing.T) {
		t.Parallel()
		dir := filepath.Join(t.TempDir(), "nested", "store")

		storage, err := file.NewLocalStorage(dir, "")
		require.NoError(t, err)
		require.NotNil(t, storage)
		assert.DirExists(t, dir)
	})

	t.Run("empty base directory", func(t *testing.T) {
		t.Parallel()

		storage, err := file.NewLocalStorage("", "/codes")
		assert.ErrorIs(t, err, file.ErrInvalidConfig)
		assert.Nil(t, storage)
	})
}

func TestLocalStorage_Put(t *testing.T) {
	t.Parallel()

	t.Run("writes file and metadata", func(t *testing.T) {
		t.Parallel()
		storage, dir := newLocal(t)

		info, err := storage.Put(context.Background(), "qr/2024/code.png", pngBytes)
		require.NoError(t, err)

		assert.Equal(t, "code.png", info.Filename)
		assert.Equal(t, int64(len(pngBytes)), info.Size)
		assert.Equal(t, "image/png", info.MIMEType)
		assert.Equal(t, ".png", info.Extension)
		assert.Equal(t, "qr/2024/code.png", info.RelativePath)
		assert.Equal(t, filepath.Join(dir, "qr", "2024", "code.png"), info.AbsolutePath)

		written, err := os.ReadFile(info.AbsolutePath)
		require.NoError(t, err)
		assert.Equal(t, pngBytes, written)
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()
		storage, _ := newLocal(t)
		ctx := context.Background()

		_, err := storage.Put(ctx, "code.png", []byte(strings.Repeat("x", 100)))
		require.NoError(t, err)
		_, err = storage.Put(ctx, "code.png", pngBytes)
		require.NoError(t, err)

		data, err := storage.Get(ctx, "code.png")
		require.NoError(t, err)
		assert.Equal(t, pngBytes, data)
	})

	t.Run("writes large payload in chunks", func(t *testing.T) {
		t.Parallel()
		storage, _ := newLocal(t)
		payload := []byte(strings.Repeat("0123456789", 10_000))

		info, err := storage.Put(context.Background(), "big.bin", payload)
		require.NoError(t, err)
		assert.Equal(t, int64(len(payload)), info.Size)

		data, err := storage.Get(context.Background(), "big.bin")
		require.NoError(t, err)
		assert.Equal(t, payload, data)
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		t.Parallel()
		storage, dir := newLocal(t)

		info, err := storage.Put(context.Background(), "../escape.png", pngBytes)
		assert.ErrorIs(t, err, file.ErrInvalidPath)
		assert.Nil(t, info)
		assert.NoFileExists(t, filepath.Join(filepath.Dir(dir), "escape.png"))
	})

	t.Run("rejects empty path", func(t *testing.T) {
		t.Parallel()
		storage, _ := newLocal(t)

		_, err := storage.Put(context.Background(), "", pngBytes)
		assert.ErrorIs(t, err, file.ErrInvalidPath)
	})

	t.Run("rejects base directory itself", func(t *testing.T) {
		t.Parallel()
		storage, _ := newLocal(t)

		_, err := storage.Put(context.Background(), ".", pngBytes)
		assert.ErrorIs(t, err, file.ErrIsDirectory)
	})

	t.Run("canceled context leaves nothing behind", func(t *testing.T) {
		t.Parallel()
		storage, dir := newLocal(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		info, err := storage.Put(ctx, "code.png", pngBytes)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, info)
		assert.NoFileExists(t, filepath.Join(dir, "code.png"))
	})

	t.Run("expired write timeout leaves nothing behind", func(t *testing.T) {
		t.Parallel()
		storage, dir := newLocal(t, file.WithLocalWriteTimeout(time.Nanosecond))

		_, err := storage.Put(context.Background(), "code.png", []byte(strings.Repeat("x", 1<<20)))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.NoFileExists(t, filepath.Join(dir, "code.png"))
	})

	t.Run("target is a directory", func(t *testing.T) {
		t.Parallel()
		storage, dir := newLocal(t)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "taken"), 0755))

		_, err := storage.Put(context.Background(), "taken", pngBytes)
		assert.ErrorIs(t, err, file.ErrFailedToCreateFile)
		assert.DirExists(t, filepath.Join(dir, "taken"))
	})
}

func TestLocalStorage_Get(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		storage, _ := newLocal(t)

		data, err := storage.Get(context.Background(), "missing.png")
		assert.ErrorIs(t, err, file.ErrFileNotFound)
		assert.Nil(t, data)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()
		storage, dir := newLocal(t)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "qr"), 0755))

		_, err := storage.Get(context.Background(), "qr")
		assert.ErrorIs(t, err, file.ErrIsDirectory)
	})

	t.Run("path traversal", func(t *testing.T) {
		t.Parallel()
		storage, _ := newLocal(t)

		_, err := storage.Get(context.Background(), "../../etc/passwd")
		assert.ErrorIs(t, err, file.ErrInvalidPath)
	})
}

func TestLocalStorage_Delete(t *testing.T) {
	t.Parallel()

	t.Run("removes file", func(t *testing.T) {
		t.Parallel()
		storage, _ := newLocal(t)
		ctx := context.Background()

		_, err := storage.Put(ctx, "code.png", pngBytes)
		require.NoError(t, err)
		require.True(t, storage.Exists(ctx, "code.png"))

		require.NoError(t, storage.Delete(ctx, "code.png"))
		assert.False(t, storage.Exists(ctx, "code.png"))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		storage, _ := newLocal(t)

		err := storage.Delete(context.Background(), "missing.png")
		assert.ErrorIs(t, err, file.ErrFileNotFound)
	})

	t.Run("refuses directories", func(t *testing.T) {
		t.Parallel()
		storage, dir := newLocal(t)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "qr"), 0755))

		err := storage.Delete(context.Background(), "qr")
		assert.ErrorIs(t, err, file.ErrIsDirectory)
		assert.DirExists(t, filepath.Join(dir, "qr"))
	})
}

func TestLocalStorage_Exists(t *testing.T) {
	t.Parallel()
	storage, dir := newLocal(t)
	ctx := context.Background()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "qr"), 0755))
	_, err := storage.Put(ctx, "qr/code.png", pngBytes)
	require.NoError(t, err)

	assert.True(t, storage.Exists(ctx, "qr/code.png"))
	assert.False(t, storage.Exists(ctx, "qr"))
	assert.False(t, storage.Exists(ctx, "qr/other.png"))
	assert.False(t, storage.Exists(ctx, "../outside"))

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.False(t, storage.Exists(canceled, "qr/code.png"))
}

func TestLocalStorage_URL(t *testing.T) {
	t.Parallel()
	storage, _ := newLocal(t)

	assert.Equal(t, "/codes/qr/code.png", storage.URL("qr/code.png"))
	assert.Equal(t, "/codes/code.png", storage.URL("qr/../code.png"))
	assert.Equal(t, "/absolute/code.png", storage.URL("/absolute/code.png"))
}
