// Package file stores rendered artifacts on the local filesystem or in S3.
//
// The Storage interface is byte oriented: Put writes a whole payload, Get
// reads it back. Two implementations are provided:
//   - LocalStorage: confined to a base directory, rejects path traversal
//   - S3Storage: AWS S3 and S3-compatible services (MinIO, Wasabi, etc.)
//
// # Usage
//
//	storage, err := file.NewLocalStorage("/var/lib/paycode", "/codes/")
//	if err != nil {
//		return err
//	}
//
//	info, err := storage.Put(ctx, "qr/invoice-42.png", pngBytes)
//	if err != nil {
//		return err
//	}
//	url := storage.URL(info.RelativePath)
//
// Using S3 storage:
//
//	storage, err := file.NewS3Storage(ctx, file.S3Config{
//		Bucket:      "my-bucket",
//		Region:      "eu-central-1",
//		AccessKeyID: "key",
//		SecretKey:   "secret",
//		KeyPrefix:   "codes",
//	})
//
// S3Config carries env tags, so it can be embedded in a config struct
// under a prefix such as PAYCODE_S3_.
//
// # Local writes
//
// LocalStorage.Put opens the destination once, writes in chunks while
// honouring context cancellation, and always closes the handle. A close
// error is reported like a write error, and the partial file is removed
// whenever Put fails.
//
// # Error Handling
//
//	_, err := storage.Get(ctx, "missing.png")
//	if errors.Is(err, file.ErrFileNotFound) {
//		// nothing stored under that path
//	} else if errors.Is(err, file.ErrInvalidPath) {
//		// path escapes the storage root
//	}
//
// S3-specific errors are mapped to the same sentinels:
//   - NoSuchKey, NotFound -> ErrFileNotFound
//   - NoSuchBucket -> ErrBucketNotFound
//   - AccessDenied -> ErrAccessDenied
//   - SlowDown, ServiceUnavailable -> ErrServiceUnavailable
package file
