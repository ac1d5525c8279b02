package paycode

import "errors"

var (
	// ErrInvalidConfig is returned by New and LoadConfig for unusable settings.
	ErrInvalidConfig = errors.New("invalid paycode configuration")
	// ErrNoStorage is returned by Save when the generator has no storage.
	ErrNoStorage = errors.New("no storage configured")
)
