package datauri

import (
	"errors"
	"fmt"
)

// ErrPackaging is the category of every failure in this package.
var ErrPackaging = errors.New("packaging failed")

var (
	ErrPrefixMismatch = fmt.Errorf("%w: not a png data uri", ErrPackaging)
	ErrMalformed      = fmt.Errorf("%w: malformed base64 payload", ErrPackaging)
	ErrNotPNG         = fmt.Errorf("%w: payload is not a png", ErrPackaging)
	ErrNoStorage      = fmt.Errorf("%w: storage is nil", ErrPackaging)
)
