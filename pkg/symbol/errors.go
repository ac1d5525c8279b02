package symbol

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by a renderer matches one of them
// with errors.Is.
var (
	// ErrCapacity is returned when a payload does not fit the symbol with the
	// configured parameters.
	ErrCapacity = errors.New("symbol: payload exceeds symbol capacity")

	// ErrRender is returned for every other rendering failure.
	ErrRender = errors.New("symbol: render failed")
)

var (
	// ErrEmptyPayload is returned when there is nothing to encode.
	ErrEmptyPayload = fmt.Errorf("%w: payload is empty", ErrRender)

	// ErrUnsupportedSymbology is returned for an unknown linear symbology name.
	ErrUnsupportedSymbology = fmt.Errorf("%w: unsupported symbology", ErrRender)

	// ErrInvalidContent is returned when the symbology rejects the payload characters.
	ErrInvalidContent = fmt.Errorf("%w: payload not encodable by symbology", ErrRender)

	// ErrInvalidOptions is returned for out-of-range rendering parameters.
	ErrInvalidOptions = fmt.Errorf("%w: invalid options", ErrRender)
)
