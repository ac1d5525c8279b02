package datauri

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/dmitrymomot/paycode/pkg/file"
)

// Prefix starts every data URI produced by this package.
const Prefix = "data:image/png;base64,"

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

// IsPNG reports whether data starts with the PNG file signature.
func IsPNG(data []byte) bool {
	return bytes.HasPrefix(data, pngSignature)
}

// Encode wraps PNG bytes into a data URI.
func Encode(pngData []byte) (string, error) {
	if !IsPNG(pngData) {
		return "", ErrNotPNG
	}
	return Prefix + base64.StdEncoding.EncodeToString(pngData), nil
}

// EncodeImage PNG-encodes img and wraps it into a data URI.
func EncodeImage(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return Encode(data)
}

// EncodePNG returns img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrPackaging)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Join(ErrPackaging, err)
	}
	return buf.Bytes(), nil
}

// Decode returns the exact PNG bytes carried by uri.
func Decode(uri string) ([]byte, error) {
	payload, ok := strings.CutPrefix(uri, Prefix)
	if !ok {
		return nil, ErrPrefixMismatch
	}
	data, err := base64.StdEncoding.Strict().DecodeString(payload)
	if err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	if !IsPNG(data) {
		return nil, ErrNotPNG
	}
	return data, nil
}

// Save decodes uri and writes the PNG bytes to path in storage.
func Save(ctx context.Context, storage file.Storage, uri, path string) (*file.File, error) {
	if storage == nil {
		return nil, ErrNoStorage
	}
	data, err := Decode(uri)
	if err != nil {
		return nil, err
	}
	f, err := storage.Put(ctx, path, data)
	if err != nil {
		return nil, errors.Join(ErrPackaging, err)
	}
	return f, nil
}
