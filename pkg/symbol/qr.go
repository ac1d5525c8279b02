package symbol

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// ECLevel is the QR error-correction level.
type ECLevel string

const (
	ECLow      ECLevel = "L" // ~7% recovery
	ECMedium   ECLevel = "M" // ~15% recovery
	ECQuartile ECLevel = "Q" // ~25% recovery
	ECHigh     ECLevel = "H" // ~30% recovery
)

func (l ECLevel) recovery() (qrcode.RecoveryLevel, error) {
	switch l {
	case "", ECMedium:
		return qrcode.Medium, nil
	case ECLow:
		return qrcode.Low, nil
	case ECQuartile:
		return qrcode.High, nil
	case ECHigh:
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("%w: error correction level %q", ErrInvalidOptions, string(l))
	}
}

// QROptions controls QR rendering.
type QROptions struct {
	// Level is the error-correction level, M when empty.
	Level ECLevel `env:"LEVEL"`
	// BoxSize is the pixel size of one module.
	BoxSize int `env:"BOX_SIZE"`
	// Border is the quiet zone width in modules.
	Border int `env:"BORDER"`
	// Version forces a symbol version 1..40. Zero picks the smallest one
	// that holds the payload.
	Version int `env:"VERSION"`
}

// DefaultQROptions returns medium error correction, 10px modules and a
// one-module border.
func DefaultQROptions() QROptions {
	return QROptions{Level: ECMedium, BoxSize: 10, Border: 1}
}

func (o QROptions) validate() error {
	if o.BoxSize <= 0 {
		return fmt.Errorf("%w: box size %d", ErrInvalidOptions, o.BoxSize)
	}
	if o.Border < 0 {
		return fmt.Errorf("%w: border %d", ErrInvalidOptions, o.Border)
	}
	if o.Version < 0 || o.Version > 40 {
		return fmt.Errorf("%w: version %d", ErrInvalidOptions, o.Version)
	}
	return nil
}

// RenderQR encodes payload as a QR code. The payload is stored in byte mode
// unless it is purely numeric or alphanumeric.
//
// A payload larger than the capacity of version 40 (or of the forced
// version) at the chosen level fails with ErrCapacity.
func RenderQR(payload string, opts QROptions) (*Symbol, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	level, err := opts.Level.recovery()
	if err != nil {
		return nil, err
	}
	if opts.Level == "" {
		opts.Level = ECMedium
	}

	var q *qrcode.QRCode
	if opts.Version > 0 {
		q, err = qrcode.NewWithForcedVersion(payload, opts.Version, level)
	} else {
		q, err = qrcode.New(payload, level)
	}
	if err != nil {
		return nil, errors.Join(ErrCapacity, err)
	}

	// The quiet zone is painted by rasterize so its width follows Border.
	q.DisableBorder = true
	bitmap := q.Bitmap()
	if len(bitmap) == 0 {
		return nil, fmt.Errorf("%w: empty QR matrix", ErrRender)
	}

	g := grid{
		cols: len(bitmap[0]),
		rows: len(bitmap),
		dark: func(x, y int) bool { return bitmap[y][x] },
	}
	pad := opts.Border * opts.BoxSize
	img := rasterize(g, opts.BoxSize, opts.BoxSize, pad, pad)

	return &Symbol{
		Kind:    KindQR,
		Payload: payload,
		Image:   img,
		QR:      &opts,
	}, nil
}
