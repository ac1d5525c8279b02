package symbol

import (
	"fmt"
	"math"
	"strings"

	pdf417 "github.com/ruudk/golang-pdf417"
)

const (
	pdf417MaxColumns   = 30
	pdf417MaxRows      = 90
	pdf417MaxCodewords = 928
	pdf417MaxSecurity  = 8
)

// PDF417Options controls PDF417 rendering.
type PDF417Options struct {
	// Columns is the number of data columns, 1..30.
	Columns int `env:"COLUMNS"`
	// SecurityLevel is the error-correction level, 0..8. Level n adds
	// 2^(n+1) error-correction codewords.
	SecurityLevel int `env:"SECURITY_LEVEL"`
	// Scale is the pixel width of one module.
	Scale int `env:"SCALE"`
	// Ratio is the row height as a multiple of the module width.
	Ratio float64 `env:"RATIO"`
	// QuietZone is the blank margin in modules.
	QuietZone int `env:"QUIET_ZONE"`
}

// DefaultPDF417Options returns 9 columns, security level 2, 3px modules and
// rows twice as tall as a module is wide.
func DefaultPDF417Options() PDF417Options {
	return PDF417Options{Columns: 9, SecurityLevel: 2, Scale: 3, Ratio: 2, QuietZone: 2}
}

func (o PDF417Options) validate() error {
	switch {
	case o.Columns < 1 || o.Columns > pdf417MaxColumns:
		return fmt.Errorf("%w: columns %d", ErrInvalidOptions, o.Columns)
	case o.SecurityLevel < 0 || o.SecurityLevel > pdf417MaxSecurity:
		return fmt.Errorf("%w: security level %d", ErrInvalidOptions, o.SecurityLevel)
	case o.Scale <= 0:
		return fmt.Errorf("%w: scale %d", ErrInvalidOptions, o.Scale)
	case o.Ratio <= 0 || math.IsNaN(o.Ratio) || math.IsInf(o.Ratio, 0):
		return fmt.Errorf("%w: ratio %v", ErrInvalidOptions, o.Ratio)
	case o.QuietZone < 0:
		return fmt.Errorf("%w: quiet zone %d", ErrInvalidOptions, o.QuietZone)
	}
	return nil
}

// DataCapacity returns the number of data codewords available with the
// configured columns and security level. It can be zero or negative when
// error correction alone exceeds the symbol.
//
// Rows are filled with padding, so the whole symbol must stay within both
// 90 rows and 928 codewords once rounded up to full rows.
func (o PDF417Options) DataCapacity() int {
	if o.Columns < 1 {
		return 0
	}
	total := min(o.Columns*pdf417MaxRows, pdf417MaxCodewords/o.Columns*o.Columns)
	// One codeword is the symbol length descriptor.
	return total - o.eccCodewords() - 1
}

func (o PDF417Options) eccCodewords() int {
	return 1 << (o.SecurityLevel + 1)
}

// RenderPDF417 encodes payload as a PDF417 symbol with exactly opts.Columns
// data columns.
//
// Payload bytes must be printable ASCII, tab, CR or LF; anything else fails
// with ErrInvalidContent. A payload needing more data codewords than
// opts.DataCapacity fails with ErrCapacity.
func RenderPDF417(payload string, opts PDF417Options) (*Symbol, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if i := strings.IndexFunc(payload, func(r rune) bool { return !pdf417Encodable(r) }); i >= 0 {
		return nil, fmt.Errorf("%w: byte %q at %d is outside the PDF417 text set", ErrInvalidContent, payload[i], i)
	}

	capacity := opts.DataCapacity()
	need := len(pdf417.CreateDataEncoder().Encode(payload))
	if need > capacity {
		return nil, fmt.Errorf("%w: needs %d codewords, %d available", ErrCapacity, need, max(capacity, 0))
	}

	bc := pdf417.Encode(payload, opts.Columns, opts.SecurityLevel)
	// Submode switches are chosen per encode, so the final count is checked
	// against the symbol limits again.
	if bc.Rows > pdf417MaxRows || len(bc.CodeWords) > pdf417MaxCodewords {
		return nil, fmt.Errorf("%w: %d rows, %d codewords", ErrCapacity, bc.Rows, len(bc.CodeWords))
	}

	g, err := pdf417Grid(bc.PixelGrid())
	if err != nil {
		return nil, err
	}

	rowHeight := max(int(math.Round(float64(opts.Scale)*opts.Ratio)), 1)
	pad := opts.QuietZone * opts.Scale
	img := rasterize(g, opts.Scale, rowHeight, pad, pad)

	return &Symbol{
		Kind:    KindPDF417,
		Payload: payload,
		Image:   img,
		PDF417:  &opts,
	}, nil
}

// pdf417Encodable reports whether r is in the text or numeric compaction
// tables: printable ASCII plus tab, CR and LF.
func pdf417Encodable(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' || (r >= 0x20 && r <= 0x7e)
}

// pdf417Grid wraps the encoder's module rows. Every row has the same width:
// start pattern, row indicators, data columns and the stop pattern.
func pdf417Grid(rows [][]bool) (grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return grid{}, fmt.Errorf("%w: empty PDF417 symbol", ErrRender)
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return grid{}, fmt.Errorf("%w: PDF417 row %d is %d modules wide, want %d", ErrRender, y, len(row), width)
		}
	}

	return grid{
		cols: width,
		rows: len(rows),
		dark: func(x, y int) bool { return rows[y][x] },
	}, nil
}
