package symbol

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/codabar"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/code93"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/twooffive"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultSymbology is used when LinearOptions.Symbology is empty.
const DefaultSymbology = "code128"

// captionGap is the space between the bars and the caption baseline box.
const captionGap = 4

type linearEncoder func(content string) (barcode.Barcode, error)

var linearEncoders = map[string]linearEncoder{
	"code128": func(s string) (barcode.Barcode, error) { return code128.Encode(s) },
	"code39":  func(s string) (barcode.Barcode, error) { return code39.Encode(s, false, true) },
	"code93":  func(s string) (barcode.Barcode, error) { return code93.Encode(s, false, true) },
	"ean":     func(s string) (barcode.Barcode, error) { return ean.Encode(s) },
	"ean8":    eanOfLength(7, 8),
	"ean13":   eanOfLength(12, 13),
	"codabar": func(s string) (barcode.Barcode, error) { return codabar.Encode(s) },
	"2of5":    func(s string) (barcode.Barcode, error) { return twooffive.Encode(s, false) },
	"i2of5":   func(s string) (barcode.Barcode, error) { return twooffive.Encode(s, true) },
}

var symbologyAliases = map[string]string{
	"itf":             "i2of5",
	"interleaved2of5": "i2of5",
}

func eanOfLength(lengths ...int) linearEncoder {
	return func(s string) (barcode.Barcode, error) {
		for _, n := range lengths {
			if len(s) == n {
				return ean.Encode(s)
			}
		}
		return nil, fmt.Errorf("expected %v digits, got %d", lengths, len(s))
	}
}

// Symbologies lists the accepted linear symbology names.
func Symbologies() []string {
	names := make([]string, 0, len(linearEncoders))
	for name := range linearEncoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LinearOptions controls 1D barcode rendering.
type LinearOptions struct {
	// Symbology is the barcode type, see Symbologies. code128 when empty.
	Symbology string `env:"SYMBOLOGY"`
	// ModuleWidth is the pixel width of the narrowest bar.
	ModuleWidth int `env:"MODULE_WIDTH"`
	// ModuleHeight is the bar height in pixels.
	ModuleHeight int `env:"MODULE_HEIGHT"`
	// QuietZone is the blank margin left and right, in modules.
	QuietZone int `env:"QUIET_ZONE"`
	// Caption prints the payload under the bars.
	Caption bool `env:"CAPTION"`
}

// DefaultLinearOptions returns Code 128 with 2px modules, 50px bars, a
// 10-module quiet zone and a caption.
func DefaultLinearOptions() LinearOptions {
	return LinearOptions{
		Symbology:    DefaultSymbology,
		ModuleWidth:  2,
		ModuleHeight: 50,
		QuietZone:    10,
		Caption:      true,
	}
}

func (o LinearOptions) validate() error {
	switch {
	case o.ModuleWidth <= 0:
		return fmt.Errorf("%w: module width %d", ErrInvalidOptions, o.ModuleWidth)
	case o.ModuleHeight <= 0:
		return fmt.Errorf("%w: module height %d", ErrInvalidOptions, o.ModuleHeight)
	case o.QuietZone < 0:
		return fmt.Errorf("%w: quiet zone %d", ErrInvalidOptions, o.QuietZone)
	}
	return nil
}

func lookupSymbology(name string) (string, linearEncoder, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultSymbology
	}
	if alias, ok := symbologyAliases[key]; ok {
		key = alias
	}
	if enc, ok := linearEncoders[key]; ok {
		return key, enc, nil
	}
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if enc, ok := linearEncoders[key]; ok {
		return key, enc, nil
	}
	return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedSymbology, name)
}

// RenderLinear encodes payload as a 1D barcode of the configured symbology.
// Characters the symbology cannot carry fail with ErrInvalidContent.
func RenderLinear(payload string, opts LinearOptions) (*Symbol, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	name, encode, err := lookupSymbology(opts.Symbology)
	if err != nil {
		return nil, err
	}
	opts.Symbology = name

	bc, err := encode(payload)
	if err != nil {
		return nil, errors.Join(ErrInvalidContent, err)
	}

	b := bc.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty %s symbol", ErrRender, name)
	}
	bars := make([]bool, b.Dx())
	for x := range bars {
		bars[x] = isDark(bc.At(b.Min.X+x, b.Min.Y))
	}

	g := grid{
		cols: len(bars),
		rows: 1,
		dark: func(x, _ int) bool { return bars[x] },
	}
	var img image.Image = rasterize(g, opts.ModuleWidth, opts.ModuleHeight, opts.QuietZone*opts.ModuleWidth, 0)
	if opts.Caption {
		img = withCaption(img, payload)
	}

	return &Symbol{
		Kind:    KindLinear,
		Payload: payload,
		Image:   img,
		Linear:  &opts,
	}, nil
}

// withCaption draws text centred under bars.
func withCaption(bars image.Image, text string) image.Image {
	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, text).Ceil()
	lineHeight := face.Metrics().Height.Ceil()

	width := max(bars.Bounds().Dx(), textWidth)
	height := bars.Bounds().Dy() + captionGap + lineHeight

	canvas := imaging.New(width, height, color.White)
	canvas = imaging.Paste(canvas, bars, image.Pt((width-bars.Bounds().Dx())/2, 0))

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P((width-textWidth)/2, bars.Bounds().Dy()+captionGap+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
	return canvas
}
