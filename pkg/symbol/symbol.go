package symbol

import (
	"image"
	"image/color"
	"image/draw"
)

// Kind is the logical encoding of a rendered symbol.
type Kind string

const (
	KindQR     Kind = "qr"
	KindPDF417 Kind = "pdf417"
	KindLinear Kind = "linear"
)

var (
	ink   = image.NewUniform(color.Black)
	paper = image.NewUniform(color.White)
)

// Background returns the paper colour of every rendered symbol. Autocrop
// uses it to find the content bounds.
func Background() color.Color { return color.White }

// Symbol is a rendered barcode together with what it encodes and how.
// Exactly one of QR, PDF417 and Linear is set, matching Kind.
type Symbol struct {
	Kind    Kind
	Payload string
	Image   image.Image

	QR     *QROptions
	PDF417 *PDF417Options
	Linear *LinearOptions
}

// grid is a logical module matrix, dark reports whether a module is inked.
type grid struct {
	cols, rows int
	dark       func(x, y int) bool
}

// rasterize paints g with moduleW×moduleH pixels per module and a padding of
// padX/padY pixels on each side.
func rasterize(g grid, moduleW, moduleH, padX, padY int) *image.Gray {
	bounds := image.Rect(0, 0, g.cols*moduleW+2*padX, g.rows*moduleH+2*padY)
	img := image.NewGray(bounds)
	draw.Draw(img, bounds, paper, image.Point{}, draw.Src)

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if !g.dark(x, y) {
				continue
			}
			r := image.Rect(
				padX+x*moduleW, padY+y*moduleH,
				padX+(x+1)*moduleW, padY+(y+1)*moduleH,
			)
			draw.Draw(img, r, ink, image.Point{}, draw.Src)
		}
	}
	return img
}

// isDark treats anything darker than mid-grey as ink.
func isDark(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 0x80
}
