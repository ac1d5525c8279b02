package autocrop

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Bounds returns the smallest rectangle, in img coordinates, holding every
// pixel that differs from bg. ok is false when the whole image is bg.
func Bounds(img image.Image, bg color.Color) (image.Rectangle, bool) {
	src := imaging.Clone(img)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	if w == 0 || h == 0 {
		return image.Rectangle{}, false
	}
	canvas := imaging.New(w, 1, bg)

	minX, minY, maxX, maxY := w, h, -1, -1
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		if bytes.Equal(row, canvas.Pix) {
			continue
		}
		for x := 0; x < w; x++ {
			if bytes.Equal(row[x*4:x*4+4], canvas.Pix[x*4:x*4+4]) {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
		}
		minY, maxY = min(minY, y), max(maxY, y)
	}
	if maxY < 0 {
		return image.Rectangle{}, false
	}

	return image.Rect(minX, minY, maxX+1, maxY+1).Add(img.Bounds().Min), true
}

// Crop trims img to the content that differs from bg. An image made only of
// bg, or whose content already touches every edge, is returned as is.
func Crop(img image.Image, bg color.Color) image.Image {
	r, ok := Bounds(img, bg)
	if !ok || r.Eq(img.Bounds()) {
		return img
	}
	return imaging.Crop(img, r)
}

// CropWhite is Crop against a white background.
func CropWhite(img image.Image) image.Image {
	return Crop(img, color.White)
}
