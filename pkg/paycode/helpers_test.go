package paycode_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paycode/pkg/payment"
)

func invoice() payment.Document {
	return payment.Document{
		Identifier:  "ACC-SINV-2024-00001",
		Type:        "Sales Invoice",
		PayeeName:   "Moja Tvrtka d.o.o.",
		PayeeStreet: "Racka 1C",
		PayeeCity:   "10250 Ježdovec",
		Amount:      decimal.RequireFromString("1500.00"),
		PayeeIBAN:   "HR1234567890123456789",
		PayeeBIC:    "ZABAHR2XXXX",
		Department:  "Montaža",
	}
}

// scan restores a quiet zone around a cropped symbol and decodes it.
func scan(t *testing.T, img image.Image, reader gozxing.Reader) string {
	t.Helper()

	const margin = 40
	b := img.Bounds()
	canvas := imaging.New(b.Dx()+2*margin, b.Dy()+2*margin, color.White)
	canvas = imaging.Paste(canvas, img, image.Pt(margin, margin))

	bmp, err := gozxing.NewBinaryBitmapFromImage(canvas)
	require.NoError(t, err)

	res, err := reader.Decode(bmp, map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER:    true,
		gozxing.DecodeHintType_CHARACTER_SET: "UTF-8",
	})
	require.NoError(t, err, "symbol should be readable")
	return res.GetText()
}

func isWhite(img image.Image, x, y int) bool {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y == 0xff
}

// hasBorder reports whether every edge pixel of img is white.
func hasBorder(img image.Image) bool {
	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x++ {
		if !isWhite(img, x, b.Min.Y) || !isWhite(img, x, b.Max.Y-1) {
			return false
		}
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		if !isWhite(img, b.Min.X, y) || !isWhite(img, b.Max.X-1, y) {
			return false
		}
	}
	return true
}
