package symbol_test

import (
	"image"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/stretchr/testify/require"
)

// decode reads a symbol back with a conformant reader.
func decode(t *testing.T, img image.Image, reader gozxing.Reader) string {
	t.Helper()

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)

	res, err := reader.Decode(bmp, map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER:    true,
		gozxing.DecodeHintType_CHARACTER_SET: "UTF-8",
	})
	require.NoError(t, err, "symbol should be readable")
	return res.GetText()
}
