package symbol_test

import (
	"testing"

	"github.com/makiuchi-d/gozxing/oned"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paycode/pkg/symbol"
)

func TestRenderLinear(t *testing.T) {
	t.Parallel()

	t.Run("code128 decodes back to the payload", func(t *testing.T) {
		t.Parallel()

		opts := symbol.DefaultLinearOptions()
		opts.Caption = false

		sym, err := symbol.RenderLinear("005-2024-00123", opts)
		require.NoError(t, err)
		assert.Equal(t, symbol.KindLinear, sym.Kind)
		require.NotNil(t, sym.Linear)
		assert.Equal(t, "code128", sym.Linear.Symbology)

		assert.Equal(t, "005-2024-00123", decode(t, sym.Image, oned.NewCode128Reader()))
	})

	t.Run("code39 decodes back to the payload", func(t *testing.T) {
		t.Parallel()

		sym, err := symbol.RenderLinear("SINV-2024", symbol.LinearOptions{
			Symbology:    "code39",
			ModuleWidth:  2,
			ModuleHeight: 40,
			QuietZone:    10,
		})
		require.NoError(t, err)
		assert.Equal(t, "SINV-2024", decode(t, sym.Image, oned.NewCode39Reader()))
	})

	t.Run("module size and quiet zone set the geometry", func(t *testing.T) {
		t.Parallel()

		narrow, err := symbol.RenderLinear("ABC", symbol.LinearOptions{ModuleWidth: 1, ModuleHeight: 30})
		require.NoError(t, err)
		wide, err := symbol.RenderLinear("ABC", symbol.LinearOptions{ModuleWidth: 3, ModuleHeight: 30, QuietZone: 5})
		require.NoError(t, err)

		assert.Equal(t, 30, narrow.Image.Bounds().Dy())
		assert.Equal(t, narrow.Image.Bounds().Dx()*3+2*5*3, wide.Image.Bounds().Dx())
	})

	t.Run("caption adds a text line under the bars", func(t *testing.T) {
		t.Parallel()

		opts := symbol.DefaultLinearOptions()
		plain, err := symbol.RenderLinear("ABC", symbol.LinearOptions{ModuleWidth: 2, ModuleHeight: 50, QuietZone: 10})
		require.NoError(t, err)
		captioned, err := symbol.RenderLinear("ABC", opts)
		require.NoError(t, err)

		assert.Greater(t, captioned.Image.Bounds().Dy(), plain.Image.Bounds().Dy())
		assert.Equal(t, plain.Image.Bounds().Dx(), captioned.Image.Bounds().Dx())
	})

	t.Run("caption wider than bars widens the image", func(t *testing.T) {
		t.Parallel()

		sym, err := symbol.RenderLinear("12", symbol.LinearOptions{Symbology: "i2of5", ModuleWidth: 1, ModuleHeight: 10, Caption: true})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, sym.Image.Bounds().Dx(), 14, "two 7px glyphs")
	})

	t.Run("symbology names are normalised", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"Code128", "code-128", "CODE_128", ""} {
			sym, err := symbol.RenderLinear("ABC", symbol.LinearOptions{Symbology: name, ModuleWidth: 1, ModuleHeight: 1})
			require.NoError(t, err, name)
			assert.Equal(t, "code128", sym.Linear.Symbology, name)
		}

		sym, err := symbol.RenderLinear("1234", symbol.LinearOptions{Symbology: "ITF", ModuleWidth: 1, ModuleHeight: 1})
		require.NoError(t, err)
		assert.Equal(t, "i2of5", sym.Linear.Symbology)
	})

	t.Run("ean13 accepts twelve digits", func(t *testing.T) {
		t.Parallel()

		sym, err := symbol.RenderLinear("590123412345", symbol.LinearOptions{Symbology: "ean13", ModuleWidth: 2, ModuleHeight: 40, QuietZone: 10})
		require.NoError(t, err)
		assert.Equal(t, "5901234123457", decode(t, sym.Image, oned.NewEAN13Reader()))
	})
}

func TestRenderLinear_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		payload string
		opts    symbol.LinearOptions
		wantErr error
	}{
		{"empty payload", "", symbol.DefaultLinearOptions(), symbol.ErrEmptyPayload},
		{"unknown symbology", "ABC", symbol.LinearOptions{Symbology: "maxicode", ModuleWidth: 1, ModuleHeight: 1}, symbol.ErrUnsupportedSymbology},
		{"letters in ean13", "ABCDEFGHIJKL", symbol.LinearOptions{Symbology: "ean13", ModuleWidth: 1, ModuleHeight: 1}, symbol.ErrInvalidContent},
		{"wrong ean8 length", "1234", symbol.LinearOptions{Symbology: "ean8", ModuleWidth: 1, ModuleHeight: 1}, symbol.ErrInvalidContent},
		{"odd length interleaved 2 of 5", "123", symbol.LinearOptions{Symbology: "i2of5", ModuleWidth: 1, ModuleHeight: 1}, symbol.ErrInvalidContent},
		{"non-ASCII code128", "Račun", symbol.LinearOptions{Symbology: "code128", ModuleWidth: 1, ModuleHeight: 1}, symbol.ErrInvalidContent},
		{"zero module width", "ABC", symbol.LinearOptions{ModuleHeight: 1}, symbol.ErrInvalidOptions},
		{"zero module height", "ABC", symbol.LinearOptions{ModuleWidth: 1}, symbol.ErrInvalidOptions},
		{"negative quiet zone", "ABC", symbol.LinearOptions{ModuleWidth: 1, ModuleHeight: 1, QuietZone: -1}, symbol.ErrInvalidOptions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sym, err := symbol.RenderLinear(tt.payload, tt.opts)
			assert.Nil(t, sym)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, symbol.ErrRender)
		})
	}
}

func TestSymbologies(t *testing.T) {
	t.Parallel()

	names := symbol.Symbologies()
	assert.Contains(t, names, "code128")
	assert.Contains(t, names, "ean13")
	assert.IsNonDecreasing(t, names)
}
