// Package symbol renders text payloads into barcode images.
//
// Three renderers are provided, each a pure function of payload and options:
//
//   - RenderQR: QR matrix via github.com/skip2/go-qrcode, with selectable
//     error correction, module box size, border and optional forced version.
//   - RenderPDF417: stacked PDF417 via github.com/ruudk/golang-pdf417, with
//     a fixed column count, security level, scale and row aspect ratio.
//   - RenderLinear: 1D barcodes (Code 128, Code 39, Code 93, EAN, Codabar,
//     2 of 5) via github.com/boombuler/barcode, with module size, quiet zone
//     and an optional caption.
//
// All renderers paint black modules on a white background (see Background)
// and return a *Symbol holding the image and the effective options.
//
// # Usage
//
//	sym, err := symbol.RenderQR(payload, symbol.DefaultQROptions())
//	if err != nil {
//		// handle error
//	}
//	png.Encode(w, sym.Image)
//
// # Error Handling
//
// Failures are never reported as an empty image. Every error matches one
// of two categories:
//
//	errors.Is(err, symbol.ErrCapacity) // payload does not fit
//	errors.Is(err, symbol.ErrRender)   // bad options, bad characters, unknown symbology
package symbol
