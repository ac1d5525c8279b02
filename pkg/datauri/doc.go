// Package datauri packs PNG images into inline data URIs and unpacks them.
//
// An artifact has the exact form
//
//	data:image/png;base64,<standard base64 of the PNG bytes>
//
// Decode is the inverse of Encode: it returns the original bytes unchanged.
// Anything else, a different media type, broken base64 or bytes that are
// not a PNG, is rejected.
//
//	uri, err := datauri.EncodeImage(img)
//	...
//	info, err := datauri.Save(ctx, storage, uri, "qr/invoice-42.png")
//
// All errors match ErrPackaging with errors.Is. Storage failures keep the
// underlying file error too, so errors.Is(err, file.ErrInvalidPath) works.
package datauri
