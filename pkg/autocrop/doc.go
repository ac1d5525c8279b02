// Package autocrop trims rendered symbols to their inked area.
//
// Pixels are compared in NRGBA form against a canvas filled with the
// background colour, so images of any colour model can be cropped. The
// result of Crop is a fixed point: cropping it again returns it unchanged.
//
//	img = autocrop.CropWhite(sym.Image)
package autocrop
