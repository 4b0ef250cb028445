package qoi

import (
	"image"
	"image/color"
)

// Colorspace records how a stream's channel values should be
// interpreted (gamma-corrected sRGB vs. linear). It is carried as
// metadata only; this package never reads it to convert anything.
type Colorspace uint8

const (
	SRGB   Colorspace = 0
	Linear Colorspace = 1
)

// Image is an image.Image backed directly by a decoded QOI pixel
// buffer: row-major, Channels-interleaved, no other copy of the data.
type Image struct {
	Pix        []byte
	Width      int
	Height     int
	Channels   uint8
	Colorspace Colorspace
}

func (img *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// pixelAt reads the pixel at (x, y) out of Pix into the codec's own
// pixel vocabulary, seeding A to opaque for 3-channel images exactly as
// the decoder does for RGB streams.
func (img *Image) pixelAt(x, y int) pixel {
	off := (y*img.Width + x) * int(img.Channels)
	p := pixel{R: img.Pix[off], G: img.Pix[off+1], B: img.Pix[off+2], A: 255}
	if img.Channels == 4 {
		p.A = img.Pix[off+3]
	}
	return p
}

func (img *Image) At(x, y int) color.Color {
	p := img.pixelAt(x, y)
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}
