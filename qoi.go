package qoi

import (
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"
)

// EncodeImage walks m in row-major order, building a raw RGB/RGBA pixel
// buffer, and writes it to w as a complete QOI stream. An opaque image
// (per isOpaqueImage) is encoded with 3 channels; anything else keeps its
// alpha channel and is encoded with 4.
func EncodeImage(w io.Writer, m image.Image) error {
	bounds := m.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	channels := 4
	if isOpaqueImage(m) {
		channels = 3
	}

	pixels := make([]byte, width*height*channels)
	off := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			// QOI pixels are straight, not alpha-premultiplied: convert
			// through NRGBA rather than reading Color.RGBA() directly, or
			// translucent pixels would get their color channels
			// premultiplied on the way in and premultiplied again by
			// Image.At on the way out.
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			pixels[off] = c.R
			pixels[off+1] = c.G
			pixels[off+2] = c.B
			if channels == 4 {
				pixels[off+3] = c.A
			}
			off += channels
		}
	}

	sink := &memSink{}
	if err := Encode(sink, pixels, width, channels); err != nil {
		return err
	}
	_, err := w.Write(sink.Bytes())
	return errors.Wrap(err, "qoi: write encoded image")
}

// DecodeImage reads a complete QOI stream from r and returns it as an
// image.Image backed by the decoded pixel buffer.
func DecodeImage(r io.Reader) (image.Image, error) {
	channels := 4
	pixels, width, height, err := Decode(r, channels)
	if err != nil {
		return nil, err
	}
	return &Image{Pix: pixels, Width: width, Height: height, Channels: uint8(channels)}, nil
}

// DecodeImageConfig reports an image's dimensions without decoding its
// pixel data.
func DecodeImageConfig(r io.Reader) (image.Config, error) {
	h, err := decodeHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}

func init() {
	image.RegisterFormat("qoi", QOIMagic, DecodeImage, DecodeImageConfig)
}
