package qoi

import (
	"github.com/pkg/errors"
)

// QuirksTotalPixelsDivBy3 reproduces a divergence found in the original
// source this codec was distilled from: it computed the total pixel
// count used for the "is this the final pixel" run-flush check as
// data.len()/3 unconditionally, even when encoding 4-channel (RGBA)
// input. For RGBA input that overcounts the true pixel count, so the
// comparison pixelIndex+1 == totalPixels never fires and the encoder can
// leave the image's trailing run unflushed. Left false (the corrected
// behavior) by default; set true to reproduce the original divergence,
// e.g. to byte-for-byte match streams produced by that implementation.
var QuirksTotalPixelsDivBy3 = false

// Encode writes pixels (W*H*channels raw bytes, row-major,
// channel-interleaved) as a complete QOI stream to sink. channels must be
// 3 (RGB) or 4 (RGBA). width must be nonzero; height is derived from
// len(pixels)/(width*channels).
func Encode(sink WriteSeeker, pixels []byte, width int, channels int) error {
	if channels != 3 && channels != 4 {
		return errors.Wrapf(ErrInvalidGeometry, "channels must be 3 or 4, got %d", channels)
	}
	if width <= 0 || len(pixels)%channels != 0 || len(pixels)%(width*channels) != 0 {
		return errors.Wrapf(ErrInvalidGeometry, "pixel buffer of %d bytes does not divide evenly by width=%d channels=%d", len(pixels), width, channels)
	}
	height := len(pixels) / (width * channels)
	if width > 0xffff || height > 0xffff {
		return errors.Wrapf(ErrInvalidGeometry, "width=%d height=%d exceeds 16 bits", width, height)
	}

	sizeOffset, err := encodeHeader(sink, uint16(width), uint16(height))
	if err != nil {
		return err
	}

	totalPixels := len(pixels) / channels
	if QuirksTotalPixelsDivBy3 {
		totalPixels = len(pixels) / 3
	}

	var cache [cacheSize]pixel
	prev := sentinelPixel
	cur := sentinelPixel
	var run uint32
	var dataLen uint32

	writeByte := func(b byte) error {
		n, err := sink.Write([]byte{b})
		dataLen += uint32(n)
		return err
	}

	pixelIndex := 0
	for off := 0; off < len(pixels); off += channels {
		cur.R, cur.G, cur.B = pixels[off], pixels[off+1], pixels[off+2]
		if channels == 4 {
			cur.A = pixels[off+3]
		} else {
			cur.A = 255
		}

		matches := cur == prev
		if matches {
			run++
		}

		isLastPixel := pixelIndex+1 == totalPixels
		if run > 0 && (run == maxRunLength || !matches || isLastPixel) {
			if err := flushRun(writeByte, run); err != nil {
				return errors.Wrap(err, "qoi: write run")
			}
			run = 0
		}

		if !matches {
			if err := encodePixel(writeByte, &cache, cur, prev); err != nil {
				return err
			}
		}

		prev = cur
		pixelIndex++
	}

	if err := writeNTimes(writeByte, 0, paddingLen); err != nil {
		return errors.Wrap(err, "qoi: write padding")
	}

	if err := patchSize(sink, sizeOffset, dataLen); err != nil {
		return err
	}
	return nil
}

func flushRun(writeByte func(byte) error, run uint32) error {
	if run < maxRun8Length {
		return writeByte(QOI_RUN_8 | byte(run-1))
	}
	run -= maxRun8Length
	if err := writeByte(QOI_RUN_16 | byte(run>>8)); err != nil {
		return err
	}
	return writeByte(byte(run))
}

// encodePixel emits the INDEX/DIFF_*/COLOR instruction for a pixel that
// differs from the previous one, updating cache as it goes.
func encodePixel(writeByte func(byte) error, cache *[cacheSize]pixel, cur, prev pixel) error {
	h := hash(cur)
	if cache[h] == cur {
		return writeByte(QOI_INDEX | h)
	}
	cache[h] = cur

	d := subtractPixels(cur, prev)
	if d.withinDiff24Range() {
		switch {
		case d.fitsDiff8():
			return writeByte(QOI_DIFF_8 | byte((d.R+1)<<4|(d.G+1)<<2|(d.B+1)))
		case d.fitsDiff16():
			if err := writeByte(QOI_DIFF_16 | byte(d.R+15)); err != nil {
				return err
			}
			return writeByte(byte((d.G+7)<<4 | (d.B + 7)))
		default:
			return encodeDiff24(writeByte, d)
		}
	}
	return encodeColor(writeByte, cur, d)
}

// encodeDiff24 packs the bias-15 5-bit deltas across three bytes.
func encodeDiff24(writeByte func(byte) error, d delta) error {
	r, g, b, a := byte(d.R+15), byte(d.G+15), byte(d.B+15), byte(d.A+15)
	if err := writeByte(QOI_DIFF_24 | (r >> 1)); err != nil {
		return err
	}
	if err := writeByte((r << 7) | (g << 2) | (b >> 3)); err != nil {
		return err
	}
	return writeByte((b << 5) | a)
}

func encodeColor(writeByte func(byte) error, cur pixel, d delta) error {
	var mask byte = QOI_COLOR
	if d.R != 0 {
		mask |= 1 << 3
	}
	if d.G != 0 {
		mask |= 1 << 2
	}
	if d.B != 0 {
		mask |= 1 << 1
	}
	if d.A != 0 {
		mask |= 1 << 0
	}
	if err := writeByte(mask); err != nil {
		return err
	}
	if d.R != 0 {
		if err := writeByte(cur.R); err != nil {
			return err
		}
	}
	if d.G != 0 {
		if err := writeByte(cur.G); err != nil {
			return err
		}
	}
	if d.B != 0 {
		if err := writeByte(cur.B); err != nil {
			return err
		}
	}
	if d.A != 0 {
		if err := writeByte(cur.A); err != nil {
			return err
		}
	}
	return nil
}

func writeNTimes(writeByte func(byte) error, b byte, n int) error {
	for i := 0; i < n; i++ {
		if err := writeByte(b); err != nil {
			return err
		}
	}
	return nil
}
