package qoi

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Decode reads a complete QOI stream from source and returns the raw
// pixel bytes (row-major, channel-interleaved, channels per pixel) along
// with the decoded width and height. channels must be 3 (RGB) or 4
// (RGBA); the stream's own alpha channel is tracked internally
// regardless and only dropped from the output when channels == 3.
func Decode(source io.Reader, channels int) ([]byte, int, int, error) {
	if channels != 3 && channels != 4 {
		return nil, 0, 0, errors.Wrapf(ErrInvalidGeometry, "channels must be 3 or 4, got %d", channels)
	}

	r := bufio.NewReader(source)
	h, err := decodeHeader(r)
	if err != nil {
		return nil, 0, 0, err
	}

	width, height := int(h.Width), int(h.Height)
	out := make([]byte, width*height*channels)

	if err := decodePixels(r, out, channels); err != nil {
		return nil, 0, 0, err
	}
	return out, width, height, nil
}

// decodePixels runs the decoder state machine, writing channels bytes per
// pixel into out in row-major order.
func decodePixels(r *bufio.Reader, out []byte, channels int) error {
	var cache [cacheSize]pixel
	cur := sentinelPixel
	var run uint32

	totalPixels := len(out) / channels
	for i := 0; i < totalPixels; i++ {
		if run > 0 {
			run--
		} else {
			b1, err := r.ReadByte()
			if err != nil {
				return errors.Wrap(err, "qoi: read tag byte")
			}

			var err2 error
			cur, run, err2 = decodeInstruction(r, &cache, cur, b1)
			if err2 != nil {
				return err2
			}
		}

		off := i * channels
		out[off], out[off+1], out[off+2] = cur.R, cur.G, cur.B
		if channels == 4 {
			out[off+3] = cur.A
		}
	}
	return nil
}

// decodeInstruction dispatches on the tag byte b1, consuming any
// continuation bytes from r, and returns the new current pixel and any
// run length started by a RUN_8/RUN_16 instruction. The cache is updated
// in place for every non-INDEX, non-RUN instruction.
func decodeInstruction(r *bufio.Reader, cache *[cacheSize]pixel, prev pixel, b1 byte) (pixel, uint32, error) {
	switch {
	case (b1 & QOI_MASK_4) == QOI_COLOR:
		px, err := decodeColorOp(r, prev, b1)
		if err != nil {
			return pixel{}, 0, err
		}
		cache[hash(px)] = px
		return px, 0, nil

	case (b1 & QOI_MASK_4) == QOI_DIFF_24:
		px, err := decodeDiff24(r, prev, b1)
		if err != nil {
			return pixel{}, 0, err
		}
		cache[hash(px)] = px
		return px, 0, nil

	case (b1 & QOI_MASK_3) == QOI_DIFF_16:
		b2, err := r.ReadByte()
		if err != nil {
			return pixel{}, 0, errors.Wrap(err, "qoi: read DIFF_16 second byte")
		}
		px := pixel{
			R: prev.R + (b1&0x1f - 15),
			G: prev.G + (b2>>4 - 7),
			B: prev.B + (b2&0x0f - 7),
			A: prev.A,
		}
		cache[hash(px)] = px
		return px, 0, nil

	case (b1 & QOI_MASK_3) == QOI_RUN_16:
		b2, err := r.ReadByte()
		if err != nil {
			return pixel{}, 0, errors.Wrap(err, "qoi: read RUN_16 second byte")
		}
		run := uint32(b1&0x1f)<<8 | uint32(b2)
		return prev, run + 32, nil

	case (b1 & QOI_MASK_3) == QOI_RUN_8:
		return prev, uint32(b1 & 0x1f), nil

	case (b1 & QOI_MASK_2) == QOI_DIFF_8:
		px := pixel{
			R: prev.R + ((b1>>4)&0x03 - 1),
			G: prev.G + ((b1>>2)&0x03 - 1),
			B: prev.B + (b1&0x03 - 1),
			A: prev.A,
		}
		cache[hash(px)] = px
		return px, 0, nil

	case (b1 & QOI_MASK_2) == QOI_INDEX:
		return cache[b1&0x3f], 0, nil

	default:
		// Unreachable: the seven cases above are exhaustive over all
		// 256 byte values once checked longest-prefix-first.
		return pixel{}, 0, errors.Errorf("qoi: undispatched tag byte %#08b", b1)
	}
}

func decodeColorOp(r *bufio.Reader, prev pixel, b1 byte) (pixel, error) {
	px := prev
	read := func(dst *byte) error {
		b, err := r.ReadByte()
		if err != nil {
			return errors.Wrap(err, "qoi: read COLOR channel byte")
		}
		*dst = b
		return nil
	}
	if b1&8 != 0 {
		if err := read(&px.R); err != nil {
			return pixel{}, err
		}
	}
	if b1&4 != 0 {
		if err := read(&px.G); err != nil {
			return pixel{}, err
		}
	}
	if b1&2 != 0 {
		if err := read(&px.B); err != nil {
			return pixel{}, err
		}
	}
	if b1&1 != 0 {
		if err := read(&px.A); err != nil {
			return pixel{}, err
		}
	}
	return px, nil
}

// decodeDiff24 reverses the DIFF_24 bit packing: bias-15 5-bit deltas
// spread across three bytes.
func decodeDiff24(r *bufio.Reader, prev pixel, b1 byte) (pixel, error) {
	b2, err := r.ReadByte()
	if err != nil {
		return pixel{}, errors.Wrap(err, "qoi: read DIFF_24 second byte")
	}
	b3, err := r.ReadByte()
	if err != nil {
		return pixel{}, errors.Wrap(err, "qoi: read DIFF_24 third byte")
	}
	return pixel{
		R: prev.R + (((b1&0x0f)<<1 | b2>>7) - 15),
		G: prev.G + ((b2&0x7c)>>2 - 15),
		B: prev.B + (((b2&0x03)<<3 | (b3&0xe0)>>5) - 15),
		A: prev.A + (b3&0x1f - 15),
	}, nil
}
