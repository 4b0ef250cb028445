package qoi

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func buildTestNRGBA(opaque bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			a := uint8(255)
			if !opaque && x == 2 && y == 1 {
				a = 128
			}
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 20), B: uint8(x + y), A: a})
		}
	}
	return img
}

func TestEncodeImageDecodeImageRoundTrip(t *testing.T) {
	for _, opaque := range []bool{true, false} {
		src := buildTestNRGBA(opaque)

		var buf bytes.Buffer
		if err := EncodeImage(&buf, src); err != nil {
			t.Fatalf("EncodeImage(opaque=%v): %v", opaque, err)
		}

		decoded, err := DecodeImage(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatalf("DecodeImage(opaque=%v): %v", opaque, err)
		}

		bounds := src.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				wantR, wantG, wantB, wantA := src.At(x, y).RGBA()
				gotR, gotG, gotB, gotA := decoded.At(x, y).RGBA()
				if opaque {
					wantA = 0xffff // opaque images are re-encoded with 3 channels, alpha always reads back as 255
				}
				if wantR != gotR || wantG != gotG || wantB != gotB || wantA != gotA {
					t.Fatalf("opaque=%v pixel (%d,%d): got (%d,%d,%d,%d), want (%d,%d,%d,%d)", opaque, x, y, gotR, gotG, gotB, gotA, wantR, wantG, wantB, wantA)
				}
			}
		}
	}
}

func TestRegisteredFormatSniffsQOIStream(t *testing.T) {
	src := buildTestNRGBA(false)
	var buf bytes.Buffer
	if err := EncodeImage(&buf, src); err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}

	decoded, format, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("image.Decode: %v", err)
	}
	if format != "qoi" {
		t.Fatalf("format = %q, want qoi", format)
	}
	if decoded.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", decoded.Bounds(), src.Bounds())
	}
}

func TestIsOpaqueImage(t *testing.T) {
	if !isOpaqueImage(buildTestNRGBA(true)) {
		t.Fatal("fully opaque image reported as non-opaque")
	}
	if isOpaqueImage(buildTestNRGBA(false)) {
		t.Fatal("image with a translucent pixel reported as opaque")
	}
}
