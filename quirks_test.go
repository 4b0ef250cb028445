package qoi

import (
	"bytes"
	"testing"
)

// TestQuirkTotalPixelsDivBy3MissesFinalRunFlush exercises
// QuirksTotalPixelsDivBy3: computing the "is this the final pixel" total
// unconditionally as len(data)/3 overcounts RGBA streams and can leave a
// trailing run unflushed. Three RGBA pixels, the last two equal, is the
// smallest case where the divergence actually bites: floor(3*4/3) == 4 != 3.
func TestQuirkTotalPixelsDivBy3MissesFinalRunFlush(t *testing.T) {
	pixels := []byte{
		1, 2, 3, 255,
		5, 5, 5, 255,
		5, 5, 5, 255,
	}

	t.Run("corrected behavior round-trips", func(t *testing.T) {
		QuirksTotalPixelsDivBy3 = false
		sink := &memSink{}
		if err := Encode(sink, pixels, 3, 4); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		got, _, _, err := Decode(bytes.NewReader(sink.Bytes()), 4)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !bytes.Equal(got, pixels) {
			t.Fatalf("got % x, want % x", got, pixels)
		}
	})

	t.Run("quirk mode drops the final run flush", func(t *testing.T) {
		QuirksTotalPixelsDivBy3 = true
		defer func() { QuirksTotalPixelsDivBy3 = false }()

		sink := &memSink{}
		if err := Encode(sink, pixels, 3, 4); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		body := sink.Bytes()[12 : len(sink.Bytes())-4]
		// Pixels 0 and 1 each differ enough from their predecessor to need
		// a 2-byte DIFF_16 instruction; pixel 2's run-of-1 never gets its
		// RUN_8 instruction because the quirk's total never matches.
		if len(body) != 4 {
			t.Fatalf("expected the dropped-run body to hold only the 2 DIFF_16 instructions for pixels 0 and 1 (4 bytes), got %d bytes: % x", len(body), body)
		}

		got, _, _, err := Decode(bytes.NewReader(sink.Bytes()), 4)
		if err == nil && bytes.Equal(got, pixels) {
			t.Fatal("expected the quirk to desync decode from the original pixels, but it round-tripped cleanly")
		}
	})
}
