package qoi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	sink := &memSink{}
	offset, err := encodeHeader(sink, 640, 480)
	require.NoError(t, err)
	require.Equal(t, int64(8), offset, "size field sits right after magic+width+height")

	require.NoError(t, patchSize(sink, offset, 1234))

	h, err := decodeHeader(bytes.NewReader(sink.Bytes()))
	require.NoError(t, err)
	require.Equal(t, uint16(640), h.Width)
	require.Equal(t, uint16(480), h.Height)
	require.Equal(t, uint32(1234), h.DataLen)
}

func TestHeaderRejectsBadMagic(t *testing.T) {
	bad := []byte("nope" + "\x00\x00\x00\x00\x00\x00\x00\x00")
	_, err := decodeHeader(bytes.NewReader(bad))
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestHeaderRejectsZeroDimension(t *testing.T) {
	sink := &memSink{}
	offset, err := encodeHeader(sink, 0, 10)
	require.NoError(t, err)
	require.NoError(t, patchSize(sink, offset, 0))

	_, err = decodeHeader(bytes.NewReader(sink.Bytes()))
	require.ErrorIs(t, err, ErrZeroDimension)
}
