package qoi

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeFileDecodeFileRoundTrip(t *testing.T) {
	pixels := []byte{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
		7, 8, 9,
	}
	path := filepath.Join(t.TempDir(), "fixture.qoi")

	require.NoError(t, EncodeFile(path, pixels, 2, 3))

	got, width, height, err := DecodeFile(path, 3)
	require.NoError(t, err)
	require.Equal(t, 2, width)
	require.Equal(t, 2, height)
	require.True(t, bytes.Equal(got, pixels))
}

func TestDecodeFileMissingFile(t *testing.T) {
	_, _, _, err := DecodeFile(filepath.Join(t.TempDir(), "nope.qoi"), 4)
	require.Error(t, err)
}
