package qoi

import (
	"bufio"
	"os"

	"github.com/pkg/errors"
)

// EncodeFile writes pixels as a complete QOI stream to path, creating or
// truncating the file. The stream is assembled in memory first (Encode
// needs to seek back and patch its size field, which *os.File can do but
// a buffered writer over it can't) and then flushed to disk in one write.
func EncodeFile(path string, pixels []byte, width, channels int) error {
	sink := &memSink{}
	if err := Encode(sink, pixels, width, channels); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "qoi: create %s", path)
	}
	defer f.Close()

	if _, err := f.Write(sink.Bytes()); err != nil {
		return errors.Wrapf(err, "qoi: write %s", path)
	}
	return errors.Wrapf(f.Sync(), "qoi: flush %s", path)
}

// DecodeFile reads a complete QOI stream from path and returns its raw
// pixel bytes, width, and height at the requested channel count.
func DecodeFile(path string, channels int) ([]byte, int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, errors.Wrapf(err, "qoi: open %s", path)
	}
	defer f.Close()

	pixels, width, height, err := Decode(bufio.NewReader(f), channels)
	if err != nil {
		return nil, 0, 0, err
	}
	return pixels, width, height, nil
}
