package qoi

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// WriteSeeker is the minimal capability the encoder needs from its sink:
// sequential writes, plus the ability to seek back once to patch the
// deferred size field. Callers are not asked for a full *os.File.
type WriteSeeker interface {
	io.Writer
	io.Seeker
}

// encodeHeader writes the 12-byte header with a zeroed size field and
// returns the byte offset of that field, so the caller can patch it once
// the image-data length is known.
func encodeHeader(w WriteSeeker, width, height uint16) (int64, error) {
	if _, err := w.Write([]byte(QOIMagic)); err != nil {
		return 0, errors.Wrap(err, "qoi: write magic")
	}
	if err := binary.Write(w, binary.LittleEndian, width); err != nil {
		return 0, errors.Wrap(err, "qoi: write width")
	}
	if err := binary.Write(w, binary.LittleEndian, height); err != nil {
		return 0, errors.Wrap(err, "qoi: write height")
	}
	sizeOffset, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errors.Wrap(err, "qoi: seek to size field")
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(0)); err != nil {
		return 0, errors.Wrap(err, "qoi: write placeholder size")
	}
	return sizeOffset, nil
}

// patchSize seeks back to sizeOffset and writes the final image-data
// length (instruction bytes plus padding).
func patchSize(w WriteSeeker, sizeOffset int64, size uint32) error {
	if _, err := w.Seek(sizeOffset, io.SeekStart); err != nil {
		return errors.Wrap(err, "qoi: seek to patch size")
	}
	if err := binary.Write(w, binary.LittleEndian, size); err != nil {
		return errors.Wrap(err, "qoi: patch size")
	}
	return nil
}

// decodedHeader holds the parsed fields of a QOI stream's 12-byte header.
type decodedHeader struct {
	Width, Height uint16
	DataLen       uint32 // declared length of instructions + padding; not validated against actual stream length
}

func decodeHeader(r io.Reader) (decodedHeader, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return decodedHeader{}, errors.Wrap(err, "qoi: read magic")
	}
	if string(magic[:]) != QOIMagic {
		return decodedHeader{}, errors.Wrapf(ErrBadMagic, "got %q", magic[:])
	}

	var h decodedHeader
	if err := binary.Read(r, binary.LittleEndian, &h.Width); err != nil {
		return decodedHeader{}, errors.Wrap(err, "qoi: read width")
	}
	if err := binary.Read(r, binary.LittleEndian, &h.Height); err != nil {
		return decodedHeader{}, errors.Wrap(err, "qoi: read height")
	}
	if err := binary.Read(r, binary.LittleEndian, &h.DataLen); err != nil {
		return decodedHeader{}, errors.Wrap(err, "qoi: read data length")
	}
	if h.Width == 0 || h.Height == 0 {
		return decodedHeader{}, errors.Wrapf(ErrZeroDimension, "width=%d height=%d", h.Width, h.Height)
	}
	return h, nil
}
