package qoi

import "io"

// memSink is a growable in-memory WriteSeeker: it buffers writes into a
// byte slice, growing it as needed, and supports seeking anywhere within
// that slice so Encode can patch the header's size field after the fact.
type memSink struct {
	buf []byte
	pos int64
}

func (s *memSink) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	if end > int64(len(s.buf)) {
		grown := make([]byte, end)
		copy(grown, s.buf)
		s.buf = grown
	}
	copy(s.buf[s.pos:end], p)
	s.pos = end
	return len(p), nil
}

func (s *memSink) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = s.pos
	case io.SeekEnd:
		base = int64(len(s.buf))
	}
	s.pos = base + offset
	return s.pos, nil
}

func (s *memSink) Bytes() []byte {
	return s.buf
}
