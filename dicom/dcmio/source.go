// Package dcmio provides the seekable byte-source abstraction the parser
// reads from, plus file and in-memory backends.
//
// Grounded in the teacher's dicom.Reader (byte-order-aware reads, position
// tracking) but adds the Seek capability the teacher never implemented,
// which the parser's stop predicate and the filehandle's phase transitions
// both require.
package dcmio

import (
	"io"
	"os"

	"github.com/dicomwsi/dicomcore/dicom/dcmerr"
)

// Whence selects the reference point for Source.Seek, mirroring os.Seek's
// io.SeekStart/io.SeekCurrent/io.SeekEnd constants under DICOM-flavoured
// names.
type Whence int

const (
	SeekSet Whence = iota
	SeekCur
	SeekEnd
)

// Source is an opaque readable, seekable byte stream. Read has POSIX
// semantics: a short read is legal, and 0 bytes read with a nil error
// means EOF. Callers that need an
// exact byte count must loop (see Reader.ReadFull).
type Source interface {
	Read(buf []byte) (int, error)
	Seek(offset int64, whence Whence) (int64, error)
	Close() error
}

const fileBufferSize = 4096

// File is a Source backed by an *os.File, buffered with a 4 KiB read-ahead
// window. The buffer is invalidated on every explicit Seek; pending-ahead
// bytes are unwound before the underlying seek on SeekCur so the visible
// stream position stays consistent.
type File struct {
	f        *os.File
	buf      []byte
	bufStart int64 // file offset of buf[0]
	bufPos   int   // read cursor within buf
	bufLen   int   // valid bytes in buf
}

// OpenFile opens path for reading and wraps it in a buffered File source.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, dcmerr.Wrap(dcmerr.IO, "opening file", err)
	}
	return &File{f: f, buf: make([]byte, fileBufferSize)}, nil
}

func (s *File) Read(p []byte) (int, error) {
	if s.bufPos < s.bufLen {
		n := copy(p, s.buf[s.bufPos:s.bufLen])
		s.bufPos += n
		return n, nil
	}
	if len(p) >= fileBufferSize {
		for {
			n, err := s.f.Read(p)
			if err != nil && err != io.EOF {
				if isEINTR(err) {
					continue
				}
				return n, dcmerr.Wrap(dcmerr.IO, "reading file", err)
			}
			return n, nil
		}
	}
	var n int
	var err error
	for {
		n, err = s.f.Read(s.buf)
		if err != nil && err != io.EOF {
			if isEINTR(err) {
				continue
			}
			return 0, dcmerr.Wrap(dcmerr.IO, "reading file", err)
		}
		break
	}
	s.bufStart += int64(s.bufLen)
	s.bufLen = n
	s.bufPos = 0
	if n == 0 {
		return 0, nil
	}
	copied := copy(p, s.buf[:n])
	s.bufPos = copied
	return copied, nil
}

func (s *File) Seek(offset int64, whence Whence) (int64, error) {
	var base, fileWhence int
	switch whence {
	case SeekSet:
		fileWhence = io.SeekStart
	case SeekCur:
		// unwind any pending read-ahead: the visible position is behind the
		// underlying file's position by (bufLen - bufPos) bytes.
		pending := int64(s.bufLen - s.bufPos)
		offset -= pending
		fileWhence = io.SeekCurrent
	case SeekEnd:
		fileWhence = io.SeekEnd
	}
	_ = base
	pos, err := s.f.Seek(offset, fileWhence)
	if err != nil {
		return 0, dcmerr.Wrap(dcmerr.IO, "seeking file", err)
	}
	s.bufLen, s.bufPos = 0, 0
	s.bufStart = pos
	return pos, nil
}

func (s *File) Close() error {
	if err := s.f.Close(); err != nil {
		return dcmerr.Wrap(dcmerr.IO, "closing file", err)
	}
	return nil
}

// Memory is a Source backed by an in-memory byte slice.
type Memory struct {
	data []byte
	pos  int64
}

// NewMemory wraps data as a Source. data is not copied.
func NewMemory(data []byte) *Memory {
	return &Memory{data: data}
}

func (s *Memory) Read(p []byte) (int, error) {
	if s.pos >= int64(len(s.data)) {
		return 0, nil
	}
	n := copy(p, s.data[s.pos:])
	s.pos += int64(n)
	return n, nil
}

func (s *Memory) Seek(offset int64, whence Whence) (int64, error) {
	var target int64
	switch whence {
	case SeekSet:
		target = offset
	case SeekCur:
		target = s.pos + offset
	case SeekEnd:
		target = int64(len(s.data)) + offset
	}
	if target < 0 {
		target = 0
	}
	if target > int64(len(s.data)) {
		target = int64(len(s.data))
	}
	s.pos = target
	return s.pos, nil
}

func (s *Memory) Close() error {
	return nil
}
