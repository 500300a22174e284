package dcmio

import (
	"encoding/binary"

	"github.com/dicomwsi/dicomcore/dicom/dcmerr"
)

// Reader layers DICOM binary-reading conventions (byte order, position
// tracking, exact-length reads) over a Source. It supersedes the teacher's
// non-seekable Reader by delegating Seek straight to the Source.
type Reader struct {
	src       Source
	byteOrder binary.ByteOrder
	position  int64
}

// NewReader wraps src with the given initial byte order.
func NewReader(src Source, byteOrder binary.ByteOrder) *Reader {
	return &Reader{src: src, byteOrder: byteOrder}
}

// SetByteOrder changes the byte order used by subsequent numeric reads.
func (r *Reader) SetByteOrder(order binary.ByteOrder) {
	r.byteOrder = order
}

// ByteOrder returns the byte order currently used for numeric reads.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.byteOrder
}

// Position returns the current logical stream offset.
func (r *Reader) Position() int64 {
	return r.position
}

// ReadFull reads exactly len(buf) bytes, looping over short reads per
// Source's POSIX read semantics (0 bytes read means EOF).
func (r *Reader) ReadFull(buf []byte) error {
	total := 0
	for total < len(buf) {
		n, err := r.src.Read(buf[total:])
		if err != nil {
			return dcmerr.Wrap(dcmerr.IO, "reading from source", err)
		}
		if n == 0 {
			return dcmerr.New(dcmerr.IO, "unexpected end of stream", "")
		}
		total += n
		r.position += int64(n)
	}
	return nil
}

// ReadFullOrEOF reads exactly len(buf) bytes, but tolerates a clean end of
// stream at the very start of the read: if the underlying Source reports
// EOF before any byte of this call has been consumed, it returns eof=true
// and a nil error rather than treating it as truncation. A short read that
// begins after at least one byte has already been consumed is still a
// truncation error, since the caller is then mid-header.
func (r *Reader) ReadFullOrEOF(buf []byte) (eof bool, err error) {
	total := 0
	for total < len(buf) {
		n, rerr := r.src.Read(buf[total:])
		if rerr != nil {
			return false, dcmerr.Wrap(dcmerr.IO, "reading from source", rerr)
		}
		if n == 0 {
			if total == 0 {
				return true, nil
			}
			return false, dcmerr.New(dcmerr.IO, "unexpected end of stream", "")
		}
		total += n
		r.position += int64(n)
	}
	return false, nil
}

// ReadBytes reads exactly n bytes and returns them as a fresh slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadUint16 reads a 16-bit unsigned integer in the reader's current byte order.
func (r *Reader) ReadUint16() (uint16, error) {
	buf, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return r.byteOrder.Uint16(buf), nil
}

// ReadUint32 reads a 32-bit unsigned integer in the reader's current byte order.
func (r *Reader) ReadUint32() (uint32, error) {
	buf, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return r.byteOrder.Uint32(buf), nil
}

// ReadString reads exactly n bytes and returns them verbatim as a string;
// callers decide whether and how to trim padding.
func (r *Reader) ReadString(n int) (string, error) {
	buf, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Seek repositions the stream and resynchronises the reader's position
// counter, returning the new absolute offset.
func (r *Reader) Seek(offset int64, whence Whence) (int64, error) {
	pos, err := r.src.Seek(offset, whence)
	if err != nil {
		return 0, err
	}
	r.position = pos
	return pos, nil
}

// Rewind seeks back to an absolute offset previously observed via Position,
// used by the stop predicate to unwind to the start of the current element
// header.
func (r *Reader) Rewind(offset int64) error {
	_, err := r.Seek(offset, SeekSet)
	return err
}

// Source returns the underlying Source, e.g. for the parser to hand off
// between phases.
func (r *Reader) Source() Source {
	return r.src
}
