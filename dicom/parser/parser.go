// Package parser implements the DICOM byte-stream parser engine: a pure
// recursive-descent walker that emits events to a Handler and never
// materializes an element or data set itself.
//
// Grounded in the teacher's element_parser.go/parser.go, generalized from a
// single DataSet-building walk into an event-driven engine so the same
// walker serves metadata building and File Meta parsing through the
// handler package's MetadataBuilder. Pixel-data frame indexing runs
// without a Handler, through ParsePixelDataIndex and ReadFrameBody.
package parser

import (
	"github.com/dicomwsi/dicomcore/dicom/dcmerr"
	"github.com/dicomwsi/dicomcore/dicom/dcmio"
	"github.com/dicomwsi/dicomcore/dicom/dcmlog"
	"github.com/dicomwsi/dicomcore/dicom/tag"
	"github.com/dicomwsi/dicomcore/dicom/vr"
)

// Handler receives parse events without knowing how the engine reached
// them. Engine is generic over Handler: swapping handlers changes what a
// parse run builds, not how it walks the stream.
type Handler interface {
	// DataSetBegin fires on entering a new data set, top-level or a
	// sequence item.
	DataSetBegin() error
	// DataSetEnd fires on leaving the data set most recently begun.
	DataSetEnd() error
	// SequenceBegin fires on entering an SQ element's value, before any
	// item's DataSetBegin.
	SequenceBegin(t tag.Tag) error
	// SequenceEnd fires on leaving an SQ element's value, after every
	// item's DataSetEnd.
	SequenceEnd(t tag.Tag) error
	// ElementCreate fires for a non-SQ element's fully-read value bytes,
	// numeric values left in the stream's byte order for the handler to
	// decode, one trailing pad byte trimmed for string VRs other than UI.
	// The handler may adopt data without copying; the
	// engine never touches it again.
	ElementCreate(t tag.Tag, v vr.VR, data []byte) error
	// Stop is queried after a top-level element's header has been read
	// but before its body is consumed. Returning true rewinds the stream
	// to the start of that header and ends the top-level parse.
	Stop(t tag.Tag, v vr.VR, length uint32) (bool, error)
}

const (
	itemTagValue             uint32 = 0xFFFEE000
	itemDelimiterTagValue    uint32 = 0xFFFEE00D
	sequenceDelimiterTagValue uint32 = 0xFFFEE0DD
)

// Engine walks a byte stream via recursive descent, dispatching events to
// a Handler.
type Engine struct {
	r          *dcmio.Reader
	implicitVR bool
	handler    Handler
}

// New returns an Engine reading from r. implicitVR selects Implicit VR
// Little Endian header parsing; otherwise elements are read as Explicit VR
// using r's current byte order.
func New(r *dcmio.Reader, implicitVR bool, handler Handler) *Engine {
	return &Engine{r: r, implicitVR: implicitVR, handler: handler}
}

// ParseTopLevelDataSet reads elements until end of stream or until
// Handler.Stop returns true, bracketed by a single DataSetBegin/DataSetEnd.
func (e *Engine) ParseTopLevelDataSet() error {
	if err := e.handler.DataSetBegin(); err != nil {
		return err
	}
	for {
		headerStart := e.r.Position()
		rawTag, eof, err := e.readRawTag(true)
		if eof {
			break
		}
		if err != nil {
			return err
		}

		t, v, length, err := e.readHeaderBody(rawTag)
		if err != nil {
			return err
		}

		stop, err := e.handler.Stop(t, v, length)
		if err != nil {
			return err
		}
		if stop {
			if err := e.r.Rewind(headerStart); err != nil {
				return err
			}
			break
		}

		if err := e.readBody(t, v, length); err != nil {
			return err
		}
	}
	return e.handler.DataSetEnd()
}

// readRawTag reads the 4 raw tag bytes of the next header, in stream
// order, without interpreting group/element order. allowEOF permits a
// clean end of stream before any byte of this call is consumed.
func (e *Engine) readRawTag(allowEOF bool) (rawTag [4]byte, eof bool, err error) {
	if allowEOF {
		eof, err = e.r.ReadFullOrEOF(rawTag[:])
		return rawTag, eof, err
	}
	err = e.r.ReadFull(rawTag[:])
	return rawTag, false, err
}

// decodeTag interprets raw tag bytes using the reader's current byte order.
func (e *Engine) decodeTag(rawTag [4]byte) tag.Tag {
	order := e.r.ByteOrder()
	return tag.New(order.Uint16(rawTag[0:2]), order.Uint16(rawTag[2:4]))
}

func (e *Engine) rawTagValue(rawTag [4]byte) uint32 {
	order := e.r.ByteOrder()
	return uint32(order.Uint16(rawTag[0:2]))<<16 | uint32(order.Uint16(rawTag[2:4]))
}

// readHeaderBody reads the VR and length fields following an already-read
// tag, resolving VR from the dictionary under Implicit VR.
func (e *Engine) readHeaderBody(rawTag [4]byte) (t tag.Tag, v vr.VR, length uint32, err error) {
	t = e.decodeTag(rawTag)

	if e.implicitVR {
		v, err = e.resolveImplicitVR(t)
		if err != nil {
			return tag.Tag{}, 0, 0, err
		}
		length, err = e.r.ReadUint32()
		return t, v, length, err
	}

	vrStr, err := e.r.ReadString(2)
	if err != nil {
		return tag.Tag{}, 0, 0, err
	}
	v, err = vr.Parse(vrStr)
	if err != nil {
		return tag.Tag{}, 0, 0, dcmerr.New(dcmerr.Parse, "invalid VR", vrStr)
	}

	if v.HeaderLength() == 4 {
		reserved, err := e.r.ReadUint16()
		if err != nil {
			return tag.Tag{}, 0, 0, err
		}
		if reserved != 0x0000 {
			return tag.Tag{}, 0, 0, dcmerr.New(dcmerr.Parse, "non-zero reserved bytes", t.String())
		}
		length, err = e.r.ReadUint32()
		return t, v, length, err
	}

	length16, err := e.r.ReadUint16()
	if err != nil {
		return tag.Tag{}, 0, 0, err
	}
	return t, v, uint32(length16), nil
}

// resolveImplicitVR looks up t's VR in the dictionary, choosing the
// canonical member when the tag has alternative VRs. Tags absent from the
// dictionary default to UN.
func (e *Engine) resolveImplicitVR(t tag.Tag) (vr.VR, error) {
	info, err := tag.Find(t)
	if err != nil || len(info.VRs) == 0 {
		dcmlog.Vprintf(2, "parser: tag %s absent from dictionary, defaulting to VR UN", t)
		return vr.Unknown, nil
	}
	return info.VRs[0], nil
}

// readBody reads an element's value and dispatches the resulting event(s),
// recursing into nested data sets for SQ.
func (e *Engine) readBody(t tag.Tag, v vr.VR, length uint32) error {
	if length == 0xFFFFFFFF {
		if v == vr.SequenceOfItems {
			return e.readSequence(t, true, 0)
		}
		return dcmerr.New(dcmerr.Parse, "undefined length for non-sequence VR", v.String())
	}

	if v == vr.SequenceOfItems {
		return e.readSequence(t, false, length)
	}

	data, err := e.r.ReadBytes(int(length))
	if err != nil {
		return err
	}
	data = swapAndTrim(v, data, e.r.ByteOrder())
	return e.handler.ElementCreate(t, v, data)
}

// readSequence reads an SQ element's items, emitting SequenceBegin, a
// DataSetBegin/DataSetEnd pair per item, then SequenceEnd.
func (e *Engine) readSequence(t tag.Tag, undefinedLength bool, length uint32) error {
	if err := e.handler.SequenceBegin(t); err != nil {
		return err
	}

	var end int64 = -1
	if !undefinedLength {
		end = e.r.Position() + int64(length)
	}

	for {
		if !undefinedLength && e.r.Position() >= end {
			break
		}

		rawTag, eof, err := e.readRawTag(undefinedLength)
		if eof {
			return dcmerr.New(dcmerr.Parse, "unterminated sequence", t.String())
		}
		if err != nil {
			return err
		}
		tv := e.rawTagValue(rawTag)

		itemLength, err := e.r.ReadUint32()
		if err != nil {
			return err
		}

		if tv == sequenceDelimiterTagValue {
			break
		}
		if tv != itemTagValue {
			return dcmerr.New(dcmerr.Parse, "expected Item tag", t.String())
		}

		if err := e.readItem(itemLength == 0xFFFFFFFF, itemLength); err != nil {
			return err
		}
	}

	return e.handler.SequenceEnd(t)
}

// readItem parses one SQ item's inner data set: a flat run of elements
// bracketed by DataSetBegin/DataSetEnd, terminated either by an Item
// Delimiter (undefined length) or after exactly length bytes.
func (e *Engine) readItem(undefinedLength bool, length uint32) error {
	if err := e.handler.DataSetBegin(); err != nil {
		return err
	}

	var end int64 = -1
	if !undefinedLength {
		end = e.r.Position() + int64(length)
	}

	for {
		if !undefinedLength && e.r.Position() >= end {
			break
		}

		rawTag, _, err := e.readRawTag(false)
		if err != nil {
			return err
		}

		if e.rawTagValue(rawTag) == itemDelimiterTagValue {
			if _, err := e.r.ReadUint32(); err != nil {
				return err
			}
			break
		}

		t, v, l, err := e.readHeaderBody(rawTag)
		if err != nil {
			return err
		}
		if err := e.readBody(t, v, l); err != nil {
			return err
		}
	}

	return e.handler.DataSetEnd()
}
