package parser

import (
	"github.com/dicomwsi/dicomcore/dicom/dcmerr"
	"github.com/dicomwsi/dicomcore/dicom/dcmio"
	"github.com/dicomwsi/dicomcore/dicom/dcmlog"
)

// PixelIndex is the result of scanning a Pixel Data element's framing
// without decoding any pixel bytes: where the first frame starts, and the
// per-frame byte offset of each subsequent frame, relative to that start.
type PixelIndex struct {
	// FirstFrameOffset is the absolute stream offset of the first frame's
	// item header (encapsulated) or first byte (native).
	FirstFrameOffset int64
	// Offsets holds one entry per frame beyond native sizing alone can't
	// determine: for encapsulated Pixel Data, each frame's byte offset
	// relative to FirstFrameOffset. Empty for native Pixel Data, whose
	// frames are computed directly from Rows/Columns/SamplesPerPixel.
	Offsets []uint32
	// Encapsulated reports whether Pixel Data uses the fragment/Item
	// encoding (undefined length) rather than a single contiguous value.
	Encapsulated bool
}

// ParsePixelDataIndex reads the Pixel Data element header at the current
// stream position and, for encapsulated data, its Basic Offset Table (or
// scans fragment Item headers if the table is empty).
func (e *Engine) ParsePixelDataIndex() (*PixelIndex, error) {
	rawTag, eof, err := e.readRawTag(true)
	if eof {
		return nil, dcmerr.New(dcmerr.IO, "unexpected end of stream", "pixel data element")
	}
	if err != nil {
		return nil, err
	}
	t, _, length, err := e.readHeaderBody(rawTag)
	if err != nil {
		return nil, err
	}
	if t.Group != 0x7FE0 || t.Element != 0x0010 {
		return nil, dcmerr.New(dcmerr.Parse, "expected Pixel Data element", t.String())
	}

	if length != 0xFFFFFFFF {
		return &PixelIndex{FirstFrameOffset: e.r.Position(), Encapsulated: false}, nil
	}

	botRawTag, _, err := e.readRawTag(false)
	if err != nil {
		return nil, err
	}
	if e.rawTagValue(botRawTag) != itemTagValue {
		return nil, dcmerr.New(dcmerr.Parse, "expected Basic Offset Table item", t.String())
	}
	botLength, err := e.r.ReadUint32()
	if err != nil {
		return nil, err
	}

	if botLength > 0 {
		botBytes, err := e.r.ReadBytes(int(botLength))
		if err != nil {
			return nil, err
		}
		order := e.r.ByteOrder()
		offsets := make([]uint32, len(botBytes)/4)
		for i := range offsets {
			offsets[i] = order.Uint32(botBytes[i*4 : i*4+4])
		}
		return &PixelIndex{
			FirstFrameOffset: e.r.Position(),
			Offsets:          offsets,
			Encapsulated:     true,
		}, nil
	}

	dcmlog.Vprintf(1, "parser: Basic Offset Table is empty, scanning fragment items for %s", t)
	firstFrameOffset := e.r.Position()
	var offsets []uint32
	for {
		itemRawTag, eof, err := e.readRawTag(true)
		if eof {
			return nil, dcmerr.New(dcmerr.Parse, "unterminated encapsulated pixel data", t.String())
		}
		if err != nil {
			return nil, err
		}
		itemHeaderOffset := e.r.Position() - 4
		tv := e.rawTagValue(itemRawTag)

		itemLength, err := e.r.ReadUint32()
		if err != nil {
			return nil, err
		}
		if tv == sequenceDelimiterTagValue {
			break
		}
		if tv != itemTagValue {
			return nil, dcmerr.New(dcmerr.Parse, "expected Item tag while scanning fragments", t.String())
		}

		offsets = append(offsets, uint32(itemHeaderOffset-firstFrameOffset))
		if itemLength > 0 {
			if _, err := e.r.Seek(int64(itemLength), dcmio.SeekCur); err != nil {
				return nil, err
			}
		}
	}

	return &PixelIndex{
		FirstFrameOffset: firstFrameOffset,
		Offsets:          offsets,
		Encapsulated:     true,
	}, nil
}

// ReadFrameBody reads one frame's raw pixel bytes with the stream
// positioned at that frame's offset (an item boundary for encapsulated
// data, or the frame's first byte for native data).
func (e *Engine) ReadFrameBody(encapsulated bool, rows, columns, samplesPerPixel, bitsAllocated uint16) ([]byte, error) {
	if encapsulated {
		rawTag, _, err := e.readRawTag(false)
		if err != nil {
			return nil, err
		}
		if e.rawTagValue(rawTag) != itemTagValue {
			return nil, dcmerr.New(dcmerr.Parse, "expected Item tag for frame", "")
		}
		length, err := e.r.ReadUint32()
		if err != nil {
			return nil, err
		}
		return e.r.ReadBytes(int(length))
	}

	bytesPerSample := int(bitsAllocated) / 8
	if bytesPerSample == 0 {
		bytesPerSample = 1
	}
	n := int(rows) * int(columns) * int(samplesPerPixel) * bytesPerSample
	return e.r.ReadBytes(n)
}
