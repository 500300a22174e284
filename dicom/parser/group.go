package parser

import "github.com/dicomwsi/dicomcore/dicom/vr"

// ParseGroup reads a single group whose first element is (gggg,0000), VR
// UL, value length 4, carrying the group's total byte length. It reads
// exactly that many bytes of following elements. Used for File Meta
// Information (group 0x0002), which parse_toplevel_dataset can't bound on
// its own since it has no group-length-aware stop condition.
func (e *Engine) ParseGroup() error {
	if err := e.handler.DataSetBegin(); err != nil {
		return err
	}

	rawTag, eof, err := e.readRawTag(true)
	if eof {
		return e.handler.DataSetEnd()
	}
	if err != nil {
		return err
	}
	t, v, length, err := e.readHeaderBody(rawTag)
	if err != nil {
		return err
	}

	data, err := e.r.ReadBytes(int(length))
	if err != nil {
		return err
	}
	if err := e.handler.ElementCreate(t, v, swapAndTrim(v, data, e.r.ByteOrder())); err != nil {
		return err
	}

	var groupLength uint32
	if v == vr.UnsignedLong && len(data) == 4 {
		groupLength = e.r.ByteOrder().Uint32(data)
	}

	end := e.r.Position() + int64(groupLength)
	for e.r.Position() < end {
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
		if err := e.readBody(t, v, length); err != nil {
			return err
		}
	}

	return e.handler.DataSetEnd()
}
