package handler

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/dicomwsi/dicomcore/dicom/charset"
	"github.com/dicomwsi/dicomcore/dicom/value"
	"github.com/dicomwsi/dicomcore/dicom/vr"
)

// decodeValue turns an element's already-read, already-trimmed value bytes
// into a typed value.Value, dispatching on the VR's class the same way the
// teacher's readStringValue/readIntValue/readFloatValue/readBytesValue did
// before being collapsed into a single VR-class switch. text decodes VRs
// affected by SpecificCharacterSet; a nil text leaves bytes as plain ASCII.
func decodeValue(v vr.VR, data []byte, order binary.ByteOrder, text *charset.Decoder) (value.Value, error) {
	switch v.ClassOf() {
	case vr.ClassStringSingle:
		return value.NewStringValue(v, []string{decodeText(v, string(data), text)})

	case vr.ClassStringMulti:
		str := string(data)
		var values []string
		if str != "" {
			parts := strings.Split(str, "\\")
			values = make([]string, len(parts))
			for i, p := range parts {
				values[i] = decodeText(v, p, text)
			}
		}
		return value.NewStringValue(v, values)

	case vr.ClassNumericInteger:
		return decodeIntValue(v, data, order)

	case vr.ClassNumericDecimal:
		return decodeFloatValue(v, data, order)

	case vr.ClassBinary:
		return value.NewBytesValue(v, data)

	default:
		return value.NewBytesValue(vr.Unknown, data)
	}
}

func decodeText(v vr.VR, s string, text *charset.Decoder) string {
	if !v.AffectedBySpecificCharacterSet() {
		return s
	}
	return text.Decode(s)
}

func decodeIntValue(v vr.VR, data []byte, order binary.ByteOrder) (*value.IntValue, error) {
	width := v.SizeOf()
	if width == 0 {
		width = 4
	}
	if len(data)%width != 0 {
		return nil, fmt.Errorf("handler: length %d not a multiple of %d for VR %s", len(data), width, v)
	}

	n := len(data) / width
	values := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		chunk := data[i*width : (i+1)*width]
		switch width {
		case 2:
			u16 := order.Uint16(chunk)
			if v == vr.SignedShort {
				values = append(values, int64(int16(u16)))
			} else {
				values = append(values, int64(u16))
			}
		case 4:
			u32 := order.Uint32(chunk)
			if v == vr.SignedLong {
				values = append(values, int64(int32(u32)))
			} else if v == vr.AttributeTag {
				// AT is a group then an element, each a 16-bit value.
				values = append(values, int64(order.Uint16(chunk))<<16|int64(order.Uint16(chunk[2:])))
			} else {
				values = append(values, int64(u32))
			}
		case 8:
			values = append(values, int64(order.Uint64(chunk)))
		}
	}
	return value.NewIntValue(v, values)
}

func decodeFloatValue(v vr.VR, data []byte, order binary.ByteOrder) (*value.FloatValue, error) {
	width := v.SizeOf()
	if len(data)%width != 0 {
		return nil, fmt.Errorf("handler: length %d not a multiple of %d for VR %s", len(data), width, v)
	}

	n := len(data) / width
	values := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		chunk := data[i*width : (i+1)*width]
		if width == 4 {
			values = append(values, float64(math.Float32frombits(order.Uint32(chunk))))
		} else {
			values = append(values, math.Float64frombits(order.Uint64(chunk)))
		}
	}
	return value.NewFloatValue(v, values)
}
