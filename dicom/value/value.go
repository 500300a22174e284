// Package value implements the VR-class tagged union an Element's value
// holds: one Go type per VR class from spec section 6.2 of DICOM Part 5,
// rather than one type per VR.
//
// Classification is delegated to vr.VR.ClassOf()/MaxLength()/SizeOf() so
// this package has exactly one place to update when a VR's class changes,
// instead of carrying its own parallel classification tables.
package value

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dicomwsi/dicomcore/dicom/vr"
)

// Value is an Element's typed payload: whichever Go type its VR's class
// dictates.
type Value interface {
	VR() vr.VR
	// Bytes returns the value re-encoded to its wire form. Of the string
	// VRs only UI is padded to even length (with a null byte); the others
	// are returned unpadded (see StringValue.Bytes).
	Bytes() []byte
	String() string
	Equals(other Value) bool
}

// StringValue holds the StringSingle and StringMulti classes: LT/ST/UT/UR
// (one text scalar) and AE/AS/CS/DA/DS/DT/IS/LO/PN/SH/TM/UI/UC (one or more
// backslash-separated items). The two classes share a representation here
// because both store `[]string` and differ only in whether more than one
// item is meaningful; VM() in the dataset package is what tells them apart.
type StringValue struct {
	vr     vr.VR
	values []string
}

// NewStringValue builds a StringValue for v, rejecting a VR outside the two
// string classes or any item exceeding v's DICOM Part 5 length limit.
func NewStringValue(v vr.VR, values []string) (*StringValue, error) {
	if !v.IsStringType() {
		return nil, fmt.Errorf("value: VR %s is not a string type", v)
	}
	if max := v.MaxLength(); max > 0 {
		for _, val := range values {
			if len(val) > max {
				return nil, fmt.Errorf("value: %q exceeds %s's %d-character limit", val, v, max)
			}
		}
	}
	return &StringValue{vr: v, values: values}, nil
}

func (s *StringValue) VR() vr.VR { return s.vr }

// Strings returns the backslash-split items as stored, unjoined.
func (s *StringValue) Strings() []string { return s.values }

// String joins the items with DICOM's backslash separator.
func (s *StringValue) String() string {
	return strings.Join(s.values, "\\")
}

// Bytes re-encodes the joined string, null-padding UI to even length (every
// other string VR pads with space, handled by the caller that frames the
// element; this package only owns the value, not the header padding rule
// sibling VRs share).
func (s *StringValue) Bytes() []byte {
	if len(s.values) == 0 {
		return []byte{}
	}
	joined := strings.Join(s.values, "\\")
	if s.vr == vr.UniqueIdentifier && len(joined)%2 == 1 {
		joined += "\x00"
	}
	return []byte(joined)
}

func (s *StringValue) Equals(other Value) bool {
	o, ok := other.(*StringValue)
	return ok && s.vr == o.vr && stringSlicesEqual(s.values, o.values)
}

var _ Value = (*StringValue)(nil)

// BytesValue holds the Binary class: OB, OW, UN — an opaque byte array with
// no further structure this package interprets.
type BytesValue struct {
	vr   vr.VR
	data []byte
}

// NewBytesValue builds a BytesValue for v. A nil data slice is normalised to
// an empty one so Equals/Bytes never distinguish "no bytes" from "nil".
func NewBytesValue(v vr.VR, data []byte) (*BytesValue, error) {
	if v.ClassOf() != vr.ClassBinary {
		return nil, fmt.Errorf("value: VR %s is not a binary type", v)
	}
	if data == nil {
		data = []byte{}
	}
	return &BytesValue{vr: v, data: data}, nil
}

func (b *BytesValue) VR() vr.VR { return b.vr }

// Bytes returns the stored bytes, null-padded to even length.
func (b *BytesValue) Bytes() []byte {
	if len(b.data)%2 == 1 {
		padded := make([]byte, len(b.data)+1)
		copy(padded, b.data)
		return padded
	}
	return b.data
}

// String renders a hex dump, truncated past 16 bytes so large pixel/overlay
// buffers don't flood a log line.
func (b *BytesValue) String() string {
	const shown = 16
	if len(b.data) == 0 {
		return "[]"
	}
	n := len(b.data)
	truncated := n > shown
	if truncated {
		n = shown
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("%02X", b.data[i])
	}
	out := "[" + strings.Join(parts, " ")
	if truncated {
		out += fmt.Sprintf(" ... (%d bytes)", len(b.data))
	}
	return out + "]"
}

func (b *BytesValue) Equals(other Value) bool {
	o, ok := other.(*BytesValue)
	if !ok || b.vr != o.vr {
		return false
	}
	return byteSlicesEqual(b.data, o.data)
}

var _ Value = (*BytesValue)(nil)

// IntValue holds the NumericInteger class: SS, US, SL, UL, SV, UV, AT, OL,
// OV — fixed-width integers widened to int64 for storage regardless of the
// VR's native signedness/width.
type IntValue struct {
	vr     vr.VR
	values []int64
}

// intRanges bounds each NumericInteger VR's native width/signedness, since
// int64 storage alone can't reject an out-of-range value at construction.
var intRanges = map[vr.VR][2]int64{
	vr.SignedShort:      {-32768, 32767},
	vr.UnsignedShort:    {0, 65535},
	vr.SignedLong:       {-2147483648, 2147483647},
	vr.UnsignedLong:     {0, 4294967295},
	vr.AttributeTag:     {0, 4294967295},
	vr.OtherLong:        {0, 4294967295},
	vr.SignedVeryLong:   {math.MinInt64, math.MaxInt64},
	vr.UnsignedVeryLong: {0, math.MaxInt64}, // uint64's upper half is unrepresentable in int64
	vr.OtherVeryLong:    {0, math.MaxInt64}, // same native width/signedness as UV
}

// NewIntValue builds an IntValue for v, rejecting a non-NumericInteger VR or
// any value outside v's native range.
func NewIntValue(v vr.VR, values []int64) (*IntValue, error) {
	if v.ClassOf() != vr.ClassNumericInteger {
		return nil, fmt.Errorf("value: VR %s is not an integer type", v)
	}
	bounds, ok := intRanges[v]
	if !ok {
		return nil, fmt.Errorf("value: VR %s has no known integer range", v)
	}
	for _, val := range values {
		if val < bounds[0] || val > bounds[1] {
			return nil, fmt.Errorf("value: %d out of range for %s: [%d, %d]", val, v, bounds[0], bounds[1])
		}
	}
	return &IntValue{vr: v, values: values}, nil
}

func (i *IntValue) VR() vr.VR { return i.vr }

func (i *IntValue) Ints() []int64 { return i.values }

func (i *IntValue) String() string {
	parts := make([]string, len(i.values))
	for idx, val := range i.values {
		parts[idx] = strconv.FormatInt(val, 10)
	}
	return strings.Join(parts, "\\")
}

// Bytes encodes each value little-endian at its VR's native width. AT packs
// as two uint16 halves (group, element) rather than one 32-bit integer.
func (i *IntValue) Bytes() []byte {
	width := i.vr.SizeOf()
	out := make([]byte, len(i.values)*width)
	for idx, val := range i.values {
		chunk := out[idx*width:]
		switch {
		case i.vr == vr.AttributeTag:
			binary.LittleEndian.PutUint16(chunk, uint16(val>>16))
			binary.LittleEndian.PutUint16(chunk[2:], uint16(val))
		case width == 2:
			binary.LittleEndian.PutUint16(chunk, uint16(val))
		case width == 4:
			binary.LittleEndian.PutUint32(chunk, uint32(val))
		case width == 8:
			binary.LittleEndian.PutUint64(chunk, uint64(val))
		}
	}
	return out
}

func (i *IntValue) Equals(other Value) bool {
	o, ok := other.(*IntValue)
	return ok && i.vr == o.vr && int64SlicesEqual(i.values, o.values)
}

var _ Value = (*IntValue)(nil)

// FloatValue holds the NumericDecimal class: FL, FD, OF, OD — IEEE 754
// values stored as float64 regardless of the VR's native width. NaN and
// +/-Inf are accepted: DICOM imposes no range restriction on these VRs
// beyond the bit width, and computed pixel statistics can legitimately
// produce them.
type FloatValue struct {
	vr     vr.VR
	values []float64
}

// NewFloatValue builds a FloatValue for v, rejecting a non-NumericDecimal VR.
func NewFloatValue(v vr.VR, values []float64) (*FloatValue, error) {
	if v.ClassOf() != vr.ClassNumericDecimal {
		return nil, fmt.Errorf("value: VR %s is not a floating-point type", v)
	}
	return &FloatValue{vr: v, values: values}, nil
}

func (f *FloatValue) VR() vr.VR { return f.vr }

func (f *FloatValue) Floats() []float64 { return f.values }

func (f *FloatValue) String() string {
	parts := make([]string, len(f.values))
	for idx, val := range f.values {
		parts[idx] = formatFloat(val)
	}
	return strings.Join(parts, "\\")
}

func formatFloat(val float64) string {
	switch {
	case math.IsNaN(val):
		return "NaN"
	case math.IsInf(val, 1):
		return "+Inf"
	case math.IsInf(val, -1):
		return "-Inf"
	default:
		return strconv.FormatFloat(val, 'g', -1, 64)
	}
}

// Bytes encodes each value little-endian IEEE 754 at its VR's native width
// (4 bytes for FL/OF, 8 for FD/OD).
func (f *FloatValue) Bytes() []byte {
	width := f.vr.SizeOf()
	out := make([]byte, len(f.values)*width)
	for idx, val := range f.values {
		chunk := out[idx*width:]
		if width == 4 {
			binary.LittleEndian.PutUint32(chunk, math.Float32bits(float32(val)))
		} else {
			binary.LittleEndian.PutUint64(chunk, math.Float64bits(val))
		}
	}
	return out
}

// Equals treats two NaNs as equal, unlike IEEE 754 comparison, so a value
// round-tripped through parse-then-clone still compares equal to itself.
func (f *FloatValue) Equals(other Value) bool {
	o, ok := other.(*FloatValue)
	if !ok || f.vr != o.vr || len(f.values) != len(o.values) {
		return false
	}
	for idx := range f.values {
		a, b := f.values[idx], o.values[idx]
		if math.IsNaN(a) && math.IsNaN(b) {
			continue
		}
		if a != b {
			return false
		}
	}
	return true
}

var _ Value = (*FloatValue)(nil)

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func int64SlicesEqual(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func byteSlicesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
