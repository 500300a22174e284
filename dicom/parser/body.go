package parser

import (
	"encoding/binary"

	"github.com/dicomwsi/dicomcore/dicom/vr"
)

// swapAndTrim prepares an element's raw value bytes for ElementCreate.
// String values have at most one trailing pad byte trimmed, except UI,
// whose trailing null pad (if any) is always retained; numeric values are
// left in stream order; Handler implementations decode them with the same
// byte order the engine is reading with, making a separate fixed-endian
// swap at this layer redundant.
func swapAndTrim(v vr.VR, data []byte, _ binary.ByteOrder) []byte {
	if v == vr.UniqueIdentifier {
		return data
	}
	if v.ClassOf() == vr.ClassStringSingle || v.ClassOf() == vr.ClassStringMulti {
		if len(data) > 0 && data[len(data)-1] == v.PaddingByte() {
			return data[:len(data)-1]
		}
	}
	return data
}
