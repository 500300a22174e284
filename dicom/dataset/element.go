// Package dataset provides the DICOM object model: Element, Data Set,
// Sequence, and Frame, with the ownership and lifecycle rules a parsed
// file's tree of nested Data Sets requires.
//
// Element, DataSet and Sequence live in one package (unlike the teacher's
// split element/dataset packages) because a Sequence owns DataSets and an
// SQ-typed Element owns a Sequence: a genuinely recursive relationship that
// a package split can't express without an import cycle.
package dataset

import (
	"fmt"

	"github.com/dicomwsi/dicomcore/dicom/tag"
	"github.com/dicomwsi/dicomcore/dicom/value"
	"github.com/dicomwsi/dicomcore/dicom/vr"
)

// Element is a single Data Element: a tag, its VR, and an owned value. For
// vr == SQ the element owns a *Sequence instead of a value.Value; the two
// are mutually exclusive.
type Element struct {
	tag      tag.Tag
	elemVR   vr.VR
	val      value.Value
	sequence *Sequence
}

// NewElement constructs a leaf Element from an already-built value.Value.
// It requires val.VR() == v, matching the source's create-then-set_value
// invariant once collapsed into a single call.
func NewElement(t tag.Tag, v vr.VR, val value.Value) (*Element, error) {
	if v == vr.SequenceOfItems {
		return nil, fmt.Errorf("dataset: use NewSequenceElement for vr SQ")
	}
	if val == nil {
		return nil, fmt.Errorf("dataset: element %s value must not be nil", t)
	}
	if val.VR() != v {
		return nil, fmt.Errorf("dataset: element %s value VR %s does not match declared VR %s", t, val.VR(), v)
	}
	return &Element{tag: t, elemVR: v, val: val}, nil
}

// NewSequenceElement constructs an SQ Element that owns seq. seq must not
// be nil; an empty Sequence is represented by a non-nil Sequence with zero
// items, never by a nil pointer.
func NewSequenceElement(t tag.Tag, seq *Sequence) (*Element, error) {
	if seq == nil {
		return nil, fmt.Errorf("dataset: element %s sequence must not be nil", t)
	}
	return &Element{tag: t, elemVR: vr.SequenceOfItems, sequence: seq}, nil
}

// Tag returns the element's tag.
func (e *Element) Tag() tag.Tag { return e.tag }

// VR returns the element's Value Representation.
func (e *Element) VR() vr.VR { return e.elemVR }

// Value returns the element's leaf value, or nil if this is an SQ element.
func (e *Element) Value() value.Value { return e.val }

// Sequence returns the element's owned Sequence, or nil if this is not an
// SQ element.
func (e *Element) Sequence() *Sequence { return e.sequence }

// Length returns the byte extent of the element's value: the encoded byte
// length for a leaf value, or 0 for a Sequence (sequences have no single
// byte length once expanded into owned items).
func (e *Element) Length() int {
	if e.val != nil {
		return len(e.val.Bytes())
	}
	return 0
}

// VM returns the element's Value Multiplicity: 0 for an empty value, the
// backslash-separated item count for StringMulti values, length/sizeof for
// numerics, and 1 for any other populated scalar value.
func (e *Element) VM() int {
	switch v := e.val.(type) {
	case nil:
		return 0
	case *value.StringValue:
		if v.VR().ClassOf() != vr.ClassStringMulti {
			if v.String() == "" {
				return 0
			}
			return 1
		}
		strs := v.Strings()
		if len(strs) == 0 {
			return 0
		}
		return len(strs)
	case *value.IntValue:
		return len(v.Ints())
	case *value.FloatValue:
		return len(v.Floats())
	case *value.BytesValue:
		if len(v.Bytes()) == 0 {
			return 0
		}
		return 1
	default:
		return 1
	}
}

func (e *Element) String() string {
	if e.sequence != nil {
		return fmt.Sprintf("%s SQ [%d items]", e.tag, e.sequence.Count())
	}
	return fmt.Sprintf("%s %s %s", e.tag, e.elemVR, e.val.String())
}
