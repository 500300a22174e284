// Package handler provides parser.Handler implementations that turn parse
// events into an owned object model: a Data Set tree, or a frame
// descriptor derived from one.
//
// Grounded in the teacher's DataSet.Add-based accumulation in
// element_parser.go/parser.go, restructured around an explicit builder
// stack so nested Sequences are built without recursion living in the
// dataset package itself.
package handler

import (
	"encoding/binary"

	"github.com/dicomwsi/dicomcore/dicom/charset"
	"github.com/dicomwsi/dicomcore/dicom/dataset"
	"github.com/dicomwsi/dicomcore/dicom/tag"
	"github.com/dicomwsi/dicomcore/dicom/value"
	"github.com/dicomwsi/dicomcore/dicom/vr"
)

// StopFunc decides, given a top-level element's tag/vr/length, whether a
// parse should halt before consuming that element's body.
type StopFunc func(t tag.Tag, v vr.VR, length uint32) (bool, error)

// StopOnTags halts at the first top-level element whose tag appears in
// tags.
func StopOnTags(tags []tag.Tag) StopFunc {
	set := make(map[tag.Tag]bool, len(tags))
	for _, t := range tags {
		set[t] = true
	}
	return func(t tag.Tag, _ vr.VR, _ uint32) (bool, error) {
		return set[t], nil
	}
}

// StopOnPixelData halts at Pixel Data (7FE0,0010), the minimum "expensive"
// tag every metadata subset read stops at.
func StopOnPixelData() StopFunc {
	return StopOnTags([]tag.Tag{tag.PixelData})
}

// MetadataBuilder implements parser.Handler by maintaining a stack of
// in-progress Data Set and Sequence builders, assembling them into an
// owned dataset.DataSet tree as events arrive.
type MetadataBuilder struct {
	byteOrder binary.ByteOrder
	stop      StopFunc
	text      *charset.Decoder

	dsStack  []*dataset.DataSet
	seqStack []*dataset.Sequence
	seqTag   []tag.Tag

	result *dataset.DataSet
}

// NewMetadataBuilder returns a builder that decodes numeric element bytes
// using byteOrder and halts the top-level parse according to stop (nil
// means never stop).
func NewMetadataBuilder(byteOrder binary.ByteOrder, stop StopFunc) *MetadataBuilder {
	return &MetadataBuilder{byteOrder: byteOrder, stop: stop}
}

// NewFileMetaBuilder returns a MetadataBuilder specialised for File Meta
// Information: no stop predicate, since parse_group already bounds the
// read to the group length. File Meta Information elements are never
// affected by SpecificCharacterSet, so no text decoder is attached.
func NewFileMetaBuilder() *MetadataBuilder {
	return NewMetadataBuilder(binary.LittleEndian, nil)
}

// SetTextDecoder installs the decoder used for VRs affected by
// SpecificCharacterSet from this point forward. ElementCreate installs one
// itself when it observes a (0008,0005) element it can resolve.
func (b *MetadataBuilder) SetTextDecoder(d *charset.Decoder) {
	b.text = d
}

// Result returns the top-level Data Set once parsing has completed.
func (b *MetadataBuilder) Result() *dataset.DataSet {
	return b.result
}

func (b *MetadataBuilder) DataSetBegin() error {
	b.dsStack = append(b.dsStack, dataset.New())
	return nil
}

func (b *MetadataBuilder) DataSetEnd() error {
	n := len(b.dsStack)
	ds := b.dsStack[n-1]
	b.dsStack = b.dsStack[:n-1]
	ds.Lock()

	if len(b.seqStack) > 0 {
		return b.seqStack[len(b.seqStack)-1].Append(ds)
	}
	b.result = ds
	return nil
}

func (b *MetadataBuilder) SequenceBegin(t tag.Tag) error {
	b.seqStack = append(b.seqStack, dataset.NewSequence())
	b.seqTag = append(b.seqTag, t)
	return nil
}

func (b *MetadataBuilder) SequenceEnd(t tag.Tag) error {
	n := len(b.seqStack)
	seq := b.seqStack[n-1]
	b.seqStack = b.seqStack[:n-1]
	b.seqTag = b.seqTag[:n-1]
	seq.Lock()

	elem, err := dataset.NewSequenceElement(t, seq)
	if err != nil {
		return err
	}
	return b.dsStack[len(b.dsStack)-1].Insert(elem)
}

func (b *MetadataBuilder) ElementCreate(t tag.Tag, v vr.VR, data []byte) error {
	val, err := decodeValue(v, data, b.byteOrder, b.text)
	if err != nil {
		return err
	}
	elem, err := dataset.NewElement(t, v, val)
	if err != nil {
		return err
	}
	if t == tag.SpecificCharacterSet {
		if sv, ok := val.(*value.StringValue); ok {
			if d, err := charset.ForSpecificCharacterSet(sv.Strings()); err == nil {
				b.text = d
			}
		}
	}
	return b.dsStack[len(b.dsStack)-1].Insert(elem)
}

func (b *MetadataBuilder) Stop(t tag.Tag, v vr.VR, length uint32) (bool, error) {
	if b.stop == nil {
		return false, nil
	}
	return b.stop(t, v, length)
}
