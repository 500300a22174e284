package handler

import (
	"github.com/dicomwsi/dicomcore/dicom/dataset"
	"github.com/dicomwsi/dicomcore/dicom/tag"
	"github.com/dicomwsi/dicomcore/dicom/value"
)

// FrameDescriptor carries the minimal fields a single-frame parser needs
// to size and interpret a frame's pixel bytes, plus an optional tiled-slide
// position index.
//
// Grounded in the "Frame index builder" of the source's handler design,
// but built by extracting fields from an already-parsed dataset.DataSet
// rather than by a dedicated streaming parser.Handler: ReadMetadataSubset
// already materializes every element up to (but excluding) Pixel Data,
// including PerFrameFunctionalGroupsSequence when present, so a second
// event-driven pass over the same bytes would duplicate work for no gain.
type FrameDescriptor struct {
	Rows                uint16
	Columns             uint16
	SamplesPerPixel     uint16
	BitsAllocated       uint16
	BitsStored          uint16
	HighBit             uint16
	PixelRepresentation uint16
	PlanarConfiguration uint16

	PhotometricInterpretation string

	// PositionMap maps (row, column) tile coordinates to a 1-based frame
	// number, populated from PerFrameFunctionalGroupsSequence's
	// PlanePositionSlideSequence items when the image is a tiled slide.
	// Nil when the data set carries no such sequence.
	PositionMap map[[2]int]int
}

// DescribeFrames extracts a FrameDescriptor from ds, the Data Set returned
// by a metadata read stopped at Pixel Data.
func DescribeFrames(ds *dataset.DataSet) (*FrameDescriptor, error) {
	d := &FrameDescriptor{
		Rows:                      uint16(firstInt(ds, tag.Rows)),
		Columns:                   uint16(firstInt(ds, tag.Columns)),
		SamplesPerPixel:           uint16(firstInt(ds, tag.SamplesPerPixel)),
		BitsAllocated:             uint16(firstInt(ds, tag.BitsAllocated)),
		BitsStored:                uint16(firstInt(ds, tag.BitsStored)),
		HighBit:                   uint16(firstInt(ds, tag.HighBit)),
		PixelRepresentation:       uint16(firstInt(ds, tag.PixelRepresentation)),
		PlanarConfiguration:       uint16(firstInt(ds, tag.PlanarConfiguration)),
		PhotometricInterpretation: firstString(ds, tag.PhotometricInterpretation),
	}

	groups := ds.Get(tag.PerFrameFunctionalGroupsSequence)
	if groups == nil || groups.Sequence() == nil {
		return d, nil
	}

	positions := make(map[[2]int]int)
	groups.Sequence().ForEach(func(item *dataset.DataSet, index int) bool {
		planePos := item.Get(tag.PlanePositionSlideSequence)
		if planePos == nil || planePos.Sequence() == nil || planePos.Sequence().Count() == 0 {
			return true
		}
		slideItem := planePos.Sequence().Get(0)
		col := int(firstInt(slideItem, tag.ColumnPositionInTotalImagePixelMatrix))
		row := int(firstInt(slideItem, tag.RowPositionInTotalImagePixelMatrix))
		positions[[2]int{row, col}] = index + 1
		return true
	})
	d.PositionMap = positions
	return d, nil
}

func firstInt(ds *dataset.DataSet, t tag.Tag) int64 {
	elem := ds.Get(t)
	if elem == nil {
		return 0
	}
	iv, ok := elem.Value().(*value.IntValue)
	if !ok {
		return 0
	}
	ints := iv.Ints()
	if len(ints) == 0 {
		return 0
	}
	return ints[0]
}

func firstString(ds *dataset.DataSet, t tag.Tag) string {
	elem := ds.Get(t)
	if elem == nil {
		return ""
	}
	return elem.Value().String()
}
