package handler_test

import (
	"encoding/binary"
	"testing"

	"github.com/dicomwsi/dicomcore/dicom/dataset"
	"github.com/dicomwsi/dicomcore/dicom/handler"
	"github.com/dicomwsi/dicomcore/dicom/tag"
	"github.com/dicomwsi/dicomcore/dicom/value"
	"github.com/dicomwsi/dicomcore/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIntBytes(t *testing.T, v vr.VR, vals []int64) []byte {
	t.Helper()
	iv, err := value.NewIntValue(v, vals)
	require.NoError(t, err)
	return iv.Bytes()
}

func mustStringBytes(t *testing.T, v vr.VR, vals []string) []byte {
	t.Helper()
	sv, err := value.NewStringValue(v, vals)
	require.NoError(t, err)
	return sv.Bytes()
}

func TestMetadataBuilder_FlatDataSet(t *testing.T) {
	b := handler.NewMetadataBuilder(binary.LittleEndian, nil)
	require.NoError(t, b.DataSetBegin())
	require.NoError(t, b.ElementCreate(tag.PatientName, vr.PersonName, mustStringBytes(t, vr.PersonName, []string{"Doe^Jane"})))
	require.NoError(t, b.ElementCreate(tag.Rows, vr.UnsignedShort, mustIntBytes(t, vr.UnsignedShort, []int64{512})))
	require.NoError(t, b.DataSetEnd())

	result := b.Result()
	require.NotNil(t, result)
	assert.True(t, result.IsLocked())
	assert.Equal(t, 2, result.Count())
	assert.Equal(t, "Doe^Jane", result.Get(tag.PatientName).Value().String())
}

func TestMetadataBuilder_NestedSequence(t *testing.T) {
	b := handler.NewMetadataBuilder(binary.LittleEndian, nil)
	require.NoError(t, b.DataSetBegin())
	require.NoError(t, b.SequenceBegin(tag.PlanePositionSequence))
	require.NoError(t, b.DataSetBegin())
	require.NoError(t, b.ElementCreate(tag.Rows, vr.UnsignedShort, mustIntBytes(t, vr.UnsignedShort, []int64{64})))
	require.NoError(t, b.DataSetEnd())
	require.NoError(t, b.SequenceEnd(tag.PlanePositionSequence))
	require.NoError(t, b.DataSetEnd())

	result := b.Result()
	elem := result.Get(tag.PlanePositionSequence)
	require.NotNil(t, elem)
	require.NotNil(t, elem.Sequence())
	assert.Equal(t, 1, elem.Sequence().Count())
	assert.True(t, elem.Sequence().IsLocked())
	item := elem.Sequence().Get(0)
	assert.Equal(t, int64(64), item.Get(tag.Rows).Value().(*value.IntValue).Ints()[0])
}

func TestMetadataBuilder_StopOnTags(t *testing.T) {
	stop := handler.StopOnTags([]tag.Tag{tag.PixelData})
	halt, err := stop(tag.PixelData, vr.OtherWord, 100)
	require.NoError(t, err)
	assert.True(t, halt)

	halt, err = stop(tag.PatientName, vr.PersonName, 8)
	require.NoError(t, err)
	assert.False(t, halt)
}

func TestMetadataBuilder_SpecificCharacterSetDecodesLaterElements(t *testing.T) {
	b := handler.NewMetadataBuilder(binary.LittleEndian, nil)
	require.NoError(t, b.DataSetBegin())
	require.NoError(t, b.ElementCreate(tag.SpecificCharacterSet, vr.CodeString, mustStringBytes(t, vr.CodeString, []string{"ISO_IR 100"})))
	// 0xE9 in ISO-8859-1 is U+00E9 (é); PN is a charset-decoded VR.
	require.NoError(t, b.ElementCreate(tag.PatientName, vr.PersonName, []byte{0xE9}))
	require.NoError(t, b.DataSetEnd())

	result := b.Result()
	assert.Equal(t, "é", result.Get(tag.PatientName).Value().String())
}

func TestMetadataBuilder_StopNilNeverHalts(t *testing.T) {
	b := handler.NewFileMetaBuilder()
	halt, err := b.Stop(tag.PixelData, vr.OtherWord, 100)
	require.NoError(t, err)
	assert.False(t, halt)
}

func buildFrameDataSet(t *testing.T) *dataset.DataSet {
	t.Helper()
	ds := dataset.New()
	ints := map[tag.Tag]int64{
		tag.Rows:                512,
		tag.Columns:             256,
		tag.SamplesPerPixel:     1,
		tag.BitsAllocated:       8,
		tag.BitsStored:          8,
		tag.HighBit:             7,
		tag.PixelRepresentation: 0,
		tag.PlanarConfiguration: 0,
	}
	for tg, v := range ints {
		iv, err := value.NewIntValue(vr.UnsignedShort, []int64{v})
		require.NoError(t, err)
		elem, err := dataset.NewElement(tg, vr.UnsignedShort, iv)
		require.NoError(t, err)
		require.NoError(t, ds.Insert(elem))
	}
	sv, err := value.NewStringValue(vr.CodeString, []string{"MONOCHROME2"})
	require.NoError(t, err)
	pi, err := dataset.NewElement(tag.PhotometricInterpretation, vr.CodeString, sv)
	require.NoError(t, err)
	require.NoError(t, ds.Insert(pi))
	return ds
}

func TestDescribeFrames_NoSequenceYieldsNilPositionMap(t *testing.T) {
	ds := buildFrameDataSet(t)
	desc, err := handler.DescribeFrames(ds)
	require.NoError(t, err)
	assert.Equal(t, uint16(512), desc.Rows)
	assert.Equal(t, uint16(256), desc.Columns)
	assert.Equal(t, "MONOCHROME2", desc.PhotometricInterpretation)
	assert.Nil(t, desc.PositionMap)
}

func TestDescribeFrames_TiledPositionMap(t *testing.T) {
	ds := buildFrameDataSet(t)

	seq := dataset.NewSequence()
	for i, pos := range [][2]int64{{0, 0}, {0, 1}} {
		item := dataset.New()
		slideItem := dataset.New()
		col, err := value.NewIntValue(vr.SignedLong, []int64{pos[1]})
		require.NoError(t, err)
		row, err := value.NewIntValue(vr.SignedLong, []int64{pos[0]})
		require.NoError(t, err)
		colElem, err := dataset.NewElement(tag.ColumnPositionInTotalImagePixelMatrix, vr.SignedLong, col)
		require.NoError(t, err)
		rowElem, err := dataset.NewElement(tag.RowPositionInTotalImagePixelMatrix, vr.SignedLong, row)
		require.NoError(t, err)
		require.NoError(t, slideItem.Insert(colElem))
		require.NoError(t, slideItem.Insert(rowElem))

		slideSeq := dataset.NewSequence()
		require.NoError(t, slideSeq.Append(slideItem))
		slideElem, err := dataset.NewSequenceElement(tag.PlanePositionSlideSequence, slideSeq)
		require.NoError(t, err)
		require.NoError(t, item.Insert(slideElem))
		require.NoError(t, seq.Append(item))
		_ = i
	}

	groupsElem, err := dataset.NewSequenceElement(tag.PerFrameFunctionalGroupsSequence, seq)
	require.NoError(t, err)
	require.NoError(t, ds.Insert(groupsElem))

	desc, err := handler.DescribeFrames(ds)
	require.NoError(t, err)
	require.NotNil(t, desc.PositionMap)
	n, ok := desc.PositionMap[[2]int{0, 0}]
	require.True(t, ok)
	assert.Equal(t, 1, n)
	n, ok = desc.PositionMap[[2]int{0, 1}]
	require.True(t, ok)
	assert.Equal(t, 2, n)
}
