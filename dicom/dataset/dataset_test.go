package dataset_test

import (
	"testing"

	"github.com/dicomwsi/dicomcore/dicom/dataset"
	"github.com/dicomwsi/dicomcore/dicom/tag"
	"github.com/dicomwsi/dicomcore/dicom/value"
	"github.com/dicomwsi/dicomcore/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustElement(t *testing.T, tg tag.Tag, v vr.VR, val value.Value) *dataset.Element {
	t.Helper()
	e, err := dataset.NewElement(tg, v, val)
	require.NoError(t, err)
	return e
}

func mustString(t *testing.T, v vr.VR, values []string) *value.StringValue {
	t.Helper()
	sv, err := value.NewStringValue(v, values)
	require.NoError(t, err)
	return sv
}

func TestDataSet_InsertRejectsDuplicateTag(t *testing.T) {
	ds := dataset.New()
	e1 := mustElement(t, tag.PatientName, vr.PersonName, mustString(t, vr.PersonName, []string{"Doe^Jane"}))
	e2 := mustElement(t, tag.PatientName, vr.PersonName, mustString(t, vr.PersonName, []string{"Roe^Jo"}))

	require.NoError(t, ds.Insert(e1))
	err := ds.Insert(e2)
	assert.Error(t, err)
	assert.Equal(t, 1, ds.Count())
	assert.Equal(t, "Doe^Jane", ds.Get(tag.PatientName).Value().String())
}

func TestDataSet_RemoveMissingFails(t *testing.T) {
	ds := dataset.New()
	err := ds.Remove(tag.PatientName)
	assert.Error(t, err)
}

func TestDataSet_LockRejectsMutation(t *testing.T) {
	ds := dataset.New()
	e := mustElement(t, tag.PatientID, vr.LongString, mustString(t, vr.LongString, []string{"123"}))
	require.NoError(t, ds.Insert(e))

	ds.Lock()
	assert.True(t, ds.IsLocked())

	other := mustElement(t, tag.PatientName, vr.PersonName, mustString(t, vr.PersonName, []string{"X"}))
	assert.Error(t, ds.Insert(other))
	assert.Error(t, ds.Remove(tag.PatientID))
	assert.Equal(t, 1, ds.Count(), "a failed insert/remove must not mutate a locked data set")
}

func TestDataSet_CopyTagsAscending(t *testing.T) {
	ds := dataset.New()
	require.NoError(t, ds.Insert(mustElement(t, tag.PatientName, vr.PersonName, mustString(t, vr.PersonName, []string{"A"}))))
	require.NoError(t, ds.Insert(mustElement(t, tag.New(0x0008, 0x0016), vr.UniqueIdentifier, mustString(t, vr.UniqueIdentifier, []string{"1.2"}))))
	require.NoError(t, ds.Insert(mustElement(t, tag.StudyInstanceUID, vr.UniqueIdentifier, mustString(t, vr.UniqueIdentifier, []string{"1.3"}))))

	tags := ds.CopyTags()
	require.Len(t, tags, ds.Count())
	for i := 1; i < len(tags); i++ {
		assert.Less(t, tags[i-1].Compare(tags[i]), 0, "tags must be strictly ascending")
	}
}

func TestDataSet_ForEachEarlyTermination(t *testing.T) {
	ds := dataset.New()
	require.NoError(t, ds.Insert(mustElement(t, tag.PatientName, vr.PersonName, mustString(t, vr.PersonName, []string{"A"}))))
	require.NoError(t, ds.Insert(mustElement(t, tag.PatientID, vr.LongString, mustString(t, vr.LongString, []string{"B"}))))

	visited := 0
	all := ds.ForEach(func(e *dataset.Element) bool {
		visited++
		return false
	})
	assert.False(t, all)
	assert.Equal(t, 1, visited)

	visited = 0
	all = ds.ForEach(func(e *dataset.Element) bool {
		visited++
		return true
	})
	assert.True(t, all)
	assert.Equal(t, ds.Count(), visited)
}

func TestDataSet_CloneIsIndependentAndUnlocked(t *testing.T) {
	ds := dataset.New()
	require.NoError(t, ds.Insert(mustElement(t, tag.PatientName, vr.PersonName, mustString(t, vr.PersonName, []string{"Doe^Jane"}))))
	ds.Lock()

	clone := ds.Clone()
	assert.False(t, clone.IsLocked())
	assert.Equal(t, ds.Count(), clone.Count())

	require.NoError(t, clone.Remove(tag.PatientName))
	assert.Equal(t, 0, clone.Count())
	assert.Equal(t, 1, ds.Count(), "mutating a clone must not affect the source")
}

func TestSequence_AppendGetLock(t *testing.T) {
	seq := dataset.NewSequence()
	item := dataset.New()
	require.NoError(t, item.Insert(mustElement(t, tag.PatientName, vr.PersonName, mustString(t, vr.PersonName, []string{"A"}))))

	require.NoError(t, seq.Append(item))
	assert.Equal(t, 1, seq.Count())
	assert.Equal(t, item, seq.Get(0))
	assert.Nil(t, seq.Get(1))

	seq.Lock()
	assert.Error(t, seq.Append(dataset.New()))
	assert.Error(t, seq.Remove(0))
}

func TestElement_VMForStringMulti(t *testing.T) {
	e := mustElement(t, tag.ImagePositionPatient, vr.DecimalString, mustString(t, vr.DecimalString, []string{"1", "2", "3"}))
	assert.Equal(t, 3, e.VM())
}

func TestElement_VMForEmptyValue(t *testing.T) {
	e := mustElement(t, tag.PatientID, vr.LongString, mustString(t, vr.LongString, nil))
	assert.Equal(t, 0, e.VM())
}

func TestNewSequenceElement_RejectsNilSequence(t *testing.T) {
	_, err := dataset.NewSequenceElement(tag.PlanePositionSequence, nil)
	assert.Error(t, err)
}

func TestNewFrame_RejectsZeroNumber(t *testing.T) {
	_, err := dataset.NewFrame(0, []byte{1, 2}, 4, 4, 1, 8, 8, 7, 0, 0, "MONOCHROME2", "1.2.840.10008.1.2.1")
	assert.Error(t, err)
}

func TestNewFrame_OwnsBytes(t *testing.T) {
	f, err := dataset.NewFrame(1, []byte{1, 2, 3, 4}, 2, 2, 1, 8, 8, 7, 0, 0, "MONOCHROME2", "1.2.840.10008.1.2.1")
	require.NoError(t, err)
	assert.Equal(t, 4, f.Length())
}
