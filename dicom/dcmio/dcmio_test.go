package dcmio_test

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/dicomwsi/dicomcore/dicom/dcmio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_ReadSeek(t *testing.T) {
	src := dcmio.NewMemory([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	buf := make([]byte, 4)
	n, err := src.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{1, 2, 3, 4}, buf)

	pos, err := src.Seek(0, dcmio.SeekSet)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)

	pos, err = src.Seek(100, dcmio.SeekSet)
	require.NoError(t, err)
	assert.Equal(t, int64(8), pos, "seek past end clamps to length")
}

func TestReader_ReadUint16Uint32(t *testing.T) {
	data := []byte{0x01, 0x00, 0x02, 0x00, 0x00, 0x00}
	r := dcmio.NewReader(dcmio.NewMemory(data), binary.LittleEndian)

	v16, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(1), v16)

	v32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(2), v32)
	assert.Equal(t, int64(6), r.Position())
}

func TestReader_RewindToElementHeader(t *testing.T) {
	data := make([]byte, 16)
	r := dcmio.NewReader(dcmio.NewMemory(data), binary.LittleEndian)

	headerStart := r.Position()
	_, err := r.ReadUint32()
	require.NoError(t, err)
	require.NoError(t, r.Rewind(headerStart))
	assert.Equal(t, headerStart, r.Position())
}

func TestFile_BufferedReadAndSeekInvalidation(t *testing.T) {
	tmp, err := os.CreateTemp(t.TempDir(), "dcmio")
	require.NoError(t, err)
	_, err = tmp.Write([]byte("0123456789ABCDEF"))
	require.NoError(t, err)
	require.NoError(t, tmp.Close())

	src, err := dcmio.OpenFile(tmp.Name())
	require.NoError(t, err)
	defer src.Close()

	buf := make([]byte, 4)
	n, err := src.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, "0123", string(buf))

	pos, err := src.Seek(10, dcmio.SeekSet)
	require.NoError(t, err)
	assert.Equal(t, int64(10), pos)

	n, err = src.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "ABCD", string(buf[:n]))
}
