// Package dicom is the high-level entry point: it drives the parser engine
// with the appropriate handler per phase, caches File Meta Information and
// a metadata subset, and exposes random frame access without reading an
// entire whole-slide file into memory.
//
// Grounded in the teacher's dicom.Reader (dicom/reader.go), which owns an
// *os.File and walks it phase by phase; Filehandle generalizes that into an
// explicit state machine over the dcmio/parser/handler packages so each
// phase's parse can be driven by a different Handler and the stream seeked
// between them, matching the source library's dcm_filehandle_t design.
package dicom

import (
	"encoding/binary"
	"strings"

	"github.com/dicomwsi/dicomcore/dicom/dataset"
	"github.com/dicomwsi/dicomcore/dicom/dcmerr"
	"github.com/dicomwsi/dicomcore/dicom/dcmio"
	"github.com/dicomwsi/dicomcore/dicom/handler"
	"github.com/dicomwsi/dicomcore/dicom/parser"
	"github.com/dicomwsi/dicomcore/dicom/tag"
	"github.com/dicomwsi/dicomcore/dicom/uid"
	"github.com/dicomwsi/dicomcore/dicom/value"
)

// state tracks how far a Filehandle has advanced through its one-way
// pipeline. Every query method drives the state forward the minimum
// amount needed to answer, and every state's work happens at most once.
type state int

const (
	stateFresh state = iota
	stateFileMeta
	stateMetadataSubset
	statePixelIndex
)

// Filehandle owns the I/O source and every cache derived from it: File
// Meta Information, a metadata subset read up to Pixel Data, and a frame
// index built without decoding any pixel bytes. It is not safe for
// concurrent mutating use; independent Filehandles over the same source
// are fine, since each owns its own Source.
type Filehandle struct {
	src   dcmio.Source
	r     *dcmio.Reader
	state state

	fileMeta          *dataset.DataSet
	transferSyntaxUID string
	implicitVR        bool
	bigEndian         bool

	postFileMetaOffset int64

	metadataSubset        *dataset.DataSet
	pixelDataHeaderOffset int64

	pixelIndex      *parser.PixelIndex
	frameDescriptor *handler.FrameDescriptor
}

// Open opens the Part 10 file at path.
func Open(path string) (*Filehandle, error) {
	f, err := dcmio.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return newFilehandle(f), nil
}

// OpenMemory wraps an in-memory Part 10 byte buffer. data is not copied.
func OpenMemory(data []byte) *Filehandle {
	return newFilehandle(dcmio.NewMemory(data))
}

func newFilehandle(src dcmio.Source) *Filehandle {
	return &Filehandle{
		src: src,
		r:   dcmio.NewReader(src, binary.LittleEndian),
	}
}

// Close releases the underlying I/O source.
func (fh *Filehandle) Close() error {
	return fh.src.Close()
}

// GetFileMeta advances at least to stateFileMeta and returns the cached,
// locked File Meta Information Data Set. The returned reference is valid
// for the Filehandle's lifetime; it is idempotent to call repeatedly.
func (fh *Filehandle) GetFileMeta() (*dataset.DataSet, error) {
	if err := fh.advanceTo(stateFileMeta); err != nil {
		return nil, err
	}
	return fh.fileMeta, nil
}

// GetTransferSyntaxUID returns the Transfer Syntax UID found in File Meta
// Information, advancing to stateFileMeta if necessary.
func (fh *Filehandle) GetTransferSyntaxUID() (string, error) {
	if err := fh.advanceTo(stateFileMeta); err != nil {
		return "", err
	}
	return fh.transferSyntaxUID, nil
}

// GetMetadataSubset advances to stateMetadataSubset and returns the cached,
// locked Data Set read up to (but excluding) Pixel Data.
func (fh *Filehandle) GetMetadataSubset() (*dataset.DataSet, error) {
	if err := fh.advanceTo(stateMetadataSubset); err != nil {
		return nil, err
	}
	return fh.metadataSubset, nil
}

// ReadMetadata runs a fresh top-level Data Set parse, stopping at stopTags
// (or at Pixel Data alone if stopTags is nil), and returns an owned,
// unlocked Data Set independent of the cached metadata subset. Each call
// seeks back to the first post-File-Meta byte
// before starting, so it may be called repeatedly with different stop
// sets.
func (fh *Filehandle) ReadMetadata(stopTags []tag.Tag) (*dataset.DataSet, error) {
	if err := fh.advanceTo(stateFileMeta); err != nil {
		return nil, err
	}
	if _, err := fh.r.Seek(fh.postFileMetaOffset, dcmio.SeekSet); err != nil {
		return nil, err
	}
	fh.r.SetByteOrder(fh.datasetByteOrder())

	var stop handler.StopFunc
	if len(stopTags) > 0 {
		stop = handler.StopOnTags(stopTags)
	} else {
		stop = handler.StopOnPixelData()
	}
	builder := handler.NewMetadataBuilder(fh.r.ByteOrder(), stop)
	eng := parser.New(fh.r, fh.implicitVR, builder)
	if err := eng.ParseTopLevelDataSet(); err != nil {
		return nil, err
	}
	return builder.Result().Clone(), nil
}

// PrepareReadFrame advances the Filehandle through every phase needed for
// ReadFrame/ReadFramePosition. It is idempotent.
func (fh *Filehandle) PrepareReadFrame() error {
	return fh.advanceTo(statePixelIndex)
}

// ReadFrame returns the n'th frame (1-based) of Pixel Data. It seeks
// directly to that frame's offset and reads only its bytes, never the rest
// of the pixel stream.
func (fh *Filehandle) ReadFrame(n int) (*dataset.Frame, error) {
	if err := fh.advanceTo(statePixelIndex); err != nil {
		return nil, err
	}
	offset, err := fh.frameOffset(n)
	if err != nil {
		return nil, err
	}
	if _, err := fh.r.Seek(offset, dcmio.SeekSet); err != nil {
		return nil, err
	}
	fh.r.SetByteOrder(fh.datasetByteOrder())

	eng := parser.New(fh.r, fh.implicitVR, nil)
	d := fh.frameDescriptor
	bytesPerSample := int(d.BitsAllocated) / 8
	if bytesPerSample == 0 {
		bytesPerSample = 1
	}
	pixelBytes, err := eng.ReadFrameBody(fh.pixelIndex.Encapsulated, d.Rows, d.Columns, d.SamplesPerPixel, d.BitsAllocated)
	if err != nil {
		return nil, err
	}
	return dataset.NewFrame(n, pixelBytes, d.Rows, d.Columns, d.SamplesPerPixel,
		d.BitsAllocated, d.BitsStored, d.HighBit, d.PixelRepresentation, d.PlanarConfiguration,
		d.PhotometricInterpretation, fh.transferSyntaxUID)
}

// GetFrameNumber looks up the 1-based frame number covering tile
// coordinate (column, row) using the per-frame position map built from
// PerFrameFunctionalGroupsSequence. It returns false with no error, per
// the source library's sparse-slide contract, when the coordinate has no
// frame.
func (fh *Filehandle) GetFrameNumber(column, row int) (int, bool) {
	if fh.frameDescriptor == nil || fh.frameDescriptor.PositionMap == nil {
		return 0, false
	}
	n, ok := fh.frameDescriptor.PositionMap[[2]int{row, column}]
	return n, ok
}

// ReadFramePosition combines GetFrameNumber and ReadFrame, returning a
// MissingFrame error when the coordinate has no frame.
func (fh *Filehandle) ReadFramePosition(column, row int) (*dataset.Frame, error) {
	if err := fh.advanceTo(statePixelIndex); err != nil {
		return nil, err
	}
	n, ok := fh.GetFrameNumber(column, row)
	if !ok {
		return nil, dcmerr.New(dcmerr.MissingFrame, "no frame at requested position", "")
	}
	return fh.ReadFrame(n)
}

// frameOffset returns the absolute stream offset of frame n (1-based).
func (fh *Filehandle) frameOffset(n int) (int64, error) {
	if n < 1 || n > len(fh.pixelIndex.Offsets) {
		if !fh.pixelIndex.Encapsulated && n >= 1 {
			// Native Pixel Data has no per-frame offset table: frames are
			// computed directly from the fixed per-frame byte size.
			frameSize := fh.nativeFrameSize()
			if frameSize > 0 {
				return fh.pixelIndex.FirstFrameOffset + int64(n-1)*int64(frameSize), nil
			}
		}
		return 0, dcmerr.New(dcmerr.Invalid, "frame number out of range", "")
	}
	return fh.pixelIndex.FirstFrameOffset + int64(fh.pixelIndex.Offsets[n-1]), nil
}

func (fh *Filehandle) nativeFrameSize() int {
	d := fh.frameDescriptor
	bytesPerSample := int(d.BitsAllocated) / 8
	if bytesPerSample == 0 {
		bytesPerSample = 1
	}
	return int(d.Rows) * int(d.Columns) * int(d.SamplesPerPixel) * bytesPerSample
}

func (fh *Filehandle) datasetByteOrder() binary.ByteOrder {
	if fh.bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// advanceTo drives the state machine forward to at least target, running
// every intermediate phase's work exactly once.
func (fh *Filehandle) advanceTo(target state) error {
	if fh.state >= target {
		return nil
	}
	if fh.state < stateFileMeta {
		if err := fh.readPreamble(); err != nil {
			return err
		}
		if err := fh.readFileMeta(); err != nil {
			return err
		}
		fh.state = stateFileMeta
	}
	if target <= fh.state {
		return nil
	}
	if fh.state < stateMetadataSubset {
		if err := fh.readMetadataSubset(); err != nil {
			return err
		}
		fh.state = stateMetadataSubset
	}
	if target <= fh.state {
		return nil
	}
	if fh.state < statePixelIndex {
		if err := fh.readPixelIndex(); err != nil {
			return err
		}
		fh.state = statePixelIndex
	}
	return nil
}

// readPreamble seeks to the start of the stream and skips the 128-byte
// preamble and "DICM" magic. A missing preamble is tolerated only if the
// next 4 bytes already look like a (group=0x0002) element header, in
// which case the stream is rewound to offset 0 for readFileMeta.
func (fh *Filehandle) readPreamble() error {
	if _, err := fh.r.Seek(0, dcmio.SeekSet); err != nil {
		return err
	}
	first4, err := fh.r.ReadBytes(4)
	if err != nil {
		return err
	}
	group := binary.LittleEndian.Uint16(first4[0:2])
	if group == 0x0002 {
		_, err := fh.r.Seek(0, dcmio.SeekSet)
		return err
	}
	if _, err := fh.r.ReadBytes(124); err != nil {
		return err
	}
	magic, err := fh.r.ReadString(4)
	if err != nil {
		return err
	}
	if magic != "DICM" {
		return dcmerr.New(dcmerr.Parse, "missing DICM magic", magic)
	}
	return nil
}

// readFileMeta parses group 0x0002 as Explicit VR Little Endian, caches
// and locks the resulting Data Set, and determines the encoding of the
// data set that follows from its Transfer Syntax UID.
func (fh *Filehandle) readFileMeta() error {
	fh.r.SetByteOrder(binary.LittleEndian)
	builder := handler.NewFileMetaBuilder()
	eng := parser.New(fh.r, false, builder)
	if err := eng.ParseGroup(); err != nil {
		return err
	}
	fh.fileMeta = builder.Result()
	fh.postFileMetaOffset = fh.r.Position()

	elem := fh.fileMeta.Get(tag.TransferSyntaxUID)
	if elem == nil {
		return dcmerr.New(dcmerr.Parse, "missing Transfer Syntax UID in File Meta Information", "")
	}
	sv, ok := elem.Value().(*value.StringValue)
	if !ok || len(sv.Strings()) == 0 {
		return dcmerr.New(dcmerr.Parse, "malformed Transfer Syntax UID element", "")
	}
	// UI values retain any trailing null pad verbatim in the object model;
	// the registry keys on the bare UID, so trim it before lookup.
	fh.transferSyntaxUID = strings.TrimRight(sv.Strings()[0], " \x00")
	fh.implicitVR = uid.IsImplicitVR(fh.transferSyntaxUID)
	fh.bigEndian = uid.IsBigEndian(fh.transferSyntaxUID)
	return nil
}

// readMetadataSubset parses the top-level Data Set that follows File Meta,
// halting at Pixel Data, and caches the locked result. The stream is left
// positioned at the first byte of the Pixel Data element's header.
func (fh *Filehandle) readMetadataSubset() error {
	if _, err := fh.r.Seek(fh.postFileMetaOffset, dcmio.SeekSet); err != nil {
		return err
	}
	fh.r.SetByteOrder(fh.datasetByteOrder())

	builder := handler.NewMetadataBuilder(fh.r.ByteOrder(), handler.StopOnPixelData())
	eng := parser.New(fh.r, fh.implicitVR, builder)
	if err := eng.ParseTopLevelDataSet(); err != nil {
		return err
	}
	fh.metadataSubset = builder.Result()
	fh.pixelDataHeaderOffset = fh.r.Position()
	return nil
}

// readPixelIndex scans Pixel Data's framing (via its Basic Offset Table,
// a fragment-header scan, or an Extended Offset Table) without decoding
// any pixel bytes, and builds the (row, column) position map for tiled
// whole-slide images when PerFrameFunctionalGroupsSequence is present.
func (fh *Filehandle) readPixelIndex() error {
	end, err := fh.r.Seek(0, dcmio.SeekEnd)
	if err != nil {
		return err
	}
	if fh.metadataSubset == nil || fh.pixelDataHeaderOffset >= end {
		// No Pixel Data element at all: nothing to index.
		fh.pixelIndex = &parser.PixelIndex{}
		fh.frameDescriptor = &handler.FrameDescriptor{}
		return nil
	}
	if _, err := fh.r.Seek(fh.pixelDataHeaderOffset, dcmio.SeekSet); err != nil {
		return err
	}
	fh.r.SetByteOrder(fh.datasetByteOrder())

	eng := parser.New(fh.r, fh.implicitVR, nil)
	idx, err := eng.ParsePixelDataIndex()
	if err != nil {
		return err
	}

	desc, err := handler.DescribeFrames(fh.metadataSubset)
	if err != nil {
		return err
	}

	// Extended Offset Table: (7FE0,0001)/(7FE0,0002) (already captured in
	// the metadata subset, since they precede Pixel Data in tag order) give
	// frame offsets directly. When present for encapsulated Pixel Data, its
	// offsets replace the ones ParsePixelDataIndex produced, so they are
	// preferred over a fragment-header scan of an empty Basic Offset Table.
	if idx.Encapsulated {
		if eot := extendedOffsetTable(fh.metadataSubset); eot != nil {
			idx.Offsets = eot
		}
	}

	fh.pixelIndex = idx
	fh.frameDescriptor = desc
	return nil
}

// extendedOffsetTable extracts (7FE0,0001) Extended Offset Table as
// uint32-truncated relative offsets, or nil if absent. The source format
// stores 64-bit offsets; this library's frame index uses uint32 like the
// Basic Offset Table it substitutes for, which is sufficient for the
// frame-count/file-size regime this library targets.
func extendedOffsetTable(ds *dataset.DataSet) []uint32 {
	elem := ds.Get(tag.ExtendedOffsetTable)
	if elem == nil {
		return nil
	}
	iv, ok := elem.Value().(*value.IntValue)
	if !ok {
		return nil
	}
	ints := iv.Ints()
	if len(ints) == 0 {
		return nil
	}
	offsets := make([]uint32, len(ints))
	for i, v := range ints {
		offsets[i] = uint32(v)
	}
	return offsets
}
