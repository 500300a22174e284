package parser_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/dicomwsi/dicomcore/dicom/dcmio"
	"github.com/dicomwsi/dicomcore/dicom/handler"
	"github.com/dicomwsi/dicomcore/dicom/parser"
	"github.com/dicomwsi/dicomcore/dicom/tag"
	"github.com/dicomwsi/dicomcore/dicom/vr"
)

func putTag(buf *bytes.Buffer, group, element uint16) {
	binary.Write(buf, binary.LittleEndian, group)
	binary.Write(buf, binary.LittleEndian, element)
}

func putExplicitShort(buf *bytes.Buffer, group, element uint16, vrCode string, value []byte) {
	putTag(buf, group, element)
	buf.WriteString(vrCode)
	binary.Write(buf, binary.LittleEndian, uint16(len(value)))
	buf.Write(value)
}

func putExplicitLong(buf *bytes.Buffer, group, element uint16, vrCode string, value []byte) {
	putTag(buf, group, element)
	buf.WriteString(vrCode)
	binary.Write(buf, binary.LittleEndian, uint16(0))
	binary.Write(buf, binary.LittleEndian, uint32(len(value)))
	buf.Write(value)
}

func TestEngine_FlatDataSet(t *testing.T) {
	buf := new(bytes.Buffer)
	putExplicitShort(buf, 0x0010, 0x0010, "PN", []byte("Doe^Jane"))
	putExplicitShort(buf, 0x0010, 0x0020, "LO", []byte("12345"))

	src := dcmio.NewMemory(buf.Bytes())
	r := dcmio.NewReader(src, binary.LittleEndian)
	b := handler.NewMetadataBuilder(binary.LittleEndian, nil)
	eng := parser.New(r, false, b)

	if err := eng.ParseTopLevelDataSet(); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ds := b.Result()
	if ds.Count() != 2 {
		t.Fatalf("expected 2 elements, got %d", ds.Count())
	}
	elem := ds.Get(tag.PatientName)
	if elem == nil {
		t.Fatal("expected PatientName element")
	}
	if got := elem.Value().String(); got != "Doe^Jane" {
		t.Errorf("PatientName = %q, want %q", got, "Doe^Jane")
	}
}

func TestEngine_NestedSequence(t *testing.T) {
	item := new(bytes.Buffer)
	putExplicitShort(item, 0x0018, 0x9313, "FD", make([]byte, 8))

	seqValue := new(bytes.Buffer)
	putTag(seqValue, 0xFFFE, 0xE000)
	binary.Write(seqValue, binary.LittleEndian, uint32(item.Len()))
	seqValue.Write(item.Bytes())

	buf := new(bytes.Buffer)
	putExplicitLong(buf, 0x0020, 0x9113, "SQ", seqValue.Bytes())

	src := dcmio.NewMemory(buf.Bytes())
	r := dcmio.NewReader(src, binary.LittleEndian)
	b := handler.NewMetadataBuilder(binary.LittleEndian, nil)
	eng := parser.New(r, false, b)

	if err := eng.ParseTopLevelDataSet(); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ds := b.Result()
	elem := ds.Get(tag.PlanePositionSequence)
	if elem == nil {
		t.Fatal("expected PlanePositionSequence element")
	}
	if elem.VR() != vr.SequenceOfItems {
		t.Errorf("expected VR SQ, got %s", elem.VR())
	}
	seq := elem.Sequence()
	if seq == nil || seq.Count() != 1 {
		t.Fatalf("expected 1 item, got %v", seq)
	}
}

func TestEngine_StopOnPixelData(t *testing.T) {
	buf := new(bytes.Buffer)
	putExplicitShort(buf, 0x0010, 0x0010, "PN", []byte("Doe^Jane"))
	pixelDataStart := buf.Len()
	putExplicitLong(buf, 0x7FE0, 0x0010, "OW", make([]byte, 16))

	src := dcmio.NewMemory(buf.Bytes())
	r := dcmio.NewReader(src, binary.LittleEndian)
	b := handler.NewMetadataBuilder(binary.LittleEndian, handler.StopOnPixelData())
	eng := parser.New(r, false, b)

	if err := eng.ParseTopLevelDataSet(); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ds := b.Result()
	if ds.Contains(tag.PixelData) {
		t.Error("expected Pixel Data to not be in the returned data set")
	}
	if r.Position() != int64(pixelDataStart) {
		t.Errorf("position = %d, want %d (start of Pixel Data header)", r.Position(), pixelDataStart)
	}
}

func TestEngine_ImplicitVR(t *testing.T) {
	buf := new(bytes.Buffer)
	putTag(buf, 0x0010, 0x0010)
	binary.Write(buf, binary.LittleEndian, uint32(8))
	buf.WriteString("Doe^Jane")

	src := dcmio.NewMemory(buf.Bytes())
	r := dcmio.NewReader(src, binary.LittleEndian)
	b := handler.NewMetadataBuilder(binary.LittleEndian, nil)
	eng := parser.New(r, true, b)

	if err := eng.ParseTopLevelDataSet(); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	elem := b.Result().Get(tag.PatientName)
	if elem == nil {
		t.Fatal("expected PatientName element")
	}
	if elem.VR() != vr.PersonName {
		t.Errorf("expected VR PN resolved from dictionary, got %s", elem.VR())
	}
}

func TestEngine_ParseGroup_FileMeta(t *testing.T) {
	rest := new(bytes.Buffer)
	putExplicitShort(rest, 0x0002, 0x0010, "UI", []byte("1.2.840.10008.1.2.1\x00"))

	buf := new(bytes.Buffer)
	groupLength := make([]byte, 4)
	binary.LittleEndian.PutUint32(groupLength, uint32(rest.Len()))
	putExplicitShort(buf, 0x0002, 0x0000, "UL", groupLength)
	buf.Write(rest.Bytes())

	src := dcmio.NewMemory(buf.Bytes())
	r := dcmio.NewReader(src, binary.LittleEndian)
	b := handler.NewFileMetaBuilder()
	eng := parser.New(r, false, b)

	if err := eng.ParseGroup(); err != nil {
		t.Fatalf("parse group failed: %v", err)
	}
	ds := b.Result()
	if ds.Count() != 2 {
		t.Fatalf("expected 2 elements (group length + transfer syntax), got %d", ds.Count())
	}
	ts := ds.Get(tag.TransferSyntaxUID)
	if ts == nil {
		t.Fatal("expected TransferSyntaxUID element")
	}
}

func TestEngine_PixelDataIndex_NativeSingleFrame(t *testing.T) {
	buf := new(bytes.Buffer)
	putExplicitLong(buf, 0x7FE0, 0x0010, "OW", make([]byte, 64))

	src := dcmio.NewMemory(buf.Bytes())
	r := dcmio.NewReader(src, binary.LittleEndian)
	eng := parser.New(r, false, handler.NewMetadataBuilder(binary.LittleEndian, nil))

	idx, err := eng.ParsePixelDataIndex()
	if err != nil {
		t.Fatalf("parse pixel index failed: %v", err)
	}
	if idx.Encapsulated {
		t.Error("expected native pixel data to report not encapsulated")
	}
	body, err := eng.ReadFrameBody(false, 8, 8, 1, 8)
	if err != nil {
		t.Fatalf("read frame body failed: %v", err)
	}
	if len(body) != 64 {
		t.Errorf("expected 64-byte frame, got %d", len(body))
	}
}

func TestEngine_PixelDataIndex_EncapsulatedWithBOT(t *testing.T) {
	buf := new(bytes.Buffer)
	putTag(buf, 0x7FE0, 0x0010)
	buf.WriteString("OB")
	binary.Write(buf, binary.LittleEndian, uint16(0))
	binary.Write(buf, binary.LittleEndian, uint32(0xFFFFFFFF))

	// BOT item: two offsets
	putTag(buf, 0xFFFE, 0xE000)
	binary.Write(buf, binary.LittleEndian, uint32(8))
	binary.Write(buf, binary.LittleEndian, uint32(0))
	binary.Write(buf, binary.LittleEndian, uint32(0x28))

	// frame 1 fragment (32 bytes)
	putTag(buf, 0xFFFE, 0xE000)
	binary.Write(buf, binary.LittleEndian, uint32(32))
	buf.Write(make([]byte, 32))

	// frame 2 fragment (32 bytes)
	putTag(buf, 0xFFFE, 0xE000)
	binary.Write(buf, binary.LittleEndian, uint32(32))
	buf.Write(make([]byte, 32))

	src := dcmio.NewMemory(buf.Bytes())
	r := dcmio.NewReader(src, binary.LittleEndian)
	eng := parser.New(r, false, handler.NewMetadataBuilder(binary.LittleEndian, nil))

	idx, err := eng.ParsePixelDataIndex()
	if err != nil {
		t.Fatalf("parse pixel index failed: %v", err)
	}
	if !idx.Encapsulated {
		t.Error("expected encapsulated pixel data")
	}
	if len(idx.Offsets) != 2 || idx.Offsets[0] != 0 || idx.Offsets[1] != 0x28 {
		t.Fatalf("unexpected offsets: %v", idx.Offsets)
	}

	if err := r.Rewind(idx.FirstFrameOffset + int64(idx.Offsets[1])); err != nil {
		t.Fatalf("rewind failed: %v", err)
	}
	frame2, err := eng.ReadFrameBody(true, 0, 0, 0, 0)
	if err != nil {
		t.Fatalf("read frame body failed: %v", err)
	}
	if len(frame2) != 32 {
		t.Errorf("expected 32-byte frame, got %d", len(frame2))
	}
}
