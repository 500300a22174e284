package dataset

import "fmt"

// Frame is an immutable record for one raw (possibly still compressed)
// pixel-data frame. Its constructor always adopts ownership of the pixel
// bytes and the two descriptor strings, even when validation later fails,
// so callers never have to reason about who frees a half-constructed Frame.
//
// Pixel *decoding* (JPEG, JPEG 2000, RLE, ...) is out of scope: PixelBytes
// is returned exactly as extracted from the stream.
type Frame struct {
	// Number is the 1-based frame number within the image.
	Number int
	// PixelBytes is the frame's raw (possibly compressed) pixel data.
	PixelBytes []byte

	Rows                uint16
	Columns             uint16
	SamplesPerPixel     uint16
	BitsAllocated       uint16
	BitsStored          uint16
	HighBit             uint16
	PixelRepresentation uint16 // 0 unsigned, 1 two's-complement
	PlanarConfiguration uint16 // 0 interleaved, 1 planar

	PhotometricInterpretation string
	TransferSyntaxUID         string
}

// NewFrame constructs a Frame from its descriptor fields and pixel bytes.
// number must be >= 1.
func NewFrame(number int, pixelBytes []byte, rows, columns, samplesPerPixel,
	bitsAllocated, bitsStored, highBit, pixelRepresentation, planarConfiguration uint16,
	photometricInterpretation, transferSyntaxUID string) (*Frame, error) {
	f := &Frame{
		Number:                     number,
		PixelBytes:                 pixelBytes,
		Rows:                       rows,
		Columns:                    columns,
		SamplesPerPixel:            samplesPerPixel,
		BitsAllocated:              bitsAllocated,
		BitsStored:                 bitsStored,
		HighBit:                    highBit,
		PixelRepresentation:        pixelRepresentation,
		PlanarConfiguration:        planarConfiguration,
		PhotometricInterpretation:  photometricInterpretation,
		TransferSyntaxUID:          transferSyntaxUID,
	}
	if number < 1 {
		return f, fmt.Errorf("dataset: frame number must be 1-based, got %d", number)
	}
	return f, nil
}

// Length returns the number of raw pixel bytes in the frame.
func (f *Frame) Length() int {
	return len(f.PixelBytes)
}

func (f *Frame) String() string {
	return fmt.Sprintf("Frame{%d: %dx%d, %d bits, %s}",
		f.Number, f.Columns, f.Rows, f.BitsStored, f.PhotometricInterpretation)
}
