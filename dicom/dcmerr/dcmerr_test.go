package dcmerr_test

import (
	"errors"
	"testing"

	"github.com/dicomwsi/dicomcore/dicom/dcmerr"
	"github.com/stretchr/testify/assert"
)

func TestError_Error(t *testing.T) {
	e := dcmerr.New(dcmerr.Parse, "bad VR", "expected two ASCII letters")
	assert.Contains(t, e.Error(), "Parse")
	assert.Contains(t, e.Error(), "bad VR")
	assert.Contains(t, e.Error(), "expected two ASCII letters")
}

func TestError_Wrap(t *testing.T) {
	cause := errors.New("short read")
	e := dcmerr.Wrap(dcmerr.IO, "reading element header", cause)
	assert.Equal(t, dcmerr.IO, e.Kind)
	assert.True(t, errors.Is(e, cause))
}

func TestIs(t *testing.T) {
	e := dcmerr.New(dcmerr.MissingFrame, "no frame at (17,23)", "")
	assert.True(t, dcmerr.Is(e, dcmerr.MissingFrame))
	assert.False(t, dcmerr.Is(e, dcmerr.Parse))
	assert.False(t, dcmerr.Is(errors.New("plain"), dcmerr.Parse))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Parse", dcmerr.Parse.String())
	assert.Equal(t, "IO", dcmerr.IO.String())
	assert.Equal(t, "MissingFrame", dcmerr.MissingFrame.String())
}
