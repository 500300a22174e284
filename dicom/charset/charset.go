// Package charset resolves a DICOM SpecificCharacterSet value to a text
// decoder, so PN/LO/SH/ST/LT/UT element bytes that were written in a
// non-default repertoire come back as proper UTF-8 instead of mojibake.
//
// Grounded in the charset handling carried by two of the example readers
// (dicomio/charset.go and gillesdemey's charset.go), which both map the
// DICOM defined terms to golang.org/x/text/encoding names via htmlindex.
// This package collapses their three-way Alphabetic/Ideographic/Phonetic
// split (relevant only to the ISO 2022 Japanese/Korean component switching
// this library does not implement) down to a single decoder per element.
package charset

import (
	"fmt"

	"github.com/dicomwsi/dicomcore/dicom/dcmlog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// definedTermEncodings maps a DICOM (0008,0005) defined term to the
// golang.org/x/text/encoding/htmlindex name that decodes it. An empty
// target means 7-bit ASCII, which needs no decoder.
var definedTermEncodings = map[string]string{
	"":                "",
	"ISO_IR 6":        "",
	"ISO 2022 IR 6":   "",
	"ISO_IR 100":      "iso-8859-1",
	"ISO 2022 IR 100": "iso-8859-1",
	"ISO_IR 101":      "iso-8859-2",
	"ISO 2022 IR 101": "iso-8859-2",
	"ISO_IR 109":      "iso-8859-3",
	"ISO 2022 IR 109": "iso-8859-3",
	"ISO_IR 110":      "iso-8859-4",
	"ISO 2022 IR 110": "iso-8859-4",
	"ISO_IR 144":      "iso-ir-144",
	"ISO 2022 IR 144": "iso-ir-144",
	"ISO_IR 126":      "iso-ir-126",
	"ISO 2022 IR 126": "iso-ir-126",
	"ISO_IR 127":      "iso-ir-127",
	"ISO 2022 IR 127": "iso-ir-127",
	"ISO_IR 138":      "iso-ir-138",
	"ISO 2022 IR 138": "iso-ir-138",
	"ISO_IR 148":      "iso-ir-148",
	"ISO 2022 IR 148": "iso-ir-148",
	"ISO_IR 166":      "tis-620",
	"ISO 2022 IR 166": "tis-620",
	"ISO_IR 192":      "utf-8",
	"GB18030":         "gb18030",
	"GBK":             "gbk",
}

// Decoder converts element bytes encoded per one SpecificCharacterSet
// defined term into a UTF-8 string. A nil Decoder (or one built from the
// default repertoire) is a passthrough.
type Decoder struct {
	dec *encoding.Decoder
}

// ForSpecificCharacterSet resolves values (the decoded SpecificCharacterSet
// element, possibly multi-valued for the ISO 2022 escape-sequence case) to
// a Decoder. Only the first value is honoured — component switching via
// escape sequences is not implemented, matching this library's scope of
// reading text, not reinterpreting mid-string escapes.
func ForSpecificCharacterSet(values []string) (*Decoder, error) {
	if len(values) == 0 {
		return nil, nil
	}
	term := values[0]
	htmlName, ok := definedTermEncodings[term]
	if !ok {
		dcmlog.Vprintf(0, "charset: unrecognized SpecificCharacterSet term %q", term)
		return nil, fmt.Errorf("charset: unrecognized SpecificCharacterSet term %q", term)
	}
	if htmlName == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(htmlName)
	if err != nil {
		dcmlog.Vprintf(0, "charset: no decoder registered for %q (%s): %v", term, htmlName, err)
		return nil, fmt.Errorf("charset: no decoder registered for %q (%s): %w", term, htmlName, err)
	}
	dcmlog.Vprintf(1, "charset: resolved SpecificCharacterSet decoder for term %q", term)
	return &Decoder{dec: enc.NewDecoder()}, nil
}

// Decode converts raw element bytes to UTF-8. A nil Decoder returns s
// unchanged, treating it as already being in the default repertoire.
func (d *Decoder) Decode(s string) string {
	if d == nil || d.dec == nil {
		return s
	}
	out, err := d.dec.String(s)
	if err != nil {
		dcmlog.Vprintf(0, "charset: decode failed (%v), passing bytes through unchanged", err)
		return s
	}
	return out
}
