// Package uid provides DICOM Unique Identifier (UID) parsing, validation,
// and the Transfer Syntax registry.
//
// UIDs are used throughout DICOM to uniquely identify entities; this package
// is scoped to Transfer Syntax UIDs, the only UID family the byte-stream
// reader needs to interpret in order to choose a decoding path. SOP Class
// identity is an application-level concern the caller is expected to handle
// with the Media Storage SOP Class UID element it reads out of File Meta.
//
// DICOM Standard Reference:
// https://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_9
package uid

import (
	"errors"
	"fmt"
	"strings"
)

// UID represents a DICOM Unique Identifier.
//
// UIDs are character strings composed of numeric components separated by
// periods (.). They follow the ISO 8824 object identifier format and must:
//   - Contain only digits (0-9) and periods (.)
//   - Not exceed 64 characters in length
//   - Not have leading or trailing periods
//   - Not have consecutive periods
//   - Not have leading zeros in components (except "0" by itself)
type UID struct {
	value string
}

// String returns the string representation of the UID.
func (u UID) String() string { return u.value }

// Equals returns true if this UID equals the other UID.
func (u UID) Equals(other UID) bool { return u.value == other.value }

// IsValid checks if a string is a valid DICOM UID.
func IsValid(s string) bool {
	if s == "" || len(s) > 64 {
		return false
	}
	if s[0] == '.' || s[len(s)-1] == '.' {
		return false
	}
	components := strings.Split(s, ".")
	if len(components) < 2 {
		return false
	}
	for _, comp := range components {
		if comp == "" {
			return false
		}
		if len(comp) > 1 && comp[0] == '0' {
			return false
		}
		for _, ch := range comp {
			if ch < '0' || ch > '9' {
				return false
			}
		}
	}
	return true
}

// Parse validates and creates a UID from a string.
func Parse(s string) (UID, error) {
	if !IsValid(s) {
		return UID{}, fmt.Errorf("invalid UID: %q", s)
	}
	return UID{value: s}, nil
}

// MustParse validates and creates a UID from a string, panicking on error.
// Only used for the well-known Transfer Syntax UIDs below, which are
// guaranteed valid.
func MustParse(s string) UID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// ErrInvalidUID is returned when a UID string is invalid.
var ErrInvalidUID = errors.New("invalid UID")

// TransferSyntax describes a Transfer Syntax UID's encoding rules: how
// elements are framed (implicit vs explicit VR), their byte order, and
// whether Pixel Data is stored encapsulated (compressed, in fragments) or
// native (uncompressed, a single contiguous value).
type TransferSyntax struct {
	UID           UID
	Name          string
	ImplicitVR    bool
	BigEndian     bool
	Encapsulated  bool
	Retired       bool
}

var tsMap = map[string]TransferSyntax{}

func register(u UID, name string, implicitVR, bigEndian, encapsulated, retired bool) {
	tsMap[u.String()] = TransferSyntax{
		UID:          u,
		Name:         name,
		ImplicitVR:   implicitVR,
		BigEndian:    bigEndian,
		Encapsulated: encapsulated,
		Retired:      retired,
	}
}

func init() {
	for _, def := range transferSyntaxDefs {
		register(def.uid, def.name, def.implicitVR, def.bigEndian, def.encapsulated, def.retired)
	}
}

// Lookup returns the TransferSyntax registered for the given UID string.
func Lookup(uidStr string) (TransferSyntax, bool) {
	ts, ok := tsMap[uidStr]
	return ts, ok
}

// Find returns the TransferSyntax for the given UID string, or an error if
// it is not a recognized Transfer Syntax.
func Find(uidStr string) (TransferSyntax, error) {
	ts, ok := tsMap[uidStr]
	if !ok {
		return TransferSyntax{}, fmt.Errorf("uid: %q is not a registered transfer syntax", uidStr)
	}
	return ts, nil
}

// IsEncapsulated reports whether uidStr names a Transfer Syntax whose Pixel
// Data is stored in encapsulated (fragmented, compressed) form rather than
// as a single native value. Unrecognized UIDs report false.
func IsEncapsulated(uidStr string) bool {
	ts, ok := tsMap[uidStr]
	return ok && ts.Encapsulated
}

// IsImplicitVR reports whether uidStr names a Transfer Syntax that encodes
// elements without an explicit VR field. Unrecognized UIDs report false,
// matching the convention that an unknown transfer syntax is treated as
// explicit VR little endian by callers that must guess.
func IsImplicitVR(uidStr string) bool {
	ts, ok := tsMap[uidStr]
	return ok && ts.ImplicitVR
}

// IsBigEndian reports whether uidStr names a Transfer Syntax whose native
// (non-pixel-data) values are encoded big endian.
func IsBigEndian(uidStr string) bool {
	ts, ok := tsMap[uidStr]
	return ok && ts.BigEndian
}
