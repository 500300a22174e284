// Package tag defines the DICOM element tag: a (group, element) pair that
// identifies one attribute, plus the static dictionary mapping a tag to its
// registered VR, name, and multiplicity.
//
// See Part 5 section 7.1 for tag structure and Part 6 for the registry this
// package's dictionary is a subset of.
package tag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dicomwsi/dicomcore/dicom/vr"
)

// MetadataGroup is the group number reserved for file meta information
// elements (Part 10 section 7.1); every tag with this group lives outside
// the main data set and is never affected by the data set's transfer syntax.
const MetadataGroup = 0x0002

// Tag is a DICOM attribute identifier: sixteen bits of group, sixteen bits
// of element. The zero value (0000,0000) is not a valid attribute tag.
type Tag struct {
	Group   uint16
	Element uint16
}

// New builds a Tag from its group and element halves.
func New(group, element uint16) Tag {
	return Tag{Group: group, Element: element}
}

// Parse reads a tag from its canonical "(GGGG,EEEE)" text form (parentheses
// optional), case-insensitive hex.
func Parse(s string) (Tag, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	groupText, elementText, ok := strings.Cut(s, ",")
	if !ok {
		return Tag{}, fmt.Errorf("tag: %q is not in (GGGG,EEEE) form", s)
	}
	group, err := strconv.ParseUint(strings.TrimSpace(groupText), 16, 16)
	if err != nil {
		return Tag{}, fmt.Errorf("tag: bad group in %q: %w", s, err)
	}
	element, err := strconv.ParseUint(strings.TrimSpace(elementText), 16, 16)
	if err != nil {
		return Tag{}, fmt.Errorf("tag: bad element in %q: %w", s, err)
	}
	return New(uint16(group), uint16(element)), nil
}

// Uint32 packs the tag into the group-high, element-low ordering used for
// ordinal comparison and matching the wire format's (group,element) field
// pair reinterpreted as one value.
func (t Tag) Uint32() uint32 {
	return uint32(t.Group)<<16 | uint32(t.Element)
}

// Compare orders tags the way a data set must store them: strictly
// increasing by (group, element). It returns a negative number, zero, or a
// positive number as t is less than, equal to, or greater than other.
func (t Tag) Compare(other Tag) int {
	switch {
	case t.Uint32() < other.Uint32():
		return -1
	case t.Uint32() > other.Uint32():
		return 1
	default:
		return 0
	}
}

func (t Tag) Equals(other Tag) bool {
	return t == other
}

func (t Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.Group, t.Element)
}

// IsPrivate reports whether the tag belongs to a private (odd-numbered)
// group, per Part 5 section 7.8.
func (t Tag) IsPrivate() bool {
	return t.Group%2 == 1
}

// IsMetaElement reports whether the tag belongs to the file meta
// information group rather than the main data set.
func (t Tag) IsMetaElement() bool {
	return t.Group == MetadataGroup
}

// isGroupLength reports whether the tag is a group length element: element
// 0000 of an even (standard) group, whose value is always VR UL regardless
// of which group it belongs to.
func (t Tag) isGroupLength() bool {
	return t.Group%2 == 0 && t.Element == 0x0000
}

// Info is one dictionary entry: the registered name, keyword, permitted
// VR(s), and value multiplicity for a tag.
type Info struct {
	Tag     Tag
	VRs     []vr.VR
	Name    string
	Keyword string
	VM      string
	Retired bool
}

// keywordIndex and nameIndex are built once from TagDict so FindByKeyword
// and FindByName don't scan the whole dictionary on every lookup.
var (
	keywordIndex map[string]Info
	nameIndex    map[string]Info
)

func init() {
	keywordIndex = make(map[string]Info, len(TagDict))
	nameIndex = make(map[string]Info, len(TagDict))
	for _, info := range TagDict {
		keywordIndex[info.Keyword] = info
		nameIndex[info.Name] = info
	}
}

// groupLengthInfo is the synthetic entry returned for any element 0000 of an
// even group: every standard group has one, but they aren't worth
// registering individually since the VR and meaning never vary.
func groupLengthInfo(t Tag) Info {
	return Info{
		Tag:     t,
		VRs:     []vr.VR{vr.UnsignedLong},
		Name:    "Generic Group Length",
		Keyword: "GenericGroupLength",
		VM:      "1",
	}
}

// Find looks up t's dictionary entry. Every even-group element 0000
// resolves even when absent from TagDict, since the standard mandates that
// pattern mechanically rather than registering it once per group.
func Find(t Tag) (Info, error) {
	if info, ok := TagDict[t]; ok {
		return info, nil
	}
	if t.isGroupLength() {
		return groupLengthInfo(t), nil
	}
	return Info{}, fmt.Errorf("tag: %s not in dictionary", t)
}

// FindByKeyword looks up a dictionary entry by its CamelCase keyword (e.g.
// "PatientName"), falling back to a match against the registered display
// name (e.g. "Patient's Name") so either form a caller might have on hand
// works.
func FindByKeyword(keyword string) (Info, error) {
	if keyword == "" {
		return Info{}, fmt.Errorf("tag: empty keyword")
	}
	if info, ok := keywordIndex[keyword]; ok {
		return info, nil
	}
	if info, ok := nameIndex[keyword]; ok {
		return info, nil
	}
	return Info{}, fmt.Errorf("tag: keyword %q not in dictionary", keyword)
}

// FindByName looks up a dictionary entry by its registered display name,
// falling back to a keyword match for symmetry with FindByKeyword.
func FindByName(name string) (Info, error) {
	return FindByKeyword(name)
}

// MustFind is Find for callers that have already guaranteed t is
// registered, such as this package's own named tag constants; it panics
// rather than returning an error neither side expects to see.
func MustFind(t Tag) Info {
	info, err := Find(t)
	if err != nil {
		panic(err)
	}
	return info
}
