package ucd

import (
	"fmt"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/rangetable"
)

// BidiType is the bidirectional character type of UAX #9, section 3.2.
type BidiType uint8

// Bidi types. Nil is the "none" value and is never assigned to a code point
// of the Unicode range.
const (
	Nil BidiType = iota

	L  // left-to-right
	R  // right-to-left
	AL // Arabic letter

	EN // European number
	ES // European separator
	ET // European terminator
	AN // Arabic number
	CS // common separator

	NSM // non-spacing mark
	BN  // boundary neutral

	B  // paragraph separator
	S  // segment separator
	WS // whitespace
	ON // other neutral

	LRE // left-to-right embedding
	RLE // right-to-left embedding
	LRO // left-to-right override
	RLO // right-to-left override
	PDF // pop directional formatting

	LRI // left-to-right isolate
	RLI // right-to-left isolate
	FSI // first strong isolate
	PDI // pop directional isolate
)

var bidiTypeNames = [...]string{
	Nil: "Nil", L: "L", R: "R", AL: "AL", EN: "EN", ES: "ES", ET: "ET", AN: "AN", CS: "CS",
	NSM: "NSM", BN: "BN", B: "B", S: "S", WS: "WS", ON: "ON",
	LRE: "LRE", RLE: "RLE", LRO: "LRO", RLO: "RLO", PDF: "PDF",
	LRI: "LRI", RLI: "RLI", FSI: "FSI", PDI: "PDI",
}

func (t BidiType) String() string {
	if int(t) < len(bidiTypeNames) {
		return bidiTypeNames[t]
	}
	return fmt.Sprintf("BidiType(%d)", uint8(t))
}

// ParseBidiType returns the bidi type for a short name as used in the UCD
// files, e.g. "AL" or "PDI".
func ParseBidiType(name string) (BidiType, error) {
	for t, n := range bidiTypeNames {
		if n == name && BidiType(t) != Nil {
			return BidiType(t), nil
		}
	}
	return Nil, fmt.Errorf("unknown bidi type %q", name)
}

// IsStrong is true for L, R and AL.
func (t BidiType) IsStrong() bool {
	return t >= L && t <= AL
}

// IsNumber is true for EN and AN.
func (t BidiType) IsNumber() bool {
	return t == EN || t == AN
}

// IsNumberSeparator is true for ES and CS.
func (t BidiType) IsNumberSeparator() bool {
	return t == ES || t == CS
}

// IsIsolateInitiator is true for LRI, RLI and FSI.
func (t BidiType) IsIsolateInitiator() bool {
	return t >= LRI && t <= FSI
}

// IsIsolate is true for isolate initiators and PDI.
func (t BidiType) IsIsolate() bool {
	return t >= LRI && t <= PDI
}

// IsExplicitEmbedding is true for LRE, RLE, LRO, RLO and PDF.
func (t BidiType) IsExplicitEmbedding() bool {
	return t >= LRE && t <= PDF
}

// IsBNEquivalent is true for types removed by rule X9.
func (t BidiType) IsBNEquivalent() bool {
	return t == BN || t.IsExplicitEmbedding()
}

// IsNeutral is true for the separator, whitespace and other-neutral types.
func (t BidiType) IsNeutral() bool {
	return t >= B && t <= ON
}

// --- Lookup ----------------------------------------------------------------

var xtextTypes = [...]BidiType{
	bidi.L: L, bidi.R: R, bidi.EN: EN, bidi.ES: ES, bidi.ET: ET, bidi.AN: AN,
	bidi.CS: CS, bidi.B: B, bidi.S: S, bidi.WS: WS, bidi.ON: ON, bidi.BN: BN,
	bidi.NSM: NSM, bidi.AL: AL, bidi.Control: ON,
	bidi.LRO: LRO, bidi.RLO: RLO, bidi.LRE: LRE, bidi.RLE: RLE, bidi.PDF: PDF,
	bidi.LRI: LRI, bidi.RLI: RLI, bidi.FSI: FSI, bidi.PDI: PDI,
}

// LookupBidiType returns the bidi type of a code point. Code points outside
// the Unicode range map to Nil.
func LookupBidiType(r rune) BidiType {
	if r < 0 || r > MaxCodepoint {
		return Nil
	}
	if r >= 0xD800 && r <= 0xDFFF {
		return L
	}
	props, size := bidi.LookupRune(r)
	if size == 0 {
		return L
	}
	c := props.Class()
	if int(c) >= len(xtextTypes) {
		return ON
	}
	t := xtextTypes[c]
	if t == L && LookupGeneralCategory(r) == Cn {
		return defaultBidiType(r)
	}
	return t
}

// Unassigned code points in some blocks default to a class other than L.
// See the @missing lines of DerivedBidiClass.txt.
var defaults struct {
	once          sync.Once
	r, al, et, bn *unicode.RangeTable
}

func defaultBidiType(r rune) BidiType {
	defaults.once.Do(setupDefaultRanges)
	switch {
	case unicode.Is(defaults.r, r):
		return R
	case unicode.Is(defaults.al, r):
		return AL
	case unicode.Is(defaults.et, r):
		return ET
	case unicode.Is(defaults.bn, r):
		return BN
	}
	return L
}

func setupDefaultRanges() {
	defaults.r = rangetable.Merge(
		&unicode.RangeTable{R16: []unicode.Range16{
			{Lo: 0x0590, Hi: 0x05FF, Stride: 1},
			{Lo: 0x07C0, Hi: 0x085F, Stride: 1},
			{Lo: 0xFB1D, Hi: 0xFB4F, Stride: 1},
		}},
		&unicode.RangeTable{R32: []unicode.Range32{
			{Lo: 0x10800, Hi: 0x10CFF, Stride: 1},
			{Lo: 0x10D40, Hi: 0x10EBF, Stride: 1},
			{Lo: 0x10F00, Hi: 0x10F2F, Stride: 1},
			{Lo: 0x10F70, Hi: 0x10FFF, Stride: 1},
			{Lo: 0x1E800, Hi: 0x1EC6F, Stride: 1},
			{Lo: 0x1ECC0, Hi: 0x1ECFF, Stride: 1},
			{Lo: 0x1ED50, Hi: 0x1EDFF, Stride: 1},
			{Lo: 0x1EF00, Hi: 0x1EFFF, Stride: 1},
		}},
	)
	defaults.al = rangetable.Merge(
		&unicode.RangeTable{R16: []unicode.Range16{
			{Lo: 0x0600, Hi: 0x07BF, Stride: 1},
			{Lo: 0x0860, Hi: 0x08FF, Stride: 1},
			{Lo: 0xFB50, Hi: 0xFDCF, Stride: 1},
			{Lo: 0xFDF0, Hi: 0xFDFF, Stride: 1},
			{Lo: 0xFE70, Hi: 0xFEFF, Stride: 1},
		}},
		&unicode.RangeTable{R32: []unicode.Range32{
			{Lo: 0x10D00, Hi: 0x10D3F, Stride: 1},
			{Lo: 0x10EC0, Hi: 0x10EFF, Stride: 1},
			{Lo: 0x10F30, Hi: 0x10F6F, Stride: 1},
			{Lo: 0x1EC70, Hi: 0x1ECBF, Stride: 1},
			{Lo: 0x1ED00, Hi: 0x1ED4F, Stride: 1},
			{Lo: 0x1EE00, Hi: 0x1EEFF, Stride: 1},
		}},
	)
	defaults.et = &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x20A0, Hi: 0x20CF, Stride: 1},
	}}
	nonchars := make([]*unicode.RangeTable, 0, 20)
	nonchars = append(nonchars, &unicode.RangeTable{R16: []unicode.Range16{
		{Lo: 0x2060, Hi: 0x206F, Stride: 1},
		{Lo: 0xFDD0, Hi: 0xFDEF, Stride: 1},
		{Lo: 0xFFF0, Hi: 0xFFF8, Stride: 1},
		{Lo: 0xFFFE, Hi: 0xFFFF, Stride: 1},
	}}, &unicode.RangeTable{R32: []unicode.Range32{
		{Lo: 0xE0000, Hi: 0xE0FFF, Stride: 1},
	}})
	for plane := rune(1); plane <= 0x10; plane++ {
		base := plane << 16
		nonchars = append(nonchars, &unicode.RangeTable{R32: []unicode.Range32{
			{Lo: uint32(base | 0xFFFE), Hi: uint32(base | 0xFFFF), Stride: 1},
		}})
	}
	defaults.bn = rangetable.Merge(nonchars...)
	T().Debugf("ucd: default bidi ranges set up")
}
