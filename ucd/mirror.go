package ucd

import (
	"sort"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

type mirrorPair struct {
	cp, mirror rune
}

// LookupMirror returns the Bidi_Mirroring_Glyph of a code point, or 0 if
// the code point has none.
func LookupMirror(r rune) rune {
	i := sort.Search(len(mirrorTable), func(i int) bool {
		return mirrorTable[i].cp >= r
	})
	if i < len(mirrorTable) && mirrorTable[i].cp == r {
		return mirrorTable[i].mirror
	}
	return 0
}

// BracketType is the Bidi_Paired_Bracket_Type property.
type BracketType uint8

// Bracket types.
const (
	BracketNone BracketType = iota
	BracketOpen
	BracketClose
)

func (bt BracketType) String() string {
	switch bt {
	case BracketOpen:
		return "open"
	case BracketClose:
		return "close"
	}
	return "none"
}

type bracketEntry struct {
	cp, paired rune
	typ        BracketType
}

// LookupBracketPair returns the paired bracket of a code point together with
// its bracket type. For code points which are no brackets it returns
// (0, BracketNone).
func LookupBracketPair(r rune) (rune, BracketType) {
	i := sort.Search(len(bracketTable), func(i int) bool {
		return bracketTable[i].cp >= r
	})
	if i < len(bracketTable) && bracketTable[i].cp == r {
		return bracketTable[i].paired, bracketTable[i].typ
	}
	return 0, BracketNone
}

// CanonicalBracket maps a bracket to its canonical equivalent, if it has a
// singleton decomposition (U+2329 and U+232A decompose to U+3008 and U+3009).
// Other code points are returned unchanged.
func CanonicalBracket(r rune) rune {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	if norm.NFD.IsNormal(buf[:n]) {
		return r
	}
	d := norm.NFD.Bytes(buf[:n])
	c, size := utf8.DecodeRune(d)
	if size != len(d) {
		return r
	}
	return c
}
