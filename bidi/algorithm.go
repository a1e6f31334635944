package bidi

import (
	"unicode"

	"github.com/npillmayer/uaxbidi"
	"github.com/npillmayer/uaxbidi/ucd"
)

// Algorithm holds the bidi types of a text. It is the starting point for
// resolving the paragraphs of the text.
//
// The text buffer is not copied; clients must not modify it as long as the
// Algorithm or any object derived from it is in use.
type Algorithm struct {
	seq   uaxbidi.CodepointSequence
	types []ucd.BidiType
	mode  uint
}

// NewAlgorithm determines the bidi types for every code unit of seq. The
// first code unit of a character receives the bidi type of the character,
// continuation units are typed BN.
//
// An invalid or empty sequence results in ErrInvalidSequence.
func NewAlgorithm(seq uaxbidi.CodepointSequence, opts ...Option) (*Algorithm, error) {
	if !seq.IsValid() {
		T().Errorf("cannot create bidi algorithm for %s", seq)
		return nil, ErrInvalidSequence
	}
	algo := &Algorithm{seq: seq}
	for _, opt := range opts {
		opt(algo)
	}
	algo.types = make([]ucd.BidiType, seq.Len())
	for i := 0; i < seq.Len(); {
		r, next := seq.CodepointAt(i)
		algo.types[i] = algo.bidiType(r)
		for j := i + 1; j < next; j++ {
			algo.types[j] = ucd.BN
		}
		i = next
	}
	return algo, nil
}

func (algo *Algorithm) bidiType(r rune) ucd.BidiType {
	if algo.hasMode(optionTesting) && r < unicode.MaxASCII && unicode.IsUpper(r) {
		return ucd.R // during testing, UPPERCASE is R2L
	}
	return ucd.LookupBidiType(r)
}

// Sequence returns the code point sequence the algorithm works on.
func (algo *Algorithm) Sequence() uaxbidi.CodepointSequence {
	return algo.seq
}

// BidiTypes returns a copy of the bidi types of all code units.
func (algo *Algorithm) BidiTypes() []ucd.BidiType {
	types := make([]ucd.BidiType, len(algo.types))
	copy(types, algo.types)
	return types
}

// ParagraphBoundary searches for the end of the paragraph starting at offset,
// looking at suggested code units at most. It returns the length of the
// paragraph including its separator, and the length of the separator.
// If no separator is found, the paragraph ends after suggested code units
// (or at the end of the text) and sepLength is 0. A CR immediately followed
// by LF counts as a single separator, even if the LF is beyond the
// suggested length.
func (algo *Algorithm) ParagraphBoundary(offset, suggested int) (length, sepLength int) {
	if offset < 0 || offset >= len(algo.types) || suggested <= 0 {
		return 0, 0
	}
	limit := offset + suggested
	if limit > len(algo.types) || limit < offset {
		limit = len(algo.types)
	}
	for i := offset; i < limit; i++ {
		if algo.types[i] != ucd.B {
			continue
		}
		r, next := algo.seq.CodepointAt(i)
		if r == '\r' && next < len(algo.types) {
			if lf, after := algo.seq.CodepointAt(next); lf == '\n' {
				next = after
			}
		}
		return next - offset, next - i
	}
	return limit - offset, 0
}

// --- Options -----------------------------------------------------------------

// Option configures an Algorithm.
type Option func(*Algorithm)

const (
	optionTesting uint = 1 << 1 // test mode: recognize uppercase as class R
)

// Testing will set up the algorithm to recognize UPPERCASE ASCII letters as
// having type R. This is a common pattern in bidi algorithm development.
func Testing(b bool) Option {
	return func(algo *Algorithm) {
		if b {
			algo.mode |= optionTesting
		} else {
			algo.mode &^= optionTesting
		}
	}
}

func (algo *Algorithm) hasMode(m uint) bool {
	return algo.mode&m > 0
}
