package uaxbidi

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// Encoding is the encoding of the code units of a CodepointSequence.
type Encoding uint8

// Supported encodings. The zero value is not a valid encoding.
const (
	UTF8 Encoding = iota + 1
	UTF16
	UTF32
)

func (enc Encoding) String() string {
	switch enc {
	case UTF8:
		return "UTF-8"
	case UTF16:
		return "UTF-16"
	case UTF32:
		return "UTF-32"
	}
	return fmt.Sprintf("Encoding(%d)", uint8(enc))
}

// InvalidCodepoint is returned for out-of-range queries.
const InvalidCodepoint rune = -1

// CodepointSequence is a read-only view of a text buffer in one of the
// supported encodings. The buffer is owned by the client and never copied;
// it has to outlive every object derived from the sequence.
//
// Indices are code unit indices: bytes for UTF-8, 16-bit words for UTF-16
// and runes for UTF-32.
type CodepointSequence struct {
	enc Encoding
	u8  []byte
	u16 []uint16
	u32 []rune
}

// NewUTF8Sequence creates a sequence over a UTF-8 buffer.
func NewUTF8Sequence(buf []byte) CodepointSequence {
	return CodepointSequence{enc: UTF8, u8: buf}
}

// NewUTF16Sequence creates a sequence over a UTF-16 buffer.
func NewUTF16Sequence(buf []uint16) CodepointSequence {
	return CodepointSequence{enc: UTF16, u16: buf}
}

// NewUTF32Sequence creates a sequence over a UTF-32 buffer.
func NewUTF32Sequence(buf []rune) CodepointSequence {
	return CodepointSequence{enc: UTF32, u32: buf}
}

// SequenceOfString creates a UTF-8 sequence for a string.
func SequenceOfString(s string) CodepointSequence {
	return NewUTF8Sequence([]byte(s))
}

// Encoding returns the encoding of the sequence.
func (seq CodepointSequence) Encoding() Encoding {
	return seq.enc
}

// Len returns the length of the sequence in code units.
func (seq CodepointSequence) Len() int {
	switch seq.enc {
	case UTF8:
		return len(seq.u8)
	case UTF16:
		return len(seq.u16)
	case UTF32:
		return len(seq.u32)
	}
	return 0
}

// IsValid reports whether the sequence has a supported encoding and a
// non-empty buffer.
func (seq CodepointSequence) IsValid() bool {
	return seq.Len() > 0
}

// CodepointAt decodes the code point starting at code unit index i.
// It returns the code point and the index of the code unit following it.
// Malformed input decodes to U+FFFD, consuming a single code unit.
// For indices out of range, CodepointAt returns InvalidCodepoint and i.
func (seq CodepointSequence) CodepointAt(i int) (rune, int) {
	if i < 0 || i >= seq.Len() {
		return InvalidCodepoint, i
	}
	switch seq.enc {
	case UTF8:
		r, size := utf8.DecodeRune(seq.u8[i:])
		return r, i + size
	case UTF16:
		u := rune(seq.u16[i])
		if utf16.IsSurrogate(u) {
			if u < 0xDC00 && i+1 < len(seq.u16) {
				if r := utf16.DecodeRune(u, rune(seq.u16[i+1])); r != utf8.RuneError {
					return r, i + 2
				}
			}
			return utf8.RuneError, i + 1
		}
		return u, i + 1
	case UTF32:
		r := seq.u32[i]
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		return r, i + 1
	}
	return InvalidCodepoint, i
}

// CodepointBefore decodes the code point ending just before code unit index i.
// It returns the code point and the index of its first code unit.
// For indices out of range, CodepointBefore returns InvalidCodepoint and i.
func (seq CodepointSequence) CodepointBefore(i int) (rune, int) {
	if i <= 0 || i > seq.Len() {
		return InvalidCodepoint, i
	}
	switch seq.enc {
	case UTF8:
		r, size := utf8.DecodeLastRune(seq.u8[:i])
		return r, i - size
	case UTF16:
		u := rune(seq.u16[i-1])
		if utf16.IsSurrogate(u) {
			if u >= 0xDC00 && i >= 2 {
				if r := utf16.DecodeRune(rune(seq.u16[i-2]), u); r != utf8.RuneError {
					return r, i - 2
				}
			}
			return utf8.RuneError, i - 1
		}
		return u, i - 1
	case UTF32:
		r := seq.u32[i-1]
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		return r, i - 1
	}
	return InvalidCodepoint, i
}

// SameBuffer reports whether two sequences view the same buffer.
func (seq CodepointSequence) SameBuffer(other CodepointSequence) bool {
	if seq.enc != other.enc || seq.Len() != other.Len() || seq.Len() == 0 {
		return false
	}
	switch seq.enc {
	case UTF8:
		return &seq.u8[0] == &other.u8[0]
	case UTF16:
		return &seq.u16[0] == &other.u16[0]
	case UTF32:
		return &seq.u32[0] == &other.u32[0]
	}
	return false
}

func (seq CodepointSequence) String() string {
	return fmt.Sprintf("[%s sequence of %d code units]", seq.enc, seq.Len())
}
