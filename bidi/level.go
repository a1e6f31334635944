package bidi

import (
	"fmt"

	"github.com/npillmayer/uaxbidi/ucd"
)

// Level is an embedding level. Even levels are left-to-right, odd levels
// are right-to-left.
type Level uint8

// Special levels. DefaultLTR and DefaultRTL request the paragraph level to
// be determined from the text (rules P2 and P3), falling back to 0 or 1,
// respectively.
const (
	MaxLevel     Level = 125
	InvalidLevel Level = 0xFF
	DefaultLTR   Level = 0xFE
	DefaultRTL   Level = 0xFD
)

// IsRTL is true for odd levels.
func (l Level) IsRTL() bool {
	return l&1 == 1
}

// Direction returns L for even levels and R for odd levels.
func (l Level) Direction() ucd.BidiType {
	if l.IsRTL() {
		return ucd.R
	}
	return ucd.L
}

// IsValid is true for levels 0…MaxLevel.
func (l Level) IsValid() bool {
	return l <= MaxLevel
}

func (l Level) String() string {
	switch l {
	case InvalidLevel:
		return "invalid"
	case DefaultLTR:
		return "default-LTR"
	case DefaultRTL:
		return "default-RTL"
	}
	return fmt.Sprintf("%d", uint8(l))
}

func maxLevel(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}
