package bidi

import (
	"fmt"
)

// Paragraph holds the resolved embedding levels of a paragraph, i.e. the
// result of applying rules P2–I2. Levels are not yet adjusted for line
// breaks; see NewLine.
type Paragraph struct {
	algo      *Algorithm
	offset    int
	length    int
	baseLevel Level
	levels    []Level
}

// NewParagraph resolves the paragraph starting at offset. The paragraph ends
// after its paragraph separator or after suggested code units, whichever
// comes first (see ParagraphBoundary).
//
// baseLevel is either an explicit paragraph embedding level or one of
// DefaultLTR and DefaultRTL, which will determine the base level from the
// first strong character of the paragraph.
func (algo *Algorithm) NewParagraph(offset, suggested int, baseLevel Level) (*Paragraph, error) {
	if offset < 0 || offset >= len(algo.types) || suggested <= 0 {
		T().Errorf("paragraph at %d+%d is out of range of %d code units", offset, suggested,
			len(algo.types))
		return nil, ErrOutOfRange
	}
	if !baseLevel.IsValid() && baseLevel != DefaultLTR && baseLevel != DefaultRTL {
		T().Errorf("paragraph base level %s is invalid", baseLevel)
		return nil, fmt.Errorf("%w: base level %s", ErrOutOfRange, baseLevel)
	}
	length, _ := algo.ParagraphBoundary(offset, suggested)
	ctx, err := borrowContext()
	if err != nil {
		return nil, err
	}
	defer ctx.release()
	para := &Paragraph{
		algo:   algo,
		offset: offset,
		length: length,
		levels: make([]Level, length),
	}
	ctx.resolve(para, algo.types[offset:offset+length], baseLevel)
	return para, nil
}

// Algorithm returns the algorithm the paragraph has been created from.
func (para *Paragraph) Algorithm() *Algorithm {
	return para.algo
}

// Offset returns the position of the paragraph within the code point sequence.
func (para *Paragraph) Offset() int {
	return para.offset
}

// Length returns the number of code units of the paragraph, including its
// separator.
func (para *Paragraph) Length() int {
	return para.length
}

// BaseLevel returns the paragraph embedding level.
func (para *Paragraph) BaseLevel() Level {
	return para.baseLevel
}

// Levels returns a copy of the embedding levels, one per code unit.
func (para *Paragraph) Levels() []Level {
	levels := make([]Level, len(para.levels))
	copy(levels, para.levels)
	return levels
}

// LevelAt returns the embedding level of the code unit at the given position
// of the code point sequence. For positions outside of the paragraph,
// InvalidLevel is returned.
func (para *Paragraph) LevelAt(pos int) Level {
	if pos < para.offset || pos >= para.offset+para.length {
		return InvalidLevel
	}
	return para.levels[pos-para.offset]
}

func (para *Paragraph) String() string {
	return fmt.Sprintf("paragraph[%d+%d] base=%s", para.offset, para.length, para.baseLevel)
}
