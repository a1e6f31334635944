package bidi

import (
	"fmt"

	"github.com/npillmayer/uaxbidi/ucd"
)

// Run is a maximal sequence of code units with the same embedding level.
// Offset is the position of the first code unit within the code point
// sequence. Characters of runs with an odd level are displayed right to left.
type Run struct {
	Offset int
	Length int
	Level  Level
}

func (r Run) String() string {
	return fmt.Sprintf("[%d+%d]@%s", r.Offset, r.Length, r.Level)
}

// Line is a range of a paragraph which will be displayed as a single line.
// It holds the runs of the line in visual order.
type Line struct {
	para   *Paragraph
	offset int
	length int
	levels []Level
	runs   []Run
}

// NewLine creates a line for a range of the paragraph. offset is a position
// within the code point sequence. The range has to be a non-empty part of
// the paragraph, otherwise ErrOutOfRange is returned.
//
// Rules L1 and L2 are applied to the levels of the paragraph.
func (para *Paragraph) NewLine(offset, length int) (*Line, error) {
	end := para.offset + para.length
	if length <= 0 || offset < para.offset || offset >= end || length > end-offset {
		T().Errorf("line %d+%d is out of range of %s", offset, length, para)
		return nil, ErrOutOfRange
	}
	line := &Line{
		para:   para,
		offset: offset,
		length: length,
		levels: make([]Level, length),
	}
	start := offset - para.offset
	copy(line.levels, para.levels[start:start+length])
	line.resetWhitespaceLevels(para.algo.types[offset : offset+length])
	line.reorderRuns()
	return line, nil
}

// resetWhitespaceLevels applies rule L1. Characters removed by rule X9 next
// to the affected characters are reset as well.
func (line *Line) resetWhitespaceLevels(types []ucd.BidiType) {
	base := line.para.baseLevel
	reset := func(from, count int) {
		for i := from; i <= from+count; i++ {
			line.levels[i] = base
		}
	}
	trailing := true
	count := 0
	for i := len(types) - 1; i >= 0; i-- {
		switch types[i] {
		case ucd.B, ucd.S:
			reset(i, count)
			count = 0
			trailing = true
		case ucd.LRE, ucd.RLE, ucd.LRO, ucd.RLO, ucd.PDF, ucd.BN:
			count++
		case ucd.WS, ucd.LRI, ucd.RLI, ucd.FSI, ucd.PDI:
			if trailing {
				reset(i, count)
				count = 0
			}
		default:
			count = 0
			trailing = false
		}
	}
}

// reorderRuns applies rule L2 on the level of runs: from the highest level
// down to the lowest odd level, every maximal sequence of runs at that level
// or higher is reversed.
func (line *Line) reorderRuns() {
	line.runs = line.runs[:0]
	highest, lowest := Level(0), MaxLevel
	for i := 0; i < len(line.levels); {
		level := line.levels[i]
		j := i + 1
		for j < len(line.levels) && line.levels[j] == level {
			j++
		}
		line.runs = append(line.runs, Run{Offset: line.offset + i, Length: j - i, Level: level})
		if level > highest {
			highest = level
		}
		if level < lowest {
			lowest = level
		}
		i = j
	}
	for level := highest; level >= lowest|1; level-- {
		for i := 0; i < len(line.runs); {
			if line.runs[i].Level < level {
				i++
				continue
			}
			j := i + 1
			for j < len(line.runs) && line.runs[j].Level >= level {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				line.runs[a], line.runs[b] = line.runs[b], line.runs[a]
			}
			i = j
		}
	}
}

// Paragraph returns the paragraph the line is part of.
func (line *Line) Paragraph() *Paragraph {
	return line.para
}

// Offset returns the position of the line within the code point sequence.
func (line *Line) Offset() int {
	return line.offset
}

// Length returns the number of code units of the line.
func (line *Line) Length() int {
	return line.length
}

// Runs returns the runs of the line in visual order.
func (line *Line) Runs() []Run {
	runs := make([]Run, len(line.runs))
	copy(runs, line.runs)
	return runs
}

// Levels returns the embedding levels of the code units of the line, after
// application of rule L1.
func (line *Line) Levels() []Level {
	levels := make([]Level, len(line.levels))
	copy(levels, line.levels)
	return levels
}

// VisualMap returns the positions of the characters of the line in visual
// order. A position is the index of the first code unit of a character
// within the code point sequence.
func (line *Line) VisualMap() []int {
	seq := line.para.algo.seq
	vmap := make([]int, 0, line.length)
	for _, run := range line.runs {
		end := run.Offset + run.Length
		if !run.Level.IsRTL() {
			for i := run.Offset; i < end; {
				_, next := seq.CodepointAt(i)
				vmap = append(vmap, i)
				i = next
			}
			continue
		}
		for i := end; i > run.Offset; {
			_, prev := seq.CodepointBefore(i)
			if prev < run.Offset {
				prev = run.Offset
			}
			vmap = append(vmap, prev)
			i = prev
		}
	}
	return vmap
}
