package bidi

import (
	"fmt"

	"github.com/npillmayer/uaxbidi"
	"github.com/npillmayer/uaxbidi/ucd"
	"golang.org/x/text/unicode/runenames"
)

// MirrorAgent describes a character which has to be replaced by its mirror
// glyph (rule L4).
type MirrorAgent struct {
	Index     int  // position of the character within the code point sequence
	Mirror    rune // mirrored character
	Codepoint rune // original character
}

func (a MirrorAgent) String() string {
	return fmt.Sprintf("%d: U+%04X %s -> U+%04X %s", a.Index, a.Codepoint, runenames.Name(a.Codepoint),
		a.Mirror, runenames.Name(a.Mirror))
}

// MirrorLocator iterates over the characters of a line which are displayed
// right to left and have a mirrored counterpart.
//
//	locator := bidi.NewMirrorLocator()
//	locator.LoadLine(line, seq)
//	for locator.MoveNext() {
//	    agent := locator.Agent()
//	    ...
//	}
//
// After MoveNext has returned false, the locator is reset and may be used
// for another iteration.
type MirrorLocator struct {
	line     *Line
	seq      uaxbidi.CodepointSequence
	runIndex int
	position int
	agent    MirrorAgent
}

// NewMirrorLocator creates a locator which is not bound to a line.
func NewMirrorLocator() *MirrorLocator {
	return &MirrorLocator{}
}

// LoadLine binds the locator to a line. seq has to be the code point
// sequence the line has been created from; otherwise the locator is left
// unbound and MoveNext will return false.
func (loc *MirrorLocator) LoadLine(line *Line, seq uaxbidi.CodepointSequence) {
	loc.line = nil
	loc.seq = uaxbidi.CodepointSequence{}
	if line != nil && seq.SameBuffer(line.para.algo.seq) {
		loc.line = line
		loc.seq = seq
	} else {
		T().Infof("mirror locator: sequence does not belong to line")
	}
	loc.Reset()
}

// MoveNext advances to the next mirrored character. It returns false if
// there is none left.
func (loc *MirrorLocator) MoveNext() bool {
	if loc.line == nil {
		return false
	}
	runs := loc.line.runs
	for ; loc.runIndex < len(runs); loc.runIndex++ {
		run := runs[loc.runIndex]
		if !run.Level.IsRTL() {
			continue
		}
		if loc.position < run.Offset {
			loc.position = run.Offset
		}
		end := run.Offset + run.Length
		for loc.position < end {
			r, next := loc.seq.CodepointAt(loc.position)
			index := loc.position
			loc.position = next
			if mirror := ucd.LookupMirror(r); mirror != 0 {
				loc.agent = MirrorAgent{Index: index, Mirror: mirror, Codepoint: r}
				return true
			}
		}
		loc.position = 0
	}
	loc.Reset()
	return false
}

// Agent returns the current mirrored character.
func (loc *MirrorLocator) Agent() MirrorAgent {
	return loc.agent
}

// Reset restarts iteration at the beginning of the line.
func (loc *MirrorLocator) Reset() {
	loc.runIndex = 0
	loc.position = 0
	loc.agent = MirrorAgent{Index: -1}
}
