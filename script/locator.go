package script

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/uaxbidi"
	"github.com/npillmayer/uaxbidi/ucd"
)

// maxPairDepth is the number of opening brackets remembered. If more
// brackets are open, the oldest one is forgotten.
const maxPairDepth = 63

// Agent describes a run of text of a single script.
type Agent struct {
	Offset int // position of the run within the code point sequence
	Length int // number of code units of the run
	Script ucd.Script
}

func (a Agent) String() string {
	return fmt.Sprintf("[%d+%d]%s", a.Offset, a.Length, a.Script.ISO15924())
}

// pairEntry is an opening bracket waiting for its closing counterpart.
type pairEntry struct {
	script ucd.Script
	mirror rune // closing bracket
}

// Locator iterates over the script runs of a code point sequence.
type Locator struct {
	seq    uaxbidi.CodepointSequence
	offset int
	agent  Agent
	pairs  *arraylist.List
}

// NewLocator creates a locator without input.
func NewLocator() *Locator {
	return &Locator{pairs: arraylist.New()}
}

// LoadCodepoints sets the input of the locator and resets it.
func (loc *Locator) LoadCodepoints(seq uaxbidi.CodepointSequence) {
	loc.seq = seq
	loc.Reset()
}

// Agent returns the current script run.
func (loc *Locator) Agent() Agent {
	return loc.agent
}

// Reset restarts iteration at the beginning of the input.
func (loc *Locator) Reset() {
	loc.offset = 0
	loc.agent = Agent{}
	loc.pairs.Clear()
}

// MoveNext advances to the next script run. It returns false if the input
// is exhausted, after which the locator is reset.
func (loc *Locator) MoveNext() bool {
	if loc.offset >= loc.seq.Len() {
		loc.Reset()
		return false
	}
	start := loc.offset
	result := ucd.Common
	index := start
	for index < loc.seq.Len() {
		r, next := loc.seq.CodepointAt(index)
		script := ucd.LookupScript(r)
		matched := -1
		if script == ucd.Common {
			switch ucd.LookupGeneralCategory(r) {
			case ucd.Ps:
				if mirror := ucd.LookupMirror(r); mirror != 0 {
					loc.pushPair(result, mirror)
				}
			case ucd.Pe:
				if ucd.LookupMirror(r) != 0 {
					if matched = loc.matchPair(r); matched >= 0 {
						script = loc.pairAt(matched).script
					}
				}
			}
		}
		if !isSimilar(result, script) {
			break
		}
		if isUnspecified(result) && !isUnspecified(script) {
			result = script
			loc.assignOpenPairs(script)
		}
		if matched >= 0 {
			loc.pairs.Remove(matched)
		}
		index = next
	}
	loc.agent = Agent{Offset: start, Length: index - start, Script: result}
	loc.offset = index
	return true
}

func (loc *Locator) pairAt(i int) *pairEntry {
	e, _ := loc.pairs.Get(i)
	return e.(*pairEntry)
}

func (loc *Locator) pushPair(script ucd.Script, mirror rune) {
	if loc.pairs.Size() >= maxPairDepth {
		loc.pairs.Remove(0)
	}
	loc.pairs.Add(&pairEntry{script: script, mirror: mirror})
}

// matchPair searches the open brackets for the one closed by r. Open
// brackets after the match are dropped. It returns the index of the
// matching entry or -1.
func (loc *Locator) matchPair(r rune) int {
	for i := loc.pairs.Size() - 1; i >= 0; i-- {
		if loc.pairAt(i).mirror == r {
			for j := loc.pairs.Size() - 1; j > i; j-- {
				loc.pairs.Remove(j)
			}
			return i
		}
	}
	return -1
}

// assignOpenPairs hands a script to all open brackets which did not see one.
func (loc *Locator) assignOpenPairs(script ucd.Script) {
	for i := loc.pairs.Size() - 1; i >= 0; i-- {
		if e := loc.pairAt(i); isUnspecified(e.script) {
			e.script = script
		}
	}
}

func isUnspecified(s ucd.Script) bool {
	return s == ucd.Common || s == ucd.Inherited
}

func isSimilar(a, b ucd.Script) bool {
	return isUnspecified(a) || isUnspecified(b) || a == b
}
