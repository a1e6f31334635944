package bidi

import (
	"fmt"
	"strings"

	"github.com/npillmayer/uaxbidi/ucd"
)

// bidiLink is an index into the arena of a bidiChain. The link for code unit i
// of a paragraph has index i+1; index 0 is the roller, which closes the chain
// into a ring.
type bidiLink int32

const (
	rollerLink bidiLink = 0
	noLink     bidiLink = -1
)

// offset returns the paragraph offset of the first code unit of a link.
func (link bidiLink) offset() int {
	return int(link) - 1
}

// bidiChain is a singly linked ring of links over a paragraph. Each link covers
// the code units up to the next link. Links are never inserted after
// population, only removed (abandoned), thereby extending the preceding link.
type bidiChain struct {
	types  []ucd.BidiType
	levels []Level
	links  []bidiLink
	last   bidiLink
}

// reset prepares the arena for a paragraph. Positions 1…n receive the original
// bidi types of the code units; the type of a link position is overwritten
// as resolution proceeds, other positions keep the original types.
func (chain *bidiChain) reset(types []ucd.BidiType) {
	n := len(types) + 2
	if cap(chain.types) < n {
		chain.types = make([]ucd.BidiType, n)
		chain.levels = make([]Level, n)
		chain.links = make([]bidiLink, n)
	}
	chain.types = chain.types[:n]
	chain.levels = chain.levels[:n]
	chain.links = chain.links[:n]
	copy(chain.types[1:], types)
	chain.types[n-1] = ucd.Nil
	for i := range chain.levels {
		chain.levels[i] = InvalidLevel
		chain.links[i] = noLink
	}
	chain.types[rollerLink] = ucd.Nil
	chain.links[rollerLink] = rollerLink
	chain.last = rollerLink
}

// add appends a link of type t, starting length units after the last link.
func (chain *bidiChain) add(t ucd.BidiType, length int) {
	current := chain.last + bidiLink(length)
	chain.types[current] = t
	chain.links[current] = rollerLink
	chain.links[chain.last] = current
	chain.last = current
}

func (chain *bidiChain) next(link bidiLink) bidiLink {
	return chain.links[link]
}

func (chain *bidiChain) setNext(link, next bidiLink) {
	chain.links[link] = next
}

func (chain *bidiChain) typeOf(link bidiLink) ucd.BidiType {
	return chain.types[link]
}

func (chain *bidiChain) setType(link bidiLink, t ucd.BidiType) {
	chain.types[link] = t
}

func (chain *bidiChain) levelOf(link bidiLink) Level {
	return chain.levels[link]
}

func (chain *bidiChain) setLevel(link bidiLink, level Level) {
	chain.levels[link] = level
}

// isSingle is true if a link covers a single character, not counting
// characters removed by rule X9.
func (chain *bidiChain) isSingle(link bidiLink) bool {
	next := chain.links[link]
	for l := link + 1; l != next && int(l) < len(chain.types); l++ {
		if !chain.types[l].IsBNEquivalent() {
			return false
		}
	}
	return true
}

// abandonNext removes the successor of link from the chain. Link then covers
// the code units of its former successor as well.
func (chain *bidiChain) abandonNext(link bidiLink) {
	next := chain.links[link]
	chain.links[link] = chain.links[next]
}

// mergeIfEqual abandons second if it has the same type and level as first.
// second has to be the successor of first.
func (chain *bidiChain) mergeIfEqual(first, second bidiLink) bool {
	if chain.types[first] == chain.types[second] && chain.levels[first] == chain.levels[second] {
		chain.links[first] = chain.links[second]
		return true
	}
	return false
}

// forEach calls f for every link of the chain, starting after the roller.
// f must not abandon the link following the current one.
func (chain *bidiChain) forEach(f func(link bidiLink)) {
	for link := chain.links[rollerLink]; link != rollerLink; link = chain.links[link] {
		f(link)
	}
}

// populate creates the links for a paragraph. A new link starts at every change
// of type. Types on which the rules operate character by character always get
// a link of their own. A paragraph separator ends population; code units after
// it (i.e. the LF of CR+LF) belong to its link. The final Nil link closes the
// last level run.
func (chain *bidiChain) populate(types []ucd.BidiType) {
	t := ucd.Nil
	priorIndex := -1
	index := 0
	for ; index < len(types); index++ {
		priorType := t
		t = types[index]
		switch t {
		case ucd.B, ucd.ON, ucd.LRE, ucd.RLE, ucd.LRO, ucd.RLO, ucd.PDF,
			ucd.LRI, ucd.RLI, ucd.FSI, ucd.PDI:
			chain.add(t, index-priorIndex)
			priorIndex = index
		default:
			if t != priorType {
				chain.add(t, index-priorIndex)
				priorIndex = index
			}
		}
		if t == ucd.B {
			index = len(types)
			break
		}
	}
	chain.add(ucd.Nil, index-priorIndex)
}

func (chain *bidiChain) String() string {
	var b strings.Builder
	b.WriteString("chain[")
	chain.forEach(func(link bidiLink) {
		fmt.Fprintf(&b, " %d:%s/%s", link.offset(), chain.typeOf(link), chain.levelOf(link))
	})
	b.WriteString(" ]")
	return b.String()
}
