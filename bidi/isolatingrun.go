package bidi

import (
	"github.com/npillmayer/uaxbidi"
	"github.com/npillmayer/uaxbidi/ucd"
)

// isolatingRun resolves the weak types, neutral types and implicit levels of
// an isolating run sequence (BD13). The level runs of the sequence are
// temporarily joined into a ring with the roller, so every rule is a simple
// walk over the chain. Afterwards the links are restored to paragraph order.
type isolatingRun struct {
	chain      *bidiChain
	seq        uaxbidi.CodepointSequence
	paraOffset int   // offset of the paragraph within seq
	paraLevel  Level // paragraph embedding level
	brackets   *bracketQueue

	base     *levelRun
	level    Level
	sos, eos ucd.BidiType
}

func (iso *isolatingRun) prepare(chain *bidiChain, seq uaxbidi.CodepointSequence,
	paraOffset int, paraLevel Level) {
	//
	iso.chain = chain
	iso.seq = seq
	iso.paraOffset = paraOffset
	iso.paraLevel = paraLevel
	iso.base = nil
}

// resolve applies rules W1–I2 to the isolating run sequence headed by base.
func (iso *isolatingRun) resolve(base *levelRun) {
	chain := iso.chain
	last := base.last()
	iso.base = base
	iso.level = base.level
	iso.sos = base.sor
	if last.is(kindPartial) { // X10: unmatched isolate initiator
		iso.eos = maxLevel(base.level, iso.paraLevel).Direction()
	} else {
		iso.eos = last.eor
	}
	T().Debugf("resolve isolating run at %d: level=%s sos=%s eos=%s",
		base.firstLink.offset(), iso.level, iso.sos, iso.eos)

	originalLink := chain.next(rollerLink)
	chain.setNext(rollerLink, base.firstLink)
	for run := base; run.next != nil; run = run.next {
		chain.setNext(run.lastLink, run.next.firstLink)
	}
	chain.setNext(last.lastLink, rollerLink)
	lastSubsequent := last.subsequentLink

	lastLink := iso.resolveWeakTypes()
	iso.resolveBrackets()
	iso.resolveNeutralTypes()
	iso.resolveImplicitLevels()

	chain.setNext(rollerLink, originalLink)
	for run := base; run.next != nil; run = run.next {
		chain.setNext(run.lastLink, run.subsequentLink)
	}
	chain.setNext(lastLink, lastSubsequent)
}

// resolveWeakTypes applies rules W1–W7 in two passes, merging links which
// end up with the same type. It returns the final link of the sequence.
// Links of type ON are never merged, as rule N0 inspects them one by one.
func (iso *isolatingRun) resolveWeakTypes() bidiLink {
	chain := iso.chain

	priorLink := rollerLink
	priorType := iso.sos
	strongType := iso.sos
	for link := chain.next(rollerLink); link != rollerLink; link = chain.next(link) {
		t := chain.typeOf(link)
		forceMerge := false
		switch t {
		case ucd.NSM: // W1
			if priorType.IsIsolate() {
				t = ucd.ON
			} else {
				t = priorType
			}
			// marks following a bracket travel with it through N0
			forceMerge = priorType == ucd.ON
		case ucd.EN: // W2
			if strongType == ucd.AL {
				t = ucd.AN
			}
		case ucd.AL: // W3
			strongType = ucd.AL
			t = ucd.R
		case ucd.L, ucd.R:
			strongType = t
		}
		chain.setType(link, t)
		if priorLink != rollerLink && (forceMerge || (t != ucd.ON && t == priorType)) {
			chain.abandonNext(priorLink)
		} else {
			priorLink, priorType = link, t
		}
	}

	// W4 sees separators next to terminators before W5 turned those into
	// numbers, so separatorPrior keeps the pre-W5 type of the prior link.
	priorLink = rollerLink
	priorType = iso.sos
	separatorPrior := iso.sos
	strongType = iso.sos
	for link := chain.next(rollerLink); link != rollerLink; link = chain.next(link) {
		t := chain.typeOf(link)
		nextType := chain.typeOf(chain.next(link))
		beforeW5 := t
		switch t {
		case ucd.ES, ucd.CS:
			if separatorPrior.IsNumber() && separatorPrior == nextType &&
				(separatorPrior == ucd.EN || t == ucd.CS) && chain.isSingle(link) {
				t = separatorPrior // W4
			} else {
				t = ucd.ON // W6
			}
			beforeW5 = t
		case ucd.ET:
			if priorType == ucd.EN || nextType == ucd.EN {
				t = ucd.EN // W5
			} else {
				t = ucd.ON // W6
			}
		case ucd.L, ucd.R:
			strongType = t
		}
		separatorPrior = beforeW5
		resolved := t
		if t == ucd.EN && strongType == ucd.L { // W7
			resolved = ucd.L
		}
		chain.setType(link, resolved)
		if priorLink != rollerLink && t != ucd.ON && t == priorType {
			chain.abandonNext(priorLink)
		} else {
			priorLink, priorType = link, t
		}
	}
	return priorLink
}

// resolveBrackets applies rule N0. Bracket pairs are identified following
// BD16 while walking the sequence and resolved as soon as no earlier pair
// may still be closed.
func (iso *isolatingRun) resolveBrackets() {
	chain := iso.chain
	queue := iso.brackets
	queue.reset(iso.level.Direction())
	priorStrongLink := noLink
pairing:
	for link := chain.next(rollerLink); link != rollerLink; link = chain.next(link) {
		t := chain.typeOf(link)
		switch t {
		case ucd.ON:
			cp, _ := iso.seq.CodepointAt(iso.paraOffset + link.offset())
			paired, bt := ucd.LookupBracketPair(cp)
			switch bt {
			case ucd.BracketOpen:
				if !queue.enqueue(priorStrongLink, link, paired) {
					T().Debugf("bracket stack overflow at %d", link.offset())
					break pairing
				}
			case ucd.BracketClose:
				if queue.count() > 0 {
					queue.closePair(link, cp)
					if queue.shouldDequeue() {
						iso.resolveAvailableBrackets(false)
					}
				}
			}
		case ucd.EN, ucd.AN:
			t = ucd.R
			fallthrough
		case ucd.L, ucd.R:
			if queue.count() > 0 {
				queue.setStrongType(t)
			}
			priorStrongLink = link
		}
	}
	iso.resolveAvailableBrackets(true)
}

// resolveAvailableBrackets resolves closed pairs at the front of the queue.
// With drain set, pairs which are still open are dropped as well.
func (iso *isolatingRun) resolveAvailableBrackets(drain bool) {
	queue := iso.brackets
	for queue.count() > 0 {
		pair := queue.front()
		if !pair.isClosed() {
			if pair.isOpen() && !drain {
				return
			}
			queue.dequeue()
			continue
		}
		if t := iso.bracketPairType(pair); t != ucd.Nil {
			iso.chain.setType(pair.openingLink, t)
			iso.chain.setType(pair.closingLink, t)
		}
		queue.dequeue()
	}
}

// bracketPairType determines the type of a closed bracket pair (N0 b–d).
func (iso *isolatingRun) bracketPairType(pair *bracketPair) ucd.BidiType {
	chain := iso.chain
	embedding := iso.brackets.direction
	switch pair.strongType {
	case embedding:
		return embedding
	case ucd.Nil:
		return ucd.Nil
	}
	// strong type opposite to the embedding direction: check the context
	prior := iso.sos
	link := chain.next(rollerLink)
	if pair.priorStrongLink != noLink {
		prior = chain.typeOf(pair.priorStrongLink)
		if prior.IsNumber() {
			prior = ucd.R
		}
		link = chain.next(pair.priorStrongLink)
	}
	// brackets resolved in the meantime count as strong context
	for ; link != pair.openingLink; link = chain.next(link) {
		if t := chain.typeOf(link); t == ucd.L || t == ucd.R {
			prior = t
		}
	}
	if prior == pair.strongType {
		return prior
	}
	return embedding
}

// resolveNeutralTypes applies rules N1 and N2. Numbers count as R.
func (iso *isolatingRun) resolveNeutralTypes() {
	chain := iso.chain
	embedding := iso.level.Direction()
	strongType := iso.sos
	neutralLink := noLink
	for link := chain.next(rollerLink); link != rollerLink; link = chain.next(link) {
		switch t := chain.typeOf(link); t {
		case ucd.L:
			strongType = ucd.L
		case ucd.R, ucd.EN, ucd.AN:
			strongType = ucd.R
		case ucd.B, ucd.S, ucd.WS, ucd.ON, ucd.LRI, ucd.RLI, ucd.FSI, ucd.PDI:
			if neutralLink == noLink {
				neutralLink = link
			}
			next := chain.next(link)
			nextType := chain.typeOf(next)
			switch {
			case next == rollerLink:
				nextType = iso.eos
			case nextType.IsNumber():
				nextType = ucd.R
			}
			if nextType != ucd.L && nextType != ucd.R {
				continue
			}
			resolved := embedding
			if nextType == strongType {
				resolved = strongType
			}
			for l := neutralLink; l != next; l = chain.next(l) {
				chain.setType(l, resolved)
			}
			neutralLink = noLink
		}
	}
}

// resolveImplicitLevels applies rules I1 and I2.
func (iso *isolatingRun) resolveImplicitLevels() {
	chain := iso.chain
	for link := chain.next(rollerLink); link != rollerLink; link = chain.next(link) {
		level := chain.levelOf(link)
		switch t := chain.typeOf(link); {
		case !level.IsRTL() && t == ucd.R:
			level++
		case !level.IsRTL() && t.IsNumber():
			level += 2
		case level.IsRTL() && t != ucd.R:
			level++
		}
		chain.setLevel(link, level)
	}
}
