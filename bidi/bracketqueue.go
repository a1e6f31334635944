package bidi

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/uaxbidi/ucd"
)

// maxBracketDepth is the capacity of the bracket stack of BD16.
const maxBracketDepth = 63

// bracketPair is a candidate pair of rule N0. It is created for an opening
// bracket and closed when its matching closing bracket turns up. An entry
// is invalidated if a bracket pair enclosing it gets closed first.
type bracketPair struct {
	priorStrongLink bidiLink     // last strong link before the opening bracket
	openingLink     bidiLink     // noLink if invalidated
	closingLink     bidiLink     // noLink while open
	bracket         rune         // canonical closing bracket to match
	strongType      ucd.BidiType // strong type found within the brackets
}

func (p *bracketPair) isOpen() bool {
	return p.openingLink != noLink && p.closingLink == noLink
}

func (p *bracketPair) isClosed() bool {
	return p.openingLink != noLink && p.closingLink != noLink
}

// bracketQueue holds bracket pairs in order of their opening brackets.
// Pairs are dequeued from the front once the front pair is closed, as no
// pair after it may be closed later.
type bracketQueue struct {
	pairs     *arraylist.List
	openCount int
	direction ucd.BidiType // embedding direction of the isolating run
}

func newBracketQueue() *bracketQueue {
	return &bracketQueue{pairs: arraylist.New()}
}

func (q *bracketQueue) reset(direction ucd.BidiType) {
	q.pairs.Clear()
	q.openCount = 0
	q.direction = direction
}

// count returns the number of pairs in the queue, closed or not.
func (q *bracketQueue) count() int {
	return q.pairs.Size()
}

func (q *bracketQueue) at(i int) *bracketPair {
	p, _ := q.pairs.Get(i)
	return p.(*bracketPair)
}

// enqueue adds an opening bracket. It fails if the number of open brackets
// has reached the limit of BD16.
func (q *bracketQueue) enqueue(priorStrongLink, openingLink bidiLink, bracket rune) bool {
	if q.openCount >= maxBracketDepth {
		return false
	}
	q.pairs.Add(&bracketPair{
		priorStrongLink: priorStrongLink,
		openingLink:     openingLink,
		closingLink:     noLink,
		bracket:         ucd.CanonicalBracket(bracket),
		strongType:      ucd.Nil,
	})
	q.openCount++
	return true
}

// closePair matches a closing bracket against the open brackets, latest first.
// Open brackets after the match are invalidated. A closing bracket without
// match is ignored.
func (q *bracketQueue) closePair(closingLink bidiLink, bracket rune) {
	bracket = ucd.CanonicalBracket(bracket)
	for i := q.pairs.Size() - 1; i >= 0; i-- {
		p := q.at(i)
		if !p.isOpen() || p.bracket != bracket {
			continue
		}
		p.closingLink = closingLink
		q.openCount--
		for j := i + 1; j < q.pairs.Size(); j++ {
			if inner := q.at(j); inner.isOpen() {
				inner.openingLink = noLink
				q.openCount--
			}
		}
		return
	}
}

// setStrongType records a strong type for all open pairs. Once a pair has
// seen the embedding direction, it keeps it.
func (q *bracketQueue) setStrongType(t ucd.BidiType) {
	for i := q.pairs.Size() - 1; i >= 0; i-- {
		p := q.at(i)
		if p.isOpen() && p.strongType != q.direction {
			p.strongType = t
		}
	}
}

// shouldDequeue is true if the front pair is closed.
func (q *bracketQueue) shouldDequeue() bool {
	return q.pairs.Size() > 0 && q.at(0).isClosed()
}

func (q *bracketQueue) front() *bracketPair {
	return q.at(0)
}

func (q *bracketQueue) dequeue() {
	if q.pairs.Size() == 0 {
		return
	}
	if q.at(0).isOpen() {
		q.openCount--
	}
	q.pairs.Remove(0)
}
