package bidi

import (
	"fmt"

	"github.com/npillmayer/uaxbidi/ucd"
)

// runKind flags the role of a level run within an isolating run sequence.
type runKind uint8

const (
	kindIsolate     runKind = 1 << iota // ends with an isolate initiator
	kindPartial                         // isolate initiator without matching PDI (yet)
	kindTerminating                     // starts with a PDI
	kindAttached                        // continues an isolating run sequence
)

func (k runKind) String() string {
	s := ""
	for i, name := range []string{"isolate", "partial", "terminating", "attached"} {
		if k&(1<<i) != 0 {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	if s == "" {
		return "simple"
	}
	return s
}

// levelRun is a maximal sequence of links with the same embedding level (BD7).
// Level runs connected by an isolate initiator and its matching PDI form an
// isolating run sequence; they are kept as a list with the first level run as
// its head.
type levelRun struct {
	next           *levelRun
	firstLink      bidiLink
	lastLink       bidiLink
	subsequentLink bidiLink
	sor, eor       ucd.BidiType
	kind           runKind
	level          Level
}

// newLevelRun creates a level run from firstLink to lastLink. Its kind is
// determined by the original bidi types of the characters at the borders of
// the run.
func newLevelRun(chain *bidiChain, types []ucd.BidiType, firstLink, lastLink bidiLink,
	sor, eor ucd.BidiType) *levelRun {
	//
	run := &levelRun{
		firstLink:      firstLink,
		lastLink:       lastLink,
		subsequentLink: chain.next(lastLink),
		sor:            sor,
		eor:            eor,
		level:          chain.levelOf(firstLink),
	}
	if types[lastLink.offset()].IsIsolateInitiator() {
		run.kind |= kindIsolate | kindPartial
	}
	if types[firstLink.offset()] == ucd.PDI {
		run.kind |= kindTerminating
	}
	return run
}

// attach continues an isolating run sequence with next, which starts with
// the matching PDI of the isolate initiator run ends with.
func (run *levelRun) attach(next *levelRun) {
	next.kind |= kindAttached
	run.kind &^= kindPartial
	run.next = next
}

func (run *levelRun) is(k runKind) bool {
	return run.kind&k != 0
}

// last returns the final level run of the isolating run sequence starting
// with run.
func (run *levelRun) last() *levelRun {
	r := run
	for r.next != nil {
		r = r.next
	}
	return r
}

func (run *levelRun) String() string {
	return fmt.Sprintf("run[%d…%d] level=%s sor=%s eor=%s %s", run.firstLink.offset(),
		run.subsequentLink.offset(), run.level, run.sor, run.eor, run.kind)
}

// --- Run queue ---------------------------------------------------------------

// runQueue collects the level runs of a paragraph until their isolating run
// sequences are complete. As long as an isolate initiator waits for its PDI,
// level runs are held back, because the sequence containing the initiator has
// to be resolved as a whole.
type runQueue struct {
	runs    []*levelRun
	front   int
	partial int // index of the latest run waiting for its PDI, or -1
}

func (q *runQueue) reset() {
	for i := range q.runs {
		q.runs[i] = nil
	}
	q.runs = q.runs[:0]
	q.front = 0
	q.partial = -1
}

func (q *runQueue) empty() bool {
	return q.front >= len(q.runs)
}

func (q *runQueue) enqueue(run *levelRun) {
	if q.partial >= 0 && run.is(kindTerminating) {
		q.runs[q.partial].attach(run)
		q.findPreviousPartial()
	}
	q.runs = append(q.runs, run)
	if run.is(kindIsolate) {
		q.partial = len(q.runs) - 1
	}
}

func (q *runQueue) findPreviousPartial() {
	for i := q.partial - 1; i >= q.front; i-- {
		if q.runs[i].is(kindPartial) {
			q.partial = i
			return
		}
	}
	q.partial = -1
}

// shouldDequeue is true if no isolate initiator waits for its PDI.
func (q *runQueue) shouldDequeue() bool {
	return q.partial < 0
}

func (q *runQueue) dequeue() *levelRun {
	if q.empty() {
		return nil
	}
	run := q.runs[q.front]
	q.runs[q.front] = nil
	q.front++
	if q.empty() {
		q.runs = q.runs[:0]
		q.front = 0
		q.partial = -1
	}
	return run
}
