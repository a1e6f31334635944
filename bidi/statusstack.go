package bidi

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/uaxbidi/ucd"
)

// maxStatusDepth is the capacity of the directional status stack (BD2).
const maxStatusDepth = int(MaxLevel) + 2

type statusEntry struct {
	level    Level
	override ucd.BidiType // ON for a neutral override status
	isolate  bool
}

// statusStack is the directional status stack of rules X1–X8.
type statusStack struct {
	entries *arraystack.Stack
}

func newStatusStack() *statusStack {
	return &statusStack{entries: arraystack.New()}
}

// push fails if the stack is full.
func (s *statusStack) push(level Level, override ucd.BidiType, isolate bool) bool {
	if s.entries.Size() >= maxStatusDepth {
		return false
	}
	s.entries.Push(statusEntry{level: level, override: override, isolate: isolate})
	return true
}

func (s *statusStack) pop() {
	s.entries.Pop()
}

func (s *statusStack) top() statusEntry {
	e, ok := s.entries.Peek()
	if !ok {
		return statusEntry{level: InvalidLevel, override: ucd.ON}
	}
	return e.(statusEntry)
}

func (s *statusStack) count() int {
	return s.entries.Size()
}

func (s *statusStack) clear() {
	s.entries.Clear()
}

// --- Explicit levels ---------------------------------------------------------

// explicitState is the state of rules X1–X8: the status stack together with
// the overflow counters.
type explicitState struct {
	stack         *statusStack
	overIsolate   int
	overEmbedding int
	validIsolate  int
}

// reset applies rule X1.
func (st *explicitState) reset(baseLevel Level) {
	st.stack.clear()
	st.stack.push(baseLevel, ucd.ON, false)
	st.overIsolate, st.overEmbedding, st.validIsolate = 0, 0, 0
}

func (st *explicitState) level() Level {
	return st.stack.top().level
}

func (st *explicitState) override() ucd.BidiType {
	return st.stack.top().override
}

func (st *explicitState) leastGreaterOdd() Level {
	return (st.level() + 1) | 1
}

func (st *explicitState) leastGreaterEven() Level {
	return (st.level() + 2) &^ 1
}

// pushEmbedding applies rules X2–X5.
func (st *explicitState) pushEmbedding(level Level, override ucd.BidiType) {
	if level <= MaxLevel && st.overIsolate == 0 && st.overEmbedding == 0 {
		st.stack.push(level, override, false)
	} else if st.overIsolate == 0 {
		st.overEmbedding++
	}
}

// pushIsolate applies rules X5a–X5c, after the isolate initiator has received
// the current embedding level.
func (st *explicitState) pushIsolate(level Level) {
	if level <= MaxLevel && st.overIsolate == 0 && st.overEmbedding == 0 {
		st.validIsolate++
		st.stack.push(level, ucd.ON, true)
	} else {
		st.overIsolate++
	}
}

// popIsolate applies rule X6a, before the PDI receives its embedding level.
func (st *explicitState) popIsolate() {
	if st.overIsolate > 0 {
		st.overIsolate--
	} else if st.validIsolate > 0 {
		st.overEmbedding = 0
		for !st.stack.top().isolate && st.stack.count() > 1 {
			st.stack.pop()
		}
		st.stack.pop()
		st.validIsolate--
	}
}

// popEmbedding applies rule X7.
func (st *explicitState) popEmbedding() {
	if st.overIsolate > 0 {
		return
	}
	if st.overEmbedding > 0 {
		st.overEmbedding--
	} else if !st.stack.top().isolate && st.stack.count() >= 2 {
		st.stack.pop()
	}
}
