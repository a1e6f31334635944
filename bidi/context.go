package bidi

import (
	"context"
	"fmt"
	"sync"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/uaxbidi"
	"github.com/npillmayer/uaxbidi/ucd"
)

// paragraphContext holds the transient structures for resolving a paragraph.
// Contexts are short-lived and their arrays are re-usable, so they are pooled.
type paragraphContext struct {
	chain     bidiChain
	state     explicitState
	runs      runQueue
	brackets  *bracketQueue
	isolating isolatingRun
	origin    *contextPool
}

func newParagraphContext() *paragraphContext {
	ctx := &paragraphContext{
		state:    explicitState{stack: newStatusStack()},
		brackets: newBracketQueue(),
	}
	ctx.isolating.brackets = ctx.brackets
	ctx.runs.partial = -1
	return ctx
}

// resolve determines the embedding levels for the paragraph para, which has
// the given bidi types. baseLevel is a requested base level, possibly one of
// DefaultLTR and DefaultRTL.
func (ctx *paragraphContext) resolve(para *Paragraph, types []ucd.BidiType, baseLevel Level) {
	chain := &ctx.chain
	chain.reset(types)
	chain.populate(types)
	if baseLevel == DefaultLTR || baseLevel == DefaultRTL {
		fallback := Level(0)
		if baseLevel == DefaultRTL {
			fallback = 1
		}
		baseLevel = chain.determineBaseLevel(rollerLink, rollerLink, fallback, false)
	}
	T().Debugf("paragraph at %d: base level %s", para.offset, baseLevel)
	para.baseLevel = baseLevel
	ctx.runs.reset()
	ctx.isolating.prepare(chain, para.algo.seq, para.offset, baseLevel)
	ctx.determineLevels(types, baseLevel)
	chain.saveLevels(para.levels, baseLevel)
}

// determineLevels applies rules X1–X10 in a single pass over the chain.
// Whenever a level run is complete, it is handed to the run queue.
func (ctx *paragraphContext) determineLevels(types []ucd.BidiType, baseLevel Level) {
	chain := &ctx.chain
	st := &ctx.state
	st.reset(baseLevel)

	priorLink := rollerLink
	firstLink, lastLink := noLink, noLink
	priorLevel := baseLevel
	sor := ucd.Nil
	for link := chain.next(rollerLink); link != rollerLink; link = chain.next(link) {
		forceFinish := false
		switch t := chain.typeOf(link); t {
		case ucd.RLE, ucd.LRE, ucd.RLO, ucd.LRO: // X2–X5
			if t == ucd.RLE || t == ucd.RLO {
				st.pushEmbedding(st.leastGreaterOdd(), overrideOf(t))
			} else {
				st.pushEmbedding(st.leastGreaterEven(), overrideOf(t))
			}
			chain.abandonNext(priorLink) // X9
			continue
		case ucd.RLI, ucd.LRI, ucd.FSI: // X5a–X5c
			chain.setLevel(link, st.level())
			rtl := t == ucd.RLI
			if t == ucd.FSI {
				rtl = chain.determineBaseLevel(link, rollerLink, 0, true) == 1
			}
			if rtl {
				st.pushIsolate(st.leastGreaterOdd())
			} else {
				st.pushIsolate(st.leastGreaterEven())
			}
		case ucd.PDI: // X6a
			st.popIsolate()
			chain.setLevel(link, st.level())
			if o := st.override(); o != ucd.ON {
				chain.setType(link, o)
				if chain.mergeIfEqual(priorLink, link) {
					continue
				}
			}
		case ucd.PDF: // X7
			st.popEmbedding()
			chain.abandonNext(priorLink) // X9
			continue
		case ucd.B: // X8
			st.reset(baseLevel)
			chain.setLevel(link, baseLevel)
		case ucd.BN: // X9
			chain.abandonNext(priorLink)
			continue
		case ucd.Nil:
			forceFinish = true
			chain.setLevel(link, baseLevel)
		default: // X6
			chain.setLevel(link, st.level())
			if o := st.override(); o != ucd.ON {
				chain.setType(link, o)
			}
			if chain.typeOf(link) != ucd.ON && chain.mergeIfEqual(priorLink, link) {
				continue
			}
		}
		level := chain.levelOf(link)
		if sor == ucd.Nil { // X10
			sor = maxLevel(baseLevel, level).Direction()
			firstLink = link
			priorLevel = level
		} else if level != priorLevel || forceFinish {
			eor := maxLevel(priorLevel, level).Direction()
			ctx.processRun(newLevelRun(chain, types, firstLink, lastLink, sor, eor), forceFinish)
			sor = eor
			firstLink = link
			priorLevel = level
		}
		priorLink, lastLink = link, link
	}
}

func overrideOf(t ucd.BidiType) ucd.BidiType {
	switch t {
	case ucd.LRO:
		return ucd.L
	case ucd.RLO:
		return ucd.R
	}
	return ucd.ON
}

// processRun enqueues a level run and resolves every isolating run sequence
// which is complete.
func (ctx *paragraphContext) processRun(run *levelRun, forceFinish bool) {
	T().Debugf("level %s", run)
	ctx.runs.enqueue(run)
	if !ctx.runs.shouldDequeue() && !forceFinish {
		return
	}
	for !ctx.runs.empty() {
		r := ctx.runs.dequeue()
		if r.is(kindAttached) {
			continue
		}
		ctx.isolating.resolve(r)
	}
}

// determineBaseLevel applies rules P2 and P3 to the links following
// skipLink up to breakLink. Characters between an isolate initiator and its
// matching PDI are ignored. With isIsolate set, the scan ends at an unmatched
// PDI. If no strong character is found, defaultLevel is returned.
func (chain *bidiChain) determineBaseLevel(skipLink, breakLink bidiLink, defaultLevel Level,
	isIsolate bool) Level {
	//
	isolates := 0
	for link := chain.next(skipLink); link != breakLink; link = chain.next(link) {
		switch chain.typeOf(link) {
		case ucd.L:
			if isolates == 0 {
				return 0
			}
		case ucd.R, ucd.AL:
			if isolates == 0 {
				return 1
			}
		case ucd.LRI, ucd.RLI, ucd.FSI:
			isolates++
		case ucd.PDI:
			if isolates > 0 {
				isolates--
			} else if isIsolate {
				return defaultLevel
			}
		}
	}
	return defaultLevel
}

// saveLevels copies the levels of the links to every code unit they cover.
func (chain *bidiChain) saveLevels(levels []Level, baseLevel Level) {
	level := baseLevel
	index := 0
	chain.forEach(func(link bidiLink) {
		for end := link.offset(); index < end && index < len(levels); index++ {
			levels[index] = level
		}
		level = chain.levelOf(link)
	})
	for ; index < len(levels); index++ {
		levels[index] = level
	}
}

// --- Context pool ------------------------------------------------------------

type contextPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalContextPool struct {
	sync.Mutex
	p *contextPool
}

func init() {
	globalContextPool.p = newContextPool(-1)
}

func newContextPool(limit int) *contextPool {
	cp := &contextPool{ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return newParagraphContext(), nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = limit // -1 is infinity
	config.MaxIdle = 8
	config.BlockWhenExhausted = false
	cp.opool = pool.NewObjectPool(cp.ctx, factory, config)
	return cp
}

// SetPoolLimit bounds the number of paragraphs which may be resolved
// simultaneously. If the limit is reached, NewParagraph fails with
// ErrResourceExhausted. A limit < 1 removes the bound. Contexts currently
// borrowed are unaffected.
func SetPoolLimit(n int) {
	if n < 1 {
		n = -1
	}
	globalContextPool.Lock()
	defer globalContextPool.Unlock()
	globalContextPool.p = newContextPool(n)
}

func borrowContext() (*paragraphContext, error) {
	globalContextPool.Lock()
	cp := globalContextPool.p
	globalContextPool.Unlock()
	o, err := cp.opool.BorrowObject(cp.ctx)
	if err != nil {
		T().Errorf("cannot borrow resolution context: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrResourceExhausted, err)
	}
	ctx := o.(*paragraphContext)
	ctx.origin = cp
	return ctx, nil
}

// release clears references to client data and puts the context back into
// the pool it was borrowed from.
func (ctx *paragraphContext) release() {
	ctx.isolating.seq = uaxbidi.CodepointSequence{}
	ctx.isolating.base = nil
	ctx.runs.reset()
	cp := ctx.origin
	ctx.origin = nil
	_ = cp.opool.ReturnObject(cp.ctx, ctx)
}
