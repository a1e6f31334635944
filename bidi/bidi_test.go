package bidi_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uaxbidi"
	"github.com/npillmayer/uaxbidi/bidi"
)

func resolve(t *testing.T, seq uaxbidi.CodepointSequence, base bidi.Level) *bidi.Paragraph {
	t.Helper()
	algo, err := bidi.NewAlgorithm(seq, bidi.Testing(true))
	if err != nil {
		t.Fatalf("cannot create algorithm: %v", err)
	}
	para, err := algo.NewParagraph(0, seq.Len(), base)
	if err != nil {
		t.Fatalf("cannot create paragraph: %v", err)
	}
	return para
}

func levels(l ...int) []bidi.Level {
	levels := make([]bidi.Level, len(l))
	for i, n := range l {
		levels[i] = bidi.Level(n)
	}
	return levels
}

func TestLTRText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := uaxbidi.SequenceOfString("hello world")
	para := resolve(t, seq, bidi.DefaultLTR)
	if para.BaseLevel() != 0 {
		t.Errorf("expected base level 0, is %s", para.BaseLevel())
	}
	if diff := cmp.Diff(make([]bidi.Level, 11), para.Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
	line, err := para.NewLine(0, seq.Len())
	if err != nil {
		t.Fatal(err)
	}
	expected := []bidi.Run{{Offset: 0, Length: 11, Level: 0}}
	if diff := cmp.Diff(expected, line.Runs()); diff != "" {
		t.Errorf("unexpected runs (-want +got):\n%s", diff)
	}
}

func TestMixedText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := uaxbidi.SequenceOfString("car is THE CAR in arabic")
	para := resolve(t, seq, bidi.DefaultLTR)
	expected := levels(0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	if diff := cmp.Diff(expected, para.Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
	line, err := para.NewLine(0, seq.Len())
	if err != nil {
		t.Fatal(err)
	}
	vmap := []int{0, 1, 2, 3, 4, 5, 6, 13, 12, 11, 10, 9, 8, 7, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23}
	if diff := cmp.Diff(vmap, line.VisualMap()); diff != "" {
		t.Errorf("unexpected visual order (-want +got):\n%s", diff)
	}
}

func TestBaseLevelDetection(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	para := resolve(t, uaxbidi.SequenceOfString("ABC def"), bidi.DefaultLTR)
	if para.BaseLevel() != 1 {
		t.Errorf("expected base level 1, is %s", para.BaseLevel())
	}
	if diff := cmp.Diff(levels(1, 1, 1, 1, 2, 2, 2), para.Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
	line, _ := para.NewLine(0, 7)
	if diff := cmp.Diff([]int{4, 5, 6, 3, 2, 1, 0}, line.VisualMap()); diff != "" {
		t.Errorf("unexpected visual order (-want +got):\n%s", diff)
	}
	// neutral text falls back to the requested default
	para = resolve(t, uaxbidi.SequenceOfString("123 ..."), bidi.DefaultRTL)
	if para.BaseLevel() != 1 {
		t.Errorf("expected default base level 1, is %s", para.BaseLevel())
	}
	// strong characters within isolates are skipped
	seq := uaxbidi.NewUTF32Sequence([]rune("\u2067ABC\u2069def"))
	para = resolve(t, seq, bidi.DefaultRTL)
	if para.BaseLevel() != 0 {
		t.Errorf("expected base level 0, is %s", para.BaseLevel())
	}
	if diff := cmp.Diff(levels(0, 1, 1, 1, 0, 0, 0, 0), para.Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
}

func TestExplicitBaseLevel(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	para := resolve(t, uaxbidi.SequenceOfString("abc"), 1)
	if diff := cmp.Diff(levels(2, 2, 2), para.Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
	para = resolve(t, uaxbidi.SequenceOfString("AB 12"), bidi.DefaultLTR)
	if diff := cmp.Diff(levels(1, 1, 1, 2, 2), para.Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
}

func TestArabicNumbers(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// ALEF, space, 1, 2: W2 turns the digits into Arabic numbers
	seq := uaxbidi.NewUTF32Sequence([]rune("ا 12"))
	para := resolve(t, seq, 0)
	if diff := cmp.Diff(levels(1, 1, 2, 2), para.Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
	// W7: European numbers after L stay at the level of L
	para = resolve(t, uaxbidi.SequenceOfString("a 1,5$"), 1)
	if diff := cmp.Diff(levels(2, 2, 2, 2, 2, 2), para.Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
}

func TestIsolates(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := uaxbidi.NewUTF32Sequence([]rune("a\u2067bc\u2069d"))
	para := resolve(t, seq, bidi.DefaultLTR)
	if diff := cmp.Diff(levels(0, 0, 2, 2, 0, 0), para.Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
	seq = uaxbidi.NewUTF32Sequence([]rune("x\u2068AB\u2069y"))
	para = resolve(t, seq, bidi.DefaultLTR)
	if diff := cmp.Diff(levels(0, 0, 1, 1, 0, 0), para.Levels()); diff != "" {
		t.Errorf("unexpected levels for RTL first-strong isolate (-want +got):\n%s", diff)
	}
	seq = uaxbidi.NewUTF32Sequence([]rune("x\u2068ab\u2069y"))
	para = resolve(t, seq, bidi.DefaultLTR)
	if diff := cmp.Diff(levels(0, 0, 2, 2, 0, 0), para.Levels()); diff != "" {
		t.Errorf("unexpected levels for LTR first-strong isolate (-want +got):\n%s", diff)
	}
}

func TestBracketPairs(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	para := resolve(t, uaxbidi.SequenceOfString("A(B)c"), 0)
	if diff := cmp.Diff(levels(1, 1, 1, 1, 0), para.Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
	seq := uaxbidi.NewUTF32Sequence([]rune("A\u2329B\u3009c"))
	para = resolve(t, seq, 0)
	if diff := cmp.Diff(levels(1, 1, 1, 1, 0), para.Levels()); diff != "" {
		t.Errorf("unexpected levels for canonical brackets (-want +got):\n%s", diff)
	}
	// brackets around L text in an R context take the embedding direction
	para = resolve(t, uaxbidi.SequenceOfString("(abc)"), 1)
	if diff := cmp.Diff(levels(1, 2, 2, 2, 1), para.Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
}

func TestNumberSeparators(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, test := range []struct {
		text   string
		levels []bidi.Level
	}{
		{"5-3", levels(2, 2, 2)},
		{"5,3", levels(2, 2, 2)},
		// a separator after a terminator is not between two numbers
		{"5%-3", levels(2, 2, 1, 2)},
		{"5%,3", levels(2, 2, 1, 2)},
		{"5-%3", levels(2, 1, 2, 2)},
		{"5+5%", levels(2, 2, 2, 2)},
	} {
		para := resolve(t, uaxbidi.SequenceOfString(test.text), 1)
		if diff := cmp.Diff(test.levels, para.Levels()); diff != "" {
			t.Errorf("unexpected levels for %q (-want +got):\n%s", test.text, diff)
		}
	}
}

func TestBracketStackLimit(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, test := range []struct {
		openers int
		levels  []bidi.Level
	}{
		{62, levels(2, 2, 2)},
		{63, levels(2, 2, 1)}, // "[" does not fit on the bracket stack
	} {
		text := "a" + strings.Repeat("(", test.openers) + "[b]א"
		para := resolve(t, uaxbidi.SequenceOfString(text), 1)
		start := 1 + test.openers
		got := para.Levels()[start : start+3]
		if diff := cmp.Diff(test.levels, got); diff != "" {
			t.Errorf("unexpected levels for %d openers (-want +got):\n%s", test.openers, diff)
		}
	}
}

func TestQuotedBrackets(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := uaxbidi.NewUTF32Sequence([]rune("(DID YOU SAY 'שלום')"))
	algo, err := bidi.NewAlgorithm(seq)
	if err != nil {
		t.Fatal(err)
	}
	para, err := algo.NewParagraph(0, seq.Len(), 0)
	if err != nil {
		t.Fatal(err)
	}
	expected := levels(0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 0, 0)
	if diff := cmp.Diff(expected, para.Levels()); diff != "" {
		t.Errorf("unexpected levels in LTR paragraph (-want +got):\n%s", diff)
	}
	para, err = algo.NewParagraph(0, seq.Len(), 1)
	if err != nil {
		t.Fatal(err)
	}
	expected = levels(1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1)
	if diff := cmp.Diff(expected, para.Levels()); diff != "" {
		t.Errorf("unexpected levels in RTL paragraph (-want +got):\n%s", diff)
	}
	got := para.Levels()
	if got[0] != got[len(got)-1] {
		t.Errorf("expected both parentheses at the same level, have %s and %s",
			got[0], got[len(got)-1])
	}
}

func TestDeepEmbeddings(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var text []rune
	for i := 0; i < 200; i++ {
		text = append(text, '\u202B') // RLE
	}
	text = append(text, 'A')
	for i := 0; i < 200; i++ {
		text = append(text, '\u202C') // PDF
	}
	text = append(text, 'b')
	para := resolve(t, uaxbidi.NewUTF32Sequence(text), 0)
	if l := para.LevelAt(200); l != bidi.MaxLevel {
		t.Errorf("expected level of R at maximum depth to be %d, is %s", bidi.MaxLevel, l)
	}
	if l := para.LevelAt(401); l != 0 {
		t.Errorf("expected level after all embeddings to be 0, is %s", l)
	}
	for i, l := range para.Levels() {
		if l > bidi.MaxLevel+1 {
			t.Fatalf("level at %d exceeds maximum: %s", i, l)
		}
	}
}

func TestIdempotence(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := uaxbidi.SequenceOfString("he said “\u202BSHALOM (OLAM)\u202C” to me, 1234!")
	first := resolve(t, seq, bidi.DefaultLTR)
	second := resolve(t, seq, bidi.DefaultLTR)
	if diff := cmp.Diff(first.Levels(), second.Levels()); diff != "" {
		t.Errorf("levels differ between runs (-first +second):\n%s", diff)
	}
	if len(first.Levels()) != first.Length() {
		t.Errorf("expected one level per code unit")
	}
}

func TestParagraphBoundary(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := uaxbidi.SequenceOfString("ab\r\ncd")
	algo, err := bidi.NewAlgorithm(seq)
	if err != nil {
		t.Fatal(err)
	}
	if length, sep := algo.ParagraphBoundary(0, 6); length != 4 || sep != 2 {
		t.Errorf("expected paragraph of length 4 with separator of length 2, have %d/%d", length, sep)
	}
	if length, sep := algo.ParagraphBoundary(0, 3); length != 4 || sep != 2 {
		t.Errorf("expected LF to be absorbed beyond suggested length, have %d/%d", length, sep)
	}
	if length, sep := algo.ParagraphBoundary(4, 10); length != 2 || sep != 0 {
		t.Errorf("expected final paragraph of length 2, have %d/%d", length, sep)
	}
	var paras []*bidi.Paragraph
	for offset := 0; offset < seq.Len(); {
		para, err := algo.NewParagraph(offset, seq.Len()-offset, bidi.DefaultLTR)
		if err != nil {
			t.Fatal(err)
		}
		paras = append(paras, para)
		offset += para.Length()
	}
	if len(paras) != 2 || paras[1].Offset() != 4 {
		t.Errorf("expected 2 paragraphs, the second at offset 4")
	}
	if diff := cmp.Diff(levels(0, 0, 0, 0), paras[0].Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
}

func TestTrailingWhitespace(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := uaxbidi.NewUTF32Sequence([]rune("\u202Bab  \u202C"))
	para := resolve(t, seq, 0)
	if l := para.LevelAt(3); l != 1 {
		t.Errorf("expected paragraph level of whitespace to be 1, is %s", l)
	}
	line, err := para.NewLine(0, seq.Len())
	if err != nil {
		t.Fatal(err)
	}
	lv := line.Levels()
	if diff := cmp.Diff(levels(2, 2, 0, 0), lv[1:5]); diff != "" {
		t.Errorf("unexpected line levels (-want +got):\n%s", diff)
	}
	seq = uaxbidi.SequenceOfString("AB\tCD")
	para = resolve(t, seq, 0)
	line, _ = para.NewLine(0, seq.Len())
	if diff := cmp.Diff(levels(1, 1, 0, 1, 1), line.Levels()); diff != "" {
		t.Errorf("unexpected line levels (-want +got):\n%s", diff)
	}
}

func TestLineReordering(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := uaxbidi.SequenceOfString("aBCd")
	para := resolve(t, seq, 0)
	line, err := para.NewLine(0, seq.Len())
	if err != nil {
		t.Fatal(err)
	}
	expected := []bidi.Run{
		{Offset: 0, Length: 1, Level: 0},
		{Offset: 1, Length: 2, Level: 1},
		{Offset: 3, Length: 1, Level: 0},
	}
	if diff := cmp.Diff(expected, line.Runs()); diff != "" {
		t.Errorf("unexpected runs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 2, 1, 3}, line.VisualMap()); diff != "" {
		t.Errorf("unexpected visual order (-want +got):\n%s", diff)
	}
	// a line covering part of the paragraph
	line, err = para.NewLine(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{2, 1}, line.VisualMap()); diff != "" {
		t.Errorf("unexpected visual order of partial line (-want +got):\n%s", diff)
	}
}

func TestMultiUnitCharacters(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := uaxbidi.SequenceOfString("aשלום")
	algo, err := bidi.NewAlgorithm(seq)
	if err != nil {
		t.Fatal(err)
	}
	para, err := algo.NewParagraph(0, seq.Len(), bidi.DefaultLTR)
	if err != nil {
		t.Fatal(err)
	}
	expected := levels(0, 1, 1, 1, 1, 1, 1, 1, 1)
	if diff := cmp.Diff(expected, para.Levels()); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
	line, _ := para.NewLine(0, seq.Len())
	if diff := cmp.Diff([]int{0, 7, 5, 3, 1}, line.VisualMap()); diff != "" {
		t.Errorf("unexpected visual order (-want +got):\n%s", diff)
	}
}

func TestMirrorLocator(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := uaxbidi.SequenceOfString("(abc)")
	para := resolve(t, seq, 1)
	line, err := para.NewLine(0, seq.Len())
	if err != nil {
		t.Fatal(err)
	}
	locator := bidi.NewMirrorLocator()
	locator.LoadLine(line, seq)
	var agents []bidi.MirrorAgent
	for locator.MoveNext() {
		agents = append(agents, locator.Agent())
		t.Logf("mirror %s", locator.Agent())
	}
	expected := []bidi.MirrorAgent{
		{Index: 4, Mirror: '(', Codepoint: ')'},
		{Index: 0, Mirror: ')', Codepoint: '('},
	}
	if diff := cmp.Diff(expected, agents); diff != "" {
		t.Errorf("unexpected mirrors (-want +got):\n%s", diff)
	}
	if !locator.MoveNext() {
		t.Errorf("expected locator to restart after exhaustion")
	}
	locator.LoadLine(line, uaxbidi.SequenceOfString("(abc)"))
	if locator.MoveNext() {
		t.Errorf("expected locator not to bind to a foreign buffer")
	}
}

func TestErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := bidi.NewAlgorithm(uaxbidi.CodepointSequence{}); !errors.Is(err, bidi.ErrInvalidSequence) {
		t.Errorf("expected invalid sequence error, have %v", err)
	}
	algo, _ := bidi.NewAlgorithm(uaxbidi.SequenceOfString("abc"))
	if _, err := algo.NewParagraph(3, 1, bidi.DefaultLTR); !errors.Is(err, bidi.ErrOutOfRange) {
		t.Errorf("expected out of range error for offset, have %v", err)
	}
	if _, err := algo.NewParagraph(0, 3, 126); !errors.Is(err, bidi.ErrOutOfRange) {
		t.Errorf("expected out of range error for base level, have %v", err)
	}
	para, err := algo.NewParagraph(0, 3, bidi.DefaultLTR)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := para.NewLine(1, 3); !errors.Is(err, bidi.ErrOutOfRange) {
		t.Errorf("expected out of range error for line, have %v", err)
	}
	if _, err := para.NewLine(1, math.MaxInt); !errors.Is(err, bidi.ErrOutOfRange) {
		t.Errorf("expected out of range error for overlong line, have %v", err)
	}
	if _, err := para.NewLine(math.MaxInt, 1); !errors.Is(err, bidi.ErrOutOfRange) {
		t.Errorf("expected out of range error for line offset, have %v", err)
	}
	if _, err := para.NewLine(0, 0); !errors.Is(err, bidi.ErrOutOfRange) {
		t.Errorf("expected out of range error for empty line, have %v", err)
	}
	if l := para.LevelAt(5); l != bidi.InvalidLevel {
		t.Errorf("expected invalid level outside of paragraph, have %s", l)
	}
}
