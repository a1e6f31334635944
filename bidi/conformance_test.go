package bidi_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uaxbidi"
	"github.com/npillmayer/uaxbidi/bidi"
	"github.com/npillmayer/uaxbidi/internal/testdata"
	"github.com/npillmayer/uaxbidi/internal/ucdparse"
)

type characterTest struct {
	text      []rune
	baseLevel bidi.Level
	paraLevel bidi.Level
	levels    []int // -1 for characters removed by X9
	order     []int
}

func parseCharacterTest(fields []string) (characterTest, bool) {
	var ct characterTest
	if len(fields) < 5 {
		return ct, false
	}
	var err error
	if ct.text, err = ucdparse.ParseCodepoints(fields[0]); err != nil {
		return ct, false
	}
	switch fields[1] {
	case "0":
		ct.baseLevel = 0
	case "1":
		ct.baseLevel = 1
	default:
		ct.baseLevel = bidi.DefaultLTR
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return ct, false
	}
	ct.paraLevel = bidi.Level(n)
	for _, l := range strings.Fields(fields[3]) {
		if l == "x" {
			ct.levels = append(ct.levels, -1)
			continue
		}
		if n, err = strconv.Atoi(l); err != nil {
			return ct, false
		}
		ct.levels = append(ct.levels, n)
	}
	for _, o := range strings.Fields(fields[4]) {
		if n, err = strconv.Atoi(o); err != nil {
			return ct, false
		}
		ct.order = append(ct.order, n)
	}
	return ct, len(ct.levels) == len(ct.text)
}

func TestBidiCharacterTestFile(t *testing.T) {
	if !testdata.Available(testdata.BidiCharacterTest) {
		t.Skipf("%s not present; run 'go run download.go' in internal/testdata", testdata.BidiCharacterTest)
	}
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tf := ucdparse.OpenTestFile(testdata.UCDPath(testdata.BidiCharacterTest), t)
	if tf == nil {
		return
	}
	defer tf.Close()
	count, failcnt := 0, 0
	for tf.Scan() {
		ct, ok := parseCharacterTest(tf.Fields())
		if !ok {
			t.Errorf("line %d: cannot parse test case", tf.LineNo())
			continue
		}
		count++
		if !executeCharacterTest(t, tf.LineNo(), ct) {
			failcnt++
		}
		if failcnt >= 50 {
			t.Fatalf("too many failures, giving up")
		}
	}
	if err := tf.Err(); err != nil {
		t.Errorf("reading input: %s", err)
	}
	t.Logf("%d TEST CASES OUT of %d FAILED", failcnt, count)
}

func executeCharacterTest(t *testing.T, lineno int, ct characterTest) bool {
	seq := uaxbidi.NewUTF32Sequence(ct.text)
	algo, err := bidi.NewAlgorithm(seq)
	if err != nil {
		t.Errorf("line %d: %v", lineno, err)
		return false
	}
	para, err := algo.NewParagraph(0, seq.Len(), ct.baseLevel)
	if err != nil {
		t.Errorf("line %d: %v", lineno, err)
		return false
	}
	if para.Length() != seq.Len() {
		t.Logf("line %d: skipping multi-paragraph input", lineno)
		return true
	}
	if para.BaseLevel() != ct.paraLevel {
		t.Errorf("line %d: paragraph level is %s, expected %s", lineno, para.BaseLevel(), ct.paraLevel)
		return false
	}
	line, err := para.NewLine(0, seq.Len())
	if err != nil {
		t.Errorf("line %d: %v", lineno, err)
		return false
	}
	levels := line.Levels()
	ok := true
	for i, l := range ct.levels {
		if l >= 0 && int(levels[i]) != l {
			t.Errorf("line %d: level at %d is %s, expected %d", lineno, i, levels[i], l)
			ok = false
			break
		}
	}
	var order []int
	for _, pos := range line.VisualMap() {
		if ct.levels[pos] >= 0 {
			order = append(order, pos)
		}
	}
	if diff := cmp.Diff(ct.order, order); diff != "" {
		t.Errorf("line %d: unexpected visual order (-want +got):\n%s", lineno, diff)
		ok = false
	}
	return ok
}
