package uaxbidi

import (
	"testing"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestSequenceLength(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	s := "aא𝄞"
	if n := SequenceOfString(s).Len(); n != 1+2+4 {
		t.Errorf("expected UTF-8 length to be 7, is %d", n)
	}
	if n := NewUTF16Sequence(utf16.Encode([]rune(s))).Len(); n != 4 {
		t.Errorf("expected UTF-16 length to be 4, is %d", n)
	}
	if n := NewUTF32Sequence([]rune(s)).Len(); n != 3 {
		t.Errorf("expected UTF-32 length to be 3, is %d", n)
	}
	if (CodepointSequence{}).IsValid() {
		t.Errorf("expected zero sequence to be invalid")
	}
	if NewUTF8Sequence(nil).IsValid() {
		t.Errorf("expected empty sequence to be invalid")
	}
}

func TestSequenceDecoding(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	runes := []rune("aא𝄞b")
	seqs := []CodepointSequence{
		SequenceOfString(string(runes)),
		NewUTF16Sequence(utf16.Encode(runes)),
		NewUTF32Sequence(runes),
	}
	for _, seq := range seqs {
		var decoded []rune
		for i := 0; i < seq.Len(); {
			r, next := seq.CodepointAt(i)
			if next <= i {
				t.Fatalf("%s: decoding did not advance at %d", seq, i)
			}
			decoded = append(decoded, r)
			i = next
		}
		if string(decoded) != string(runes) {
			t.Errorf("%s: expected forward decoding to be %q, is %q", seq, string(runes), string(decoded))
		}
		decoded = decoded[:0]
		for i := seq.Len(); i > 0; {
			r, prev := seq.CodepointBefore(i)
			decoded = append([]rune{r}, decoded...)
			i = prev
		}
		if string(decoded) != string(runes) {
			t.Errorf("%s: expected backward decoding to be %q, is %q", seq, string(runes), string(decoded))
		}
	}
}

func TestSequenceOutOfRange(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := SequenceOfString("abc")
	if r, i := seq.CodepointAt(3); r != InvalidCodepoint || i != 3 {
		t.Errorf("expected invalid code point at index 3, have %d at %d", r, i)
	}
	if r, _ := seq.CodepointAt(-1); r != InvalidCodepoint {
		t.Errorf("expected invalid code point at index -1, have %d", r)
	}
	if r, _ := seq.CodepointBefore(0); r != InvalidCodepoint {
		t.Errorf("expected invalid code point before index 0, have %d", r)
	}
}

func TestSequenceMalformed(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	seq := NewUTF8Sequence([]byte{'a', 0xff, 'b'})
	if r, next := seq.CodepointAt(1); r != utf8.RuneError || next != 2 {
		t.Errorf("expected U+FFFD with one unit consumed, have %#U, next=%d", r, next)
	}
	lone := NewUTF16Sequence([]uint16{0xD800, 'x'})
	if r, next := lone.CodepointAt(0); r != utf8.RuneError || next != 1 {
		t.Errorf("expected lone surrogate to decode to U+FFFD, have %#U, next=%d", r, next)
	}
}

func TestSequenceSameBuffer(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	buf := []byte("hello")
	a, b := NewUTF8Sequence(buf), NewUTF8Sequence(buf)
	if !a.SameBuffer(b) {
		t.Errorf("expected sequences over one buffer to share it")
	}
	c := SequenceOfString("hello")
	if a.SameBuffer(c) {
		t.Errorf("expected sequences over different buffers not to share")
	}
}
