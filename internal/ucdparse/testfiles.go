package ucdparse

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"testing"
)

// TestFile reads UCD test files, such as BidiCharacterTest.txt, which do not
// start their data lines with a code point range.
type TestFile struct {
	in      *os.File
	scanner *bufio.Scanner
	text    string
	comment string
	lineno  int
}

// OpenTestFile opens a test file. If the file cannot be opened, it reports
// an error to t (if non-nil) and returns nil.
func OpenTestFile(filename string, t *testing.T) *TestFile {
	f, err := os.Open(filename)
	if err != nil {
		if t != nil {
			t.Errorf("ERROR loading " + filename)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR loading %s\n", filename)
		}
		return nil
	}
	return &TestFile{in: f, scanner: bufio.NewScanner(f)}
}

// Scan advances to the next non-empty line which is not a comment line.
func (tf *TestFile) Scan() bool {
	for tf.scanner.Scan() {
		tf.lineno++
		text := strings.TrimSpace(tf.scanner.Text())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		tf.text, tf.comment = text, ""
		if i := strings.IndexByte(text, '#'); i >= 0 {
			tf.text, tf.comment = strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:])
		}
		return true
	}
	return false
}

// Text returns the data part of the current line.
func (tf *TestFile) Text() string {
	return tf.text
}

// Fields returns the ';'-separated fields of the current line, trimmed.
func (tf *TestFile) Fields() []string {
	fields := strings.Split(tf.text, ";")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// Comment returns the comment part of the current line.
func (tf *TestFile) Comment() string {
	return tf.comment
}

// LineNo returns the line number of the current line.
func (tf *TestFile) LineNo() int {
	return tf.lineno
}

// Err returns the first non-EOF error encountered.
func (tf *TestFile) Err() error {
	return tf.scanner.Err()
}

// Close closes the underlying file.
func (tf *TestFile) Close() {
	tf.in.Close()
}

// ParseCodepoints reads a blank-separated list of hexadecimal code points.
func ParseCodepoints(s string) ([]rune, error) {
	words := strings.Fields(s)
	runes := make([]rune, 0, len(words))
	for _, w := range words {
		r := ParseHexRune(w)
		if r < 0 {
			return nil, fmt.Errorf("illegal code point %q", w)
		}
		runes = append(runes, r)
	}
	return runes, nil
}
