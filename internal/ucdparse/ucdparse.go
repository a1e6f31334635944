/* Package ucdparse provides a parser for Unicode Character Database files.

Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

Data lines have the form

   0028; 0029; o # LEFT PARENTHESIS

or, for ranges of code points,

   000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>

The first field is the code point (range), subsequent fields are accessible
with Token.Field, the trailing comment with Token.Comment.
*/
package ucdparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token is the line-level item of a UCD data file.
type Token struct {
	LineNo   int      // line number within the input source, starting at 1
	runeFrom rune     // first/single rune
	runeTo   rune     // final rune of range (may be identical to runeFrom)
	Fields   []string // fields following the code point (range), trimmed
	Comment  string   // rest-of-line comment of data item lines
}

func (token *Token) String() string {
	return fmt.Sprintf("token[at %d %#U..%#U %#v]", token.LineNo,
		token.runeFrom, token.runeTo, token.Fields)
}

// Field gets field #i (1…n) from the current data item.
func (token *Token) Field(i int) string {
	if i > 0 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// Scanner reads a UCD data file line by line.
type Scanner struct {
	lines     *bufio.Scanner
	lineno    int
	Token     *Token // last token produced by the scanner
	LastError error  // last error, if any
}

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, errors.New("no input present")
	}
	return &Scanner{lines: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of the data file and calls callback f on it.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next advances to the next data line, skipping empty lines and comment lines.
// It returns false at the end of input or on a malformed line. In the latter
// case LastError is set.
func (sc *Scanner) Next() bool {
	for sc.lines.Scan() {
		sc.lineno++
		line := sc.lines.Text()
		var comment string
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line, comment = line[:i], strings.TrimSpace(line[i+1:])
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		token, err := parseLine(line)
		if err != nil {
			sc.LastError = fmt.Errorf("line %d: %w", sc.lineno, err)
			return false
		}
		token.LineNo = sc.lineno
		token.Comment = comment
		sc.Token = token
		return true
	}
	sc.LastError = sc.lines.Err()
	return false
}

func parseLine(line string) (*Token, error) {
	parts := strings.Split(line, ";")
	token := &Token{Fields: make([]string, 0, len(parts)-1)}
	from, to, err := parseRange(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	token.runeFrom, token.runeTo = from, to
	for _, f := range parts[1:] {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	return token, nil
}

func parseRange(s string) (rune, rune, error) {
	lo, hi := s, s
	if i := strings.Index(s, ".."); i >= 0 {
		lo, hi = s[:i], s[i+2:]
	}
	from, err := strconv.ParseUint(lo, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("illegal code point %q", lo)
	}
	to, err := strconv.ParseUint(hi, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("illegal code point %q", hi)
	}
	if to < from {
		return 0, 0, fmt.Errorf("illegal range %s", s)
	}
	return rune(from), rune(to), nil
}

// ParseHexRune parses a single hexadecimal code point, ignoring surrounding
// whitespace. Illegal input yields -1.
func ParseHexRune(inp string) rune {
	n, err := strconv.ParseUint(strings.TrimSpace(inp), 16, 32)
	if err != nil {
		return -1
	}
	return rune(n)
}
