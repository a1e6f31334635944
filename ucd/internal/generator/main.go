// Command generator writes the mirroring and bracket tables of package ucd
// from the UCD files BidiMirroring.txt and BidiBrackets.txt.
//
//    go run ./ucd/internal/generator -o ucd
//
// The UCD files are read from internal/testdata/ucd (see download.go there).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uaxbidi/internal/testdata"
	"github.com/npillmayer/uaxbidi/internal/ucdparse"
)

func main() {
	tlevel := flag.String("trace", "I", "Trace level")
	outdir := flag.String("o", ".", "Output directory")
	pkg := flag.String("pkg", "ucd", "Package name to use in output files")
	flag.Parse()
	logAdapter := gologadapter.GetAdapter()
	trace := logAdapter()
	trace.SetTraceLevel(traceLevel(*tlevel))
	tracing.SetTraceSelector(mytrace{tracer: trace})
	//
	tracing.Infof("Generating Unicode mirroring glyphs")
	mirrors := readMirrors()
	tracing.Infof("Read %d mirroring glyphs", len(mirrors))
	tracing.Infof("Generating Unicode bracket pairs")
	brackets := readBrackets()
	tracing.Infof("Read %d bracket entries", len(brackets))
	if len(mirrors) == 0 || len(brackets) == 0 {
		tracing.Errorf("Did not read any data, exiting")
		os.Exit(1)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by ucd/internal/generator from BidiMirroring.txt; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", *pkg)
	fmt.Fprintf(&buf, "// mirrorTable holds Bidi_Mirroring_Glyph pairs, sorted by code point.\n")
	fmt.Fprintf(&buf, "var mirrorTable = [...]mirrorPair{\n")
	for _, m := range mirrors {
		fmt.Fprintf(&buf, "\t{0x%04X, 0x%04X},\n", m[0], m[1])
	}
	fmt.Fprintf(&buf, "}\n")
	writeSource(filepath.Join(*outdir, "mirrors.go"), buf.Bytes())
	//
	buf.Reset()
	fmt.Fprintf(&buf, "// Code generated by ucd/internal/generator from BidiBrackets.txt; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", *pkg)
	fmt.Fprintf(&buf, "// bracketTable holds Bidi_Paired_Bracket entries, sorted by code point.\n")
	fmt.Fprintf(&buf, "var bracketTable = [...]bracketEntry{\n")
	for _, b := range brackets {
		fmt.Fprintf(&buf, "\t{0x%04X, 0x%04X, %s},\n", b.cp, b.paired, b.typ)
	}
	fmt.Fprintf(&buf, "}\n")
	writeSource(filepath.Join(*outdir, "brackets.go"), buf.Bytes())
}

func readMirrors() [][2]rune {
	file := openUCD(testdata.BidiMirroring)
	defer file.Close()
	mirrors := make([][2]rune, 0, 430)
	err := ucdparse.Parse(file, func(t *ucdparse.Token) {
		cp, _ := t.Range()
		m := ucdparse.ParseHexRune(t.Field(1))
		if m < 0 {
			tracing.Errorf("illegal mirror glyph in line %d", t.LineNo)
			return
		}
		mirrors = append(mirrors, [2]rune{cp, m})
		tracing.Debugf(t.Comment)
	})
	if err != nil {
		tracing.Errorf(err.Error())
		os.Exit(1)
	}
	sort.Slice(mirrors, func(i, j int) bool { return mirrors[i][0] < mirrors[j][0] })
	return mirrors
}

type bracketEntry struct {
	cp, paired rune
	typ        string
}

func readBrackets() []bracketEntry {
	file := openUCD(testdata.BidiBrackets)
	defer file.Close()
	brackets := make([]bracketEntry, 0, 130)
	err := ucdparse.Parse(file, func(t *ucdparse.Token) {
		entry := bracketEntry{}
		entry.cp, _ = t.Range()
		entry.paired = ucdparse.ParseHexRune(t.Field(1))
		switch t.Field(2) {
		case "o":
			entry.typ = "BracketOpen"
		case "c":
			entry.typ = "BracketClose"
		default:
			return
		}
		brackets = append(brackets, entry)
		tracing.Debugf(t.Comment)
	})
	if err != nil {
		tracing.Errorf(err.Error())
		os.Exit(1)
	}
	sort.Slice(brackets, func(i, j int) bool { return brackets[i].cp < brackets[j].cp })
	return brackets
}

func openUCD(name string) *os.File {
	file, err := os.Open(testdata.UCDPath(name))
	if err != nil {
		tracing.Errorf(err.Error())
		os.Exit(1)
	}
	tracing.Infof("Found file %s ...", name)
	return file
}

func writeSource(path string, src []byte) {
	formatted, err := format.Source(src)
	if err != nil {
		tracing.Errorf(err.Error())
		os.Exit(2)
	}
	if err := os.WriteFile(path, formatted, 0644); err != nil {
		tracing.Errorf(err.Error())
		os.Exit(2)
	}
	tracing.Infof("Wrote %s", path)
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "D":
		return tracing.LevelDebug
	case "I":
		return tracing.LevelInfo
	case "E":
		return tracing.LevelError
	}
	return tracing.LevelDebug
}

type mytrace struct {
	tracer tracing.Trace
}

func (t mytrace) Select(string) tracing.Trace {
	return t.tracer
}
