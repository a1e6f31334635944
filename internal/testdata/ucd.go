// Package testdata locates the Unicode Character Database files used by
// tests and generators. The files are not part of the repository; run
//
//    go run download.go
//
// in this directory to fetch them.
package testdata

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Files the download program extracts from the UCD archive.
const (
	BidiCharacterTest = "BidiCharacterTest.txt"
	BidiMirroring     = "BidiMirroring.txt"
	BidiBrackets      = "BidiBrackets.txt"
)

// UCDReader returns a reader for the given UCD file.
func UCDReader(file string) (io.Reader, error) {
	data, err := os.ReadFile(UCDPath(file))
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// UCDPath returns the path for the given UCD file.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "ucd", file)
}

// Available reports whether a UCD file has been downloaded.
func Available(file string) bool {
	_, err := os.Stat(UCDPath(file))
	return err == nil
}
