//go:build ignore
// +build ignore

// Download fetches the UCD archive and extracts the bidi data and test files
// the packages of this module read:
//
//    BidiCharacterTest.txt  conformance test of package bidi
//    BidiMirroring.txt      input of ucd/internal/generator
//    BidiBrackets.txt       input of ucd/internal/generator
//
// Run it from this directory:
//
//    go run download.go [-version 15.0.0] [-dir ucd]
package main

import (
	"archive/zip"
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

var wanted = []string{
	"BidiCharacterTest.txt",
	"BidiMirroring.txt",
	"BidiBrackets.txt",
}

func main() {
	version := flag.String("version", "15.0.0", "Unicode version to fetch")
	dir := flag.String("dir", "ucd", "Output directory")
	flag.Parse()
	url := fmt.Sprintf("https://www.unicode.org/Public/%s/ucd/UCD.zip", *version)
	n, err := extractBidiFiles(url, *dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "download of %s failed: %v\n", url, err)
		os.Exit(1)
	}
	if n < len(wanted) {
		fmt.Fprintf(os.Stderr, "archive holds only %d of %d bidi files\n", n, len(wanted))
		os.Exit(1)
	}
	fmt.Printf("extracted %d files of Unicode %s into %s\n", n, *version, *dir)
}

func extractBidiFiles(url, dir string) (int, error) {
	resp, err := http.Get(url)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("server responded %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, err
	}
	count := 0
	for _, name := range wanted {
		entry := lookupEntry(archive, name)
		if entry == nil {
			continue
		}
		if err := extract(entry, filepath.Join(dir, name)); err != nil {
			return count, fmt.Errorf("%s: %w", name, err)
		}
		count++
	}
	return count, nil
}

func lookupEntry(archive *zip.Reader, name string) *zip.File {
	for _, f := range archive.File {
		if f.Name == name || filepath.Base(f.Name) == name {
			return f
		}
	}
	return nil
}

func extract(entry *zip.File, path string) error {
	rc, err := entry.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
