package ucd

import (
	"fmt"
	"sync"
	"unicode"

	"golang.org/x/text/language"
)

// Script is a Unicode script, enumerated by its ISO 15924 code.
type Script uint8

// ISO15924 returns the four-letter ISO 15924 code of a script, e.g. "Latn".
func (s Script) ISO15924() string {
	if s < scriptCount {
		return scriptInfo[s].iso
	}
	return scriptInfo[Unknown].iso
}

// Name returns the Unicode property value name of a script, e.g. "Old_Italic".
func (s Script) Name() string {
	if s < scriptCount {
		return scriptInfo[s].name
	}
	return scriptInfo[Unknown].name
}

func (s Script) String() string {
	return s.Name()
}

// UnicodeTag returns the ISO 15924 code of a script as a tag.
func (s Script) UnicodeTag() Tag {
	iso := s.ISO15924()
	return MakeTag(iso[0], iso[1], iso[2], iso[3])
}

// OpenType script tags which differ from the lower-case ISO code.
// Indic scripts use the tags of the revised shaping model.
var openTypeExceptions = map[Script]string{
	Unknown:    "DFLT",
	Common:     "DFLT",
	Inherited:  "DFLT",
	Hiragana:   "kana",
	Lao:        "lao ",
	Yi:         "yi  ",
	Nko:        "nko ",
	Vai:        "vai ",
	Devanagari: "dev2",
	Bengali:    "bng2",
	Gurmukhi:   "gur2",
	Gujarati:   "gjr2",
	Oriya:      "ory2",
	Tamil:      "tml2",
	Telugu:     "tel2",
	Kannada:    "knd2",
	Malayalam:  "mlm2",
	Myanmar:    "mym2",
}

// OpenTypeTag returns the OpenType script tag of a script.
func (s Script) OpenTypeTag() Tag {
	if ot, ok := openTypeExceptions[s]; ok {
		return MakeTag(ot[0], ot[1], ot[2], ot[3])
	}
	iso := s.ISO15924()
	return MakeTag(iso[0]|0x20, iso[1], iso[2], iso[3])
}

// LanguageScript returns the script as a language.Script. Scripts unknown to
// package language map to the zero value.
func (s Script) LanguageScript() language.Script {
	ls, err := language.ParseScript(s.ISO15924())
	if err != nil {
		return language.Script{}
	}
	return ls
}

// ScriptOfTag returns the script for a Unicode (ISO 15924) tag.
// Unknown tags map to Unknown.
func ScriptOfTag(tag Tag) Script {
	code := tag.String()
	for s := Unknown; s < scriptCount; s++ {
		if scriptInfo[s].iso == code {
			return s
		}
	}
	return Unknown
}

// --- Tags ------------------------------------------------------------------

// Tag is a four-byte tag as used by OpenType and ISO 15924.
type Tag uint32

// MakeTag creates a tag from four bytes.
func MakeTag(a, b, c, d byte) Tag {
	return Tag(uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d))
}

func (tag Tag) String() string {
	return string([]byte{byte(tag >> 24), byte(tag >> 16), byte(tag >> 8), byte(tag)})
}

// --- Lookup ----------------------------------------------------------------

var scripts struct {
	once  sync.Once
	table *pageTable
}

// LookupScript returns the script of a code point. Code points without a
// script property value, and those outside the Unicode range, map to Unknown.
func LookupScript(r rune) Script {
	scripts.once.Do(setupScripts)
	return Script(scripts.table.lookup(r))
}

func setupScripts() {
	tables := make([]valuedTable, 0, scriptCount)
	for s := Common; s < scriptCount; s++ {
		rt, ok := unicode.Scripts[scriptInfo[s].name]
		if !ok { // script too recent for this Go release
			continue
		}
		tables = append(tables, valuedTable{table: rt, value: uint8(s)})
	}
	scripts.table = buildPageTable(tables)
	T().Debugf("ucd: script table has %d pages", len(scripts.table.pages))
}

// ScriptForName returns the script with a Unicode property value name,
// e.g. "Arabic".
func ScriptForName(name string) (Script, error) {
	for s := Unknown; s < scriptCount; s++ {
		if scriptInfo[s].name == name {
			return s, nil
		}
	}
	return Unknown, fmt.Errorf("unknown script %q", name)
}
