package ucd

import (
	"fmt"
	"sync"
	"unicode"
)

// GeneralCategory is the Unicode General_Category property.
type GeneralCategory uint8

// General categories. Cn (unassigned) is the zero value.
const (
	Cn GeneralCategory = iota
	Lu
	Ll
	Lt
	Lm
	Lo
	Mn
	Mc
	Me
	Nd
	Nl
	No
	Pc
	Pd
	Ps
	Pe
	Pi
	Pf
	Po
	Sm
	Sc
	Sk
	So
	Zs
	Zl
	Zp
	Cc
	Cf
	Cs
	Co

	categoryCount
)

var categoryNames = [categoryCount]string{
	"Cn", "Lu", "Ll", "Lt", "Lm", "Lo", "Mn", "Mc", "Me", "Nd", "Nl", "No",
	"Pc", "Pd", "Ps", "Pe", "Pi", "Pf", "Po", "Sm", "Sc", "Sk", "So",
	"Zs", "Zl", "Zp", "Cc", "Cf", "Cs", "Co",
}

func (gc GeneralCategory) String() string {
	if gc < categoryCount {
		return categoryNames[gc]
	}
	return fmt.Sprintf("GeneralCategory(%d)", uint8(gc))
}

// IsLetter is true for the L* categories.
func (gc GeneralCategory) IsLetter() bool {
	return gc >= Lu && gc <= Lo
}

// IsMark is true for the M* categories.
func (gc GeneralCategory) IsMark() bool {
	return gc >= Mn && gc <= Me
}

// IsPunctuation is true for the P* categories.
func (gc GeneralCategory) IsPunctuation() bool {
	return gc >= Pc && gc <= Po
}

var categories struct {
	once  sync.Once
	table *pageTable
}

// LookupGeneralCategory returns the general category of a code point.
// Unassigned code points and code points outside the Unicode range are Cn.
func LookupGeneralCategory(r rune) GeneralCategory {
	categories.once.Do(setupCategories)
	return GeneralCategory(categories.table.lookup(r))
}

func setupCategories() {
	tables := make([]valuedTable, 0, categoryCount)
	for gc := Lu; gc < categoryCount; gc++ {
		rt, ok := unicode.Categories[categoryNames[gc]]
		if !ok {
			T().Errorf("ucd: no range table for general category %s", gc)
			continue
		}
		tables = append(tables, valuedTable{table: rt, value: uint8(gc)})
	}
	categories.table = buildPageTable(tables)
	T().Debugf("ucd: general category table has %d pages", len(categories.table.pages))
}
