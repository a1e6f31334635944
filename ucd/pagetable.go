package ucd

import "unicode"

// pageTable is a two-stage lookup table for byte-sized properties.
// Stage one maps the high bits of a code point to a page, stage two holds
// deduplicated pages of 256 values each.
type pageTable struct {
	index []uint16
	pages [][pageSize]uint8
}

const (
	pageBits = 8
	pageSize = 1 << pageBits
	pageMask = pageSize - 1
)

func (pt *pageTable) lookup(r rune) uint8 {
	if r < 0 || r > MaxCodepoint {
		return 0
	}
	return pt.pages[pt.index[r>>pageBits]][r&pageMask]
}

// valuedTable pairs a range table with the value its code points get.
type valuedTable struct {
	table *unicode.RangeTable
	value uint8
}

// buildPageTable fills a page table from a list of range tables. Code points
// not covered by any table get value 0.
func buildPageTable(tables []valuedTable) *pageTable {
	flat := make([]uint8, MaxCodepoint+1)
	for _, vt := range tables {
		for _, r16 := range vt.table.R16 {
			for r := rune(r16.Lo); r <= rune(r16.Hi); r += rune(r16.Stride) {
				flat[r] = vt.value
			}
		}
		for _, r32 := range vt.table.R32 {
			for r := rune(r32.Lo); r <= rune(r32.Hi); r += rune(r32.Stride) {
				flat[r] = vt.value
			}
		}
	}
	pt := &pageTable{index: make([]uint16, (MaxCodepoint+1)>>pageBits)}
	seen := make(map[[pageSize]uint8]uint16)
	for i := range pt.index {
		var page [pageSize]uint8
		copy(page[:], flat[i<<pageBits:(i+1)<<pageBits])
		n, ok := seen[page]
		if !ok {
			n = uint16(len(pt.pages))
			pt.pages = append(pt.pages, page)
			seen[page] = n
		}
		pt.index[i] = n
	}
	return pt
}
