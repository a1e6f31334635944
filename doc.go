/*
Package uaxbidi is about the Unicode Bidirectional Algorithm (UAX #9) and the
lookups text shaping needs around it.

Description

From the Unicode Consortium:

The Unicode Standard prescribes a memory representation order known as logical
order. When text is presented in horizontal lines, most scripts display characters
from left to right. However, there are several scripts (such as Arabic or Hebrew)
where the natural ordering of horizontal text in display is from right to left.
If all of the text has a uniform horizontal direction, then the ordering of the
display text is unambiguous. However, because these right-to-left scripts use
digits that are written from left to right, the text is actually bidirectional:
a mixture of right-to-left and left-to-right text.

[...]

This annex describes specifications for the positioning of characters in text
containing characters flowing from right to left, such as Arabic or Hebrew.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The algorithm itself sits in sub-package bidi. Clients create an Algorithm for
a CodepointSequence, split it into Paragraphs and ask each Paragraph for Lines.
A Line holds its runs in visual order. Sub-package ucd provides the character
property lookups (bidi class, general category, script, mirroring, bracket pairs)
and sub-package script locates script runs for shaping.

Base package uaxbidi provides the text abstraction shared by all of them:
a CodepointSequence is a read-only view of a buffer in UTF-8, UTF-16 or UTF-32.
Indices into a sequence are always code unit indices, never code point indices.
Every level the algorithm computes is stored per code unit as well, so clients
can map results back into their buffers without converting offsets.

Typical usage:

   seq := uaxbidi.SequenceOfString("car means CAR.")
   algo, err := bidi.NewAlgorithm(seq)
   ...
   para, err := algo.NewParagraph(0, seq.Len(), bidi.DefaultLTR)
   line, err := para.NewLine(para.Offset(), para.Length())
   for _, run := range line.Runs() {
       ...
   }
*/
package uaxbidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// UnicodeVersion is the version of the Unicode Character Database the
// lookup tables follow.
const UnicodeVersion = "15.0.0"
