/*
Package bidi implements the Unicode Bidirectional Algorithm, UAX #9.

An Algorithm is created once per text. It derives a bidi type for every code
unit of the text and splits the text into paragraphs. For a paragraph, the
explicit, weak, neutral and implicit rules are applied and the resulting
embedding levels are stored with the Paragraph. Clients then request one or
more Lines from a paragraph, which apply rules L1 and L2 and hold their runs
in visual order.

   algo, err := bidi.NewAlgorithm(seq)
   ...
   offset := 0
   for offset < seq.Len() {
       para, err := algo.NewParagraph(offset, seq.Len()-offset, bidi.DefaultLTR)
       ...
       line, err := para.NewLine(para.Offset(), para.Length())
       ...
       offset += para.Length()
   }

Resolution of a paragraph works on a chain of links. A link stands for a
sequence of code units sharing a bidi type. Links are addressed by index into
an arena which is owned by a pooled resolution context; the context is
returned to the pool as soon as the levels of the paragraph are known.

Levels and runs are always given per code unit. Continuation units of a
multi-unit character share the level of their first unit.

Conformance limits of UAX #9 are honoured: the directional status stack
holds at most 127 entries and at most 63 opening brackets are tracked per
isolating run sequence.

BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package bidi

import (
	"errors"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Errors returned by the constructors of this package.
var (
	ErrInvalidSequence   = errors.New("invalid code point sequence")
	ErrOutOfRange        = errors.New("range out of bounds")
	ErrResourceExhausted = errors.New("no resolution context available")
)
