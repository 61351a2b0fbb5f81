/*
 * parse.go, part of readcon-core.
 *
 * Copyright 2024 The readcon-core authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package readcon

import (
	"strconv"
	"strings"
)

//lineCursor walks the lines of an in-memory buffer, destructively: every
//read advances the position, whether or not the caller liked the line.
//Both the full parse and the header-only skip share one cursor, which is
//what keeps the two advance modes in agreement about where frames start.
type lineCursor struct {
	data string
	pos  int
}

//more returns true if there is at least one line left to read.
func (lc *lineCursor) more() bool {
	return lc.pos < len(lc.data)
}

//next returns the next line, without its terminator, and whether there
//was one. A trailing newline does not produce an empty final line.
func (lc *lineCursor) next() (string, bool) {
	if lc.pos >= len(lc.data) {
		return "", false
	}
	var line string
	if i := strings.IndexByte(lc.data[lc.pos:], '\n'); i >= 0 {
		line = lc.data[lc.pos : lc.pos+i]
		lc.pos += i + 1
	} else {
		line = lc.data[lc.pos:]
		lc.pos = len(lc.data)
	}
	line = strings.TrimSuffix(line, "\r")
	return line, true
}

//parseLineOfFloats parses a line of exactly n whitespace-separated floats.
//It never returns a partial slice: a bad token wins over a wrong count,
//and the count is only checked once every token has parsed.
func parseLineOfFloats(line string, n int) ([]float64, error) {
	fields := strings.Fields(line)
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, ParseError{Kind: InvalidNumberFormat, Token: f}
		}
		values = append(values, v)
	}
	if len(values) != n {
		return nil, ParseError{Kind: InvalidVectorLength, Expected: n, Found: len(values)}
	}
	return values, nil
}

//parseLineOfInts is the integer twin of parseLineOfFloats. The counts it
//parses are unsigned in the format, so a negative token is as malformed
//as a non-numeric one.
func parseLineOfInts(line string, n int) ([]int, error) {
	fields := strings.Fields(line)
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return nil, ParseError{Kind: InvalidNumberFormat, Token: f}
		}
		values = append(values, v)
	}
	if len(values) != n {
		return nil, ParseError{Kind: InvalidVectorLength, Expected: n, Found: len(values)}
	}
	return values, nil
}

//parseHeader consumes exactly the 9 header lines from the cursor. On
//failure the lines already read stay consumed; the caller must treat the
//cursor as misaligned from then on.
func parseHeader(lc *lineCursor) (*FrameHeader, error) {
	h := new(FrameHeader)
	for i := 0; i < 2; i++ {
		line, ok := lc.next()
		if !ok {
			return nil, ParseError{Kind: IncompleteHeader}
		}
		h.PreBox[i] = line
	}
	line, ok := lc.next()
	if !ok {
		return nil, ParseError{Kind: IncompleteHeader}
	}
	boxl, err := parseLineOfFloats(line, 3)
	if err != nil {
		return nil, err
	}
	copy(h.BoxL[:], boxl)
	line, ok = lc.next()
	if !ok {
		return nil, ParseError{Kind: IncompleteHeader}
	}
	angles, err := parseLineOfFloats(line, 3)
	if err != nil {
		return nil, err
	}
	copy(h.Angles[:], angles)
	for i := 0; i < 2; i++ {
		line, ok = lc.next()
		if !ok {
			return nil, ParseError{Kind: IncompleteHeader}
		}
		h.PostBox[i] = line
	}
	line, ok = lc.next()
	if !ok {
		return nil, ParseError{Kind: IncompleteHeader}
	}
	ntypes, err := parseLineOfInts(line, 1)
	if err != nil {
		return nil, err
	}
	h.NatmTypes = ntypes[0]
	line, ok = lc.next()
	if !ok {
		return nil, ParseError{Kind: IncompleteHeader}
	}
	h.NatmsPerType, err = parseLineOfInts(line, h.NatmTypes)
	if err != nil {
		return nil, err
	}
	line, ok = lc.next()
	if !ok {
		return nil, ParseError{Kind: IncompleteHeader}
	}
	h.MassesPerType, err = parseLineOfFloats(line, h.NatmTypes)
	if err != nil {
		return nil, err
	}
	return h, nil
}

//parseSingleFrame consumes one whole frame from the cursor: the header,
//then, for each type, the symbol line, the block marker line (discarded)
//and one coordinate line per atom. Atoms are stored in file order, with
//no sorting or deduplication; all atoms of a type share one symbol string.
func parseSingleFrame(lc *lineCursor) (*ConFrame, error) {
	h, err := parseHeader(lc)
	if err != nil {
		return nil, err
	}
	atoms := make([]AtomDatum, 0, h.TotalAtoms())
	for _, natms := range h.NatmsPerType {
		symline, ok := lc.next()
		if !ok {
			return nil, ParseError{Kind: IncompleteFrame}
		}
		symbol := strings.TrimSpace(symline)
		//the "Coordinates of Component N" line
		if _, ok = lc.next(); !ok {
			return nil, ParseError{Kind: IncompleteFrame}
		}
		for i := 0; i < natms; i++ {
			line, ok := lc.next()
			if !ok {
				return nil, ParseError{Kind: IncompleteFrame}
			}
			v, err := parseLineOfFloats(line, 5)
			if err != nil {
				return nil, err
			}
			atoms = append(atoms, AtomDatum{
				Symbol:  symbol,
				X:       v[0],
				Y:       v[1],
				Z:       v[2],
				IsFixed: v[3] != 0,
				AtomID:  uint64(v[4]),
			})
		}
	}
	return &ConFrame{Header: *h, Atoms: atoms}, nil
}
