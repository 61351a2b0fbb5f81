/*
 * con_test.go, part of readcon-core.
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
	"strings"
	"testing"
)

//A minimal single-frame input: one type, two atoms.
const tinyFrame = `A
B
10 10 10
90 90 90
C
D
1
2
1.0
X
Coordinates of Component 1
0 0 0 0 1
1 0 0 1 2
`

func TestParseLineArity(Te *testing.T) {
	v, err := parseLineOfFloats("1.0 2.0 3.0", 3)
	if err != nil {
		Te.Error(err)
	}
	if len(v) != 3 || v[1] != 2.0 {
		Te.Errorf("wrong values parsed: %v", v)
	}
	//wrong token count
	_, err = parseLineOfFloats("1 2 3 4", 5)
	perr, ok := err.(ParseError)
	if !ok || perr.Kind != InvalidVectorLength {
		Te.Errorf("expected InvalidVectorLength, got %v", err)
	}
	if perr.Expected != 5 || perr.Found != 4 {
		Te.Errorf("wrong arity report: expected %d found %d", perr.Expected, perr.Found)
	}
	//a bad token wins over a wrong count
	_, err = parseLineOfFloats("1 2 banana 4", 5)
	perr, ok = err.(ParseError)
	if !ok || perr.Kind != InvalidNumberFormat {
		Te.Errorf("expected InvalidNumberFormat, got %v", err)
	}
	if perr.Token != "banana" {
		Te.Errorf("offending token not carried: %q", perr.Token)
	}
	//negative counts are as malformed as letters
	_, err = parseLineOfInts("2 -1", 2)
	perr, ok = err.(ParseError)
	if !ok || perr.Kind != InvalidNumberFormat {
		Te.Errorf("expected InvalidNumberFormat for negative count, got %v", err)
	}
}

func TestParseTinyFrame(Te *testing.T) {
	it := NewIterator(tinyFrame)
	frame, err := it.Next()
	if err != nil {
		Te.Error(err)
		return
	}
	if frame.Header.NatmTypes != 1 || frame.Len() != 2 {
		Te.Errorf("wrong shape: %d types, %d atoms", frame.Header.NatmTypes, frame.Len())
	}
	if frame.Header.PreBox != [2]string{"A", "B"} || frame.Header.PostBox != [2]string{"C", "D"} {
		Te.Errorf("wrong text lines: %v %v", frame.Header.PreBox, frame.Header.PostBox)
	}
	if frame.Header.BoxL != [3]float64{10, 10, 10} || frame.Header.Angles != [3]float64{90, 90, 90} {
		Te.Errorf("wrong box: %v %v", frame.Header.BoxL, frame.Header.Angles)
	}
	if frame.Atoms[0].IsFixed || !frame.Atoms[1].IsFixed {
		Te.Errorf("wrong fixed flags: %v %v", frame.Atoms[0].IsFixed, frame.Atoms[1].IsFixed)
	}
	if frame.Atoms[0].AtomID != 1 || frame.Atoms[1].AtomID != 2 {
		Te.Errorf("wrong ids: %d %d", frame.Atoms[0].AtomID, frame.Atoms[1].AtomID)
	}
	if frame.Atoms[0].Symbol != "X" || frame.Atoms[1].Symbol != "X" {
		Te.Errorf("wrong symbols: %q %q", frame.Atoms[0].Symbol, frame.Atoms[1].Symbol)
	}
	//nothing else in the stream
	if _, err = it.Next(); err == nil {
		Te.Error("expected end of stream")
	} else if _, last := err.(LastFrameError); !last {
		Te.Errorf("expected normal termination, got %v", err)
	}
}

func TestIncompleteHeader(Te *testing.T) {
	//the stream ends after 6 lines, before the type count
	it := NewIterator("A\nB\n10 10 10\n90 90 90\nC\nD\n")
	_, err := it.Next()
	perr, ok := err.(ParseError)
	if !ok || perr.Kind != IncompleteHeader {
		Te.Errorf("expected IncompleteHeader, got %v", err)
	}
}

func TestBadCoordinateLine(Te *testing.T) {
	//a coordinate line with 4 tokens instead of 5
	bad := strings.Replace(tinyFrame, "1 0 0 1 2", "1 0 0 1", 1)
	it := NewIterator(bad)
	_, err := it.Next()
	perr, ok := err.(ParseError)
	if !ok || perr.Kind != InvalidVectorLength || perr.Expected != 5 || perr.Found != 4 {
		Te.Errorf("expected InvalidVectorLength{5,4}, got %v", err)
	}
}

func TestGroupingInvariant(Te *testing.T) {
	it, err := New("test/cuh2.con")
	if err != nil {
		Te.Error(err)
		return
	}
	frame, err := it.Next()
	if err != nil {
		Te.Error(err)
		return
	}
	if frame.Header.TotalAtoms() != frame.Len() {
		Te.Errorf("header promises %d atoms, frame has %d", frame.Header.TotalAtoms(), frame.Len())
	}
	//atoms are contiguous by type, in header order
	offset := 0
	symbols := frame.Symbols()
	for i, n := range frame.Header.NatmsPerType {
		for _, a := range frame.Atoms[offset : offset+n] {
			if a.Symbol != symbols[i] {
				Te.Errorf("atom of type %d has symbol %q, want %q", i, a.Symbol, symbols[i])
			}
		}
		offset += n
	}
	masses, err := frame.Masses()
	if err != nil {
		Te.Error(err)
	}
	if len(masses) != 4 || masses[0] != 63.546 || masses[3] != 1.00794 {
		Te.Errorf("wrong per-atom masses: %v", masses)
	}
}
