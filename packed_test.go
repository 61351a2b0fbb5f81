/*
 * packed_test.go, part of readcon-core.
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
	"reflect"
	"strings"
	"testing"
)

func TestPackedRoundTrip(Te *testing.T) {
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
	P, err := frame.Packed()
	if err != nil {
		Te.Error(err)
		return
	}
	if P.NatmTypes != 2 || len(P.Atoms) != 4 {
		Te.Errorf("wrong packed shape: %d types, %d atoms", P.NatmTypes, len(P.Atoms))
	}
	//the per-type mass is expanded per atom, and symbols become numbers
	if P.Atoms[0].Mass != 63.546 || P.Atoms[3].Mass != 1.00794 {
		Te.Errorf("wrong expanded masses: %v %v", P.Atoms[0].Mass, P.Atoms[3].Mass)
	}
	if P.Atoms[0].AtomicNumber != 29 || P.Atoms[2].AtomicNumber != 1 {
		Te.Errorf("wrong atomic numbers: %d %d", P.Atoms[0].AtomicNumber, P.Atoms[2].AtomicNumber)
	}
	back := P.Frame()
	if !reflect.DeepEqual(back, frame) {
		Te.Errorf("packed roundtrip changed the frame:\n%+v\n%+v", back, frame)
	}
}

func TestPackedOverflow(Te *testing.T) {
	//one type too many for the fixed per-type arrays
	n := MaxPackedTypes + 1
	frame := &ConFrame{}
	frame.Header.NatmTypes = n
	for i := 0; i < n; i++ {
		frame.Header.NatmsPerType = append(frame.Header.NatmsPerType, 1)
		frame.Header.MassesPerType = append(frame.Header.MassesPerType, 1.0)
		frame.Atoms = append(frame.Atoms, AtomDatum{Symbol: "X", AtomID: uint64(i)})
	}
	if _, err := frame.Packed(); err == nil {
		Te.Error("expected packing to fail on type overflow")
	}
	//at capacity it must still fit
	frame.Header.NatmTypes = MaxPackedTypes
	frame.Header.NatmsPerType = frame.Header.NatmsPerType[:MaxPackedTypes]
	frame.Header.MassesPerType = frame.Header.MassesPerType[:MaxPackedTypes]
	frame.Atoms = frame.Atoms[:MaxPackedTypes]
	if _, err := frame.Packed(); err != nil {
		Te.Error(err)
	}
}

func TestPackedTruncation(Te *testing.T) {
	long := strings.Repeat("y", PackedLineLen+40)
	frame := &ConFrame{
		Header: FrameHeader{
			PreBox:        [2]string{long, "short"},
			NatmTypes:     1,
			NatmsPerType:  []int{1},
			MassesPerType: []float64{1.0},
		},
		Atoms: []AtomDatum{{Symbol: "verylonglabel", AtomID: 1}},
	}
	P, err := frame.Packed()
	if err != nil {
		Te.Error(err)
		return
	}
	//over-long text is cut to the buffer, with a terminator in place
	got := unpackString(P.PreBox[0][:])
	if len(got) != PackedLineLen-1 || !strings.HasPrefix(long, got) {
		Te.Errorf("wrong truncation: %d bytes", len(got))
	}
	if unpackString(P.PreBox[1][:]) != "short" {
		Te.Errorf("short line mangled: %q", unpackString(P.PreBox[1][:]))
	}
	if got := unpackString(P.Atoms[0].Symbol[:]); len(got) != PackedSymbolLen-1 {
		Te.Errorf("symbol not truncated to its buffer: %q", got)
	}
}

func TestUnpackRebuckets(Te *testing.T) {
	//an interleaved atom array must come back grouped by symbol, in
	//first-seen order, with the header rebuilt from the buckets
	P := new(PackedFrame)
	P.Cell = [3]float64{10, 10, 10}
	P.Angles = [3]float64{90, 90, 90}
	symbols := []string{"Cu", "H", "Cu", "H", "Pt"}
	for i, s := range symbols {
		a := PackedAtom{X: float64(i), AtomID: uint64(i + 1), Mass: float64(10 * (i%2 + 1))}
		packString(a.Symbol[:], s)
		P.Atoms = append(P.Atoms, a)
	}
	F := P.Frame()
	if F.Header.NatmTypes != 3 {
		Te.Errorf("wrong type count after rebucketing: %d", F.Header.NatmTypes)
	}
	if !reflect.DeepEqual(F.Header.NatmsPerType, []int{2, 2, 1}) {
		Te.Errorf("wrong counts after rebucketing: %v", F.Header.NatmsPerType)
	}
	wantOrder := []string{"Cu", "Cu", "H", "H", "Pt"}
	wantIDs := []uint64{1, 3, 2, 4, 5}
	for i, a := range F.Atoms {
		if a.Symbol != wantOrder[i] || a.AtomID != wantIDs[i] {
			Te.Errorf("atom %d is %s/%d, want %s/%d", i, a.Symbol, a.AtomID, wantOrder[i], wantIDs[i])
		}
	}
	//the rebuilt frame satisfies what the writer needs
	if F.Header.TotalAtoms() != F.Len() {
		Te.Error("rebucketed frame has inconsistent counts")
	}
}
