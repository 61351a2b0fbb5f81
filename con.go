/*
 * con.go, part of readcon-core.
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

// FrameHeader is the fixed 9-line preamble of a con frame. The two slices
// always have length NatmTypes.
type FrameHeader struct {
	PreBox        [2]string  //two free-form text lines before the box
	BoxL          [3]float64 //box lengths
	Angles        [3]float64 //box angles
	PostBox       [2]string  //two free-form text lines after the box
	NatmTypes     int        //number of atom types
	NatmsPerType  []int      //atoms of each type, in file order
	MassesPerType []float64  //mass of each type, in file order
}

// TotalAtoms returns the sum of the per-type atom counts.
func (H *FrameHeader) TotalAtoms() int {
	total := 0
	for _, n := range H.NatmsPerType {
		total += n
	}
	return total
}

// AtomDatum holds one atom of a frame. All atoms of one type share the
// same Symbol string, which the parser assigns once per type block, so
// keeping many atoms around does not duplicate the label text.
type AtomDatum struct {
	Symbol  string
	X       float64
	Y       float64
	Z       float64
	IsFixed bool
	AtomID  uint64
}

// ConFrame is one complete snapshot: a header plus its atoms, stored in
// file order, contiguously by type (all atoms of the first type, then all
// of the second, and so on). The parser only ever produces frames where
// the header counts and len(Atoms) agree.
type ConFrame struct {
	Header FrameHeader
	Atoms  []AtomDatum
}

// Len returns the number of atoms in the frame.
func (F *ConFrame) Len() int {
	return len(F.Atoms)
}

// Masses returns a column of per-atom masses, expanding the per-type
// masses of the header over each type block.
func (F *ConFrame) Masses() ([]float64, error) {
	if F.Header.TotalAtoms() != len(F.Atoms) {
		return nil, FileError{WrongFormat, "", []string{"Masses"}, true}
	}
	masses := make([]float64, 0, len(F.Atoms))
	for i, n := range F.Header.NatmsPerType {
		for j := 0; j < n; j++ {
			masses = append(masses, F.Header.MassesPerType[i])
		}
	}
	return masses, nil
}

// Symbols returns the type labels of the frame, one per type, in header
// order. The labels are taken from the first atom of each type block.
func (F *ConFrame) Symbols() []string {
	symbols := make([]string, 0, F.Header.NatmTypes)
	offset := 0
	for _, n := range F.Header.NatmsPerType {
		if n > 0 && offset < len(F.Atoms) {
			symbols = append(symbols, F.Atoms[offset].Symbol)
		} else {
			symbols = append(symbols, "")
		}
		offset += n
	}
	return symbols
}
