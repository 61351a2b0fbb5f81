/*
 * packed.go, part of readcon-core.
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

import "bytes"

//Capacities of the fixed-layout frame representation. The owned ConFrame
//model is unbounded; these bound only what crosses the C boundary, and
//packing fails rather than truncate when the type count does not fit.
//Header text lines and symbols, on the other hand, are cut to size with a
//forced terminator, like any C string copy into a caller's buffer.
const (
	MaxPackedTypes  = 16
	PackedLineLen   = 256
	PackedSymbolLen = 8
)

// PackedAtom is the flat, fixed-layout form of one atom. Every field can
// be read directly by a C caller. The per-type mass of the header is
// expanded here into a per-atom mass.
type PackedAtom struct {
	AtomicNumber uint64
	X            float64
	Y            float64
	Z            float64
	AtomID       uint64
	Mass         float64
	IsFixed      bool
	Symbol       [PackedSymbolLen]byte
}

// PackedFrame is the flat, fixed-layout form of a whole frame. Per-type
// data lives in fixed arrays of which only the first NatmTypes entries
// are meaningful; the atoms array is the only open-ended part.
type PackedFrame struct {
	PreBox        [2][PackedLineLen]byte
	PostBox       [2][PackedLineLen]byte
	Cell          [3]float64
	Angles        [3]float64
	NatmTypes     int
	NatmsPerType  [MaxPackedTypes]int
	MassesPerType [MaxPackedTypes]float64
	Symbols       [MaxPackedTypes][PackedSymbolLen]byte
	Atoms         []PackedAtom
}

//packString copies s into dst, truncating if needed and always leaving
//at least one terminating zero byte.
func packString(dst []byte, s string) {
	n := copy(dst, s)
	if n == len(dst) {
		n--
	}
	dst[n] = 0
	for i := n + 1; i < len(dst); i++ {
		dst[i] = 0
	}
}

//unpackString returns the text of a zero-terminated buffer.
func unpackString(src []byte) string {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		return string(src[:i])
	}
	return string(src)
}

// Packed converts the frame into its bounded fixed-layout form. The
// conversion is deliberately lossy: header text lines and symbols longer
// than the fixed buffers are truncated, and coordinates survive only at
// the precision the format itself keeps. A frame with more types than
// MaxPackedTypes does not fit at all, and the conversion fails instead of
// dropping types silently.
func (F *ConFrame) Packed() (*PackedFrame, error) {
	h := &F.Header
	if h.NatmTypes > MaxPackedTypes {
		return nil, FileError{NotEnoughSpace, "", []string{"Packed"}, true}
	}
	if h.TotalAtoms() != len(F.Atoms) || len(h.NatmsPerType) != h.NatmTypes || len(h.MassesPerType) != h.NatmTypes {
		return nil, FileError{WrongFormat, "", []string{"Packed"}, true}
	}
	P := new(PackedFrame)
	for i := 0; i < 2; i++ {
		packString(P.PreBox[i][:], h.PreBox[i])
		packString(P.PostBox[i][:], h.PostBox[i])
	}
	P.Cell = h.BoxL
	P.Angles = h.Angles
	P.NatmTypes = h.NatmTypes
	symbols := F.Symbols()
	for i := 0; i < h.NatmTypes; i++ {
		P.NatmsPerType[i] = h.NatmsPerType[i]
		P.MassesPerType[i] = h.MassesPerType[i]
		packString(P.Symbols[i][:], symbols[i])
	}
	P.Atoms = make([]PackedAtom, 0, len(F.Atoms))
	offset := 0
	for i, n := range h.NatmsPerType {
		for _, a := range F.Atoms[offset : offset+n] {
			pa := PackedAtom{
				AtomicNumber: uint64(AtomicNumber(a.Symbol)),
				X:            a.X,
				Y:            a.Y,
				Z:            a.Z,
				AtomID:       a.AtomID,
				Mass:         h.MassesPerType[i],
				IsFixed:      a.IsFixed,
			}
			packString(pa.Symbol[:], a.Symbol)
			P.Atoms = append(P.Atoms, pa)
		}
		offset += n
	}
	return P, nil
}

// Frame rebuilds an owned ConFrame from the packed form. The packed atom
// array is not trusted to be grouped: atoms are re-bucketed by symbol, in
// first-seen order, and the header counts and masses are rebuilt from the
// buckets, so the result always satisfies the grouping the writer needs.
// Atoms of one rebuilt type share a single symbol string again.
func (P *PackedFrame) Frame() *ConFrame {
	F := new(ConFrame)
	h := &F.Header
	for i := 0; i < 2; i++ {
		h.PreBox[i] = unpackString(P.PreBox[i][:])
		h.PostBox[i] = unpackString(P.PostBox[i][:])
	}
	h.BoxL = P.Cell
	h.Angles = P.Angles
	order := make([]string, 0, P.NatmTypes)
	buckets := make(map[string][]PackedAtom)
	for _, a := range P.Atoms {
		symbol := unpackString(a.Symbol[:])
		if _, seen := buckets[symbol]; !seen {
			order = append(order, symbol)
		}
		buckets[symbol] = append(buckets[symbol], a)
	}
	h.NatmTypes = len(order)
	h.NatmsPerType = make([]int, 0, len(order))
	h.MassesPerType = make([]float64, 0, len(order))
	F.Atoms = make([]AtomDatum, 0, len(P.Atoms))
	for _, symbol := range order {
		atoms := buckets[symbol]
		h.NatmsPerType = append(h.NatmsPerType, len(atoms))
		h.MassesPerType = append(h.MassesPerType, atoms[0].Mass)
		for _, a := range atoms {
			F.Atoms = append(F.Atoms, AtomDatum{
				Symbol:  symbol,
				X:       a.X,
				Y:       a.Y,
				Z:       a.Z,
				IsFixed: a.IsFixed,
				AtomID:  a.AtomID,
			})
		}
	}
	return F
}
