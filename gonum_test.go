/*
 * gonum_test.go, part of readcon-core.
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
	"math"
	"testing"
)

func TestCoords(Te *testing.T) {
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
	c := frame.Coords()
	r, cols := c.Dims()
	if r != frame.Len() || cols != 3 {
		Te.Errorf("wrong coordinate matrix shape: %dx%d", r, cols)
	}
	if c.At(1, 0) != 2.55 || c.At(3, 0) != 7.75 {
		Te.Errorf("wrong coordinates: %v %v", c.At(1, 0), c.At(3, 0))
	}
	//shift everything and put it back
	for i := 0; i < r; i++ {
		c.Set(i, 2, c.At(i, 2)+1.0)
	}
	if err := frame.SetCoords(c); err != nil {
		Te.Error(err)
	}
	if frame.Atoms[0].Z != 1.0 {
		Te.Errorf("SetCoords did not stick: %v", frame.Atoms[0].Z)
	}
}

func TestMassCenter(Te *testing.T) {
	frame := &ConFrame{
		Header: FrameHeader{
			NatmTypes:     1,
			NatmsPerType:  []int{2},
			MassesPerType: []float64{2.0},
		},
		Atoms: []AtomDatum{
			{Symbol: "X", X: 0, AtomID: 1},
			{Symbol: "X", X: 2, AtomID: 2},
		},
	}
	com, err := frame.MassCenter()
	if err != nil {
		Te.Error(err)
	}
	if math.Abs(com[0]-1.0) > 1e-12 || com[1] != 0 || com[2] != 0 {
		Te.Errorf("wrong center of mass: %v", com)
	}
}
