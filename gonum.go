/*
 * gonum.go, part of readcon-core.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Coords returns the coordinates of the frame as a new natoms x 3 dense
// matrix, in file order. The matrix does not alias the frame.
func (F *ConFrame) Coords() *mat.Dense {
	if len(F.Atoms) == 0 {
		return nil
	}
	c := mat.NewDense(len(F.Atoms), 3, nil)
	for i, a := range F.Atoms {
		c.Set(i, 0, a.X)
		c.Set(i, 1, a.Y)
		c.Set(i, 2, a.Z)
	}
	return c
}

// SetCoords replaces the coordinates of the frame with those in c, which
// must have one row per atom and 3 columns.
func (F *ConFrame) SetCoords(c *mat.Dense) error {
	r, cols := c.Dims()
	if r != len(F.Atoms) || cols != 3 {
		return FileError{NotEnoughSpace, "", []string{"SetCoords"}, true}
	}
	for i := range F.Atoms {
		F.Atoms[i].X = c.At(i, 0)
		F.Atoms[i].Y = c.At(i, 1)
		F.Atoms[i].Z = c.At(i, 2)
	}
	return nil
}

// MassCenter returns the center of mass of the frame. Masses come from
// the per-type masses of the header.
func (F *ConFrame) MassCenter() ([3]float64, error) {
	var com [3]float64
	masses, err := F.Masses()
	if err != nil {
		return com, errDecorate(err, "MassCenter")
	}
	if len(F.Atoms) == 0 {
		return com, FileError{WrongFormat + ": no atoms", "", []string{"MassCenter"}, true}
	}
	total := floats.Sum(masses)
	if total == 0 {
		return com, FileError{WrongFormat + ": zero total mass", "", []string{"MassCenter"}, true}
	}
	for i, a := range F.Atoms {
		com[0] += a.X * masses[i]
		com[1] += a.Y * masses[i]
		com[2] += a.Z * masses[i]
	}
	for i := range com {
		com[i] /= total
	}
	return com, nil
}
