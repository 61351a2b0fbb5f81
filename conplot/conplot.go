/*
 * conplot.go, part of readcon-core.
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

/*Package conplot draws simple plots of con frames, to eyeball a snapshot
without a full visualization tool.*/
package conplot

import (
	"fmt"
	"image/color"

	readcon "github.com/lode-org/readcon-core"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//a small palette, cycled over the atom types of a frame
var palette = []color.RGBA{
	{R: 255, A: 255},
	{B: 255, A: 255},
	{G: 180, A: 255},
	{R: 255, G: 165, A: 255},
	{R: 128, B: 128, A: 255},
}

// XYProjection plots the x-y projection of a frame's coordinates as a
// scatter plot, one color per atom type, and saves it as the PNG given by
// filename (the .png extension is added). Fixed atoms are drawn like free
// ones; the plot is about geometry, not constraints.
func XYProjection(frame *readcon.ConFrame, title, filename string) error {
	if frame == nil || frame.Len() == 0 {
		return fmt.Errorf("conplot: nothing to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	offset := 0
	for i, n := range frame.Header.NatmsPerType {
		if n == 0 {
			continue
		}
		pts := make(plotter.XYs, n)
		for j, a := range frame.Atoms[offset : offset+n] {
			pts[j].X = a.X
			pts[j].Y = a.Y
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = palette[i%len(palette)]
		p.Add(s)
		p.Legend.Add(frame.Atoms[offset].Symbol, s)
		offset += n
	}
	return p.Save(4*vg.Inch, 4*vg.Inch, filename+".png")
}
