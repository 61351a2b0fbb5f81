/*
 * doc.go, part of readcon-core.
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

/*Package readcon reads and writes con files, the line-oriented text format
used to store atomistic simulation snapshots ("frames").

	**readcon capabilities**

    Lazily iterates over the frames of a multi-frame con file without
	keeping more than one frame in memory.

    Skips frames using only their headers, so positioning inside very
	large trajectories does not pay the full parsing cost.

    Writes one or many frames back with byte-compatible formatting
	(6 fractional digits, one frame after the other with no separator).

    Reads and writes gzip and zstd compressed con files transparently,
	selected by file extension.

    Converts frames to and from a bounded, fixed-layout representation
	suitable for crossing a C call interface; the capi subpackage exposes
	the whole read/write surface to C callers with explicit, paired
	allocation and release calls.

    Bridges frame coordinates to gonum matrices for geometric work.

A frame is a 9-line header (two free text lines, the box lengths, the box
angles, two more text lines, the number of atom types, the per-type atom
counts and the per-type masses) followed, for each type, by a symbol line,
a block marker line, and one coordinate line per atom carrying x, y, z, a
fixed flag and the atom id.
*/
package readcon
