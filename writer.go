/*
 * writer.go, part of readcon-core.
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
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//the format stores 6 fractional digits
const defaultPrec = 6

// ConFrameWriter serializes frames to the con text layout. Writing several
// frames just writes them one after the other; the format has no separator
// beyond the line structure.
type ConFrameWriter struct {
	f         *os.File
	h         io.WriteCloser //compressor, or nil for plain files
	w         *bufio.Writer
	filename  string
	writeable bool
	prec      int
}

// NewWriter creates the named file and returns a writer to it. Names
// ending in .gz or .zst/.zstd get compressed output. prec optionally
// overrides the number of fractional digits written; the format's own
// precision is 6, so anything else will not round-trip through a reader
// expecting stock con files.
func NewWriter(name string, prec ...int) (*ConFrameWriter, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, FileError{UnableToCreate, name, []string{"NewWriter"}, true}
	}
	W := &ConFrameWriter{f: f, filename: name, writeable: true, prec: defaultPrec}
	if len(prec) > 0 && prec[0] > 0 {
		W.prec = prec[0]
	}
	switch {
	case strings.HasSuffix(name, ".gz"):
		W.h = gzip.NewWriter(f)
		W.w = bufio.NewWriter(W.h)
	case strings.HasSuffix(name, ".zst"), strings.HasSuffix(name, ".zstd"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, FileError{"Can't set up compression: " + err.Error(), name, []string{"NewWriter"}, true}
		}
		W.h = zw
		W.w = bufio.NewWriter(W.h)
	default:
		W.w = bufio.NewWriter(f)
	}
	return W, nil
}

// NewWriterTo returns a writer that serializes to w, which the caller
// keeps owning. Close only flushes, it does not close w.
func NewWriterTo(w io.Writer) *ConFrameWriter {
	return &ConFrameWriter{w: bufio.NewWriter(w), writeable: true, prec: defaultPrec}
}

// WNext writes one frame. The atoms must already be grouped by type in
// header order, with the counts of the header matching the atom slice;
// the symbol written for each block is the one of the block's first atom.
func (W *ConFrameWriter) WNext(frame *ConFrame) error {
	if !W.writeable {
		return FileError{TrajUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if frame == nil {
		return FileError{NilFrame, W.filename, []string{"WNext"}, true}
	}
	h := &frame.Header
	if h.TotalAtoms() != len(frame.Atoms) || len(h.NatmsPerType) != h.NatmTypes || len(h.MassesPerType) != h.NatmTypes {
		return FileError{WrongFormat, W.filename, []string{"WNext"}, true}
	}
	fmt.Fprintf(W.w, "%s\n%s\n", h.PreBox[0], h.PreBox[1])
	W.writeFloats(h.BoxL[:])
	W.writeFloats(h.Angles[:])
	fmt.Fprintf(W.w, "%s\n%s\n", h.PostBox[0], h.PostBox[1])
	fmt.Fprintf(W.w, "%d\n", h.NatmTypes)
	for i, n := range h.NatmsPerType {
		if i > 0 {
			W.w.WriteByte(' ')
		}
		W.w.WriteString(strconv.Itoa(n))
	}
	W.w.WriteByte('\n')
	W.writeFloats(h.MassesPerType)
	offset := 0
	for i, n := range h.NatmsPerType {
		symbol := ""
		if n > 0 {
			symbol = frame.Atoms[offset].Symbol
		}
		fmt.Fprintf(W.w, "%s\nCoordinates of Component %d\n", symbol, i+1)
		for _, a := range frame.Atoms[offset : offset+n] {
			flag := "0"
			if a.IsFixed {
				flag = "1"
			}
			W.w.WriteString(strconv.FormatFloat(a.X, 'f', W.prec, 64))
			W.w.WriteByte(' ')
			W.w.WriteString(strconv.FormatFloat(a.Y, 'f', W.prec, 64))
			W.w.WriteByte(' ')
			W.w.WriteString(strconv.FormatFloat(a.Z, 'f', W.prec, 64))
			fmt.Fprintf(W.w, " %s %d\n", flag, a.AtomID)
		}
		offset += n
	}
	if err := W.w.Flush(); err != nil {
		return FileError{"Write failed: " + err.Error(), W.filename, []string{"WNext"}, true}
	}
	return nil
}

//writeFloats writes a space-joined line of floats at the writer's precision.
func (W *ConFrameWriter) writeFloats(v []float64) {
	for i, f := range v {
		if i > 0 {
			W.w.WriteByte(' ')
		}
		W.w.WriteString(strconv.FormatFloat(f, 'f', W.prec, 64))
	}
	W.w.WriteByte('\n')
}

// Extend writes every frame of the slice, in order, stopping at the
// first failure.
func (W *ConFrameWriter) Extend(frames []*ConFrame) error {
	for _, f := range frames {
		if err := W.WNext(f); err != nil {
			return errDecorate(err, "Extend")
		}
	}
	return nil
}

// Close flushes and closes the writer. A writer opened with NewWriterTo
// only gets flushed. Close can be called more than once; later calls do
// nothing.
func (W *ConFrameWriter) Close() {
	if W == nil || !W.writeable {
		return
	}
	W.w.Flush()
	if W.h != nil {
		W.h.Close()
	}
	if W.f != nil {
		W.f.Close()
	}
	W.writeable = false
}
