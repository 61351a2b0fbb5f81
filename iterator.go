/*
 * iterator.go, part of readcon-core.
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
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ConFrameIterator lazily parses the frames of a con file that has been
// fully buffered in memory. It owns its buffer and its cursor exclusively;
// nothing else may drive it, and it provides no internal synchronization.
// Two iterators over independently-owned copies of the same bytes are fine.
type ConFrameIterator struct {
	lines    lineCursor
	filename string
	readable bool
}

// NewIterator returns an iterator over the frames contained in contents,
// which may hold one frame or many, concatenated.
func NewIterator(contents string) *ConFrameIterator {
	return &ConFrameIterator{lines: lineCursor{data: contents}, readable: true}
}

// New opens the con file with the given name, buffers its whole contents
// in memory, and returns an iterator over its frames. Files ending in
// .gz and .zst/.zstd are decompressed transparently.
func New(filename string) (*ConFrameIterator, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, FileError{UnableToOpen, filename, []string{"New"}, true}
	}
	defer f.Close()
	var r io.Reader = f
	switch {
	case strings.HasSuffix(filename, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, FileError{"Can't read compressed file: " + err.Error(), filename, []string{"New"}, true}
		}
		defer gz.Close()
		r = gz
	case strings.HasSuffix(filename, ".zst"), strings.HasSuffix(filename, ".zstd"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, FileError{"Can't read compressed file: " + err.Error(), filename, []string{"New"}, true}
		}
		defer zr.Close()
		r = zr
	}
	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, FileError{ReadError + ": " + err.Error(), filename, []string{"New"}, true}
	}
	C := NewIterator(string(contents))
	C.filename = filename
	return C, nil
}

// Readable returns true if the object is ready to be read from,
// false otherwise. It doesn't guarantee that there is something
// to read.
func (C *ConFrameIterator) Readable() bool {
	return C.readable
}

// Next parses and returns the next frame. When no lines remain at all it
// returns a LastFrameError, which signals normal termination, not a
// problem. Any remaining text, complete frame or not, is always attempted:
// a trailing truncated frame surfaces as one final TrajError rather than
// disappearing silently.
func (C *ConFrameIterator) Next() (*ConFrame, error) {
	if !C.readable {
		return nil, FileError{TrajUnIniRead, C.filename, []string{"Next"}, true}
	}
	if !C.lines.more() {
		C.readable = false
		return nil, newlastFrameError(C.filename, "Next")
	}
	frame, err := parseSingleFrame(&C.lines)
	if err != nil {
		perr := err.(ParseError)
		perr.filename = C.filename
		return nil, perr
	}
	return frame, nil
}

// Forward skips the next frame without building any atom data. It reads
// the 9 header lines the same way Next would, takes the type count and the
// per-type atom counts, and discards the total-atom plus two-per-type
// lines that the header promises. Errors are as for Next; in particular a
// file that ends before the promised lines gives an IncompleteFrame error.
// Forward and Next may be interleaved freely on one iterator: each call
// advances the shared cursor by exactly one frame.
func (C *ConFrameIterator) Forward() error {
	if !C.readable {
		return FileError{TrajUnIniRead, C.filename, []string{"Forward"}, true}
	}
	if !C.lines.more() {
		C.readable = false
		return newlastFrameError(C.filename, "Forward")
	}
	fail := func(kind ErrKind) error {
		return ParseError{Kind: kind, filename: C.filename}
	}
	//the first 6 header lines carry nothing a skip needs
	for i := 0; i < 6; i++ {
		if _, ok := C.lines.next(); !ok {
			return fail(IncompleteHeader)
		}
	}
	line, ok := C.lines.next()
	if !ok {
		return fail(IncompleteHeader)
	}
	ntypes, err := parseLineOfInts(line, 1)
	if err != nil {
		perr := err.(ParseError)
		perr.filename = C.filename
		return perr
	}
	line, ok = C.lines.next()
	if !ok {
		return fail(IncompleteHeader)
	}
	natmsPerType, err := parseLineOfInts(line, ntypes[0])
	if err != nil {
		perr := err.(ParseError)
		perr.filename = C.filename
		return perr
	}
	//the masses line only needs to be consumed
	if _, ok = C.lines.next(); !ok {
		return fail(IncompleteHeader)
	}
	totalAtoms := 0
	for _, n := range natmsPerType {
		totalAtoms += n
	}
	//per type, one symbol line and one block marker line
	linesToSkip := totalAtoms + 2*ntypes[0]
	for i := 0; i < linesToSkip; i++ {
		if _, ok := C.lines.next(); !ok {
			return fail(IncompleteFrame)
		}
	}
	return nil
}
