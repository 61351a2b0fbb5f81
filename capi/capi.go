/*
 * capi.go, part of readcon-core.
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

//Package main exposes the readcon reading and writing surface to C
//callers. Build it with -buildmode=c-shared (or c-archive) and include
//the generated header together with rc_types.h.
//
//The ownership rules are the usual ones for a C API over a runtime the
//caller can't see: every call that hands out a handle or a pointer has
//exactly one matching rc_*_free call, nothing is ever freed implicitly,
//and all free calls accept 0/NULL and do nothing. A handle must not be
//driven from two threads at once. An iterator handle owns both the
//parser state and the buffered file text; one rc_iter_free releases both.
package main

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>
#include "rc_types.h"
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"

	readcon "github.com/lode-org/readcon-core"
)

//statusFromError maps a Go-side failure to the status codes of rc_types.h,
//so the caller keeps the error kind even though the error value itself
//cannot cross.
func statusFromError(err error) C.int {
	if err == nil {
		return C.RC_OK
	}
	if _, last := err.(readcon.LastFrameError); last {
		return C.RC_END
	}
	if perr, ok := err.(readcon.ParseError); ok {
		switch perr.Kind {
		case readcon.IncompleteHeader:
			return C.RC_ERR_INCOMPLETE_HEADER
		case readcon.IncompleteFrame:
			return C.RC_ERR_INCOMPLETE_FRAME
		case readcon.InvalidVectorLength:
			return C.RC_ERR_VECTOR_LENGTH
		case readcon.InvalidNumberFormat:
			return C.RC_ERR_NUMBER_FORMAT
		}
	}
	return C.RC_ERR
}

//export rc_iter_open
//rc_iter_open buffers the named con file and returns an iterator handle,
//or 0 on failure. The caller owns the handle and must release it with
//rc_iter_free.
func rc_iter_open(path *C.char) C.uintptr_t {
	if path == nil {
		return 0
	}
	it, err := readcon.New(C.GoString(path))
	if err != nil {
		return 0
	}
	return C.uintptr_t(cgo.NewHandle(it))
}

//export rc_iter_next
//rc_iter_next fully parses the next frame. On RC_OK *out is a frame
//handle owned by the caller, to be released with rc_frame_free. RC_END
//means the stream is exhausted; negative codes name the parse failure.
func rc_iter_next(iter C.uintptr_t, out *C.uintptr_t) C.int {
	if iter == 0 || out == nil {
		return C.RC_ERR
	}
	it := cgo.Handle(iter).Value().(*readcon.ConFrameIterator)
	frame, err := it.Next()
	if err != nil {
		return statusFromError(err)
	}
	*out = C.uintptr_t(cgo.NewHandle(frame))
	return C.RC_OK
}

//export rc_iter_forward
//rc_iter_forward skips the next frame using only its header, allocating
//no atom data. Status codes are as for rc_iter_next.
func rc_iter_forward(iter C.uintptr_t) C.int {
	if iter == 0 {
		return C.RC_ERR
	}
	it := cgo.Handle(iter).Value().(*readcon.ConFrameIterator)
	return statusFromError(it.Forward())
}

//export rc_iter_free
//rc_iter_free releases an iterator handle together with the text buffer
//it reads from. Passing 0 does nothing.
func rc_iter_free(iter C.uintptr_t) {
	if iter != 0 {
		cgo.Handle(iter).Delete()
	}
}

//export rc_frame_free
//rc_frame_free releases a frame handle. Passing 0 does nothing.
func rc_frame_free(frame C.uintptr_t) {
	if frame != 0 {
		cgo.Handle(frame).Delete()
	}
}

//export rc_frame_pack
//rc_frame_pack extracts the frame behind the handle into a freshly
//malloc'd rc_frame the caller may read directly, and owns: one
//rc_frame_data_free per returned pointer. The conversion is bounded;
//a frame with more than RC_MAX_TYPES types returns NULL instead of
//being truncated. Header lines and symbols are cut to their buffers.
func rc_frame_pack(frame C.uintptr_t) *C.rc_frame {
	if frame == 0 {
		return nil
	}
	F := cgo.Handle(frame).Value().(*readcon.ConFrame)
	P, err := F.Packed()
	if err != nil {
		return nil
	}
	cf := (*C.rc_frame)(C.calloc(1, C.sizeof_rc_frame))
	if cf == nil {
		return nil
	}
	for i := 0; i < 2; i++ {
		copyToCChars(cf.prebox[i][:], P.PreBox[i][:])
		copyToCChars(cf.postbox[i][:], P.PostBox[i][:])
	}
	for i := 0; i < 3; i++ {
		cf.cell[i] = C.double(P.Cell[i])
		cf.angles[i] = C.double(P.Angles[i])
	}
	cf.natm_types = C.uint64_t(P.NatmTypes)
	for i := 0; i < P.NatmTypes; i++ {
		cf.natms_per_type[i] = C.uint64_t(P.NatmsPerType[i])
		cf.masses_per_type[i] = C.double(P.MassesPerType[i])
		copyToCChars(cf.symbols[i][:], P.Symbols[i][:])
	}
	cf.natoms = C.uint64_t(len(P.Atoms))
	if len(P.Atoms) > 0 {
		atoms := (*C.rc_atom)(C.calloc(C.size_t(len(P.Atoms)), C.sizeof_rc_atom))
		if atoms == nil {
			C.free(unsafe.Pointer(cf))
			return nil
		}
		view := unsafe.Slice(atoms, len(P.Atoms))
		for i, a := range P.Atoms {
			view[i].atomic_number = C.uint64_t(a.AtomicNumber)
			view[i].x = C.double(a.X)
			view[i].y = C.double(a.Y)
			view[i].z = C.double(a.Z)
			view[i].atom_id = C.uint64_t(a.AtomID)
			view[i].mass = C.double(a.Mass)
			if a.IsFixed {
				view[i].is_fixed = 1
			}
			copyToCChars(view[i].symbol[:], a.Symbol[:])
		}
		cf.atoms = atoms
	}
	return cf
}

//export rc_frame_data_free
//rc_frame_data_free releases an rc_frame obtained from rc_frame_pack,
//including its atoms array. Passing NULL does nothing.
func rc_frame_data_free(cf *C.rc_frame) {
	if cf == nil {
		return
	}
	if cf.atoms != nil {
		C.free(unsafe.Pointer(cf.atoms))
	}
	C.free(unsafe.Pointer(cf))
}

//export rc_frame_unpack
//rc_frame_unpack builds a new owned frame handle from a caller-filled
//rc_frame, for writing. The atoms array does not have to be grouped:
//atoms are re-bucketed by symbol, in first-seen order, which restores the
//layout the writer requires. Returns 0 on NULL input. The caller owns
//the returned handle.
func rc_frame_unpack(cf *C.rc_frame) C.uintptr_t {
	if cf == nil {
		return 0
	}
	P := new(readcon.PackedFrame)
	for i := 0; i < 2; i++ {
		copyFromCChars(P.PreBox[i][:], cf.prebox[i][:])
		copyFromCChars(P.PostBox[i][:], cf.postbox[i][:])
	}
	for i := 0; i < 3; i++ {
		P.Cell[i] = float64(cf.cell[i])
		P.Angles[i] = float64(cf.angles[i])
	}
	P.NatmTypes = int(cf.natm_types)
	if P.NatmTypes > readcon.MaxPackedTypes {
		return 0
	}
	for i := 0; i < P.NatmTypes; i++ {
		P.NatmsPerType[i] = int(cf.natms_per_type[i])
		P.MassesPerType[i] = float64(cf.masses_per_type[i])
		copyFromCChars(P.Symbols[i][:], cf.symbols[i][:])
	}
	if cf.natoms > 0 && cf.atoms != nil {
		view := unsafe.Slice(cf.atoms, int(cf.natoms))
		P.Atoms = make([]readcon.PackedAtom, len(view))
		for i, a := range view {
			P.Atoms[i] = readcon.PackedAtom{
				AtomicNumber: uint64(a.atomic_number),
				X:            float64(a.x),
				Y:            float64(a.y),
				Z:            float64(a.z),
				AtomID:       uint64(a.atom_id),
				Mass:         float64(a.mass),
				IsFixed:      a.is_fixed != 0,
			}
			copyFromCChars(P.Atoms[i].Symbol[:], a.symbol[:])
		}
	}
	return C.uintptr_t(cgo.NewHandle(P.Frame()))
}

//export rc_frame_header_line
//rc_frame_header_line copies one of the free-text header lines of the
//frame into the caller's buffer, truncating if needed and always writing
//a terminating zero. is_prebox selects between the two line pairs, index
//must be 0 or 1. Returns the number of bytes written without the
//terminator, or -1 on a bad handle, index or buffer.
func rc_frame_header_line(frame C.uintptr_t, isPrebox C.int, index C.size_t, buffer *C.char, bufferLen C.size_t) C.int {
	if frame == 0 || buffer == nil || bufferLen == 0 || index > 1 {
		return -1
	}
	F := cgo.Handle(frame).Value().(*readcon.ConFrame)
	var line string
	if isPrebox != 0 {
		line = F.Header.PreBox[index]
	} else {
		line = F.Header.PostBox[index]
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), int(bufferLen))
	n := copy(dst, line)
	if n == len(dst) {
		n--
	}
	dst[n] = 0
	return C.int(n)
}

//export rc_frame_header_line_dup
//rc_frame_header_line_dup returns one of the free-text header lines as a
//freshly allocated, zero-terminated C string, without truncation. The
//caller owns it and must release it with rc_string_free. Returns NULL on
//a bad handle or index.
func rc_frame_header_line_dup(frame C.uintptr_t, isPrebox C.int, index C.size_t) *C.char {
	if frame == 0 || index > 1 {
		return nil
	}
	F := cgo.Handle(frame).Value().(*readcon.ConFrame)
	if isPrebox != 0 {
		return C.CString(F.Header.PreBox[index])
	}
	return C.CString(F.Header.PostBox[index])
}

//export rc_string_free
//rc_string_free releases a string obtained from rc_frame_header_line_dup.
//Passing NULL does nothing.
func rc_string_free(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

//export rc_frame_write
//rc_frame_write writes the single frame behind the handle to the named
//file, creating it. Returns RC_OK, or RC_ERR_IO when the file cannot be
//created or written.
func rc_frame_write(frame C.uintptr_t, path *C.char) C.int {
	if frame == 0 || path == nil {
		return C.RC_ERR
	}
	F := cgo.Handle(frame).Value().(*readcon.ConFrame)
	w, err := readcon.NewWriter(C.GoString(path))
	if err != nil {
		return C.RC_ERR_IO
	}
	defer w.Close()
	if err := w.WNext(F); err != nil {
		return C.RC_ERR_IO
	}
	return C.RC_OK
}

//export rc_writer_open
//rc_writer_open creates the named file and returns a writer handle, or
//0 on failure. The caller owns the handle; rc_writer_free flushes and
//closes the file.
func rc_writer_open(path *C.char) C.uintptr_t {
	if path == nil {
		return 0
	}
	w, err := readcon.NewWriter(C.GoString(path))
	if err != nil {
		return 0
	}
	return C.uintptr_t(cgo.NewHandle(w))
}

//export rc_writer_extend
//rc_writer_extend appends the frames behind the given handles to the
//writer's file, in order. The batch is all-or-nothing with respect to
//validation: every handle is checked to be non-zero before any frame is
//written, so a bad element cannot leave a half-written batch behind.
func rc_writer_extend(writer C.uintptr_t, frames *C.uintptr_t, nframes C.size_t) C.int {
	if writer == 0 {
		return C.RC_ERR
	}
	if nframes == 0 {
		return C.RC_OK
	}
	if frames == nil {
		return C.RC_ERR
	}
	w := cgo.Handle(writer).Value().(*readcon.ConFrameWriter)
	handles := unsafe.Slice(frames, int(nframes))
	all := make([]*readcon.ConFrame, 0, int(nframes))
	for _, h := range handles {
		if h == 0 {
			return C.RC_ERR
		}
		all = append(all, cgo.Handle(h).Value().(*readcon.ConFrame))
	}
	if err := w.Extend(all); err != nil {
		return C.RC_ERR_IO
	}
	return C.RC_OK
}

//export rc_writer_free
//rc_writer_free flushes, closes and releases a writer handle. Passing 0
//does nothing.
func rc_writer_free(writer C.uintptr_t) {
	if writer == 0 {
		return
	}
	h := cgo.Handle(writer)
	h.Value().(*readcon.ConFrameWriter).Close()
	h.Delete()
}

//copyToCChars copies a zero-terminated Go byte buffer into a C char array
//of the same fixed size.
func copyToCChars(dst []C.char, src []byte) {
	for i := range dst {
		dst[i] = C.char(src[i])
	}
}

//copyFromCChars is the inverse of copyToCChars.
func copyFromCChars(dst []byte, src []C.char) {
	for i := range dst {
		dst[i] = byte(src[i])
	}
}

func main() {}
