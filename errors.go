/*
 * errors.go, part of readcon-core.
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

import "fmt"

// ErrKind tells apart the ways a frame can fail to parse.
type ErrKind int

const (
	//the line sequence ran out inside the fixed 9-line header
	IncompleteHeader ErrKind = iota + 1
	//the line sequence ran out inside the atom blocks, or during a skip
	IncompleteFrame
	//a numeric line had the wrong number of tokens
	InvalidVectorLength
	//a token could not be parsed as a number
	InvalidNumberFormat
)

// ParseError is returned when the text of a frame is malformed. It fullfills
// the Error and TrajError interfaces. The Expected/Found fields are only
// meaningful for InvalidVectorLength, and Token only for InvalidNumberFormat.
type ParseError struct {
	Kind     ErrKind
	Expected int
	Found    int
	Token    string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
}

func (err ParseError) Error() string {
	var what string
	switch err.Kind {
	case IncompleteHeader:
		what = "incomplete header"
	case IncompleteFrame:
		what = "incomplete frame"
	case InvalidVectorLength:
		what = fmt.Sprintf("wrong number of values in line: expected %d, found %d", err.Expected, err.Found)
	case InvalidNumberFormat:
		what = fmt.Sprintf("can't parse number from %q", err.Token)
	default:
		what = "malformed frame"
	}
	if err.filename == "" {
		return fmt.Sprintf("con frame error: %s", what)
	}
	return fmt.Sprintf("con file %s error: %s", err.filename, what)
}

// Decorate adds new information to the error.
func (err ParseError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing frame was associated.
func (err ParseError) FileName() string { return err.filename }

// Format returns the format of the file (always "con") associated to the error.
func (err ParseError) Format() string { return "con" }

// Critical returns true for all parse errors. A caller may still discard the
// failing frame and keep iterating, but after IncompleteHeader or
// IncompleteFrame the cursor is misaligned and every later frame will fail
// too, since the offending lines were already consumed.
func (err ParseError) Critical() bool { return true }

// FileError is the general structure for con file errors other than
// malformed frame text. It fullfills the Error and TrajError interfaces.
type FileError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err FileError) Error() string {
	return fmt.Sprintf("con file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error.
func (err FileError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file to which the failing operation was associated.
func (err FileError) FileName() string { return err.filename }

// Format returns the format of the file (always "con") associated to the error.
func (err FileError) Format() string { return "con" }

// Critical returns true if the error is critical, false otherwise.
func (err FileError) Critical() bool { return err.critical }

const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	ReadError      = "Error reading frame"
	UnableToOpen   = "Unable to open file"
	UnableToCreate = "Unable to create file"
	WrongFormat    = "Wrong format in the con file or frame"
	NotEnoughSpace = "Not enough space in passed blocks"
	NilFrame       = "Given nil frame"
	EOF            = "EOF"
)

//errDecorate is a helper function that asserts that the error
//implements the Error interface and decorates the error with the caller's name before returning it.
//if used with an error from outside this library, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error) //I know that is the type returned by the parsing functions
	err2.Decorate(caller)
	return err2
}

//lastFrameError implements LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//lastFrameError does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "con" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
