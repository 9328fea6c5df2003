// Copyright (C) 2019-2026 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

package logic

import (
	"errors"
	"fmt"
)

// Each failed check wraps exactly one of these, so callers can tell which
// gate rejected the program with errors.Is.
var (
	// ErrMalformedVersion is returned when the leading version varint is
	// missing, truncated or overflows.
	ErrMalformedVersion = errors.New("malformed program version")
	// ErrUnsupportedVersion is returned when the program version is newer
	// than the language spec in use.
	ErrUnsupportedVersion = errors.New("unsupported program version")
	// ErrProgramTooLong is returned when program plus arguments exceed the
	// size limit.
	ErrProgramTooLong = errors.New("program too long")
	// ErrInvalidInstruction is returned for opcodes missing from the table, or
	// whose layout the scanner cannot size.
	ErrInvalidInstruction = errors.New("invalid instruction")
	// ErrConstBlockDecode is returned when an intcblock or bytecblock cannot
	// be decoded within the program.
	ErrConstBlockDecode = errors.New("could not decode constant block")
	// ErrProgramTooCostly is returned when the summed static cost exceeds the
	// cost limit.
	ErrProgramTooCostly = errors.New("program too costly to run")
)

func errorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// ConstBlockError describes where a constant block failed to decode.
type ConstBlockError struct {
	Op string
	// Pc is the offset of the block's opcode byte.
	Pc int
	// Index is the entry that failed, or -1 when the count itself did.
	Index  int
	Reason string
}

func (e *ConstBlockError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s at pc=%d: %s", e.Op, e.Pc, e.Reason)
	}
	return fmt.Sprintf("%s const[%d] at pc=%d: %s", e.Op, e.Index, e.Pc, e.Reason)
}

// Unwrap lets errors.Is match ErrConstBlockDecode.
func (e *ConstBlockError) Unwrap() error {
	return ErrConstBlockDecode
}
