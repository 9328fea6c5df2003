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
	"fmt"
	"math"
)

type layoutKind byte

const (
	layoutInvalid layoutKind = iota
	layoutFixed
	layoutIntConstBlock
	layoutByteConstBlock
)

// OpLayout says how many program bytes an instruction occupies: either a
// fixed size, or one of the two constant block shapes whose size is read
// from the program itself. The zero OpLayout is invalid, and the scanner
// rejects opcodes carrying it.
type OpLayout struct {
	kind layoutKind
	size int
}

// Layouts for the two variable sized constant blocks.
var (
	IntConstBlockLayout  = OpLayout{kind: layoutIntConstBlock}
	ByteConstBlockLayout = OpLayout{kind: layoutByteConstBlock}
)

// FixedSize returns the layout of an instruction that always occupies n
// bytes, opcode included. n must be positive; anything else yields the
// invalid layout.
func FixedSize(n int) OpLayout {
	if n < 1 {
		return OpLayout{}
	}
	return OpLayout{kind: layoutFixed, size: n}
}

// Valid is false for the zero layout.
func (l OpLayout) Valid() bool {
	return l.kind != layoutInvalid
}

// Fixed returns the size of a fixed layout, and false for variable or
// invalid layouts.
func (l OpLayout) Fixed() (int, bool) {
	return l.size, l.kind == layoutFixed
}

// SpecSize is the size as written in a language spec, where 0 marks a
// variable sized instruction.
func (l OpLayout) SpecSize() int {
	if l.kind == layoutFixed {
		return l.size
	}
	return 0
}

func (l OpLayout) String() string {
	switch l.kind {
	case layoutFixed:
		return fmt.Sprintf("fixed(%d)", l.size)
	case layoutIntConstBlock:
		return "intcblock"
	case layoutByteConstBlock:
		return "bytecblock"
	default:
		return "invalid"
	}
}

// instructionSize computes how many bytes the instruction at pc occupies.
func (l OpLayout) instructionSize(program []byte, pc int) (int, error) {
	switch l.kind {
	case layoutFixed:
		return l.size, nil
	case layoutIntConstBlock:
		return checkIntConstBlock(program, pc)
	case layoutByteConstBlock:
		return checkByteConstBlock(program, pc)
	default:
		return 0, errorf(ErrInvalidInstruction, "opcode 0x%02x has no usable size", program[pc])
	}
}

// OpDesc is what the scanner needs to know about one opcode.
type OpDesc struct {
	Opcode byte
	Name   string
	Cost   int
	Layout OpLayout
}

// OpcodeTable maps opcode bytes to their descriptions. Lookup must be a pure
// read, safe for concurrent use.
type OpcodeTable interface {
	Lookup(opcode byte) (OpDesc, bool)
}

// MaxOpCost bounds the cost of a single opcode, so summing the costs of a
// program of any allowed length cannot overflow.
const MaxOpCost = math.MaxInt32

// OpTable is a dense OpcodeTable indexed by opcode byte. It is not modified
// after construction.
type OpTable struct {
	ops     [256]OpDesc
	present [256]bool
	count   int
}

// NewOpTable builds a table from descs. When an opcode appears more than once
// the last description wins. Costs must lie in [0, MaxOpCost].
func NewOpTable(descs []OpDesc) (*OpTable, error) {
	var t OpTable
	for _, d := range descs {
		if d.Cost < 0 {
			return nil, fmt.Errorf("opcode 0x%02x (%s) has negative cost %d", d.Opcode, d.Name, d.Cost)
		}
		if d.Cost > MaxOpCost {
			return nil, fmt.Errorf("opcode 0x%02x (%s) has cost %d above %d", d.Opcode, d.Name, d.Cost, MaxOpCost)
		}
		if !t.present[d.Opcode] {
			t.count++
		}
		t.ops[d.Opcode] = d
		t.present[d.Opcode] = true
	}
	return &t, nil
}

// Lookup implements OpcodeTable.
func (t *OpTable) Lookup(opcode byte) (OpDesc, bool) {
	return t.ops[opcode], t.present[opcode]
}

// Len returns the number of opcodes in the table.
func (t *OpTable) Len() int {
	return t.count
}

// Ops returns the descriptions in opcode order.
func (t *OpTable) Ops() []OpDesc {
	out := make([]OpDesc, 0, t.count)
	for i := range t.ops {
		if t.present[i] {
			out = append(out, t.ops[i])
		}
	}
	return out
}
