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
	"sort"
	"strings"
)

// LogicVersion is the highest program version described by the built-in
// language spec.
const LogicVersion = 2

// EvalMaxVersion is the max version the built-in language spec accepts.
const EvalMaxVersion = LogicVersion

// The opcodes whose size depends on their encoded contents. These values are
// part of the bytecode format and MAY NOT be changed.
const (
	IntcBlockOpcode  = 0x20
	BytecBlockOpcode = 0x26
)

// OpDetails records the static cost and bytecode layout of an opcode.
type OpDetails struct {
	Cost   int
	Layout OpLayout

	Immediates []string // names of immediate args, for docs
}

func opDefault() OpDetails {
	return OpDetails{Cost: 1, Layout: FixedSize(1)}
}

func costly(cost int) OpDetails {
	d := opDefault()
	d.Cost = cost
	return d
}

func immediates(names ...string) OpDetails {
	d := opDefault()
	d.Layout = FixedSize(len(names) + 1)
	d.Immediates = names
	return d
}

func opBranch() OpDetails {
	d := opDefault()
	d.Layout = FixedSize(3)
	d.Immediates = []string{"target"}
	return d
}

func constants(layout OpLayout, name string) OpDetails {
	return OpDetails{Cost: 1, Layout: layout, Immediates: []string{name}}
}

// Proto describes the stack behavior of an opcode, in the letters the
// language spec uses: B bytes, U uint64, . any.
type Proto struct {
	Args    string
	Returns string
}

func proto(signature string) Proto {
	parts := strings.Split(signature, ":")
	if len(parts) != 2 {
		panic(signature)
	}
	return Proto{Args: stackLetters(parts[0]), Returns: stackLetters(parts[1])}
}

func stackLetters(types string) string {
	var sb strings.Builder
	for _, c := range types {
		switch c {
		case 'b':
			sb.WriteByte('B')
		case 'i':
			sb.WriteByte('U')
		case 'a':
			sb.WriteByte('.')
		case 'x':
			// no return, the op ends the program
		default:
			panic(types)
		}
	}
	return sb.String()
}

// opEntry defines an opcode as of the version it was introduced or changed.
type opEntry struct {
	Opcode byte
	Name   string
	Proto
	Version   uint64
	OpDetails // cost and bytecode layout
}

// opEntries is the table of operations known to the built-in language spec.
//
// The same opcode may appear for several versions when its cost changed.
var opEntries = []opEntry{
	{0x00, "err", proto(":x"), 1, opDefault()},
	{0x01, "sha256", proto("b:b"), 1, costly(7)},
	{0x02, "keccak256", proto("b:b"), 1, costly(26)},
	{0x03, "sha512_256", proto("b:b"), 1, costly(9)},

	// Cost of these opcodes increases in version 2 based on measured
	// performance.
	{0x01, "sha256", proto("b:b"), 2, costly(35)},
	{0x02, "keccak256", proto("b:b"), 2, costly(130)},
	{0x03, "sha512_256", proto("b:b"), 2, costly(45)},

	{0x04, "ed25519verify", proto("bbb:i"), 1, costly(1900)},
	{0x08, "+", proto("ii:i"), 1, opDefault()},
	{0x09, "-", proto("ii:i"), 1, opDefault()},
	{0x0a, "/", proto("ii:i"), 1, opDefault()},
	{0x0b, "*", proto("ii:i"), 1, opDefault()},
	{0x0c, "<", proto("ii:i"), 1, opDefault()},
	{0x0d, ">", proto("ii:i"), 1, opDefault()},
	{0x0e, "<=", proto("ii:i"), 1, opDefault()},
	{0x0f, ">=", proto("ii:i"), 1, opDefault()},
	{0x10, "&&", proto("ii:i"), 1, opDefault()},
	{0x11, "||", proto("ii:i"), 1, opDefault()},
	{0x12, "==", proto("aa:i"), 1, opDefault()},
	{0x13, "!=", proto("aa:i"), 1, opDefault()},
	{0x14, "!", proto("i:i"), 1, opDefault()},
	{0x15, "len", proto("b:i"), 1, opDefault()},
	{0x16, "itob", proto("i:b"), 1, opDefault()},
	{0x17, "btoi", proto("b:i"), 1, opDefault()},
	{0x18, "%", proto("ii:i"), 1, opDefault()},
	{0x19, "|", proto("ii:i"), 1, opDefault()},
	{0x1a, "&", proto("ii:i"), 1, opDefault()},
	{0x1b, "^", proto("ii:i"), 1, opDefault()},
	{0x1c, "~", proto("i:i"), 1, opDefault()},
	{0x1d, "mulw", proto("ii:ii"), 1, opDefault()},
	{0x1e, "addw", proto("ii:ii"), 2, opDefault()},

	{IntcBlockOpcode, "intcblock", proto(":"), 1, constants(IntConstBlockLayout, "uint ...")},
	{0x21, "intc", proto(":i"), 1, immediates("i")},
	{0x22, "intc_0", proto(":i"), 1, opDefault()},
	{0x23, "intc_1", proto(":i"), 1, opDefault()},
	{0x24, "intc_2", proto(":i"), 1, opDefault()},
	{0x25, "intc_3", proto(":i"), 1, opDefault()},
	{BytecBlockOpcode, "bytecblock", proto(":"), 1, constants(ByteConstBlockLayout, "bytes ...")},
	{0x27, "bytec", proto(":b"), 1, immediates("i")},
	{0x28, "bytec_0", proto(":b"), 1, opDefault()},
	{0x29, "bytec_1", proto(":b"), 1, opDefault()},
	{0x2a, "bytec_2", proto(":b"), 1, opDefault()},
	{0x2b, "bytec_3", proto(":b"), 1, opDefault()},
	{0x2c, "arg", proto(":b"), 1, immediates("n")},
	{0x2d, "arg_0", proto(":b"), 1, opDefault()},
	{0x2e, "arg_1", proto(":b"), 1, opDefault()},
	{0x2f, "arg_2", proto(":b"), 1, opDefault()},
	{0x30, "arg_3", proto(":b"), 1, opDefault()},
	{0x31, "txn", proto(":a"), 1, immediates("f")},
	{0x32, "global", proto(":a"), 1, immediates("f")},
	{0x33, "gtxn", proto(":a"), 1, immediates("t", "f")},
	{0x34, "load", proto(":a"), 1, immediates("i")},
	{0x35, "store", proto("a:"), 1, immediates("i")},
	{0x36, "txna", proto(":a"), 2, immediates("f", "i")},
	{0x37, "gtxna", proto(":a"), 2, immediates("t", "f", "i")},

	{0x40, "bnz", proto("i:"), 1, opBranch()},
	{0x41, "bz", proto("i:"), 2, opBranch()},
	{0x42, "b", proto(":"), 2, opBranch()},
	{0x43, "return", proto("i:x"), 2, opDefault()},
	{0x48, "pop", proto("a:"), 1, opDefault()},
	{0x49, "dup", proto("a:aa"), 1, opDefault()},
	{0x4a, "dup2", proto("aa:aaaa"), 2, opDefault()},

	// byteslice processing
	{0x50, "concat", proto("bb:b"), 2, opDefault()},
	{0x51, "substring", proto("b:b"), 2, immediates("s", "e")},
	{0x52, "substring3", proto("bii:b"), 2, opDefault()},

	{0x60, "balance", proto("i:i"), 2, opDefault()},
	{0x61, "app_opted_in", proto("ii:i"), 2, opDefault()},
	{0x62, "app_local_get", proto("ib:a"), 2, opDefault()},
	{0x63, "app_local_get_ex", proto("iib:ai"), 2, opDefault()},
	{0x64, "app_global_get", proto("b:a"), 2, opDefault()},
	{0x65, "app_global_get_ex", proto("ib:ai"), 2, opDefault()},
	{0x66, "app_local_put", proto("iba:"), 2, opDefault()},
	{0x67, "app_global_put", proto("ba:"), 2, opDefault()},
	{0x68, "app_local_del", proto("ib:"), 2, opDefault()},
	{0x69, "app_global_del", proto("b:"), 2, opDefault()},

	{0x70, "asset_holding_get", proto("ii:ai"), 2, immediates("f")},
	{0x71, "asset_params_get", proto("i:ai"), 2, immediates("f")},
}

type sortByOpcode []opEntry

func (a sortByOpcode) Len() int           { return len(a) }
func (a sortByOpcode) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a sortByOpcode) Less(i, j int) bool { return a[i].Opcode < a[j].Opcode }

// opcodesByVersion returns the opcodes available in a specific version, each
// with the cost and layout in effect at that version. The Version of an
// updated opcode is the lowest version it was introduced in.
func opcodesByVersion(version uint64) []opEntry {
	introduced := make(map[byte]uint64)
	for _, oe := range opEntries {
		if v, ok := introduced[oe.Opcode]; !ok || oe.Version < v {
			introduced[oe.Opcode] = oe.Version
		}
	}

	subv := make(map[byte]opEntry)
	for _, oe := range opEntries {
		if oe.Version > version {
			continue
		}
		if prev, ok := subv[oe.Opcode]; ok && prev.Version > oe.Version {
			continue
		}
		subv[oe.Opcode] = oe
	}
	result := make([]opEntry, 0, len(subv))
	for op, oe := range subv {
		oe.Version = introduced[op]
		result = append(result, oe)
	}
	sort.Sort(sortByOpcode(result))
	return result
}
