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
	"os"
	"sync"

	"github.com/algorand/go-deadlock"

	"github.com/algorand/lsigcheck/logging"
	"github.com/algorand/lsigcheck/protocol"
	"github.com/algorand/lsigcheck/serr"
	"github.com/algorand/lsigcheck/util/metrics"
)

// OpSpec is one opcode as written in a langspec.json file. Only Opcode, Cost
// and Size matter to the checker; the rest is documentation.
type OpSpec struct {
	Opcode        int
	Name          string
	Args          string `codec:",omitempty"`
	Returns       string `codec:",omitempty"`
	Cost          int
	Size          int
	ArgEnum       []string `codec:",omitempty"`
	ArgEnumTypes  string   `codec:",omitempty"`
	Doc           string   `codec:",omitempty"`
	DocExtra      string   `codec:",omitempty"`
	ImmediateNote string   `codec:",omitempty"`
	Groups        []string `codec:",omitempty"`
}

// LangSpec describes a version of the language: the newest program version it
// accepts and its opcodes.
type LangSpec struct {
	EvalMaxVersion  uint64
	LogicSigVersion uint64
	Ops             []OpSpec
}

var langSpecLoads = metrics.MakeCounter(metrics.LangSpecLoadsTotal, "result")

// ParseLangSpec decodes a langspec.json document. Fields the checker has no
// use for are ignored.
func ParseLangSpec(data []byte) (*LangSpec, error) {
	var spec LangSpec
	if err := protocol.DecodeJSONLenient(data, &spec); err != nil {
		return nil, fmt.Errorf("could not decode langspec: %w", err)
	}
	if len(spec.Ops) == 0 {
		return nil, fmt.Errorf("langspec has no ops")
	}
	return &spec, nil
}

// LoadLangSpec reads and decodes the langspec.json at path.
func LoadLangSpec(path string) (*LangSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		langSpecLoads.Inc(map[string]string{"result": "error"})
		return nil, err
	}
	spec, err := ParseLangSpec(data)
	if err != nil {
		langSpecLoads.Inc(map[string]string{"result": "error"})
		return nil, serr.Extend(err, "file", path)
	}
	langSpecLoads.Inc(map[string]string{"result": "ok"})
	logging.Base().WithFields(logging.Fields{
		"file":           path,
		"ops":            len(spec.Ops),
		"evalMaxVersion": spec.EvalMaxVersion,
	}).Info("loaded language spec")
	return spec, nil
}

// layoutFor maps a langspec size to a layout. Size 0 is only meaningful for
// the two constant block opcodes; any other opcode with size 0 gets the
// invalid layout so a program using it is rejected.
func layoutFor(opcode byte, size int) OpLayout {
	if size > 0 {
		return FixedSize(size)
	}
	switch opcode {
	case IntcBlockOpcode:
		return IntConstBlockLayout
	case BytecBlockOpcode:
		return ByteConstBlockLayout
	}
	return OpLayout{}
}

// OpTable builds the dense lookup table for the spec's opcodes.
func (spec *LangSpec) OpTable() (*OpTable, error) {
	descs := make([]OpDesc, 0, len(spec.Ops))
	for _, op := range spec.Ops {
		if op.Opcode < 0 || op.Opcode > 255 {
			return nil, fmt.Errorf("op %s has opcode %d outside 0..255", op.Name, op.Opcode)
		}
		if op.Size < 0 {
			return nil, fmt.Errorf("opcode 0x%02x (%s) has negative size %d", op.Opcode, op.Name, op.Size)
		}
		opcode := byte(op.Opcode)
		descs = append(descs, OpDesc{
			Opcode: opcode,
			Name:   op.Name,
			Cost:   op.Cost,
			Layout: layoutFor(opcode, op.Size),
		})
	}
	return NewOpTable(descs)
}

// CheckParams returns parameters for checking programs against this spec
// with the default limits.
func (spec *LangSpec) CheckParams() (*CheckParams, error) {
	table, err := spec.OpTable()
	if err != nil {
		return nil, err
	}
	return &CheckParams{
		Table:      table,
		MaxVersion: spec.EvalMaxVersion,
		Limits:     DefaultLimits(),
	}, nil
}

// LangSpecForVersion describes the built-in opcodes available at version,
// with the costs in effect at that version.
func LangSpecForVersion(version uint64) *LangSpec {
	entries := opcodesByVersion(version)
	spec := &LangSpec{
		EvalMaxVersion:  version,
		LogicSigVersion: version,
		Ops:             make([]OpSpec, len(entries)),
	}
	for i, oe := range entries {
		spec.Ops[i] = OpSpec{
			Opcode:        int(oe.Opcode),
			Name:          oe.Name,
			Args:          oe.Args,
			Returns:       oe.Returns,
			Cost:          oe.Cost,
			Size:          oe.Layout.SpecSize(),
			Doc:           OpDoc(oe.Name),
			DocExtra:      OpDocExtra(oe.Name),
			ImmediateNote: OpImmediateNote(oe.Name),
			Groups:        OpGroups(oe.Name),
		}
	}
	return spec
}

var (
	defaultSpecOnce sync.Once
	defaultSpec     *LangSpec
	defaultTable    *OpTable
	defaultTableErr error
)

func buildDefault() {
	defaultSpecOnce.Do(func() {
		defaultSpec = LangSpecForVersion(LogicVersion)
		defaultTable, defaultTableErr = defaultSpec.OpTable()
	})
}

// DefaultLangSpec returns the built-in language description. It is built on
// first use and shared afterwards; callers must not modify it.
func DefaultLangSpec() *LangSpec {
	buildDefault()
	return defaultSpec
}

// DefaultOpTable returns the table for DefaultLangSpec.
func DefaultOpTable() *OpTable {
	buildDefault()
	if defaultTableErr != nil {
		// the built-in entries are fixed at compile time
		panic(defaultTableErr)
	}
	return defaultTable
}

type cachedSpec struct {
	spec  *LangSpec
	table *OpTable
}

// TableCache keeps the tables of langspec files already loaded, by path.
type TableCache struct {
	mu     deadlock.Mutex
	tables map[string]cachedSpec
}

// MakeTableCache creates an empty cache.
func MakeTableCache() *TableCache {
	return &TableCache{tables: make(map[string]cachedSpec)}
}

// Load returns the spec and table for path, reading the file the first time
// path is asked for. Failed loads are not cached.
func (c *TableCache) Load(path string) (*LangSpec, *OpTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.tables[path]; ok {
		return cached.spec, cached.table, nil
	}
	spec, err := LoadLangSpec(path)
	if err != nil {
		return nil, nil, err
	}
	table, err := spec.OpTable()
	if err != nil {
		return nil, nil, serr.Extend(err, "file", path)
	}
	c.tables[path] = cachedSpec{spec: spec, table: table}
	return spec, table, nil
}

// Len returns the number of cached tables.
func (c *TableCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tables)
}
