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
	"math"

	"github.com/algorand/lsigcheck/config"
	"github.com/algorand/lsigcheck/data/transactions"
	"github.com/algorand/lsigcheck/logging"
	"github.com/algorand/lsigcheck/serr"
	"github.com/algorand/lsigcheck/util/metrics"
)

// Limits a logic signature program must stay within.
const (
	// LogicSigMaxSize bounds len(program) plus the lengths of all args.
	LogicSigMaxSize = 1000
	// LogicSigMaxCost bounds the summed static cost of the program.
	LogicSigMaxCost = 20000
)

// Limits bounds the size and static cost of a program.
type Limits struct {
	MaxLength int
	MaxCost   int
}

// DefaultLimits returns LogicSigMaxSize and LogicSigMaxCost.
func DefaultLimits() Limits {
	return Limits{MaxLength: LogicSigMaxSize, MaxCost: LogicSigMaxCost}
}

// LimitsFromConsensus returns the limits of a consensus protocol.
func LimitsFromConsensus(proto config.ConsensusParams) Limits {
	return Limits{MaxLength: int(proto.LogicSigMaxSize), MaxCost: int(proto.LogicSigMaxCost)}
}

// CheckParams is what Check checks a program against. Start from
// DefaultCheckParams or (*LangSpec).CheckParams rather than a zero value.
type CheckParams struct {
	// Table defaults to DefaultOpTable when nil.
	Table OpcodeTable

	// MaxVersion is the newest program version accepted. Zero accepts only
	// version 0 programs.
	MaxVersion uint64

	// Limits defaults to DefaultLimits when zero.
	Limits Limits

	// Log defaults to logging.Base when nil.
	Log logging.Logger
}

// DefaultCheckParams checks against the built-in language spec.
func DefaultCheckParams() *CheckParams {
	return &CheckParams{
		Table:      DefaultOpTable(),
		MaxVersion: EvalMaxVersion,
		Limits:     DefaultLimits(),
	}
}

// CheckResult describes a program that passed Check.
type CheckResult struct {
	Version uint64
	// Length is len(program) plus the length of every arg.
	Length int
	Cost   int
	// Instructions is the number of instructions scanned, constant blocks
	// counting as one each.
	Instructions int
}

var (
	checksTotal   = metrics.MakeCounter(metrics.LogicSigChecksTotal, "result")
	programCost   = metrics.MakeHistogram(metrics.LogicSigProgramCost, []float64{10, 100, 1000, 2000, 5000, 10000, LogicSigMaxCost})
	programLength = metrics.MakeHistogram(metrics.LogicSigProgramLength, []float64{10, 50, 100, 250, 500, LogicSigMaxSize})
)

// checkResultLabel names the gate that rejected a program, for metrics.
func checkResultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMalformedVersion):
		return "malformed_version"
	case errors.Is(err, ErrUnsupportedVersion):
		return "unsupported_version"
	case errors.Is(err, ErrProgramTooLong):
		return "too_long"
	case errors.Is(err, ErrConstBlockDecode):
		return "const_block"
	case errors.Is(err, ErrInvalidInstruction):
		return "invalid_instruction"
	case errors.Is(err, ErrProgramTooCostly):
		return "too_costly"
	default:
		return "other"
	}
}

// Check tests a program and its args against the version, length and static
// cost limits in params, without executing it. A nil params checks against
// the built-in language spec.
//
// The scan sums the cost of every instruction, stepping over constant
// blocks by decoding them. It does not check that the last instruction ends
// exactly at the end of the program.
func Check(program []byte, args [][]byte, params *CheckParams) (CheckResult, error) {
	if params == nil {
		params = DefaultCheckParams()
	}
	log := params.Log
	if log == nil {
		log = logging.Base()
	}

	result, err := check(program, args, params)
	checksTotal.Inc(map[string]string{"result": checkResultLabel(err)})
	if err != nil {
		if log.IsLevelEnabled(logging.Debug) {
			log.WithFields(logging.Fields{
				"length": len(program),
				"args":   len(args),
			}).Debugf("program rejected: %v", err)
		}
		return CheckResult{}, err
	}
	programCost.Observe(float64(result.Cost))
	programLength.Observe(float64(result.Length))
	return result, nil
}

// addCost adds opCost to cost, saturating at math.MaxInt once the sum passes
// limit so that costs from an arbitrary OpcodeTable cannot wrap around.
func addCost(cost, opCost, limit int) int {
	if cost > limit || opCost > limit-cost {
		return math.MaxInt
	}
	return cost + opCost
}

func check(program []byte, args [][]byte, params *CheckParams) (CheckResult, error) {
	table := params.Table
	if table == nil {
		table = DefaultOpTable()
	}
	limits := params.Limits
	if limits == (Limits{}) {
		limits = DefaultLimits()
	}

	version, vlen, err := ProgramVersion(program)
	if err != nil {
		return CheckResult{}, err
	}
	if version > params.MaxVersion {
		return CheckResult{}, errorf(ErrUnsupportedVersion, "program version %d greater than max supported version %d", version, params.MaxVersion)
	}

	length := len(program)
	for _, arg := range args {
		length += len(arg)
	}
	if length > limits.MaxLength {
		return CheckResult{}, errorf(ErrProgramTooLong, "program too long (%d > %d)", length, limits.MaxLength)
	}

	cost := 0
	instructions := 0
	pc := vlen
	for pc < len(program) {
		opcode := program[pc]
		desc, ok := table.Lookup(opcode)
		if !ok {
			return CheckResult{}, serr.Extend(errorf(ErrInvalidInstruction, "illegal opcode 0x%02x", opcode), "pc", pc, "opcode", opcode)
		}
		cost = addCost(cost, desc.Cost, limits.MaxCost)
		size, err := desc.Layout.instructionSize(program, pc)
		if err != nil {
			return CheckResult{}, serr.Extend(err, "pc", pc, "opcode", opcode)
		}
		pc += size
		instructions++
	}

	if cost > limits.MaxCost {
		if cost == math.MaxInt {
			return CheckResult{}, errorf(ErrProgramTooCostly, "program cost exceeds %d", limits.MaxCost)
		}
		return CheckResult{}, errorf(ErrProgramTooCostly, "program too costly (%d > %d)", cost, limits.MaxCost)
	}
	return CheckResult{Version: version, Length: length, Cost: cost, Instructions: instructions}, nil
}

// CheckProgram checks program and args against the built-in language spec
// and the default limits.
func CheckProgram(program []byte, args [][]byte) error {
	_, err := Check(program, args, nil)
	return err
}

// CheckSignature checks the program and args of a decoded logic signature.
// A signature carrying both Sig and Msig is rejected before the program is
// looked at.
func CheckSignature(lsig *transactions.LogicSig, params *CheckParams) (CheckResult, error) {
	if lsig == nil {
		return CheckResult{}, errors.New("nil logic signature")
	}
	if !lsig.Blank() {
		if err := lsig.WellFormed(); err != nil {
			return CheckResult{}, err
		}
	}
	return Check(lsig.Logic, lsig.Args, params)
}
