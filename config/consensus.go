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

package config

import (
	"github.com/algorand/lsigcheck/protocol"
)

// ConsensusParams specifies the logic signature settings that vary with the
// consensus protocol.
type ConsensusParams struct {
	// LogicSigVersion is the highest program version the protocol accepts.
	LogicSigVersion uint64

	// len(LogicSig.Logic) + len(LogicSig.Args[*]) must be less than this
	LogicSigMaxSize uint64

	// sum of estimated op cost must be less than this
	LogicSigMaxCost uint64

	// LogicSigMsig allows a program to be signed by a multisig.
	LogicSigMsig bool
}

// ConsensusProtocols defines a set of supported protocol versions and their
// corresponding parameters.
type ConsensusProtocols map[protocol.ConsensusVersion]ConsensusParams

// Consensus tracks the protocol-level settings for different versions of the
// consensus protocol.
var Consensus ConsensusProtocols

func init() {
	Consensus = make(ConsensusProtocols)

	initConsensusProtocols()
}

func initConsensusProtocols() {
	// v18 introduced logic signatures.
	v18 := ConsensusParams{
		LogicSigVersion: 1,
		LogicSigMaxSize: 1000,
		LogicSigMaxCost: 20000,
		LogicSigMsig:    true,
	}
	Consensus[protocol.ConsensusV18] = v18

	// v24 is v18 plus LogicSigVersion 2. Costs of the hash opcodes changed
	// with it, but the limits did not.
	v24 := v18
	v24.LogicSigVersion = 2
	Consensus[protocol.ConsensusV24] = v24
}

// CurrentLogicSig returns the logic signature settings of the current
// consensus version.
func CurrentLogicSig() ConsensusParams {
	return Consensus[protocol.ConsensusCurrentVersion]
}
