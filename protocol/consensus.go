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

package protocol

// ConsensusVersion is a string that identifies a version of the
// consensus protocol.
type ConsensusVersion string

// ConsensusV18 introduced logic signatures, at LogicSigVersion 1.
const ConsensusV18 = ConsensusVersion("v18")

// ConsensusV24 raised LogicSigVersion to 2 and repriced the hash opcodes.
const ConsensusV24 = ConsensusVersion("v24")

// ConsensusCurrentVersion is the latest version known to this checker.
const ConsensusCurrentVersion = ConsensusV24
