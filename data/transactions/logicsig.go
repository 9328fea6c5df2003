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

package transactions

import (
	"errors"
)

// Signature is an ed25519 signature, carried opaquely.
type Signature [64]byte

// PublicKey is an ed25519 public key, carried opaquely.
type PublicKey [32]byte

// MultisigSubsig is one key of a multisig and its optional signature.
type MultisigSubsig struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Key PublicKey `codec:"pk"`
	Sig Signature `codec:"s"`
}

// MultisigSig is a k-of-n multisignature.
type MultisigSig struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	Version   uint8            `codec:"v"`
	Threshold uint8            `codec:"thr"`
	Subsigs   []MultisigSubsig `codec:"subsig"`
}

// Blank returns true if the multisig carries nothing.
func (msig MultisigSig) Blank() bool {
	return msig.Version == 0 && msig.Threshold == 0 && len(msig.Subsigs) == 0
}

// LogicSig contains logic for validating a transaction.
// LogicSig is signed by an account, allowing delegation of operations.
// OR
// LogicSig defines a contract account.
type LogicSig struct {
	_struct struct{} `codec:",omitempty,omitemptyarray"`

	// Logic signed by Sig or Msig, OR hashed to be the Address of an account.
	Logic []byte `codec:"l"`

	Sig  Signature   `codec:"sig"`
	Msig MultisigSig `codec:"msig"`

	// Args are not signed, but checked by Logic
	Args [][]byte `codec:"arg"`
}

// Blank returns true if there is no content in this LogicSig
func (lsig *LogicSig) Blank() bool {
	return len(lsig.Logic) == 0
}

// Len returns the number of bytes the program and its arguments occupy.
func (lsig *LogicSig) Len() int {
	n := len(lsig.Logic)
	for _, arg := range lsig.Args {
		n += len(arg)
	}
	return n
}

// Delegated is true when the program is signed by a key or multisig rather
// than standing for a contract account.
func (lsig *LogicSig) Delegated() bool {
	return lsig.Sig != (Signature{}) || !lsig.Msig.Blank()
}

// WellFormed checks the shape of the signature fields. It verifies no
// cryptography and does not look at the program.
func (lsig *LogicSig) WellFormed() error {
	if lsig.Blank() {
		return errors.New("LogicSig has no program")
	}
	if lsig.Sig != (Signature{}) && !lsig.Msig.Blank() {
		return errors.New("LogicSig should only have one of Sig or Msig but has more than one")
	}
	return nil
}
