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

import (
	"github.com/algorand/go-codec/codec"
)

// CodecHandle encodes logic signatures as canonical msgpack and refuses
// fields it does not know when decoding.
var CodecHandle *codec.MsgpackHandle

// JSONHandle writes indented, canonical JSON.
var JSONHandle *codec.JsonHandle

// JSONLenientHandle decodes JSON documents written by other tools, ignoring
// fields we have no place for.
var JSONLenientHandle *codec.JsonHandle

func init() {
	CodecHandle = new(codec.MsgpackHandle)
	CodecHandle.ErrorIfNoField = true
	CodecHandle.ErrorIfNoArrayExpand = true
	CodecHandle.Canonical = true
	CodecHandle.RecursiveEmptyCheck = true
	CodecHandle.WriteExt = true
	CodecHandle.PositiveIntUnsigned = true
	CodecHandle.Raw = true

	JSONHandle = new(codec.JsonHandle)
	JSONHandle.ErrorIfNoField = true
	JSONHandle.ErrorIfNoArrayExpand = true
	JSONHandle.Canonical = true
	JSONHandle.RecursiveEmptyCheck = true
	JSONHandle.Indent = 2
	JSONHandle.HTMLCharsAsIs = true

	JSONLenientHandle = new(codec.JsonHandle)
	JSONLenientHandle.ErrorIfNoField = false
	JSONLenientHandle.Canonical = JSONHandle.Canonical
	JSONLenientHandle.Indent = JSONHandle.Indent
	JSONLenientHandle.HTMLCharsAsIs = JSONHandle.HTMLCharsAsIs
}

// Encode returns the msgpack encoding of obj.
func Encode(obj interface{}) []byte {
	var b []byte
	enc := codec.NewEncoderBytes(&b, CodecHandle)
	enc.MustEncode(obj)
	return b
}

// Decode decodes msgpack bytes into objptr.
func Decode(b []byte, objptr interface{}) error {
	dec := codec.NewDecoderBytes(b, CodecHandle)
	return dec.Decode(objptr)
}

// EncodeJSON returns the indented JSON encoding of obj.
func EncodeJSON(obj interface{}) []byte {
	var b []byte
	enc := codec.NewEncoderBytes(&b, JSONHandle)
	enc.MustEncode(obj)
	return b
}

// DecodeJSONLenient decodes JSON bytes into objptr, skipping unknown fields.
func DecodeJSONLenient(b []byte, objptr interface{}) error {
	dec := codec.NewDecoderBytes(b, JSONLenientHandle)
	return dec.Decode(objptr)
}
