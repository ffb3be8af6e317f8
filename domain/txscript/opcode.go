// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// Raw opcode values referenced by the standard script templates.
const (
	Op0           = 0x00 // 0
	OpData20      = 0x14 // 20
	OpDup         = 0x76 // 118
	OpEqualVerify = 0x88 // 136
	OpHash160     = 0xa9 // 169
	OpCheckSig    = 0xac // 172
)

// Opcode is the closed set of opcodes this package resolves by name.
type Opcode byte

// Every byte that is not explicitly recognized resolves to OpcodeInvalid.
const (
	OpcodeInvalid Opcode = iota
	OpcodeDup
	OpcodeCheckSig
)

var opcodeToName = []string{
	OpcodeInvalid:  "OP_INVALID",
	OpcodeDup:      "OP_DUP",
	OpcodeCheckSig: "OP_CHECKSIG",
}

// String returns the conventional name of the opcode.
func (o Opcode) String() string {
	if int(o) >= len(opcodeToName) {
		return fmt.Sprintf("Opcode(%d)", byte(o))
	}
	return opcodeToName[o]
}

// OpcodeFromByte resolves a script byte to an Opcode. It never fails: 0xac is
// OpcodeCheckSig, 0x76 is OpcodeDup and every other value, 0x00 included,
// is OpcodeInvalid. Callers that need to tell unassigned bytes apart from
// opcodes handled elsewhere must inspect the byte themselves.
func OpcodeFromByte(b byte) Opcode {
	switch b {
	case OpCheckSig:
		return OpcodeCheckSig
	case OpDup:
		return OpcodeDup
	default:
		return OpcodeInvalid
	}
}
