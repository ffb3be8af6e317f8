// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/pkg/errors"
)

const (
	// hashLength is the size of the hash committed to by both templates.
	hashLength = 20

	// payToPubKeyHashLength is the size of
	// OP_DUP OP_HASH160 OP_DATA_20 <hash> OP_EQUALVERIFY OP_CHECKSIG.
	payToPubKeyHashLength = 25

	// payToWitnessPubKeyHashLength is the size of OP_0 OP_DATA_20 <hash>.
	payToWitnessPubKeyHashLength = 22
)

// ScriptClass is an enumeration for the list of standard types of script.
type ScriptClass byte

// Classes of script payment known about in the blockchain.
const (
	UnknownTy             ScriptClass = iota // None of the recognized forms.
	PubKeyHashTy                             // Pay pubkey hash.
	WitnessV0PubKeyHashTy                    // Pay witness pubkey hash.
)

// scriptClassToName houses the human-readable strings which describe each
// script class.
var scriptClassToName = []string{
	UnknownTy:             "unknown",
	PubKeyHashTy:          "pubkeyhash",
	WitnessV0PubKeyHashTy: "witness_v0_keyhash",
}

// String implements the Stringer interface by returning the name of
// the enum script class. If the enum is invalid then "Invalid" will be
// returned.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) {
		return "Invalid"
	}
	return scriptClassToName[t]
}

// isPayToPubKeyHash returns true if the script is in the standard
// pay-to-pubkey-hash form. The 20 bytes of hash are not inspected.
func isPayToPubKeyHash(script []byte) bool {
	return len(script) == payToPubKeyHashLength &&
		script[0] == OpDup &&
		script[1] == OpHash160 &&
		script[2] == OpData20 &&
		script[23] == OpEqualVerify &&
		script[24] == OpCheckSig
}

// isPayToWitnessPubKeyHash returns true if the script is a version 0 witness
// program committing to a 20 byte hash. The hash is not inspected.
func isPayToWitnessPubKeyHash(script []byte) bool {
	return len(script) == payToWitnessPubKeyHashLength &&
		script[0] == Op0 &&
		script[1] == OpData20
}

// ClassifyScript returns the class of the passed output script. Scripts that
// match neither template, the empty script included, are UnknownTy.
func ClassifyScript(script []byte) ScriptClass {
	switch {
	case isPayToPubKeyHash(script):
		return PubKeyHashTy
	case isPayToWitnessPubKeyHash(script):
		return WitnessV0PubKeyHashTy
	default:
		return UnknownTy
	}
}

// ExtractPubKeyHash returns the 20 byte hash committed to by a standard
// script, as a view into script. It returns nil for UnknownTy scripts.
func ExtractPubKeyHash(script []byte) []byte {
	switch ClassifyScript(script) {
	case PubKeyHashTy:
		return script[3:23]
	case WitnessV0PubKeyHashTy:
		return script[2:22]
	default:
		return nil
	}
}

// PayToPubKeyHashScript creates a new script to pay a transaction
// output to a 20-byte pubkey hash.
func PayToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	if len(pubKeyHash) != hashLength {
		return nil, errors.Wrapf(ErrInvalidHashLength, "got %d bytes", len(pubKeyHash))
	}
	script := make([]byte, 0, payToPubKeyHashLength)
	script = append(script, OpDup, OpHash160, OpData20)
	script = append(script, pubKeyHash...)
	script = append(script, OpEqualVerify, OpCheckSig)
	return script, nil
}

// PayToWitnessPubKeyHashScript creates a new version 0 witness program paying
// to a 20-byte pubkey hash.
func PayToWitnessPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	if len(pubKeyHash) != hashLength {
		return nil, errors.Wrapf(ErrInvalidHashLength, "got %d bytes", len(pubKeyHash))
	}
	script := make([]byte, 0, payToWitnessPubKeyHashLength)
	script = append(script, Op0, OpData20)
	script = append(script, pubKeyHash...)
	return script, nil
}
