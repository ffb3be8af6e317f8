// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package hashes

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Hash160Size is the length in bytes of a Hash160 digest.
const Hash160Size = ripemd160.Size

// Hash160 calculates the hash ripemd160(sha256(b)), the digest committed to by
// pay-to-pubkey-hash and pay-to-witness-pubkey-hash scripts.
func Hash160(buf []byte) []byte {
	sha := sha256.Sum256(buf)
	hasher := ripemd160.New()
	_, _ = hasher.Write(sha[:])
	return hasher.Sum(nil)
}
