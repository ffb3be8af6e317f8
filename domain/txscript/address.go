package txscript

import (
	"encoding/hex"

	"github.com/btcsuite/btcutil/base58"
	"github.com/btcsuite/btcutil/bech32"
	"github.com/kaspanet/txprim/domain/chaincfg"
	"github.com/kaspanet/txprim/infrastructure/logger"
	"github.com/pkg/errors"
)

// witnessVersion0 is the witness version of pay-to-witness-pubkey-hash
// programs.
const witnessVersion0 = 0

// ExtractScriptAddress returns the address a standard script pays to on the
// network described by params, along with the script class. Pay-to-pubkey-hash
// scripts give base58check addresses and witness scripts give bech32
// addresses. UnknownTy scripts return ErrNonStandardScript.
func ExtractScriptAddress(script []byte, params *chaincfg.Params) (string, ScriptClass, error) {
	class := ClassifyScript(script)
	log.Tracef("Extracting %s address from script %s", class,
		logger.NewLogClosure(func() string { return hex.EncodeToString(script) }))

	switch class {
	case PubKeyHashTy:
		return base58.CheckEncode(ExtractPubKeyHash(script), params.PubKeyHashAddrID), class, nil
	case WitnessV0PubKeyHashTy:
		address, err := encodeSegWitAddress(params.Bech32HRP, witnessVersion0, ExtractPubKeyHash(script))
		if err != nil {
			return "", class, err
		}
		return address, class, nil
	default:
		return "", class, errors.WithStack(ErrNonStandardScript)
	}
}

// encodeSegWitAddress encodes a witness program as a bech32 address.
func encodeSegWitAddress(hrp string, witnessVersion byte, witnessProgram []byte) (string, error) {
	converted, err := bech32.ConvertBits(witnessProgram, 8, 5, true)
	if err != nil {
		return "", errors.WithStack(err)
	}
	data := append([]byte{witnessVersion}, converted...)
	address, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return address, nil
}
