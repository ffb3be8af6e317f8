package main

import (
	"fmt"
	"io"

	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/txprim/domain/txscript"
	"github.com/kaspanet/txprim/util/hashes"
	"github.com/kaspanet/txprim/util/hexcodec"
	"github.com/pkg/errors"
)

func keyScript(conf *keyScriptConfig, out io.Writer) error {
	privateKeyBytes, err := hexcodec.DecodeHex(conf.PrivateKey)
	if err != nil {
		return err
	}
	privateKey, err := secp256k1.DeserializeECDSAPrivateKeyFromSlice(privateKeyBytes)
	if err != nil {
		return errors.Wrap(err, "Failed to deserialize private key")
	}
	publicKey, err := privateKey.ECDSAPublicKey()
	if err != nil {
		return errors.Wrap(err, "Failed to derive public key")
	}
	serializedPublicKey, err := publicKey.Serialize()
	if err != nil {
		return errors.Wrap(err, "Failed to serialize public key")
	}

	pubKeyHash := hashes.Hash160(serializedPublicKey[:])
	fmt.Fprintf(out, "Public key:\t%s\n", hexcodec.BytesToHex(serializedPublicKey[:]))
	fmt.Fprintf(out, "Pubkey hash:\t%s\n", hexcodec.BytesToHex(pubKeyHash))

	p2pkh, err := txscript.PayToPubKeyHashScript(pubKeyHash)
	if err != nil {
		return err
	}
	p2wpkh, err := txscript.PayToWitnessPubKeyHashScript(pubKeyHash)
	if err != nil {
		return err
	}
	for _, script := range [][]byte{p2pkh, p2wpkh} {
		address, class, err := txscript.ExtractScriptAddress(script, conf.NetParams())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s:\t%s\t%s\n", class, hexcodec.BytesToHex(script), address)
	}
	return nil
}
