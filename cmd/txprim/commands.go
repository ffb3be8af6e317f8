package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/kaspanet/txprim/domain/model/externalapi"
	"github.com/kaspanet/txprim/domain/serialization"
	"github.com/kaspanet/txprim/domain/txscript"
	"github.com/kaspanet/txprim/domain/wallet"
	"github.com/kaspanet/txprim/util/amount"
	"github.com/kaspanet/txprim/util/binaryserializer"
	"github.com/kaspanet/txprim/util/hexcodec"
	"github.com/pkg/errors"
)

func decodeHex(conf *decodeHexConfig, out io.Writer) error {
	decoded, err := hexcodec.DecodeHex(conf.Hex)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Length:\t%d\n", len(decoded))
	fmt.Fprintf(out, "Bytes:\t%v\n", decoded)
	fmt.Fprintf(out, "Hex:\t%s\n", hexcodec.BytesToHex(decoded))
	return nil
}

func reverse(conf *reverseConfig, out io.Writer) error {
	decoded, err := hexcodec.HexToBytes(conf.Hex)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, hexcodec.BytesToHex(binaryserializer.ToBigEndian(decoded)))
	return nil
}

func swapEndian(conf *swapEndianConfig, out io.Writer) error {
	littleEndian := binaryserializer.SwapEndianUint32(conf.Value)
	fmt.Fprintln(out, hexcodec.BytesToHex(littleEndian[:]))
	return nil
}

func parseSatoshis(conf *parseSatoshisConfig, out io.Writer) error {
	sats, err := amount.ParseSatoshis(conf.Amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Satoshis:\t%d\n", sats)
	fmt.Fprintf(out, "BTC:\t\t%s\n", amount.FormatBTC(sats))
	if conf.Fee > 0 {
		remaining := sats
		wallet.ApplyFee(&remaining, conf.Fee)
		fmt.Fprintf(out, "After fee:\t%d (%s BTC)\n", remaining, amount.FormatBTC(remaining))
	}
	return nil
}

func classify(conf *classifyConfig, out io.Writer) error {
	script, err := hexcodec.DecodeHex(conf.Script)
	if err != nil {
		return err
	}
	class := txscript.ClassifyScript(script)
	fmt.Fprintf(out, "Class:\t\t%s\n", class)
	if class == txscript.UnknownTy {
		return nil
	}

	address, _, err := txscript.ExtractScriptAddress(script, conf.NetParams())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Pubkey hash:\t%s\n", hexcodec.BytesToHex(txscript.ExtractPubKeyHash(script)))
	fmt.Fprintf(out, "Address:\t%s (%s)\n", address, conf.NetParams().Name)
	return nil
}

func pushData(conf *pushDataConfig, out io.Writer) error {
	script, err := hexcodec.DecodeHex(conf.Script)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, hexcodec.BytesToHex(txscript.ReadPushData(script)))
	return nil
}

func opcode(conf *opcodeConfig, out io.Writer) error {
	text := strings.TrimPrefix(strings.ToLower(conf.Byte), "0x")
	decoded, err := hexcodec.DecodeHex(text)
	if err != nil {
		return err
	}
	if len(decoded) != 1 {
		return errors.Errorf("expected a single byte, got %d bytes", len(decoded))
	}
	fmt.Fprintln(out, txscript.OpcodeFromByte(decoded[0]))
	return nil
}

func outpoint(conf *outpointConfig, out io.Writer) error {
	transactionID, err := hexcodec.DecodeHex(conf.TransactionID)
	if err != nil {
		return err
	}
	if len(transactionID) > serialization.MaxTransactionIDLength {
		return errors.Errorf("transaction id is %d bytes, the maximum is %d",
			len(transactionID), serialization.MaxTransactionIDLength)
	}

	var buf bytes.Buffer
	if conf.Value > 0 {
		entry := externalapi.ConsumeUTXO(externalapi.UTXOEntry{
			TransactionID: transactionID,
			Index:         conf.Index,
			Value:         conf.Value,
		})
		err = serialization.SerializeUTXOEntry(&buf, &entry)
		fmt.Fprintf(out, "UTXO:\t\t%s (%s BTC)\n", entry.Outpoint(), amount.FormatBTC(entry.Value))
	} else {
		op := externalapi.NewDomainOutpoint(transactionID, conf.Index)
		err = serialization.SerializeOutpoint(&buf, op)
		fmt.Fprintf(out, "Outpoint:\t%s\n", op)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Serialized:\t%s\n", hexcodec.BytesToHex(buf.Bytes()))
	return nil
}
