package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/txprim/domain/chaincfg"
	"github.com/kaspanet/txprim/infrastructure/logger"
	"github.com/kaspanet/txprim/util/amount"
	"github.com/kaspanet/txprim/util/hexcodec"
	"github.com/pkg/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	subCmd, conf, _, err := parseArgs(args, flags.HelpFlag)
	if err != nil {
		t.Fatalf("parseArgs(%v): %s", args, err)
	}
	var out bytes.Buffer
	err = runCommand(subCmd, conf, &out)
	return out.String(), err
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "decodehex",
			args:     []string{"decodehex", "--hex", "DEADBEEF"},
			contains: []string{"Length:\t4", "Bytes:\t[222 173 190 239]", "Hex:\tdeadbeef"},
		},
		{
			name:     "reverse",
			args:     []string{"reverse", "-x", "deadbeef"},
			contains: []string{"efbeadde"},
		},
		{
			name:     "swapendian",
			args:     []string{"swapendian", "--value", "305419896"},
			contains: []string{"78563412"},
		},
		{
			name:     "parsesatoshis",
			args:     []string{"parsesatoshis", "--amount", "1000"},
			contains: []string{"Satoshis:\t1000", "0.00001000"},
		},
		{
			name:     "parsesatoshis with fee",
			args:     []string{"parsesatoshis", "--amount", "70", "--fee", "100"},
			contains: []string{"After fee:\t0 (0.00000000 BTC)"},
		},
		{
			name:     "classify p2wpkh",
			args:     []string{"classify", "--script", "0014751e76e8199196d454941c45d1b3a323f1433bd6"},
			contains: []string{"witness_v0_keyhash", "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4 (mainnet)"},
		},
		{
			name:     "classify p2wpkh testnet",
			args:     []string{"classify", "--testnet", "--script", "0014751e76e8199196d454941c45d1b3a323f1433bd6"},
			contains: []string{"tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx (testnet3)"},
		},
		{
			name:     "classify p2pkh",
			args:     []string{"classify", "--script", "76a914751e76e8199196d454941c45d1b3a323f1433bd688ac"},
			contains: []string{"pubkeyhash", "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"},
		},
		{
			name:     "classify unknown",
			args:     []string{"classify", "--script", "010203"},
			contains: []string{"Class:\t\tunknown"},
		},
		{
			name:     "pushdata",
			args:     []string{"pushdata", "--script", "6a24aabbcc"},
			contains: []string{"aabbcc"},
		},
		{
			name:     "opcode checksig",
			args:     []string{"opcode", "--byte", "0xAC"},
			contains: []string{"OP_CHECKSIG"},
		},
		{
			name:     "opcode zero",
			args:     []string{"opcode", "--byte", "00"},
			contains: []string{"OP_INVALID"},
		},
		{
			name:     "outpoint",
			args:     []string{"outpoint", "--txid", "aabbcc", "--index", "1"},
			contains: []string{"Outpoint:\taabbcc:1", "Serialized:\t0300000000000000aabbcc01000000"},
		},
		{
			name:     "utxo",
			args:     []string{"outpoint", "--txid", "aabbcc", "--index", "1", "--value", "100000000"},
			contains: []string{"UTXO:\t\taabbcc:1 (1.00000000 BTC)", "Serialized:\t0300000000000000aabbcc0100000000e1f50500000000"},
		},
	}

	for _, test := range tests {
		output, err := run(t, test.args...)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", test.name, err)
			continue
		}
		for _, expected := range test.contains {
			if !strings.Contains(output, expected) {
				t.Errorf("%s: output %q does not contain %q", test.name, output, expected)
			}
		}
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "decodehex", "--hex", "abc")
	var decodeErr *hexcodec.HexDecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("decodehex: expected *HexDecodeError, got %v", err)
	}

	_, err = run(t, "parsesatoshis", "--amount", "notanumber")
	var amountErr *amount.InvalidAmountError
	if !errors.As(err, &amountErr) {
		t.Errorf("parsesatoshis: expected *InvalidAmountError, got %v", err)
	}

	_, err = run(t, "opcode", "--byte", "acac")
	if err == nil {
		t.Errorf("opcode: expected an error for two bytes")
	}

	_, err = run(t, "outpoint", "--txid", strings.Repeat("00", 65))
	if err == nil {
		t.Errorf("outpoint: expected an error for an oversized transaction id")
	}

	err = runCommand("nonexistent", nil, &bytes.Buffer{})
	if err == nil {
		t.Errorf("expected an error for an unknown sub-command")
	}
}

func TestParseArgs(t *testing.T) {
	subCmd, conf, cfg, err := parseArgs([]string{"--loglevel", "debug", "classify", "--regtest", "-s", "00"}, flags.HelpFlag)
	if err != nil {
		t.Fatalf("parseArgs: %s", err)
	}
	if subCmd != classifySubCmd {
		t.Errorf("got sub-command %s", subCmd)
	}
	if cfg.LogLevel != logger.LevelDebug {
		t.Errorf("got log level %s", cfg.LogLevel)
	}
	classifyConf := conf.(*classifyConfig)
	if classifyConf.NetParams() != &chaincfg.RegressionNetParams {
		t.Errorf("got network %s", classifyConf.NetParams().Name)
	}

	_, _, cfg, err = parseArgs([]string{"pushdata", "-s", "00"}, flags.HelpFlag)
	if err != nil {
		t.Fatalf("parseArgs: %s", err)
	}
	if cfg.LogLevel != logger.LevelWarn {
		t.Errorf("default log level is %s, want %s", cfg.LogLevel, logger.LevelWarn)
	}

	failing := [][]string{
		{},
		{"unknowncommand"},
		{"decodehex"},
		{"classify", "--testnet", "--regtest", "--script", "00"},
		{"--loglevel", "loud", "pushdata", "-s", "00"},
	}
	for _, args := range failing {
		_, _, _, err := parseArgs(args, flags.HelpFlag)
		if err == nil {
			t.Errorf("parseArgs(%v): expected an error", args)
		}
	}
}
