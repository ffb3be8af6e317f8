package txscript

import (
	"testing"

	"github.com/kaspanet/txprim/domain/chaincfg"
	"github.com/kaspanet/txprim/util/hexcodec"
	"github.com/pkg/errors"
)

func TestExtractScriptAddress(t *testing.T) {
	t.Parallel()

	// Hash160 of the compressed public key of private key 1.
	hash := hexcodec.MustDecodeHex("751e76e8199196d454941c45d1b3a323f1433bd6")
	p2pkh, err := PayToPubKeyHashScript(hash)
	if err != nil {
		t.Fatalf("PayToPubKeyHashScript: %s", err)
	}
	p2wpkh, err := PayToWitnessPubKeyHashScript(hash)
	if err != nil {
		t.Fatalf("PayToWitnessPubKeyHashScript: %s", err)
	}

	tests := []struct {
		name     string
		script   []byte
		params   *chaincfg.Params
		expected string
		class    ScriptClass
	}{
		{
			name:     "p2pkh mainnet",
			script:   p2pkh,
			params:   &chaincfg.MainnetParams,
			expected: "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH",
			class:    PubKeyHashTy,
		},
		{
			name:     "p2wpkh mainnet",
			script:   p2wpkh,
			params:   &chaincfg.MainnetParams,
			expected: "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
			class:    WitnessV0PubKeyHashTy,
		},
		{
			name:     "p2wpkh testnet",
			script:   p2wpkh,
			params:   &chaincfg.TestnetParams,
			expected: "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx",
			class:    WitnessV0PubKeyHashTy,
		},
	}

	for _, test := range tests {
		address, class, err := ExtractScriptAddress(test.script, test.params)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", test.name, err)
			continue
		}
		if class != test.class {
			t.Errorf("%s: got class %s want %s", test.name, class, test.class)
		}
		if address != test.expected {
			t.Errorf("%s: got address %s want %s", test.name, address, test.expected)
		}
	}
}

func TestExtractScriptAddressNonStandard(t *testing.T) {
	t.Parallel()

	address, class, err := ExtractScriptAddress([]byte{0x6a, 0x01, 0x02}, &chaincfg.MainnetParams)
	if !errors.Is(err, ErrNonStandardScript) {
		t.Errorf("expected ErrNonStandardScript, got %v", err)
	}
	if class != UnknownTy || address != "" {
		t.Errorf("got class %s and address %q", class, address)
	}
}
