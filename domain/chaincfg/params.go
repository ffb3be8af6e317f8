// Package chaincfg defines the per-network parameters needed to render
// output scripts as addresses.
package chaincfg

import (
	"strings"

	"github.com/pkg/errors"
)

// Params defines a Bitcoin network by the prefixes its addresses use.
type Params struct {
	// Name is a human-readable identifier for the network.
	Name string

	// PubKeyHashAddrID is the base58check version byte of pay-to-pubkey-hash
	// addresses.
	PubKeyHashAddrID byte

	// Bech32HRP is the human-readable part of segwit addresses.
	Bech32HRP string
}

// MainnetParams defines the parameters for the main network.
var MainnetParams = Params{
	Name:             "mainnet",
	PubKeyHashAddrID: 0x00,
	Bech32HRP:        "bc",
}

// TestnetParams defines the parameters for the test network.
var TestnetParams = Params{
	Name:             "testnet3",
	PubKeyHashAddrID: 0x6f,
	Bech32HRP:        "tb",
}

// RegressionNetParams defines the parameters for the regression test network.
var RegressionNetParams = Params{
	Name:             "regtest",
	PubKeyHashAddrID: 0x6f,
	Bech32HRP:        "bcrt",
}

var registeredParams = []*Params{&MainnetParams, &TestnetParams, &RegressionNetParams}

// ErrUnknownNetwork is returned by ParamsByName for unregistered names.
var ErrUnknownNetwork = errors.New("unknown network")

// ParamsByName returns the registered parameters with the given name,
// ignoring case.
func ParamsByName(name string) (*Params, error) {
	for _, params := range registeredParams {
		if strings.EqualFold(params.Name, name) {
			return params, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownNetwork, "%q", name)
}
