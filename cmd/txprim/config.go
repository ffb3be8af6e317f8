package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/kaspanet/txprim/infrastructure/config"
	"github.com/pkg/errors"
)

const (
	decodeHexSubCmd     = "decodehex"
	reverseSubCmd       = "reverse"
	swapEndianSubCmd    = "swapendian"
	parseSatoshisSubCmd = "parsesatoshis"
	classifySubCmd      = "classify"
	pushDataSubCmd      = "pushdata"
	opcodeSubCmd        = "opcode"
	outpointSubCmd      = "outpoint"
	keyScriptSubCmd     = "keyscript"
)

type configFlags struct {
	config.LogFlags
}

type decodeHexConfig struct {
	Hex string `long:"hex" short:"x" description:"The hex string to decode" required:"true"`
}

type reverseConfig struct {
	Hex string `long:"hex" short:"x" description:"The hex string whose byte order to reverse, e.g. a transaction id" required:"true"`
}

type swapEndianConfig struct {
	Value uint32 `long:"value" short:"v" description:"The unsigned 32-bit integer to encode as little-endian" required:"true"`
}

type parseSatoshisConfig struct {
	Amount string `long:"amount" short:"a" description:"The amount in satoshis" required:"true"`
	Fee    uint64 `long:"fee" short:"f" description:"A fee in satoshis to deduct from the amount"`
}

type classifyConfig struct {
	Script string `long:"script" short:"s" description:"The output script (encoded in hex)" required:"true"`
	config.NetworkFlags
}

type pushDataConfig struct {
	Script string `long:"script" short:"s" description:"The script to read push data from (encoded in hex)" required:"true"`
}

type opcodeConfig struct {
	Byte string `long:"byte" short:"b" description:"The opcode byte (encoded in hex, e.g. ac or 0xac)" required:"true"`
}

type outpointConfig struct {
	TransactionID string `long:"txid" short:"t" description:"The transaction id (encoded in hex)" required:"true"`
	Index         uint32 `long:"index" short:"i" description:"The output index"`
	Value         uint64 `long:"value" short:"v" description:"Serialize a UTXO entry with this value in satoshis instead of a bare outpoint"`
}

type keyScriptConfig struct {
	PrivateKey string `long:"private-key" short:"k" description:"The private key (encoded in hex)" required:"true"`
	config.NetworkFlags
}

func parseCommandLine() (subCommand string, conf interface{}, logFlags *config.LogFlags) {
	subCommand, conf, cfg, err := parseArgs(os.Args[1:], flags.PrintErrors|flags.HelpFlag)
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
	return subCommand, conf, &cfg.LogFlags
}

func parseArgs(args []string, options flags.Options) (subCommand string, conf interface{}, cfg *configFlags, err error) {
	cfg = &configFlags{}
	parser := flags.NewParser(cfg, options)

	decodeHexConf := &decodeHexConfig{}
	parser.AddCommand(decodeHexSubCmd, "Decodes a hex string",
		"Decodes a hex string and prints its bytes", decodeHexConf)

	reverseConf := &reverseConfig{}
	parser.AddCommand(reverseSubCmd, "Reverses byte order",
		"Reverses the byte order of a hex string, converting between internal and display transaction ids", reverseConf)

	swapEndianConf := &swapEndianConfig{}
	parser.AddCommand(swapEndianSubCmd, "Encodes a uint32 as little-endian",
		"Encodes an unsigned 32-bit integer as 4 little-endian bytes", swapEndianConf)

	parseSatoshisConf := &parseSatoshisConfig{}
	parser.AddCommand(parseSatoshisSubCmd, "Parses a satoshi amount",
		"Parses a decimal satoshi amount, optionally deducting a fee", parseSatoshisConf)

	classifyConf := &classifyConfig{}
	parser.AddCommand(classifySubCmd, "Classifies an output script",
		"Classifies an output script and prints the address it pays to", classifyConf)

	pushDataConf := &pushDataConfig{}
	parser.AddCommand(pushDataSubCmd, "Reads push data from a script",
		"Prints the bytes following the 2-byte opcode and length prefix of a script", pushDataConf)

	opcodeConf := &opcodeConfig{}
	parser.AddCommand(opcodeSubCmd, "Resolves an opcode byte",
		"Resolves a single script byte to an opcode name", opcodeConf)

	outpointConf := &outpointConfig{}
	parser.AddCommand(outpointSubCmd, "Serializes an outpoint",
		"Serializes an outpoint, or a UTXO entry when --value is given", outpointConf)

	keyScriptConf := &keyScriptConfig{}
	parser.AddCommand(keyScriptSubCmd, "Builds scripts for a private key",
		"Derives the compressed public key of a private key and prints its standard scripts and addresses", keyScriptConf)

	_, err = parser.ParseArgs(args)
	if err != nil {
		return "", nil, nil, err
	}

	switch parser.Command.Active.Name {
	case decodeHexSubCmd:
		conf = decodeHexConf
	case reverseSubCmd:
		conf = reverseConf
	case swapEndianSubCmd:
		conf = swapEndianConf
	case parseSatoshisSubCmd:
		conf = parseSatoshisConf
	case classifySubCmd:
		err := classifyConf.ResolveNetwork(parser)
		if err != nil {
			return "", nil, nil, err
		}
		conf = classifyConf
	case pushDataSubCmd:
		conf = pushDataConf
	case opcodeSubCmd:
		conf = opcodeConf
	case outpointSubCmd:
		conf = outpointConf
	case keyScriptSubCmd:
		err := keyScriptConf.ResolveNetwork(parser)
		if err != nil {
			return "", nil, nil, err
		}
		conf = keyScriptConf
	}

	return parser.Command.Active.Name, conf, cfg, nil
}
