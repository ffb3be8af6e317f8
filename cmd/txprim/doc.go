/*
txprim is a command line front end to the transaction primitive packages.

Usage:

	txprim [OPTIONS] <command> [command OPTIONS]

Application Options:

	--loglevel=    Logging level for all subsystems {trace, debug, info, warn, error, critical, off} (default: warn)
	--logdir=      Directory to write rotated log files to; logs go to stderr only when empty

Available commands:

	classify       Classifies an output script
	decodehex      Decodes a hex string
	keyscript      Builds scripts for a private key
	opcode         Resolves an opcode byte
	outpoint       Serializes an outpoint
	parsesatoshis  Parses a satoshi amount
	pushdata       Reads push data from a script
	reverse        Reverses byte order
	swapendian     Encodes a uint32 as little-endian

Example:

	txprim classify --script 0014751e76e8199196d454941c45d1b3a323f1433bd6
*/
package main
