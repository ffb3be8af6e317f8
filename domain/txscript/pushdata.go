package txscript

// pushDataPrefixLength is the opcode and length byte pair ReadPushData skips.
const pushDataPrefixLength = 2

// ReadPushData returns the bytes following the first two bytes of script as a
// view into script, without copying. Scripts of two bytes or fewer yield an
// empty slice.
//
// The opcode and length at offsets 0 and 1 are not interpreted, so this is
// only correct for single-byte push opcodes that are followed by one length
// byte, such as OP_RETURN <len> <data>. OP_PUSHDATA2 and OP_PUSHDATA4 are not
// handled.
func ReadPushData(script []byte) []byte {
	if len(script) <= pushDataPrefixLength {
		return []byte{}
	}
	return script[pushDataPrefixLength:]
}
