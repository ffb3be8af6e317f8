// Package wallet holds the balance accessor and the fee bookkeeping that sit
// on top of the transaction primitives.
package wallet

// Wallet exposes the confirmed balance of a wallet, in satoshis.
type Wallet interface {
	Balance() uint64
}

// StaticWallet is a Wallet with a fixed confirmed balance.
type StaticWallet struct {
	Confirmed uint64
}

// Balance returns the confirmed balance.
func (w StaticWallet) Balance() uint64 {
	return w.Confirmed
}

// ApplyFee deducts fee from the balance in place. A fee larger than the
// balance empties it instead of wrapping around. The caller owns balance and
// must not share it across goroutines while ApplyFee runs.
func ApplyFee(balance *uint64, fee uint64) {
	if *balance < fee {
		log.Debugf("Fee %d exceeds balance %d, clamping the balance to zero", fee, *balance)
		*balance = 0
		return
	}
	*balance -= fee
}

// MoveTransactionID takes ownership of a transaction id and returns it as a
// "Moved txid" message.
func MoveTransactionID(txID string) string {
	return "Moved txid: " + txID
}
