package externalapi

import "bytes"

// UTXOEntry is an unspent transaction output: the outpoint it lives at and
// the value it carries in satoshis.
type UTXOEntry struct {
	TransactionID []byte
	Index         uint32
	Value         uint64
}

// Outpoint returns the outpoint the entry lives at. The transaction id is
// shared with the entry.
func (entry *UTXOEntry) Outpoint() *DomainOutpoint {
	return NewDomainOutpoint(entry.TransactionID, entry.Index)
}

// Equal returns whether entry equals to other
func (entry *UTXOEntry) Equal(other *UTXOEntry) bool {
	if entry == nil || other == nil {
		return entry == other
	}
	return entry.Index == other.Index &&
		entry.Value == other.Value &&
		bytes.Equal(entry.TransactionID, other.TransactionID)
}

// Clone returns a deep copy of the entry
func (entry *UTXOEntry) Clone() *UTXOEntry {
	return &UTXOEntry{
		TransactionID: append([]byte(nil), entry.TransactionID...),
		Index:         entry.Index,
		Value:         entry.Value,
	}
}

// ConsumeUTXO takes the entry by value and hands it back unchanged. The caller
// passes the entry on and is not expected to use its own copy afterwards.
func ConsumeUTXO(entry UTXOEntry) UTXOEntry {
	return entry
}
