package externalapi

import (
	"bytes"
	"encoding/hex"
	"fmt"
)

// DomainOutpoint references a specific output of a previous transaction.
type DomainOutpoint struct {
	TransactionID []byte
	Index         uint32
}

// NewDomainOutpoint instantiates a new DomainOutpoint with the given id and index
func NewDomainOutpoint(transactionID []byte, index uint32) *DomainOutpoint {
	return &DomainOutpoint{
		TransactionID: transactionID,
		Index:         index,
	}
}

// Equal returns whether op equals to other
func (op *DomainOutpoint) Equal(other *DomainOutpoint) bool {
	if op == nil || other == nil {
		return op == other
	}
	return op.Index == other.Index && bytes.Equal(op.TransactionID, other.TransactionID)
}

// Clone returns a clone of DomainOutpoint
func (op *DomainOutpoint) Clone() *DomainOutpoint {
	return &DomainOutpoint{
		TransactionID: append([]byte(nil), op.TransactionID...),
		Index:         op.Index,
	}
}

// String stringifies an outpoint.
func (op DomainOutpoint) String() string {
	return fmt.Sprintf("%s:%d", hex.EncodeToString(op.TransactionID), op.Index)
}
