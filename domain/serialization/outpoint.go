package serialization

import (
	"bytes"
	"io"

	"github.com/kaspanet/txprim/domain/model/externalapi"
)

// SerializeOutpoint writes the outpoint as its length-prefixed transaction id
// followed by the little-endian index.
func SerializeOutpoint(w io.Writer, outpoint *externalapi.DomainOutpoint) error {
	return WriteElements(w, outpoint.TransactionID, outpoint.Index)
}

// DeserializeOutpoint reads an outpoint written by SerializeOutpoint.
func DeserializeOutpoint(r io.Reader) (*externalapi.DomainOutpoint, error) {
	outpoint := &externalapi.DomainOutpoint{}
	err := ReadElements(r, &outpoint.TransactionID, &outpoint.Index)
	if err != nil {
		return nil, err
	}
	return outpoint, nil
}

// SerializeUTXOEntry writes the entry's outpoint followed by its little-endian
// value.
func SerializeUTXOEntry(w io.Writer, entry *externalapi.UTXOEntry) error {
	err := SerializeOutpoint(w, entry.Outpoint())
	if err != nil {
		return err
	}
	return WriteElement(w, entry.Value)
}

// DeserializeUTXOEntry reads an entry written by SerializeUTXOEntry.
func DeserializeUTXOEntry(r io.Reader) (*externalapi.UTXOEntry, error) {
	outpoint, err := DeserializeOutpoint(r)
	if err != nil {
		return nil, err
	}
	entry := &externalapi.UTXOEntry{
		TransactionID: outpoint.TransactionID,
		Index:         outpoint.Index,
	}
	err = ReadElement(r, &entry.Value)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// OutpointToBytes serializes the outpoint into a new byte slice.
func OutpointToBytes(outpoint *externalapi.DomainOutpoint) ([]byte, error) {
	var buf bytes.Buffer
	err := SerializeOutpoint(&buf, outpoint)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
