package passbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger reads the accounts document from r. Documents written by the
// original float-based implementation decode cleanly; amounts are snapped
// to minor units on the way in.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read accounts document: %w", err)
	}

	var doc struct {
		Accounts map[string]*Account `json:"accounts"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("could not parse accounts document: %w", err)
	}

	ledger := NewLedger()
	for id, a := range doc.Accounts {
		a.ID = id
		if a.Balance.IsNegative() {
			return nil, fmt.Errorf("account %q has a negative balance %s", id, a.Balance)
		}
		if ledger.Has(id) {
			return nil, fmt.Errorf("duplicate account id %q", id)
		}
		ledger.add(a)
	}
	return ledger, nil
}

// EncodeLedger writes the ledger as the canonical accounts document:
// account ids sorted, fixed key order within each record, two-space
// indentation. Encoding a freshly decoded document reproduces it byte for
// byte.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	var accounts jsonObjectWriter
	for id := range ledger.AccountIDs() {
		a, _ := ledger.Account(id)
		accounts.Append(id, a)
	}

	var root jsonObjectWriter
	root.Append("accounts", &accounts)

	data, err := root.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode accounts document: %w", err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("could not indent accounts document: %w", err)
	}
	buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("could not write accounts document: %w", err)
	}
	return nil
}
