package passbook

import "encoding/json"

// Kind is a typed string identifying the nature of a history entry.
type Kind string

// Entry kinds. The string values are part of the document format.
const (
	KindDeposit     Kind = "Deposit"
	KindWithdraw    Kind = "Withdraw"
	KindTransferOut Kind = "Transfer Out"
	KindTransferIn  Kind = "Transfer In"
)

// Entry is one immutable record in an account's history. Amount is signed:
// positive for money flowing into the account, negative for money flowing
// out. To and From carry the counterparty account id on the transfer kinds.
type Entry struct {
	Time   Timestamp
	Kind   Kind
	Amount Money
	To     string // destination account id, set on Transfer Out
	From   string // source account id, set on Transfer In
}

// Counterparty returns the other account involved in a transfer entry, or
// "" for deposits and withdrawals.
func (e Entry) Counterparty() string {
	switch e.Kind {
	case KindTransferOut:
		return e.To
	case KindTransferIn:
		return e.From
	}
	return ""
}

// MarshalJSON writes the entry with a fixed key order so the document is
// byte-stable across encode/decode cycles.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("time", e.Time)
	w.Append("type", e.Kind)
	w.Append("amount", e.Amount)
	w.Optional("to", e.To)
	w.Optional("from", e.From)
	return w.MarshalJSON()
}

// UnmarshalJSON reads an entry from the document.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var temp struct {
		Time   Timestamp `json:"time"`
		Type   Kind      `json:"type"`
		Amount Money     `json:"amount"`
		To     string    `json:"to"`
		From   string    `json:"from"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*e = Entry{
		Time:   temp.Time,
		Kind:   temp.Type,
		Amount: temp.Amount,
		To:     NormalizeID(temp.To),
		From:   NormalizeID(temp.From),
	}
	return nil
}
