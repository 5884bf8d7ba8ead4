package passbook

import (
	"encoding/json"
	"iter"
)

// DefaultHistoryLimit is the number of entries a history view shows when no
// explicit limit is given.
const DefaultHistoryLimit = 10

// Account is one account in the ledger.
//
// ID and Created are set at creation and never change. Name is immutable in
// this version (there is no rename operation). Digest is the salted one-way
// digest of the PIN; the PIN itself is never stored. History is append-only
// and kept in insertion order, which is chronological order.
type Account struct {
	ID      string
	Name    string
	Digest  string
	Balance Money
	Created Timestamp
	History []Entry
}

// Recent returns an iterator over the most recent entries, newest first,
// bounded to limit (DefaultHistoryLimit when limit <= 0). The iterator
// reads the account as it is now; re-ranging it re-reads current state.
func (a *Account) Recent(limit int) iter.Seq[Entry] {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return func(yield func(Entry) bool) {
		for i := len(a.History) - 1; i >= 0 && len(a.History)-1-i < limit; i-- {
			if !yield(a.History[i]) {
				return
			}
		}
	}
}

// clone returns a deep copy of the account, so a working-copy mutation can
// never leak into the published state.
func (a *Account) clone() *Account {
	cp := *a
	cp.History = make([]Entry, len(a.History))
	copy(cp.History, a.History)
	return &cp
}

// MarshalJSON writes the account record (without its id, which is the map
// key in the document) with a fixed key order.
func (a *Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", a.Name)
	w.Append("pin", a.Digest)
	w.Append("balance", a.Balance)
	w.Append("created", a.Created)
	history := a.History
	if history == nil {
		history = []Entry{}
	}
	w.Append("history", history)
	return w.MarshalJSON()
}

// UnmarshalJSON reads the account record; the id is filled in by the ledger
// decoder.
func (a *Account) UnmarshalJSON(data []byte) error {
	var temp struct {
		Name    string    `json:"name"`
		PIN     string    `json:"pin"`
		Balance Money     `json:"balance"`
		Created Timestamp `json:"created"`
		History []Entry   `json:"history"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	*a = Account{
		Name:    temp.Name,
		Digest:  temp.PIN,
		Balance: temp.Balance,
		Created: temp.Created,
		History: temp.History,
	}
	return nil
}
