package passbook

import (
	"iter"
	"maps"
	"slices"
)

// Ledger is the full set of accounts, the unit of persistence. Account ids
// are unique keys, held in canonical (upper case) form.
//
// A Ledger is a plain value owned by whoever holds it; the Engine is the
// only writer and publishes a new Ledger on every committed operation.
type Ledger struct {
	accounts map[string]*Account
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// Account returns the account with the given id, or false if it does not
// exist. The id is normalized before lookup, so case never matters.
func (l *Ledger) Account(id string) (*Account, bool) {
	a, ok := l.accounts[NormalizeID(id)]
	return a, ok
}

// Has reports whether an account with the given id exists.
func (l *Ledger) Has(id string) bool {
	_, ok := l.accounts[NormalizeID(id)]
	return ok
}

// Len returns the number of accounts.
func (l *Ledger) Len() int { return len(l.accounts) }

// add inserts an account under its canonical id.
func (l *Ledger) add(a *Account) {
	a.ID = NormalizeID(a.ID)
	l.accounts[a.ID] = a
}

// AccountIDs iterates over all account ids in sorted order, the order the
// encoder uses so that documents are byte-stable.
func (l *Ledger) AccountIDs() iter.Seq[string] {
	return func(yield func(string) bool) {
		ids := slices.Collect(maps.Keys(l.accounts))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}

// TotalBalance returns the sum of all balances. Transfers are conservative:
// only deposits and withdrawals change this total.
func (l *Ledger) TotalBalance() Money {
	var total Money
	for _, a := range l.accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// Clone returns a deep copy of the ledger, the working copy every mutating
// operation runs against before it is persisted and swapped in.
func (l *Ledger) Clone() *Ledger {
	cp := NewLedger()
	for id, a := range l.accounts {
		cp.accounts[id] = a.clone()
	}
	return cp
}
