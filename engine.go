package passbook

import (
	"fmt"
	"iter"
	"strings"
)

// Engine owns the current ledger and is its only writer. Every mutating
// operation follows the same commit protocol: clone the current ledger,
// mutate the clone, persist the clone, and only then publish it. A failed
// save therefore reports failure with the previous state fully intact, in
// memory and on disk.
//
// The engine assumes a single logical actor; operations are atomic with
// respect to the persisted state, so a future concurrent wrapper only needs
// to serialize calls.
type Engine struct {
	path   string
	ledger *Ledger
	now    func() Timestamp
}

// NewEngine loads the accounts document at path and returns an engine bound
// to it. A missing document starts an empty ledger.
func NewEngine(path string) (*Engine, error) {
	ledger, err := Load(path)
	if err != nil {
		return nil, err
	}
	return &Engine{path: path, ledger: ledger, now: Now}, nil
}

// Session binds subsequent operations to one authenticated account. It is
// issued by Login only; every balance-revealing or mutating operation
// requires one.
type Session struct {
	id string
}

// AccountID returns the canonical account id the session is bound to.
func (s Session) AccountID() string { return s.id }

// CreateAccount creates a new account with a zero balance and returns its
// account number. The name must be non-empty and the PIN exactly 4 digits.
func (e *Engine) CreateAccount(name, pin string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidName
	}
	if !ValidPIN(pin) {
		return "", ErrInvalidPIN
	}

	work := e.ledger.Clone()
	id := NewAccountID()
	for work.Has(id) {
		id = NewAccountID()
	}
	work.add(&Account{
		ID:      id,
		Name:    name,
		Digest:  HashPIN(pin),
		Created: e.now(),
	})
	if err := e.commit(work); err != nil {
		return "", err
	}
	return id, nil
}

// Login authenticates against an account and returns a session bound to it.
func (e *Engine) Login(id, pin string) (Session, error) {
	a, ok := e.ledger.Account(id)
	if !ok {
		return Session{}, ErrAccountNotFound
	}
	if !VerifyPIN(pin, a.Digest) {
		return Session{}, ErrWrongPIN
	}
	return Session{id: a.ID}, nil
}

// Logout invalidates the session value. State-less by design: dropping the
// value is all there is to it.
func (e *Engine) Logout(s Session) {}

// Account returns a snapshot of the authenticated account, for display.
func (e *Engine) Account(s Session) (Account, error) {
	a, err := e.account(s)
	if err != nil {
		return Account{}, err
	}
	return *a.clone(), nil
}

// Balance returns the current balance of the authenticated account.
func (e *Engine) Balance(s Session) (Money, error) {
	a, err := e.account(s)
	if err != nil {
		return Money{}, err
	}
	return a.Balance, nil
}

// Deposit adds a positive amount to the balance and appends one Deposit
// entry. It returns the new balance.
func (e *Engine) Deposit(s Session, amount Money) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, ErrNonPositiveAmount
	}
	work := e.ledger.Clone()
	a, err := work.accountOf(s)
	if err != nil {
		return Money{}, err
	}
	a.Balance = a.Balance.Add(amount)
	a.History = append(a.History, Entry{Time: e.now(), Kind: KindDeposit, Amount: amount})
	if err := e.commit(work); err != nil {
		return Money{}, err
	}
	return a.Balance, nil
}

// Withdraw removes a positive amount from the balance, which must cover it,
// and appends one Withdraw entry. It returns the new balance.
func (e *Engine) Withdraw(s Session, amount Money) (Money, error) {
	if !amount.IsPositive() {
		return Money{}, ErrNonPositiveAmount
	}
	work := e.ledger.Clone()
	a, err := work.accountOf(s)
	if err != nil {
		return Money{}, err
	}
	if amount.GreaterThan(a.Balance) {
		return Money{}, ErrInsufficientBalance
	}
	a.Balance = a.Balance.Sub(amount)
	a.History = append(a.History, Entry{Time: e.now(), Kind: KindWithdraw, Amount: amount.Neg()})
	if err := e.commit(work); err != nil {
		return Money{}, err
	}
	return a.Balance, nil
}

// Transfer moves a positive amount from the authenticated account to dst as
// one indivisible unit: debit, credit and both history entries (same
// timestamp, opposite sign) land together or not at all.
// It returns the source's new balance.
func (e *Engine) Transfer(s Session, dst string, amount Money) (Money, error) {
	dst = NormalizeID(dst)
	if dst == s.id {
		return Money{}, ErrSameAccount
	}
	if !amount.IsPositive() {
		return Money{}, ErrNonPositiveAmount
	}

	work := e.ledger.Clone()
	src, err := work.accountOf(s)
	if err != nil {
		return Money{}, err
	}
	to, ok := work.Account(dst)
	if !ok {
		return Money{}, ErrDestinationNotFound
	}
	if amount.GreaterThan(src.Balance) {
		return Money{}, ErrInsufficientBalance
	}

	now := e.now()
	src.Balance = src.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)
	src.History = append(src.History, Entry{Time: now, Kind: KindTransferOut, Amount: amount.Neg(), To: to.ID})
	to.History = append(to.History, Entry{Time: now, Kind: KindTransferIn, Amount: amount, From: src.ID})

	if err := e.commit(work); err != nil {
		return Money{}, err
	}
	return src.Balance, nil
}

// ChangePIN replaces the account's credential. The old PIN must verify and
// the new one must be exactly 4 digits.
func (e *Engine) ChangePIN(s Session, oldPIN, newPIN string) error {
	current, err := e.account(s)
	if err != nil {
		return err
	}
	if !VerifyPIN(oldPIN, current.Digest) {
		return ErrWrongPIN
	}
	if !ValidPIN(newPIN) {
		return ErrInvalidPIN
	}
	work := e.ledger.Clone()
	a, err := work.accountOf(s)
	if err != nil {
		return err
	}
	a.Digest = HashPIN(newPIN)
	return e.commit(work)
}

// History returns an iterator over the authenticated account's most recent
// entries, newest first, bounded to limit (DefaultHistoryLimit when limit
// <= 0). The iterator is restartable: each range re-reads current state.
func (e *Engine) History(s Session, limit int) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		a, err := e.account(s)
		if err != nil {
			return
		}
		for entry := range a.Recent(limit) {
			if !yield(entry) {
				return
			}
		}
	}
}

// account resolves the session against the current ledger.
func (e *Engine) account(s Session) (*Account, error) {
	return e.ledger.accountOf(s)
}

// accountOf resolves a session against this ledger.
func (l *Ledger) accountOf(s Session) (*Account, error) {
	a, ok := l.Account(s.id)
	if !ok {
		// Accounts are never deleted, but a session must not outlive a
		// reloaded document.
		return nil, ErrAccountNotFound
	}
	return a, nil
}

// commit persists the working copy and swaps it in as the current state.
// On failure the previous state stays current and the error is surfaced as
// the operation's failure.
func (e *Engine) commit(work *Ledger) error {
	if err := Save(e.path, work); err != nil {
		return fmt.Errorf("operation not saved: %w", err)
	}
	e.ledger = work
	return nil
}
