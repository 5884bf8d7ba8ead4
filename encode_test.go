package passbook

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeLedger_RoundTrip(t *testing.T) {
	e := newTestEngine(t)
	alice := open(t, e, "Alice", "1234")
	bob := open(t, e, "Bob", "5678")
	if _, err := e.Deposit(alice, amount(t, "100.00")); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Transfer(alice, bob.AccountID(), amount(t, "40.00")); err != nil {
		t.Fatal(err)
	}

	var first bytes.Buffer
	if err := EncodeLedger(&first, e.ledger); err != nil {
		t.Fatal(err)
	}

	decoded, err := DecodeLedger(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}

	var second bytes.Buffer
	if err := EncodeLedger(&second, decoded); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Errorf("encode(decode(doc)) differs from doc:\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}
}

func TestSaveLoad_Idempotent(t *testing.T) {
	e := newTestEngine(t)
	s := open(t, e, "Alice", "1234")
	if _, err := e.Deposit(s, amount(t, "12.34")); err != nil {
		t.Fatal(err)
	}

	first, err := os.ReadFile(e.path)
	if err != nil {
		t.Fatal(err)
	}

	ledger, err := Load(e.path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(e.path, ledger); err != nil {
		t.Fatal(err)
	}

	second, err := os.ReadFile(e.path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("save(load(file)) changed the file:\nbefore:\n%s\nafter:\n%s", first, second)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	ledger, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load(missing) = %v, want empty ledger", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("Load(missing) has %d accounts, want 0", ledger.Len())
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(corrupt) succeeded, want error")
	}
}

func TestDecodeLedger_LegacyDocument(t *testing.T) {
	// A document as the original float-based implementation wrote it:
	// float balances with binary noise and plain sha256 PIN digests.
	legacy := `{
  "accounts": {
    "1DAC77661D": {
      "name": "Alice",
      "pin": "` + legacyHashPIN("1234") + `",
      "balance": 100.30000000000001,
      "created": "2024-03-01 10:00:00",
      "history": [
        {"time": "2024-03-01 10:05:00", "type": "Deposit", "amount": 100.3},
        {"time": "2024-03-02 09:00:00", "type": "Transfer Out", "amount": -40.0, "to": "9F00B2C411"}
      ]
    },
    "9F00B2C411": {
      "name": "Bob",
      "pin": "` + legacyHashPIN("5678") + `",
      "balance": 40.0,
      "created": "2024-03-01 11:00:00",
      "history": [
        {"time": "2024-03-02 09:00:00", "type": "Transfer In", "amount": 40.0, "from": "1DAC77661D"}
      ]
    }
  }
}`

	ledger, err := DecodeLedger(strings.NewReader(legacy))
	if err != nil {
		t.Fatalf("DecodeLedger(legacy): %v", err)
	}

	alice, ok := ledger.Account("1dac77661d")
	if !ok {
		t.Fatal("Alice not found via lower-case lookup")
	}
	if alice.Balance.Cents() != 10030 {
		t.Errorf("Alice's balance = %d cents, want 10030 (noise snapped)", alice.Balance.Cents())
	}
	if !VerifyPIN("1234", alice.Digest) {
		t.Error("legacy digest does not verify")
	}
	if len(alice.History) != 2 {
		t.Fatalf("Alice has %d history entries, want 2", len(alice.History))
	}
	out := alice.History[1]
	if out.Kind != KindTransferOut || out.To != "9F00B2C411" || out.Amount.Cents() != -4000 {
		t.Errorf("legacy transfer leg = %+v", out)
	}
	if out.Time.String() != "2024-03-02 09:00:00" {
		t.Errorf("legacy timestamp = %q, want 2024-03-02 09:00:00", out.Time)
	}

	// Re-encoding the legacy document yields the canonical form, which
	// must then be byte-stable.
	var canonical bytes.Buffer
	if err := EncodeLedger(&canonical, ledger); err != nil {
		t.Fatal(err)
	}
	again, err := DecodeLedger(bytes.NewReader(canonical.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	var stable bytes.Buffer
	if err := EncodeLedger(&stable, again); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(canonical.Bytes(), stable.Bytes()) {
		t.Error("canonical form of a legacy document is not byte-stable")
	}
}

func TestDecodeLedger_NegativeBalance(t *testing.T) {
	doc := `{"accounts": {"AB12CD34EF": {"name": "Eve", "pin": "x", "balance": -1.00, "created": "2024-03-01 10:00:00", "history": []}}}`
	if _, err := DecodeLedger(strings.NewReader(doc)); err == nil {
		t.Error("DecodeLedger accepted a negative balance")
	}
}
