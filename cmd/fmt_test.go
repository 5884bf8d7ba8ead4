package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/passbook"
	"github.com/google/subcommands"
)

// withAccountsFile points the global -file flag at a temp file for the test.
func withAccountsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accounts.json")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write accounts file: %v", err)
		}
	}
	old := accountsFile
	accountsFile = &path
	t.Cleanup(func() { accountsFile = old })
	return path
}

func TestFmtCmd_NormalizesLegacyDocument(t *testing.T) {
	legacy := `{"accounts": {"1dac77661d": {"name": "Alice", "pin": "abc", "balance": 100.30000000000001, "created": "2024-03-01 10:00:00", "history": []}}}`
	path := withAccountsFile(t, legacy)

	cmd := &fmtCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("fmt exited with %v, want success", status)
	}

	formatted, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(formatted), `"1DAC77661D"`) {
		t.Errorf("formatted document keeps a non-canonical id:\n%s", formatted)
	}
	if !strings.Contains(string(formatted), `"balance": 100.3`) {
		t.Errorf("formatted document did not snap the legacy float:\n%s", formatted)
	}

	// Formatting is idempotent.
	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("second fmt exited with %v, want success", status)
	}
	again, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(formatted) {
		t.Error("fmt is not idempotent")
	}
}

func TestCreateCmd_RoundTrip(t *testing.T) {
	path := withAccountsFile(t, "")

	cmd := &createCmd{name: "Alice", pin: "1234"}
	f := flag.NewFlagSet("test", flag.ContinueOnError)

	if status := cmd.Execute(context.Background(), f); status != subcommands.ExitSuccess {
		t.Fatalf("create exited with %v, want success", status)
	}

	ledger, err := passbook.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if ledger.Len() != 1 {
		t.Fatalf("ledger has %d accounts, want 1", ledger.Len())
	}
	for id := range ledger.AccountIDs() {
		a, _ := ledger.Account(id)
		if a.Name != "Alice" || !a.Balance.IsZero() {
			t.Errorf("created account = %+v, want Alice with zero balance", a)
		}
		if !passbook.VerifyPIN("1234", a.Digest) {
			t.Error("stored digest does not verify the PIN")
		}
	}
}

func TestCreateCmd_RejectsBadPIN(t *testing.T) {
	withAccountsFile(t, "")

	cmd := &createCmd{name: "Alice", pin: "12"}
	f := flag.NewFlagSet("test", flag.ContinueOnError)

	if status := cmd.Execute(context.Background(), f); status == subcommands.ExitSuccess {
		t.Fatal("create with a 2-digit PIN succeeded, want failure")
	}
}
