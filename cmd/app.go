// Package cmd implements the CLI application over the passbook engine.
// A main package calls Register() to install the subcommands, and Execute()
// on the user-selected one.
package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/passbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "accounts")
	c.Register(&loginCmd{}, "accounts")
	c.Register(&pinCmd{}, "accounts")

	c.Register(&depositCmd{}, "operations")
	c.Register(&withdrawCmd{}, "operations")
	c.Register(&transferCmd{}, "operations")
	c.Register(&balanceCmd{}, "operations")
	c.Register(&historyCmd{}, "operations")
	c.Register(&shellCmd{}, "operations")

	c.Register(&fmtCmd{}, "inspection")
	c.Register(&queryCmd{}, "inspection")
	c.Register(&topicCmd{}, "inspection")
}

// CommandNames lists every registered subcommand, for shell completion.
func CommandNames() []string {
	return []string{
		"create", "login", "pin",
		"deposit", "withdraw", "transfer", "balance", "history", "shell",
		"fmt", "query", "topic",
	}
}

// As a CLI application it is very short lived, so global flags are fine.

var accountsFile = flag.String("file", passbook.DefaultFile, "Path to the accounts file (JSON)")
var currencyCode = flag.String("currency", "INR", "ISO currency code used to format amounts")

// openEngine loads the accounts file into an engine. A missing file is a
// valid empty vault.
func openEngine() (*passbook.Engine, error) {
	return passbook.NewEngine(*accountsFile)
}

// display formats an amount in the configured currency.
func display(m passbook.Money) string { return m.Display(*currencyCode) }

// stdin is shared by every prompt so buffered input is never lost between
// reads.
var stdin = bufio.NewReader(os.Stdin)

// promptLine prints a prompt and reads one trimmed line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// authFlags holds the flags shared by every command acting on an account.
// The PIN can be given as a flag for scripting, but is prompted for when
// omitted so it stays out of shell history.
type authFlags struct {
	id  string
	pin string
}

func (a *authFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&a.id, "id", "", "Account number")
	f.StringVar(&a.pin, "pin", "", "Account PIN (prompted for when omitted)")
}

// session authenticates against the engine with the given flags.
func (a *authFlags) session(e *passbook.Engine) (passbook.Session, error) {
	if a.id == "" {
		return passbook.Session{}, errors.New("missing -id: an account number is required")
	}
	pin := a.pin
	if pin == "" {
		var err error
		pin, err = promptLine("PIN: ")
		if err != nil {
			return passbook.Session{}, err
		}
	}
	return e.Login(a.id, pin)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (e.g. no TTY).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
