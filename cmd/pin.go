package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type pinCmd struct {
	id     string
	oldPIN string
	newPIN string
}

func (*pinCmd) Name() string     { return "pin" }
func (*pinCmd) Synopsis() string { return "change the PIN of an account" }
func (*pinCmd) Usage() string {
	return `pb pin -id <account> [-old <pin>] [-new <pin>]

  Replaces the account's PIN. The current PIN must verify; the new PIN must
  be exactly 4 digits. Both are prompted for when omitted.
`
}

func (c *pinCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account number")
	f.StringVar(&c.oldPIN, "old", "", "Current PIN (prompted for when omitted)")
	f.StringVar(&c.newPIN, "new", "", "New 4-digit PIN (prompted for when omitted)")
}

func (c *pinCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "missing -id: an account number is required")
		return subcommands.ExitUsageError
	}

	oldPIN := c.oldPIN
	if oldPIN == "" {
		var err error
		oldPIN, err = promptLine("Current PIN: ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	newPIN := c.newPIN
	if newPIN == "" {
		var err error
		newPIN, err = promptLine("New 4-digit PIN: ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		confirm, err := promptLine("Confirm new PIN: ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if newPIN != confirm {
			fmt.Fprintln(os.Stderr, "PINs don't match.")
			return subcommands.ExitFailure
		}
	}

	engine, err := openEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	session, err := engine.Login(c.id, oldPIN)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if err := engine.ChangePIN(session, oldPIN, newPIN); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Println("PIN changed successfully.")
	return subcommands.ExitSuccess
}
