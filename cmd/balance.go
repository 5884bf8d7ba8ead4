package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type balanceCmd struct {
	authFlags
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the current balance of an account" }
func (*balanceCmd) Usage() string {
	return `pb balance -id <account> [-pin <pin>]

  Prints the account owner and current balance.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) { c.authFlags.SetFlags(f) }

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := openEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	session, err := c.session(engine)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	account, err := engine.Account(session)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account: %s\n", account.ID)
	fmt.Printf("Name:    %s\n", account.Name)
	fmt.Printf("Balance: %s\n", display(account.Balance))
	return subcommands.ExitSuccess
}
