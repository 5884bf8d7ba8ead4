package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/passbook"
	"github.com/google/subcommands"
)

// --- Deposit ---

type depositCmd struct {
	authFlags
	amount string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit money into an account" }
func (*depositCmd) Usage() string {
	return `pb deposit -id <account> -a <amount> [-pin <pin>]

  Adds the amount to the account balance and records a Deposit entry.
  Amounts are decimals with at most two fraction digits.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	c.authFlags.SetFlags(f)
	f.StringVar(&c.amount, "a", "", "Amount to deposit")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := passbook.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
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
	balance, err := engine.Deposit(session, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deposited %s\n", display(amount))
	fmt.Printf("New Balance: %s\n", display(balance))
	return subcommands.ExitSuccess
}

// --- Withdraw ---

type withdrawCmd struct {
	authFlags
	amount string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from an account" }
func (*withdrawCmd) Usage() string {
	return `pb withdraw -id <account> -a <amount> [-pin <pin>]

  Removes the amount from the account balance, which must cover it, and
  records a Withdraw entry.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	c.authFlags.SetFlags(f)
	f.StringVar(&c.amount, "a", "", "Amount to withdraw")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := passbook.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
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
	balance, err := engine.Withdraw(session, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Withdrawn %s\n", display(amount))
	fmt.Printf("New Balance: %s\n", display(balance))
	return subcommands.ExitSuccess
}

// --- Transfer ---

type transferCmd struct {
	authFlags
	to     string
	amount string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer money to another account" }
func (*transferCmd) Usage() string {
	return `pb transfer -id <account> -to <account> -a <amount> [-pin <pin>]

  Moves the amount to the destination account as one atomic operation:
  debit, credit and both history entries land together or not at all.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	c.authFlags.SetFlags(f)
	f.StringVar(&c.to, "to", "", "Destination account number")
	f.StringVar(&c.amount, "a", "", "Amount to transfer")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := passbook.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
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
	balance, err := engine.Transfer(session, c.to, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transferred %s to %s\n", display(amount), passbook.NormalizeID(c.to))
	fmt.Printf("New Balance: %s\n", display(balance))
	return subcommands.ExitSuccess
}
