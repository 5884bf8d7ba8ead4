package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/passbook"
	"github.com/google/subcommands"
)

type historyCmd struct {
	authFlags
	limit int
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the most recent transactions of an account" }
func (*historyCmd) Usage() string {
	return `pb history -id <account> [-n <limit>] [-pin <pin>]

  Lists the most recent history entries, newest first.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	c.authFlags.SetFlags(f)
	f.IntVar(&c.limit, "n", passbook.DefaultHistoryLimit, "Number of entries to show")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	var b strings.Builder
	fmt.Fprintf(&b, "# Transaction History for %s\n\n", session.AccountID())
	count := 0
	for entry := range engine.History(session, c.limit) {
		if count == 0 {
			b.WriteString("| Time | Type | Amount | Counterparty |\n")
			b.WriteString("|---|---|---|---|\n")
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			entry.Time, entry.Kind, entry.Amount.SignedDisplay(*currencyCode), entry.Counterparty())
		count++
	}
	if count == 0 {
		b.WriteString("No transactions yet.\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
