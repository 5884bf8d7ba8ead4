package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/passbook"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the accounts file in canonical form"
}
func (*fmtCmd) Usage() string {
	return `pb fmt

  Reads the accounts file, validates it, and writes it back in canonical
  form: sorted account ids, fixed key order, exact 2-decimal amounts.
  Documents written by the original float-based implementation come out
  normalized.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := passbook.Load(*accountsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load accounts file: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := passbook.Save(*accountsFile, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not save accounts file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Formatted %s (%d accounts).\n", *accountsFile, ledger.Len())
	return subcommands.ExitSuccess
}
