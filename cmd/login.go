package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type loginCmd struct {
	authFlags
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "verify credentials for an account" }
func (*loginCmd) Usage() string {
	return `pb login -id <account> [-pin <pin>]

  Authenticates against an account and prints a greeting. Useful to check
  credentials without performing an operation.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) { c.authFlags.SetFlags(f) }

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	fmt.Printf("Welcome, %s!\n", account.Name)
	return subcommands.ExitSuccess
}
