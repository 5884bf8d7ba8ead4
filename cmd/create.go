package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type createCmd struct {
	name string
	pin  string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new account" }
func (*createCmd) Usage() string {
	return `pb create -name <name> [-pin <pin>]

  Creates a new account with a zero balance and prints its account number.
  The PIN must be exactly 4 digits; it is prompted for when omitted.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Owner name for the new account")
	f.StringVar(&c.pin, "pin", "", "4-digit PIN (prompted for when omitted)")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pin := c.pin
	if pin == "" {
		var err error
		pin, err = promptLine("Create a 4-digit PIN: ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		confirm, err := promptLine("Confirm PIN: ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if pin != confirm {
			fmt.Fprintln(os.Stderr, "PINs don't match.")
			return subcommands.ExitFailure
		}
	}

	engine, err := openEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	id, err := engine.CreateAccount(c.name, pin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	fmt.Println("Account created successfully.")
	fmt.Printf("Account Number: %s\n", id)
	fmt.Println("Save this number, it is required to log in.")
	return subcommands.ExitSuccess
}
