package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/passbook"
	"github.com/google/subcommands"
)

type shellCmd struct{}

func (*shellCmd) Name() string     { return "shell" }
func (*shellCmd) Synopsis() string { return "start an interactive session" }
func (*shellCmd) Usage() string {
	return `pb shell

  Starts the interactive menu: create accounts, log in, and run operations
  without retyping credentials for each one.
`
}

func (*shellCmd) SetFlags(f *flag.FlagSet) {}

func (c *shellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	engine, err := openEngine()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	sh := shell{engine: engine}
	if err := sh.run(); err != nil && !errors.Is(err, io.EOF) {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Goodbye.")
	return subcommands.ExitSuccess
}

// shell is the interactive REPL over the engine. It holds no account state
// of its own beyond the current session; every figure it prints is read
// back from the engine.
type shell struct {
	engine *passbook.Engine
}

func (sh *shell) run() error {
	fmt.Println("Welcome to passbook.")
	for {
		fmt.Println()
		fmt.Println("1. Create Account")
		fmt.Println("2. Login")
		fmt.Println("3. Exit")
		choice, err := promptLine("Choose option (1-3): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			sh.createAccount()
		case "2":
			session, err := sh.login()
			if err != nil {
				return err
			}
			if session != nil {
				if err := sh.userMenu(*session); err != nil {
					return err
				}
			}
		case "3":
			return nil
		default:
			fmt.Println("Invalid option.")
		}
	}
}

func (sh *shell) createAccount() {
	name, err := promptLine("Enter your name: ")
	if err != nil {
		return
	}
	pin, err := promptLine("Create a 4-digit PIN: ")
	if err != nil {
		return
	}
	confirm, err := promptLine("Confirm PIN: ")
	if err != nil {
		return
	}
	if pin != confirm {
		fmt.Println("PINs don't match.")
		return
	}
	id, err := sh.engine.CreateAccount(name, pin)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Account created successfully.")
	fmt.Printf("Account Number: %s\n", id)
	fmt.Println("Save this number, it is required to log in.")
}

// login returns a nil session on failed credentials, an error only when the
// input stream ends.
func (sh *shell) login() (*passbook.Session, error) {
	id, err := promptLine("Account Number: ")
	if err != nil {
		return nil, err
	}
	pin, err := promptLine("Enter your PIN: ")
	if err != nil {
		return nil, err
	}
	session, err := sh.engine.Login(id, pin)
	if err != nil {
		fmt.Println("Error:", err)
		return nil, nil
	}
	if account, err := sh.engine.Account(session); err == nil {
		fmt.Printf("Welcome, %s!\n", account.Name)
	}
	return &session, nil
}

func (sh *shell) userMenu(session passbook.Session) error {
	for {
		account, err := sh.engine.Account(session)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("Account %s (%s), Balance: %s\n", account.ID, account.Name, display(account.Balance))
		fmt.Println("1. Check Balance")
		fmt.Println("2. Deposit Money")
		fmt.Println("3. Withdraw Money")
		fmt.Println("4. Transfer Money")
		fmt.Println("5. Transaction History")
		fmt.Println("6. Change PIN")
		fmt.Println("7. Logout")
		choice, err := promptLine("Choose option (1-7): ")
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			fmt.Printf("Balance: %s\n", display(account.Balance))
		case "2":
			if err := sh.deposit(session); err != nil {
				return err
			}
		case "3":
			if err := sh.withdraw(session); err != nil {
				return err
			}
		case "4":
			if err := sh.transfer(session); err != nil {
				return err
			}
		case "5":
			sh.history(session)
		case "6":
			if err := sh.changePIN(session); err != nil {
				return err
			}
		case "7":
			sh.engine.Logout(session)
			fmt.Println("Logged out.")
			return nil
		default:
			fmt.Println("Invalid option.")
		}
	}
}

// promptAmount reads and parses one amount, reporting invalid input to the
// user without aborting the session.
func (sh *shell) promptAmount(prompt string) (passbook.Money, bool, error) {
	in, err := promptLine(prompt)
	if err != nil {
		return passbook.Money{}, false, err
	}
	amount, err := passbook.ParseAmount(in)
	if err != nil {
		fmt.Println("Error:", err)
		return passbook.Money{}, false, nil
	}
	return amount, true, nil
}

func (sh *shell) deposit(session passbook.Session) error {
	amount, ok, err := sh.promptAmount("Enter amount to deposit: ")
	if err != nil || !ok {
		return err
	}
	balance, err := sh.engine.Deposit(session, amount)
	if err != nil {
		fmt.Println("Error:", err)
		return nil
	}
	fmt.Printf("Deposited %s. New Balance: %s\n", display(amount), display(balance))
	return nil
}

func (sh *shell) withdraw(session passbook.Session) error {
	amount, ok, err := sh.promptAmount("Enter amount to withdraw: ")
	if err != nil || !ok {
		return err
	}
	balance, err := sh.engine.Withdraw(session, amount)
	if err != nil {
		fmt.Println("Error:", err)
		return nil
	}
	fmt.Printf("Withdrawn %s. New Balance: %s\n", display(amount), display(balance))
	return nil
}

func (sh *shell) transfer(session passbook.Session) error {
	dst, err := promptLine("Enter destination account number: ")
	if err != nil {
		return err
	}
	amount, ok, err := sh.promptAmount("Enter amount to transfer: ")
	if err != nil || !ok {
		return err
	}
	balance, err := sh.engine.Transfer(session, dst, amount)
	if err != nil {
		fmt.Println("Error:", err)
		return nil
	}
	fmt.Printf("Transferred %s to %s. New Balance: %s\n",
		display(amount), passbook.NormalizeID(dst), display(balance))
	return nil
}

func (sh *shell) history(session passbook.Session) {
	var b strings.Builder
	count := 0
	for entry := range sh.engine.History(session, 0) {
		if count == 0 {
			b.WriteString("| Time | Type | Amount | Counterparty |\n")
			b.WriteString("|---|---|---|---|\n")
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			entry.Time, entry.Kind, entry.Amount.SignedDisplay(*currencyCode), entry.Counterparty())
		count++
	}
	if count == 0 {
		fmt.Println("No transactions yet.")
		return
	}
	printMarkdown(b.String())
}

func (sh *shell) changePIN(session passbook.Session) error {
	oldPIN, err := promptLine("Enter current PIN: ")
	if err != nil {
		return err
	}
	newPIN, err := promptLine("Enter new 4-digit PIN: ")
	if err != nil {
		return err
	}
	confirm, err := promptLine("Confirm new PIN: ")
	if err != nil {
		return err
	}
	if newPIN != confirm {
		fmt.Println("PINs don't match.")
		return nil
	}
	if err := sh.engine.ChangePIN(session, oldPIN, newPIN); err != nil {
		fmt.Println("Error:", err)
		return nil
	}
	fmt.Println("PIN changed successfully.")
	return nil
}
