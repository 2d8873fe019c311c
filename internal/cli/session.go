package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
)

// LoginCommand exchanges credentials for a token and stores it sealed on disk.
type LoginCommand struct {
	Username string
	Password string
}

func NewLoginCommand() *LoginCommand {
	return &LoginCommand{}
}

func (cmd *LoginCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)

	fs.StringVar(&cmd.Username, "username", "", "Account name (required)")
	fs.StringVar(&cmd.Password, "password", "", "Password; read from stdin when omitted")

	fs.Usage = usage(fs, "-username <name> [options]",
		"Log in to the word service. The bearer token is kept, encrypted, in TOKEN_DATABASE_PATH.",
		"login -username demo",
		"login -username demo -password demo-password-123",
	)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Username == "" {
		return fmt.Errorf("required flag -username not provided")
	}
	return nil
}

func (cmd *LoginCommand) Run() error {
	if cmd.Password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read password: %w", err)
		}
		cmd.Password = strings.TrimRight(line, "\r\n")
	}

	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := commandContext()
	defer cancel()

	if err := app.Login(ctx, cmd.Username, cmd.Password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Printf("Logged in as %s\n", cmd.Username)
	return nil
}

// LogoutCommand forgets the stored token.
type LogoutCommand struct{}

func NewLogoutCommand() *LogoutCommand {
	return &LogoutCommand{}
}

func (cmd *LogoutCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("logout", flag.ExitOnError)
	fs.Usage = usage(fs, "", "Delete the stored token.")
	return fs.Parse(args)
}

func (cmd *LogoutCommand) Run() error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}
