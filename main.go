package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/lexicard/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

// Command is implemented by every subcommand in internal/cli.
type Command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var cmd Command
	switch command {
	case "serve-demo":
		cmd = cli.NewServeDemoCommand(Version)
	case "login":
		cmd = cli.NewLoginCommand()
	case "logout":
		cmd = cli.NewLogoutCommand()
	case "lookup":
		cmd = cli.NewLookupCommand()
	case "generate":
		cmd = cli.NewGenerateCommand()
	case "words":
		cmd = cli.NewWordsCommand()
	case "lectures":
		cmd = cli.NewLecturesCommand()
	case "read":
		cmd = cli.NewReadCommand()
	case "cards":
		cmd = cli.NewCardsCommand()
	case "level":
		cmd = cli.NewLevelCommand()
	case "regen":
		cmd = cli.NewRegenCommand()
	case "watch":
		cmd = cli.NewWatchCommand(Version)
	case "export":
		cmd = cli.NewExportCommand()

	case "version":
		fmt.Printf("lexicard %s (%s)\n", Version, Commit)
		return

	case "-h", "--help", "help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve-demo  Run the in-memory demo word service\n")
	fmt.Fprintf(os.Stderr, "  login       Log in and store the bearer token\n")
	fmt.Fprintf(os.Stderr, "  logout      Forget the stored token\n")
	fmt.Fprintf(os.Stderr, "  lookup      Look a word up and mark it as seen\n")
	fmt.Fprintf(os.Stderr, "  generate    Create a word with AI from a prompt\n")
	fmt.Fprintf(os.Stderr, "  words       List and search your words\n")
	fmt.Fprintf(os.Stderr, "  lectures    List reading lectures\n")
	fmt.Fprintf(os.Stderr, "  read        Show a lecture and look up its words\n")
	fmt.Fprintf(os.Stderr, "  cards       Show the review cards\n")
	fmt.Fprintf(os.Stderr, "  level       Change the difficulty of a word\n")
	fmt.Fprintf(os.Stderr, "  regen       Regenerate examples, code switching, synonyms, types or image\n")
	fmt.Fprintf(os.Stderr, "  watch       Refresh the review deck on a schedule\n")
	fmt.Fprintf(os.Stderr, "  export      Write the review deck as markdown notes\n")
	fmt.Fprintf(os.Stderr, "  version     Print the version\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
