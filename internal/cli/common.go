package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mrlokans/lexicard/internal/config"
	"github.com/mrlokans/lexicard/internal/entities"
	"github.com/mrlokans/lexicard/internal/entrypoint"
	"github.com/mrlokans/lexicard/internal/utils"
)

var timeNow = time.Now

// openApp loads configuration and opens the client application.
func openApp() (*entrypoint.App, error) {
	return entrypoint.NewApp(config.NewConfig())
}

// commandContext is cancelled on SIGINT or SIGTERM.
func commandContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func usage(fs *flag.FlagSet, synopsis, description string, examples ...string) func() {
	return func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s %s\n\n", os.Args[0], fs.Name(), synopsis)
		fmt.Fprintf(os.Stderr, "%s\n\n", description)
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		if len(examples) > 0 {
			fmt.Fprintf(os.Stderr, "\nExamples:\n")
			for _, e := range examples {
				fmt.Fprintf(os.Stderr, "  %s %s\n", os.Args[0], e)
			}
		}
	}
}

// failure prefers the store's human readable message over the raw error.
func failure(err error, message string) error {
	if message != "" {
		return errors.New(message)
	}
	return err
}

// printWord writes a word card.
func printWord(w io.Writer, word entities.Word) {
	fmt.Fprintf(w, "%s", word.Word)
	if word.IPA != "" {
		fmt.Fprintf(w, "  %s", word.IPA)
	}
	fmt.Fprintf(w, "  [%s, %s]  seen %d\n", word.Level, utils.LevelCalloutType(string(word.Level)), word.SeenCount)
	if len(word.WordTypes) > 0 {
		types := make([]string, len(word.WordTypes))
		for i, t := range word.WordTypes {
			types[i] = string(t)
		}
		fmt.Fprintf(w, "(%s)\n", strings.Join(types, ", "))
	}
	fmt.Fprintf(w, "\n%s\n", word.Definition)
	if word.Translation.Word != "" {
		fmt.Fprintf(w, "\n%s: %s\n", word.Translation.Word, word.Translation.Definition)
	}
	printList(w, "Examples", word.Examples)
	printList(w, "Code switching", word.CodeSwitching)
	printList(w, "Synonyms", word.Synonyms)
	if word.Image != "" {
		fmt.Fprintf(w, "\nImage: %s\n", word.Image)
	}
}

func printList(w io.Writer, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

// printWordRow writes a one-line summary used by listings.
func printWordRow(w io.Writer, i int, word entities.Word) {
	fmt.Fprintf(w, "%3d. %-20s %-6s seen %-3d %s\n", i, word.Word, word.Level, word.SeenCount, truncate(word.Definition, 60))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
