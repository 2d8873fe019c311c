package cli

import (
	"flag"
	"fmt"

	"github.com/mrlokans/lexicard/internal/exporters"
)

// ExportCommand writes the review deck as markdown notes.
type ExportCommand struct {
	OutputDir string
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.OutputDir, "output", "", "Directory for the markdown notes (default DECK_EXPORT_DIR)")

	fs.Usage = usage(fs, "[options]",
		"Export the review deck as Obsidian-compatible markdown, one note per word plus an index.",
		"export -output ~/Obsidian/Cards",
	)

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	dir := cmd.OutputDir
	if dir == "" {
		dir = app.Config.Deck.ExportDir
	}
	if dir == "" {
		return fmt.Errorf("no output directory: pass -output or set DECK_EXPORT_DIR")
	}

	ctx, cancel := commandContext()
	defer cancel()

	if err := app.Words.FetchDeck(ctx); err != nil {
		return failure(err, app.Words.Snapshot().Error)
	}

	result, err := exporters.NewDeckExporter(dir).Export(app.Words.Snapshot().Deck)
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d words to %s (%d failed)\n", result.WordsProcessed, dir, result.WordsFailed)
	return nil
}
