package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mrlokans/lexicard/internal/api"
	"github.com/mrlokans/lexicard/internal/entities"
	"github.com/mrlokans/lexicard/internal/entrypoint"
	"github.com/mrlokans/lexicard/internal/stores"
)

// LookupCommand shows one word, optionally generating it when missing.
type LookupCommand struct {
	Word     string
	Generate bool
}

func NewLookupCommand() *LookupCommand {
	return &LookupCommand{}
}

func (cmd *LookupCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("lookup", flag.ExitOnError)

	fs.StringVar(&cmd.Word, "word", "", "Word to look up (required)")
	fs.BoolVar(&cmd.Generate, "generate", false, "Generate the word with AI when it does not exist yet")

	fs.Usage = usage(fs, "-word <word> [options]",
		"Look a word up and mark it as seen.",
		"lookup -word serendipity",
		"lookup -word luminous -generate",
	)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(cmd.Word) == "" {
		return fmt.Errorf("required flag -word not provided")
	}
	return nil
}

func (cmd *LookupCommand) Run() error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := commandContext()
	defer cancel()

	err = app.Words.LookupWord(ctx, cmd.Word)
	if errors.Is(err, api.ErrNotFound) && cmd.Generate {
		fmt.Printf("%q not found, generating it...\n", cmd.Word)
		err = app.Words.GenerateWord(ctx, cmd.Word)
	}
	if err != nil {
		return failure(err, app.Words.Snapshot().Error)
	}

	printWord(os.Stdout, *app.Words.Snapshot().Active)
	return nil
}

// GenerateCommand creates a word from a free-form prompt.
type GenerateCommand struct {
	Prompt string
}

func NewGenerateCommand() *GenerateCommand {
	return &GenerateCommand{}
}

func (cmd *GenerateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)

	fs.StringVar(&cmd.Prompt, "prompt", "", "Word or description to generate from (required)")

	fs.Usage = usage(fs, "-prompt <text>",
		"Ask the AI backend to create a word in WORD_LANGUAGE.",
		`generate -prompt "a word for a happy accident"`,
	)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(cmd.Prompt) == "" {
		return fmt.Errorf("required flag -prompt not provided")
	}
	return nil
}

func (cmd *GenerateCommand) Run() error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := commandContext()
	defer cancel()

	if err := app.Words.GenerateWord(ctx, cmd.Prompt); err != nil {
		return failure(err, app.Words.Snapshot().Error)
	}
	printWord(os.Stdout, *app.Words.Snapshot().Active)
	return nil
}

// WordsCommand lists words, either once or interactively with debounced search.
type WordsCommand struct {
	Search      string
	Page        int
	Interactive bool
}

func NewWordsCommand() *WordsCommand {
	return &WordsCommand{}
}

func (cmd *WordsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("words", flag.ExitOnError)

	fs.StringVar(&cmd.Search, "search", "", "Only list words containing this text")
	fs.IntVar(&cmd.Page, "page", 1, "Page to show")
	fs.BoolVar(&cmd.Interactive, "i", false, "Interactive mode: type to search, 'n'/'p' to page, 'q' to quit")

	fs.Usage = usage(fs, "[options]",
		"List your words.",
		"words",
		"words -search ser -page 2",
		"words -i",
	)

	return fs.Parse(args)
}

func (cmd *WordsCommand) Run() error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := commandContext()
	defer cancel()

	store := app.Words
	store.SearchWords(cmd.Search)
	if err := store.FetchWords(ctx); err != nil {
		return failure(err, store.Snapshot().Error)
	}
	if cmd.Page > 1 {
		store.SetWordsPage(cmd.Page)
		if err := store.FetchWords(ctx); err != nil {
			return failure(err, store.Snapshot().Error)
		}
	}

	if !cmd.Interactive {
		printWordList(os.Stdout, store.Snapshot().List)
		return nil
	}
	return runInteractiveWords(ctx, app, os.Stdin, os.Stdout)
}

func printWordList(w io.Writer, list stores.WordList) {
	if list.SearchQuery != "" {
		fmt.Fprintf(w, "Search: %q\n", list.SearchQuery)
	}
	if len(list.Items) == 0 {
		fmt.Fprintln(w, "No words found")
		return
	}
	// only full pages reveal the page size; the last one counts back from the total
	first := (list.CurrentPage-1)*len(list.Items) + 1
	if list.CurrentPage >= list.TotalPages && list.TotalCount >= len(list.Items) {
		first = list.TotalCount - len(list.Items) + 1
	}
	for i, word := range list.Items {
		printWordRow(w, first+i, word)
	}
	fmt.Fprintf(w, "Page %d of %d (%d words)\n", list.CurrentPage, max(list.TotalPages, 1), list.TotalCount)
}

// runInteractiveWords reads commands line by line. Search terms go through the
// debouncer, so quickly typed lines only fetch once.
func runInteractiveWords(ctx context.Context, app *entrypoint.App, in io.Reader, out io.Writer) error {
	store := app.Words
	debouncer := stores.NewDebouncer(app.Config.Words.SearchDebounce)
	defer debouncer.Stop()

	fetch := func() {
		if err := store.FetchWords(ctx); err != nil {
			fmt.Fprintln(out, store.Snapshot().Error)
		}
	}

	// print once per completed fetch
	wasLoading := false
	unsubscribe := store.Subscribe(func(st stores.WordState) {
		if wasLoading && !st.LoadingList && st.Error == "" {
			printWordList(out, st.List)
		}
		wasLoading = st.LoadingList
	})
	defer unsubscribe()

	printWordList(out, store.Snapshot().List)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		st := store.Snapshot()
		switch line {
		case "q":
			return nil
		case "n":
			store.SetWordsPage(st.List.CurrentPage + 1)
			fetch()
		case "p":
			store.SetWordsPage(st.List.CurrentPage - 1)
			fetch()
		default:
			store.SearchWords(line)
			debouncer.Trigger(fetch)
		}
	}
	return scanner.Err()
}

// CardsCommand shows the review deck.
type CardsCommand struct{}

func NewCardsCommand() *CardsCommand {
	return &CardsCommand{}
}

func (cmd *CardsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("cards", flag.ExitOnError)
	fs.Usage = usage(fs, "", "Show the review cards: recently seen hard and medium words.")
	return fs.Parse(args)
}

func (cmd *CardsCommand) Run() error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := commandContext()
	defer cancel()

	if err := app.Words.FetchDeck(ctx); err != nil {
		return failure(err, app.Words.Snapshot().Error)
	}
	deck := app.Words.Snapshot().Deck
	if len(deck) == 0 {
		fmt.Println("No cards to review")
		return nil
	}
	for i, word := range deck {
		printWordRow(os.Stdout, i+1, word)
	}
	return nil
}

// LevelCommand sets the difficulty of a word.
type LevelCommand struct {
	Word  string
	Level entities.Level
	raw   string
}

func NewLevelCommand() *LevelCommand {
	return &LevelCommand{}
}

func (cmd *LevelCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("level", flag.ExitOnError)

	fs.StringVar(&cmd.Word, "word", "", "Word to update (required)")
	fs.StringVar(&cmd.raw, "level", "", "New level: easy, medium or hard (required)")

	fs.Usage = usage(fs, "-word <word> -level <easy|medium|hard>",
		"Change how difficult a word is for you.",
		"level -word ubiquitous -level hard",
	)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Word == "" || cmd.raw == "" {
		return fmt.Errorf("flags -word and -level are required")
	}
	level, err := entities.ParseLevel(cmd.raw)
	if err != nil {
		return err
	}
	cmd.Level = level
	return nil
}

func (cmd *LevelCommand) Run() error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := commandContext()
	defer cancel()

	word, err := lookupActive(ctx, app.Words, cmd.Word)
	if err != nil {
		return err
	}
	if err := app.Words.UpdateWordLevel(ctx, word.ID, cmd.Level); err != nil {
		return failure(err, app.Words.Snapshot().Error)
	}
	fmt.Printf("%s is now %s\n", word.Word, app.Words.Snapshot().Active.Level)
	return nil
}

// RegenCommand regenerates one field of a word.
type RegenCommand struct {
	Word  string
	Field entities.FieldKind
	raw   string
}

func NewRegenCommand() *RegenCommand {
	return &RegenCommand{}
}

func (cmd *RegenCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("regen", flag.ExitOnError)

	kinds := make([]string, len(entities.FieldKinds))
	for i, k := range entities.FieldKinds {
		kinds[i] = string(k)
	}

	fs.StringVar(&cmd.Word, "word", "", "Word to update (required)")
	fs.StringVar(&cmd.raw, "field", "", "Field to regenerate: "+strings.Join(kinds, ", ")+" (required)")

	fs.Usage = usage(fs, "-word <word> -field <field>",
		"Ask the AI backend for fresh values of one field. Previous values are sent so they are not repeated.",
		"regen -word wander -field examples",
		"regen -word wander -field image",
	)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Word == "" || cmd.raw == "" {
		return fmt.Errorf("flags -word and -field are required")
	}
	kind, err := entities.ParseFieldKind(cmd.raw)
	if err != nil {
		return err
	}
	cmd.Field = kind
	return nil
}

func (cmd *RegenCommand) Run() error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := commandContext()
	defer cancel()

	word, err := lookupActive(ctx, app.Words, cmd.Word)
	if err != nil {
		return err
	}
	if err := app.Words.UpdateWordField(ctx, word.ID, cmd.Field); err != nil {
		return failure(err, app.Words.Snapshot().Error)
	}
	printWord(os.Stdout, *app.Words.Snapshot().Active)
	return nil
}

func lookupActive(ctx context.Context, store *stores.WordStore, key string) (*entities.Word, error) {
	if err := store.LookupWord(ctx, key); err != nil {
		return nil, failure(err, store.Snapshot().Error)
	}
	active := store.Snapshot().Active
	if active == nil {
		return nil, fmt.Errorf("word %q not found", key)
	}
	return active, nil
}
