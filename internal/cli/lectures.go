package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/lexicard/internal/entities"
	"github.com/mrlokans/lexicard/internal/markdown"
	"github.com/mrlokans/lexicard/internal/stores"
)

// LecturesCommand lists lectures page by page.
type LecturesCommand struct {
	PageSize int
	All      bool
}

func NewLecturesCommand() *LecturesCommand {
	return &LecturesCommand{}
}

func (cmd *LecturesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("lectures", flag.ExitOnError)

	fs.IntVar(&cmd.PageSize, "limit", 0, "Lectures per page (default LECTURE_PAGE_SIZE)")
	fs.BoolVar(&cmd.All, "all", false, "Keep loading pages until every lecture is listed")

	fs.Usage = usage(fs, "[options]",
		"List reading lectures.",
		"lectures",
		"lectures -all -limit 20",
	)

	return fs.Parse(args)
}

func (cmd *LecturesCommand) Run() error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := commandContext()
	defer cancel()

	pageSize := cmd.PageSize
	if pageSize < 1 {
		pageSize = app.Config.Lectures.PageSize
	}

	store := app.Lectures
	if err := store.FetchLectures(ctx, 1, pageSize); err != nil {
		return failure(err, store.Snapshot().Error)
	}
	for cmd.All && store.HasMore() && store.Snapshot().CurrentPage < store.Snapshot().TotalPages {
		if err := store.FetchLectures(ctx, store.Snapshot().CurrentPage+1, pageSize); err != nil {
			return failure(err, store.Snapshot().Error)
		}
	}

	printLectures(os.Stdout, store.Snapshot())
	return nil
}

func printLectures(w io.Writer, st stores.LectureState) {
	if len(st.Items) == 0 {
		fmt.Fprintln(w, "No lectures found")
		return
	}
	for _, l := range st.Items {
		fmt.Fprintf(w, "%s  %-3s %3d min  %-10s %s\n", l.ID, l.Level, l.DurationMinutes, l.WritingStyle, l.Title())
	}
	fmt.Fprintf(w, "Showing %d of %d lectures\n", len(st.Items), st.TotalCount)
	if st.HasMore() {
		fmt.Fprintln(w, "Use -all to load the rest")
	}
}

// ReadCommand prints a lecture and can look up one of its words.
type ReadCommand struct {
	ID  string
	Tap int
}

func NewReadCommand() *ReadCommand {
	return &ReadCommand{}
}

func (cmd *ReadCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("read", flag.ExitOnError)

	fs.StringVar(&cmd.ID, "id", "", "Lecture id, as listed by 'lectures' (required)")
	fs.IntVar(&cmd.Tap, "tap", 0, "Look up the n-th word of the lecture")

	fs.Usage = usage(fs, "-id <lecture> [options]",
		"Show a lecture with numbered words. -tap looks one of them up, like tapping it.",
		"read -id 4f1c...",
		"read -id 4f1c... -tap 7",
	)

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.ID == "" {
		return fmt.Errorf("required flag -id not provided")
	}
	if cmd.Tap < 0 {
		return fmt.Errorf("-tap must be positive")
	}
	return nil
}

func (cmd *ReadCommand) Run() error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := commandContext()
	defer cancel()

	lecture, err := findLecture(ctx, app.Lectures, cmd.ID, app.Config.Lectures.PageSize)
	if err != nil {
		return err
	}

	words := markdown.TappableWords(lecture.MarkdownContent)
	printLecture(os.Stdout, lecture, words)

	if cmd.Tap == 0 {
		return nil
	}
	if cmd.Tap > len(words) {
		return fmt.Errorf("lecture has only %d words", len(words))
	}
	key := markdown.CleanWord(words[cmd.Tap-1])
	fmt.Printf("\n--- %s ---\n", key)

	word, err := lookupActive(ctx, app.Words, key)
	if err != nil {
		return err
	}
	printWord(os.Stdout, *word)
	return nil
}

// findLecture pages through the catalogue until the lecture is loaded.
func findLecture(ctx context.Context, store *stores.LectureStore, id string, pageSize int) (entities.Lecture, error) {
	if err := store.FetchLectures(ctx, 1, pageSize); err != nil {
		return entities.Lecture{}, failure(err, store.Snapshot().Error)
	}
	for {
		if l, ok := store.GetLectureByID(id); ok {
			return l, nil
		}
		st := store.Snapshot()
		if !st.HasMore() || st.CurrentPage >= st.TotalPages {
			return entities.Lecture{}, fmt.Errorf("lecture %s not found", id)
		}
		if err := store.FetchLectures(ctx, st.CurrentPage+1, pageSize); err != nil {
			return entities.Lecture{}, failure(err, store.Snapshot().Error)
		}
	}
}

func printLecture(w io.Writer, l entities.Lecture, words []string) {
	fmt.Fprintf(w, "%s\n%s, %d min, %s\n\n", l.Title(), l.Level, l.DurationMinutes, l.WritingStyle)
	for i, word := range words {
		fmt.Fprintf(w, "%s[%d] ", word, i+1)
		if (i+1)%10 == 0 {
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w)
}
