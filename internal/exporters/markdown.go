package exporters

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mrlokans/lexicard/internal/entities"
	"github.com/mrlokans/lexicard/internal/utils"
)

// DeckExporter writes the review deck into a directory as one markdown note
// per word plus an index note linking them.
type DeckExporter struct {
	ExportDir     string
	IndexFileName string
	now           func() time.Time
}

func NewDeckExporter(exportDir string) *DeckExporter {
	return &DeckExporter{
		ExportDir:     exportDir,
		IndexFileName: "index.md",
		now:           time.Now,
	}
}

func (e *DeckExporter) ensureDir() error {
	if e.ExportDir == "" {
		return fmt.Errorf("export directory is not configured")
	}
	if err := os.MkdirAll(e.ExportDir, 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	return nil
}

// Export writes every word. A word that fails to write is counted and
// skipped; only directory and index failures abort the export.
func (e *DeckExporter) Export(words []entities.Word) (ExportResult, error) {
	if err := e.ensureDir(); err != nil {
		return ExportResult{}, err
	}

	result := ExportResult{}
	var written []string
	for _, word := range words {
		name := utils.SanitizeFilename(word.Word)
		path := filepath.Join(e.ExportDir, name+".md")
		if err := os.WriteFile(path, []byte(GenerateWordMarkdown(word, e.now())), 0644); err != nil {
			log.Printf("[EXPORT] Failed to write %s: %v", path, err)
			result.WordsFailed++
			continue
		}
		written = append(written, name)
		result.Files = append(result.Files, path)
		result.WordsProcessed++
	}

	indexPath := filepath.Join(e.ExportDir, e.IndexFileName)
	if err := os.WriteFile(indexPath, []byte(generateIndex(written, e.now())), 0644); err != nil {
		return result, fmt.Errorf("failed to write index: %w", err)
	}
	return result, nil
}

func quote(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
}

// GenerateWordMarkdown renders word as an Obsidian note with front matter.
func GenerateWordMarkdown(word entities.Word, exportedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "---\n")
	fmt.Fprintf(&b, "content_type: vocabulary\n")
	fmt.Fprintf(&b, "word: %s\n", quote(word.Word))
	fmt.Fprintf(&b, "level: %s\n", word.Level)
	fmt.Fprintf(&b, "seen: %d\n", word.SeenCount)
	if word.Translation.Word != "" {
		fmt.Fprintf(&b, "translation: %s\n", quote(word.Translation.Word))
	}
	fmt.Fprintf(&b, "exported_at: %s\n", exportedAt.Format("2006-01-02"))
	fmt.Fprintf(&b, "tags: [vocabulary, %s]\n", word.Level)
	fmt.Fprintf(&b, "---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", word.Word)
	if word.IPA != "" {
		fmt.Fprintf(&b, "*%s*\n\n", word.IPA)
	}
	if len(word.WordTypes) > 0 {
		types := make([]string, len(word.WordTypes))
		for i, t := range word.WordTypes {
			types[i] = string(t)
		}
		fmt.Fprintf(&b, "**%s**\n\n", strings.Join(types, ", "))
	}

	fmt.Fprintf(&b, "> [!%s] Definition\n", utils.LevelCalloutType(string(word.Level)))
	fmt.Fprintf(&b, "> %s\n\n", strings.ReplaceAll(word.Definition, "\n", "\n> "))

	writeList(&b, "Examples", word.Examples)
	writeList(&b, "Code-switching", word.CodeSwitching)
	writeList(&b, "Synonyms", word.Synonyms)

	if word.Translation.Word != "" || word.Translation.Definition != "" {
		fmt.Fprintf(&b, "## Translation\n\n")
		fmt.Fprintf(&b, "**%s**: %s\n\n", word.Translation.Word, word.Translation.Definition)
	}
	if word.Image != "" {
		fmt.Fprintf(&b, "![%s](%s)\n", word.Word, word.Image)
	}
	return b.String()
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

func generateIndex(names []string, exportedAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Review deck\n\n")
	fmt.Fprintf(&b, "Exported %s, %d words.\n\n", exportedAt.Format("2006-01-02 15:04"), len(names))
	for _, name := range names {
		fmt.Fprintf(&b, "- [[%s]]\n", name)
	}
	return b.String()
}
