package exporters

import "github.com/mrlokans/lexicard/internal/entities"

type DeckWriter interface {
	Export(words []entities.Word) (ExportResult, error)
}

type ExportResult struct {
	WordsProcessed int      `json:"words_processed"`
	WordsFailed    int      `json:"words_failed"`
	Files          []string `json:"files"`
}
