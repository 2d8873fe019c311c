package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mrlokans/lexicard/internal/entities"
)

const (
	wordsPath           = "/api/words"
	wordByKeyPath       = "/api/words/word/"
	deckPath            = "/api/words/get-cards-anki"
	generateWordPath    = "/api/ai/generate-wordJson"
	generateImagePath   = "/api/ai/generate-image/"
	levelPathSuffix     = "/level"
	incrementSeenSuffix = "/increment-seen"
)

// regeneratePaths maps list-valued field kinds to their AI endpoints.
var regeneratePaths = map[entities.FieldKind]string{
	entities.FieldExamples:      "/api/ai/generate-word-examples/",
	entities.FieldCodeSwitching: "/api/ai/generate-code-switching/",
	entities.FieldSynonyms:      "/api/ai/generate-code-synonyms/",
	entities.FieldWordTypes:     "/api/ai/generate-word-wordtypes/",
}

// WordPage is one page of the searchable word list.
type WordPage struct {
	Items      []entities.Word
	Page       int
	TotalPages int
	TotalCount int
}

// FieldRequest asks the service to regenerate one field of a word. The
// previous values are sent so the service can avoid repeating them.
type FieldRequest struct {
	ID            string
	Word          string
	Language      string
	Kind          entities.FieldKind
	Previous      []string // list-valued kinds
	PreviousImage string   // FieldImage
}

type generateWordBody struct {
	Prompt   string `json:"prompt"`
	Language string `json:"language"`
}

type levelBody struct {
	Level entities.Level `json:"level"`
}

type regenerateBody struct {
	Word        string   `json:"word"`
	Language    string   `json:"language"`
	OldExamples []string `json:"oldExamples"`
}

type regenerateImageBody struct {
	Word   string `json:"word"`
	ImgOld string `json:"imgOld"`
}

func validWord(op string, w *entities.Word) func() error {
	return func() error {
		if w.ID == "" || w.Word == "" {
			return shapeError(op, "word without _id or word")
		}
		return nil
	}
}

// FetchWordByKey looks a word up by its lexical key, case-insensitively.
func (c *Client) FetchWordByKey(ctx context.Context, key string) (*entities.Word, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return nil, ErrEmptyKey
	}

	var word entities.Word
	_, err := c.do(ctx, request{
		op:       "fetch word",
		method:   http.MethodGet,
		url:      c.url(wordByKeyPath + url.PathEscape(key)),
		out:      &word,
		validate: validWord("fetch word", &word),
	})
	if err != nil {
		// the service answers a missing key with success=false, sometimes on a 200
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 200 && apiErr.StatusCode < 300 {
			apiErr.NotFound = true
		}
		return nil, err
	}
	return &word, nil
}

// ListWords fetches one page of words, filtered by search when non-empty.
func (c *Client) ListWords(ctx context.Context, search string, page int) (*WordPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		q.Set("wordUser", search)
	}

	var words []entities.Word
	env, err := c.do(ctx, request{
		op:     "list words",
		method: http.MethodGet,
		url:    c.url(wordsPath) + "?" + q.Encode(),
		out:    &words,
	})
	if err != nil {
		return nil, err
	}
	if env.Pagination == nil {
		return nil, shapeError("list words", "missing pagination")
	}

	return &WordPage{
		Items:      words,
		Page:       env.Pagination.Page,
		TotalPages: env.Pagination.Pages,
		TotalCount: env.Pagination.Total,
	}, nil
}

// GenerateWord asks the AI backend to create a word from prompt. This can take
// several seconds and is never retried.
func (c *Client) GenerateWord(ctx context.Context, prompt, language string) (*entities.Word, error) {
	var word entities.Word
	_, err := c.do(ctx, request{
		op:       "generate word",
		method:   http.MethodPost,
		url:      c.url(generateWordPath),
		body:     generateWordBody{Prompt: prompt, Language: language},
		slow:     true,
		out:      &word,
		validate: validWord("generate word", &word),
	})
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// UpdateWordLevel persists a new level. The returned patch always carries Level.
func (c *Client) UpdateWordLevel(ctx context.Context, id string, level entities.Level) (entities.WordPatch, error) {
	var patch entities.WordPatch
	_, err := c.do(ctx, request{
		op:     "update level",
		method: http.MethodPut,
		url:    c.url(wordsPath + "/" + url.PathEscape(id) + levelPathSuffix),
		body:   levelBody{Level: level},
		out:    &patch,
	})
	if err != nil {
		return entities.WordPatch{}, err
	}
	if patch.Level == nil {
		// the service confirmed the write without echoing the field
		patch.Level = &level
	}
	return entities.WordPatch{Level: patch.Level, UpdatedAt: patch.UpdatedAt}, nil
}

// RegenerateField asks the AI backend for fresh values of one field. The
// result is narrowed to that field plus UpdatedAt.
func (c *Client) RegenerateField(ctx context.Context, fr FieldRequest) (entities.WordPatch, error) {
	op := "regenerate " + string(fr.Kind)

	r := request{op: op, slow: true}
	if fr.Kind == entities.FieldImage {
		r.method = http.MethodPost
		r.url = c.url(generateImagePath + url.PathEscape(fr.ID))
		r.body = regenerateImageBody{Word: fr.Word, ImgOld: fr.PreviousImage}
	} else {
		path, ok := regeneratePaths[fr.Kind]
		if !ok {
			return entities.WordPatch{}, fmt.Errorf("%s: unsupported field", op)
		}
		previous := fr.Previous
		if previous == nil {
			previous = []string{}
		}
		r.method = http.MethodPut
		r.url = c.url(path + url.PathEscape(fr.ID))
		r.body = regenerateBody{Word: fr.Word, Language: fr.Language, OldExamples: previous}
	}

	var patch entities.WordPatch
	r.out = &patch
	r.validate = func() error {
		if !patch.Has(fr.Kind) {
			return shapeError(op, "response lacks "+string(fr.Kind))
		}
		return nil
	}
	if _, err := c.do(ctx, r); err != nil {
		return entities.WordPatch{}, err
	}
	return patch.Only(fr.Kind), nil
}

// IncrementSeenCount bumps the server side seen counter. The returned patch
// carries the authoritative count when the service echoes it.
func (c *Client) IncrementSeenCount(ctx context.Context, id string) (entities.WordPatch, error) {
	var patch entities.WordPatch
	env, err := c.do(ctx, request{
		op:     "increment seen",
		method: http.MethodPut,
		url:    c.url(wordsPath + "/" + url.PathEscape(id) + incrementSeenSuffix),
	})
	if err != nil {
		return entities.WordPatch{}, err
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		// best effort: a body we cannot read does not undo a confirmed increment
		_ = json.Unmarshal(env.Data, &patch)
	}
	return entities.WordPatch{SeenCount: patch.SeenCount, UpdatedAt: patch.UpdatedAt}, nil
}

// FetchDeck returns the review deck: recently seen hard and medium words.
func (c *Client) FetchDeck(ctx context.Context) ([]entities.Word, error) {
	var words []entities.Word
	_, err := c.do(ctx, request{
		op:     "fetch deck",
		method: http.MethodGet,
		url:    c.url(deckPath),
		out:    &words,
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}
