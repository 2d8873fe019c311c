package http

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lexicard/internal/database"
	"github.com/mrlokans/lexicard/internal/entities"
)

// AIController serves the generation endpoints. Regeneration answers carry
// only the regenerated field and updatedAt.
type AIController struct {
	store WordStore
	gen   Generator
}

func NewAIController(store WordStore, gen Generator) *AIController {
	return &AIController{store: store, gen: gen}
}

type GenerateWordRequest struct {
	Prompt   string `json:"prompt"`
	Language string `json:"language"`
}

type RegenerateRequest struct {
	Word        string   `json:"word"`
	Language    string   `json:"language"`
	OldExamples []string `json:"oldExamples"`
}

type RegenerateImageRequest struct {
	Word   string `json:"word"`
	ImgOld string `json:"imgOld"`
}

// GenerateWord creates a word from a prompt, or returns the stored word when
// the prompt names one that already exists.
// POST /api/ai/generate-wordJson
func (ac *AIController) GenerateWord(c *gin.Context) {
	var req GenerateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		respondBadRequest(c, "prompt is required")
		return
	}

	word := ac.gen.Word(req.Prompt, req.Language)
	existing, err := ac.store.GetWordByKey(word.Word)
	switch {
	case err == nil:
		respondData(c, http.StatusOK, existing)
		return
	case !errors.Is(err, database.ErrNotFound):
		respondInternalError(c, err, "generate word")
		return
	}

	if err := ac.store.CreateWord(&word); err != nil {
		respondInternalError(c, err, "generate word")
		return
	}
	log.Printf("Generated word %q", word.Word)
	respondData(c, http.StatusCreated, word)
}

// Regenerate returns a handler for one list-valued field kind.
// PUT /api/ai/generate-word-examples/:id and siblings
func (ac *AIController) Regenerate(kind entities.FieldKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body")
			return
		}

		word, err := ac.store.GetWordByID(c.Param("id"))
		if err != nil {
			respondStoreError(c, err, "Word", "regenerate "+string(kind))
			return
		}
		key := req.Word
		if key == "" {
			key = word.Word
		}

		switch kind {
		case entities.FieldExamples:
			word.Examples = ac.gen.Examples(key, req.OldExamples)
		case entities.FieldCodeSwitching:
			word.CodeSwitching = ac.gen.CodeSwitching(key, req.Language, req.OldExamples)
		case entities.FieldSynonyms:
			word.Synonyms = ac.gen.Synonyms(key, req.OldExamples)
		case entities.FieldWordTypes:
			previous := make([]entities.WordType, 0, len(req.OldExamples))
			for _, t := range req.OldExamples {
				previous = append(previous, entities.WordType(t))
			}
			word.WordTypes = ac.gen.WordTypes(key, previous)
		default:
			respondBadRequest(c, "unsupported field")
			return
		}

		ac.save(c, word, kind)
	}
}

// RegenerateImage replaces the word's image.
// POST /api/ai/generate-image/:id
func (ac *AIController) RegenerateImage(c *gin.Context) {
	var req RegenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	word, err := ac.store.GetWordByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Word", "regenerate image")
		return
	}
	key := req.Word
	if key == "" {
		key = word.Word
	}
	previous := req.ImgOld
	if previous == "" {
		previous = word.Image
	}
	word.Image = ac.gen.Image(key, previous)

	ac.save(c, word, entities.FieldImage)
}

func (ac *AIController) save(c *gin.Context, word *entities.Word, kind entities.FieldKind) {
	if err := ac.store.SaveWord(word); err != nil {
		respondInternalError(c, err, "regenerate "+string(kind))
		return
	}

	full := entities.WordPatch{
		Examples:      &word.Examples,
		CodeSwitching: &word.CodeSwitching,
		Synonyms:      &word.Synonyms,
		WordTypes:     &word.WordTypes,
		Image:         &word.Image,
		UpdatedAt:     &word.UpdatedAt,
	}
	respondData(c, http.StatusOK, full.Only(kind))
}
