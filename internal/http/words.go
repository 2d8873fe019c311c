package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/lexicard/internal/database"
	"github.com/mrlokans/lexicard/internal/entities"
)

type WordsController struct {
	store WordStore
}

func NewWordsController(store WordStore) *WordsController {
	return &WordsController{store: store}
}

type LevelRequest struct {
	Level string `json:"level" binding:"required"`
}

// ListWords returns one page of words, filtered by wordUser.
// GET /api/words?page=n&wordUser=q
func (wc *WordsController) ListWords(c *gin.Context) {
	page := queryInt(c, "page", 1, 0)
	search := strings.ToLower(strings.TrimSpace(c.Query("wordUser")))

	words, total, err := wc.store.ListWords(search, page, database.DefaultWordPageSize)
	if err != nil {
		respondInternalError(c, err, "list words")
		return
	}

	respondPage(c, words, Pagination{
		Page:  page,
		Pages: database.Pages(total, database.DefaultWordPageSize),
		Total: total,
	})
}

// GetWordByKey looks a word up by its lexical key.
// GET /api/words/word/:key
func (wc *WordsController) GetWordByKey(c *gin.Context) {
	word, err := wc.store.GetWordByKey(c.Param("key"))
	if err != nil {
		respondStoreError(c, err, "Word", "get word")
		return
	}
	respondData(c, http.StatusOK, word)
}

// Deck returns the review cards: recent hard and medium words.
// GET /api/words/get-cards-anki
func (wc *WordsController) Deck(c *gin.Context) {
	words, err := wc.store.Deck(database.DeckSize)
	if err != nil {
		respondInternalError(c, err, "deck")
		return
	}
	respondData(c, http.StatusOK, words)
}

// UpdateLevel sets the difficulty level and answers with level and updatedAt.
// PUT /api/words/:id/level
func (wc *WordsController) UpdateLevel(c *gin.Context) {
	var req LevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "level is required")
		return
	}
	level, err := entities.ParseLevel(req.Level)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	word, err := wc.store.GetWordByID(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Word", "update level")
		return
	}
	word.Level = level
	if err := wc.store.SaveWord(word); err != nil {
		respondInternalError(c, err, "update level")
		return
	}

	respondData(c, http.StatusOK, entities.WordPatch{Level: &word.Level, UpdatedAt: &word.UpdatedAt})
}

// IncrementSeen bumps the seen counter and answers with seen and updatedAt.
// PUT /api/words/:id/increment-seen
func (wc *WordsController) IncrementSeen(c *gin.Context) {
	word, err := wc.store.IncrementSeen(c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "Word", "increment seen")
		return
	}
	respondData(c, http.StatusOK, entities.WordPatch{SeenCount: &word.SeenCount, UpdatedAt: &word.UpdatedAt})
}
