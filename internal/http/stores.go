package http

import (
	"time"

	"github.com/mrlokans/lexicard/internal/entities"
)

// This file consolidates the interfaces the word service controllers depend on.
// *database.Database implements every store; the demo package provides the rest.

type WordStore interface {
	ListWords(search string, page, pageSize int) ([]entities.Word, int64, error)
	GetWordByKey(key string) (*entities.Word, error)
	GetWordByID(id string) (*entities.Word, error)
	CreateWord(word *entities.Word) error
	SaveWord(word *entities.Word) error
	IncrementSeen(id string) (*entities.Word, error)
	Deck(limit int) ([]entities.Word, error)
}

type LectureStore interface {
	ListLectures(page, pageSize int) ([]entities.Lecture, int64, error)
}

type UserStore interface {
	GetUserByUsername(username string) (*entities.User, error)
}

// Generator produces AI content for words.
type Generator interface {
	Word(prompt, language string) entities.Word
	Examples(word string, previous []string) []string
	CodeSwitching(word, language string, previous []string) []string
	Synonyms(word string, previous []string) []string
	WordTypes(word string, previous []entities.WordType) []entities.WordType
	Image(word, previous string) string
}

// Authenticator verifies credentials and issues bearer tokens.
type Authenticator interface {
	CheckPassword(password, hash string) error
	IssueToken(username string, now time.Time) (string, error)
}
