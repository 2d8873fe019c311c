package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/mrlokans/lexicard/internal/entities"
)

const (
	DefaultWordPageSize = 10
	DeckSize            = 20
)

func withWordID(w *entities.Word) *entities.Word {
	if w.ID == "" {
		w.ID = newID()
	}
	w.Word = strings.ToLower(strings.TrimSpace(w.Word))
	if w.Level == "" {
		w.Level = entities.LevelEasy
	}
	return w
}

// ListWords returns one page of words, newest first, optionally filtered by a
// case-insensitive substring of the key.
func (d *Database) ListWords(search string, page, pageSize int) ([]entities.Word, int64, error) {
	if pageSize < 1 {
		pageSize = DefaultWordPageSize
	}

	q := d.DB.Model(&entities.Word{})
	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		q = q.Where("word LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	words := []entities.Word{}
	err := q.Order("created_at DESC").Order("word").
		Limit(pageSize).Offset(offset(page, pageSize)).
		Find(&words).Error
	return words, total, err
}

func (d *Database) GetWordByKey(key string) (*entities.Word, error) {
	var word entities.Word
	err := d.DB.Where("word = ?", strings.ToLower(strings.TrimSpace(key))).First(&word).Error
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("word %q", key))
	}
	return &word, nil
}

func (d *Database) GetWordByID(id string) (*entities.Word, error) {
	var word entities.Word
	if err := d.DB.First(&word, "id = ?", id).Error; err != nil {
		return nil, notFound(err, fmt.Sprintf("word %s", id))
	}
	return &word, nil
}

func (d *Database) CreateWord(word *entities.Word) error {
	return d.DB.Create(withWordID(word)).Error
}

func (d *Database) SaveWord(word *entities.Word) error {
	return d.DB.Save(word).Error
}

// IncrementSeen bumps the seen counter and returns the updated word.
func (d *Database) IncrementSeen(id string) (*entities.Word, error) {
	res := d.DB.Model(&entities.Word{ID: id}).
		Update("seen_count", gorm.Expr("seen_count + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("word %s: %w", id, ErrNotFound)
	}
	return d.GetWordByID(id)
}

// Deck returns the most recently touched hard and medium words.
func (d *Database) Deck(limit int) ([]entities.Word, error) {
	if limit < 1 {
		limit = DeckSize
	}
	words := []entities.Word{}
	err := d.DB.Where("level IN ?", []entities.Level{entities.LevelHard, entities.LevelMedium}).
		Order("updated_at DESC").
		Limit(limit).
		Find(&words).Error
	return words, err
}
