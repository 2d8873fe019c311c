package entities

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// ParseLevel normalizes a user supplied level. An empty string yields LevelEasy.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case "", LevelEasy:
		return LevelEasy, nil
	case LevelMedium:
		return LevelMedium, nil
	case LevelHard:
		return LevelHard, nil
	}
	return "", fmt.Errorf("unknown level %q (want easy, medium or hard)", s)
}

func (l Level) Valid() bool {
	return l == LevelEasy || l == LevelMedium || l == LevelHard
}

// WordType is a grammatical category tag.
type WordType string

// WordTypes is the fixed tag vocabulary accepted by the word service.
var WordTypes = []WordType{
	"noun", "verb", "adjective", "adverb", "personal pronoun", "demonstrative pronoun",
	"possessive pronoun", "preposition", "conjunction", "coordinating conjunction",
	"subordinating conjunction", "determiner", "article", "quantifier", "interjection",
	"auxiliary verb", "modal verb", "infinitive", "participle", "gerund",
	"transitive verb", "intransitive verb", "reflexive verb",
}

func (t WordType) Known() bool {
	return slices.Contains(WordTypes, t)
}

// Translation holds the word and definition in the learner's second language.
type Translation struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Word is a vocabulary entry. JSON names follow the word service wire format.
type Word struct {
	ID            string      `gorm:"primaryKey;size:64" json:"_id"`
	Word          string      `gorm:"uniqueIndex;size:100" json:"word"`
	Definition    string      `gorm:"type:text" json:"definition"`
	IPA           string      `gorm:"size:200" json:"IPA,omitempty"`
	Examples      []string    `gorm:"serializer:json" json:"examples"`
	CodeSwitching []string    `gorm:"serializer:json" json:"codeSwitching"`
	Synonyms      []string    `gorm:"serializer:json" json:"sinonyms,omitempty"`
	WordTypes     []WordType  `gorm:"serializer:json" json:"type"`
	Level         Level       `gorm:"size:10;default:'easy'" json:"level"`
	SeenCount     int         `json:"seen"`
	Image         string      `gorm:"size:2048" json:"img,omitempty"`
	Translation   Translation `gorm:"embedded;embeddedPrefix:translation_" json:"spanish"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func (Word) TableName() string {
	return "words"
}

// Clone returns a deep copy so snapshots never share backing arrays.
func (w Word) Clone() Word {
	w.Examples = slices.Clone(w.Examples)
	w.CodeSwitching = slices.Clone(w.CodeSwitching)
	w.Synonyms = slices.Clone(w.Synonyms)
	w.WordTypes = slices.Clone(w.WordTypes)
	return w
}

// Apply returns a copy of w with every field present in p replaced.
func (w Word) Apply(p WordPatch) Word {
	out := w.Clone()
	if p.Definition != nil {
		out.Definition = *p.Definition
	}
	if p.IPA != nil {
		out.IPA = *p.IPA
	}
	if p.Examples != nil {
		out.Examples = slices.Clone(*p.Examples)
	}
	if p.CodeSwitching != nil {
		out.CodeSwitching = slices.Clone(*p.CodeSwitching)
	}
	if p.Synonyms != nil {
		out.Synonyms = slices.Clone(*p.Synonyms)
	}
	if p.WordTypes != nil {
		out.WordTypes = slices.Clone(*p.WordTypes)
	}
	if p.Level != nil {
		out.Level = *p.Level
	}
	if p.SeenCount != nil {
		out.SeenCount = *p.SeenCount
	}
	if p.Image != nil {
		out.Image = *p.Image
	}
	if p.UpdatedAt != nil {
		out.UpdatedAt = *p.UpdatedAt
	}
	return out
}
