package demo

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mrlokans/lexicard/internal/entities"
)

//go:embed assets/seed.yaml
var seedYAML []byte

// Seed is the initial content of a demo backend.
type Seed struct {
	User     SeedUser      `yaml:"user"`
	Words    []SeedWord    `yaml:"words"`
	Lectures []SeedLecture `yaml:"lectures"`
}

type SeedUser struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type SeedWord struct {
	Word          string   `yaml:"word"`
	Definition    string   `yaml:"definition"`
	IPA           string   `yaml:"ipa"`
	Level         string   `yaml:"level"`
	Seen          int      `yaml:"seen"`
	Types         []string `yaml:"types"`
	Examples      []string `yaml:"examples"`
	CodeSwitching []string `yaml:"codeSwitching"`
	Synonyms      []string `yaml:"synonyms"`
	Image         string   `yaml:"img"`
	Translation   struct {
		Word       string `yaml:"word"`
		Definition string `yaml:"definition"`
	} `yaml:"translation"`
}

type SeedLecture struct {
	Time      int    `yaml:"time"`
	Level     string `yaml:"level"`
	TypeWrite string `yaml:"typeWrite"`
	Language  string `yaml:"language"`
	Image     string `yaml:"img"`
	Content   string `yaml:"content"`
}

// DefaultSeed parses the seed bundled with the binary.
func DefaultSeed() (*Seed, error) {
	return ParseSeed(seedYAML)
}

func ParseSeed(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for i, w := range s.Words {
		if w.Word == "" {
			return nil, fmt.Errorf("parse seed: word %d has no key", i)
		}
		if _, err := entities.ParseLevel(w.Level); err != nil {
			return nil, fmt.Errorf("parse seed: word %q: %w", w.Word, err)
		}
		for _, t := range w.Types {
			if !entities.WordType(t).Known() {
				return nil, fmt.Errorf("parse seed: word %q: unknown type %q", w.Word, t)
			}
		}
	}
	return &s, nil
}

func (w SeedWord) entity() entities.Word {
	level, _ := entities.ParseLevel(w.Level)
	types := make([]entities.WordType, 0, len(w.Types))
	for _, t := range w.Types {
		types = append(types, entities.WordType(t))
	}
	return entities.Word{
		Word:          w.Word,
		Definition:    w.Definition,
		IPA:           w.IPA,
		Examples:      nonNil(w.Examples),
		CodeSwitching: nonNil(w.CodeSwitching),
		Synonyms:      nonNil(w.Synonyms),
		WordTypes:     types,
		Level:         level,
		SeenCount:     w.Seen,
		Image:         w.Image,
		Translation:   entities.Translation{Word: w.Translation.Word, Definition: w.Translation.Definition},
	}
}

func (l SeedLecture) entity() entities.Lecture {
	return entities.Lecture{
		DurationMinutes: l.Time,
		Level:           l.Level,
		WritingStyle:    l.TypeWrite,
		Language:        l.Language,
		ImageURL:        l.Image,
		MarkdownContent: l.Content,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
