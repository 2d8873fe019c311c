package demo

import (
	"fmt"
	"hash/fnv"
	"net/url"
	"slices"
	"strings"

	"github.com/mrlokans/lexicard/internal/entities"
)

// listSize is how many values a regenerated list holds.
const listSize = 3

// Generator stands in for the AI backend. Output depends only on its input,
// and regenerated values never repeat the previous ones.
type Generator struct{}

func (Generator) Word(prompt, language string) entities.Word {
	key := strings.ToLower(strings.Join(strings.Fields(prompt), " "))
	g := Generator{}
	return entities.Word{
		Word:          key,
		Definition:    fmt.Sprintf("A demo definition of %q.", key),
		IPA:           "/" + key + "/",
		Examples:      g.Examples(key, nil),
		CodeSwitching: g.CodeSwitching(key, language, nil),
		Synonyms:      g.Synonyms(key, nil),
		WordTypes:     g.WordTypes(key, nil),
		Level:         entities.LevelEasy,
		Image:         g.Image(key, ""),
		Translation: entities.Translation{
			Word:       key,
			Definition: fmt.Sprintf("Definición de ejemplo de %q.", key),
		},
	}
}

func (Generator) Examples(word string, previous []string) []string {
	return fresh(previous, func(i int) string {
		templates := []string{
			"I wrote %q on a card to remember it.",
			"She used the word %q twice in one sentence.",
			"Can you put %q into a sentence of your own?",
			"Our tutor explained %q with a picture.",
			"We heard %q in the film last night.",
		}
		return variant(templates, i, word)
	})
}

func (Generator) CodeSwitching(word, language string, previous []string) []string {
	return fresh(previous, func(i int) string {
		templates := []string{
			"Hoy aprendí la palabra %q en clase.",
			"No sé cómo se dice %q en español.",
			"Mi amiga siempre dice %q cuando habla rápido.",
			"Escribí %q en mi cuaderno.",
		}
		return variant(templates, i, word)
	})
}

func (Generator) Synonyms(word string, previous []string) []string {
	return fresh(previous, func(i int) string {
		suffixes := []string{"alike", "kin", "twin", "echo", "mirror", "shade"}
		s := fmt.Sprintf("%s-%s", word, suffixes[i%len(suffixes)])
		if n := i / len(suffixes); n > 0 {
			s = fmt.Sprintf("%s-%d", s, n+1)
		}
		return s
	})
}

// WordTypes picks from the known vocabulary, starting at a position derived
// from the word and skipping previous tags.
func (Generator) WordTypes(word string, previous []entities.WordType) []entities.WordType {
	start := int(hash(word) % uint32(len(entities.WordTypes)))
	var out []entities.WordType
	for i := 0; i < len(entities.WordTypes) && len(out) < 2; i++ {
		t := entities.WordTypes[(start+i)%len(entities.WordTypes)]
		if !slices.Contains(previous, t) {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		// every tag was used before; repeat rather than return nothing
		out = append(out, entities.WordTypes[start])
	}
	return out
}

func (Generator) Image(word, previous string) string {
	for n := 1; ; n++ {
		img := fmt.Sprintf("https://picsum.photos/seed/%s-%d/512", url.PathEscape(word), n)
		if img != previous {
			return img
		}
	}
}

// fresh collects listSize values from gen that are not in previous.
func fresh(previous []string, gen func(i int) string) []string {
	out := make([]string, 0, listSize)
	for i := 0; len(out) < listSize; i++ {
		v := gen(i)
		if !slices.Contains(previous, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func variant(templates []string, i int, word string) string {
	s := fmt.Sprintf(templates[i%len(templates)], word)
	if n := i / len(templates); n > 0 {
		s = fmt.Sprintf("%s (%d)", s, n+1)
	}
	return s
}

func hash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
