package entities

import (
	"fmt"
	"time"
)

// FieldKind names a word field that the word service can regenerate on its own.
type FieldKind string

const (
	FieldExamples      FieldKind = "examples"
	FieldCodeSwitching FieldKind = "codeSwitching"
	FieldSynonyms      FieldKind = "synonyms"
	FieldWordTypes     FieldKind = "wordTypes"
	FieldImage         FieldKind = "image"
)

var FieldKinds = []FieldKind{FieldExamples, FieldCodeSwitching, FieldSynonyms, FieldWordTypes, FieldImage}

func ParseFieldKind(s string) (FieldKind, error) {
	for _, k := range FieldKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown field %q", s)
}

// WordPatch is the partial word returned by mutation endpoints.
// A nil field was not part of the response and must not be touched on merge.
type WordPatch struct {
	Definition    *string     `json:"definition,omitempty"`
	IPA           *string     `json:"IPA,omitempty"`
	Examples      *[]string   `json:"examples,omitempty"`
	CodeSwitching *[]string   `json:"codeSwitching,omitempty"`
	Synonyms      *[]string   `json:"sinonyms,omitempty"`
	WordTypes     *[]WordType `json:"type,omitempty"`
	Level         *Level      `json:"level,omitempty"`
	SeenCount     *int        `json:"seen,omitempty"`
	Image         *string     `json:"img,omitempty"`
	UpdatedAt     *time.Time  `json:"updatedAt,omitempty"`
}

// Has reports whether the patch carries the field for kind.
func (p WordPatch) Has(kind FieldKind) bool {
	switch kind {
	case FieldExamples:
		return p.Examples != nil
	case FieldCodeSwitching:
		return p.CodeSwitching != nil
	case FieldSynonyms:
		return p.Synonyms != nil
	case FieldWordTypes:
		return p.WordTypes != nil
	case FieldImage:
		return p.Image != nil
	}
	return false
}

// Only narrows the patch to the field for kind plus UpdatedAt.
func (p WordPatch) Only(kind FieldKind) WordPatch {
	out := WordPatch{UpdatedAt: p.UpdatedAt}
	switch kind {
	case FieldExamples:
		out.Examples = p.Examples
	case FieldCodeSwitching:
		out.CodeSwitching = p.CodeSwitching
	case FieldSynonyms:
		out.Synonyms = p.Synonyms
	case FieldWordTypes:
		out.WordTypes = p.WordTypes
	case FieldImage:
		out.Image = p.Image
	}
	return out
}
