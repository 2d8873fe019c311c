package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "atx heading",
			content: "intro line\n\n# The Quiet Harbor\n\nBody text.",
			want:    "The Quiet Harbor",
		},
		{
			name:    "setext heading",
			content: "Best Practices in React\n=======================\n\nIntro\n-----\n",
			want:    "Best Practices in React",
		},
		{
			name:    "emphasis inside heading",
			content: "# A **bold** title\n",
			want:    "A bold title",
		},
		{
			name:    "level two only",
			content: "## Not a title\n\ntext",
			want:    UntitledPlaceholder,
		},
		{
			name:    "first of several",
			content: "# First\n\n# Second\n",
			want:    "First",
		},
		{
			name:    "empty body",
			content: "",
			want:    UntitledPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.content))
		})
	}
}

func TestTappableWords(t *testing.T) {
	content := "# Title here\n\nThe *quick* brown\nfox.\n\n- one\n- two\n\n```\ncode block\n```\n"
	got := TappableWords(content)
	assert.Equal(t, []string{"Title", "here", "The", "quick", "brown", "fox.", "one", "two"}, got)
}

func TestCleanWord(t *testing.T) {
	tests := map[string]string{
		"(hello,":   "hello",
		"fox.":      "fox",
		"¿Qué?":     "Qué",
		"don't":     "don't",
		"---":       "",
		"2024!":     "2024",
		"“quoted”":  "quoted",
	}
	for in, want := range tests {
		assert.Equal(t, want, CleanWord(in), "CleanWord(%q)", in)
	}
}
