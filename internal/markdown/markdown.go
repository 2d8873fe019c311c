// Package markdown extracts what the lecture reader needs from lecture bodies:
// the title and the sequence of words a reader can tap to look up.
package markdown

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// UntitledPlaceholder is returned by Title when the body has no level-1 heading.
const UntitledPlaceholder = "Untitled"

var md = goldmark.New()

func parse(content string) (ast.Node, []byte) {
	src := []byte(content)
	return md.Parser().Parse(text.NewReader(src)), src
}

// Title returns the text of the first level-1 heading (ATX or setext).
func Title(content string) string {
	doc, src := parse(content)

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok || h.Level != 1 {
			return ast.WalkContinue, nil
		}
		title = strings.TrimSpace(inlineText(h, src))
		if title == "" {
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkStop, nil
	})

	if title == "" {
		return UntitledPlaceholder
	}
	return title
}

// TappableWords returns the whitespace separated words of all rendered text,
// in document order. Code blocks are not rendered as tappable text.
func TappableWords(content string) []string {
	doc, src := parse(content)

	var buf bytes.Buffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.CodeBlock, *ast.FencedCodeBlock, *ast.HTMLBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			buf.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.WriteByte(' ')
			}
		default:
			if n.Type() == ast.TypeBlock {
				buf.WriteByte(' ')
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.Fields(buf.String())
}

// CleanWord strips leading and trailing runs of characters that are neither
// letters nor digits, so "(hello," becomes "hello".
func CleanWord(raw string) string {
	return strings.TrimFunc(raw, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
			continue
		}
		buf.WriteString(inlineText(c, src))
	}
	return buf.String()
}
