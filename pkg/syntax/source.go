package syntax

import "github.com/codetidy/codetidy/pkg/token"

// SourceFile binds a parsed syntax tree to the text it came from.
// It is created once per input and never mutated after parse.
type SourceFile struct {
	Path     string
	Text     string
	Root     *Node
	Comments []*token.Comment
}

// NewSourceFile creates a source file value.
func NewSourceFile(path, text string, root *Node, comments []*token.Comment) *SourceFile {
	return &SourceFile{
		Path:     path,
		Text:     text,
		Root:     root,
		Comments: comments,
	}
}

// Len returns the length of the source text in bytes.
func (f *SourceFile) Len() int {
	return len(f.Text)
}

// Snippet returns the source text covered by a span, clamped to the
// file bounds.
func (f *SourceFile) Snippet(span token.Span) string {
	start, end := span.Start.Offset, span.End.Offset
	if start < 0 {
		start = 0
	}
	if end > len(f.Text) {
		end = len(f.Text)
	}
	if start >= end {
		return ""
	}
	return f.Text[start:end]
}
