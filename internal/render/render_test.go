package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func line(s string) Block { return Block{Kind: Line, Text: s} }
func code(s string) Block { return Block{Kind: Code, Text: s} }

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Block
	}{
		{
			name: "code between lines",
			in:   "a\n```code```\nb",
			want: []Block{line("a"), code("code"), line("b")},
		},
		{
			name: "unmatched marker stays text",
			in:   "before\n```go\nfmt.Println()",
			want: []Block{line("before"), line("```go"), line("fmt.Println()")},
		},
		{
			name: "third marker unpaired",
			in:   "```one``` mid ```tail",
			want: []Block{code("one"), line(" mid ```tail")},
		},
		{
			name: "code trimmed",
			in:   "```\n  x := 1\n\n```",
			want: []Block{code("x := 1")},
		},
		{
			name: "multiline text",
			in:   "first\nsecond\n\nfourth",
			want: []Block{line("first"), line("second"), line(""), line("fourth")},
		},
		{
			name: "adjacent fences",
			in:   "```a``````b```",
			want: []Block{code("a"), code("b")},
		},
		{
			name: "crlf around fence",
			in:   "a\r\n```b```\r\nc",
			want: []Block{line("a"), code("b"), line("c")},
		},
		{
			name: "blank line before fence is kept",
			in:   "a\n\n```b```",
			want: []Block{line("a"), line(""), code("b")},
		},
		{
			name: "empty text",
			in:   "",
			want: []Block{line("")},
		},
		{
			name: "emoji prefix",
			in:   "❌ Error: Prompt is required",
			want: []Block{line("❌ Error: Prompt is required")},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Parse(tc.in))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "line", Line.String())
	assert.Equal(t, "code", Code.String())
}
