// Package render splits message text into display blocks: fenced code and plain lines.
package render

import (
	"regexp"
	"strings"
)

type Kind int

const (
	Line Kind = iota
	Code
)

func (k Kind) String() string {
	if k == Code {
		return "code"
	}
	return "line"
}

// Block is one unit of rendered output. A Line block never contains a newline.
type Block struct {
	Kind Kind
	Text string
}

var fence = regexp.MustCompile("(?s)```(.*?)```")

// Parse pairs triple-backtick markers left to right. Content inside a pair becomes a
// trimmed Code block; everything else is split on newlines into Line blocks. A trailing
// unpaired marker is kept as ordinary text. The newline directly touching a fence only
// separates it from the text and produces no empty line.
func Parse(text string) []Block {
	var blocks []Block
	pos := 0
	for _, m := range fence.FindAllStringSubmatchIndex(text, -1) {
		blocks = appendLines(blocks, text[pos:m[0]], pos > 0, true)
		blocks = append(blocks, Block{Kind: Code, Text: strings.TrimSpace(text[m[2]:m[3]])})
		pos = m[1]
	}
	return appendLines(blocks, text[pos:], pos > 0, false)
}

func appendLines(blocks []Block, segment string, afterFence, beforeFence bool) []Block {
	if afterFence {
		segment = trimNewline(segment, strings.TrimPrefix)
	}
	if beforeFence {
		segment = trimNewline(segment, strings.TrimSuffix)
	}
	if segment == "" && (afterFence || beforeFence) {
		return blocks
	}
	for _, line := range strings.Split(segment, "\n") {
		blocks = append(blocks, Block{Kind: Line, Text: strings.TrimSuffix(line, "\r")})
	}
	return blocks
}

func trimNewline(s string, trim func(string, string) string) string {
	if t := trim(s, "\r\n"); t != s {
		return t
	}
	return trim(s, "\n")
}
