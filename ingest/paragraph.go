package ingest

import (
	"regexp"
	"strings"
)

// Two or more line breaks, lines with whitespace only count as empty.
var reParagraphBreak = regexp.MustCompile(`\n\s*\n`)

// Paragraphize splits block of text into paragraphs on blank lines. Lines
// inside a paragraph are joined with a space.
func Paragraphize(block string) []string {
	var paragraphs []string
	for _, chunk := range reParagraphBreak.Split(block, -1) {
		chunk = strings.TrimSpace(chunk)
		if len(chunk) == 0 {
			continue
		}
		if strings.Contains(chunk, "\n") {
			lines := strings.Split(chunk, "\n")
			for i := range lines {
				lines[i] = strings.TrimSpace(lines[i])
			}
			chunk = strings.Join(lines, " ")
		}
		paragraphs = append(paragraphs, chunk)
	}
	return paragraphs
}
