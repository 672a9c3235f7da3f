package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const emDash = '—'

// IsSceneBreak reports whether line consists solely of a run of at least three
// identical break symbols ("***", "---", "###", "———"), possibly spaced out
// ("* * *", "# # #").
func (c *Classifier) IsSceneBreak(line string) bool {
	return isSceneBreak(line)
}

func isSceneBreak(line string) bool {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)
	if utf8.RuneCountInString(compact) < 3 {
		return false
	}
	first, _ := utf8.DecodeRuneInString(compact)
	switch first {
	case '*', '-', '#', emDash:
	default:
		return false
	}
	for _, r := range compact {
		if r != first {
			return false
		}
	}
	return true
}
