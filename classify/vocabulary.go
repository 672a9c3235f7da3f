// Package classify recognizes structural lines of a manuscript: chapter
// headings and scene breaks. Everything else is prose.
//
// Recognition is conservative - when in doubt a line is prose. A missed
// heading costs the author one manual split, an invented one silently breaks
// a paragraph in two.
package classify

import (
	"slices"
)

// Vocabulary is the configuration data heading rules are built from. It is
// copied into the Classifier on construction and never shared afterwards.
type Vocabulary struct {
	// Highest number accepted as an English number word after
	// "Chapter"/"Part" (cardinal "twenty-five" or ordinal "twenty-fifth").
	MaxOrdinal int
	// Highest roman numeral accepted after "Chapter"/"Part".
	MaxRoman int
	// Words which are headings on their own.
	SpecialWords []string
	// All caps words which are emphasis rather than titles.
	IgnoreWords []string

	CapsFallback  bool
	CapsMinLength int
	CapsMinWords  int
}

const (
	// Limits of what number word tables and roman numeral rendering support.
	maxOrdinalSupported = 99
	maxRomanSupported   = 3999
)

// DefaultVocabulary returns English vocabulary used when nothing else is
// configured.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		MaxOrdinal:    25,
		MaxRoman:      50,
		SpecialWords:  []string{"Prologue", "Epilogue", "Preface", "Introduction", "Foreword", "Afterword", "Interlude"},
		IgnoreWords:   []string{"NOTE", "STOP", "IMPORTANT", "WARNING", "CAUTION", "INFO"},
		CapsFallback:  true,
		CapsMinLength: 6,
		CapsMinWords:  2,
	}
}

func (v Vocabulary) clone() Vocabulary {
	v.SpecialWords = slices.Clone(v.SpecialWords)
	v.IgnoreWords = slices.Clone(v.IgnoreWords)
	v.MaxOrdinal = min(max(v.MaxOrdinal, 0), maxOrdinalSupported)
	v.MaxRoman = min(max(v.MaxRoman, 0), maxRomanSupported)
	return v
}
