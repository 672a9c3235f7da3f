// Package text has helpers splitting prose into sentences and words.
package text

import (
	"iter"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Splitter breaks prose into sentences. Nil Splitter is valid and treats the
// whole input as a single sentence.
type Splitter struct {
	*sentences.DefaultSentenceTokenizer
}

// NewSplitter returns splitter for requested language. Only English training
// data is available, for other languages nil is returned and sentence
// splitting is off.
func NewSplitter(lang language.Tag, log *zap.Logger) *Splitter {
	if base, confidence := lang.Base(); confidence == language.No || base != englishBase {
		log.Warn("Unable to find suitable sentence tokenizer model, turning off sentence splitting", zap.Stringer("language", lang))
		return nil
	}
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		log.Warn("Unable to load sentences tokenizer data", zap.Stringer("language", lang), zap.Error(err))
		return nil
	}
	return &Splitter{tok}
}

var englishBase, _ = language.English.Base()

// Split returns slice of sentences, whitespace following a sentence stays
// with it.
func (s *Splitter) Split(in string) []string {
	var out []string
	for sentence := range s.Sentences(in) {
		out = append(out, sentence)
	}
	return out
}

// Sentences returns an iterator over sentences.
func (s *Splitter) Sentences(in string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if s == nil {
			if strings.TrimSpace(in) != "" {
				yield(in)
			}
			return
		}

		tokens := s.Tokenize(in)
		for i := range tokens {
			text := tokens[i].Text
			// Tokenizer attaches trailing spaces of a sentence to the next
			// one, move them back.
			if i+1 < len(tokens) {
				next := tokens[i+1].Text
				idx := strings.IndexFunc(next, func(r rune) bool { return !unicode.IsSpace(r) })
				if idx < 0 {
					idx = len(next)
				}
				text += next[:idx]
				tokens[i+1].Text = next[idx:]
			}
			if strings.TrimSpace(text) == "" {
				continue
			}
			if !yield(text) {
				return
			}
		}
	}
}

// CountSentences returns number of sentences in the input.
func (s *Splitter) CountSentences(in string) int {
	n := 0
	for range s.Sentences(in) {
		n++
	}
	return n
}
