package classify

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// rule is a single heading test, rules are evaluated in order and the first
// match wins.
type rule struct {
	kind  HeadingKind
	match func(line string) bool
}

// Classifier recognizes heading and scene break lines. It is immutable and safe
// for concurrent use.
type Classifier struct {
	vocab   Vocabulary
	rules   []rule
	numbers map[string]int
	special map[string]struct{}
	ignore  map[string]struct{}
}

var (
	reDesignated = regexp.MustCompile(`(?i)^(chapter|part)\s+(.+?)\s*[:.\-]?$`)
	reDigits     = regexp.MustCompile(`^\d+$`)
	reNumeric    = regexp.MustCompile(`^\d+[:.\-]?$`)
)

// New builds classifier from vocabulary.
func New(v Vocabulary) *Classifier {
	c := &Classifier{
		vocab:   v.clone(),
		special: make(map[string]struct{}, len(v.SpecialWords)),
		ignore:  make(map[string]struct{}, len(v.IgnoreWords)),
	}
	c.numbers = buildNumberWords(c.vocab.MaxOrdinal)
	for _, w := range c.vocab.SpecialWords {
		c.special[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	for _, w := range c.vocab.IgnoreWords {
		c.ignore[strings.ToUpper(strings.TrimSpace(w))] = struct{}{}
	}

	c.rules = []rule{
		{HeadingKindChapter, func(line string) bool { return c.designated(line, "chapter") }},
		{HeadingKindPart, func(line string) bool { return c.designated(line, "part") }},
		{HeadingKindSpecial, c.specialWord},
		{HeadingKindNumeric, reNumeric.MatchString},
	}
	if c.vocab.CapsFallback {
		c.rules = append(c.rules, rule{HeadingKindAllCapsFallback, c.allCaps})
	}
	return c
}

// Default returns classifier with DefaultVocabulary.
func Default() *Classifier {
	return New(DefaultVocabulary())
}

// Vocabulary returns copy of vocabulary classifier was built with.
func (c *Classifier) Vocabulary() Vocabulary {
	return c.vocab.clone()
}

// Heading reports whether line is a chapter heading and which rule recognized
// it. Surrounding whitespace is ignored.
func (c *Classifier) Heading(line string) (HeadingKind, bool) {
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return HeadingKindNone, false
	}
	for _, r := range c.rules {
		if r.match(line) {
			return r.kind, true
		}
	}
	return HeadingKindNone, false
}

// IsHeading is a shortcut for Heading when kind is not needed.
func (c *Classifier) IsHeading(line string) bool {
	_, ok := c.Heading(line)
	return ok
}

// designated matches "Chapter 7", "PART IV.", "chapter twenty-one:".
func (c *Classifier) designated(line, prefix string) bool {
	m := reDesignated.FindStringSubmatch(line)
	if m == nil || !strings.EqualFold(m[1], prefix) {
		return false
	}
	id := m[2]
	if reDigits.MatchString(id) {
		_, err := strconv.Atoi(id)
		return err == nil
	}
	if n, ok := c.numbers[foldNumberWord(id)]; ok {
		return n <= c.vocab.MaxOrdinal
	}
	if n, ok := parseRoman(id); ok {
		return n <= c.vocab.MaxRoman
	}
	return false
}

func (c *Classifier) specialWord(line string) bool {
	if last, size := utf8.DecodeLastRuneInString(line); strings.ContainsRune(":.-!", last) {
		line = strings.TrimSpace(line[:len(line)-size])
	}
	_, ok := c.special[strings.ToLower(line)]
	return ok
}

// allCaps is the last resort: short shouted lines like "THE LONG NIGHT".
func (c *Classifier) allCaps(line string) bool {
	if utf8.RuneCountInString(line) < c.vocab.CapsMinLength {
		return false
	}
	words := strings.Fields(line)
	if len(words) < c.vocab.CapsMinWords {
		return false
	}
	upper := false
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			upper = true
		}
	}
	return upper && !c.interjection(words)
}

// interjection recognizes emphasis such as "WARNING: DO NOT ENTER" or
// "STOP STOP STOP".
func (c *Classifier) interjection(words []string) bool {
	if len(c.ignore) == 0 {
		return false
	}
	if first := words[0]; strings.HasSuffix(first, ":") || strings.HasSuffix(first, "!") {
		if _, ok := c.ignore[strings.TrimRight(first, ":!")]; ok {
			return true
		}
	}
	for _, w := range words {
		if _, ok := c.ignore[strings.TrimFunc(w, isNotLetter)]; !ok {
			return false
		}
	}
	return true
}

func isNotLetter(r rune) bool {
	return !unicode.IsLetter(r)
}
