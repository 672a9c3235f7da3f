package ingest

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/rangetable"

	"unbound/classify"
)

// maxBlankLines is the number of consecutive empty lines kept between blocks.
const maxBlankLines = 2

var (
	invisible  = rangetable.New('\u200B', '\u200C', '\u200D', '\u2060', '\uFEFF')
	lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	quotes     = strings.NewReplacer("“", `"`, "”", `"`, "„", `"`, "‘", "'", "’", "'", "‚", "'")
)

// Normalizer brings raw manuscript text to canonical form: "\n" line endings,
// no invisible code points, hard wraps removed, at most two blank lines in a
// row. Word content, punctuation and casing are never changed unless
// typography normalization was requested. Normalizer is safe for concurrent
// use and Normalize is idempotent.
type Normalizer struct {
	c          *classify.Classifier
	typography bool
}

// NewNormalizer returns normalizer which uses c to keep structural lines
// intact. With typography curly quotes become straight and double hyphens em
// dashes in folded prose lines.
func NewNormalizer(c *classify.Classifier, typography bool) *Normalizer {
	if c == nil {
		c = classify.Default()
	}
	return &Normalizer{c: c, typography: typography}
}

// Normalize returns canonical form of raw text.
func (n *Normalizer) Normalize(raw string) string {
	text := canonicalize(raw)

	var (
		out    = make([]string, 0, strings.Count(text, "\n")+1)
		buf    []string
		blanks int
	)

	flush := func() {
		if len(buf) == 0 {
			return
		}
		joined := collapse(strings.Join(buf, " "))
		if len(buf) > 1 && n.structural(joined) {
			// Lines which are not headings or scene breaks on their own never
			// make one together ("THE\nEND" stays prose). They are kept as
			// they were, without typography, so the next pass sees the same
			// joined text.
			for _, l := range buf {
				out = append(out, collapse(l))
			}
		} else {
			out = append(out, n.prose(joined))
		}
		buf = buf[:0]
	}

	for line := range strings.SplitSeq(text, "\n") {
		t := strings.TrimSpace(line)
		switch {
		case len(t) == 0:
			flush()
			if blanks++; blanks <= maxBlankLines {
				out = append(out, "")
			}
		case n.structural(t):
			flush()
			blanks = 0
			out = append(out, t)
		default:
			blanks = 0
			buf = append(buf, t)
		}
	}
	flush()

	for len(out) > 0 && len(out[0]) == 0 {
		out = out[1:]
	}
	for len(out) > 0 && len(out[len(out)-1]) == 0 {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

func (n *Normalizer) structural(line string) bool {
	return n.c.IsSceneBreak(line) || n.c.IsHeading(line)
}

// prose applies optional typography to a prose line, unless that would turn
// it into a structural one.
func (n *Normalizer) prose(line string) string {
	if !n.typography {
		return line
	}
	if r := typography(line); !n.structural(r) {
		return r
	}
	return line
}

// canonicalize handles code point level normalization.
func canonicalize(raw string) string {
	text := lineBreaks.Replace(raw)
	t := transform.Chain(
		runes.Remove(runes.In(invisible)),
		runes.Map(func(r rune) rune {
			switch r {
			case '\u00A0', '\u2007', '\u202F':
				return ' '
			case '\u2028', '\u2029':
				return '\n'
			}
			return r
		}),
	)
	if out, _, err := transform.String(t, text); err == nil {
		return out
	}
	return text
}

// collapse replaces runs of whitespace with single space.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// typography straightens quotes and turns exactly two hyphens into em dash,
// longer hyphen runs are left alone.
func typography(s string) string {
	s = quotes.Replace(s)
	if !strings.Contains(s, "--") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '-' {
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size
			continue
		}
		j := i
		for j < len(s) && s[j] == '-' {
			j++
		}
		if j-i == 2 {
			b.WriteRune('—')
		} else {
			b.WriteString(s[i:j])
		}
		i = j
	}
	return b.String()
}
