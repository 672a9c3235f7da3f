package classify

import (
	"strings"
)

var (
	cardinalUnits = [...]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"}
	ordinalUnits = [...]string{"", "first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth",
		"tenth", "eleventh", "twelfth", "thirteenth", "fourteenth", "fifteenth", "sixteenth", "seventeenth", "eighteenth", "nineteenth"}
	cardinalTens = [...]string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
	ordinalTens  = [...]string{"", "", "twentieth", "thirtieth", "fortieth", "fiftieth", "sixtieth", "seventieth", "eightieth", "ninetieth"}
)

// numberWords returns English cardinal and ordinal spelling of n (1-99), compound
// forms are hyphenated.
func numberWords(n int) (cardinal, ordinal string) {
	if n <= 0 || n > maxOrdinalSupported {
		return "", ""
	}
	if n < 20 {
		return cardinalUnits[n], ordinalUnits[n]
	}
	t, u := n/10, n%10
	if u == 0 {
		return cardinalTens[t], ordinalTens[t]
	}
	return cardinalTens[t] + "-" + cardinalUnits[u], cardinalTens[t] + "-" + ordinalUnits[u]
}

// buildNumberWords prepares lookup table for all spellings up to limit.
func buildNumberWords(limit int) map[string]int {
	words := make(map[string]int, 2*limit)
	for n := 1; n <= limit; n++ {
		c, o := numberWords(n)
		words[c], words[o] = n, n
	}
	return words
}

// foldNumberWord brings "Twenty One", "twenty - one" and "TWENTY-ONE" to the
// same form.
func foldNumberWord(s string) string {
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '-' || r == ' ' || r == '\t'
	})
	return strings.Join(parts, "-")
}

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func toRoman(n int) string {
	var b strings.Builder
	for _, r := range romanTable {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}

// parseRoman returns value of well formed roman numeral (case insensitive),
// anything not in canonical form ("IIII", "VX", "IC") is rejected.
func parseRoman(s string) (int, bool) {
	s = strings.ToUpper(s)
	if len(s) == 0 {
		return 0, false
	}
	n, rest := 0, s
	for _, r := range romanTable {
		for strings.HasPrefix(rest, r.symbol) {
			n += r.value
			rest = rest[len(r.symbol):]
		}
	}
	if len(rest) != 0 || n == 0 || n > maxRomanSupported || toRoman(n) != s {
		return 0, false
	}
	return n, true
}
