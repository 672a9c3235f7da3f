package classify

//go:generate go tool go-enum --marshal --names --nocase

// Kind of rule which recognized a heading line.
// ENUM(none, chapter, part, special, numeric, allCapsFallback)
type HeadingKind int

// Explicit reports whether heading was recognized by its wording rather than
// by typography.
func (k HeadingKind) Explicit() bool {
	return k == HeadingKindChapter || k == HeadingKindPart || k == HeadingKindSpecial
}
