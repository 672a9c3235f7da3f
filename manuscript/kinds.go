package manuscript

//go:generate go tool go-enum --marshal --names --nocase

// Part of the book section belongs to. Ingestion produces body only, the rest
// is reserved for material added by the author later.
// ENUM(frontMatter, body, backMatter)
type SectionKind int
