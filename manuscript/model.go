// Package manuscript defines canonical structure of an ingested manuscript:
// project, sections, chapters, optional scenes and paragraphs. The model
// carries text only, no presentation attributes of any kind.
package manuscript

import (
	"iter"
	"strings"
)

// Project is the root of a manuscript.
type Project struct {
	ID       string     `json:"id" yaml:"id"`
	Title    string     `json:"title,omitempty" yaml:"title,omitempty"`
	Author   string     `json:"author,omitempty" yaml:"author,omitempty"`
	Sections []*Section `json:"sections" yaml:"sections"`
}

// Section groups chapters of the same kind.
type Section struct {
	ID       string      `json:"id" yaml:"id"`
	Kind     SectionKind `json:"kind" yaml:"kind"`
	Order    int         `json:"order" yaml:"order"`
	Chapters []*Chapter  `json:"chapters" yaml:"chapters"`
}

// Chapter holds either scenes or paragraphs, never both. Title is empty for
// the implicit chapter collecting text before the first heading or text
// without headings at all.
type Chapter struct {
	ID    string
	Title string
	Order int
	Body  ChapterBody
}

// ChapterBody is implemented by Scenes and Paragraphs only.
type ChapterBody interface {
	isChapterBody()
	Len() int
}

// Scenes is chapter body split by scene breaks.
type Scenes []*Scene

// Paragraphs is chapter body without scene breaks.
type Paragraphs []*Paragraph

func (Scenes) isChapterBody()     {}
func (Paragraphs) isChapterBody() {}

func (s Scenes) Len() int     { return len(s) }
func (p Paragraphs) Len() int { return len(p) }

// Scene is a run of paragraphs between scene breaks.
type Scene struct {
	ID         string       `json:"id" yaml:"id"`
	Order      int          `json:"order" yaml:"order"`
	Paragraphs []*Paragraph `json:"paragraphs" yaml:"paragraphs"`
}

// Paragraph is plain text with hard wraps removed.
type Paragraph struct {
	ID      string `json:"id" yaml:"id"`
	Order   int    `json:"order" yaml:"order"`
	Content string `json:"content" yaml:"content"`
}

// Implicit reports whether chapter was not introduced by a heading.
func (c *Chapter) Implicit() bool {
	return len(c.Title) == 0
}

// HasScenes reports whether chapter body is split into scenes.
func (c *Chapter) HasScenes() bool {
	s, ok := c.Body.(Scenes)
	return ok && len(s) > 0
}

// Scenes returns chapter scenes or nil when chapter has paragraphs directly.
func (c *Chapter) Scenes() []*Scene {
	if s, ok := c.Body.(Scenes); ok {
		return s
	}
	return nil
}

// Paragraphs returns chapter paragraphs or nil when chapter is split into
// scenes.
func (c *Chapter) Paragraphs() []*Paragraph {
	if p, ok := c.Body.(Paragraphs); ok {
		return p
	}
	return nil
}

// AllParagraphs iterates over chapter paragraphs in reading order regardless
// of the body variant.
func (c *Chapter) AllParagraphs() iter.Seq[*Paragraph] {
	return func(yield func(*Paragraph) bool) {
		switch b := c.Body.(type) {
		case Scenes:
			for _, s := range b {
				for _, p := range s.Paragraphs {
					if !yield(p) {
						return
					}
				}
			}
		case Paragraphs:
			for _, p := range b {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// AllChapters iterates over chapters of all sections in order.
func (p *Project) AllChapters() iter.Seq[*Chapter] {
	return func(yield func(*Chapter) bool) {
		for _, s := range p.Sections {
			for _, c := range s.Chapters {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Section returns first section of requested kind or nil.
func (p *Project) Section(kind SectionKind) *Section {
	for _, s := range p.Sections {
		if s.Kind == kind {
			return s
		}
	}
	return nil
}

// WordCount returns number of whitespace separated words.
func (p *Paragraph) WordCount() int {
	return len(strings.Fields(p.Content))
}

func (s *Scene) WordCount() int {
	n := 0
	for _, p := range s.Paragraphs {
		n += p.WordCount()
	}
	return n
}

func (c *Chapter) WordCount() int {
	n := 0
	for p := range c.AllParagraphs() {
		n += p.WordCount()
	}
	return n
}

func (p *Project) WordCount() int {
	n := 0
	for c := range p.AllChapters() {
		n += c.WordCount()
	}
	return n
}
