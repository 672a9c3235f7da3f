// Package stats computes manuscript statistics: words, characters,
// paragraphs, scenes and sentences per chapter and for the whole project.
package stats

import (
	"unicode"
	"unicode/utf8"

	"unbound/manuscript"
	"unbound/text"
)

// Counts are text measurements of a part of manuscript.
type Counts struct {
	Words              int `json:"words" yaml:"words"`
	Characters         int `json:"characters" yaml:"characters"`
	CharactersNoSpaces int `json:"characters_no_spaces" yaml:"characters_no_spaces"`
	Paragraphs         int `json:"paragraphs" yaml:"paragraphs"`
	Sentences          int `json:"sentences" yaml:"sentences"`
}

func (c *Counts) add(o Counts) {
	c.Words += o.Words
	c.Characters += o.Characters
	c.CharactersNoSpaces += o.CharactersNoSpaces
	c.Paragraphs += o.Paragraphs
	c.Sentences += o.Sentences
}

// Chapter holds statistics of a single chapter.
type Chapter struct {
	Order  int    `json:"order" yaml:"order"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	Scenes int    `json:"scenes" yaml:"scenes"`
	Counts `yaml:",inline"`
}

// Report holds statistics of the whole project.
type Report struct {
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	Author   string    `json:"author,omitempty" yaml:"author,omitempty"`
	Chapters []Chapter `json:"chapters" yaml:"chapters"`
	Scenes   int       `json:"scenes" yaml:"scenes"`
	Counts   `yaml:",inline"`
}

// Compute walks the project once. Nil splitter counts every non empty
// paragraph as a single sentence.
func Compute(p *manuscript.Project, s *text.Splitter) *Report {
	r := &Report{
		Title:    p.Title,
		Author:   p.Author,
		Chapters: []Chapter{},
	}
	for c := range p.AllChapters() {
		ch := Chapter{
			Order:  c.Order,
			Title:  c.Title,
			Scenes: len(c.Scenes()),
		}
		for para := range c.AllParagraphs() {
			ch.add(paragraph(para, s))
		}
		r.Chapters = append(r.Chapters, ch)
		r.Scenes += ch.Scenes
		r.add(ch.Counts)
	}
	return r
}

func paragraph(p *manuscript.Paragraph, s *text.Splitter) Counts {
	c := Counts{
		Words:      p.WordCount(),
		Characters: utf8.RuneCountInString(p.Content),
		Paragraphs: 1,
		Sentences:  s.CountSentences(p.Content),
	}
	for _, r := range p.Content {
		if !unicode.IsSpace(r) {
			c.CharactersNoSpaces++
		}
	}
	return c
}
