package manuscript

import (
	"unbound/utils/debug"
)

const contentPreview = 60

// String returns indented tree of the project for debugging.
func (p *Project) String() string {
	tw := debug.NewTreeWriter().WithLimit(contentPreview)
	tw.Line(0, "Project id=%s title=%q author=%q words=%d", p.ID, p.Title, p.Author, p.WordCount())
	for _, s := range p.Sections {
		tw.Line(1, "Section #%d %s id=%s chapters=%d", s.Order, s.Kind, s.ID, len(s.Chapters))
		for _, c := range s.Chapters {
			title := c.Title
			if c.Implicit() {
				title = "<implicit>"
			}
			tw.Line(2, "Chapter #%d %q id=%s words=%d", c.Order, title, c.ID, c.WordCount())
			switch b := c.Body.(type) {
			case Scenes:
				for _, sc := range b {
					tw.Line(3, "Scene #%d id=%s paragraphs=%d", sc.Order, sc.ID, len(sc.Paragraphs))
					dumpParagraphs(tw, 4, sc.Paragraphs)
				}
			case Paragraphs:
				dumpParagraphs(tw, 3, b)
			}
		}
	}
	return tw.String()
}

func dumpParagraphs(tw *debug.TreeWriter, depth int, list []*Paragraph) {
	for _, p := range list {
		tw.Line(depth, "Paragraph #%d id=%s words=%d", p.Order, p.ID, p.WordCount())
		tw.TextBlock(depth+1, "content", p.Content)
	}
}
