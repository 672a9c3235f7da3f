package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/beevik/etree"
	yaml "gopkg.in/yaml.v3"

	"unbound/common"
	"unbound/manuscript"
)

// Generate writes project in requested format.
func Generate(w io.Writer, p *manuscript.Project, format common.OutputFmt, pretty bool) error {
	switch format {
	case common.OutputFmtJson:
		return writeJSON(w, p, pretty)
	case common.OutputFmtYaml:
		return writeYAML(w, p)
	case common.OutputFmtXml:
		return writeXML(w, p, pretty)
	case common.OutputFmtTree:
		_, err := io.WriteString(w, p.String())
		return err
	default:
		return fmt.Errorf("unsupported output format %s", format)
	}
}

func writeJSON(w io.Writer, p *manuscript.Project, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(p)
}

func writeYAML(w io.Writer, p *manuscript.Project) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}

// buildXML mirrors json layout: chapter holds either scene or paragraph
// elements, never both.
func buildXML(p *manuscript.Project) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	project := doc.CreateElement("project")
	project.CreateAttr("id", p.ID)
	if p.Title != "" {
		project.CreateAttr("title", p.Title)
	}
	if p.Author != "" {
		project.CreateAttr("author", p.Author)
	}

	for _, s := range p.Sections {
		section := project.CreateElement("section")
		section.CreateAttr("id", s.ID)
		section.CreateAttr("kind", s.Kind.String())
		section.CreateAttr("order", strconv.Itoa(s.Order))

		for _, c := range s.Chapters {
			chapter := section.CreateElement("chapter")
			chapter.CreateAttr("id", c.ID)
			chapter.CreateAttr("order", strconv.Itoa(c.Order))
			chapter.CreateAttr("title", c.Title)

			if c.HasScenes() {
				for _, sc := range c.Scenes() {
					scene := chapter.CreateElement("scene")
					scene.CreateAttr("id", sc.ID)
					scene.CreateAttr("order", strconv.Itoa(sc.Order))
					xmlParagraphs(scene, sc.Paragraphs)
				}
				continue
			}
			xmlParagraphs(chapter, c.Paragraphs())
		}
	}
	return doc
}

func xmlParagraphs(parent *etree.Element, list []*manuscript.Paragraph) {
	for _, para := range list {
		el := parent.CreateElement("paragraph")
		el.CreateAttr("id", para.ID)
		el.CreateAttr("order", strconv.Itoa(para.Order))
		el.SetText(para.Content)
	}
}

func writeXML(w io.Writer, p *manuscript.Project, pretty bool) error {
	doc := buildXML(p)
	if pretty {
		doc.Indent(2)
	}
	_, err := doc.WriteTo(w)
	return err
}
