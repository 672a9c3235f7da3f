package manuscript

import (
	"encoding/json"
	"errors"
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// ErrAmbiguousChapter is returned when decoded chapter carries both scenes and
// paragraphs.
var ErrAmbiguousChapter = errors.New("chapter has both scenes and paragraphs")

// chapterWire is serialized form of Chapter: exactly one of the lists is
// present, an empty chapter gets empty paragraph list.
type chapterWire struct {
	ID         string        `json:"id" yaml:"id"`
	Title      string        `json:"title,omitempty" yaml:"title,omitempty"`
	Order      int           `json:"order" yaml:"order"`
	Scenes     *[]*Scene     `json:"scenes,omitempty" yaml:"scenes,omitempty"`
	Paragraphs *[]*Paragraph `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
}

func (c *Chapter) toWire() *chapterWire {
	w := &chapterWire{ID: c.ID, Title: c.Title, Order: c.Order}
	if s, ok := c.Body.(Scenes); ok && len(s) > 0 {
		scenes := []*Scene(s)
		w.Scenes = &scenes
		return w
	}
	paragraphs := []*Paragraph(c.Paragraphs())
	if paragraphs == nil {
		paragraphs = []*Paragraph{}
	}
	w.Paragraphs = &paragraphs
	return w
}

func (c *Chapter) fromWire(w *chapterWire) error {
	if w.Scenes != nil && w.Paragraphs != nil {
		return fmt.Errorf("chapter %q: %w", w.ID, ErrAmbiguousChapter)
	}
	c.ID, c.Title, c.Order = w.ID, w.Title, w.Order
	switch {
	case w.Scenes != nil && len(*w.Scenes) > 0:
		c.Body = Scenes(*w.Scenes)
	case w.Paragraphs != nil:
		c.Body = Paragraphs(*w.Paragraphs)
	default:
		c.Body = Paragraphs{}
	}
	return nil
}

func (c Chapter) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.toWire())
}

func (c *Chapter) UnmarshalJSON(data []byte) error {
	var w chapterWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return c.fromWire(&w)
}

func (c Chapter) MarshalYAML() (any, error) {
	return c.toWire(), nil
}

func (c *Chapter) UnmarshalYAML(value *yaml.Node) error {
	var w chapterWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	return c.fromWire(&w)
}

// Decode reads project from its JSON form.
func Decode(data []byte) (*Project, error) {
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unable to decode project: %w", err)
	}
	return &p, nil
}
