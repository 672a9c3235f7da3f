package manuscript

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	ErrMissingID   = errors.New("missing id")
	ErrDuplicateID = errors.New("duplicate id")
	ErrBadOrder    = errors.New("order is not contiguous from 1")
	ErrBadBody     = errors.New("invalid chapter body")
)

// Validate checks structural invariants of the whole graph and reports all
// violations found.
func (p *Project) Validate() (err error) {
	seen := make(map[string]string)
	checkID := func(what, id string) {
		if len(id) == 0 {
			err = multierr.Append(err, fmt.Errorf("%s: %w", what, ErrMissingID))
			return
		}
		if prev, ok := seen[id]; ok {
			err = multierr.Append(err, fmt.Errorf("%s and %s share %q: %w", prev, what, id, ErrDuplicateID))
			return
		}
		seen[id] = what
	}
	checkOrder := func(what string, got, want int) {
		if got != want {
			err = multierr.Append(err, fmt.Errorf("%s has order %d, expected %d: %w", what, got, want, ErrBadOrder))
		}
	}
	checkParagraphs := func(parent string, list []*Paragraph) {
		for i, para := range list {
			what := fmt.Sprintf("%s/paragraph[%d]", parent, i)
			checkID(what, para.ID)
			checkOrder(what, para.Order, i+1)
		}
	}

	checkID("project", p.ID)
	for i, s := range p.Sections {
		sw := fmt.Sprintf("section[%d]", i)
		checkID(sw, s.ID)
		checkOrder(sw, s.Order, i+1)
		if !s.Kind.IsValid() {
			err = multierr.Append(err, fmt.Errorf("%s: %w", sw, ErrInvalidSectionKind))
		}
		for j, c := range s.Chapters {
			cw := fmt.Sprintf("%s/chapter[%d]", sw, j)
			checkID(cw, c.ID)
			checkOrder(cw, c.Order, j+1)
			switch b := c.Body.(type) {
			case Scenes:
				if len(b) == 0 {
					err = multierr.Append(err, fmt.Errorf("%s has empty scene list: %w", cw, ErrBadBody))
				}
				for k, sc := range b {
					scw := fmt.Sprintf("%s/scene[%d]", cw, k)
					checkID(scw, sc.ID)
					checkOrder(scw, sc.Order, k+1)
					checkParagraphs(scw, sc.Paragraphs)
				}
			case Paragraphs:
				checkParagraphs(cw, b)
			default:
				err = multierr.Append(err, fmt.Errorf("%s has no body: %w", cw, ErrBadBody))
			}
		}
	}
	return err
}
