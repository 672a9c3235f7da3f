// Package ingest turns raw manuscript text into canonical manuscript model.
//
// Pipeline: normalize, split into chapters on headings, split chapters into
// scenes on scene breaks, split text into paragraphs, assemble the graph.
// Apart from reading the source (see ReadSource) nothing here fails: any
// text, including empty one, produces a valid project.
package ingest

import (
	"go.uber.org/zap"

	"unbound/classify"
	"unbound/manuscript"
)

// Meta is optional project metadata supplied by the caller.
type Meta struct {
	Title  string
	Author string
}

// Ingester runs ingestion pipeline. It is immutable after construction and
// safe for concurrent use.
type Ingester struct {
	log        *zap.Logger
	classifier *classify.Classifier
	normalizer *Normalizer
	ids        manuscript.IDSource
	typography bool
}

// Option configures Ingester.
type Option func(*Ingester)

func WithLogger(log *zap.Logger) Option {
	return func(in *Ingester) {
		if log != nil {
			in.log = log
		}
	}
}

func WithClassifier(c *classify.Classifier) Option {
	return func(in *Ingester) {
		if c != nil {
			in.classifier = c
		}
	}
}

func WithIDs(ids manuscript.IDSource) Option {
	return func(in *Ingester) {
		if ids != nil {
			in.ids = ids
		}
	}
}

// WithTypography turns on quote and dash normalization of prose, it is off by
// default.
func WithTypography(on bool) Option {
	return func(in *Ingester) {
		in.typography = on
	}
}

// New returns Ingester with default vocabulary, UUID identifiers and no
// logging unless options say otherwise.
func New(opts ...Option) *Ingester {
	in := &Ingester{
		log: zap.NewNop(),
		ids: manuscript.NewID,
	}
	for _, opt := range opts {
		opt(in)
	}
	if in.classifier == nil {
		in.classifier = classify.Default()
	}
	in.normalizer = NewNormalizer(in.classifier, in.typography)
	return in
}

var defaultIngester = New()

// Text ingests raw text with default settings.
func Text(raw string, meta Meta) *manuscript.Project {
	return defaultIngester.Ingest(raw, meta)
}

// Normalize returns normalized form of raw text.
func (in *Ingester) Normalize(raw string) string {
	return in.normalizer.Normalize(raw)
}

// Ingest builds project from raw text. All chapters go into a single body
// section.
func (in *Ingester) Ingest(raw string, meta Meta) *manuscript.Project {
	text := in.normalizer.Normalize(raw)
	blocks := SplitChapters(in.classifier, text)

	p := &manuscript.Project{
		ID:     in.ids(),
		Title:  meta.Title,
		Author: meta.Author,
	}
	body := &manuscript.Section{
		ID:       in.ids(),
		Kind:     manuscript.SectionKindBody,
		Order:    1,
		Chapters: make([]*manuscript.Chapter, 0, len(blocks)),
	}
	p.Sections = []*manuscript.Section{body}

	var scenes, paragraphs int
	for i, b := range blocks {
		ch := &manuscript.Chapter{
			ID:    in.ids(),
			Title: b.Heading,
			Order: i + 1,
		}
		split := SplitScenes(in.classifier, b.Content)
		if len(split.Scenes) > 0 {
			list := make(manuscript.Scenes, 0, len(split.Scenes))
			for j, s := range split.Scenes {
				sc := &manuscript.Scene{
					ID:         in.ids(),
					Order:      j + 1,
					Paragraphs: in.paragraphs(Paragraphize(s)),
				}
				paragraphs += len(sc.Paragraphs)
				list = append(list, sc)
			}
			scenes += len(list)
			ch.Body = list
		} else {
			list := in.paragraphs(split.Paragraphs)
			paragraphs += len(list)
			ch.Body = manuscript.Paragraphs(list)
		}
		if b.Heading != "" {
			in.log.Debug("Chapter detected", zap.Int("order", ch.Order), zap.String("heading", b.Heading),
				zap.Stringer("rule", b.Kind), zap.Int("scenes", len(ch.Scenes())))
		}
		body.Chapters = append(body.Chapters, ch)
	}

	in.log.Debug("Manuscript ingested",
		zap.Int("chapters", len(body.Chapters)),
		zap.Int("scenes", scenes),
		zap.Int("paragraphs", paragraphs),
		zap.Int("chars", len(text)))
	return p
}

func (in *Ingester) paragraphs(texts []string) []*manuscript.Paragraph {
	list := make([]*manuscript.Paragraph, 0, len(texts))
	for i, t := range texts {
		list = append(list, &manuscript.Paragraph{
			ID:      in.ids(),
			Order:   i + 1,
			Content: t,
		})
	}
	return list
}

// IngestFile reads manuscript from file and ingests it. Errors are always
// *InputError.
func (in *Ingester) IngestFile(path string, meta Meta, opts ...SourceOption) (*manuscript.Project, error) {
	raw, err := ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return in.Ingest(raw, meta), nil
}
