package ingest

import (
	"strings"

	"unbound/classify"
)

// ChapterBlock is a piece of normalized text belonging to a single chapter.
// Heading is empty for text which precedes the first heading.
type ChapterBlock struct {
	Heading string
	Kind    classify.HeadingKind
	Content string
}

// SplitChapters splits text on heading lines. Text before the first heading
// becomes an untitled block, text without headings at all a single untitled
// block. Consecutive headings produce blocks with empty content.
func SplitChapters(c *classify.Classifier, text string) []ChapterBlock {
	var (
		blocks  []ChapterBlock
		current ChapterBlock
		buf     []string
		started bool
	)

	for line := range strings.SplitSeq(text, "\n") {
		t := strings.TrimSpace(line)
		kind, ok := c.Heading(t)
		if !ok {
			buf = append(buf, line)
			continue
		}
		if started || hasText(buf) {
			current.Content = joinLines(buf)
			blocks = append(blocks, current)
		}
		current = ChapterBlock{Heading: t, Kind: kind}
		started = true
		buf = buf[:0]
	}
	if started || hasText(buf) {
		current.Content = joinLines(buf)
		blocks = append(blocks, current)
	}

	if len(blocks) == 0 {
		return []ChapterBlock{{Content: strings.TrimSpace(text)}}
	}
	return blocks
}

// SceneSplit is result of scene segmentation: either scenes or paragraphs,
// never both.
type SceneSplit struct {
	Scenes     []string
	Paragraphs []string
}

// SplitScenes splits chapter content on scene break lines. Without any break
// chapter paragraphs are returned directly, there is no single implicit scene.
// Scenes which would be empty (break at the very beginning or end, repeated
// breaks) are dropped.
func SplitScenes(c *classify.Classifier, content string) SceneSplit {
	var (
		scenes []string
		buf    []string
		broken bool
	)

	for line := range strings.SplitSeq(content, "\n") {
		if !c.IsSceneBreak(strings.TrimSpace(line)) {
			buf = append(buf, line)
			continue
		}
		broken = true
		if hasText(buf) {
			scenes = append(scenes, joinLines(buf))
		}
		buf = buf[:0]
	}

	if !broken {
		return SceneSplit{Paragraphs: Paragraphize(content)}
	}
	if hasText(buf) {
		scenes = append(scenes, joinLines(buf))
	}
	return SceneSplit{Scenes: scenes}
}

func hasText(lines []string) bool {
	for _, l := range lines {
		if len(strings.TrimSpace(l)) > 0 {
			return true
		}
	}
	return false
}

func joinLines(lines []string) string {
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
