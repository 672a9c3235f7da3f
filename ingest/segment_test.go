package ingest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"unbound/classify"
)

func TestSplitChapters(t *testing.T) {
	c := classify.Default()

	tests := []struct {
		name string
		in   string
		want []ChapterBlock
	}{
		{
			name: "empty",
			in:   "",
			want: []ChapterBlock{{}},
		},
		{
			name: "no headings",
			in:   "Just prose.\n\nMore prose.",
			want: []ChapterBlock{{Content: "Just prose.\n\nMore prose."}},
		},
		{
			name: "text before first heading",
			in:   "Intro text.\n\nChapter 1\n\nBody one.\n\nChapter 2\nBody two.",
			want: []ChapterBlock{
				{Content: "Intro text."},
				{Heading: "Chapter 1", Kind: classify.HeadingKindChapter, Content: "Body one."},
				{Heading: "Chapter 2", Kind: classify.HeadingKindChapter, Content: "Body two."},
			},
		},
		{
			name: "blank lines before first heading",
			in:   "\n\nPrologue\n\nOnce.",
			want: []ChapterBlock{
				{Heading: "Prologue", Kind: classify.HeadingKindSpecial, Content: "Once."},
			},
		},
		{
			name: "consecutive headings",
			in:   "CHAPTER IX\nPART II\nEpilogue",
			want: []ChapterBlock{
				{Heading: "CHAPTER IX", Kind: classify.HeadingKindChapter},
				{Heading: "PART II", Kind: classify.HeadingKindPart},
				{Heading: "Epilogue", Kind: classify.HeadingKindSpecial},
			},
		},
		{
			name: "scene breaks stay in content",
			in:   "1\n\na\n\n***\n\nb\n\n2\n\nc",
			want: []ChapterBlock{
				{Heading: "1", Kind: classify.HeadingKindNumeric, Content: "a\n\n***\n\nb"},
				{Heading: "2", Kind: classify.HeadingKindNumeric, Content: "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitChapters(c, tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitChapters() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitScenes(t *testing.T) {
	c := classify.Default()

	tests := []struct {
		name string
		in   string
		want SceneSplit
	}{
		{
			name: "no break",
			in:   "a\n\nb",
			want: SceneSplit{Paragraphs: []string{"a", "b"}},
		},
		{
			name: "empty",
			in:   "",
			want: SceneSplit{},
		},
		{
			name: "one break",
			in:   "a\n\n***\n\nb\n\nc",
			want: SceneSplit{Scenes: []string{"a", "b\n\nc"}},
		},
		{
			name: "spaced break",
			in:   "a\n  # # #\nb",
			want: SceneSplit{Scenes: []string{"a", "b"}},
		},
		{
			name: "leading break",
			in:   "***\na",
			want: SceneSplit{Scenes: []string{"a"}},
		},
		{
			name: "repeated breaks",
			in:   "a\n***\n\n---\nb",
			want: SceneSplit{Scenes: []string{"a", "b"}},
		},
		{
			name: "break only",
			in:   "\n* * *\n",
			want: SceneSplit{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitScenes(c, tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitScenes() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParagraphize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "blank", in: "\n \n\t\n", want: nil},
		{name: "single", in: "  one  ", want: []string{"one"}},
		{name: "blank line separated", in: "a\n\nb\n\n\nc", want: []string{"a", "b", "c"}},
		{name: "whitespace only separator", in: "a\n \t \nb", want: []string{"a", "b"}},
		{name: "single newlines joined", in: "HELLO\nTHERE\n\nnext", want: []string{"HELLO THERE", "next"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paragraphize(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Paragraphize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
