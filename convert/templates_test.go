package convert

import (
	"strings"
	"testing"

	"unbound/common"
	"unbound/config"
)

func TestExpandTemplate(t *testing.T) {
	p := sampleProject(t, sampleManuscript)

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"simple text", "output", "output"},
		{"title", "{{ .Title }}", "Storm"},
		{"author", "{{ .Author }}", "Smith & Sons"},
		{"format", "{{ .Format }}", "yaml"},
		{"source file", "{{ .SourceFile }}", "book"},
		{"project id", "{{ .ProjectID }}", "1"},
		{"chapters", "{{ .Chapters }}", "2"},
		{"words", "{{ .Words }}", "10"},
		{"context", "{{ .Context }}", "output_name_template"},
		{"sprig functions", `{{ .Title | upper }}-{{ .Author | replace " & " "+" }}`, "STORM-Smith+Sons"},
		{"complex", `{{ .Author }}/{{ printf "%03d" .Chapters }} {{ .Title }}`, "Smith & Sons/002 Storm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandTemplate(p, "drafts/book.txt", config.OutputNameTemplateFieldName, tt.template, common.OutputFmtYaml)
			if err != nil {
				t.Fatalf("expandTemplate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandTemplate_InvalidTemplate(t *testing.T) {
	p := sampleProject(t, sampleManuscript)

	_, err := expandTemplate(p, "book.txt", config.OutputNameTemplateFieldName, "{{ .Title", common.OutputFmtJson)
	if err == nil || !strings.Contains(err.Error(), "unable to parse template field output_name_template") {
		t.Errorf("expandTemplate() error = %v, want parse error", err)
	}
}

func TestExpandTemplate_InvalidField(t *testing.T) {
	p := sampleProject(t, sampleManuscript)

	if _, err := expandTemplate(p, "book.txt", config.OutputNameTemplateFieldName, "{{ .Series }}", common.OutputFmtJson); err == nil {
		t.Error("expandTemplate() expected error for unknown field")
	}
}

func TestChapterCount(t *testing.T) {
	if got := chapterCount(sampleProject(t, "")); got != 1 {
		t.Errorf("chapterCount() = %d, want 1 for empty manuscript", got)
	}
	if got := chapterCount(sampleProject(t, sampleManuscript)); got != 2 {
		t.Errorf("chapterCount() = %d, want 2", got)
	}
}
