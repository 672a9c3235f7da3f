package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"unbound/common"
	"unbound/config"
	"unbound/manuscript"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context    string
	Title      string
	Author     string
	Format     string
	SourceFile string
	ProjectID  string
	Chapters   int
	Words      int
}

func chapterCount(p *manuscript.Project) int {
	n := 0
	for range p.AllChapters() {
		n++
	}
	return n
}

func expandTemplate(p *manuscript.Project, src string, name config.TemplateFieldName, field string, format common.OutputFmt) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	values := Values{
		Context:    string(name),
		Title:      p.Title,
		Author:     p.Author,
		Format:     format.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		ProjectID:  p.ID,
		Chapters:   chapterCount(p),
		Words:      p.WordCount(),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}
