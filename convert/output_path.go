package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"unbound/common"
	"unbound/config"
	"unbound/manuscript"
	"unbound/state"
)

// buildOutputPath returns output file path for the project. Name comes either
// from source file name or from user template, source directory structure is
// preserved unless NoDirs is requested. Every path segment is cleaned and, if
// requested, transliterated.
func buildOutputPath(p *manuscript.Project, src, dst string, format common.OutputFmt, env *state.LocalEnv) string {
	outDir := determineOutputDir(src, dst, env)

	if tmpl := env.Cfg.Output.OutputNameTemplate; tmpl != "" {
		expanded, err := expandTemplate(p, src, config.OutputNameTemplateFieldName, tmpl, format)
		if err != nil {
			env.Log.Warn("Unable to prepare output filename", zap.Error(err))
		} else if segments := splitPath(filepath.FromSlash(expanded)); len(segments) > 0 {
			parts := make([]string, 0, len(segments)+1)
			parts = append(parts, outDir)
			for _, s := range segments {
				parts = append(parts, cleanPathSegment(s, env))
			}
			parts[len(parts)-1] += format.Ext()
			return filepath.Join(parts...)
		}
	}
	return filepath.Join(outDir, buildDefaultFileName(src, format, env))
}

func determineOutputDir(src, dst string, env *state.LocalEnv) string {
	if env.NoDirs {
		return dst
	}
	return filepath.Join(dst, filepath.Dir(src))
}

func buildDefaultFileName(src string, format common.OutputFmt, env *state.LocalEnv) string {
	return cleanPathSegment(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)), env) + format.Ext()
}

// splitPath returns non empty path segments.
func splitPath(path string) []string {
	segments := strings.FieldsFunc(path, func(r rune) bool {
		return r == filepath.Separator
	})
	out := segments[:0]
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func cleanPathSegment(segment string, env *state.LocalEnv) string {
	if env.Cfg.Output.FileNameTransliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}
