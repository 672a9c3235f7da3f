package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/rupor-github/gencfg"
	"golang.org/x/net/html/charset"
	yaml "gopkg.in/yaml.v3"

	"unbound/classify"
	"unbound/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	HeadingsConfig struct {
		CapsFallback  bool     `yaml:"caps_fallback"`
		CapsMinLength int      `yaml:"caps_min_length" validate:"min=1"`
		CapsMinWords  int      `yaml:"caps_min_words" validate:"min=1"`
		MaxOrdinal    int      `yaml:"max_ordinal" validate:"min=1,max=99"`
		MaxRoman      int      `yaml:"max_roman" validate:"min=1,max=3999"`
		SpecialWords  []string `yaml:"special_words" validate:"dive,required"`
		IgnoreWords   []string `yaml:"ignore_words" validate:"dive,required"`
	}

	IngestConfig struct {
		Workers           int            `yaml:"workers" validate:"gte=0"`
		Typography        bool           `yaml:"typography"`
		FallbackEncoding  string         `yaml:"fallback_encoding"`
		Extensions        []string       `yaml:"extensions" validate:"min=1,dive,required,startswith=."`
		TitleFromFileName bool           `yaml:"title_from_file_name"`
		Language          string         `yaml:"language" validate:"required,bcp47_language_tag"`
		Headings          HeadingsConfig `yaml:"headings"`
	}

	OutputConfig struct {
		Format                common.OutputFmt `yaml:"format"`
		Pretty                bool             `yaml:"pretty"`
		StableIDs             bool             `yaml:"stable_ids"`
		OutputNameTemplate    string           `yaml:"output_name_template"`
		FileNameTransliterate bool             `yaml:"file_name_transliterate"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Ingest    IngestConfig   `yaml:"ingest"`
		Output    OutputConfig   `yaml:"output"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

// Vocabulary returns heading vocabulary described by configuration.
func (conf *IngestConfig) Vocabulary() classify.Vocabulary {
	return classify.Vocabulary{
		MaxOrdinal:    conf.Headings.MaxOrdinal,
		MaxRoman:      conf.Headings.MaxRoman,
		SpecialWords:  slices.Clone(conf.Headings.SpecialWords),
		IgnoreWords:   slices.Clone(conf.Headings.IgnoreWords),
		CapsFallback:  conf.Headings.CapsFallback,
		CapsMinLength: conf.Headings.CapsMinLength,
		CapsMinWords:  conf.Headings.CapsMinWords,
	}
}

// HasExtension reports whether file name has one of configured manuscript
// extensions.
func (conf *IngestConfig) HasExtension(name string) bool {
	name = strings.ToLower(name)
	for _, ext := range conf.Extensions {
		if strings.HasSuffix(name, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// checkConfig handles what tags cannot express.
func checkConfig(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)

	if enc := cfg.Ingest.FallbackEncoding; enc != "" && enc != "auto" {
		if e, _ := charset.Lookup(enc); e == nil {
			sl.ReportError(cfg.Ingest.FallbackEncoding, "FallbackEncoding", "fallback_encoding", "charset", enc)
		}
	}
	if !cfg.Output.Format.IsValid() {
		sl.ReportError(cfg.Output.Format, "Format", "format", "output_format", cfg.Output.Format.String())
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkConfig)); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
