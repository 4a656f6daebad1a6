package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	validator "github.com/go-playground/validator/v10"
	"golang.org/x/text/encoding/ianaindex"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	GeneratorConfig struct {
		// IgnoreErrors renders pages even when validation found fatal problems.
		IgnoreErrors          bool           `yaml:"ignore_errors"`
		OutputNameTemplate    string         `yaml:"output_name_template"`
		FileNameTransliterate bool           `yaml:"file_name_transliterate"`
		OnConflict            OutputConflict `yaml:"on_conflict" validate:"gte=0"`
		LyricsFixes           []LyricsFix    `yaml:"lyrics_fixes" validate:"dive,gte=0"`
		ForceEnglishColumn    bool           `yaml:"force_english_column"`
	}

	SynthsConfig struct {
		// Database is a SQLite file with synths and engines tables, when
		// empty synth links are not resolved.
		Database string `yaml:"database,omitempty" sanitize:"assure_file_access"`
		PoolSize int    `yaml:"pool_size" validate:"min=1,max=64"`
	}

	SourcesConfig struct {
		Extensions []string `yaml:"extensions" validate:"dive,startswith=."`
		CodePage   string   `yaml:"code_page,omitempty"`
	}

	RemoteConfig struct {
		VocaDB      string        `yaml:"vocadb" validate:"required,url"`
		Wiki        string        `yaml:"wiki" validate:"required,url"`
		Origin      string        `yaml:"origin,omitempty"`
		Timeout     time.Duration `yaml:"timeout" validate:"gt=0"`
		Concurrency int           `yaml:"concurrency" validate:"min=1,max=32"`
	}

	Config struct {
		Version   int             `yaml:"version" validate:"eq=1"`
		Generator GeneratorConfig `yaml:"generator"`
		Synths    SynthsConfig    `yaml:"synths"`
		Sources   SourcesConfig   `yaml:"sources"`
		Remote    RemoteConfig    `yaml:"remote"`
		Logging   LoggingConfig   `yaml:"logging"`
		Reporting ReporterConfig  `yaml:"reporting"`
	}
)

// NOTE: must match yaml field name above
const OutputNameTemplateFieldName TemplateFieldName = "output_name_template"

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

// checkCodePage makes sure forced code page is known before any archive is
// opened.
func checkCodePage(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok || len(cfg.Sources.CodePage) == 0 {
		return
	}
	if enc, err := ianaindex.IANA.Encoding(cfg.Sources.CodePage); err != nil || enc == nil {
		sl.ReportError(cfg.Sources.CodePage, "code_page", "CodePage", "codepage", "")
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
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkCodePage)); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
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
		return nil, fmt.Errorf("failed to marshal config to yaml: %w", err)
	}
	return data, nil
}
