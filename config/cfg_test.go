package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/rupor-github/gencfg"
)

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Generator.IgnoreErrors {
		t.Error("IgnoreErrors = true, want false")
	}
	if cfg.Generator.OnConflict != OutputConflictFail {
		t.Errorf("OnConflict = %s, want %s", cfg.Generator.OnConflict, OutputConflictFail)
	}
	if cfg.Generator.OutputNameTemplate != "{{ .Kind }}/{{ .Title }}" {
		t.Errorf("OutputNameTemplate = %q, must not be expanded", cfg.Generator.OutputNameTemplate)
	}
	if cfg.Remote.VocaDB != "https://vocadb.net" {
		t.Errorf("Remote.VocaDB = %q, want https://vocadb.net", cfg.Remote.VocaDB)
	}
	if cfg.Remote.Timeout != 30*time.Second {
		t.Errorf("Remote.Timeout = %v, want 30s", cfg.Remote.Timeout)
	}
	if cfg.Synths.PoolSize < 1 {
		t.Errorf("Synths.PoolSize = %d, want positive", cfg.Synths.PoolSize)
	}
	if want := []string{".txt", ".wiki", ".wikitext", ".mediawiki", ".xml"}; !reflect.DeepEqual(cfg.Sources.Extensions, want) {
		t.Errorf("Sources.Extensions = %q, want %q", cfg.Sources.Extensions, want)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `version: 1
generator:
  ignore_errors: true
  on_conflict: overwrite
  lyrics_fixes: [detonePinyin, hepburn]
sources:
  code_page: windows-1251
remote:
  timeout: 5s
  concurrency: 8
logging:
  console:
    level: normal
  file:
    level: debug
    destination: ` + filepath.Join(tmpDir, "test.log") + `
    mode: append
reporting:
  destination: ` + filepath.Join(tmpDir, "test-report.zip") + `
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if !cfg.Generator.IgnoreErrors {
		t.Error("IgnoreErrors = false, want true")
	}
	if cfg.Generator.OnConflict != OutputConflictOverwrite {
		t.Errorf("OnConflict = %s, want %s", cfg.Generator.OnConflict, OutputConflictOverwrite)
	}
	if want := []LyricsFix{LyricsFixDetonePinyin, LyricsFixHepburn}; !reflect.DeepEqual(cfg.Generator.LyricsFixes, want) {
		t.Errorf("LyricsFixes = %v, want %v", cfg.Generator.LyricsFixes, want)
	}
	if cfg.Sources.CodePage != "windows-1251" {
		t.Errorf("CodePage = %q, want windows-1251", cfg.Sources.CodePage)
	}
	if cfg.Remote.Timeout != 5*time.Second || cfg.Remote.Concurrency != 8 {
		t.Errorf("Remote = %+v, want 5s timeout and 8 workers", cfg.Remote)
	}
	// values absent from the file keep their defaults
	if cfg.Remote.Wiki != "https://vocaloidlyrics.fandom.com" {
		t.Errorf("Remote.Wiki = %q, want default", cfg.Remote.Wiki)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("FileLogger.Mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ngenerator:\n  ignore_errors: true\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"version", "version: 2\n"},
		{"code page", "version: 1\nsources:\n  code_page: klingon\n"},
		{"url", "version: 1\nremote:\n  vocadb: not a url\n"},
		{"pool size", "version: 1\nsynths:\n  pool_size: 0\n"},
		{"conflict mode", "version: 1\ngenerator:\n  on_conflict: merge\n"},
		{"lyrics fix", "version: 1\ngenerator:\n  lyrics_fixes: [uppercase]\n"},
		{"extension", "version: 1\nsources:\n  extensions: [txt]\n"},
		{"timeout", "version: 1\nremote:\n  timeout: 0s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}
			if _, err := LoadConfiguration(configPath); err == nil {
				t.Errorf("LoadConfiguration() expected error for %q", tt.content)
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// options are opaque, just make sure they are accepted
	}
	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if filepath.Base(cfg.Reporting.Destination) != "vlwgen-report.zip" {
		t.Errorf("Reporting.Destination = %q, want vlwgen-report.zip", cfg.Reporting.Destination)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		result, err := unmarshalConfig([]byte(`version: 1`), &Config{}, false)
		if err != nil {
			t.Fatalf("unmarshalConfig() error = %v", err)
		}
		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := unmarshalConfig([]byte(`invalid: [yaml`), &Config{}, false); err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	_, err = unmarshalConfig([]byte("version: 99\n"), cfg, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to validate configuration") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error, got bare error: %v", err)
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "{{ .Kind }}/{{ .Title }}") {
		t.Errorf("Prepare() = %s, output name template must be kept as is", data)
	}
	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Generator.OnConflict = OutputConflictSkip
	cfg.Generator.LyricsFixes = []LyricsFix{LyricsFixDecapitalize}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	for _, want := range []string{"on_conflict: skip", "- decapitalize", "timeout: 30s"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Dump() = %s, missing %q", data, want)
		}
	}

	restored, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("unmarshalConfig() error = %v", err)
	}
	if !reflect.DeepEqual(restored.Generator, cfg.Generator) {
		t.Errorf("restored generator = %+v, want %+v", restored.Generator, cfg.Generator)
	}
}

func TestOutputConflict(t *testing.T) {
	tests := []struct {
		in   string
		want OutputConflict
	}{
		{"fail", OutputConflictFail},
		{"Skip", OutputConflictSkip},
		{"OVERWRITE", OutputConflictOverwrite},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputConflict(tt.in)
			if err != nil {
				t.Fatalf("ParseOutputConflict() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputConflict() = %s, want %s", got, tt.want)
			}
		})
	}
	if _, err := ParseOutputConflict("merge"); !errors.Is(err, ErrInvalidOutputConflict) {
		t.Errorf("ParseOutputConflict() error = %v, want %v", err, ErrInvalidOutputConflict)
	}
	if got := OutputConflict(7).String(); got != "OutputConflict(7)" {
		t.Errorf("String() = %q, want OutputConflict(7)", got)
	}
}

func TestLyricsFix_Apply(t *testing.T) {
	rows := [][4]string{{"", "我", "Wǒ ài nǐ. Lǜ", "I love you"}, {"", "を", "Kimi wo dzutto", ""}}
	tests := []struct {
		fix  LyricsFix
		want []string
	}{
		{LyricsFixDetonePinyin, []string{"Wo ai ni. Lü", "Kimi wo dzutto"}},
		{LyricsFixDecapitalize, []string{"wǒ ài nǐ. lǜ", "kimi wo dzutto"}},
		{LyricsFixHepburn, []string{"Wǒ ài nǐ. Lǜ", "Kimi o zutto"}},
	}
	for _, tt := range tests {
		t.Run(tt.fix.String(), func(t *testing.T) {
			got := tt.fix.Apply(rows)
			for i, want := range tt.want {
				if got[i][2] != want {
					t.Errorf("Apply()[%d] = %q, want %q", i, got[i][2], want)
				}
				if got[i][1] != rows[i][1] || got[i][3] != rows[i][3] {
					t.Errorf("Apply()[%d] = %q, only romanization may change", i, got[i])
				}
			}
		})
	}
}
