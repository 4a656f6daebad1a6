package main

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"go.uber.org/zap/zaptest"

	"vlwgen/config"
)

func TestBuildOutputPath(t *testing.T) {
	outDir := filepath.Join("out", "pages")
	v := nameValues{Kind: "song", Title: "Rolling Girl", ID: "rolling"}

	tests := []struct {
		name          string
		template      string
		transliterate bool
		values        nameValues
		want          string
	}{
		{"default template", "{{ .Kind }}/{{ .Title }}", true, v, filepath.Join(outDir, "song", "rolling-girl.wiki")},
		{"no transliteration", "{{ .Kind }}/{{ .Title }}", false, v, filepath.Join(outDir, "song", "Rolling Girl.wiki")},
		{"empty template", "", false, v, filepath.Join(outDir, "song-Rolling Girl.wiki")},
		{"empty title", "", false, nameValues{Kind: "album", ID: "x1"}, filepath.Join(outDir, "album-x1.wiki")},
		{"slash in title", "{{ .Title }}", false, nameValues{Kind: "song", Title: "AC/DC"}, filepath.Join(outDir, "AC_DC.wiki")},
		{"sprig functions", "{{ .Kind | upper }}-{{ .ID }}", false, v, filepath.Join(outDir, "SONG-rolling.wiki")},
		{"bad template", "{{ .Title", false, v, filepath.Join(outDir, "song-Rolling Girl.wiki")},
		{"unknown field", "{{ .Missing }}", false, v, filepath.Join(outDir, "song-Rolling Girl.wiki")},
		{"blank expansion", "{{ .Title }}", false, nameValues{Kind: "song", ID: "x2"}, filepath.Join(outDir, "song-x2.wiki")},
		{"parent directory", "../../{{ .Title }}", false, v, filepath.Join(outDir, "Rolling Girl.wiki")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, env := setupTestEnv(t)
			env.Cfg.Generator.OutputNameTemplate = tt.template
			env.Cfg.Generator.FileNameTransliterate = tt.transliterate

			if got := buildOutputPath(outDir, tt.values, env); got != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	sep := string(os.PathSeparator)
	tests := []struct {
		in   string
		want int
	}{
		{"a" + sep + "b" + sep + "c", 3},
		{sep + "a" + sep + sep + "b" + sep, 2},
		{"." + sep + ".." + sep + "a", 1},
		{"", 0},
	}
	for _, tt := range tests {
		if got := splitPath(tt.in); len(got) != tt.want {
			t.Errorf("splitPath(%q) = %q, want %d segments", tt.in, got, tt.want)
		}
	}
}

func TestWriteOutput(t *testing.T) {
	log := zaptest.NewLogger(t)

	tests := []struct {
		mode    config.OutputConflict
		written bool
		err     error
		content string
	}{
		{config.OutputConflictFail, false, errOutputExists, "old"},
		{config.OutputConflictSkip, false, nil, "old"},
		{config.OutputConflictOverwrite, true, nil, "new"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			path := writeFixture(t, t.TempDir(), "page.wiki", "old")

			written, err := writeOutput(path, []byte("new"), tt.mode, log)
			if !errors.Is(err, tt.err) {
				t.Fatalf("writeOutput() error = %v, want %v", err, tt.err)
			}
			if written != tt.written {
				t.Errorf("writeOutput() = %v, want %v", written, tt.written)
			}
			if data, _ := os.ReadFile(path); string(data) != tt.content {
				t.Errorf("content = %q, want %q", data, tt.content)
			}
		})
	}

	t.Run("new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "page.wiki")
		written, err := writeOutput(path, []byte("new"), config.OutputConflictFail, log)
		if err != nil || !written {
			t.Fatalf("writeOutput() = %v, %v, want written", written, err)
		}
	})
}

func TestWriteOutput_SamePath(t *testing.T) {
	log := zaptest.NewLogger(t)
	path := filepath.Join(t.TempDir(), "song", "melt.wiki")

	const writers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		written int
		errs    []error
	)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := writeOutput(path, []byte{byte('a' + i)}, config.OutputConflictFail, log)
			mu.Lock()
			defer mu.Unlock()
			if ok {
				written++
			}
			if err != nil {
				errs = append(errs, err)
			}
		}()
	}
	wg.Wait()

	if written != 1 {
		t.Errorf("writeOutput() wrote %d times, want 1", written)
	}
	if len(errs) != writers-1 {
		t.Fatalf("writeOutput() returned %d errors, want %d", len(errs), writers-1)
	}
	for _, err := range errs {
		if !errors.Is(err, errOutputExists) {
			t.Errorf("writeOutput() error = %v, want %v", err, errOutputExists)
		}
	}

	// sequential duplicate
	if _, err := writeOutput(path, []byte("again"), config.OutputConflictFail, log); !errors.Is(err, errOutputExists) {
		t.Errorf("writeOutput() error = %v, want %v", err, errOutputExists)
	}
	if data, _ := os.ReadFile(path); len(data) != 1 {
		t.Errorf("content = %q, want single winner byte", data)
	}
}
