package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"vlwgen/config"
	"vlwgen/state"
)

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("unable to write fixture: %v", err)
	}
	return path
}

const songSnapshot = `origTitle: メルト
romTitle: Meruto
engTitle: Melt
languageIds: [1]
bgColour: '#000000'
fgColour: white
uploadDate: '2007-12-07'
usedEngines: [VOCALOID]
singers: '[[Hatsune Miku]]'
producers: '[[ryo]] (music, lyrics)'
translator: Releska
categoriesRaw: "Japanese songs\nVOCALOID original songs"
playLinks:
  - [Niconico, 'https://www.nicovideo.jp/watch/sm1715919', false, false, false, '20000000']
lyrics:
  - ['', 朝 目が覚めて, asa me ga samete, I woke up in the morning]
extLinks:
  - ['https://vocadb.net/S/1', VocaDB, false]
`

func TestGeneratePages(t *testing.T) {
	_, env := setupTestEnv(t)
	env.Cfg.Generator.FileNameTransliterate = false

	dir := t.TempDir()
	good := writeFixture(t, dir, "melt.yaml", songSnapshot)
	bad := writeFixture(t, dir, "broken.yaml", strings.Replace(songSnapshot, "fgColour: white", "fgColour: invalid-colour-name", 1))
	out := filepath.Join(dir, "out")

	err := generatePages(context.Background(), kindSong, []string{good, bad}, out, env, env.Log)
	if err == nil {
		t.Fatal("generatePages() expected error for rejected page")
	}
	if !strings.Contains(err.Error(), bad) || strings.Contains(err.Error(), good) {
		t.Errorf("generatePages() error = %v, want only %s reported", err, bad)
	}

	data, err := os.ReadFile(filepath.Join(out, "song", "メルト.wiki"))
	if err != nil {
		t.Fatalf("generated page is missing: %v", err)
	}
	for _, want := range []string{"{{Infobox_Song", "==Lyrics==", "[[Category:Japanese songs]]"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("generated page does not contain %q:\n%s", want, data)
		}
	}
}

func TestGeneratePages_IgnoreErrors(t *testing.T) {
	_, env := setupTestEnv(t)
	env.Cfg.Generator.OutputNameTemplate = "{{ .ID }}"
	env.IgnoreErrors = true

	dir := t.TempDir()
	bad := writeFixture(t, dir, "broken.yaml", strings.Replace(songSnapshot, "fgColour: white", "fgColour: invalid-colour-name", 1))
	out := filepath.Join(dir, "out")

	if err := generatePages(context.Background(), kindSong, []string{bad}, out, env, env.Log); err != nil {
		t.Fatalf("generatePages() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "broken.wiki")); err != nil {
		t.Errorf("page must be rendered when errors are ignored: %v", err)
	}
}

func TestGeneratePages_Conflict(t *testing.T) {
	_, env := setupTestEnv(t)
	env.Cfg.Generator.OutputNameTemplate = "{{ .ID }}"

	dir := t.TempDir()
	src := writeFixture(t, dir, "melt.yaml", songSnapshot)
	out := filepath.Join(dir, "out")
	if err := os.MkdirAll(out, 0755); err != nil {
		t.Fatal(err)
	}
	target := writeFixture(t, out, "melt.wiki", "old")

	err := generatePages(context.Background(), kindSong, []string{src}, out, env, env.Log)
	if !errors.Is(err, errOutputExists) {
		t.Fatalf("generatePages() error = %v, want %v", err, errOutputExists)
	}

	env.Overwrite = true
	if err := generatePages(context.Background(), kindSong, []string{src}, out, env, env.Log); err != nil {
		t.Fatalf("generatePages() with overwrite error = %v", err)
	}
	data, _ := os.ReadFile(target)
	if string(data) == "old" {
		t.Error("existing page was not overwritten")
	}
}

func TestGeneratePages_Cancelled(t *testing.T) {
	_, env := setupTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := writeFixture(t, t.TempDir(), "melt.yaml", songSnapshot)
	if err := generatePages(ctx, kindSong, []string{src}, t.TempDir(), env, env.Log); !errors.Is(err, context.Canceled) {
		t.Errorf("generatePages() error = %v, want %v", err, context.Canceled)
	}
}

func TestGeneratePage_BadSnapshot(t *testing.T) {
	_, env := setupTestEnv(t)
	src := writeFixture(t, t.TempDir(), "typo.yaml", "origTitel: メルト\n")
	if err := generatePage(kindSong, src, t.TempDir(), env, env.Log); err == nil {
		t.Error("generatePage() expected error for unknown snapshot field")
	}
}
