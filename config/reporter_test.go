package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func readReport(t *testing.T, name string) map[string]string {
	t.Helper()

	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	res := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open report entry %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read report entry %s: %v", f.Name, err)
		}
		res[f.Name] = string(data)
	}
	return res
}

func TestReport(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	logName := filepath.Join(dir, "run.log")
	if err := os.WriteFile(logName, []byte("log line"), 0644); err != nil {
		t.Fatal(err)
	}
	input := filepath.Join(dir, "song.yaml")
	if err := os.WriteFile(input, []byte("origTitle: Melt"), 0644); err != nil {
		t.Fatal(err)
	}

	r.Store("final.log", logName)
	r.Store("absent.log", filepath.Join(dir, "nope.log"))
	r.StoreData("output/song.wiki", []byte("{{sort}}"))
	r.StoreData("output/song.wiki", []byte("{{sort|again}}"))
	if err := r.StoreCopy("input/song.yaml", input); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	// copy is taken at the time of the call
	if err := os.WriteFile(input, []byte("changed"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := r.Name(); got != conf.Destination {
		t.Errorf("Name() = %q, want %q", got, conf.Destination)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	entries := readReport(t, conf.Destination)
	if entries["final.log"] != "log line" {
		t.Errorf("final.log = %q, want %q", entries["final.log"], "log line")
	}
	if entries["input/song.yaml"] != "origTitle: Melt" {
		t.Errorf("input/song.yaml = %q, want copy taken before change", entries["input/song.yaml"])
	}
	if entries["output/song.wiki"] != "{{sort}}" {
		t.Errorf("output/song.wiki = %q, want %q", entries["output/song.wiki"], "{{sort}}")
	}
	if _, ok := entries["absent.log"]; ok {
		t.Error("absent file must not be archived")
	}

	var versioned int
	for name := range entries {
		if strings.HasPrefix(name, "output/song.wiki-") {
			versioned++
		}
	}
	if versioned != 1 {
		t.Errorf("report = %v, want repeated data stored under versioned name", entries)
	}
	if !strings.Contains(entries["MANIFEST"], "final.log") {
		t.Errorf("MANIFEST = %q, missing final.log", entries["MANIFEST"])
	}
}

func TestReportClose_RemovesCopies(t *testing.T) {
	dir := t.TempDir()
	r, err := (&ReporterConfig{Destination: filepath.Join(dir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	src := filepath.Join(dir, "page.txt")
	if err := os.WriteFile(src, []byte("text"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.StoreCopy("page.txt", src); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	if len(r.temps) != 1 {
		t.Fatalf("temps = %v, want one copy", r.temps)
	}
	tmp := r.temps[0]

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := os.Stat(tmp); !os.IsNotExist(err) {
		os.RemoveAll(tmp)
		t.Error("temporary copy must be removed on Close")
	}
	if _, err := os.Stat(src); err != nil {
		t.Errorf("source file must stay, got %v", err)
	}
}

func TestReport_StoreCopyDirectory(t *testing.T) {
	dir := t.TempDir()
	r, err := (&ReporterConfig{Destination: filepath.Join(dir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	defer r.Close()

	if err := r.StoreCopy("dir", dir); err == nil {
		t.Error("StoreCopy() expected error for directory")
	}
	if err := r.StoreCopy("missing", filepath.Join(dir, "missing")); err == nil {
		t.Error("StoreCopy() expected error for missing file")
	}
}

func TestReport_Concurrent(t *testing.T) {
	dir := t.TempDir()
	r, err := (&ReporterConfig{Destination: filepath.Join(dir, "report.zip")}).Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			r.StoreData("page.wiki", []byte("x"))
		})
	}
	wg.Wait()
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	// names are versioned by nanosecond stamp, collisions are possible but
	// every entry that made it must be readable
	if entries := readReport(t, filepath.Join(dir, "report.zip")); len(entries) < 2 {
		t.Errorf("report has %d entries, want manifest and data", len(entries))
	}
}

func TestReportClose_Nil(t *testing.T) {
	var r *Report
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "b"); err != nil {
		t.Errorf("StoreCopy on nil report should not error, got: %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() = %q, want empty", r.Name())
	}

	empty := &Report{entries: make(map[string]entry)}
	if err := empty.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
