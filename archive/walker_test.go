package archive

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeZip(t *testing.T, files map[string]string, order []string) string {
	t.Helper()

	zipPath := filepath.Join(t.TempDir(), "pages.zip")
	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, name := range order {
		if name[len(name)-1] == '/' {
			h := &zip.FileHeader{Name: name}
			h.SetMode(os.ModeDir | 0755)
			if _, err := w.CreateHeader(h); err != nil {
				t.Fatalf("Failed to create directory %s: %v", name, err)
			}
			continue
		}
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", name, err)
		}
		if _, err := fw.Write([]byte(files[name])); err != nil {
			t.Fatalf("Failed to write content for %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to finish zip: %v", err)
	}
	return zipPath
}

func TestWalk(t *testing.T) {
	files := map[string]string{
		"songs/melt.wiki":  "{{Infobox_Song}}",
		"songs/melt.TXT":   "text",
		"export.xml":       "<mediawiki/>",
		"cover.png":        "png",
		"songs/notes.yaml": "a: b",
	}
	zipPath := writeZip(t, files, []string{"songs/", "songs/melt.wiki", "songs/melt.TXT", "export.xml", "cover.png", "songs/notes.yaml"})

	tests := []struct {
		name string
		exts []string
		want []string
	}{
		{"page sources", []string{".wiki", ".txt", ".xml"}, []string{"songs/melt.wiki", "songs/melt.TXT", "export.xml"}},
		{"single extension", []string{".xml"}, []string{"export.xml"}},
		{"no match", []string{".epub"}, nil},
		{"all files", nil, []string{"songs/melt.wiki", "songs/melt.TXT", "export.xml", "cover.png", "songs/notes.yaml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited []string
			err := Walk(context.Background(), zipPath, tt.exts, func(e Entry) error {
				if e.Archive != zipPath {
					t.Errorf("Archive = %s, want %s", e.Archive, zipPath)
				}
				visited = append(visited, e.Name)
				return nil
			})
			if err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			if !reflect.DeepEqual(visited, tt.want) {
				t.Errorf("visited = %q, want %q", visited, tt.want)
			}
		})
	}

	t.Run("entry content", func(t *testing.T) {
		err := Walk(context.Background(), zipPath, []string{".wiki"}, func(e Entry) error {
			r, err := e.Open()
			if err != nil {
				return err
			}
			defer r.Close()
			data, err := io.ReadAll(r)
			if err != nil {
				return err
			}
			if string(data) != files[e.Name] {
				t.Errorf("content = %q, want %q", data, files[e.Name])
			}
			return nil
		})
		if err != nil {
			t.Errorf("Walk() error = %v", err)
		}
	})

	t.Run("walkFn returns error", func(t *testing.T) {
		expectedErr := errors.New("test error")
		err := Walk(context.Background(), zipPath, nil, func(Entry) error { return expectedErr })
		if err != expectedErr {
			t.Errorf("Walk() error = %v, want %v", err, expectedErr)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := Walk(ctx, zipPath, nil, func(Entry) error { return nil })
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Walk() error = %v, want %v", err, context.Canceled)
		}
	})
}

func TestWalk_InvalidArchive(t *testing.T) {
	if err := Walk(context.Background(), "/nonexistent/file.zip", nil, func(Entry) error { return nil }); err == nil {
		t.Error("Expected error for nonexistent file")
	}

	invalidZip := filepath.Join(t.TempDir(), "invalid.zip")
	if err := os.WriteFile(invalidZip, []byte("not a zip file"), 0644); err != nil {
		t.Fatalf("Failed to create invalid zip: %v", err)
	}
	if err := Walk(context.Background(), invalidZip, nil, func(Entry) error { return nil }); err == nil {
		t.Error("Expected error for invalid zip file")
	}
}

func TestWalk_UnsafePath(t *testing.T) {
	zipPath := writeZip(t, map[string]string{"../evil.wiki": "x"}, []string{"../evil.wiki"})
	if err := Walk(context.Background(), zipPath, nil, func(Entry) error { return nil }); err == nil {
		t.Error("Expected error for unsafe entry path")
	}
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"songs/melt.wiki", true},
		{"a..b/c.txt", true},
		{"/etc/passwd", false},
		{`\windows\path`, false},
		{"songs/../../x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSafePath(tt.name); got != tt.want {
				t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestHasExt(t *testing.T) {
	if !HasExt("a/B.WIKI", []string{".wiki"}) {
		t.Error("HasExt() = false, want true")
	}
	if HasExt("a/b.wiki.bak", []string{".wiki"}) {
		t.Error("HasExt() = true, want false")
	}
}
