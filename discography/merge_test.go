package discography

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestMerge(t *testing.T) {
	main := []Member{
		{Title: "Melt", Namespace: NamespaceMain},
		{Title: "ワールドイズマイン", SortKeyPrefix: "world is mine", Namespace: NamespaceMain},
		{Title: "Category:Ryo/Albums", Namespace: NamespaceCategory},
		{Title: "Category:Ryo/Covers", Namespace: NamespaceCategory},
	}
	subs := map[string][]Member{
		"Category:Ryo/Albums": {
			{Title: "supercell (album)", Namespace: NamespaceMain},
			{Title: "Today Is A Beautiful Day", Namespace: NamespaceMain},
		},
		"Category:Ryo/Covers": {
			{Title: "ODDS&ENDS", Namespace: NamespaceMain},
			{Title: "Black Rock Shooter (Melt)", SortKeyPrefix: "Melt", Namespace: NamespaceMain},
			{Title: "Category:Nested", Namespace: NamespaceCategory},
		},
	}

	got, err := Merge(main, subs)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	wantSongs := [][]any{
		{"Black Rock Shooter (Melt)", ""},
		{"ODDS&ENDS", ""},
		{"ワールドイズマイン", ""},
	}
	if !reflect.DeepEqual(got.Songs, wantSongs) {
		t.Errorf("Songs = %v, want %v", got.Songs, wantSongs)
	}
	wantAlbums := [][]any{{"supercell (album)", ""}, {"Today Is A Beautiful Day", ""}}
	if !reflect.DeepEqual(got.Albums, wantAlbums) {
		t.Errorf("Albums = %v, want %v", got.Albums, wantAlbums)
	}
}

func TestMerge_Empty(t *testing.T) {
	if _, err := Merge(nil, nil); !errors.Is(err, ErrNoPages) {
		t.Errorf("Merge() error = %v, want %v", err, ErrNoPages)
	}
}

func TestSubcategories(t *testing.T) {
	got := Subcategories([]Member{
		{Title: "Category:P/Part 10", Namespace: NamespaceCategory},
		{Title: "Song", Namespace: NamespaceMain},
		{Title: "Category:P/Part 2", Namespace: NamespaceCategory},
		{Title: "Category:P/Part 2", Namespace: NamespaceCategory},
	})
	want := []string{"Category:P/Part 2", "Category:P/Part 10"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Subcategories() = %q, want %q", got, want)
	}
}

func TestSongsCategory(t *testing.T) {
	if got, want := SongsCategory(" Hachi / Kenshi Yonezu "), "Category:Hachi_/_Kenshi_Yonezu_songs_list"; got != want {
		t.Errorf("SongsCategory() = %q, want %q", got, want)
	}
}

func TestWiki_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/api.php" || q.Get("list") != "categorymembers" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch q.Get("cmtitle") + "|" + q.Get("cmcontinue") {
		case "Category:ryo_songs_list|":
			_, _ = w.Write([]byte(`{"continue": {"cmcontinue": "page|2"}, "query": {"categorymembers": [
				{"ns": 0, "title": "Melt"},
				{"ns": 14, "title": "Category:Ryo/Albums"}
			]}}`))
		case "Category:ryo_songs_list|page|2":
			_, _ = w.Write([]byte(`{"query": {"categorymembers": [{"ns": 0, "title": "Ashes", "sortkeyprefix": "ashes"}]}}`))
		case "Category:Ryo/Albums|":
			_, _ = w.Write([]byte(`{"query": {"categorymembers": [{"ns": 0, "title": "supercell (album)"}]}}`))
		default:
			_, _ = w.Write([]byte(`{"error": {"code": "bad", "info": "unexpected request"}}`))
		}
	}))
	defer srv.Close()

	w := &Wiki{BaseURL: srv.URL, Client: srv.Client(), Log: zaptest.NewLogger(t), Limit: 2}
	got, err := w.Fetch(context.Background(), "ryo")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	want := &Discography{
		Songs:  [][]any{{"Ashes", ""}, {"Melt", ""}},
		Albums: [][]any{{"supercell (album)", ""}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fetch() = %v, want %v", got, want)
	}

	if _, err := w.Fetch(context.Background(), "unknown"); err == nil {
		t.Error("Fetch() expected API error")
	}
	if _, err := w.Fetch(context.Background(), " "); err == nil {
		t.Error("Fetch() expected error for empty category")
	}
}
