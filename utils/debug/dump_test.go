package debug

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"vlwgen/discography"
	"vlwgen/lyrics"
	"vlwgen/page"
)

func TestLyricsTable(t *testing.T) {
	tbl := lyrics.Table{
		Headers: [3]string{"Japanese", "Romaji", "English"},
		Rows: [][4]string{
			{"", "朝", "asa", "morning"},
			{"red", "''夜''", "", ""},
			{"#ccc", "'''''星'''''", "", "a < c"},
		},
	}
	want := "table melt rows=3\n" +
		"  row 1\n" +
		"    Japanese: \"朝\"\n" +
		"    Romaji: \"asa\"\n" +
		"    English: \"morning\"\n" +
		"    preview Japanese: \"朝\"\n" +
		"    preview Romaji: \"asa\"\n" +
		"    preview English: \"morning\"\n" +
		"  row 2\n" +
		"    colour: \"red\"\n" +
		"    Japanese: \"''夜''\"\n" +
		"    preview Japanese [italic]: \"<span style=\\\"color:#ff0000\\\"><i>夜</i></span>\"\n" +
		"  row 3\n" +
		"    colour: \"#ccc\"\n" +
		"    Japanese: \"'''''星'''''\"\n" +
		"    English: \"a < c\"\n" +
		"    preview Japanese [bold italic]: \"<span style=\\\"color:#ccc\\\"><i><b>星</b></i></span>\"\n" +
		"    preview English: \"<span style=\\\"color:#ccc\\\">a &lt; c</span>\"\n"
	if got := LyricsTable("melt", tbl); got != want {
		t.Errorf("LyricsTable() = %q, want %q", got, want)
	}
}

func TestOutcome(t *testing.T) {
	o := &page.Outcome{
		ID:                  uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057"),
		Kind:                "song",
		State:               page.StateRejected,
		RecommendCategories: true,
		Findings: page.Findings{
			{Severity: page.SeverityFatal, Field: "fgColour", Message: "The foreground colour is invalid."},
		},
	}
	got := Outcome(o)
	for _, want := range []string{
		"song 01890a5d-ac96-774b-bcce-b302099a8057 state=rejected\n",
		"  categories need review\n",
		"  fatal [fgColour]: \"The foreground colour is invalid.\"\n",
		"  output size=0\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Outcome() = %q, missing %q", got, want)
		}
	}
}

func TestDiscography(t *testing.T) {
	d := &discography.Discography{
		Songs:  [][]any{{"ローリンガール", ""}, {"アンノウン・マザーグース", ""}},
		Albums: [][]any{{"アンハッピーリフレイン", ""}, {}},
	}
	want := "discography wowaka\n" +
		"  songs count=2\n" +
		"    title: \"ローリンガール\"\n" +
		"    title: \"アンノウン・マザーグース\"\n" +
		"  albums count=2\n" +
		"    title: \"アンハッピーリフレイン\"\n"
	if got := Discography("wowaka", d); got != want {
		t.Errorf("Discography() = %q, want %q", got, want)
	}
}
