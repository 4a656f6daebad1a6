package markup

import (
	"reflect"
	"testing"
)

func TestExtractLinkedEntities(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "[[A]] and [[B|C]]", []string{"A", "B"}},
		{"duplicates kept", "[[A]]\n[[A|a]]", []string{"A", "A"}},
		{"interwiki skipped", "[[w:c:vocaloid:Miku|Miku]] [[W:C:utau:Teto]]", nil},
		{"songs list unwrapped", "[[ :Category:Foo songs list|Foo]]", []string{"Foo"}},
		{"empty target", "[[|x]] [[ ]]", nil},
		{"no links", "plain text", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractLinkedEntities(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractLinkedEntities(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProducerCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"wowaka", "wowaka songs list", true},
		{" :category:DECO*27 songs list ", "DECO*27 songs list", true},
		{"w:c:vocaloid:Foo", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ProducerCategory(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ProducerCategory(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFirstCircle(t *testing.T) {
	l, ok := FirstCircle("'''[[Circle|The Circle]]''':\n[[P]] (music)")
	if !ok || l.Target != "Circle" || l.Caption != "The Circle" {
		t.Errorf("FirstCircle() = %+v, %v", l, ok)
	}
	if _, ok := FirstCircle("[[P]] (music)"); ok {
		t.Error("FirstCircle() found circle in plain credits")
	}
}

func TestRoleCredits(t *testing.T) {
	got := RoleCredits("[[wowaka]] (Music, lyrics)\n[[Foo|Bar]] (illust)\n[[NoRole]]")
	if len(got) != 2 {
		t.Fatalf("RoleCredits() returned %d credits, want 2", len(got))
	}
	if got[0].Target != "wowaka" || !reflect.DeepEqual(got[0].Roles, []string{"music", "lyrics"}) {
		t.Errorf("RoleCredits()[0] = %+v", got[0])
	}
	if got[1].Target != "Foo" || got[1].Caption != "Bar" || !reflect.DeepEqual(got[1].Roles, []string{"illust"}) {
		t.Errorf("RoleCredits()[1] = %+v", got[1])
	}
}

func TestIsSmallLine(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"<small>[[A]]</small>", true},
		{" <SMALL>chorus</SMALL> ", true},
		{"[[A]] <small>x</small>", false},
		{"[[A]]", false},
	}
	for _, tt := range tests {
		if got := IsSmallLine(tt.in); got != tt.want {
			t.Errorf("IsSmallLine(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEmphasis(t *testing.T) {
	tests := []struct {
		in           string
		bold, italic bool
	}{
		{"'''bold'''", true, false},
		{"''italic''", false, true},
		{"'''''both'''''", true, true},
		{"  '''padded'''  ", true, false},
		{"''a '''b''' c''", false, true},
		{"'''a ''b'' c'''", true, false},
		{"'''a''' and '''b'''", false, false},
		{"''a'' and ''b''", false, false},
		{"''''four''''", true, false},
		{"''mixed'''", false, false},
		{"don't", false, false},
		{"''''''", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsFullyBold(tt.in); got != tt.bold {
				t.Errorf("IsFullyBold(%q) = %v, want %v", tt.in, got, tt.bold)
			}
			if got := IsFullyItalic(tt.in); got != tt.italic {
				t.Errorf("IsFullyItalic(%q) = %v, want %v", tt.in, got, tt.italic)
			}
		})
	}
}

func TestRefs(t *testing.T) {
	if !HasRef(`line<ref name="a"/>`) {
		t.Error("HasRef() = false for self-closing ref")
	}
	if HasRef("reference") {
		t.Error("HasRef() = true for plain text")
	}
	if got, want := ReplaceRefs(`a<ref name="n" />b`, "*"), "a*b"; got != want {
		t.Errorf("ReplaceRefs() = %q, want %q", got, want)
	}
	if got, want := ReplaceRefs("a<ref>note</ref>", "*"), "a*"; got != want {
		t.Errorf("ReplaceRefs() = %q, want %q", got, want)
	}
}

func TestPreviewHTML(t *testing.T) {
	tests := []struct {
		value, colour, want string
	}{
		{"'''a''' <ref>note</ref>", "", `<b>a</b> <i class="asterisk tiny icon"></i>`},
		{"''x''", "", "<i>x</i>"},
		{"a < b > c", "red", `<span style="color:red">a &lt; b &gt; c</span>`},
		{"<script>x</script>", "", "&lt;script&gt;x&lt;/script&gt;"},
		{"<sup>1</sup>", "", "<sup>1</sup>"},
	}
	for _, tt := range tests {
		if got := PreviewHTML(tt.value, tt.colour); got != tt.want {
			t.Errorf("PreviewHTML(%q, %q) = %q, want %q", tt.value, tt.colour, got, tt.want)
		}
	}
}
