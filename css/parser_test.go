package css_test

import (
	"testing"

	"go.uber.org/zap"

	"vlwgen/css"
)

func TestParser_ParseInline(t *testing.T) {
	log := zap.NewNop()
	p := css.NewParser(log)

	tests := []struct {
		style   string
		prop    string
		raw     string
		keyword string
	}{
		{`color:red`, "color", "red", "red"},
		{`color: #FF0000;`, "color", "#FF0000", "#FF0000"},
		{`font-weight: bold; COLOR: Blue`, "color", "Blue", "blue"},
		{`color:#abc !important; color: red`, "color", "#abc", "#abc"},
		{`background-color: white; color: darkslategray`, "color", "darkslategray", "darkslategray"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			decls := p.ParseInline(tt.style)
			val, ok := decls.Get(tt.prop)
			if !ok {
				t.Fatalf("expected property %s in %q", tt.prop, tt.style)
			}
			if val.Raw != tt.raw {
				t.Errorf("expected raw '%s', got '%s'", tt.raw, val.Raw)
			}
			if val.Keyword != tt.keyword {
				t.Errorf("expected keyword '%s', got '%s'", tt.keyword, val.Keyword)
			}
		})
	}
}

func TestParser_ParseInlineEmpty(t *testing.T) {
	p := css.NewParser(nil)
	if decls := p.ParseInline(""); len(decls) != 0 {
		t.Errorf("expected no declarations, got %v", decls)
	}
	if _, ok := p.ParseInline("font-weight:bold").Get("color"); ok {
		t.Error("unexpected color property")
	}
}

func TestParser_NumericValues(t *testing.T) {
	p := css.NewParser(zap.NewNop())

	tests := []struct {
		style string
		prop  string
		value float64
		unit  string
	}{
		{`font-size: 1.2em`, "font-size", 1.2, "em"},
		{`font-size: 100%`, "font-size", 100, "%"},
		{`line-height: 1.5`, "line-height", 1.5, ""},
		{`margin-top: -0.5em`, "margin-top", -0.5, "em"},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			val, ok := p.ParseInline(tt.style).Get(tt.prop)
			if !ok {
				t.Fatalf("expected property %s", tt.prop)
			}
			if val.Value != tt.value {
				t.Errorf("expected value %v, got %v", tt.value, val.Value)
			}
			if val.Unit != tt.unit {
				t.Errorf("expected unit '%s', got '%s'", tt.unit, val.Unit)
			}
			if !val.IsNumeric() {
				t.Error("expected numeric value")
			}
		})
	}
}

func TestDeclarations_String(t *testing.T) {
	decls := css.Declarations{
		{Property: "color", Value: css.Value{Raw: "red", Keyword: "red"}},
		{Property: "font-weight", Value: css.Value{Raw: "bold", Keyword: "bold"}, Important: true},
	}
	if got, want := decls.String(), "color:red; font-weight:bold !important"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestValue_IsKeyword(t *testing.T) {
	tests := []struct {
		val  css.Value
		want bool
	}{
		{css.Value{Keyword: "bold"}, true},
		{css.Value{Keyword: "red"}, true},
		{css.Value{Value: 1, Unit: "em"}, false},
		{css.Value{Raw: "0"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.val.Keyword+tt.val.Raw, func(t *testing.T) {
			if got := tt.val.IsKeyword(); got != tt.want {
				t.Errorf("Value.IsKeyword() = %v, want %v", got, tt.want)
			}
		})
	}
}
