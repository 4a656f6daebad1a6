package css

import (
	"strings"
	"unicode"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "red", "#ff0000", etc.
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Declaration is a single "property: value" pair of a style attribute.
type Declaration struct {
	Property  string
	Value     Value
	Important bool
}

// Declarations keeps declarations in source order.
type Declarations []Declaration

// Get returns the value of the property (case-insensitive). When the
// property is declared several times the last declaration wins, unless an
// earlier one is marked important.
func (d Declarations) Get(property string) (Value, bool) {
	var (
		res       Value
		found     bool
		important bool
	)
	for _, decl := range d {
		if !strings.EqualFold(decl.Property, property) {
			continue
		}
		if important && !decl.Important {
			continue
		}
		res, found, important = decl.Value, true, decl.Important
	}
	return res, found
}

// String serializes declarations back into style attribute form.
func (d Declarations) String() string {
	var b strings.Builder
	for i, decl := range d {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(decl.Property)
		b.WriteByte(':')
		b.WriteString(decl.Value.Raw)
		if decl.Important {
			b.WriteString(" !important")
		}
	}
	return b.String()
}
