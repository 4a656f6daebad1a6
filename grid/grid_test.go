package grid

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", " abc ", " abc "},
		{"integer float", float64(3), "3"},
		{"fraction", 2.5, "2.5"},
		{"int", 42, "42"},
		{"bool", true, "true"},
		{"unsupported", struct{}{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.in); got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{"", false},
		{"false", false},
		{"true", true},
		{"no", true},
		{"False", true},
		{false, false},
		{true, true},
		{float64(0), false},
		{float64(1), true},
		{0, false},
		{7, true},
	}
	for _, tt := range tests {
		if got := Bool(tt.in); got != tt.want {
			t.Errorf("Bool(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRow(t *testing.T) {
	r := Row{" a ", nil, float64(12), "false"}

	if got := r.Trimmed(0); got != "a" {
		t.Errorf("Trimmed(0) = %q, want %q", got, "a")
	}
	if got := r.String(1); got != "" {
		t.Errorf("String(1) = %q, want empty", got)
	}
	if got := r.String(2); got != "12" {
		t.Errorf("String(2) = %q, want %q", got, "12")
	}
	if r.Bool(3) {
		t.Error("Bool(3) = true, want false")
	}
	if got := r.String(10); got != "" {
		t.Errorf("String(10) = %q, want empty for out of range cell", got)
	}
	if r.Empty() {
		t.Error("Empty() = true for non-empty row")
	}
	if !(Row{nil, " ", ""}).Empty() {
		t.Error("Empty() = false for blank row")
	}
}

func TestIsNumeric(t *testing.T) {
	for in, want := range map[string]bool{
		"":     true,
		" 3 ":  true,
		"1.5":  true,
		"two":  false,
		"3a":   false,
		"-1":   true,
		"  \t": true,
	} {
		if got := IsNumeric(in); got != want {
			t.Errorf("IsNumeric(%q) = %v, want %v", in, got, want)
		}
	}
}
