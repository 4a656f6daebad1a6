package config

import "testing"

func TestCleanName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"メルト", "メルト"},
		{"wowaka/Albums", "wowaka_Albums"},
		{"Category:ryo", "Category_ryo"},
		{"..hidden.", "hidden"},
		{"tab\there", "tab_here"},
		{"", badFileName},
		{"/", badFileName},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := cleanName(tt.in, `/:`); got != tt.want {
				t.Errorf("cleanName() = %q, want %q", got, tt.want)
			}
		})
	}
}
