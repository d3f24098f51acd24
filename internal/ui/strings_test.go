package ui

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Benfica", 10, "Benfica"},
		{"trimmed", "  Porto  ", 10, "Porto"},
		{"ellipsis", "Paris Saint-Germain", 10, "Paris S..."},
		{"tiny_limit", "Juventus", 3, "Juv"},
		{"no_limit", "Inter Milan", 0, "Inter Milan"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestCell_FixedWidth(t *testing.T) {
	for _, in := range []string{"", "AS Monaco", "Bayer 04 Leverkusen", "Beşiktaş", "浦和レッズ"} {
		got := cell(in, 12)
		if w := runewidth.StringWidth(got); w != 12 {
			t.Fatalf("cell(%q, 12) = %q has width %d, want 12", in, got, w)
		}
	}
}

func TestPadLeft(t *testing.T) {
	if got := padLeft("26", 5); got != "   26" {
		t.Fatalf("padLeft = %q, want %q", got, "   26")
	}
	if got := padLeft("123456", 3); got != "123456" {
		t.Fatalf("padLeft overflow = %q, want unchanged", got)
	}
}
