package clubs

import (
	"math"
	"reflect"
	"testing"
)

func TestNormalize_MapsFields(t *testing.T) {
	raw := RawRecord{
		"Club_name":          "Arsenal FC",
		"League":             "Premier League",
		"Squad":              "25",
		"Foreigners":         "16",
		"age":                "25.3",
		"market value":       "€45.44m",
		"Total market value": "€1.14bn",
		"Description":        "North London club.",
		"logo":               "https://example.com/11.png",
		"url":                "https://example.com/arsenal",
	}

	got := Normalize(raw)
	want := Team{
		Club:             "Arsenal FC",
		League:           "Premier League",
		Squad:            Count{Value: 25, Valid: true},
		Foreigners:       Count{Value: 16, Valid: true},
		Age:              25.3,
		MarketValue:      "€45.44m",
		TotalMarketValue: "€1.14bn",
		Description:      "North London club.",
		Logo:             "https://example.com/11.png",
		URL:              "https://example.com/arsenal",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Normalize = %#v, want %#v", got, want)
	}
}

func TestNormalize_MissingLeagueDefaults(t *testing.T) {
	cases := []struct {
		name   string
		league any
	}{
		{"absent", nil},
		{"empty", ""},
		{"zero", float64(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := RawRecord{"Club_name": "X"}
			if tc.league != nil {
				raw["League"] = tc.league
			}
			if got := Normalize(raw).League; got != DefaultLeague {
				t.Fatalf("League = %q, want %q", got, DefaultLeague)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want Count
	}{
		{"plain", "25", Count{25, true}},
		{"padded", "  7 ", Count{7, true}},
		{"trailing_text", "31 players", Count{31, true}},
		{"signed", "-3", Count{-3, true}},
		{"decimal_string", "25.9", Count{25, true}},
		{"json_number", float64(18), Count{18, true}},
		{"json_fraction", 26.7, Count{26, true}},
		{"not_a_number", "n/a", Count{}},
		{"empty", "", Count{}},
		{"sign_only", "-", Count{}},
		{"nil", nil, Count{}},
		{"bool", true, Count{}},
		{"overflow", "123456789012345678901234", Count{math.MaxInt, true}},
		{"negative_overflow", "-123456789012345678901234 players", Count{math.MinInt, true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseCount(tc.in); got != tc.want {
				t.Fatalf("parseCount(%#v) = %#v, want %#v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"plain", "26.9", 26.9},
		{"integer", "25", 25},
		{"leading_dot", ".5", 0.5},
		{"exponent", "2.5e1", 25},
		{"dangling_exponent", "3e", 3},
		{"trailing_text", "24.1 yrs", 24.1},
		{"padded", "\t27.0", 27},
		{"infinity", "Infinity", math.Inf(1)},
		{"json_number", 24.5, 24.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseDecimal(tc.in); got != tc.want {
				t.Fatalf("parseDecimal(%#v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}

	for _, in := range []any{"", "abc", ".", nil, false, map[string]any{}} {
		if got := parseDecimal(in); !math.IsNaN(got) {
			t.Fatalf("parseDecimal(%#v) = %v, want NaN", in, got)
		}
	}
}

func TestNormalize_MalformedNumbersDegrade(t *testing.T) {
	team := Normalize(RawRecord{"Club_name": "AS Monaco", "Squad": "n/a", "Foreigners": "21", "age": "?"})

	if team.Squad.Valid {
		t.Fatalf("Squad = %#v, want invalid", team.Squad)
	}
	if team.Squad.String() != "NaN" {
		t.Fatalf("Squad.String() = %q, want NaN", team.Squad.String())
	}
	if !math.IsNaN(team.Age) {
		t.Fatalf("Age = %v, want NaN", team.Age)
	}
	if !team.Malformed() {
		t.Fatal("Malformed() = false, want true")
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	raw := RawRecord{"Club_name": "Juventus FC", "Squad": "29", "age": "x", "market value": 12.5}
	a, b := Normalize(raw), Normalize(raw)

	// NaN never equals itself, so compare the rendered age.
	if a.AgeString() != b.AgeString() {
		t.Fatalf("age differs: %q vs %q", a.AgeString(), b.AgeString())
	}
	a.Age, b.Age = 0, 0
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Normalize not deterministic: %#v vs %#v", a, b)
	}
	if a.MarketValue != "12.5" {
		t.Fatalf("MarketValue = %q, want 12.5", a.MarketValue)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		25:        "25",
		123456789: "123456789",
		0.5:       "0.5",
		1e21:      "1e+21",
		-4:        "-4",
	}
	for in, want := range cases {
		if got := formatNumber(in); got != want {
			t.Fatalf("formatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
