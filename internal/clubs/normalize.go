package clubs

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// RawRecord is one object from the dataset, keyed by the source's field names.
type RawRecord map[string]any

// Source field names.
const (
	keyClub             = "Club_name"
	keyLeague           = "League"
	keySquad            = "Squad"
	keyForeigners       = "Foreigners"
	keyAge              = "age"
	keyMarketValue      = "market value"
	keyTotalMarketValue = "Total market value"
	keyDescription      = "Description"
	keyLogo             = "logo"
	keyURL              = "url"
)

// Normalize maps a raw record onto a Team. Numeric fields that do not parse
// become NaN markers instead of errors, so every record yields a team.
func Normalize(raw RawRecord) Team {
	return Team{
		Club:             text(raw[keyClub]),
		League:           league(raw[keyLeague]),
		Squad:            parseCount(raw[keySquad]),
		Foreigners:       parseCount(raw[keyForeigners]),
		Age:              parseDecimal(raw[keyAge]),
		MarketValue:      text(raw[keyMarketValue]),
		TotalMarketValue: text(raw[keyTotalMarketValue]),
		Description:      text(raw[keyDescription]),
		Logo:             text(raw[keyLogo]),
		URL:              text(raw[keyURL]),
	}
}

// NormalizeAll normalizes records in order.
func NormalizeAll(raws []RawRecord) []Team {
	teams := make([]Team, 0, len(raws))
	for _, raw := range raws {
		teams = append(teams, Normalize(raw))
	}
	return teams
}

func league(v any) string {
	if f, ok := v.(float64); ok && (f == 0 || math.IsNaN(f)) {
		return DefaultLeague
	}
	if s := text(v); s != "" {
		return s
	}
	return DefaultLeague
}

// text renders strings and numbers; anything else is treated as absent.
func text(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return formatNumber(x)
	case bool:
		if x {
			return "true"
		}
	}
	return ""
}

// formatNumber prints a JSON number the way it reads in the source document.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

func numericSource(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case float64:
		return formatNumber(x), true
	}
	return "", false
}

// parseCount reads the leading base-10 integer of a value: surrounding
// whitespace and trailing garbage are ignored, no digits means invalid.
// Runs of digits beyond the int range saturate at math.MaxInt or math.MinInt.
func parseCount(v any) Count {
	s, ok := numericSource(v)
	if !ok {
		return Count{}
	}
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return Count{}
	}

	n, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Count{}
	}
	return Count{Value: int(n), Valid: true}
}

var decimalPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// parseDecimal reads the longest leading decimal literal of a value, or NaN.
func parseDecimal(v any) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	s, ok := numericSource(v)
	if !ok {
		return math.NaN()
	}
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	lit := decimalPrefix.FindString(s)
	if lit == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		// Out-of-range literals still carry a sign.
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}
