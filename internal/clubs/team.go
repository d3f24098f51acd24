package clubs

import (
	"math"
	"strconv"
)

// DefaultLeague is used when a record carries no league.
const DefaultLeague = "Not Provided"

// Count is an integer field that may have failed to parse.
type Count struct {
	Value int
	Valid bool
}

// String renders the count, or NaN when it did not parse.
func (c Count) String() string {
	if !c.Valid {
		return "NaN"
	}
	return strconv.Itoa(c.Value)
}

// Team is the normalized form of one club record.
type Team struct {
	Club             string
	League           string
	Squad            Count
	Foreigners       Count
	Age              float64 // NaN when missing or malformed
	MarketValue      string
	TotalMarketValue string
	Description      string
	Logo             string
	URL              string
}

// HasAge reports whether the average age is worth showing.
func (t Team) HasAge() bool {
	return !math.IsNaN(t.Age) && t.Age != 0
}

// AgeString renders the average age the way numbers read in the source,
// including NaN and Infinity.
func (t Team) AgeString() string {
	return formatNumber(t.Age)
}

// Malformed reports whether any numeric field failed to parse.
func (t Team) Malformed() bool {
	return !t.Squad.Valid || !t.Foreigners.Valid || math.IsNaN(t.Age)
}

// Stat is one labelled row of the detail overlay.
type Stat struct {
	Label string
	Value string
}

// Stats returns the rows shown for a selected team. League, squad size and
// foreign players are always present; age and market values only when set.
func (t Team) Stats() []Stat {
	stats := []Stat{
		{Label: "League", Value: t.League},
		{Label: "Squad Size", Value: t.Squad.String()},
		{Label: "Foreign Players", Value: t.Foreigners.String()},
	}
	if t.HasAge() {
		stats = append(stats, Stat{Label: "Average Age", Value: t.AgeString()})
	}
	if t.MarketValue != "" {
		stats = append(stats, Stat{Label: "Market Value", Value: t.MarketValue})
	}
	if t.TotalMarketValue != "" {
		stats = append(stats, Stat{Label: "Total Market Value", Value: t.TotalMarketValue})
	}
	return stats
}
