// Package clubs loads the football club dataset and normalizes its records.
//
// # Overview
//
// The dataset is a JSON array of objects scraped from a club statistics site.
// Field names are the source's own (Club_name, League, Squad, Foreigners, age,
// "market value", "Total market value", Description, logo, url) and values are
// mostly strings. Pitchside never edits the data: records are decoded once at
// startup, normalized into Team values, and shared read-only with the UI.
//
// # Normalization Rules
//
//   - Squad and Foreigners keep the leading integer of the value ("25 players"
//     is 25). A value without leading digits becomes an invalid Count, shown
//     as NaN. Digit runs too long for an int saturate at the int range
//     instead of turning invalid.
//   - age keeps the leading decimal literal; anything else is NaN.
//   - A missing or empty League becomes "Not Provided".
//   - Text fields pass through; JSON numbers are printed as written.
//
// Normalization never fails. A bad record produces a team with NaN markers
// so one broken row cannot stop the table from rendering.
//
// # Sources
//
// Load with an empty path decodes the copy embedded in the binary
// (data/football_team.json). A non-empty path reads that file instead.
package clubs
