package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens a string to the given cell width, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, "...")
}

// padRight pads a string with spaces to the given cell width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillRight(s, width)
}

// cell truncates then pads so every column lines up.
func cell(s string, width int) string {
	return padRight(truncate(s, width), width)
}

// padLeft right-aligns a string within the given cell width.
func padLeft(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.FillLeft(s, width)
}
