package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the league column is dropped.
	LayoutCompactWidth = 70

	// LayoutMaxTableWidth caps the table so wide terminals keep it readable.
	LayoutMaxTableWidth = 110
)

// Overlay sizing.
const (
	// DetailModalWidth is the preferred width of the club detail overlay.
	DetailModalWidth = 84

	// HelpModalWidth is the width of the help overlay.
	HelpModalWidth = 44
)

// Table column widths in cells.
const (
	colLogo       = 2
	colLeague     = 16
	colSquad      = 6
	colForeigners = 11
)
