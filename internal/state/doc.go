// Package state derives what Pitchside shows from what the user has done.
//
// # Overview
//
// State holds the three pieces of transient view state: the search term, the
// current page (1-based) and the selected team. Browser owns everything that
// is fixed for a session (the normalized teams, the page size and the search
// policy) and exposes two pure functions:
//
//	next := browser.Apply(current, state.Navigate{Direction: state.Next})
//	view := browser.Derive(next)
//
// Apply is a reducer: it takes a State and an Action and returns a new State.
// Derive turns a State into a View (filtered list, visible page, pagination
// flags, selection). The UI calls Derive after every transition and renders
// only the View, so none of this package knows about Bubble Tea.
//
// # Actions
//
//   - SetSearch: replace the search term (and reset to page 1 under ResetPage)
//   - Navigate: Next only moves while more rows follow; Previous stops at 1
//   - Select / Deselect: open or close the detail overlay; search and page
//     are untouched
//
// Impossible moves are no-ops, never errors.
//
// # Invariants
//
//   - View.Filtered is a subsequence of the teams in their original order
//   - View.Page is a contiguous window of View.Filtered, at most PageSize long
//   - Under ResetPage, 1 <= CurrentPage <= TotalPages whenever Filtered is
//     non-empty
//   - CanPrev and CanNext are both false when Filtered is empty
package state
