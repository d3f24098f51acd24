// Package ui implements Pitchside's terminal interface with Bubble Tea.
//
// Model keeps a state.State and the state.View derived from it. Every key
// that changes what is shown is turned into a state.Action, applied through
// state.Browser.Apply, and followed by a fresh Derive; rendering reads only
// the View. Cursor position, the search box, the help overlay and the theme
// are presentation details and live on the Model itself.
//
// Screen layout, top to bottom:
//
//   - header: title and result count
//   - search bar: "/" focuses it, typing filters live, enter keeps the
//     term, esc clears it
//   - table: crest marker, club, league, squad and foreigners for the page
//   - pagination: Back and Next controls with a page indicator
//   - command bar: key hints or the last notice
//
// Enter on a row opens the detail overlay. It shows the club's stats, its
// history and a "More details" OSC 8 link; y copies that link.
package ui
