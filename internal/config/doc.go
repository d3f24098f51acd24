// Package config loads Pitchside's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pitchside/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	data_path = "~/datasets/football_team.json"  # empty: bundled dataset
//	page_size = 6
//	theme = "Nightfox"                            # Nightfox, Kanagawa, Slate
//	keep_page_on_search = false
//	log_path = "~/.local/state/pitchside/pitchside.log"
//
// keep_page_on_search = true keeps the current page when the search term
// changes instead of returning to page 1. A narrower search can then leave
// the table on an empty page; Back still leads to the matches.
//
// # Error Handling
//
// Missing config files are NOT an error. Load returns errors for path
// expansion failures, unreadable files and invalid TOML.
package config
