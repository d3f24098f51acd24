package state

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/five82/pitchside/internal/clubs"
)

// View is everything the UI renders for one State.
type View struct {
	SearchTerm  string
	Filtered    []clubs.Team
	Page        []clubs.Team
	CurrentPage int
	TotalPages  int
	CanPrev     bool
	CanNext     bool
	Selected    *clubs.Team
}

// Empty reports whether the search matched nothing.
func (v View) Empty() bool {
	return len(v.Filtered) == 0
}

// Derive computes the views for s. It is called after every transition.
func (b *Browser) Derive(s State) View {
	filtered := Filter(b.teams, s.SearchTerm)
	return View{
		SearchTerm:  s.SearchTerm,
		Filtered:    filtered,
		Page:        Paginate(filtered, s.CurrentPage, b.pageSize),
		CurrentPage: s.CurrentPage,
		TotalPages:  TotalPages(len(filtered), b.pageSize),
		CanPrev:     s.CurrentPage > 1 && len(filtered) > 0,
		CanNext:     hasNext(s.CurrentPage, len(filtered), b.pageSize),
		Selected:    s.Selected,
	}
}

// Filter keeps teams whose club name contains term, ignoring case. Teams
// without a club name never match. The result preserves input order.
func Filter(teams []clubs.Team, term string) []clubs.Team {
	needle := fold(term)
	out := make([]clubs.Team, 0, len(teams))
	for _, team := range teams {
		if team.Club == "" {
			continue
		}
		if strings.Contains(fold(team.Club), needle) {
			out = append(out, team)
		}
	}
	return out
}

// Paginate returns the page-th window of pageSize teams, clipped to the
// slice. Pages outside the range yield nil.
func Paginate(filtered []clubs.Team, page, pageSize int) []clubs.Team {
	if page < 1 || pageSize < 1 || page > TotalPages(len(filtered), pageSize) {
		return nil
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(filtered))
	return filtered[start:end]
}

// TotalPages returns how many pages n rows fill.
func TotalPages(n, pageSize int) int {
	if n <= 0 || pageSize < 1 {
		return 0
	}
	return (n-1)/pageSize + 1
}

// hasNext reports whether a page follows page. It compares page counts
// rather than row offsets so huge pages cannot overflow.
func hasNext(page, n, pageSize int) bool {
	return page < TotalPages(n, pageSize)
}

func fold(s string) string {
	// cases.Caser is stateful, so build one per call.
	return cases.Lower(language.Und).String(s)
}
