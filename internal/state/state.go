package state

import (
	"github.com/five82/pitchside/internal/clubs"
)

// DefaultPageSize is the number of rows on one page.
const DefaultPageSize = 6

// State is the transient view state. It is never mutated in place: Apply
// returns a new value for every transition.
type State struct {
	SearchTerm  string
	CurrentPage int // 1-based
	Selected    *clubs.Team
}

// Initial returns the session start state.
func Initial() State {
	return State{CurrentPage: 1}
}

// Direction is a pagination step.
type Direction int

const (
	Previous Direction = iota
	Next
)

// Action is a user interaction that changes State.
type Action interface {
	isAction()
}

// SetSearch replaces the search term.
type SetSearch struct{ Term string }

// Navigate moves one page in Direction.
type Navigate struct{ Direction Direction }

// Select opens the detail overlay for Team.
type Select struct{ Team *clubs.Team }

// Deselect closes the detail overlay.
type Deselect struct{}

func (SetSearch) isAction() {}
func (Navigate) isAction()  {}
func (Select) isAction()    {}
func (Deselect) isAction()  {}

// SearchPolicy decides what a new search term does to the current page.
type SearchPolicy int

const (
	// ResetPage returns to page 1 whenever the search term changes.
	ResetPage SearchPolicy = iota
	// KeepPage leaves the page alone, which can strand the view on an
	// empty page past the end of the new results.
	KeepPage
)

// Browser holds what does not change during a session: the teams, the page
// size and the search policy.
type Browser struct {
	teams    []clubs.Team
	pageSize int
	policy   SearchPolicy
}

// NewBrowser builds a Browser. Page sizes below one use DefaultPageSize.
func NewBrowser(teams []clubs.Team, pageSize int, policy SearchPolicy) *Browser {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Browser{teams: teams, pageSize: pageSize, policy: policy}
}

// Teams returns the full normalized list.
func (b *Browser) Teams() []clubs.Team {
	return b.teams
}

// PageSize returns the rows per page.
func (b *Browser) PageSize() int {
	return b.pageSize
}

// Apply returns the state after action. Unknown actions leave s unchanged.
func (b *Browser) Apply(s State, action Action) State {
	switch a := action.(type) {
	case SetSearch:
		if a.Term == s.SearchTerm {
			return s
		}
		s.SearchTerm = a.Term
		if b.policy == ResetPage {
			s.CurrentPage = 1
		}
	case Navigate:
		switch a.Direction {
		case Next:
			if hasNext(s.CurrentPage, len(Filter(b.teams, s.SearchTerm)), b.pageSize) {
				s.CurrentPage++
			}
		case Previous:
			if s.CurrentPage > 1 {
				s.CurrentPage--
			}
		}
	case Select:
		s.Selected = a.Team
	case Deselect:
		s.Selected = nil
	}
	return s
}
