package state

import (
	"testing"

	"github.com/five82/pitchside/internal/clubs"
)

func lettered(names ...string) []clubs.Team {
	teams := make([]clubs.Team, 0, len(names))
	for _, n := range names {
		teams = append(teams, clubs.Team{Club: n, League: "Test League"})
	}
	return teams
}

func clubNames(teams []clubs.Team) string {
	out := ""
	for _, t := range teams {
		out += t.Club
	}
	return out
}

func TestInitial(t *testing.T) {
	s := Initial()
	if s.SearchTerm != "" || s.CurrentPage != 1 || s.Selected != nil {
		t.Fatalf("Initial() = %#v, want empty term, page 1, no selection", s)
	}
}

func TestNewBrowser_DefaultsPageSize(t *testing.T) {
	if got := NewBrowser(nil, 0, ResetPage).PageSize(); got != DefaultPageSize {
		t.Fatalf("PageSize() = %d, want %d", got, DefaultPageSize)
	}
	if got := NewBrowser(nil, 3, ResetPage).PageSize(); got != 3 {
		t.Fatalf("PageSize() = %d, want 3", got)
	}
}

func TestScenario_EightTeamsTwoPages(t *testing.T) {
	b := NewBrowser(lettered("A", "B", "C", "D", "E", "F", "G", "H"), 6, ResetPage)
	s := Initial()

	v := b.Derive(s)
	if got := clubNames(v.Page); got != "ABCDEF" {
		t.Fatalf("page 1 = %q, want ABCDEF", got)
	}
	if !v.CanNext || v.CanPrev {
		t.Fatalf("page 1 CanNext=%v CanPrev=%v, want true/false", v.CanNext, v.CanPrev)
	}
	if v.TotalPages != 2 {
		t.Fatalf("TotalPages = %d, want 2", v.TotalPages)
	}

	s = b.Apply(s, Navigate{Direction: Next})
	v = b.Derive(s)
	if got := clubNames(v.Page); got != "GH" {
		t.Fatalf("page 2 = %q, want GH", got)
	}
	if v.CanNext || !v.CanPrev {
		t.Fatalf("page 2 CanNext=%v CanPrev=%v, want false/true", v.CanNext, v.CanPrev)
	}

	s = b.Apply(s, Navigate{Direction: Previous})
	if got := clubNames(b.Derive(s).Page); got != "ABCDEF" {
		t.Fatalf("back on page 1 = %q, want ABCDEF", got)
	}
}

func TestNavigate_NoOpsAtBoundaries(t *testing.T) {
	b := NewBrowser(lettered("A", "B", "C", "D", "E", "F", "G", "H"), 6, ResetPage)

	first := Initial()
	if got := b.Apply(first, Navigate{Direction: Previous}); got != first {
		t.Fatalf("Previous on page 1 = %#v, want unchanged", got)
	}

	last := State{CurrentPage: 2}
	if got := b.Apply(last, Navigate{Direction: Next}); got != last {
		t.Fatalf("Next on last page = %#v, want unchanged", got)
	}

	exact := NewBrowser(lettered("A", "B", "C", "D", "E", "F"), 6, ResetPage)
	if got := exact.Apply(first, Navigate{Direction: Next}); got.CurrentPage != 1 {
		t.Fatalf("Next with exactly one full page moved to %d", got.CurrentPage)
	}
}

func TestNavigate_HugePageStaysPut(t *testing.T) {
	b := NewBrowser(lettered("A", "B", "C", "D", "E", "F", "G", "H"), 6, KeepPage)
	huge := State{CurrentPage: 1<<62 + 1}

	if got := b.Apply(huge, Navigate{Direction: Next}); got != huge {
		t.Fatalf("Next from page %d = %#v, want unchanged", huge.CurrentPage, got)
	}

	v := b.Derive(huge)
	if len(v.Page) != 0 || v.CanNext {
		t.Fatalf("Derive(huge page) = page %d rows, CanNext %v; want empty and false", len(v.Page), v.CanNext)
	}
	if !v.CanPrev {
		t.Fatal("CanPrev = false on a page past the end with matches")
	}
}

func TestNavigate_UsesFilteredLength(t *testing.T) {
	b := NewBrowser(lettered("Ax", "Bx", "C", "D", "E", "F", "G", "H"), 2, ResetPage)
	s := b.Apply(Initial(), SetSearch{Term: "x"})
	s = b.Apply(s, Navigate{Direction: Next})
	if s.CurrentPage != 1 {
		t.Fatalf("CurrentPage = %d, want 1 (two matches fit one page)", s.CurrentPage)
	}
}

func TestScenario_NoMatchesDisablesPaging(t *testing.T) {
	for _, policy := range []SearchPolicy{ResetPage, KeepPage} {
		b := NewBrowser(lettered("A", "B", "C", "D", "E", "F", "G", "H"), 6, policy)
		s := b.Apply(Initial(), Navigate{Direction: Next})
		s = b.Apply(s, SetSearch{Term: "zzz"})

		v := b.Derive(s)
		if !v.Empty() || len(v.Page) != 0 {
			t.Fatalf("policy %d: page = %q, want empty", policy, clubNames(v.Page))
		}
		if v.CanNext || v.CanPrev {
			t.Fatalf("policy %d: CanNext=%v CanPrev=%v, want both false", policy, v.CanNext, v.CanPrev)
		}
		if v.TotalPages != 0 {
			t.Fatalf("policy %d: TotalPages = %d, want 0", policy, v.TotalPages)
		}
	}
}

func TestSetSearch_Policies(t *testing.T) {
	teams := lettered("Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta")

	reset := NewBrowser(teams, 6, ResetPage)
	s := reset.Apply(Initial(), Navigate{Direction: Next})
	s = reset.Apply(s, SetSearch{Term: "eta"})
	if s.CurrentPage != 1 {
		t.Fatalf("ResetPage: CurrentPage = %d, want 1", s.CurrentPage)
	}
	if got := clubNames(reset.Derive(s).Page); got != "BetaZetaEtaTheta" {
		t.Fatalf("ResetPage: page = %q", got)
	}

	keep := NewBrowser(teams, 6, KeepPage)
	s = keep.Apply(Initial(), Navigate{Direction: Next})
	s = keep.Apply(s, SetSearch{Term: "eta"})
	if s.CurrentPage != 2 {
		t.Fatalf("KeepPage: CurrentPage = %d, want 2", s.CurrentPage)
	}
	v := keep.Derive(s)
	if len(v.Page) != 0 || len(v.Filtered) != 4 {
		t.Fatalf("KeepPage: page=%d filtered=%d, want 0 and 4", len(v.Page), len(v.Filtered))
	}
	if !v.CanPrev {
		t.Fatal("KeepPage: CanPrev = false, want a way back to the matches")
	}
}

func TestSetSearch_SameTermKeepsPage(t *testing.T) {
	b := NewBrowser(lettered("A", "B", "C", "D", "E", "F", "G", "H"), 6, ResetPage)
	s := b.Apply(Initial(), Navigate{Direction: Next})
	if got := b.Apply(s, SetSearch{Term: ""}); got.CurrentPage != 2 {
		t.Fatalf("CurrentPage = %d, want 2", got.CurrentPage)
	}
}

func TestSelectDeselect_PreservesSearchAndPage(t *testing.T) {
	teams := lettered("A1", "A2", "A3", "A4", "A5", "A6", "A7", "B")
	b := NewBrowser(teams, 6, ResetPage)

	s := b.Apply(Initial(), SetSearch{Term: "a"})
	s = b.Apply(s, Navigate{Direction: Next})
	picked := &b.Teams()[6]
	s = b.Apply(s, Select{Team: picked})

	v := b.Derive(s)
	if v.Selected == nil || v.Selected.Club != "A7" {
		t.Fatalf("Selected = %#v, want A7", v.Selected)
	}

	s = b.Apply(s, Deselect{})
	if s.Selected != nil {
		t.Fatalf("Selected = %#v, want nil", s.Selected)
	}
	if s.SearchTerm != "a" || s.CurrentPage != 2 {
		t.Fatalf("Deselect changed state: term=%q page=%d", s.SearchTerm, s.CurrentPage)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	b := NewBrowser(lettered("A", "B", "C", "D", "E", "F", "G"), 6, ResetPage)
	before := Initial()
	_ = b.Apply(before, Navigate{Direction: Next})
	_ = b.Apply(before, SetSearch{Term: "a"})
	if before != Initial() {
		t.Fatalf("input state mutated: %#v", before)
	}
}
