package scanner

import (
	"strings"

	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
)

// Mode selects how a keyword is compared against a label.
type Mode int

const (
	// Contains matches when the lowercased label contains the keyword.
	Contains Mode = iota
	// StartsWith matches when the trimmed, lowercased label starts with the keyword.
	// Leading spaces are ignored, so "  Derivatives" matches "derivatives".
	StartsWith
	// Exact matches when the trimmed, lowercased label equals the keyword.
	Exact
	// ContainsCaseSensitive matches the raw label without case folding.
	ContainsCaseSensitive
)

func (m Mode) String() string {
	switch m {
	case StartsWith:
		return "starts-with"
	case Exact:
		return "exact"
	case ContainsCaseSensitive:
		return "contains-case"
	default:
		return "contains"
	}
}

// Matcher decides whether a row's label belongs to a section.
type Matcher interface {
	MatchRow(models.Row) bool
}

// Match is a single keyword test. Rows without a text label never match.
type Match struct {
	Keyword string
	Mode    Mode
}

// Has returns a Contains match.
func Has(keyword string) Match { return Match{Keyword: keyword, Mode: Contains} }

// Prefix returns a StartsWith match.
func Prefix(keyword string) Match { return Match{Keyword: keyword, Mode: StartsWith} }

// Is returns an Exact match.
func Is(keyword string) Match { return Match{Keyword: keyword, Mode: Exact} }

// HasCase returns a case-sensitive Contains match.
func HasCase(keyword string) Match { return Match{Keyword: keyword, Mode: ContainsCaseSensitive} }

// MatchRow implements Matcher.
func (m Match) MatchRow(r models.Row) bool {
	if !r.HasLabel() {
		return false
	}
	return m.MatchLabel(*r.Label)
}

// MatchLabel tests a label string.
func (m Match) MatchLabel(label string) bool {
	switch m.Mode {
	case ContainsCaseSensitive:
		return strings.Contains(label, m.Keyword)
	case StartsWith:
		return strings.HasPrefix(models.NormalizedLabel(label), strings.ToLower(m.Keyword))
	case Exact:
		return models.NormalizedLabel(label) == models.NormalizedLabel(m.Keyword)
	default:
		return strings.Contains(strings.ToLower(label), strings.ToLower(m.Keyword))
	}
}

func (m Match) String() string { return m.Mode.String() + ":" + m.Keyword }

type anyOf []Matcher

func (a anyOf) MatchRow(r models.Row) bool {
	for _, m := range a {
		if m.MatchRow(r) {
			return true
		}
	}
	return false
}

type allOf []Matcher

func (a allOf) MatchRow(r models.Row) bool {
	for _, m := range a {
		if !m.MatchRow(r) {
			return false
		}
	}
	return len(a) > 0
}

// AnyOf matches rows accepted by at least one matcher.
func AnyOf(ms ...Matcher) Matcher { return anyOf(ms) }

// AllOf matches rows accepted by every matcher.
func AllOf(ms ...Matcher) Matcher { return allOf(ms) }

// Find returns the index of the first row at or after from that matches.
func Find(t *models.Table, m Matcher, from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	for i := from; i < t.Len(); i++ {
		if m.MatchRow(t.At(i)) {
			return i, true
		}
	}
	return -1, false
}

// FindAll returns the indices of every matching row at or after from.
func FindAll(t *models.Table, m Matcher, from int) []int {
	var out []int
	if from < 0 {
		from = 0
	}
	for i := from; i < t.Len(); i++ {
		if m.MatchRow(t.At(i)) {
			out = append(out, i)
		}
	}
	return out
}
