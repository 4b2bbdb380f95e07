// Package listview holds the shared list-page machinery: the in-memory
// predicate filter applied over a fetched page and the row presenter that
// turns records into display cells.
package listview

import (
	"strings"

	"staffdesk/internal/query"
)

// RowFields is the filterable view of one record.
type RowFields struct {
	Text  []string          // substring targets, OR-combined
	Enums map[string]string // exact case-insensitive match
	IDs   map[string]string // exact match
}

// Criteria mirrors the active filter set. Empty criterion = no constraint.
type Criteria struct {
	Search string
	Enums  map[string]string
	IDs    map[string]string
}

// CriteriaFrom splits ListParams fields into enum and identifier criteria.
func CriteriaFrom(p query.ListParams, enumNames, idNames []string) Criteria {
	c := Criteria{Search: p.Search, Enums: map[string]string{}, IDs: map[string]string{}}
	for _, name := range enumNames {
		if v := p.Field(name); v != "" {
			c.Enums[name] = v
		}
	}
	for _, name := range idNames {
		if v := p.Field(name); v != "" {
			c.IDs[name] = v
		}
	}
	return c
}

// Apply filters items by c: case-insensitive substring OR across text
// fields, exact case-insensitive enum match, exact ID match, AND across
// distinct criteria. With no criteria set it returns the input unchanged.
// Used as a defensive re-application after the repository has already
// filtered server-side.
func Apply[T any](items []T, c Criteria, fields func(T) RowFields) []T {
	if c.isEmpty() {
		return items
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if c.matches(fields(item)) {
			out = append(out, item)
		}
	}
	return out
}

func (c Criteria) isEmpty() bool {
	if strings.TrimSpace(c.Search) != "" {
		return false
	}
	for _, v := range c.Enums {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	for _, v := range c.IDs {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func (c Criteria) matches(f RowFields) bool {
	if search := strings.ToLower(strings.TrimSpace(c.Search)); search != "" {
		hit := false
		for _, t := range f.Text {
			if strings.Contains(strings.ToLower(t), search) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	for name, want := range c.Enums {
		if strings.TrimSpace(want) == "" {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(want), strings.TrimSpace(f.Enums[name])) {
			return false
		}
	}

	for name, want := range c.IDs {
		if strings.TrimSpace(want) == "" {
			continue
		}
		if strings.TrimSpace(want) != strings.TrimSpace(f.IDs[name]) {
			return false
		}
	}
	return true
}
