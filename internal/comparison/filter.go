// Package comparison holds the pure view engine over change records: the
// filter criteria, the sort engine and the sort-state machine.
package comparison

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/guttosm/pricediff/internal/domain/models"
)

// Criteria is the immutable set of filter settings applied to a record list.
//
// All conditions are conjunctive; a zero Criteria matches every record.
type Criteria struct {
	Search      string `json:"search" form:"search"`
	OnlyNumeric bool   `json:"only_numeric" form:"only_numeric"`
	ShowNew     bool   `json:"show_new" form:"show_new"`
	ShowMissing bool   `json:"show_missing" form:"show_missing"`
}

// WithSearch returns a copy of c with Search replaced.
func (c Criteria) WithSearch(s string) Criteria {
	c.Search = s
	return c
}

// WithOnlyNumeric returns a copy of c with OnlyNumeric replaced.
func (c Criteria) WithOnlyNumeric(v bool) Criteria {
	c.OnlyNumeric = v
	return c
}

// WithShowNew returns a copy of c with ShowNew replaced.
func (c Criteria) WithShowNew(v bool) Criteria {
	c.ShowNew = v
	return c
}

// WithShowMissing returns a copy of c with ShowMissing replaced.
func (c Criteria) WithShowMissing(v bool) Criteria {
	c.ShowMissing = v
	return c
}

// matcher evaluates one Criteria. It owns a lowercaser, which is stateful,
// so a matcher must not be shared between goroutines.
//
// Search compares lowercase forms only: "ss" does not match "ß".
type matcher struct {
	c     Criteria
	lower cases.Caser
	query string
}

func newMatcher(c Criteria) *matcher {
	m := &matcher{c: c, lower: cases.Lower(language.Und)}
	m.query = m.lower.String(c.Search)
	return m
}

func (m *matcher) match(r models.ChangeRecord) bool {
	if m.query != "" &&
		!strings.Contains(m.lower.String(r.Code), m.query) &&
		!strings.Contains(m.lower.String(r.Description), m.query) {
		return false
	}
	if m.c.OnlyNumeric && !r.IsNumeric() {
		return false
	}
	if m.c.ShowNew && r.Status != models.StatusNewToday {
		return false
	}
	if m.c.ShowMissing && r.Status != models.StatusMissingToday {
		return false
	}
	return true
}

// Filter returns the records matching c, in input order. The input slice is
// never modified; the result is always a fresh slice.
func Filter(records []models.ChangeRecord, c Criteria) []models.ChangeRecord {
	m := newMatcher(c)
	out := make([]models.ChangeRecord, 0, len(records))
	for _, r := range records {
		if m.match(r) {
			out = append(out, r)
		}
	}
	return out
}
