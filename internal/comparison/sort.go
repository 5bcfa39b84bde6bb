package comparison

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/guttosm/pricediff/internal/domain/models"
)

// DefaultLocale is the collation locale used when none is configured.
var DefaultLocale = language.MustParse("es-AR")

// Difference ranks: numeric rows first, then numeric rows lacking a value,
// then every non-numeric row.
const (
	rankNumeric = iota
	rankNumericWithoutValue
	rankNonNumeric
)

// Sorter orders record lists for a given collation locale.
//
// A Sorter is safe for concurrent use: collators are not, so one is built
// per Sort call.
type Sorter struct {
	tag language.Tag
}

// NewSorter returns a Sorter comparing text columns with the rules of tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{tag: tag}
}

// Locale returns the collation locale of s.
func (s *Sorter) Locale() language.Tag { return s.tag }

// Sort returns a new slice holding records in the order given by state.
//
// Records are stable-sorted ascending by the active column and the whole
// result is reversed for Desc. For the difference column this keeps
// non-numeric rows after numeric ones in ascending order and before them in
// descending order. The input is never modified.
func (s *Sorter) Sort(records []models.ChangeRecord, state SortState) []models.ChangeRecord {
	out := make([]models.ChangeRecord, len(records))
	copy(out, records)

	slices.SortStableFunc(out, s.compareFunc(state.Column))
	if state.Direction == Desc {
		slices.Reverse(out)
	}
	return out
}

// Derive filters records with c and orders the result with state.
func (s *Sorter) Derive(records []models.ChangeRecord, c Criteria, state SortState) []models.ChangeRecord {
	return s.Sort(Filter(records, c), state)
}

func (s *Sorter) compareFunc(col Column) func(a, b models.ChangeRecord) int {
	switch col {
	case ColumnCode:
		coll := collate.New(s.tag)
		return func(a, b models.ChangeRecord) int {
			return coll.CompareString(a.Code, b.Code)
		}
	case ColumnDescription:
		coll := collate.New(s.tag)
		return func(a, b models.ChangeRecord) int {
			return coll.CompareString(a.Description, b.Description)
		}
	default:
		return compareDifference
	}
}

func compareDifference(a, b models.ChangeRecord) int {
	ra, rb := differenceRank(a), differenceRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	if ra == rankNumeric {
		return a.DifferenceValue.Decimal.Cmp(b.DifferenceValue.Decimal)
	}
	return 0
}

func differenceRank(r models.ChangeRecord) int {
	switch {
	case !r.IsNumeric():
		return rankNonNumeric
	case !r.DifferenceValue.Valid:
		return rankNumericWithoutValue
	default:
		return rankNumeric
	}
}
