package comparison

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/guttosm/pricediff/internal/domain/models"
)

func p(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

var none = decimal.NullDecimal{}

// numeric builds an existing record whose difference is delta.
func numeric(code string, delta float64) models.ChangeRecord {
	return models.NewChangeRecord(code, "item "+code, p(100), p(100+delta))
}

func newToday(code string) models.ChangeRecord {
	return models.NewChangeRecord(code, "item "+code, none, p(10))
}

func missingToday(code string) models.ChangeRecord {
	return models.NewChangeRecord(code, "item "+code, p(10), none)
}

func codes(records []models.ChangeRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Code
	}
	return out
}

func assertCodes(t *testing.T, got []models.ChangeRecord, want ...string) {
	t.Helper()
	g := codes(got)
	if len(g) != len(want) {
		t.Fatalf("want %v got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("want %v got %v", want, g)
		}
	}
}

func sample() []models.ChangeRecord {
	return []models.ChangeRecord{
		numeric("AB123", 4),
		newToday("xyz"),
		missingToday("abZ"),
		numeric("Q-9", -1.5),
		models.NewChangeRecord("INV", "broken row", none, none),
		{Code: "DESC", Description: "Caño ABierto", DifferenceType: models.DifferenceNumeric, DifferenceValue: p(0), Status: models.StatusExisting},
	}
}

// sortDefault orders records with DefaultLocale collation.
func sortDefault(records []models.ChangeRecord, state SortState) []models.ChangeRecord {
	return NewSorter(DefaultLocale).Sort(records, state)
}
