package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/pricediff/internal/comparison"
	"github.com/guttosm/pricediff/internal/domain/models"
)

type stubFetcher struct {
	resp  models.ComparisonResponse
	calls int
}

func (s *stubFetcher) FetchComparison(context.Context) models.ComparisonResponse {
	s.calls++
	return s.resp
}

// gatedFetcher blocks each fetch until a response is sent on its channel.
type gatedFetcher struct {
	started chan struct{}
	next    chan models.ComparisonResponse
}

func (g *gatedFetcher) FetchComparison(context.Context) models.ComparisonResponse {
	g.started <- struct{}{}
	return <-g.next
}

func p(v float64) decimal.NullDecimal { return decimal.NewNullDecimal(decimal.NewFromFloat(v)) }

func okResponse() models.ComparisonResponse {
	return models.ComparisonResponse{
		Success:       true,
		TodayFile:     &models.FileInfo{Name: "hoy.xls"},
		YesterdayFile: &models.FileInfo{Name: "ayer.xls"},
		Changes: []models.ChangeRecord{
			models.NewChangeRecord("A", "Alicate", p(10), p(15)),
			models.NewChangeRecord("B", "Broca", decimal.NullDecimal{}, p(3)),
			models.NewChangeRecord("C", "Cinta", p(10), p(8)),
			models.NewChangeRecord("D", "Destornillador", p(4), decimal.NullDecimal{}),
		},
	}
}

func rowCodes(v View) []string {
	out := make([]string, len(v.Rows))
	for i, r := range v.Rows {
		out[i] = r.Code
	}
	return out
}

func assertRows(t *testing.T, v View, want ...string) {
	t.Helper()
	got := rowCodes(v)
	if len(got) != len(want) {
		t.Fatalf("rows: want %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rows: want %v got %v", want, got)
		}
	}
}

func newService(f Fetcher) ViewService {
	return NewViewService(f, comparison.NewSorter(comparison.DefaultLocale))
}

func TestViewService_InitialState(t *testing.T) {
	v := newService(&stubFetcher{}).Snapshot()
	if v.Loading || v.Success || v.Error != UnknownError || len(v.Rows) != 0 || v.Rows == nil {
		t.Fatalf("unexpected initial view %+v", v)
	}
	if v.Sort != comparison.DefaultSortState() || v.Criteria != (comparison.Criteria{}) {
		t.Fatalf("unexpected initial criteria/sort %+v %+v", v.Criteria, v.Sort)
	}
}

func TestViewService_ReloadAndDerive(t *testing.T) {
	f := &stubFetcher{resp: okResponse()}
	svc := newService(f)

	v := svc.Reload(context.Background())
	if f.calls != 1 || !v.Success || v.Loading || v.Total != 4 {
		t.Fatalf("unexpected view after reload %+v", v)
	}
	if v.TodayFile == nil || v.TodayFile.Name != "hoy.xls" || v.YesterdayFile.Name != "ayer.xls" {
		t.Fatalf("file info missing %+v", v)
	}
	// default: difference desc, non-numeric rows first in reverse input order
	assertRows(t, v, "D", "B", "A", "C")

	assertRows(t, svc.SelectSortColumn(comparison.ColumnDifference), "C", "A", "B", "D")
	assertRows(t, svc.SelectSortColumn(comparison.ColumnCode), "A", "B", "C", "D")
	assertRows(t, svc.SelectSortColumn(comparison.ColumnCode), "D", "C", "B", "A")

	assertRows(t, svc.SetOnlyNumeric(true), "C", "A")
	assertRows(t, svc.SetOnlyNumeric(false), "D", "C", "B", "A")
	assertRows(t, svc.SetShowNew(true), "B")
	v = svc.SetShowMissing(true)
	assertRows(t, v)
	if !v.Criteria.ShowNew || !v.Criteria.ShowMissing {
		t.Fatalf("criteria not kept %+v", v.Criteria)
	}
	svc.SetShowNew(false)
	assertRows(t, svc.SetShowMissing(false), "D", "C", "B", "A")
	assertRows(t, svc.SetSearch("CIN"), "C")
	assertRows(t, svc.SetSearch(""), "D", "C", "B", "A")
}

func TestViewService_FetchFailure(t *testing.T) {
	f := &stubFetcher{resp: okResponse()}
	svc := newService(f)
	svc.Reload(context.Background())

	f.resp = models.Failure("Error al consultar el backend: Internal Server Error")
	v := svc.Reload(context.Background())
	if v.Success || v.Error != "Error al consultar el backend: Internal Server Error" {
		t.Fatalf("unexpected failure view %+v", v)
	}
	if len(v.Rows) != 0 || v.Total != 0 || v.TodayFile != nil {
		t.Fatalf("failed reload must discard previous data: %+v", v)
	}

	f.resp = models.ComparisonResponse{Success: false}
	if v := svc.Reload(context.Background()); v.Error != UnknownError {
		t.Fatalf("want generic error, got %q", v.Error)
	}
}

func TestViewService_SuccessWithoutChanges(t *testing.T) {
	svc := newService(&stubFetcher{resp: models.ComparisonResponse{Success: true}})
	v := svc.Reload(context.Background())
	if !v.Success || v.Error != "" || v.Rows == nil || len(v.Rows) != 0 {
		t.Fatalf("unexpected %+v", v)
	}
}

func TestViewService_LoadingDuringFetch(t *testing.T) {
	g := &gatedFetcher{started: make(chan struct{}), next: make(chan models.ComparisonResponse)}
	svc := newService(g)

	done := make(chan View)
	go func() { done <- svc.Reload(context.Background()) }()

	<-g.started
	if !svc.Snapshot().Loading {
		t.Fatalf("expected loading while fetch is outstanding")
	}
	g.next <- okResponse()

	select {
	case v := <-done:
		if v.Loading || !v.Success {
			t.Fatalf("unexpected view after fetch %+v", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("reload did not finish")
	}
}

func TestViewService_LastResolvedWins(t *testing.T) {
	g := &gatedFetcher{started: make(chan struct{}), next: make(chan models.ComparisonResponse)}
	svc := newService(g)

	done := make(chan View, 2)
	go func() { done <- svc.Reload(context.Background()) }()
	<-g.started
	go func() { done <- svc.Reload(context.Background()) }()
	<-g.started

	// The fetches resolve in arbitrary pairing; the second response sent is
	// always the last one stored.
	g.next <- okResponse()
	<-done
	g.next <- models.Failure("late failure")
	<-done

	v := svc.Snapshot()
	if v.Success || v.Error != "late failure" || v.Loading {
		t.Fatalf("expected the last resolved response to win, got %+v", v)
	}
}

func TestViewService_QueryLeavesStateUntouched(t *testing.T) {
	svc := newService(&stubFetcher{resp: okResponse()})
	svc.Reload(context.Background())

	q := svc.Query(comparison.Criteria{OnlyNumeric: true}, comparison.SortState{Column: comparison.ColumnDifference, Direction: comparison.Asc})
	assertRows(t, q, "C", "A")

	v := svc.Snapshot()
	if v.Criteria != (comparison.Criteria{}) || v.Sort != comparison.DefaultSortState() {
		t.Fatalf("Query must not change stored state: %+v %+v", v.Criteria, v.Sort)
	}
}

func TestViewService_UpdateCriteriaIsAtomic(t *testing.T) {
	svc := NewViewService(&stubFetcher{resp: okResponse()}, comparison.NewSorter(comparison.DefaultLocale))
	svc.Reload(context.Background())

	full := comparison.Criteria{Search: "a", OnlyNumeric: true, ShowMissing: true}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			svc.UpdateCriteria(func(comparison.Criteria) comparison.Criteria { return full })
			svc.UpdateCriteria(func(comparison.Criteria) comparison.Criteria { return comparison.Criteria{} })
		}
	}()

	for {
		select {
		case <-done:
			return
		default:
		}
		got := svc.Snapshot().Criteria
		if got != full && got != (comparison.Criteria{}) {
			t.Fatalf("observed partially applied criteria %+v", got)
		}
	}
}
