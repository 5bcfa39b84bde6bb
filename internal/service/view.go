package service

import (
	"context"
	"sync"

	"github.com/guttosm/pricediff/internal/comparison"
	"github.com/guttosm/pricediff/internal/domain/models"
	"github.com/guttosm/pricediff/internal/logger"
)

// UnknownError is reported when a failed response carries no message.
const UnknownError = "Error desconocido"

// Fetcher retrieves a complete comparison. Implementations report failures
// inside the response rather than as errors.
type Fetcher interface {
	FetchComparison(ctx context.Context) models.ComparisonResponse
}

// View is the read-only state handed to rendering.
//
// Rows is always derived from the held response, the criteria and the sort
// state at the time the View was taken.
type View struct {
	Loading       bool
	Success       bool
	Error         string
	TodayFile     *models.FileInfo
	YesterdayFile *models.FileInfo
	Rows          []models.ChangeRecord
	Total         int
	Criteria      comparison.Criteria
	Sort          comparison.SortState
}

// ViewService owns the comparison currently on screen together with the
// operator's filter and sort choices.
type ViewService interface {
	Reload(ctx context.Context) View
	SetSearch(search string) View
	SetOnlyNumeric(v bool) View
	SetShowNew(v bool) View
	SetShowMissing(v bool) View
	UpdateCriteria(fn func(comparison.Criteria) comparison.Criteria) View
	SelectSortColumn(c comparison.Column) View
	Snapshot() View
	Query(c comparison.Criteria, s comparison.SortState) View
}

type viewService struct {
	fetcher Fetcher
	sorter  *comparison.Sorter

	mu       sync.RWMutex
	loading  bool
	data     models.ComparisonResponse
	criteria comparison.Criteria
	sort     comparison.SortState
}

// NewViewService returns a ViewService with no data loaded, empty criteria
// and the default sort state.
func NewViewService(fetcher Fetcher, sorter *comparison.Sorter) ViewService {
	return &viewService{
		fetcher: fetcher,
		sorter:  sorter,
		sort:    comparison.DefaultSortState(),
	}
}

// Reload fetches a fresh comparison and replaces the held one wholesale.
//
// Overlapping reloads are not sequenced: whichever fetch resolves last wins,
// and the first one to resolve clears the loading flag.
func (s *viewService) Reload(ctx context.Context) View {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	resp := s.fetcher.FetchComparison(ctx)

	s.mu.Lock()
	s.data = resp
	s.loading = false
	s.mu.Unlock()

	log := logger.With("view")
	if resp.Success {
		log.Info().Int("changes", len(resp.Changes)).Msg("comparison reloaded")
	} else {
		log.Warn().Str("error", resp.Error).Msg("comparison reload failed")
	}
	return s.Snapshot()
}

func (s *viewService) SetSearch(search string) View {
	return s.UpdateCriteria(func(c comparison.Criteria) comparison.Criteria { return c.WithSearch(search) })
}

func (s *viewService) SetOnlyNumeric(v bool) View {
	return s.UpdateCriteria(func(c comparison.Criteria) comparison.Criteria { return c.WithOnlyNumeric(v) })
}

func (s *viewService) SetShowNew(v bool) View {
	return s.UpdateCriteria(func(c comparison.Criteria) comparison.Criteria { return c.WithShowNew(v) })
}

func (s *viewService) SetShowMissing(v bool) View {
	return s.UpdateCriteria(func(c comparison.Criteria) comparison.Criteria { return c.WithShowMissing(v) })
}

func (s *viewService) SelectSortColumn(c comparison.Column) View {
	s.mu.Lock()
	s.sort = s.sort.Select(c)
	s.mu.Unlock()
	return s.Snapshot()
}

// Snapshot derives the view from the current state.
func (s *viewService) Snapshot() View {
	s.mu.RLock()
	data, loading, criteria, sortState := s.data, s.loading, s.criteria, s.sort
	s.mu.RUnlock()
	return s.derive(data, loading, criteria, sortState)
}

// Query derives a view of the held data with ad-hoc criteria and sort state,
// leaving the stored ones untouched.
func (s *viewService) Query(c comparison.Criteria, st comparison.SortState) View {
	s.mu.RLock()
	data, loading := s.data, s.loading
	s.mu.RUnlock()
	return s.derive(data, loading, c, st)
}

// UpdateCriteria applies fn to the stored criteria in one step, so readers
// never observe a partially applied change.
func (s *viewService) UpdateCriteria(fn func(comparison.Criteria) comparison.Criteria) View {
	s.mu.Lock()
	s.criteria = fn(s.criteria)
	s.mu.Unlock()
	return s.Snapshot()
}

// derive runs outside the lock: responses are replaced, never modified, so
// the held change slice is safe to read concurrently.
func (s *viewService) derive(data models.ComparisonResponse, loading bool, c comparison.Criteria, st comparison.SortState) View {
	v := View{
		Loading:       loading,
		Success:       data.Success,
		Error:         data.Error,
		TodayFile:     data.TodayFile,
		YesterdayFile: data.YesterdayFile,
		Rows:          []models.ChangeRecord{},
		Total:         len(data.Changes),
		Criteria:      c,
		Sort:          st,
	}
	if !data.Success {
		if v.Error == "" {
			v.Error = UnknownError
		}
		return v
	}
	if data.Changes != nil {
		v.Rows = s.sorter.Derive(data.Changes, c, st)
	}
	return v
}
