package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as JSON numbers in both directions.
	decimal.MarshalJSONWithoutQuotes = true
}

// naiveLayouts are the timestamp forms the upstream emits without a zone.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// FileInfo describes the provenance of one snapshot file.
type FileInfo struct {
	Name       string    `json:"name" example:"lista_2025-09-18.xls"`
	ModifiedAt time.Time `json:"modified_at" example:"2025-09-18T08:30:00Z"`
}

// UnmarshalJSON accepts RFC 3339 timestamps as well as naive ISO timestamps,
// which are read in the local zone.
func (f *FileInfo) UnmarshalJSON(data []byte) error {
	var aux struct {
		Name       string `json:"name"`
		ModifiedAt string `json:"modified_at"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("decode file info: %w", err)
	}
	f.Name = aux.Name
	f.ModifiedAt = time.Time{}
	if aux.ModifiedAt == "" {
		return nil
	}

	ts, err := parseTimestamp(aux.ModifiedAt)
	if err != nil {
		return fmt.Errorf("decode file info %q: %w", aux.Name, err)
	}
	f.ModifiedAt = ts
	return nil
}

func parseTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return ts, nil
	}
	for _, layout := range naiveLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid modified_at %q", s)
}

// ComparisonResponse is the full unit of data delivered by the comparison
// backend. It is replaced wholesale on every reload.
//
// Error is set iff Success is false; Changes is set iff Success is true.
type ComparisonResponse struct {
	Success       bool           `json:"success"`
	Error         string         `json:"error,omitempty"`
	TodayFile     *FileInfo      `json:"today_file,omitempty"`
	YesterdayFile *FileInfo      `json:"yesterday_file,omitempty"`
	Changes       []ChangeRecord `json:"changes"`
}

// Failure builds an unsuccessful response carrying msg.
func Failure(msg string) ComparisonResponse {
	return ComparisonResponse{Success: false, Error: msg}
}
