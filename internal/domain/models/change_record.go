package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DifferenceType classifies how the two prices of a record compare.
//
// Exactly one variant holds per record. The zero value is DifferenceInvalid.
type DifferenceType int

const (
	DifferenceInvalid DifferenceType = iota
	DifferenceNumeric
	DifferenceNotInYesterday
	DifferenceNotInToday
)

var differenceNames = map[DifferenceType]string{
	DifferenceInvalid:        "Invalid",
	DifferenceNumeric:        "Numeric",
	DifferenceNotInYesterday: "NotInYesterday",
	DifferenceNotInToday:     "NotInToday",
}

// differenceAliases maps every accepted wire spelling, including the
// upstream's Spanish names, to its variant.
var differenceAliases = map[string]DifferenceType{
	"Invalid":        DifferenceInvalid,
	"Numeric":        DifferenceNumeric,
	"NotInYesterday": DifferenceNotInYesterday,
	"NoEnAyer":       DifferenceNotInYesterday,
	"NotInToday":     DifferenceNotInToday,
	"NoEnHoy":        DifferenceNotInToday,
}

func (d DifferenceType) String() string {
	if s, ok := differenceNames[d]; ok {
		return s
	}
	return fmt.Sprintf("DifferenceType(%d)", int(d))
}

// MarshalText encodes the variant with its canonical name.
func (d DifferenceType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText never fails: unknown spellings decode to DifferenceInvalid.
func (d *DifferenceType) UnmarshalText(b []byte) error {
	*d = differenceAliases[string(b)]
	return nil
}

// Status classifies the presence of a record across both snapshots.
type Status int

const (
	StatusExisting Status = iota
	StatusNewToday
	StatusMissingToday
)

var statusNames = map[Status]string{
	StatusExisting:     "Existing",
	StatusNewToday:     "NewToday",
	StatusMissingToday: "MissingToday",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalText encodes the status with its canonical name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseStatus returns the status named by s and whether the name is known.
func ParseStatus(s string) (Status, bool) {
	for st, name := range statusNames {
		if name == s {
			return st, true
		}
	}
	return StatusExisting, false
}

// DeriveStatus applies the presence rules: a missing yesterday price means the
// item is new today, a missing today price means it disappeared.
func DeriveStatus(yesterday, today decimal.NullDecimal) Status {
	switch {
	case !yesterday.Valid:
		return StatusNewToday
	case !today.Valid:
		return StatusMissingToday
	default:
		return StatusExisting
	}
}

// Classify returns the difference type of a price pair and, for numeric
// differences only, today minus yesterday.
func Classify(yesterday, today decimal.NullDecimal) (DifferenceType, decimal.NullDecimal) {
	switch {
	case yesterday.Valid && today.Valid:
		return DifferenceNumeric, decimal.NewNullDecimal(today.Decimal.Sub(yesterday.Decimal))
	case today.Valid:
		return DifferenceNotInYesterday, decimal.NullDecimal{}
	case yesterday.Valid:
		return DifferenceNotInToday, decimal.NullDecimal{}
	default:
		return DifferenceInvalid, decimal.NullDecimal{}
	}
}

// ChangeRecord is the comparison fact for one catalog code across two snapshots.
//
// Records are immutable once received; consumers filter and reorder views
// over them but never modify them.
//
// Fields:
//   - Code: unique identifier within a response, used as the row key.
//   - Description: human readable label.
//   - PriceYesterday / PriceToday: absent when the item is not in that snapshot.
//   - DifferenceType: how both prices compare.
//   - DifferenceValue: set only when DifferenceType is DifferenceNumeric.
//   - DifferenceLabel: pre-rendered text owned by the producer.
//   - Status: presence classification derived from the prices.
type ChangeRecord struct {
	Code            string              `json:"code" example:"A-1001"`
	Description     string              `json:"description" example:"Tornillo 6mm"`
	PriceYesterday  decimal.NullDecimal `json:"price_yesterday" swaggertype:"number"`
	PriceToday      decimal.NullDecimal `json:"price_today" swaggertype:"number"`
	DifferenceType  DifferenceType      `json:"difference_type" swaggertype:"string" example:"Numeric"`
	DifferenceValue decimal.NullDecimal `json:"difference_value" swaggertype:"number"`
	DifferenceLabel string              `json:"difference_label" example:"+5.00"`
	Status          Status              `json:"status" swaggertype:"string" example:"Existing"`
}

// NewChangeRecord builds a record from a price pair, deriving its difference
// type, value, label and status.
func NewChangeRecord(code, description string, yesterday, today decimal.NullDecimal) ChangeRecord {
	kind, value := Classify(yesterday, today)
	return ChangeRecord{
		Code:            code,
		Description:     description,
		PriceYesterday:  yesterday,
		PriceToday:      today,
		DifferenceType:  kind,
		DifferenceValue: value,
		DifferenceLabel: differenceLabel(kind, value),
		Status:          DeriveStatus(yesterday, today),
	}
}

// IsNumeric reports whether the record carries a numeric difference.
func (r ChangeRecord) IsNumeric() bool {
	return r.DifferenceType == DifferenceNumeric
}

// UnmarshalJSON decodes a record and derives the status from the prices when
// the payload omits it or names an unknown one.
func (r *ChangeRecord) UnmarshalJSON(data []byte) error {
	type alias ChangeRecord
	aux := struct {
		*alias
		Status string `json:"status"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("decode change record: %w", err)
	}
	if st, ok := ParseStatus(aux.Status); ok {
		r.Status = st
	} else {
		r.Status = DeriveStatus(r.PriceYesterday, r.PriceToday)
	}
	return nil
}

func differenceLabel(kind DifferenceType, value decimal.NullDecimal) string {
	switch kind {
	case DifferenceNumeric:
		if value.Decimal.IsPositive() {
			return "+" + value.Decimal.StringFixed(2)
		}
		return value.Decimal.StringFixed(2)
	case DifferenceNotInYesterday:
		return "No en ayer"
	case DifferenceNotInToday:
		return "No en hoy"
	default:
		return "Dato inválido"
	}
}
