package comparison

import (
	"fmt"
	"strings"
)

// Column is a sortable column of the comparison table.
type Column int

const (
	ColumnCode Column = iota
	ColumnDescription
	ColumnDifference
)

var columnNames = []string{"code", "description", "difference"}

func (c Column) String() string {
	if c >= 0 && int(c) < len(columnNames) {
		return columnNames[c]
	}
	return fmt.Sprintf("Column(%d)", int(c))
}

// MarshalText encodes the column by name.
func (c Column) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a column name, see ParseColumn.
func (c *Column) UnmarshalText(b []byte) error {
	v, err := ParseColumn(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseColumn resolves a case-insensitive column name.
func ParseColumn(s string) (Column, error) {
	for i, name := range columnNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Column(i), nil
		}
	}
	return 0, fmt.Errorf("unknown sort column %q", s)
}

// Direction is the sort direction of the active column.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// MarshalText encodes the direction as "asc" or "desc".
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText decodes a direction, see ParseDirection.
func (d *Direction) UnmarshalText(b []byte) error {
	v, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// ParseDirection resolves "asc" or "desc", case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return 0, fmt.Errorf("unknown sort direction %q", s)
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// SortState is the (column, direction) pair governing the table order.
type SortState struct {
	Column    Column    `json:"column" swaggertype:"string" example:"difference"`
	Direction Direction `json:"direction" swaggertype:"string" example:"desc"`
}

// DefaultSortState is the order a fresh view starts with: largest
// difference first.
func DefaultSortState() SortState {
	return SortState{Column: ColumnDifference, Direction: Desc}
}

// Select applies a column selection: the active column flips its direction,
// any other column becomes active in ascending order.
func (s SortState) Select(c Column) SortState {
	if c == s.Column {
		return SortState{Column: c, Direction: s.Direction.Flip()}
	}
	return SortState{Column: c, Direction: Asc}
}
