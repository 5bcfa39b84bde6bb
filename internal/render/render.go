// Package render formats a comparison view for display: locale-aware prices,
// the difference colour class, sort indicators and a terminal table.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/guttosm/pricediff/internal/comparison"
	"github.com/guttosm/pricediff/internal/domain/models"
	"github.com/guttosm/pricediff/internal/service"
)

// Difference classes, used as CSS class names by the browser front end and
// mapped to colours in the terminal table.
const (
	ClassIncrease = "increase"
	ClassDecrease = "decrease"
	ClassNeutral  = "neutral"
)

const (
	indicatorAsc  = "▲"
	indicatorDesc = "▼"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	increaseStyle = cellStyle.Foreground(lipgloss.Color("1"))
	decreaseStyle = cellStyle.Foreground(lipgloss.Color("2"))
	neutralStyle  = cellStyle.Foreground(lipgloss.Color("8"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// FormatPrice renders p with two decimals using the number conventions of
// tag. An absent price renders as the empty string, never as zero.
func FormatPrice(p decimal.NullDecimal, tag language.Tag) string {
	if !p.Valid {
		return ""
	}
	f, _ := p.Decimal.Round(2).Float64()
	return message.NewPrinter(tag).Sprint(number.Decimal(f, number.Scale(2)))
}

// DifferenceClass classifies a numeric difference as an increase, a decrease
// or neutral. Records without a numeric difference have no class.
func DifferenceClass(r models.ChangeRecord) string {
	if !r.IsNumeric() || !r.DifferenceValue.Valid {
		return ""
	}
	switch r.DifferenceValue.Decimal.Sign() {
	case 1:
		return ClassIncrease
	case -1:
		return ClassDecrease
	default:
		return ClassNeutral
	}
}

// SortIndicator returns the arrow shown next to column when it is the active
// sort column, and "" otherwise.
func SortIndicator(st comparison.SortState, column comparison.Column) string {
	if st.Column != column {
		return ""
	}
	if st.Direction == comparison.Desc {
		return indicatorDesc
	}
	return indicatorAsc
}

// Table renders the view as a bordered terminal table preceded by the file
// header. A failed view renders its error instead of rows.
func Table(v service.View, tag language.Tag) string {
	var b strings.Builder

	b.WriteString(fileLine("Hoy", v.TodayFile))
	b.WriteString(fileLine("Ayer", v.YesterdayFile))

	if !v.Success {
		b.WriteString(errorStyle.Render(v.Error))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, []string{
			r.Code,
			r.Description,
			FormatPrice(r.PriceYesterday, tag),
			FormatPrice(r.PriceToday, tag),
			r.DifferenceLabel,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(faintStyle).
		Headers(
			header("Código", v.Sort, comparison.ColumnCode),
			header("Descripción", v.Sort, comparison.ColumnDescription),
			"Precio ayer",
			"Precio hoy",
			header("Diferencia", v.Sort, comparison.ColumnDifference),
		).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 4 && row >= 0 && row < len(v.Rows) {
				return differenceStyle(DifferenceClass(v.Rows[row]))
			}
			return cellStyle
		})

	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(fmt.Sprintf("%d de %d registros", len(v.Rows), v.Total)))
	b.WriteString("\n")
	return b.String()
}

func header(title string, st comparison.SortState, col comparison.Column) string {
	if ind := SortIndicator(st, col); ind != "" {
		return title + " " + ind
	}
	return title
}

func fileLine(label string, f *models.FileInfo) string {
	if f == nil {
		return faintStyle.Render(label+": -") + "\n"
	}
	return faintStyle.Render(fmt.Sprintf("%s: %s (%s)", label, f.Name, f.ModifiedAt.Format("2006-01-02 15:04"))) + "\n"
}

func differenceStyle(class string) lipgloss.Style {
	switch class {
	case ClassIncrease:
		return increaseStyle
	case ClassDecrease:
		return decreaseStyle
	case ClassNeutral:
		return neutralStyle
	}
	return cellStyle
}
