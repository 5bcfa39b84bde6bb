package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/guttosm/pricediff/config"
	"github.com/guttosm/pricediff/internal/app"
	"github.com/guttosm/pricediff/internal/backend"
	"github.com/guttosm/pricediff/internal/comparison"
	"github.com/guttosm/pricediff/internal/logger"
	"github.com/guttosm/pricediff/internal/render"
	"github.com/guttosm/pricediff/internal/service"
)

var (
	showSearch      string
	showOnlyNumeric bool
	showNew         bool
	showMissing     bool
	showSort        string
	showDir         string
	showLocale      string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the comparison as a table",
	Long: `Fetch the comparison once, apply the filters and sort order, and print it.

Examples:
  # Everything, biggest increases last
  pricediff show

  # Only new items whose code or description contains "caño"
  pricediff show --search caño --show-new

  # Numeric differences sorted by description, descending
  pricediff show --only-numeric --sort description --dir desc`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showSearch, "search", "", "Case-insensitive substring of code or description")
	showCmd.Flags().BoolVar(&showOnlyNumeric, "only-numeric", false, "Only records with a numeric difference")
	showCmd.Flags().BoolVar(&showNew, "show-new", false, "Only records new today")
	showCmd.Flags().BoolVar(&showMissing, "show-missing", false, "Only records missing today")
	showCmd.Flags().StringVar(&showSort, "sort", "difference", "Sort column: code, description or difference")
	showCmd.Flags().StringVar(&showDir, "dir", "", "Sort direction: asc or desc (default: desc for difference, asc otherwise)")
	showCmd.Flags().StringVar(&showLocale, "locale", "", "Display locale (default: DISPLAY_LOCALE)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	// Keep stdout for the table.
	logger.Configure(logger.Options{Level: os.Getenv("LOG_LEVEL"), Output: os.Stderr})

	locale := showLocale
	if locale == "" {
		locale = config.AppConfig.Display.Locale
	}
	tag, err := app.ParseLocale(locale)
	if err != nil {
		return err
	}

	st, err := showSortState(showSort, showDir)
	if err != nil {
		return err
	}
	criteria := comparison.Criteria{
		Search:      showSearch,
		OnlyNumeric: showOnlyNumeric,
		ShowNew:     showNew,
		ShowMissing: showMissing,
	}

	client := backend.NewClient(config.AppConfig.Backend.URL, config.AppConfig.Backend.Timeout)
	sorter := comparison.NewSorter(tag)
	svc := service.NewViewService(client, sorter)

	ok := printView(cmd.Context(), cmd.OutOrStdout(), svc, criteria, st, sorter.Locale())
	if !ok {
		os.Exit(1)
	}
	return nil
}

// printView loads the comparison once and writes the table. It reports
// whether the fetch succeeded.
func printView(ctx context.Context, w io.Writer, svc service.ViewService, c comparison.Criteria, st comparison.SortState, tag language.Tag) bool {
	svc.Reload(ctx)
	v := svc.Query(c, st)
	_, _ = fmt.Fprint(w, render.Table(v, tag))
	return v.Success
}

// showSortState resolves the --sort/--dir flags. The difference column
// defaults to descending like the interactive view; other columns ascend.
func showSortState(sort, dir string) (comparison.SortState, error) {
	col, err := comparison.ParseColumn(sort)
	if err != nil {
		return comparison.SortState{}, err
	}
	st := comparison.SortState{Column: col, Direction: comparison.Asc}
	if col == comparison.DefaultSortState().Column {
		st.Direction = comparison.DefaultSortState().Direction
	}
	if dir != "" {
		d, err := comparison.ParseDirection(dir)
		if err != nil {
			return comparison.SortState{}, err
		}
		st.Direction = d
	}
	return st, nil
}
