package app

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/guttosm/pricediff/config"
	"github.com/guttosm/pricediff/internal/backend"
	"github.com/guttosm/pricediff/internal/comparison"
	"github.com/guttosm/pricediff/internal/service"
)

// NewViewService wires the backend client, the locale-aware sorter and the
// view service from configuration. The client is returned as well so its
// Ping can back the readiness probe.
func NewViewService(cfg config.Config) (service.ViewService, *backend.Client, error) {
	tag, err := ParseLocale(cfg.Display.Locale)
	if err != nil {
		return nil, nil, err
	}

	client := backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout)
	svc := service.NewViewService(client, comparison.NewSorter(tag))
	return svc, client, nil
}

// ParseLocale resolves a DISPLAY_LOCALE value; empty means the default locale.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return comparison.DefaultLocale, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid display locale %q: %w", s, err)
	}
	return tag, nil
}
