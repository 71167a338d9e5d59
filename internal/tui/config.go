package tui

import (
	"time"

	"github.com/transmutehq/transmute/internal/catalog"
	"github.com/transmutehq/transmute/internal/convert"
	"github.com/transmutehq/transmute/internal/history"
	"github.com/transmutehq/transmute/internal/tui/themes"
)

// Config holds everything the TUI needs; all dependencies are passed
// in explicitly at initialization.
type Config struct {
	Converter       convert.Converter
	Ledger          *history.Ledger
	Catalog         catalog.Catalog
	Theme           themes.Theme
	RequestTimeout  time.Duration
	CurrencyEnabled bool
}

// defaultRequestTimeout bounds a conversion request when the caller
// does not configure one.
const defaultRequestTimeout = 30 * time.Second

func (c Config) requestTimeout() time.Duration {
	if c.RequestTimeout > 0 {
		return c.RequestTimeout
	}
	return defaultRequestTimeout
}
