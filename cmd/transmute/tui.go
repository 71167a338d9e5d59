package main

import (
	"context"

	"github.com/spf13/viper"

	"github.com/transmutehq/transmute/internal/catalog"
	"github.com/transmutehq/transmute/internal/history"
	"github.com/transmutehq/transmute/internal/tui"
	"github.com/transmutehq/transmute/internal/tui/themes"
)

// runTUI launches the interactive converter with all dependencies
// resolved from configuration.
func runTUI(ctx context.Context) error {
	return tui.Run(ctx, tui.Config{
		Converter:       newConverter(),
		Ledger:          history.NewLedger(),
		Catalog:         catalog.Default(),
		Theme:           themes.GetTheme(viper.GetString("theme")),
		RequestTimeout:  viper.GetDuration("timeout"),
		CurrencyEnabled: viper.GetBool("currency.enabled"),
	})
}
