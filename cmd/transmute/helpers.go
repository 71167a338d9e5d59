package main

import (
	"github.com/spf13/viper"

	"github.com/transmutehq/transmute/internal/convert"
)

// newConverter builds the conversion service client from configuration.
func newConverter() *convert.Client {
	return convert.NewClient(
		viper.GetString("endpoint"),
		viper.GetDuration("timeout"),
	)
}
