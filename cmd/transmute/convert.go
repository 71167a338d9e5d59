package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transmutehq/transmute/internal/catalog"
	"github.com/transmutehq/transmute/internal/common"
	"github.com/transmutehq/transmute/internal/convert"
)

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <category> <value> <from-unit> <to-unit>",
		Short: "Run a single unit conversion",
		Example: `  # Convert 3600 meters to kilometers
  transmute convert Length 3600 meter kilometer

  # Convert a speed
  transmute convert Speed 10 meter_per_second kilometer_per_hour`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := convert.ConversionRequest{
				Category: args[0],
				Value:    args[1],
				FromUnit: args[2],
				ToUnit:   args[3],
			}

			result, err := newConverter().Convert(cmd.Context(), req)
			if err != nil {
				return common.NewUserError("conversion failed", err)
			}

			fmt.Println(catalog.FormatResult(result, req.ToUnit))
			return nil
		},
	}
}
