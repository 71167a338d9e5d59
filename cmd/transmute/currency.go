package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/transmutehq/transmute/internal/catalog"
	"github.com/transmutehq/transmute/internal/common"
	"github.com/transmutehq/transmute/internal/convert"
)

func currencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency <amount> <from-currency> <to-currency>",
		Short: "Run a single currency conversion",
		Example: `  # Convert 100 US dollars to euros
  transmute currency 100 USD EUR`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := convert.CurrencyRequest{
				Amount:       args[0],
				FromCurrency: args[1],
				ToCurrency:   args[2],
			}

			result, err := newConverter().ConvertCurrency(cmd.Context(), req)
			if err != nil {
				return common.NewUserError("currency conversion failed", err)
			}

			fmt.Println(catalog.FormatResult(result, req.ToCurrency))
			return nil
		},
	}
}
