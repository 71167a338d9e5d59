package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/transmutehq/transmute/internal/catalog"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the conversion categories and their units",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := catalog.Default()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, category := range c.Categories() {
				fmt.Fprintf(w, "%s\t%s\n", category, strings.Join(c.Units(category), ", "))
			}
			fmt.Fprintf(w, "%s\t%s\n", catalog.CurrencyCategory, strings.Join(c.Currencies(), ", "))

			return w.Flush()
		},
	}
}
