package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/category"
	"github.com/finance-tracker/expense-tracker/internal/infra/dependency"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the predefined categories into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withInjector(func(inj *dependency.Injector) error {
				seeded, err := category.SeedPredefined(cmd.Context(), inj.CategoryRepo)
				if err != nil {
					return err
				}
				if seeded {
					fmt.Fprintln(cmd.OutOrStdout(), "Predefined categories created")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "Categories already exist, nothing to seed")
				}
				return nil
			})
		},
	}
}
