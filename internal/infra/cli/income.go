package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/income"
	"github.com/finance-tracker/expense-tracker/internal/infra/dependency"
)

func newIncomeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "income",
		Short: "Read or record monthly income",
	}
	cmd.AddCommand(newIncomeGetCmd(a), newIncomeSetCmd(a))
	return cmd
}

func newIncomeGetCmd(a *app) *cobra.Command {
	var period periodFlags
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the income recorded for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, year := period.resolve(a.now())
			return a.withInjector(func(inj *dependency.Injector) error {
				out, err := inj.UseCases.GetIncome.Execute(cmd.Context(), income.GetIncomeInput{Month: month, Year: year})
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if out.Income == nil {
					fmt.Fprintf(w, "No income recorded for %s\n", out.Period.Label())
					return nil
				}
				fmt.Fprintf(w, "%s: %s (%s)\n", out.Period.Label(), FormatMoney(out.Income.Amount), out.Income.Source)
				return nil
			})
		},
	}
	period.register(cmd)
	return cmd
}

func newIncomeSetCmd(a *app) *cobra.Command {
	var (
		period periodFlags
		amount string
		source string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Record or replace the income of a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amount, err)
			}

			month, year := period.resolve(a.now())
			return a.withInjector(func(inj *dependency.Injector) error {
				out, err := inj.UseCases.SetIncome.Execute(cmd.Context(), income.SetIncomeInput{
					Month:  month,
					Year:   year,
					Amount: value,
					Source: source,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Income for %02d/%d set to %s (%s)\n",
					out.Income.Month, out.Income.Year, FormatMoney(out.Income.Amount), out.Income.Source)
				return nil
			})
		},
	}
	period.register(cmd)
	cmd.Flags().StringVar(&amount, "amount", "", "Income amount, e.g. 5000.00")
	cmd.Flags().StringVar(&source, "source", "", "Income source (default Salary)")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}
