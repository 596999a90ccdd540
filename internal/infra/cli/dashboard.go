package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/dashboard"
	"github.com/finance-tracker/expense-tracker/internal/infra/dependency"
)

func newSummaryCmd(a *app) *cobra.Command {
	var period periodFlags
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Income, expenses and balance for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, year := period.resolve(a.now())
			return a.withInjector(func(inj *dependency.Injector) error {
				out, err := inj.UseCases.GetSummary.Execute(cmd.Context(), dashboard.PeriodInput{Month: month, Year: year})
				if err != nil {
					return err
				}
				writeSummary(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	period.register(cmd)
	return cmd
}

func newBreakdownCmd(a *app) *cobra.Command {
	var period periodFlags
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Spending per category for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, year := period.resolve(a.now())
			return a.withInjector(func(inj *dependency.Injector) error {
				out, err := inj.UseCases.GetCategoryBreakdown.Execute(cmd.Context(), dashboard.PeriodInput{Month: month, Year: year})
				if err != nil {
					return err
				}
				writeBreakdown(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	period.register(cmd)
	return cmd
}

func newTrendCmd(a *app) *cobra.Command {
	var period periodFlags
	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Daily spending for a month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, year := period.resolve(a.now())
			return a.withInjector(func(inj *dependency.Injector) error {
				out, err := inj.UseCases.GetDailyTrend.Execute(cmd.Context(), dashboard.PeriodInput{Month: month, Year: year})
				if err != nil {
					return err
				}
				writeTrend(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	period.register(cmd)
	return cmd
}

func writeSummary(w io.Writer, out *dashboard.GetSummaryOutput) {
	s := out.Summary

	income := Muted("not set")
	if s.HasIncome {
		income = FormatMoney(s.TotalIncome)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderTitle("SUMMARY  "+out.Period.Label()))
	fmt.Fprintln(w)
	fmt.Fprint(w, RenderTable(Table{
		Headers: []string{"Metric", "Amount"},
		Rows: [][]string{
			{"Income", income},
			{"Expenses", FormatMoney(s.TotalExpenses)},
			{separatorRow},
			{"Balance", FormatBalance(s.Balance)},
		},
	}))
	if s.HasIncome && s.IncomeSource != "" {
		fmt.Fprintf(w, "  Income source: %s\n", s.IncomeSource)
	}
	fmt.Fprintf(w, "  %d expense(s)\n\n", s.ExpenseCount)
}

func writeBreakdown(w io.Writer, out *dashboard.GetCategoryBreakdownOutput) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderTitle("CATEGORIES  "+out.Period.Label()))
	fmt.Fprintln(w)

	if len(out.Categories) == 0 {
		fmt.Fprintln(w, "  No expenses in this period.")
		fmt.Fprintln(w)
		return
	}

	count := 0
	rows := make([][]string, 0, len(out.Categories)+2)
	for _, c := range out.Categories {
		count += c.Count
		rows = append(rows, []string{
			c.Name,
			FormatMoney(c.Total),
			FormatPercent(c.Percentage),
			fmt.Sprintf("%d", c.Count),
		})
	}
	rows = append(rows,
		[]string{separatorRow},
		[]string{"TOTAL", FormatMoney(out.TotalExpenses), "", fmt.Sprintf("%d", count)},
	)

	fmt.Fprint(w, RenderTable(Table{
		Headers: []string{"Category", "Amount", "Share", "Count"},
		Rows:    rows,
	}))
	fmt.Fprintln(w)
}

func writeTrend(w io.Writer, out *dashboard.GetDailyTrendOutput) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, RenderTitle("DAILY TREND  "+out.Period.Label()))
	fmt.Fprintln(w)

	if len(out.Trend.Days) == 0 {
		fmt.Fprintln(w, "  No expenses in this period.")
		fmt.Fprintln(w)
		return
	}

	totals := make([]decimal.Decimal, 0, len(out.Trend.Days))
	rows := make([][]string, 0, len(out.Trend.Days))
	for _, d := range out.Trend.Days {
		totals = append(totals, d.Total)

		parts := make([]string, 0, len(d.Categories))
		for _, c := range d.Categories {
			parts = append(parts, c.Name+" "+FormatMoney(c.Total))
		}
		rows = append(rows, []string{d.Label, FormatMoney(d.Total), strings.Join(parts, ", ")})
	}

	fmt.Fprint(w, RenderTable(Table{
		Headers: []string{"Day", "Total", "Categories"},
		Rows:    rows,
	}))
	fmt.Fprintf(w, "  %s\n\n", RenderSparkline(totals))
}
