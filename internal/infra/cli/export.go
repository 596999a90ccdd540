package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/dashboard"
	"github.com/finance-tracker/expense-tracker/internal/infra/dependency"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		period periodFlags
		dir    string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the monthly spreadsheet to disk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			month, year := period.resolve(a.now())
			return a.withInjector(func(inj *dependency.Injector) error {
				out, err := inj.UseCases.ExportMonthly.Execute(cmd.Context(), dashboard.PeriodInput{Month: month, Year: year})
				if err != nil {
					return err
				}

				path := filepath.Join(dir, out.FileName)
				if err := os.WriteFile(path, out.Content, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				return nil
			})
		},
	}
	period.register(cmd)
	cmd.Flags().StringVarP(&dir, "output", "o", ".", "Directory to write the workbook into")
	return cmd
}
