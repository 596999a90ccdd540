// Package cli implements the tracker command line, which runs the dashboard
// use cases directly against the configured database.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/finance-tracker/expense-tracker/config"
	"github.com/finance-tracker/expense-tracker/internal/infra/db"
	"github.com/finance-tracker/expense-tracker/internal/infra/dependency"
)

// app carries the flag values shared by every command.
type app struct {
	dbDriver string
	dbURL    string
	now      func() time.Time
}

// NewRootCommand builds the tracker command tree.
func NewRootCommand() *cobra.Command {
	a := &app{now: time.Now}

	root := &cobra.Command{
		Use:           "tracker",
		Short:         "Personal expense tracker",
		Long:          "Inspect monthly spending, record income and export reports from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.dbDriver, "db-driver", "", "Database driver (postgres or sqlite), overrides DATABASE_DRIVER")
	root.PersistentFlags().StringVar(&a.dbURL, "db-url", "", "Database URL or SQLite file, overrides DATABASE_URL")

	root.AddCommand(
		newSummaryCmd(a),
		newBreakdownCmd(a),
		newTrendCmd(a),
		newIncomeCmd(a),
		newSeedCmd(a),
		newExportCmd(a),
	)

	return root
}

// Execute is the main entry point called from cmd/tracker.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withInjector opens the database, wires the use cases and runs fn.
// The connection is closed when fn returns.
func (a *app) withInjector(fn func(*dependency.Injector) error) error {
	cfg := config.Load()
	if a.dbDriver != "" {
		cfg.Database.Driver = a.dbDriver
	}
	if a.dbURL != "" {
		cfg.Database.URL = a.dbURL
	}
	// The CLI never sends mail or serves HTTP.
	cfg.Email.WorkerEnabled = false
	cfg.RateLimit.Enabled = false

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: max(cfg.LogLevel, slog.LevelWarn),
	})))

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.Migrate(); err != nil {
		return err
	}

	inj, err := dependency.NewInjector(cfg, database.DB(), nil)
	if err != nil {
		return err
	}

	return fn(inj)
}

// periodFlags holds --month and --year. Zero values select the current month.
type periodFlags struct {
	month int
	year  int
}

func (p *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.month, "month", 0, "Month 1-12 (default current month)")
	cmd.Flags().IntVar(&p.year, "year", 0, "Year (default current year)")
}

// resolve fills unset values from now. Range checking is left to the use cases.
func (p *periodFlags) resolve(now time.Time) (month, year int) {
	month, year = p.month, p.year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return month, year
}
