// Package export renders monthly reports as xlsx workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/dashboard"
	"github.com/finance-tracker/expense-tracker/internal/application/usecase/report"
	"github.com/finance-tracker/expense-tracker/internal/domain/entity"
)

// Sheet names, in workbook order.
const (
	SheetSummary    = "Summary"
	SheetExpenses   = "Expenses"
	SheetCategories = "Categories"
	SheetDaily      = "Daily"
)

// moneyFormat is excelize's built-in "#,##0.00".
const moneyFormat = 4

// XLSXRenderer implements report.WorkbookRenderer with excelize.
type XLSXRenderer struct{}

// NewXLSXRenderer creates a new XLSXRenderer.
func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

type styles struct {
	title  int
	header int
	money  int
}

// RenderMonthly builds the workbook and returns its bytes.
func (r *XLSXRenderer) RenderMonthly(overview *dashboard.GetOverviewOutput) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetExpenses, SheetCategories, SheetDaily} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	writers := []func(*excelize.File, styles, *dashboard.GetOverviewOutput) error{
		writeSummary,
		writeExpenses,
		writeCategories,
		writeDaily,
	}
	for _, write := range writers {
		if err := write(f, st, overview); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	st.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#3B82F6"}, Pattern: 1},
	})
	if err != nil {
		return st, err
	}

	st.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#9CA3AF", Style: 1},
		},
	})
	if err != nil {
		return st, err
	}

	st.money, err = f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	return st, err
}

// writeHeader writes a bold header row and sizes the columns.
func writeHeader(f *excelize.File, st styles, sheet string, row int, headers []string) error {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	values := make([]interface{}, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), row)
	if err := f.SetCellStyle(sheet, cell, last, st.header); err != nil {
		return err
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	return f.SetColWidth(sheet, "A", lastCol, 18)
}

// writeRow writes values starting at column A and applies the money style to moneyCols (1-based).
func writeRow(f *excelize.File, st styles, sheet string, row int, values []interface{}, moneyCols ...int) error {
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return err
	}
	for _, col := range moneyCols {
		c, _ := excelize.CoordinatesToCellName(col, row)
		if err := f.SetCellStyle(sheet, c, c, st.money); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, st styles, o *dashboard.GetOverviewOutput) error {
	title := fmt.Sprintf("Expense report - %s", o.Period.Label())
	if err := f.SetCellValue(SheetSummary, "A1", title); err != nil {
		return err
	}
	if err := f.MergeCell(SheetSummary, "A1", "B1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetSummary, "A1", "B1", st.title); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetSummary, "A", "B", 22); err != nil {
		return err
	}

	s := o.Summary
	income := interface{}("not set")
	if s.HasIncome {
		income = s.TotalIncome.InexactFloat64()
	}

	rows := [][]interface{}{
		{"Period", o.Period.String()},
		{"Income", income},
		{"Expenses", s.TotalExpenses.InexactFloat64()},
		{"Balance", s.Balance.InexactFloat64()},
		{"Expense count", s.ExpenseCount},
	}
	for i, values := range rows {
		if err := writeRow(f, st, SheetSummary, i+3, values, 2); err != nil {
			return err
		}
	}
	return nil
}

func writeExpenses(f *excelize.File, st styles, o *dashboard.GetOverviewOutput) error {
	if err := writeHeader(f, st, SheetExpenses, 1, []string{"Date", "Category", "Description", "Amount"}); err != nil {
		return err
	}
	for i, e := range o.Expenses {
		category := entity.UnknownCategoryName
		if e.CategoryName != nil && *e.CategoryName != "" {
			category = *e.CategoryName
		}
		description := ""
		if e.Description != nil {
			description = *e.Description
		}
		values := []interface{}{
			e.Date.Format("2006-01-02"),
			category,
			description,
			e.Amount.InexactFloat64(),
		}
		if err := writeRow(f, st, SheetExpenses, i+2, values, 4); err != nil {
			return err
		}
	}
	return nil
}

func writeCategories(f *excelize.File, st styles, o *dashboard.GetOverviewOutput) error {
	if err := writeHeader(f, st, SheetCategories, 1, []string{"Category", "Color", "Count", "Total", "Share %"}); err != nil {
		return err
	}
	for i, c := range o.Categories {
		values := []interface{}{
			c.Name,
			c.Color,
			c.Count,
			c.Total.InexactFloat64(),
			c.Percentage.InexactFloat64(),
		}
		if err := writeRow(f, st, SheetCategories, i+2, values, 4); err != nil {
			return err
		}
	}
	return nil
}

// writeDaily lays the trend out as a pivot: one row per day, one column per legend category.
func writeDaily(f *excelize.File, st styles, o *dashboard.GetOverviewOutput) error {
	legend := o.Trend.Categories
	headers := make([]string, 0, len(legend)+2)
	headers = append(headers, "Day", "Total")
	for _, l := range legend {
		headers = append(headers, l.Name)
	}
	if err := writeHeader(f, st, SheetDaily, 1, headers); err != nil {
		return err
	}

	moneyCols := make([]int, 0, len(legend)+1)
	for col := 2; col <= len(headers); col++ {
		moneyCols = append(moneyCols, col)
	}

	for i, day := range o.Trend.Days {
		perCategory := make(map[string]float64, len(day.Categories))
		for _, c := range day.Categories {
			perCategory[c.Name] = c.Total.InexactFloat64()
		}

		values := make([]interface{}, 0, len(headers))
		values = append(values, day.Date.Format("2006-01-02"), day.Total.InexactFloat64())
		for _, l := range legend {
			values = append(values, perCategory[l.Name])
		}
		if err := writeRow(f, st, SheetDaily, i+2, values, moneyCols...); err != nil {
			return err
		}
	}
	return nil
}

// Ensure XLSXRenderer implements report.WorkbookRenderer.
var _ report.WorkbookRenderer = (*XLSXRenderer)(nil)
