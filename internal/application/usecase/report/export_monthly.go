package report

import (
	"context"
	"fmt"

	"github.com/finance-tracker/expense-tracker/internal/application/usecase/dashboard"
	domainerror "github.com/finance-tracker/expense-tracker/internal/domain/error"
)

// SpreadsheetContentType is the MIME type of the exported workbook.
const SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WorkbookRenderer turns a month's overview into a spreadsheet file.
type WorkbookRenderer interface {
	RenderMonthly(overview *dashboard.GetOverviewOutput) ([]byte, error)
}

// ExportMonthlyOutput represents the output of exporting a month.
type ExportMonthlyOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportMonthlyUseCase builds the downloadable spreadsheet for a month.
type ExportMonthlyUseCase struct {
	overview *dashboard.GetOverviewUseCase
	renderer WorkbookRenderer
}

// NewExportMonthlyUseCase creates a new ExportMonthlyUseCase instance.
func NewExportMonthlyUseCase(fetcher dashboard.RecordFetcher, renderer WorkbookRenderer) *ExportMonthlyUseCase {
	return &ExportMonthlyUseCase{
		overview: dashboard.NewGetOverviewUseCase(fetcher),
		renderer: renderer,
	}
}

// Execute renders the workbook for the given month.
func (uc *ExportMonthlyUseCase) Execute(ctx context.Context, input dashboard.PeriodInput) (*ExportMonthlyOutput, error) {
	overview, err := uc.overview.Execute(ctx, input)
	if err != nil {
		return nil, err
	}

	content, err := uc.renderer.RenderMonthly(overview)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeExportFailed,
			"failed to render spreadsheet",
			fmt.Errorf("%w: %v", domainerror.ErrExportFailed, err),
		)
	}

	return &ExportMonthlyOutput{
		FileName:    fmt.Sprintf("expenses-%s.xlsx", overview.Period.String()),
		ContentType: SpreadsheetContentType,
		Content:     content,
	}, nil
}
