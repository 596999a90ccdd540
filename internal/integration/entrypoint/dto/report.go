package dto

// SendMonthlyReportRequest represents the request body for e-mailing a monthly summary.
type SendMonthlyReportRequest struct {
	Month int    `json:"month" binding:"required"`
	Year  int    `json:"year" binding:"required"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

// SendMonthlyReportResponse confirms that the summary was queued.
type SendMonthlyReportResponse struct {
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
	Period    string `json:"period"`
}
