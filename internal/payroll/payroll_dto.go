package payroll

type SummaryFilterRequest struct {
	EmployeeIDs string `form:"employee_ids"`
	From        string `form:"from"`
	To          string `form:"to"`
	Status      string `form:"status" binding:"omitempty,oneof=DRAFT LOCKED"`
}

type TotalsResponse struct {
	TotalHours    string `json:"total_hours"`
	RegularHours  string `json:"regular_hours"`
	OvertimeHours string `json:"overtime_hours"`
	Pay           string `json:"pay"`
}

type SummaryRowResponse struct {
	EmployeeID     string `json:"employee_id"`
	Name           string `json:"name"`
	TimesheetCount int    `json:"timesheet_count"`
	TotalsResponse
}

type SummaryResponse struct {
	From       string               `json:"from,omitempty"`
	To         string               `json:"to,omitempty"`
	Rows       []SummaryRowResponse `json:"rows"`
	GrandTotal TotalsResponse       `json:"grand_total"`
}
