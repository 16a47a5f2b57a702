package timesheet

type CreateTimesheetRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	WeekStart  string `json:"week_start" binding:"required"`
}

type ListTimesheetsFilter struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=DRAFT LOCKED"`
}

// UpdateEntryRequest carries the full set of punches for one day. Omitted
// or null fields clear the punch.
type UpdateEntryRequest struct {
	ArrivalMorning   *string `json:"arrival_morning"`
	LunchDeparture   *string `json:"lunch_departure"`
	LunchReturn      *string `json:"lunch_return"`
	ArrivalEvening   *string `json:"arrival_evening"`
	DepartureEvening *string `json:"departure_evening"`
}

type TimesheetResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	WeekStart    string `json:"week_start"`
	WeekEnd      string `json:"week_end"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at,omitempty"`
}

type DailyEntryResponse struct {
	ID               string  `json:"id"`
	Day              string  `json:"day"`
	Date             string  `json:"date"`
	ArrivalMorning   *string `json:"arrival_morning"`
	LunchDeparture   *string `json:"lunch_departure"`
	LunchReturn      *string `json:"lunch_return"`
	ArrivalEvening   *string `json:"arrival_evening"`
	DepartureEvening *string `json:"departure_evening"`
	TotalMinutes     int64   `json:"total_minutes"`
}

type TotalsResponse struct {
	TotalMinutes  int64  `json:"total_minutes"`
	TotalHours    string `json:"total_hours"`
	RegularHours  string `json:"regular_hours"`
	OvertimeHours string `json:"overtime_hours"`
	Pay           string `json:"pay"`
}

type TimesheetDetailResponse struct {
	TimesheetResponse
	HourlyRate         string               `json:"hourly_rate"`
	WeeklyRegularHours string               `json:"weekly_regular_hours"`
	Entries            []DailyEntryResponse `json:"entries"`
	Totals             TotalsResponse       `json:"totals"`
}
