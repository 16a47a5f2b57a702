package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	Name               string           `json:"name" binding:"required,max=150"`
	IsActive           *bool            `json:"is_active"`
	HourlyRate         *decimal.Decimal `json:"hourly_rate" binding:"required"`
	WeeklyRegularHours *decimal.Decimal `json:"weekly_regular_hours" binding:"required"`
}

type UpdateEmployeeRequest struct {
	Name               string           `json:"name" binding:"required,max=150"`
	IsActive           *bool            `json:"is_active" binding:"required"`
	HourlyRate         *decimal.Decimal `json:"hourly_rate" binding:"required"`
	WeeklyRegularHours *decimal.Decimal `json:"weekly_regular_hours" binding:"required"`
}

type EmployeeResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	IsActive           bool   `json:"is_active"`
	HourlyRate         string `json:"hourly_rate"`
	WeeklyRegularHours string `json:"weekly_regular_hours"`
	CreatedAt          string `json:"created_at,omitempty"`
}
