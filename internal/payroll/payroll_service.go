package payroll

import (
	"context"
	"database/sql"
	"strings"
	"time"

	payrollerrors "go-timesheet/internal/payroll/errors"
	"go-timesheet/internal/shared/contextutil"
	"go-timesheet/internal/worktime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context, req SummaryFilterRequest) (SummaryResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Summary(ctx context.Context, req SummaryFilterRequest) (SummaryResponse, error) {
	filter, err := parseSummaryFilter(req)
	if err != nil {
		return SummaryResponse{}, err
	}

	log := s.logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)))

	// Every timesheet of the report is read inside one transaction.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SummaryResponse{}, err
	}
	defer tx.Rollback()

	employees, err := s.repo.WithTx(tx).FindEmployeesWithTimesheets(ctx, filter)
	if err != nil {
		log.Error("load payroll data failed", zap.Error(err))
		return SummaryResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return SummaryResponse{}, err
	}

	report := worktime.ComputePayrollReport(toEmployeeTimesheets(employees))
	log.Debug("payroll summary computed",
		zap.Int("employees", len(report.Rows)),
		zap.String("grand_total_pay", report.GrandTotal.Pay.StringFixed(worktime.MoneyPlaces)),
	)

	return toSummaryResponse(req, report), nil
}

func parseSummaryFilter(req SummaryFilterRequest) (SummaryFilter, error) {
	filter := SummaryFilter{Status: req.Status}

	for _, raw := range strings.Split(req.EmployeeIDs, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return SummaryFilter{}, payrollerrors.ErrInvalidEmployeeIDs
		}
		filter.EmployeeIDs = append(filter.EmployeeIDs, id)
	}

	var err error
	if filter.From, err = parseDate(req.From); err != nil {
		return SummaryFilter{}, err
	}
	if filter.To, err = parseDate(req.To); err != nil {
		return SummaryFilter{}, err
	}
	if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
		return SummaryFilter{}, payrollerrors.ErrFromAfterTo
	}

	return filter, nil
}

func parseDate(v string) (*time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(dateLayout, v, time.UTC)
	if err != nil {
		return nil, payrollerrors.ErrInvalidDateRange
	}
	return &d, nil
}

func toEmployeeTimesheets(employees []PayrollEmployee) []worktime.EmployeeTimesheets {
	out := make([]worktime.EmployeeTimesheets, 0, len(employees))
	for _, e := range employees {
		item := worktime.EmployeeTimesheets{
			EmployeeID:         e.ID.String(),
			Name:               e.Name,
			HourlyRate:         e.HourlyRate,
			WeeklyRegularHours: e.WeeklyRegularHours,
			Timesheets:         make([]worktime.TimesheetInput, 0, len(e.Timesheets)),
		}
		for _, ts := range e.Timesheets {
			entries := make([]worktime.Punches, 0, len(ts.Entries))
			for _, entry := range ts.Entries {
				entries = append(entries, entry.Punches())
			}
			item.Timesheets = append(item.Timesheets, worktime.TimesheetInput{
				WeekStart: ts.WeekStart,
				Entries:   entries,
			})
		}
		out = append(out, item)
	}
	return out
}

func toTotalsResponse(t worktime.PayrollTotals) TotalsResponse {
	return TotalsResponse{
		TotalHours:    fixed(t.TotalHours),
		RegularHours:  fixed(t.RegularHours),
		OvertimeHours: fixed(t.OvertimeHours),
		Pay:           fixed(t.Pay),
	}
}

func toSummaryResponse(req SummaryFilterRequest, report worktime.PayrollReport) SummaryResponse {
	rows := make([]SummaryRowResponse, 0, len(report.Rows))
	for _, r := range report.Rows {
		rows = append(rows, SummaryRowResponse{
			EmployeeID:     r.EmployeeID,
			Name:           r.Name,
			TimesheetCount: r.TimesheetCount,
			TotalsResponse: toTotalsResponse(r.PayrollTotals),
		})
	}
	return SummaryResponse{
		From:       strings.TrimSpace(req.From),
		To:         strings.TrimSpace(req.To),
		Rows:       rows,
		GrandTotal: toTotalsResponse(report.GrandTotal),
	}
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(worktime.MoneyPlaces)
}
