package timesheet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"slices"
	"time"

	"go-timesheet/internal/events"
	"go-timesheet/internal/messaging/kafka"
	"go-timesheet/internal/shared/contextutil"
	timesheeterrors "go-timesheet/internal/timesheet/errors"
	"go-timesheet/internal/worktime"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTimesheetRequest) (TimesheetResponse, error)
	GetAll(ctx context.Context, filter ListTimesheetsFilter) ([]TimesheetResponse, error)
	GetDetail(ctx context.Context, id string) (TimesheetDetailResponse, error)
	UpdateEntry(ctx context.Context, id, day string, req UpdateEntryRequest) (DailyEntryResponse, error)
	Lock(ctx context.Context, id string) (TimesheetResponse, error)
	Delete(ctx context.Context, id string) error
	Materialize(ctx context.Context, id string) (int64, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	outbox   kafka.OutboxRepository
	workdays []worktime.Weekday
	logger   *zap.Logger
}

// NewService builds the timesheet service. workdays are the days created on
// first view; an empty list falls back to Monday through Friday. outbox may
// be nil, in which case no lifecycle events are recorded.
func NewService(
	db *sql.DB,
	repo Repository,
	outbox kafka.OutboxRepository,
	workdays []worktime.Weekday,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	days := slices.Clone(workdays)
	if len(days) == 0 {
		days = slices.Clone(worktime.WorkWeek)
	}
	worktime.SortWeekdays(days)
	return &service{
		db:       db,
		repo:     repo,
		outbox:   outbox,
		workdays: days,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, req CreateTimesheetRequest) (TimesheetResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := s.logger.With(zap.String("request_id", rid))
	log.Debug("create timesheet requested",
		zap.String("actor_id", contextutil.GetActorID(ctx)),
		zap.String("employee_id", req.EmployeeID),
		zap.String("week_start", req.WeekStart),
	)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidEmployeeID
	}
	weekStart, err := parseWeekStart(req.WeekStart)
	if err != nil {
		log.Warn("create timesheet invalid week_start", zap.String("week_start", req.WeekStart), zap.Error(err))
		return TimesheetResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create timesheet begin tx failed", zap.Error(err))
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindEmployee(ctx, employeeID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TimesheetResponse{}, timesheeterrors.ErrEmployeeNotFound
		}
		log.Error("create timesheet load employee failed", zap.Error(err))
		return TimesheetResponse{}, err
	}
	if !empl.IsActive {
		log.Warn("create timesheet for inactive employee", zap.String("employee_id", empl.ID.String()))
		return TimesheetResponse{}, timesheeterrors.ErrInactiveEmployee
	}

	ts := &WeeklyTimesheet{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		WeekStart:  weekStart,
		Status:     StatusDraft,
	}
	if err := qtx.Create(ctx, ts); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, timesheeterrors.ErrDuplicateTimesheet) {
			log.Warn("create timesheet duplicate week",
				zap.String("employee_id", req.EmployeeID),
				zap.String("week_start", req.WeekStart),
			)
		} else {
			log.Error("create timesheet persist failed", zap.Error(err))
		}
		return TimesheetResponse{}, mapped
	}

	if s.outbox != nil {
		if err := s.queueCreatedEvent(ctx, tx, rid, ts); err != nil {
			log.Error("create timesheet outbox persist failed",
				zap.String("timesheet_id", ts.ID.String()),
				zap.Error(err),
			)
			return TimesheetResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("create timesheet commit failed", zap.Error(err))
		return TimesheetResponse{}, mapRepositoryError(err)
	}

	log.Info("create timesheet success",
		zap.String("timesheet_id", ts.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	ts.Employee = empl
	return mapToResponse(*ts), nil
}

func (s *service) queueCreatedEvent(ctx context.Context, tx *sql.Tx, rid string, ts *WeeklyTimesheet) error {
	event := events.TimesheetCreatedEvent{
		EventType:   events.TimesheetCreatedEventType,
		RequestID:   rid,
		TimesheetID: ts.ID.String(),
		EmployeeID:  ts.EmployeeID.String(),
		WeekStart:   ts.WeekStart.Format(dateLayout),
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "timesheet",
		AggregateID:   ts.ID.String(),
		EventType:     event.EventType,
		Topic:         events.TimesheetLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetAll(ctx context.Context, filter ListTimesheetsFilter) ([]TimesheetResponse, error) {
	s.logger.Debug("get all timesheets requested",
		zap.String("employee_id", filter.EmployeeID),
		zap.String("status", filter.Status),
	)

	list, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all timesheets failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	resp := make([]TimesheetResponse, len(list))
	for i, ts := range list {
		resp[i] = mapToResponse(ts)
	}
	return resp, nil
}

// GetDetail creates any missing workday rows, then returns the timesheet
// with its entries in weekday order and the computed totals.
func (s *service) GetDetail(ctx context.Context, id string) (TimesheetDetailResponse, error) {
	log := s.logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)), zap.String("timesheet_id", id))
	log.Debug("get timesheet detail requested")

	if _, err := uuid.Parse(id); err != nil {
		return TimesheetDetailResponse{}, timesheeterrors.ErrInvalidTimesheetID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("get timesheet detail begin tx failed", zap.Error(err))
		return TimesheetDetailResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	header, err := qtx.FindHeader(ctx, id)
	if err != nil {
		return TimesheetDetailResponse{}, mapRepositoryError(err)
	}

	created, err := qtx.EnsureEntries(ctx, header.ID, s.workdays)
	if err != nil {
		log.Error("materialize daily entries failed", zap.Error(err))
		return TimesheetDetailResponse{}, mapRepositoryError(err)
	}
	if created > 0 {
		log.Info("daily entries materialized", zap.Int64("created", created))
	}

	ts, err := qtx.FindByID(ctx, id)
	if err != nil {
		return TimesheetDetailResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("get timesheet detail commit failed", zap.Error(err))
		return TimesheetDetailResponse{}, err
	}

	return mapToDetailResponse(*ts), nil
}

func (s *service) UpdateEntry(ctx context.Context, id, day string, req UpdateEntryRequest) (DailyEntryResponse, error) {
	log := s.logger.With(
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("actor_id", contextutil.GetActorID(ctx)),
		zap.String("timesheet_id", id),
		zap.String("day", day),
	)
	log.Debug("update daily entry requested")

	tsID, err := uuid.Parse(id)
	if err != nil {
		return DailyEntryResponse{}, timesheeterrors.ErrInvalidTimesheetID
	}
	weekday, err := worktime.ParseWeekday(day)
	if err != nil {
		return DailyEntryResponse{}, timesheeterrors.ErrInvalidDay
	}
	punches, err := parsePunches(req)
	if err != nil {
		return DailyEntryResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update daily entry begin tx failed", zap.Error(err))
		return DailyEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	draft, err := qtx.UpdateStatus(ctx, tsID, StatusDraft, StatusDraft)
	if err != nil {
		log.Error("update daily entry lock timesheet failed", zap.Error(err))
		return DailyEntryResponse{}, err
	}
	header, err := qtx.FindHeader(ctx, id)
	if err != nil {
		return DailyEntryResponse{}, mapRepositoryError(err)
	}
	if !draft {
		log.Warn("update daily entry on locked timesheet")
		return DailyEntryResponse{}, timesheeterrors.ErrTimesheetLocked
	}

	if _, err := qtx.EnsureEntries(ctx, tsID, []worktime.Weekday{weekday}); err != nil {
		log.Error("update daily entry materialize failed", zap.Error(err))
		return DailyEntryResponse{}, mapRepositoryError(err)
	}
	entry, err := qtx.FindEntry(ctx, tsID, weekday)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DailyEntryResponse{}, timesheeterrors.ErrEntryNotFound
		}
		return DailyEntryResponse{}, err
	}

	if err := entry.ApplyPunches(punches); err != nil {
		log.Warn("update daily entry rejected", zap.Error(err))
		return DailyEntryResponse{}, invalidPunchesError(err)
	}
	if err := qtx.UpdateEntry(ctx, entry); err != nil {
		log.Error("update daily entry persist failed", zap.Error(err))
		return DailyEntryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("update daily entry commit failed", zap.Error(err))
		return DailyEntryResponse{}, err
	}

	log.Info("update daily entry success", zap.Int64("total_minutes", entry.TotalMinutes()))
	return mapEntryResponse(*entry, header.WeekStart), nil
}

func (s *service) Lock(ctx context.Context, id string) (TimesheetResponse, error) {
	log := s.logger.With(
		zap.String("actor_id", contextutil.GetActorID(ctx)),
		zap.String("timesheet_id", id),
	)
	log.Debug("lock timesheet requested")

	tsID, err := uuid.Parse(id)
	if err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidTimesheetID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("lock timesheet begin tx failed", zap.Error(err))
		return TimesheetResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	moved, err := qtx.UpdateStatus(ctx, tsID, StatusDraft, StatusLocked)
	if err != nil {
		log.Error("lock timesheet failed", zap.Error(err))
		return TimesheetResponse{}, err
	}
	ts, err := qtx.FindHeader(ctx, id)
	if err != nil {
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	if !moved {
		return TimesheetResponse{}, timesheeterrors.ErrTimesheetLocked
	}

	if err := tx.Commit(); err != nil {
		log.Error("lock timesheet commit failed", zap.Error(err))
		return TimesheetResponse{}, err
	}

	log.Info("lock timesheet success")
	return mapToResponse(*ts), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := s.logger.With(
		zap.String("actor_id", contextutil.GetActorID(ctx)),
		zap.String("timesheet_id", id),
	)
	log.Debug("delete timesheet requested")

	if _, err := uuid.Parse(id); err != nil {
		return timesheeterrors.ErrInvalidTimesheetID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("delete timesheet failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	log.Info("delete timesheet success")
	return nil
}

// Materialize creates the configured workday rows for a timesheet and
// returns how many were new. Running it again is a no-op.
func (s *service) Materialize(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, timesheeterrors.ErrInvalidTimesheetID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	header, err := qtx.FindHeader(ctx, id)
	if err != nil {
		return 0, mapRepositoryError(err)
	}
	created, err := qtx.EnsureEntries(ctx, header.ID, s.workdays)
	if err != nil {
		s.logger.Error("materialize daily entries failed", zap.String("timesheet_id", id), zap.Error(err))
		return 0, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return created, nil
}

func parseWeekStart(v string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, v, time.UTC)
	if err != nil {
		return time.Time{}, timesheeterrors.ErrInvalidWeekStart
	}
	if !worktime.IsWeekStart(d) {
		return time.Time{}, timesheeterrors.ErrWeekStartNotMonday.WithDetails([]worktime.Violation{{
			Field:   "week_start",
			Message: "week_start must be a Monday, " + d.Weekday().String() + " given",
		}})
	}
	return d, nil
}

func parsePunches(req UpdateEntryRequest) (worktime.Punches, error) {
	var (
		p          worktime.Punches
		violations worktime.Violations
	)
	parse := func(field worktime.Field, raw *string) *worktime.TimeOfDay {
		if raw == nil || *raw == "" {
			return nil
		}
		t, err := worktime.ParseTimeOfDay(*raw)
		if err != nil {
			violations = append(violations, worktime.Violation{Field: field, Message: err.Error()})
			return nil
		}
		return &t
	}

	p.ArrivalMorning = parse(worktime.FieldArrivalMorning, req.ArrivalMorning)
	p.LunchDeparture = parse(worktime.FieldLunchDeparture, req.LunchDeparture)
	p.LunchReturn = parse(worktime.FieldLunchReturn, req.LunchReturn)
	p.ArrivalEvening = parse(worktime.FieldArrivalEvening, req.ArrivalEvening)
	p.DepartureEvening = parse(worktime.FieldDepartureEvening, req.DepartureEvening)

	if len(violations) > 0 {
		return worktime.Punches{}, timesheeterrors.ErrInvalidTimeFormat.WithDetails(violations)
	}
	return p, nil
}

func invalidPunchesError(err error) error {
	var violations worktime.Violations
	if errors.As(err, &violations) {
		return timesheeterrors.ErrInvalidPunches.WithDetails(violations)
	}
	return err
}

func mapToResponse(ts WeeklyTimesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:         ts.ID.String(),
		EmployeeID: ts.EmployeeID.String(),
		WeekStart:  ts.WeekStart.Format(dateLayout),
		WeekEnd:    ts.WeekEnd().Format(dateLayout),
		Status:     string(ts.Status),
	}
	if ts.Employee != nil {
		resp.EmployeeName = ts.Employee.Name
	}
	if !ts.CreatedAt.IsZero() {
		resp.CreatedAt = ts.CreatedAt.UTC().Format(time.RFC3339)
	}
	return resp
}

func mapToDetailResponse(ts WeeklyTimesheet) TimesheetDetailResponse {
	entries := slices.Clone(ts.Entries)
	slices.SortStableFunc(entries, func(a, b DailyEntry) int {
		return a.Day.Rank() - b.Day.Rank()
	})

	punches := make([]worktime.Punches, len(entries))
	entryResp := make([]DailyEntryResponse, len(entries))
	for i, e := range entries {
		punches[i] = e.Punches()
		entryResp[i] = mapEntryResponse(e, ts.WeekStart)
	}

	rate, regularCap := decimal.Zero, decimal.Zero
	if ts.Employee != nil {
		rate = ts.Employee.HourlyRate
		regularCap = ts.Employee.WeeklyRegularHours
	}
	totals := worktime.ComputeTimesheetTotals(punches, rate, regularCap)

	return TimesheetDetailResponse{
		TimesheetResponse:  mapToResponse(ts),
		HourlyRate:         rate.StringFixed(worktime.MoneyPlaces),
		WeeklyRegularHours: regularCap.StringFixed(worktime.HoursPlaces),
		Entries:            entryResp,
		Totals: TotalsResponse{
			TotalMinutes:  totals.TotalMinutes,
			TotalHours:    totals.TotalHours.StringFixed(worktime.HoursPlaces),
			RegularHours:  totals.RegularHours.StringFixed(worktime.HoursPlaces),
			OvertimeHours: totals.OvertimeHours.StringFixed(worktime.HoursPlaces),
			Pay:           totals.Pay.StringFixed(worktime.MoneyPlaces),
		},
	}
}

func mapEntryResponse(e DailyEntry, weekStart time.Time) DailyEntryResponse {
	return DailyEntryResponse{
		ID:               e.ID.String(),
		Day:              string(e.Day),
		Date:             e.Day.Date(weekStart).Format(dateLayout),
		ArrivalMorning:   formatTime(e.ArrivalMorning),
		LunchDeparture:   formatTime(e.LunchDeparture),
		LunchReturn:      formatTime(e.LunchReturn),
		ArrivalEvening:   formatTime(e.ArrivalEvening),
		DepartureEvening: formatTime(e.DepartureEvening),
		TotalMinutes:     e.TotalMinutes(),
	}
}

func formatTime(t *worktime.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
