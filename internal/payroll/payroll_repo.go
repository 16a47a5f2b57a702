package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-timesheet/internal/shared/txscope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SummaryFilter struct {
	EmployeeIDs []uuid.UUID
	From        *time.Time
	To          *time.Time
	Status      string
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindEmployeesWithTimesheets(ctx context.Context, filter SummaryFilter) ([]PayrollEmployee, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// FindEmployeesWithTimesheets returns employees ordered by name, each with
// the timesheets whose week_start falls inside the filter window.
func (r *repository) FindEmployeesWithTimesheets(ctx context.Context, filter SummaryFilter) ([]PayrollEmployee, error) {
	var employees []PayrollEmployee

	q := r.conn(ctx).
		Preload("Timesheets", func(db *gorm.DB) *gorm.DB {
			if filter.From != nil {
				db = db.Where("week_start >= ?", *filter.From)
			}
			if filter.To != nil {
				db = db.Where("week_start <= ?", *filter.To)
			}
			if filter.Status != "" {
				db = db.Where("status = ?", filter.Status)
			}
			return db.Order("week_start ASC")
		}).
		Preload("Timesheets.Entries")

	if len(filter.EmployeeIDs) > 0 {
		q = q.Where("id IN ?", filter.EmployeeIDs)
	}

	err := q.Order("name ASC").Order("id ASC").Find(&employees).Error
	return employees, err
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return txscope.Conn(ctx, r.db, r.tx)
}
