package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Employee struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(150);not null;index"`
	IsActive bool      `gorm:"not null;default:true;index"`

	// Stored as fixed point; never converted through float64.
	HourlyRate         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	WeeklyRegularHours decimal.Decimal `gorm:"type:decimal(6,2);not null;default:40"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
