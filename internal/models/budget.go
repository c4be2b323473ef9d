package models

import (
	"time"

	"github.com/google/uuid"
)

type Budget struct {
	Base
	UserID      uuid.UUID    `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID   `gorm:"type:uuid"`
	Name        string       `gorm:"size:100;not null"`
	LimitAmount float64      `gorm:"type:numeric(15,2);not null"`
	SpentAmount float64      `gorm:"type:numeric(15,2);default:0"`
	Period      BudgetPeriod `gorm:"size:20;not null;check:period IN ('mensal','anual')"`
	StartDate   time.Time    `gorm:"type:date;not null"`
	EndDate     time.Time    `gorm:"type:date;not null"`
	Active      bool         `gorm:"default:true"`

	Category *Category `gorm:"constraint:OnDelete:CASCADE"`
}

func (b Budget) AvailableAmount() float64 {
	return b.LimitAmount - b.SpentAmount
}

func (b Budget) PercentSpent() float64 {
	if b.LimitAmount <= 0 {
		return 0
	}
	return (b.SpentAmount / b.LimitAmount) * 100
}

func (b Budget) IsExceeded() bool {
	return b.SpentAmount > b.LimitAmount
}

// NearLimit reports 80% or more of the limit consumed.
func (b Budget) NearLimit() bool {
	return b.PercentSpent() >= 80.0
}

func (b Budget) BudgetStatus() string {
	switch {
	case b.IsExceeded():
		return "estourado"
	case b.NearLimit():
		return "atencao"
	case b.PercentSpent() >= 50.0:
		return "moderado"
	}
	return "normal"
}
