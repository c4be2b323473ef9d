package models

import (
	"time"

	"github.com/google/uuid"
)

type Goal struct {
	Base
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name          string     `gorm:"size:100;not null"`
	Description   string     `gorm:"type:text"`
	TargetAmount  float64    `gorm:"type:numeric(15,2);not null"`
	CurrentAmount float64    `gorm:"type:numeric(15,2);default:0"`
	StartDate     time.Time  `gorm:"type:date;not null"`
	TargetDate    time.Time  `gorm:"type:date;not null"`
	Type          GoalType   `gorm:"size:20;not null;check:type IN ('economia','investimento','compra','viagem','emergencia')"`
	Status        GoalStatus `gorm:"size:20;default:ativa;check:status IN ('ativa','concluida','pausada','cancelada')"`
}

func (g Goal) RemainingAmount() float64 {
	return g.TargetAmount - g.CurrentAmount
}

func (g Goal) PercentAchieved() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	return (g.CurrentAmount / g.TargetAmount) * 100
}

func (g Goal) IsAchieved() bool {
	return g.TargetAmount > 0 && g.CurrentAmount >= g.TargetAmount
}

// DaysRemaining never goes negative; a past target date reads as zero.
func (g Goal) DaysRemaining(today time.Time) int {
	days := int(g.TargetDate.Sub(today).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// MonthlyAmountNeeded is the saving rate required to reach the target in time.
func (g Goal) MonthlyAmountNeeded(today time.Time) float64 {
	days := g.DaysRemaining(today)
	if days <= 0 {
		return 0
	}
	months := float64(days) / 30.0
	return g.RemainingAmount() / months
}
