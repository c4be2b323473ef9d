package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Alert struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      AlertType `gorm:"size:30;not null;check:type IN ('vencimento_fatura','vencimento_emprestimo','limite_orcamento','meta_atingida','saldo_baixo')"`
	Title     string    `gorm:"size:200;not null"`
	Message   string    `gorm:"type:text;not null"`
	AlertAt   time.Time `gorm:"not null"`
	Read      bool      `gorm:"default:false"`
	Active    bool      `gorm:"default:true"`
	CreatedAt time.Time
}

func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (a Alert) IsUrgent() bool {
	switch a.Type {
	case AlertTypeInvoiceDue, AlertTypeLoanDue, AlertTypeLowBalance:
		return true
	}
	return false
}

func (a Alert) IsPositive() bool {
	return a.Type == AlertTypeGoalReached
}

func (a Alert) Icon() string {
	icons := map[AlertType]string{
		AlertTypeInvoiceDue:  "credit_card",
		AlertTypeLoanDue:     "account_balance",
		AlertTypeBudgetLimit: "warning",
		AlertTypeGoalReached: "check_circle",
		AlertTypeLowBalance:  "account_balance_wallet",
	}
	if icon, ok := icons[a.Type]; ok {
		return icon
	}
	return "notification_important"
}

func (a Alert) Color() string {
	colors := map[AlertType]string{
		AlertTypeInvoiceDue:  "orange",
		AlertTypeLoanDue:     "red",
		AlertTypeBudgetLimit: "yellow",
		AlertTypeGoalReached: "green",
		AlertTypeLowBalance:  "red",
	}
	if color, ok := colors[a.Type]; ok {
		return color
	}
	return "blue"
}
