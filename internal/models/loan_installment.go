package models

import (
	"time"

	"github.com/google/uuid"
)

type LoanInstallment struct {
	Base
	LoanID          uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uq_loan_installment"`
	Number          int               `gorm:"not null;uniqueIndex:uq_loan_installment"`
	DueDate         time.Time         `gorm:"type:date;not null"`
	Amount          float64           `gorm:"type:numeric(15,2);not null"`
	PrincipalParcel float64           `gorm:"type:numeric(15,2);not null"`
	InterestParcel  float64           `gorm:"type:numeric(15,2);not null"`
	Status          InstallmentStatus `gorm:"size:20;default:pendente;check:status IN ('pendente','paga','vencida')"`
	PaymentDate     *time.Time        `gorm:"type:date"`
	AmountPaid      float64           `gorm:"type:numeric(15,2);default:0"`
}

func (p LoanInstallment) RemainingAmount() float64 {
	return p.Amount - p.AmountPaid
}

func (p LoanInstallment) IsOverdue(today time.Time) bool {
	return p.DueDate.Before(today) && p.Status != InstallmentStatusPaid
}

func (p LoanInstallment) IsPaid() bool {
	return p.Status == InstallmentStatusPaid || (p.Amount > 0 && p.AmountPaid >= p.Amount)
}

// DaysUntilDue is negative once the installment is past due.
func (p LoanInstallment) DaysUntilDue(today time.Time) int {
	return int(p.DueDate.Sub(today).Hours() / 24)
}
