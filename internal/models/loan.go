package models

import (
	"time"

	"github.com/google/uuid"
)

type Loan struct {
	Base
	UserID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name               string     `gorm:"size:100;not null"`
	Type               LoanType   `gorm:"size:20;not null;check:type IN ('pessoal','habitacional','veiculo','estudantil','empresarial')"`
	PrincipalAmount    float64    `gorm:"type:numeric(15,2);not null"`
	OutstandingBalance float64    `gorm:"type:numeric(15,2);not null"`
	AnnualInterestRate float64    `gorm:"type:numeric(5,2);not null"`
	TotalInstallments  int        `gorm:"not null"`
	PaidInstallments   int        `gorm:"default:0"`
	InstallmentAmount  float64    `gorm:"type:numeric(15,2);not null"`
	StartDate          time.Time  `gorm:"type:date;not null"`
	EndDate            time.Time  `gorm:"type:date;not null"`
	NextDueDate        *time.Time `gorm:"type:date"`
	Active             bool       `gorm:"default:true"`

	Installments []LoanInstallment `gorm:"constraint:OnDelete:CASCADE"`
}

func (l Loan) RemainingInstallments() int {
	return l.TotalInstallments - l.PaidInstallments
}

func (l Loan) PercentPaid() float64 {
	if l.TotalInstallments <= 0 {
		return 0
	}
	return (float64(l.PaidInstallments) / float64(l.TotalInstallments)) * 100
}

// TotalInterest is the contract's total cost above the borrowed principal.
func (l Loan) TotalInterest() float64 {
	return l.InstallmentAmount*float64(l.TotalInstallments) - l.PrincipalAmount
}
