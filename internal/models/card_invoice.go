package models

import (
	"time"

	"github.com/google/uuid"
)

type CardInvoice struct {
	Base
	CreditCardID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	ReferenceMonth time.Time     `gorm:"type:date;not null"`
	TotalAmount    float64       `gorm:"type:numeric(15,2);not null"`
	MinimumPayment float64       `gorm:"type:numeric(15,2);not null"`
	DueDate        time.Time     `gorm:"type:date;not null"`
	ClosingDate    time.Time     `gorm:"type:date;not null"`
	Status         InvoiceStatus `gorm:"size:20;default:aberta;check:status IN ('aberta','fechada','paga','vencida')"`
	AmountPaid     float64       `gorm:"type:numeric(15,2);default:0"`
	PaymentDate    *time.Time    `gorm:"type:date"`
}

func (i CardInvoice) RemainingAmount() float64 {
	return i.TotalAmount - i.AmountPaid
}

func (i CardInvoice) PercentPaid() float64 {
	if i.TotalAmount <= 0 {
		return 0
	}
	return (i.AmountPaid / i.TotalAmount) * 100
}

func (i CardInvoice) IsOverdue(today time.Time) bool {
	return i.DueDate.Before(today) && i.Status != InvoiceStatusPaid
}

func (i CardInvoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid || (i.TotalAmount > 0 && i.AmountPaid >= i.TotalAmount)
}
