package models

import (
	"fmt"

	"github.com/google/uuid"
)

type CreditCard struct {
	Base
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"size:100;not null"`
	BankName       string    `gorm:"size:100"`
	LastDigits     string    `gorm:"size:4"`
	CreditLimit    float64   `gorm:"type:numeric(15,2);not null"`
	CurrentBalance float64   `gorm:"type:numeric(15,2);default:0"`
	ClosingDay     int       `gorm:"not null;check:closing_day BETWEEN 1 AND 31"`
	DueDay         int       `gorm:"not null;check:due_day BETWEEN 1 AND 31"`
	Active         bool      `gorm:"default:true"`

	Invoices []CardInvoice `gorm:"constraint:OnDelete:CASCADE"`
}

func (c CreditCard) AvailableLimit() float64 {
	return c.CreditLimit - c.CurrentBalance
}

func (c CreditCard) PercentUsed() float64 {
	if c.CreditLimit <= 0 {
		return 0
	}
	return (c.CurrentBalance / c.CreditLimit) * 100
}

// MaskedName appends the card's last digits when known, e.g. "Nubank ****1234".
func (c CreditCard) MaskedName() string {
	if c.LastDigits == "" {
		return c.Name
	}
	return fmt.Sprintf("%s ****%s", c.Name, c.LastDigits)
}
