package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	Base
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID    *uuid.UUID `gorm:"type:uuid"`
	BankAccountID *uuid.UUID `gorm:"type:uuid"`
	CreditCardID  *uuid.UUID `gorm:"type:uuid"`
	LoanID        *uuid.UUID `gorm:"type:uuid"`

	Description     string          `gorm:"size:255;not null"`
	Amount          float64         `gorm:"type:numeric(15,2);not null"`
	Type            TransactionType `gorm:"size:20;not null;check:type IN ('receita','despesa','transferencia','pagamento_emprestimo','pagamento_cartao')"`
	TransactionDate time.Time       `gorm:"type:date;not null"`
	DueDate         *time.Time      `gorm:"type:date"`

	Recurring           bool                `gorm:"default:false"`
	RecurrenceFrequency RecurrenceFrequency `gorm:"size:20;check:recurrence_frequency IN ('diaria','semanal','mensal','anual') OR recurrence_frequency = ''"`
	RecurrenceEndDate   *time.Time          `gorm:"type:date"`

	Status TransactionStatus `gorm:"size:20;default:concluida;check:status IN ('pendente','concluida','cancelada')"`
	Notes  string            `gorm:"type:text"`
	Tags   []string          `gorm:"serializer:json"`

	// Referenced rows survive the transaction; the references go away with them.
	Category    *Category    `gorm:"constraint:OnDelete:SET NULL"`
	BankAccount *BankAccount `gorm:"constraint:OnDelete:SET NULL"`
	CreditCard  *CreditCard  `gorm:"constraint:OnDelete:SET NULL"`
	Loan        *Loan        `gorm:"constraint:OnDelete:SET NULL"`
}

func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// Source names which kind of record the money moved through.
func (t Transaction) Source() string {
	switch {
	case t.BankAccountID != nil:
		return "conta_bancaria"
	case t.CreditCardID != nil:
		return "cartao_credito"
	case t.LoanID != nil:
		return "emprestimo"
	}
	return "indefinido"
}
