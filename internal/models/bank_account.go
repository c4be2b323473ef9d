package models

import "github.com/google/uuid"

type BankAccount struct {
	Base
	UserID         uuid.UUID   `gorm:"type:uuid;not null;index"`
	Name           string      `gorm:"size:100;not null"`
	BankName       string      `gorm:"size:100"`
	Type           AccountType `gorm:"size:20;not null;check:type IN ('corrente','poupanca','investimento','dinheiro')"`
	Balance        float64     `gorm:"type:numeric(15,2);default:0"`
	InitialBalance float64     `gorm:"type:numeric(15,2);default:0"`
	Active         bool        `gorm:"default:true"`
}

func (a BankAccount) AvailableBalance() float64 {
	return a.Balance
}

// BalanceChange is the drift since the account was registered.
func (a BankAccount) BalanceChange() float64 {
	return a.Balance - a.InitialBalance
}
