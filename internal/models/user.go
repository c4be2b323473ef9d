package models

import "fmt"

type User struct {
	Base
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FirstName    string `gorm:"size:100;not null"`
	LastName     string `gorm:"size:100;not null"`
	Phone        string `gorm:"size:20"`
	Active       bool   `gorm:"default:true"`

	// Owned rows; the user is never hard-deleted, but the schema still
	// declares ownership for referential integrity.
	Settings     *UserSettings `gorm:"constraint:OnDelete:CASCADE"`
	Categories   []Category    `gorm:"constraint:OnDelete:CASCADE"`
	BankAccounts []BankAccount `gorm:"constraint:OnDelete:CASCADE"`
	CreditCards  []CreditCard  `gorm:"constraint:OnDelete:CASCADE"`
	Loans        []Loan        `gorm:"constraint:OnDelete:CASCADE"`
	Transactions []Transaction `gorm:"constraint:OnDelete:CASCADE"`
	Budgets      []Budget      `gorm:"constraint:OnDelete:CASCADE"`
	Goals        []Goal        `gorm:"constraint:OnDelete:CASCADE"`
	Alerts       []Alert       `gorm:"constraint:OnDelete:CASCADE"`
}

func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
