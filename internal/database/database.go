package database

import (
	"github.com/Xyscco/easy-finances/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the global database handle. TranslateError is enabled so
// constraint violations surface as gorm.ErrDuplicatedKey regardless of driver.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	DB = db
	return db, nil
}

// Migrate creates or updates the schema for every registered model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSettings{},
		&models.Category{},
		&models.BankAccount{},
		&models.CreditCard{},
		&models.CardInvoice{},
		&models.Loan{},
		&models.LoanInstallment{},
		&models.Transaction{},
		&models.Budget{},
		&models.Goal{},
		&models.Alert{},
	)
}
