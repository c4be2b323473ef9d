package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Ana", LastName: "Silva"}
	assert.Equal(t, "Ana Silva", u.FullName())
}

func TestUserSettingsCurrency(t *testing.T) {
	brl := UserSettings{Currency: "BRL"}
	assert.Equal(t, "R$", brl.CurrencySymbol())
	assert.Equal(t, "Real Brasileiro", brl.CurrencyName())

	usd := UserSettings{Currency: "USD"}
	assert.Equal(t, "$", usd.CurrencySymbol())

	unknown := UserSettings{Currency: "XYZ"}
	assert.Equal(t, "R$", unknown.CurrencySymbol())
	assert.Equal(t, "Real Brasileiro", unknown.CurrencyName())
}

func TestUserSettingsFormatAmount(t *testing.T) {
	brl := UserSettings{Currency: "BRL"}
	assert.Equal(t, "R$ 1.234,56", brl.FormatAmount(1234.56))
	assert.Equal(t, "R$ 0,00", brl.FormatAmount(0))
	assert.Equal(t, "R$ -1.500,00", brl.FormatAmount(-1500))

	usd := UserSettings{Currency: "USD"}
	assert.Equal(t, "$ 1,234.56", usd.FormatAmount(1234.56))
}

func TestBankAccountDerivations(t *testing.T) {
	acc := BankAccount{Balance: 800, InitialBalance: 1000}
	assert.Equal(t, 800.0, acc.AvailableBalance())
	assert.Equal(t, -200.0, acc.BalanceChange())
}

func TestCreditCardDerivations(t *testing.T) {
	card := CreditCard{Name: "Nubank", LastDigits: "1234", CreditLimit: 2000, CurrentBalance: 500}
	assert.Equal(t, 1500.0, card.AvailableLimit())
	assert.Equal(t, 25.0, card.PercentUsed())
	assert.Equal(t, "Nubank ****1234", card.MaskedName())

	noDigits := CreditCard{Name: "Visa"}
	assert.Equal(t, "Visa", noDigits.MaskedName())
	assert.Equal(t, 0.0, noDigits.PercentUsed())
}

func TestCardInvoiceDerivations(t *testing.T) {
	today := date(2024, 6, 15)

	inv := CardInvoice{TotalAmount: 1000, AmountPaid: 250, DueDate: date(2024, 6, 10), Status: InvoiceStatusOpen}
	assert.Equal(t, 750.0, inv.RemainingAmount())
	assert.Equal(t, 25.0, inv.PercentPaid())
	assert.True(t, inv.IsOverdue(today))
	assert.False(t, inv.IsPaid())

	paid := CardInvoice{TotalAmount: 1000, AmountPaid: 1000, DueDate: date(2024, 6, 10), Status: InvoiceStatusPaid}
	assert.False(t, paid.IsOverdue(today))
	assert.True(t, paid.IsPaid())
}

func TestLoanDerivations(t *testing.T) {
	loan := Loan{PrincipalAmount: 10000, InstallmentAmount: 500, TotalInstallments: 24, PaidInstallments: 6}
	assert.Equal(t, 18, loan.RemainingInstallments())
	assert.Equal(t, 25.0, loan.PercentPaid())
	assert.Equal(t, 2000.0, loan.TotalInterest())

	empty := Loan{}
	assert.Equal(t, 0.0, empty.PercentPaid())
}

func TestLoanInstallmentDerivations(t *testing.T) {
	today := date(2024, 6, 15)

	p := LoanInstallment{Amount: 500, AmountPaid: 100, DueDate: date(2024, 6, 20), Status: InstallmentStatusPending}
	assert.Equal(t, 400.0, p.RemainingAmount())
	assert.False(t, p.IsOverdue(today))
	assert.False(t, p.IsPaid())
	assert.Equal(t, 5, p.DaysUntilDue(today))

	late := LoanInstallment{Amount: 500, DueDate: date(2024, 6, 10), Status: InstallmentStatusPending}
	assert.True(t, late.IsOverdue(today))
	assert.Equal(t, -5, late.DaysUntilDue(today))
}

func TestTransactionDerivations(t *testing.T) {
	income := Transaction{Type: TransactionTypeIncome}
	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
	assert.Equal(t, "indefinido", income.Source())

	accountID := Transaction{Type: TransactionTypeExpense}
	id := income.ID
	accountID.BankAccountID = &id
	assert.Equal(t, "conta_bancaria", accountID.Source())

	card := Transaction{}
	card.CreditCardID = &id
	assert.Equal(t, "cartao_credito", card.Source())
}

func TestBudgetDerivations(t *testing.T) {
	normal := Budget{LimitAmount: 1000, SpentAmount: 300}
	assert.Equal(t, 700.0, normal.AvailableAmount())
	assert.Equal(t, 30.0, normal.PercentSpent())
	assert.False(t, normal.IsExceeded())
	assert.False(t, normal.NearLimit())
	assert.Equal(t, "normal", normal.BudgetStatus())

	moderate := Budget{LimitAmount: 1000, SpentAmount: 550}
	assert.Equal(t, "moderado", moderate.BudgetStatus())

	warning := Budget{LimitAmount: 1000, SpentAmount: 820}
	assert.True(t, warning.NearLimit())
	assert.Equal(t, "atencao", warning.BudgetStatus())

	exceeded := Budget{LimitAmount: 1000, SpentAmount: 1200}
	assert.True(t, exceeded.IsExceeded())
	assert.Equal(t, "estourado", exceeded.BudgetStatus())
}

func TestGoalDerivations(t *testing.T) {
	today := date(2024, 1, 1)

	goal := Goal{TargetAmount: 12000, CurrentAmount: 3000, TargetDate: date(2024, 4, 1)}
	assert.Equal(t, 9000.0, goal.RemainingAmount())
	assert.Equal(t, 25.0, goal.PercentAchieved())
	assert.False(t, goal.IsAchieved())
	assert.Equal(t, 91, goal.DaysRemaining(today))
	assert.InDelta(t, 9000.0/(91.0/30.0), goal.MonthlyAmountNeeded(today), 0.01)

	done := Goal{TargetAmount: 1000, CurrentAmount: 1000, TargetDate: date(2023, 1, 1)}
	assert.True(t, done.IsAchieved())
	assert.Equal(t, 0, done.DaysRemaining(today))
	assert.Equal(t, 0.0, done.MonthlyAmountNeeded(today))
}

func TestAlertDerivations(t *testing.T) {
	urgent := Alert{Type: AlertTypeLowBalance}
	assert.True(t, urgent.IsUrgent())
	assert.False(t, urgent.IsPositive())
	assert.Equal(t, "account_balance_wallet", urgent.Icon())
	assert.Equal(t, "red", urgent.Color())

	positive := Alert{Type: AlertTypeGoalReached}
	assert.False(t, positive.IsUrgent())
	assert.True(t, positive.IsPositive())
	assert.Equal(t, "check_circle", positive.Icon())
	assert.Equal(t, "green", positive.Color())

	unknown := Alert{Type: AlertType("outro")}
	assert.Equal(t, "notification_important", unknown.Icon())
	assert.Equal(t, "blue", unknown.Color())
}
