package models

// Domain value sets. The database enforces them with check constraints; the
// constants here keep service and handler code free of string literals.

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "receita"
	CategoryTypeExpense CategoryType = "despesa"
)

type AccountType string

const (
	AccountTypeChecking   AccountType = "corrente"
	AccountTypeSavings    AccountType = "poupanca"
	AccountTypeInvestment AccountType = "investimento"
	AccountTypeCash       AccountType = "dinheiro"
)

type TransactionType string

const (
	TransactionTypeIncome      TransactionType = "receita"
	TransactionTypeExpense     TransactionType = "despesa"
	TransactionTypeTransfer    TransactionType = "transferencia"
	TransactionTypeLoanPayment TransactionType = "pagamento_emprestimo"
	TransactionTypeCardPayment TransactionType = "pagamento_cartao"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pendente"
	TransactionStatusCompleted TransactionStatus = "concluida"
	TransactionStatusCancelled TransactionStatus = "cancelada"
)

type RecurrenceFrequency string

const (
	RecurrenceDaily   RecurrenceFrequency = "diaria"
	RecurrenceWeekly  RecurrenceFrequency = "semanal"
	RecurrenceMonthly RecurrenceFrequency = "mensal"
	RecurrenceYearly  RecurrenceFrequency = "anual"
)

type LoanType string

const (
	LoanTypePersonal LoanType = "pessoal"
	LoanTypeHousing  LoanType = "habitacional"
	LoanTypeVehicle  LoanType = "veiculo"
	LoanTypeStudent  LoanType = "estudantil"
	LoanTypeBusiness LoanType = "empresarial"
)

type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pendente"
	InstallmentStatusPaid    InstallmentStatus = "paga"
	InstallmentStatusOverdue InstallmentStatus = "vencida"
)

type InvoiceStatus string

const (
	InvoiceStatusOpen    InvoiceStatus = "aberta"
	InvoiceStatusClosed  InvoiceStatus = "fechada"
	InvoiceStatusPaid    InvoiceStatus = "paga"
	InvoiceStatusOverdue InvoiceStatus = "vencida"
)

type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "mensal"
	BudgetPeriodYearly  BudgetPeriod = "anual"
)

type GoalType string

const (
	GoalTypeSavings    GoalType = "economia"
	GoalTypeInvestment GoalType = "investimento"
	GoalTypePurchase   GoalType = "compra"
	GoalTypeTravel     GoalType = "viagem"
	GoalTypeEmergency  GoalType = "emergencia"
)

type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "ativa"
	GoalStatusDone      GoalStatus = "concluida"
	GoalStatusPaused    GoalStatus = "pausada"
	GoalStatusCancelled GoalStatus = "cancelada"
)

type AlertType string

const (
	AlertTypeInvoiceDue  AlertType = "vencimento_fatura"
	AlertTypeLoanDue     AlertType = "vencimento_emprestimo"
	AlertTypeBudgetLimit AlertType = "limite_orcamento"
	AlertTypeGoalReached AlertType = "meta_atingida"
	AlertTypeLowBalance  AlertType = "saldo_baixo"
)
