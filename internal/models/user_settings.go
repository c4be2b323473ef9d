package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type UserSettings struct {
	Base
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Currency           string    `gorm:"size:3;default:BRL"`
	DateFormat         string    `gorm:"size:10;default:DD/MM/YYYY"`
	Theme              string    `gorm:"size:10;default:auto;check:theme IN ('claro','escuro','auto')"`
	EmailNotifications bool      `gorm:"default:true"`
	PushNotifications  bool      `gorm:"default:true"`
	MonthCloseDay      int       `gorm:"default:1;check:month_close_day BETWEEN 1 AND 31"`
}

var currencySymbols = map[string]string{
	"BRL": "R$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

var currencyNames = map[string]string{
	"BRL": "Real Brasileiro",
	"USD": "Dólar Americano",
	"EUR": "Euro",
	"GBP": "Libra Esterlina",
}

func (s UserSettings) CurrencySymbol() string {
	if symbol, ok := currencySymbols[s.Currency]; ok {
		return symbol
	}
	return "R$"
}

func (s UserSettings) CurrencyName() string {
	if name, ok := currencyNames[s.Currency]; ok {
		return name
	}
	return "Real Brasileiro"
}

// FormatAmount renders a monetary value using the user's currency. BRL keeps
// Brazilian separators (1.234,56); other currencies keep 1,234.56.
func (s UserSettings) FormatAmount(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)

	intPart, fracPart, _ := strings.Cut(formatted, ".")
	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	var out string
	if s.Currency == "BRL" || currencySymbols[s.Currency] == "" {
		out = strings.Join(groups, ".") + "," + fracPart
	} else {
		out = strings.Join(groups, ",") + "." + fracPart
	}
	if negative {
		out = "-" + out
	}
	return fmt.Sprintf("%s %s", s.CurrencySymbol(), out)
}
