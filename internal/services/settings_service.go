package services

import (
	"errors"

	"github.com/Xyscco/easy-finances/internal/database"
	"github.com/Xyscco/easy-finances/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSettingsNotFound = errors.New("configurações não encontradas")
	ErrInvalidTheme     = errors.New("tema deve ser: claro, escuro ou auto")
	ErrInvalidCloseDay  = errors.New("dia de fechamento deve estar entre 1 e 31")
)

// FindSettingsByUserID returns the user's single settings row. Onboarding
// guarantees it exists for every user created through registration.
func FindSettingsByUserID(userID uuid.UUID) (models.UserSettings, error) {
	var settings models.UserSettings
	err := database.DB.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return settings, ErrSettingsNotFound
		}
		return settings, err
	}
	return settings, nil
}

// SettingsUpdate carries the fields a user may change; nil means keep.
type SettingsUpdate struct {
	Currency           *string
	DateFormat         *string
	Theme              *string
	EmailNotifications *bool
	PushNotifications  *bool
	MonthCloseDay      *int
}

func (u SettingsUpdate) validate() error {
	if u.Theme != nil {
		switch *u.Theme {
		case "claro", "escuro", "auto":
		default:
			return ErrInvalidTheme
		}
	}
	if u.MonthCloseDay != nil && (*u.MonthCloseDay < 1 || *u.MonthCloseDay > 31) {
		return ErrInvalidCloseDay
	}
	return nil
}

// UpdateSettings applies the provided fields to the user's settings row.
func UpdateSettings(userID uuid.UUID, update SettingsUpdate) (*models.UserSettings, error) {
	if err := update.validate(); err != nil {
		return nil, err
	}

	settings, err := FindSettingsByUserID(userID)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if update.Currency != nil {
		changes["currency"] = *update.Currency
	}
	if update.DateFormat != nil {
		changes["date_format"] = *update.DateFormat
	}
	if update.Theme != nil {
		changes["theme"] = *update.Theme
	}
	if update.EmailNotifications != nil {
		changes["email_notifications"] = *update.EmailNotifications
	}
	if update.PushNotifications != nil {
		changes["push_notifications"] = *update.PushNotifications
	}
	if update.MonthCloseDay != nil {
		changes["month_close_day"] = *update.MonthCloseDay
	}

	if len(changes) > 0 {
		if err := database.DB.Model(&settings).Updates(changes).Error; err != nil {
			return nil, err
		}
	}

	return &settings, nil
}

// IsSettingsValidationError maps settings input errors to a 400 at the
// HTTP boundary.
func IsSettingsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTheme) || errors.Is(err, ErrInvalidCloseDay)
}
