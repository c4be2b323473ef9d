package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func TestFindSettingsByUserID(t *testing.T) {
	setupTestDB()

	user, err := RegisterUser(validInput())
	assert.NoError(t, err)

	settings, err := FindSettingsByUserID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "BRL", settings.Currency)

	_, err = FindSettingsByUserID(uuid.New())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestUpdateSettings(t *testing.T) {
	setupTestDB()

	user, err := RegisterUser(validInput())
	assert.NoError(t, err)

	updated, err := UpdateSettings(user.ID, SettingsUpdate{
		Theme:             strPtr("escuro"),
		Currency:          strPtr("USD"),
		MonthCloseDay:     intPtr(5),
		PushNotifications: boolPtr(false),
	})
	assert.NoError(t, err)
	assert.Equal(t, "escuro", updated.Theme)
	assert.Equal(t, "USD", updated.Currency)
	assert.Equal(t, 5, updated.MonthCloseDay)
	assert.False(t, updated.PushNotifications)

	// Untouched fields keep their values
	assert.Equal(t, "DD/MM/YYYY", updated.DateFormat)
	assert.True(t, updated.EmailNotifications)
}

func TestUpdateSettings_Validation(t *testing.T) {
	setupTestDB()

	user, err := RegisterUser(validInput())
	assert.NoError(t, err)

	_, err = UpdateSettings(user.ID, SettingsUpdate{Theme: strPtr("neon")})
	assert.ErrorIs(t, err, ErrInvalidTheme)
	assert.True(t, IsSettingsValidationError(err))

	_, err = UpdateSettings(user.ID, SettingsUpdate{MonthCloseDay: intPtr(40)})
	assert.ErrorIs(t, err, ErrInvalidCloseDay)

	_, err = UpdateSettings(user.ID, SettingsUpdate{MonthCloseDay: intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidCloseDay)

	// Nothing changed after rejected updates
	settings, err := FindSettingsByUserID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "auto", settings.Theme)
	assert.Equal(t, 1, settings.MonthCloseDay)
}
