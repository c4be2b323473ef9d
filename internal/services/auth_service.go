package services

import (
	"errors"
	"unicode"

	"github.com/Xyscco/easy-finances/internal/database"
	"github.com/Xyscco/easy-finances/internal/models"
	"github.com/Xyscco/easy-finances/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email já cadastrado no sistema")
	ErrInvalidCredentials = errors.New("email ou senha incorretos")

	ErrPasswordMismatch   = errors.New("as senhas não coincidem")
	ErrPasswordTooShort   = errors.New("a senha deve ter pelo menos 8 caracteres")
	ErrPasswordNeedsDigit = errors.New("a senha deve conter pelo menos um número")
	ErrPasswordNeedsUpper = errors.New("a senha deve conter pelo menos uma letra maiúscula")
)

// IsValidationError reports whether err is one of the pre-persistence input
// checks, which map to a 400 at the HTTP boundary.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrPasswordMismatch) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrPasswordNeedsDigit) ||
		errors.Is(err, ErrPasswordNeedsUpper)
}

type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Phone           string
}

// HashPassword derives the stored one-way hash for a plaintext password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPasswordHash verifies a plaintext password against a stored hash.
// Malformed hashes simply fail the check.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword enforces the registration password policy before any row
// is written: at least 8 characters, one digit, one uppercase letter, and a
// matching confirmation.
func ValidatePassword(password, confirmPassword string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var hasDigit, hasUpper bool
	for _, r := range password {
		if unicode.IsDigit(r) {
			hasDigit = true
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	if !hasDigit {
		return ErrPasswordNeedsDigit
	}
	if !hasUpper {
		return ErrPasswordNeedsUpper
	}

	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	return nil
}

// defaultSettings are the fixed values every new account starts with.
func defaultSettings(userID uuid.UUID) models.UserSettings {
	return models.UserSettings{
		UserID:             userID,
		Currency:           "BRL",
		DateFormat:         "DD/MM/YYYY",
		Theme:              "auto",
		EmailNotifications: true,
		PushNotifications:  true,
		MonthCloseDay:      1,
	}
}

// defaultCategories is the seed set created once per new user. Mutable
// afterward; onboarding never touches them again.
func defaultCategories(userID uuid.UUID) []models.Category {
	return []models.Category{
		{UserID: userID, Name: "Alimentação", Description: "Gastos com comida e bebida", Type: models.CategoryTypeExpense, Color: "#FF6B6B", Icon: "restaurant", Active: true},
		{UserID: userID, Name: "Transporte", Description: "Gastos com locomoção", Type: models.CategoryTypeExpense, Color: "#4ECDC4", Icon: "directions_car", Active: true},
		{UserID: userID, Name: "Moradia", Description: "Aluguel, financiamento, condomínio", Type: models.CategoryTypeExpense, Color: "#45B7D1", Icon: "home", Active: true},
		{UserID: userID, Name: "Saúde", Description: "Médicos, medicamentos, plano de saúde", Type: models.CategoryTypeExpense, Color: "#96CEB4", Icon: "local_hospital", Active: true},
		{UserID: userID, Name: "Salário", Description: "Salário e bonificações", Type: models.CategoryTypeIncome, Color: "#55A3FF", Icon: "work", Active: true},
		{UserID: userID, Name: "Freelance", Description: "Trabalhos extras", Type: models.CategoryTypeIncome, Color: "#26DE81", Icon: "business_center", Active: true},
	}
}

// DefaultCategoryCount is the number of category rows onboarding seeds.
const DefaultCategoryCount = 6

// RegisterUser creates a user together with its settings row and seed
// categories in a single transaction. Either all rows land or none do.
// The email pre-check is a fast path; the unique constraint at commit time
// is the authoritative guard against concurrent registration.
func RegisterUser(input RegisterInput) (*models.User, error) {
	if err := ValidatePassword(input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	var count int64
	if err := database.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	tx := database.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	user := models.User{
		Email:        input.Email,
		PasswordHash: hashed,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Active:       true,
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	settings := defaultSettings(user.ID)
	if err := tx.Create(&settings).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	categories := defaultCategories(user.ID)
	if err := tx.Create(&categories).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return &user, nil
}

// LoginUser authenticates by email and password and issues a bearer token.
// Unknown email and wrong password return the same error so callers cannot
// tell which one failed.
func LoginUser(email, password string) (string, models.User, error) {
	var user models.User
	err := database.DB.Where("email = ? AND active = ?", email, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}

	if !CheckPasswordHash(password, user.PasswordHash) {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		return "", models.User{}, err
	}

	return token, user, nil
}
