package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xyscco/easy-finances/internal/database"
	"github.com/Xyscco/easy-finances/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("usuário não encontrado")

func userCacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("user:%s", userID)
}

// FindActiveUserByID resolves an authenticated identity. Inactive users are
// treated as nonexistent. Resolved records go through a read-through Redis
// cache; updates and deactivation invalidate it.
func FindActiveUserByID(userID uuid.UUID) (models.User, error) {
	cacheKey := userCacheKey(userID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil && user.Active {
				return user, nil
			}
		}
	}

	var user models.User
	err := database.DB.Where("id = ? AND active = ?", userID, true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, ErrUserNotFound
		}
		return user, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return user, nil
}

// UpdateUserProfile applies the given profile fields and drops the cache entry.
func UpdateUserProfile(userID uuid.UUID, updates map[string]interface{}) (*models.User, error) {
	var user models.User
	if err := database.DB.Where("id = ? AND active = ?", userID, true).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, err
	}

	invalidateUserCache(userID)

	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeactivateUser soft-deletes: the row stays, authentication lookups stop
// seeing it from the next request on.
func DeactivateUser(userID uuid.UUID) error {
	result := database.DB.Model(&models.User{}).Where("id = ?", userID).Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	invalidateUserCache(userID)
	return nil
}

func invalidateUserCache(userID uuid.UUID) {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, userCacheKey(userID))
	}
}
