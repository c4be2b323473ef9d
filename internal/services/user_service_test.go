package services

import (
	"testing"

	"github.com/Xyscco/easy-finances/internal/database"
	"github.com/Xyscco/easy-finances/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupTestRedis() *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func TestFindActiveUserByID(t *testing.T) {
	setupTestDB()

	user, err := RegisterUser(validInput())
	assert.NoError(t, err)

	found, err := FindActiveUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = FindActiveUserByID(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindActiveUserByID_CachesInRedis(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	user, err := RegisterUser(validInput())
	assert.NoError(t, err)

	_, err = FindActiveUserByID(user.ID)
	assert.NoError(t, err)
	assert.True(t, mr.Exists(userCacheKey(user.ID)))

	// Cached reads keep working
	found, err := FindActiveUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestDeactivateUser_InvalidatesCacheAndLookups(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	user, err := RegisterUser(validInput())
	assert.NoError(t, err)

	_, err = FindActiveUserByID(user.ID)
	assert.NoError(t, err)
	assert.True(t, mr.Exists(userCacheKey(user.ID)))

	assert.NoError(t, DeactivateUser(user.ID))
	assert.False(t, mr.Exists(userCacheKey(user.ID)))

	// The row still exists, but authentication lookups no longer see it
	_, err = FindActiveUserByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	var count int64
	database.DB.Model(&models.User{}).Where("id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeactivateUser_UnknownUser(t *testing.T) {
	setupTestDB()
	assert.ErrorIs(t, DeactivateUser(uuid.New()), ErrUserNotFound)
}

func TestUpdateUserProfile(t *testing.T) {
	setupTestDB()
	mr := setupTestRedis()
	defer mr.Close()

	user, err := RegisterUser(validInput())
	assert.NoError(t, err)

	_, err = FindActiveUserByID(user.ID)
	assert.NoError(t, err)

	updated, err := UpdateUserProfile(user.ID, map[string]interface{}{
		"first_name": "Beatriz",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Beatriz", updated.FirstName)
	assert.False(t, mr.Exists(userCacheKey(user.ID)))

	found, err := FindActiveUserByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Beatriz", found.FirstName)
}
