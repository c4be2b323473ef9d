package utils

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupTokenTestConfig() {
	os.Setenv("JWT_SECRET", "test_secret")
}

func TestGenerateAndVerifyToken(t *testing.T) {
	setupTokenTestConfig()

	userID := uuid.New()
	token, err := GenerateToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestVerifyToken_Expired(t *testing.T) {
	setupTokenTestConfig()

	userID := uuid.New()
	token, err := GenerateTokenWithTTL(userID, -time.Minute)
	assert.NoError(t, err)

	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_FailsClosed(t *testing.T) {
	setupTokenTestConfig()

	// Signed with a different key
	otherKey := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	forged, err := otherKey.SignedString([]byte("another_secret"))
	assert.NoError(t, err)

	// Validly signed but without a subject
	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	subjectless, err := noSubject.SignedString([]byte("test_secret"))
	assert.NoError(t, err)

	// Validly signed but the subject is not a UUID
	badSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-uuid",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	badSubjectToken, err := badSubject.SignedString([]byte("test_secret"))
	assert.NoError(t, err)

	cases := []struct {
		name  string
		token string
	}{
		{"empty string", ""},
		{"garbage", "not.a.token"},
		{"random base64 garbage", "eyJhbGciOiJIUzI1NiJ9.e30.invalid"},
		{"wrong key", forged},
		{"missing subject", subjectless},
		{"non-uuid subject", badSubjectToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := VerifyToken(tc.token)
				assert.Error(t, err)
			})
		})
	}
}

func TestVerifyToken_RejectsUnsignedToken(t *testing.T) {
	setupTokenTestConfig()

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = VerifyToken(unsigned)
	assert.Error(t, err)
}

func TestExtractToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(header string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/", nil)
		if header != "" {
			c.Request.Header.Set("Authorization", header)
		}
		return c
	}

	token, err := ExtractToken(newContext("Bearer abc123"))
	assert.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractToken(newContext(""))
	assert.Error(t, err)

	_, err = ExtractToken(newContext("Basic abc123"))
	assert.Error(t, err)
}
