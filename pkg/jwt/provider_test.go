package jwt_test

import (
	"testing"
	"time"

	"getmovies/account"
	jwtprovider "getmovies/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testAccount() account.Account {
	return account.Account{
		ID:    "acc-1",
		Email: "massimo@example.com",
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	// Arrange
	provider := jwtprovider.NewSessionProvider(testSecret, time.Hour)

	// Act
	token, err := provider.GenerateSessionToken(testAccount())
	require.NoError(t, err)
	identity, err := provider.ParseSessionToken(token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "acc-1", identity.AccountID)
	assert.Equal(t, "massimo@example.com", identity.Email)
}

func TestParseSessionToken_Expired(t *testing.T) {
	// Arrange
	provider := jwtprovider.NewSessionProvider(testSecret, -time.Minute)
	token, err := provider.GenerateSessionToken(testAccount())
	require.NoError(t, err)

	// Act
	_, err = jwtprovider.NewSessionProvider(testSecret, time.Hour).ParseSessionToken(token)

	// Assert
	assert.Error(t, err)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	// Arrange
	token, err := jwtprovider.NewSessionProvider("other-secret", time.Hour).GenerateSessionToken(testAccount())
	require.NoError(t, err)

	// Act
	_, err = jwtprovider.NewSessionProvider(testSecret, time.Hour).ParseSessionToken(token)

	// Assert
	assert.Error(t, err)
}

func TestParseSessionToken_Garbage(t *testing.T) {
	provider := jwtprovider.NewSessionProvider(testSecret, time.Hour)

	_, err := provider.ParseSessionToken("not.a.token")

	assert.Error(t, err)
}

func TestParseSessionToken_RejectsForeignClaims(t *testing.T) {
	provider := jwtprovider.NewSessionProvider(testSecret, time.Hour)

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{
			name: "wrong type claim",
			claims: jwt.MapClaims{
				"user_id": "acc-1",
				"email":   "massimo@example.com",
				"type":    "refresh",
				"exp":     time.Now().Add(time.Hour).Unix(),
			},
		},
		{
			name: "missing account id",
			claims: jwt.MapClaims{
				"email": "massimo@example.com",
				"type":  "session",
				"exp":   time.Now().Add(time.Hour).Unix(),
			},
		},
		{
			name: "missing email",
			claims: jwt.MapClaims{
				"user_id": "acc-1",
				"type":    "session",
				"exp":     time.Now().Add(time.Hour).Unix(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = provider.ParseSessionToken(token)

			assert.Error(t, err)
		})
	}
}

func TestParseSessionToken_RejectsUnsignedToken(t *testing.T) {
	// alg=none tokens must never verify, whatever their claims say.
	provider := jwtprovider.NewSessionProvider(testSecret, time.Hour)
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"user_id": "acc-1",
		"email":   "massimo@example.com",
		"type":    "session",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = provider.ParseSessionToken(token)

	assert.Error(t, err)
}
