package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"getmovies/account"
	"getmovies/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginRequest(body string) *http.Request {
	request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	return request
}

func sessionCookie(recorder *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == auth.SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	server := newTestServer()
	accounts := &stubAccountRepository{
		accounts: map[string]account.Account{
			"massimo@example.com": testAccount(),
		},
	}
	server.AuthService = auth.NewUsecase(accounts, testTokenProvider(time.Hour))

	t.Run("issues session for known email without credential check", func(t *testing.T) {
		// The API authenticates by email existence alone; there is no
		// password anywhere in the login contract.
		recorder := serve(server, newLoginRequest(`{"email":"massimo@example.com"}`))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Logged in successfully", messageBody(t, recorder))

		cookie := sessionCookie(recorder)
		require.NotNil(t, cookie, "login should set the session cookie")
		assert.True(t, cookie.HttpOnly, "session cookie must be HTTP-only")
		assert.Equal(t, "/", cookie.Path)

		identity, err := server.AuthService.VerifySession(cookie.Value)
		require.NoError(t, err)
		assert.Equal(t, "acc-1", identity.AccountID)
		assert.Equal(t, "massimo@example.com", identity.Email)
	})

	t.Run("rejects unknown email with generic invalid credentials", func(t *testing.T) {
		recorder := serve(server, newLoginRequest(`{"email":"nobody@example.com"}`))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Equal(t, "Invalid credentials", errorBody(t, recorder))
		assert.Nil(t, sessionCookie(recorder))
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		recorder := serve(server, newLoginRequest(`{"email":"not-an-email"}`))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Nil(t, sessionCookie(recorder))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		recorder := serve(server, newLoginRequest(`{"email": `))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("secure flag follows production mode", func(t *testing.T) {
		secureServer := newTestServer()
		secureServer.SecureCookies = true
		secureServer.AuthService = auth.NewUsecase(accounts, testTokenProvider(time.Hour))

		recorder := serve(secureServer, newLoginRequest(`{"email":"massimo@example.com"}`))

		cookie := sessionCookie(recorder)
		require.NotNil(t, cookie)
		assert.True(t, cookie.Secure)
	})
}

func TestLogout(t *testing.T) {
	server := newTestServer()

	t.Run("clears the session cookie", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/logout", nil)

		recorder := serve(server, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Logged out successfully", messageBody(t, recorder))

		cookie := sessionCookie(recorder)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("a token captured before logout still verifies until expiry", func(t *testing.T) {
		token := signTestToken(t)

		request := httptest.NewRequest(http.MethodPost, "/logout", nil)
		withSessionCookie(request, token)
		serve(server, request)

		_, err := server.AuthService.VerifySession(token)
		assert.NoError(t, err, "logout has no server-side revocation")
	})
}
