package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"getmovies/account"
	"getmovies/auth"
	"getmovies/httpserver"
	"getmovies/pkg/config"
	jwtprovider "getmovies/pkg/jwt"

	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = testJWTSecret
	return cfg
}

// newTestServer wires a server whose session guard verifies real tokens
// signed with testJWTSecret.
func newTestServer() *httpserver.Server {
	server := httpserver.Default(testConfig())
	server.AuthService = auth.NewUsecase(nil, testTokenProvider(time.Hour))
	return server
}

func testTokenProvider(ttl time.Duration) *jwtprovider.SessionProvider {
	return jwtprovider.NewSessionProvider(testJWTSecret, ttl)
}

func testAccount() account.Account {
	return account.Account{
		ID:    "acc-1",
		Name:  "Massimo",
		Email: "massimo@example.com",
	}
}

func signTestToken(t testing.TB) string {
	t.Helper()
	token, err := testTokenProvider(time.Hour).GenerateSessionToken(testAccount())
	require.NoError(t, err)
	return token
}

func signExpiredToken(t testing.TB) string {
	t.Helper()
	token, err := testTokenProvider(-time.Minute).GenerateSessionToken(testAccount())
	require.NoError(t, err)
	return token
}

func signTokenWithSecret(t testing.TB, secret string) string {
	t.Helper()
	provider := jwtprovider.NewSessionProvider(secret, time.Hour)
	token, err := provider.GenerateSessionToken(testAccount())
	require.NoError(t, err)
	return token
}

func withSessionCookie(request *http.Request, token string) *http.Request {
	request.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	return request
}

func serve(server *httpserver.Server, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	server.Router.ServeHTTP(recorder, request)
	return recorder
}

func decodeJSON(t testing.TB, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), v))
}

func errorBody(t testing.TB, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeJSON(t, recorder, &body)
	return body["error"]
}

func messageBody(t testing.TB, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decodeJSON(t, recorder, &body)
	return body["message"]
}

// stubAccountRepository backs login tests with a fixed set of accounts.
type stubAccountRepository struct {
	accounts map[string]account.Account
}

func (r *stubAccountRepository) GetByEmail(_ context.Context, email string) (account.Account, error) {
	a, ok := r.accounts[email]
	if !ok {
		return account.Account{}, account.ErrAccountNotFound
	}
	return a, nil
}

func (r *stubAccountRepository) GetByID(_ context.Context, id string) (account.Account, error) {
	for _, a := range r.accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return account.Account{}, account.ErrAccountNotFound
}

func (r *stubAccountRepository) CreateAccount(_ context.Context, a account.Account) (account.Account, error) {
	if _, exists := r.accounts[a.Email]; exists {
		return account.Account{}, account.ErrEmailAlreadyExists
	}
	r.accounts[a.Email] = a
	return a, nil
}
