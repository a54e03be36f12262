package auth

import (
	"context"
	"errors"
	"time"

	"getmovies/account"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid session token")
)

const (
	// SessionCookie is the name of the HTTP-only cookie carrying the session
	// token.
	SessionCookie = "session_token"

	// SessionTTL is the fixed lifetime of a session token. There is no
	// server-side session state; expiry is the only revocation.
	SessionTTL = time.Hour
)

// Identity is the decoded payload of a verified session token.
type Identity struct {
	AccountID string
	Email     string
}

type Service interface {
	Login(ctx context.Context, email string) (string, error)
	VerifySession(token string) (Identity, error)
}

type TokenProvider interface {
	GenerateSessionToken(a account.Account) (string, error)
	ParseSessionToken(token string) (Identity, error)
}

type Usecase struct {
	accounts account.Repository
	tokens   TokenProvider
}

func NewUsecase(accounts account.Repository, tokens TokenProvider) *Usecase {
	return &Usecase{
		accounts: accounts,
		tokens:   tokens,
	}
}

// Login issues a session token for the account registered under email.
// The account's existence is the only credential the upstream API contract
// checks; there is no password step.
func (uc *Usecase) Login(ctx context.Context, email string) (string, error) {
	a, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	return uc.tokens.GenerateSessionToken(a)
}

// VerifySession validates the signature and expiry of a session token and
// returns the identity it carries. Every failure mode collapses into
// ErrInvalidSession so callers cannot distinguish why verification failed.
func (uc *Usecase) VerifySession(token string) (Identity, error) {
	identity, err := uc.tokens.ParseSessionToken(token)
	if err != nil {
		return Identity{}, ErrInvalidSession
	}
	return identity, nil
}
