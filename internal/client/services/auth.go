package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/api"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/models"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/logging"
)

// TokenInfo is what the client can read out of its own bearer token for
// display. Claims are decoded without verification; the server remains the
// authority on token validity.
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time
}

// AuthService defines the authentication operations of the client.
//
// Contract:
//   - Register: create a new account on the server.
//   - Login: exchange email/password for a credential and persist it.
//   - Logout: clear the persisted credential; no network call.
//   - TokenInfo: decode the stored token's claims for display.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
type AuthService interface {
	Register(ctx context.Context, username, email, password string, interests []string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResendOTP(ctx context.Context, email string) error
	Login(ctx context.Context, email, password string) (models.Credential, error)
	Logout(ctx context.Context) error
	TokenInfo(token string) (TokenInfo, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
	store  *CredentialStore
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and credential store.
func NewAuthService(client api.Client, store *CredentialStore, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

func (a *authService) Register(ctx context.Context, username, email, password string, interests []string) error {
	return a.client.Register(ctx, api.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  password,
		Interests: interests,
	})
}

func (a *authService) VerifyOTP(ctx context.Context, email, otp string) error {
	return a.client.VerifyOTP(ctx, email, otp)
}

func (a *authService) ResendOTP(ctx context.Context, email string) error {
	return a.client.ResendOTP(ctx, email)
}

// Login obtains a bearer token and persists the resulting credential. The
// follow-up identity fetch is best-effort: if it fails, login still
// succeeds with an empty username and the failure is only logged.
func (a *authService) Login(ctx context.Context, email, password string) (models.Credential, error) {
	token, err := a.client.Token(ctx, email, password)
	if err != nil {
		return models.Credential{}, err
	}

	cred := models.Credential{Token: token, Email: email}

	ident, err := a.client.Me(ctx, token)
	if err != nil {
		a.log.Warn(ctx, "identity fetch failed after login, continuing without username", "error", err)
	} else {
		cred.Username = ident.Username
	}

	if err := a.store.Set(ctx, cred); err != nil {
		return models.Credential{}, fmt.Errorf("persisting credential: %w", err)
	}
	return cred, nil
}

// Logout is purely local; the server keeps no revocable session state for
// this client.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) TokenInfo(token string) (TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}, fmt.Errorf("decoding token: %w", err)
	}

	info := TokenInfo{}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Health(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
