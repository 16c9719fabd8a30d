// Package services contains the application services of the interview
// client: credential persistence, authentication, and the interview
// session state machine.
package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/models"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/repositories/credentials"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/dbx"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/logging"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// CredentialStore owns the persisted credential. Get never fails: missing
// or unreadable data degrades to the anonymous credential.
type CredentialStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewCredentialStore(db *sql.DB, log logging.Logger) *CredentialStore {
	return &CredentialStore{db: db, log: log}
}

// Get returns the persisted credential. Absent keys and garbage values are
// swallowed (logged at debug level), never surfaced.
func (s *CredentialStore) Get(ctx context.Context) models.Credential {
	repo := credentials.NewSQLiteRepository(s.db)

	var cred models.Credential

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		s.log.Debug(ctx, "could not read stored token", "error", err)
	} else {
		cred.Token = string(token)
	}

	raw, err := repo.Get(ctx, keyUser)
	if err != nil {
		s.log.Debug(ctx, "could not read stored user", "error", err)
		return cred
	}
	if len(raw) == 0 {
		return cred
	}

	var user models.Credential
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Debug(ctx, "stored user is not valid JSON, ignoring", "error", err)
		return cred
	}
	cred.Username = user.Username
	cred.Email = user.Email
	return cred
}

// Set persists the credential, replacing whatever was stored before. The
// token and the profile are written in one transaction.
func (s *CredentialStore) Set(ctx context.Context, cred models.Credential) error {
	raw, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := credentials.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(cred.Token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, raw)
	})
}

// Clear removes every persisted field. Clearing an empty store is a no-op.
func (s *CredentialStore) Clear(ctx context.Context) error {
	repo := credentials.NewSQLiteRepository(s.db)
	return repo.Clear(ctx)
}
