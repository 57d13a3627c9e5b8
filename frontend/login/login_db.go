package login

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"herbadmin/infrastructure/seal"
	"herbadmin/infrastructure/sqlite"
	"herbadmin/models"
)

func persistSession(ctx context.Context, db *sqlite.DB, sealer *seal.Sealer, session models.Session) error {
	sealed, err := sealer.Seal(session.Credential)
	if err != nil {
		return err
	}
	now := time.Now()
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(&models.Session{
			ID:               session.ID,
			Username:         session.Username,
			SealedCredential: sealed,
			ExpiresAt:        session.ExpiresAt,
			CreatedAt:        now,
			UpdatedAt:        now,
		}).Exec(ctx)
		return err
	})
}

// LoadSessionByToken restores a session from sqlite and unseals the backend
// credential. Expired rows are removed and reported as sql.ErrNoRows.
func LoadSessionByToken(ctx context.Context, db *sqlite.DB, sealer *seal.Sealer, token string) (models.Session, error) {
	var session models.Session
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&session).
			Where("s.id = ?", token).
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		return models.Session{}, err
	}
	if session.Expired() {
		_ = DeleteSessionByToken(ctx, db, token)
		return models.Session{}, sql.ErrNoRows
	}

	credential, err := sealer.Open(session.SealedCredential)
	if err != nil {
		// A key rotation or restart with an ephemeral key leaves rows
		// that can no longer be unsealed; treat them as gone.
		_ = DeleteSessionByToken(ctx, db, token)
		return models.Session{}, sql.ErrNoRows
	}
	session.Credential = credential
	return session, nil
}

func DeleteSessionByToken(ctx context.Context, db *sqlite.DB, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().Model((*models.Session)(nil)).Where("id = ?", token).Exec(ctx)
		return err
	})
}

// DeleteExpiredSessions trims rows whose expiry has passed.
func DeleteExpiredSessions(ctx context.Context, db *sqlite.DB) error {
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.Session)(nil)).
			Where("expires_at < ?", time.Now()).
			Exec(ctx)
		return err
	})
}
