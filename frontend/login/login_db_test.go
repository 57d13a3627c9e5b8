package login

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"herbadmin/infrastructure/seal"
	"herbadmin/infrastructure/sqlite"
	"herbadmin/models"
)

func openLoginTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "login-test.db")
	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func testSealer(t *testing.T) *seal.Sealer {
	t.Helper()
	sealer, err := seal.New(hex.EncodeToString([]byte(strings.Repeat("s", 32))))
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}
	return sealer
}

func TestPersistAndLoadSession(t *testing.T) {
	db := openLoginTestDB(t)
	sealer := testSealer(t)

	session := models.Session{
		ID:         newSessionToken(),
		Username:   "admin",
		Credential: "YWRtaW46c2VjcmV0",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	if err := persistSession(context.Background(), db, sealer, session); err != nil {
		t.Fatalf("persist session: %v", err)
	}

	loaded, err := LoadSessionByToken(context.Background(), db, sealer, session.ID)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	if loaded.Username != "admin" {
		t.Fatalf("unexpected username %q", loaded.Username)
	}
	if loaded.Credential != session.Credential {
		t.Fatalf("credential not restored, got %q", loaded.Credential)
	}
}

func TestLoadSessionByToken_Expired(t *testing.T) {
	db := openLoginTestDB(t)
	sealer := testSealer(t)

	session := models.Session{
		ID:         newSessionToken(),
		Username:   "admin",
		Credential: "cred",
		ExpiresAt:  time.Now().Add(-time.Minute),
	}
	if err := persistSession(context.Background(), db, sealer, session); err != nil {
		t.Fatalf("persist session: %v", err)
	}

	if _, err := LoadSessionByToken(context.Background(), db, sealer, session.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows for expired session, got %v", err)
	}
	// The expired row must be gone afterwards.
	if _, err := LoadSessionByToken(context.Background(), db, sealer, session.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected expired row to be deleted, got %v", err)
	}
}

func TestLoadSessionByToken_WrongSealKey(t *testing.T) {
	db := openLoginTestDB(t)

	session := models.Session{
		ID:         newSessionToken(),
		Username:   "admin",
		Credential: "cred",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	if err := persistSession(context.Background(), db, testSealer(t), session); err != nil {
		t.Fatalf("persist session: %v", err)
	}

	rotated, err := seal.New(hex.EncodeToString([]byte(strings.Repeat("r", 32))))
	if err != nil {
		t.Fatalf("new sealer: %v", err)
	}
	if _, err := LoadSessionByToken(context.Background(), db, rotated, session.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected unsealable session to be treated as missing, got %v", err)
	}
}

func TestDeleteSessionByToken(t *testing.T) {
	db := openLoginTestDB(t)
	sealer := testSealer(t)

	session := models.Session{
		ID:         newSessionToken(),
		Username:   "admin",
		Credential: "cred",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	if err := persistSession(context.Background(), db, sealer, session); err != nil {
		t.Fatalf("persist session: %v", err)
	}

	if err := DeleteSessionByToken(context.Background(), db, session.ID); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, err := LoadSessionByToken(context.Background(), db, sealer, session.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected session to be gone, got %v", err)
	}

	// Blank tokens are a no-op.
	if err := DeleteSessionByToken(context.Background(), db, "  "); err != nil {
		t.Fatalf("delete with blank token: %v", err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	db := openLoginTestDB(t)
	sealer := testSealer(t)

	fresh := models.Session{ID: newSessionToken(), Username: "a", Credential: "c", ExpiresAt: time.Now().Add(time.Hour)}
	stale := models.Session{ID: newSessionToken(), Username: "b", Credential: "c", ExpiresAt: time.Now().Add(-time.Hour)}
	for _, s := range []models.Session{fresh, stale} {
		if err := persistSession(context.Background(), db, sealer, s); err != nil {
			t.Fatalf("persist session: %v", err)
		}
	}

	if err := DeleteExpiredSessions(context.Background(), db); err != nil {
		t.Fatalf("delete expired: %v", err)
	}

	if _, err := LoadSessionByToken(context.Background(), db, sealer, fresh.ID); err != nil {
		t.Fatalf("fresh session should survive: %v", err)
	}
	if _, err := LoadSessionByToken(context.Background(), db, sealer, stale.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("stale session should be gone, got %v", err)
	}
}
