package session

import (
	"context"
	"errors"
	"testing"

	"github.com/tutorhub/client/internal/models"
	"github.com/tutorhub/client/internal/store"
)

type fakeAuth struct {
	session models.Session
	err     error
	calls   int
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (models.Session, error) {
	f.calls++
	if f.err != nil {
		return models.Session{}, f.err
	}
	return f.session, nil
}

func validSession() models.Session {
	return models.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User:         models.User{ID: 7, Username: "ann", Email: "ann@example.com", Role: models.RoleStudent},
	}
}

func TestRestoreWithoutStoredSession(t *testing.T) {
	manager := NewManager(store.NewMemoryStore(), nil)

	restored, err := manager.Restore(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored != nil {
		t.Fatalf("expected no session got %+v", restored)
	}
	if manager.Current() != nil {
		t.Fatal("expected no current session")
	}
}

func TestRestoreRequiresAllThreeKeys(t *testing.T) {
	ctx := context.Background()
	keys := []string{keyAccessToken, keyRefreshToken, keyUser}
	values := map[string]string{
		keyAccessToken:  "access-1",
		keyRefreshToken: "refresh-1",
		keyUser:         `{"id":7,"username":"ann","email":"","role":"student"}`,
	}

	for _, missing := range keys {
		kv := store.NewMemoryStore()
		for _, key := range keys {
			if key == missing {
				continue
			}
			if err := kv.Put(ctx, key, values[key]); err != nil {
				t.Fatalf("put %s: %v", key, err)
			}
		}

		manager := NewManager(kv, nil)
		restored, err := manager.Restore(ctx)
		if err != nil {
			t.Fatalf("restore with %s missing: %v", missing, err)
		}
		if restored != nil {
			t.Fatalf("expected no session when %s is missing", missing)
		}
		// the half-written session is left untouched, not repaired
		for _, key := range keys {
			if key != missing && !kv.Has(key) {
				t.Fatalf("restore should not remove %s", key)
			}
		}
	}
}

func TestRestoreMalformedUserIsSignedOut(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	_ = kv.Put(ctx, keyAccessToken, "access-1")
	_ = kv.Put(ctx, keyRefreshToken, "refresh-1")
	_ = kv.Put(ctx, keyUser, "{not json")

	manager := NewManager(kv, nil)
	restored, err := manager.Restore(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored != nil {
		t.Fatal("expected malformed user record to be treated as signed out")
	}
}

func TestLoginPersistsAndRestoreAgrees(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	auth := &fakeAuth{session: validSession()}

	manager := NewManager(kv, auth)
	loggedIn, err := manager.Login(ctx, "ann", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if auth.calls != 1 {
		t.Fatalf("expected one auth call got %d", auth.calls)
	}
	if manager.AccessToken() != "access-1" {
		t.Fatalf("expected access token to be active, got %q", manager.AccessToken())
	}

	// simulated restart: a fresh manager over the same store
	restarted := NewManager(kv, nil)
	restored, err := restarted.Restore(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored == nil {
		t.Fatal("expected a restored session")
	}
	if *restored != *loggedIn {
		t.Fatalf("restored session differs: %+v vs %+v", *restored, *loggedIn)
	}
}

func TestLoginFailureLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	auth := &fakeAuth{err: errors.New("bad credentials")}

	manager := NewManager(kv, auth)
	if _, err := manager.Login(ctx, "ann", "wrong"); err == nil {
		t.Fatal("expected login error")
	}
	for _, key := range []string{keyAccessToken, keyRefreshToken, keyUser} {
		if kv.Has(key) {
			t.Fatalf("expected %s to stay absent after failed login", key)
		}
	}
	if manager.Current() != nil {
		t.Fatal("expected no current session after failed login")
	}
}

type failingStore struct {
	*store.MemoryStore
}

func (s *failingStore) Remove(context.Context, string) error {
	return errors.New("disk gone")
}

func TestLogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	manager := NewManager(kv, &fakeAuth{session: validSession()})

	if _, err := manager.Login(ctx, "ann", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	manager.Logout(ctx)

	if manager.Current() != nil {
		t.Fatal("expected no current session after logout")
	}
	if manager.AccessToken() != "" {
		t.Fatal("expected no access token after logout")
	}
	for _, key := range []string{keyAccessToken, keyRefreshToken, keyUser} {
		if kv.Has(key) {
			t.Fatalf("expected %s to be cleared", key)
		}
	}
}

func TestLogoutSwallowsStorageFailures(t *testing.T) {
	ctx := context.Background()
	kv := &failingStore{MemoryStore: store.NewMemoryStore()}
	manager := NewManager(kv, &fakeAuth{session: validSession()})

	if _, err := manager.Login(ctx, "ann", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}

	// must not panic or surface the storage error
	manager.Logout(ctx)

	if manager.Current() != nil {
		t.Fatal("logout must always drop the in-memory session")
	}
}
