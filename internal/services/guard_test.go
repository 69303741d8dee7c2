package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/RameshKadariya/AISolutionProject/internal/models"
	"github.com/RameshKadariya/AISolutionProject/internal/store"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestGuard(t *testing.T) (*SessionGuard, *store.Memory, *testClock) {
	t.Helper()
	m := store.NewMemory()
	tokens := TokenService{Secret: []byte("test-secret"), Issuer: "test", AccessTTL: 4 * time.Hour}
	guard := NewSessionGuard(m, tokens, map[string]string{"admin": "admin123"}, 4*time.Hour, 4*time.Hour)
	clock := &testClock{now: time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)}
	guard.Now = clock.Now
	return guard, m, clock
}

func TestLoginSuccess(t *testing.T) {
	guard, m, _ := newTestGuard(t)
	ctx := context.Background()
	result, err := guard.Login(ctx, "admin", "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.User != "admin" || result.AccessToken == "" {
		t.Fatalf("unexpected result: %+v", result)
	}
	var session models.AdminSession
	if err := store.LoadJSON(ctx, m, store.KeyAdminSession, &session); err != nil {
		t.Fatalf("session should be persisted: %v", err)
	}
	if session.User != "admin" {
		t.Fatalf("persisted session user = %q", session.User)
	}
}

func TestThreeFailuresLockTheAccount(t *testing.T) {
	guard, m, _ := newTestGuard(t)
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		_, err := guard.Login(ctx, "admin", "wrong")
		if serr, ok := err.(ServiceError); !ok || serr.Status != 401 {
			t.Fatalf("attempt %d: expected 401, got %v", i+1, err)
		}
	}
	_, err := guard.Login(ctx, "admin", "wrong")
	if serr, ok := err.(ServiceError); !ok || serr.Status != 423 {
		t.Fatalf("third failure should lock, got %v", err)
	}
	var record models.LockoutRecord
	if err := store.LoadJSON(ctx, m, store.KeyAdminLockout, &record); err != nil {
		t.Fatal(err)
	}
	if record.Attempts != 3 || record.LockedUntil.IsZero() {
		t.Fatalf("unexpected lockout record: %+v", record)
	}
}

func TestLockedAttemptsDoNotConsumeSlots(t *testing.T) {
	guard, m, _ := newTestGuard(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, _ = guard.Login(ctx, "admin", "wrong")
	}
	var before models.LockoutRecord
	if err := store.LoadJSON(ctx, m, store.KeyAdminLockout, &before); err != nil {
		t.Fatal(err)
	}

	// Even the correct password bounces while locked, and the record stays
	// exactly as it was.
	_, err := guard.Login(ctx, "admin", "admin123")
	if serr, ok := err.(ServiceError); !ok || serr.Status != 423 {
		t.Fatalf("expected 423 while locked, got %v", err)
	}
	var after models.LockoutRecord
	if err := store.LoadJSON(ctx, m, store.KeyAdminLockout, &after); err != nil {
		t.Fatal(err)
	}
	if after.Attempts != before.Attempts || !after.LockedUntil.Equal(before.LockedUntil) {
		t.Fatalf("locked attempt mutated the record: before=%+v after=%+v", before, after)
	}
}

func TestFailureMessagesCarryCounters(t *testing.T) {
	guard, _, clock := newTestGuard(t)
	ctx := context.Background()

	_, err := guard.Login(ctx, "admin", "wrong")
	if err == nil || !strings.Contains(err.Error(), "2 attempts remaining") {
		t.Fatalf("first failure should report 2 attempts remaining, got %v", err)
	}
	_, err = guard.Login(ctx, "admin", "wrong")
	if err == nil || !strings.Contains(err.Error(), "1 attempts remaining") {
		t.Fatalf("second failure should report 1 attempt remaining, got %v", err)
	}
	_, err = guard.Login(ctx, "admin", "wrong")
	if err == nil || !strings.Contains(err.Error(), "15 minutes") {
		t.Fatalf("locking failure should report the full lock duration, got %v", err)
	}

	clock.Advance(5 * time.Minute)
	_, err = guard.Login(ctx, "admin", "admin123")
	if err == nil || !strings.Contains(err.Error(), "10 minutes") {
		t.Fatalf("locked attempt should report time remaining, got %v", err)
	}
}

func TestLockExpiresAndCounterResets(t *testing.T) {
	guard, m, clock := newTestGuard(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, _ = guard.Login(ctx, "admin", "wrong")
	}
	clock.Advance(16 * time.Minute)

	// First attempt after expiry is a fresh failure, not a fourth strike.
	_, err := guard.Login(ctx, "admin", "wrong")
	if serr, ok := err.(ServiceError); !ok || serr.Status != 401 {
		t.Fatalf("expected plain 401 after lock expiry, got %v", err)
	}
	var record models.LockoutRecord
	if err := store.LoadJSON(ctx, m, store.KeyAdminLockout, &record); err != nil {
		t.Fatal(err)
	}
	if record.Attempts != 1 || !record.LockedUntil.IsZero() {
		t.Fatalf("counter should restart at 1, got %+v", record)
	}

	if _, err := guard.Login(ctx, "admin", "admin123"); err != nil {
		t.Fatalf("login after expiry: %v", err)
	}
	if err := store.LoadJSON(ctx, m, store.KeyAdminLockout, &record); err == nil {
		t.Fatal("lockout record should be cleared after success")
	}
}

func TestTouchExtendsIdleWindow(t *testing.T) {
	guard, _, clock := newTestGuard(t)
	guard.IdleTTL = 30 * time.Minute
	ctx := context.Background()
	if _, err := guard.Login(ctx, "admin", "admin123"); err != nil {
		t.Fatal(err)
	}
	clock.Advance(25 * time.Minute)
	if _, err := guard.Touch(ctx, "admin"); err != nil {
		t.Fatalf("touch within idle window: %v", err)
	}
	clock.Advance(25 * time.Minute)
	if _, err := guard.Touch(ctx, "admin"); err != nil {
		t.Fatalf("activity should have slid the window: %v", err)
	}
	clock.Advance(31 * time.Minute)
	if _, err := guard.Touch(ctx, "admin"); err == nil {
		t.Fatal("idle session should have expired")
	}
}

func TestAbsoluteCapOverridesActivity(t *testing.T) {
	guard, _, clock := newTestGuard(t)
	ctx := context.Background()
	if _, err := guard.Login(ctx, "admin", "admin123"); err != nil {
		t.Fatal(err)
	}
	// Stay active every half hour; the 4 hour cap still wins.
	for i := 0; i < 8; i++ {
		clock.Advance(30 * time.Minute)
		if i < 7 {
			if _, err := guard.Touch(ctx, "admin"); err != nil {
				t.Fatalf("touch %d: %v", i, err)
			}
		}
	}
	clock.Advance(time.Minute)
	if _, err := guard.Touch(ctx, "admin"); err == nil {
		t.Fatal("session should expire at the absolute cap despite activity")
	}
}

func TestRestartForcesReauthentication(t *testing.T) {
	guard, m, clock := newTestGuard(t)
	ctx := context.Background()
	if _, err := guard.Login(ctx, "admin", "admin123"); err != nil {
		t.Fatal(err)
	}

	// A new guard over the same store simulates a process restart. The
	// persisted record survives but the registry starts empty.
	fresh := NewSessionGuard(m, guard.Tokens, guard.Credentials, guard.SessionTTL, guard.IdleTTL)
	fresh.Now = clock.Now
	if _, err := fresh.Touch(ctx, "admin"); err == nil {
		t.Fatal("restart should invalidate the session")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	guard, m, _ := newTestGuard(t)
	ctx := context.Background()
	if _, err := guard.Login(ctx, "admin", "admin123"); err != nil {
		t.Fatal(err)
	}
	if err := guard.Logout(ctx, "admin"); err != nil {
		t.Fatal(err)
	}
	if _, err := guard.Touch(ctx, "admin"); err == nil {
		t.Fatal("touch after logout should fail")
	}
	if _, err := m.Get(ctx, store.KeyAdminSession); err == nil {
		t.Fatal("persisted session should be deleted on logout")
	}
}

func TestUnknownUserRejected(t *testing.T) {
	guard, _, _ := newTestGuard(t)
	_, err := guard.Login(context.Background(), "ghost", "whatever")
	if serr, ok := err.(ServiceError); !ok || serr.Status != 401 {
		t.Fatalf("expected 401 for unknown user, got %v", err)
	}
}

func TestHashedCredentialVerification(t *testing.T) {
	tokens := TokenService{Secret: []byte("s"), Issuer: "t", AccessTTL: time.Hour}
	hashed, err := tokens.HashSecret("topsecret")
	if err != nil {
		t.Fatal(err)
	}
	if !tokens.VerifySecret("topsecret", hashed) {
		t.Fatal("argon2id hash should verify")
	}
	if tokens.VerifySecret("wrong", hashed) {
		t.Fatal("wrong secret should not verify")
	}
	if !tokens.VerifySecret("plain", "plain") {
		t.Fatal("plaintext entries should compare directly")
	}
}
