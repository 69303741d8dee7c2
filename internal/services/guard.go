package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/RameshKadariya/AISolutionProject/internal/models"
	"github.com/RameshKadariya/AISolutionProject/internal/store"
)

const (
	maxLoginAttempts = 3
	lockoutDuration  = 15 * time.Minute
)

// SessionGuard controls admin access: a credential allow-list, a failure
// lockout and a single active session.
//
// A session expires at the earlier of login time plus SessionTTL (absolute
// cap) and last activity plus IdleTTL. The registry is in-memory on top of
// the persisted record, so a process restart always forces a fresh login.
//
// The persisted record is a single document: the guard assumes one admin at
// a time, and a second login overwrites the first's record.
type SessionGuard struct {
	Store       store.Store
	Tokens      TokenService
	Credentials map[string]string
	SessionTTL  time.Duration
	IdleTTL     time.Duration
	Now         func() time.Time

	mu       sync.Mutex
	sessions map[string]models.AdminSession
}

func NewSessionGuard(s store.Store, tokens TokenService, credentials map[string]string, sessionTTL, idleTTL time.Duration) *SessionGuard {
	return &SessionGuard{
		Store:       s,
		Tokens:      tokens,
		Credentials: credentials,
		SessionTTL:  sessionTTL,
		IdleTTL:     idleTTL,
		Now:         time.Now,
		sessions:    map[string]models.AdminSession{},
	}
}

type LoginResult struct {
	User        string `json:"user"`
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt"`
}

// Login verifies credentials subject to the lockout policy. Attempts made
// while locked are rejected outright and do not extend the lock.
func (g *SessionGuard) Login(ctx context.Context, user, secret string) (LoginResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.Now()

	record, err := g.lockoutRecord(ctx)
	if err != nil {
		return LoginResult{}, err
	}
	if !record.LockedUntil.IsZero() {
		if now.Before(record.LockedUntil) {
			return LoginResult{}, ErrLocked(lockedMessage(record.LockedUntil.Sub(now)))
		}
		// Lock expired, start over.
		record = models.LockoutRecord{}
	}

	stored, ok := g.Credentials[user]
	if !ok || !g.Tokens.VerifySecret(secret, stored) {
		record.Attempts++
		if record.Attempts >= maxLoginAttempts {
			record.LockedUntil = now.Add(lockoutDuration)
		}
		if err := store.SaveJSON(ctx, g.Store, store.KeyAdminLockout, record); err != nil {
			return LoginResult{}, err
		}
		if !record.LockedUntil.IsZero() {
			return LoginResult{}, ErrLocked(lockedMessage(record.LockedUntil.Sub(now)))
		}
		remaining := maxLoginAttempts - record.Attempts
		return LoginResult{}, ErrUnauthorized(fmt.Sprintf("Invalid credentials. %d attempts remaining.", remaining))
	}

	if err := g.Store.Delete(ctx, store.KeyAdminLockout); err != nil {
		return LoginResult{}, err
	}
	session := models.AdminSession{User: user, LoginTime: now, LastActivity: now}
	if err := store.SaveJSON(ctx, g.Store, store.KeyAdminSession, session); err != nil {
		return LoginResult{}, err
	}
	g.sessions[user] = session

	token, _, err := g.Tokens.CreateAccessToken(user)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: user, AccessToken: token, ExpiresAt: g.expiry(session).Unix()}, nil
}

// Touch validates the session for user and records activity. Activity slides
// the idle window but never past the absolute cap.
func (g *SessionGuard) Touch(ctx context.Context, user string) (models.AdminSession, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	session, ok := g.sessions[user]
	if !ok {
		return models.AdminSession{}, ErrUnauthorized("Session expired")
	}
	now := g.Now()
	if now.After(g.expiry(session)) {
		delete(g.sessions, user)
		_ = g.Store.Delete(ctx, store.KeyAdminSession)
		return models.AdminSession{}, ErrUnauthorized("Session expired")
	}
	session.LastActivity = now
	g.sessions[user] = session
	if err := store.SaveJSON(ctx, g.Store, store.KeyAdminSession, session); err != nil {
		return models.AdminSession{}, err
	}
	return session, nil
}

func (g *SessionGuard) Logout(ctx context.Context, user string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.sessions, user)
	return g.Store.Delete(ctx, store.KeyAdminSession)
}

// lockedMessage rounds the remaining lock time up to whole minutes so the
// counter never reads zero while the lock is still in effect.
func lockedMessage(remaining time.Duration) string {
	minutes := int((remaining + time.Minute - 1) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("Account locked. Try again in %d minutes.", minutes)
}

func (g *SessionGuard) expiry(session models.AdminSession) time.Time {
	absolute := session.LoginTime.Add(g.SessionTTL)
	idle := session.LastActivity.Add(g.IdleTTL)
	if idle.Before(absolute) {
		return idle
	}
	return absolute
}

// lockoutRecord loads the persisted failure counter. A corrupt record is
// reset and logged rather than trusted.
func (g *SessionGuard) lockoutRecord(ctx context.Context) (models.LockoutRecord, error) {
	var record models.LockoutRecord
	err := store.LoadJSON(ctx, g.Store, store.KeyAdminLockout, &record)
	switch {
	case err == nil:
		return record, nil
	case errors.Is(err, store.ErrNotFound):
		return models.LockoutRecord{}, nil
	case store.IsCorrupt(err):
		log.Printf("guard: %v, resetting lockout", err)
		return models.LockoutRecord{}, nil
	default:
		return models.LockoutRecord{}, err
	}
}
