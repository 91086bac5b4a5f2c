// Package session owns the process-wide authentication state: the bearer
// token for the remote booking service and the role set derived from the
// user's profile.  It is the only mutable shared state in the gateway;
// every read and write goes through this cell, which is what keeps the
// lifecycle rule (clear on explicit logout or on any 401) enforceable in
// one place.  No other component touches the persisted token directly.
package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/hotel-booking-gateway/internal/model"
)

// Session is the singleton state cell.  rolesResolved distinguishes
// "not yet checked" from "checked and not elevated", which matters for
// the admin surface: it must not report forbidden before the check has
// actually run.
type Session struct {
	mu            sync.RWMutex
	token         string
	roles         []string
	rolesResolved bool
	store         Store
}

// New builds a Session backed by the given token store and recovers a
// previously persisted token.  A recovered token whose JWT exp claim has
// already passed is discarded instead of producing a guaranteed 401 on
// first use.  The store may be nil, in which case nothing persists
// across restarts.
func New(store Store) *Session {
	s := &Session{store: store}
	if store == nil {
		return s
	}
	tok, err := store.Load()
	if err != nil {
		log.Printf("session: token recovery failed: %v", err)
		return s
	}
	if tok != "" && expired(tok) {
		log.Printf("session: discarding expired persisted token")
		_ = store.Clear()
		return s
	}
	s.token = tok
	return s
}

// expired reports whether the token carries an exp claim in the past.
// The signature is not verified: the gateway has no signing key and only
// wants to avoid spending a round trip on a token that cannot work.  A
// token that is not a JWT or has no exp claim is assumed usable.
func expired(token string) bool {
	tok, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := tok.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Token returns the current bearer token, or "" when logged out.  This
// satisfies the client package's TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool { return s.Token() != "" }

// SetToken installs a freshly issued token, persists it, and resets the
// role set so it will be re-resolved for the new identity.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.roles = nil
	s.rolesResolved = false
	s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Save(token); err != nil {
			log.Printf("session: persisting token failed: %v", err)
		}
	}
}

// Clear drops the token and roles synchronously and removes the
// persisted state.  Called on explicit logout and by the remote client
// whenever a request answers 401 (implicit logout).  Safe to call when
// already cleared.
func (s *Session) Clear() {
	s.mu.Lock()
	s.token = ""
	s.roles = nil
	s.rolesResolved = false
	s.mu.Unlock()
	if s.store != nil {
		if err := s.store.Clear(); err != nil {
			log.Printf("session: clearing persisted token failed: %v", err)
		}
	}
}

// Roles returns the resolved role set and whether resolution has
// completed since the last token change.
func (s *Session) Roles() ([]string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.roles...), s.rolesResolved
}

// IsManager reports whether the resolved roles include the hotel-manager
// role.  False while resolution is pending.
func (s *Session) IsManager() bool {
	roles, _ := s.Roles()
	for _, r := range roles {
		if r == model.RoleHotelManager {
			return true
		}
	}
	return false
}

// ResolveRoles fetches the role list through the supplied profile reader
// and records it.  Resolution is best effort: on failure the role set
// degrades to empty rather than blocking login, and rolesResolved is set
// either way so the admin gate can stop waiting.  No-op when logged out.
func (s *Session) ResolveRoles(ctx context.Context, fetch func(context.Context) ([]string, error)) {
	if !s.Authenticated() {
		return
	}
	roles, err := fetch(ctx)
	if err != nil {
		log.Printf("session: role resolution failed: %v", err)
		roles = nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		// Logged out while the fetch was in flight; discard the result.
		return
	}
	s.roles = roles
	s.rolesResolved = true
}
