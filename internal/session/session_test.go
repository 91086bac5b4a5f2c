package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "token")}

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok, "missing file means no token")

	require.NoError(t, store.Save("abc"))
	tok, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing twice is fine")
	tok, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestNewRecoversPersistedToken(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "token")}
	require.NoError(t, store.Save("persisted"))

	s := New(store)
	assert.Equal(t, "persisted", s.Token())
	assert.True(t, s.Authenticated())
}

func TestNewDiscardsExpiredToken(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "token")}
	require.NoError(t, store.Save(signedToken(t, time.Now().Add(-time.Hour))))

	s := New(store)
	assert.False(t, s.Authenticated())

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok, "expired token must be removed from the store")
}

func TestNewKeepsUnexpiredToken(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "token")}
	require.NoError(t, store.Save(signedToken(t, time.Now().Add(time.Hour))))

	s := New(store)
	assert.True(t, s.Authenticated())
}

func TestNewKeepsOpaqueToken(t *testing.T) {
	// A bearer string that is not a JWT cannot be inspected; assume usable.
	store := &FileStore{Path: filepath.Join(t.TempDir(), "token")}
	require.NoError(t, store.Save("opaque-bearer-string"))

	s := New(store)
	assert.True(t, s.Authenticated())
}

func TestSetTokenResetsRoles(t *testing.T) {
	s := New(nil)
	s.SetToken("t1")
	s.ResolveRoles(context.Background(), func(context.Context) ([]string, error) {
		return []string{"HOTEL_MANAGER"}, nil
	})
	assert.True(t, s.IsManager())

	s.SetToken("t2")
	roles, resolved := s.Roles()
	assert.Empty(t, roles)
	assert.False(t, resolved, "new identity must be re-resolved")
	assert.False(t, s.IsManager())
}

func TestClearWipesEverything(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "token")}
	s := New(store)
	s.SetToken("tok")
	s.ResolveRoles(context.Background(), func(context.Context) ([]string, error) {
		return []string{"HOTEL_MANAGER"}, nil
	})

	s.Clear()
	assert.False(t, s.Authenticated())
	assert.False(t, s.IsManager())
	_, resolved := s.Roles()
	assert.False(t, resolved)

	tok, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestResolveRolesDegradesToEmptySet(t *testing.T) {
	s := New(nil)
	s.SetToken("tok")
	s.ResolveRoles(context.Background(), func(context.Context) ([]string, error) {
		return nil, errors.New("profile fetch failed")
	})
	roles, resolved := s.Roles()
	assert.Empty(t, roles)
	assert.True(t, resolved, "failure still completes the check")
	assert.False(t, s.IsManager())
}

func TestResolveRolesDiscardedAfterLogout(t *testing.T) {
	s := New(nil)
	s.SetToken("tok")
	// The fetch races a logout: the result must be discarded.
	s.ResolveRoles(context.Background(), func(context.Context) ([]string, error) {
		s.Clear()
		return []string{"HOTEL_MANAGER"}, nil
	})
	assert.False(t, s.IsManager())
	_, resolved := s.Roles()
	assert.False(t, resolved)
}

func TestResolveRolesNoopWhenLoggedOut(t *testing.T) {
	s := New(nil)
	called := false
	s.ResolveRoles(context.Background(), func(context.Context) ([]string, error) {
		called = true
		return nil, nil
	})
	assert.False(t, called)
}
