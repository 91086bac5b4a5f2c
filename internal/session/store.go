package session

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists the session token across process restarts.  Only the
// lifecycle matters to the rest of the gateway: Load at startup, Save on
// login, Clear on logout or auth failure.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a single file with owner-only
// permissions.  This is the default backend.
type FileStore struct {
	Path string
}

// Load reads the persisted token.  A missing file means no token and is
// not an error.
func (f *FileStore) Load() (string, error) {
	bs, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

// Save writes the token, replacing any previous one.
func (f *FileStore) Save(token string) error {
	return os.WriteFile(f.Path, []byte(token), 0o600)
}

// Clear removes the token file.  Removing an absent file is fine.
func (f *FileStore) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// RedisStore keeps the token in Redis under a fixed key.  Used when the
// gateway already runs with Redis for caching and rate limiting, so a
// container restart does not log the user out.
type RedisStore struct {
	Client *redis.Client
	Key    string
	// TTL bounds how long a token survives without a fresh Save.  Zero
	// means no expiry.
	TTL time.Duration
}

func (r *RedisStore) Load() (string, error) {
	tok, err := r.Client.Get(context.Background(), r.Key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return tok, nil
}

func (r *RedisStore) Save(token string) error {
	return r.Client.Set(context.Background(), r.Key, token, r.TTL).Err()
}

func (r *RedisStore) Clear() error {
	return r.Client.Del(context.Background(), r.Key).Err()
}
