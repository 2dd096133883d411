package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func bodyHash(b []byte) string { s := sha256.Sum256(b); return hex.EncodeToString(s[:]) }

func nowUTC() time.Time { return time.Now().UTC() }

// buildKey scopes a client key to one route template and one session user.
func buildKey(method, route string, userID uint64, idemKey string) string {
	var b strings.Builder
	b.WriteString("idemp:loans:")
	b.WriteString(strings.ToLower(method))
	b.WriteByte(':')
	b.WriteString(route)
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(userID, 10))
	b.WriteByte(':')
	b.WriteString(strings.ToLower(idemKey))
	return b.String()
}

// validIdempotencyKey accepts a hyphenated RFC 4122 UUID (v1-v5) or 32 bare hex chars.
func validIdempotencyKey(k string) bool {
	k = strings.TrimSpace(k)
	switch len(k) {
	case 32:
		_, err := uuid.Parse(k)
		return err == nil
	case 36:
		u, err := uuid.Parse(k)
		if err != nil {
			return false
		}
		return u.Variant() == uuid.RFC4122 && u.Version() >= 1 && u.Version() <= 5
	default:
		return false
	}
}

// parseRequestAt takes epoch seconds, epoch milliseconds or RFC3339(Nano) with a zone.
// Timestamps without a zone are rejected.
func parseRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("missing X-Request-At")
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("X-Request-At must be epoch (s/ms) or RFC3339 with timezone")
}

// idemStore keeps one JSON entry per key in Redis.
type idemStore struct {
	rdb     *redis.Client
	lockTTL time.Duration
}

// reserve stores an in-progress entry unless the key already exists.
func (s idemStore) reserve(ctx context.Context, key string, e idempEntry) (bool, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return false, err
	}
	return s.rdb.SetNX(ctx, key, payload, s.lockTTL).Result()
}

func (s idemStore) load(ctx context.Context, key string) (idempEntry, error) {
	var e idempEntry
	v, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	err = json.Unmarshal(v, &e)
	return e, err
}

// commit replaces the in-progress entry with the final response.
func (s idemStore) commit(ctx context.Context, key string, e idempEntry, ttl time.Duration) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, payload, ttl).Err()
}

func (s idemStore) release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
