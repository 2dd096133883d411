package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"loan-marketplace/internal/domain/user"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const testUserID uint64 = 42

// withSession stands in for Auth so the idempotency tests don't need tokens.
func withSession(userID uint64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			SetSession(c, Session{UserID: userID, Role: user.RoleCustomer})
			return next(c)
		}
	}
}

// helper: new Echo with the middleware and a simple route
func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(withSession(testUserID))
	e.Use(Idempotency(rdb, ttl, nil))
	e.POST("/loans", handler)
	e.GET("/loans", handler) // for non-mutating bypass test
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

func idemHeaders(key string) map[string]string {
	return map[string]string{
		HeaderIdempotencyKey: key,
		HeaderRequestAt:      strconv.FormatInt(time.Now().UTC().Unix(), 10),
	}
}

// handler whose response gets cached
func okCreatedHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]any{"ok": true})
}

func Test_BypassOnGET_NoHeadersRequired(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "get ok"})
	})
	rec := doReq(t, e, http.MethodGet, "/loans", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func Test_NoKey_PassesThroughUncached(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	calls := 0
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		calls++
		return okCreatedHandler(c)
	})

	for i := 0; i < 2; i++ {
		rec := doReq(t, e, http.MethodPost, "/loans", mkJSONBody(t, map[string]int{"amount": 1000}), nil)
		if rec.Code != http.StatusCreated {
			t.Fatalf("call %d: expected 201, got %d", i, rec.Code)
		}
	}
	if calls != 2 {
		t.Fatalf("handler should run on every keyless request, ran %d times", calls)
	}
	if n := len(mr.Keys()); n != 0 {
		t.Fatalf("keyless requests must not touch redis, found %d keys", n)
	}
}

func Test_ValidationFailures(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	validKey := "3f9a6a1b3d544fbe8b3a6b3e8d6b2c88"
	now := strconv.FormatInt(time.Now().UTC().Unix(), 10)

	tests := []struct {
		name string
		hdr  map[string]string
	}{
		{"bad key format", map[string]string{HeaderIdempotencyKey: "nope", HeaderRequestAt: now}},
		{"missing request-at", map[string]string{HeaderIdempotencyKey: validKey}},
		{"naive request-at", map[string]string{HeaderIdempotencyKey: validKey, HeaderRequestAt: "2025-09-05T10:00:00"}},
		{"skewed request-at", map[string]string{
			HeaderIdempotencyKey: validKey,
			HeaderRequestAt:      strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doReq(t, e, http.MethodPost, "/loans", mkJSONBody(t, map[string]int{"amount": 1000}), tc.hdr)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d (%s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func Test_NoSession_Unauthorized(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	e := echo.New()
	e.Use(Idempotency(rdb, 30*time.Second, nil))
	e.POST("/loans", okCreatedHandler)

	rec := doReq(t, e, http.MethodPost, "/loans", mkJSONBody(t, map[string]int{"amount": 1}), idemHeaders("3f9a6a1b3d544fbe8b3a6b3e8d6b2c88"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func Test_FirstCall_CachesAndReplays(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	calls := 0
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		calls++
		return okCreatedHandler(c)
	})

	key := "3f9a6a1b-3d54-4fbe-8b3a-6b3e8d6b2c88"
	body := map[string]any{"loan_amount": 1000, "loan_purpose": "Stock"}

	rec1 := doReq(t, e, http.MethodPost, "/loans", mkJSONBody(t, body), idemHeaders(key))
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first call expected 201, got %d", rec1.Code)
	}

	rec2 := doReq(t, e, http.MethodPost, "/loans", mkJSONBody(t, body), idemHeaders(key))
	if rec2.Code != http.StatusCreated {
		t.Fatalf("replay expected 201, got %d", rec2.Code)
	}
	if rec2.Header().Get("Idempotent-Replayed") != "true" {
		t.Fatalf("replay should be flagged")
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("replay body mismatch: %q vs %q", rec1.Body.String(), rec2.Body.String())
	}
	if calls != 1 {
		t.Fatalf("handler should run once, ran %d times", calls)
	}

	// cached under the session user, not any client-provided id
	stored, err := idemStore{rdb: rdb}.load(context.Background(), buildKey(http.MethodPost, "/loans", testUserID, key))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.InProgress || stored.Code != http.StatusCreated || stored.Key != key {
		t.Fatalf("unexpected stored entry: %+v", stored)
	}
}

func Test_SameKeyDifferentBody_Conflict(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	key := "3f9a6a1b3d544fbe8b3a6b3e8d6b2c88"
	rec1 := doReq(t, e, http.MethodPost, "/loans", mkJSONBody(t, map[string]int{"amount": 1000}), idemHeaders(key))
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first call expected 201, got %d", rec1.Code)
	}
	rec2 := doReq(t, e, http.MethodPost, "/loans", mkJSONBody(t, map[string]int{"amount": 2000}), idemHeaders(key))
	if rec2.Code != http.StatusConflict {
		t.Fatalf("expected 409 for different body, got %d", rec2.Code)
	}
}

func Test_InProgress_Conflict(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	key := "3f9a6a1b3d544fbe8b3a6b3e8d6b2c88"
	raw, _ := json.Marshal(map[string]int{"amount": 1000})

	// simulate a concurrent request holding the provisional lock
	ok, err := idemStore{rdb: rdb, lockTTL: provisionalLockTTL}.reserve(context.Background(), buildKey(http.MethodPost, "/loans", testUserID, key), idempEntry{
		InProgress: true,
		BodySHA256: bodyHash(raw),
		Key:        key,
		CreatedAt:  nowUTC(),
	})
	if err != nil || !ok {
		t.Fatalf("reserve: ok=%v err=%v", ok, err)
	}

	rec := doReq(t, e, http.MethodPost, "/loans", bytes.NewReader(raw), idemHeaders(key))
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 while in progress, got %d", rec.Code)
	}
}

func Test_DifferentUsers_DoNotShareKeys(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	calls := 0
	handler := func(c echo.Context) error {
		calls++
		return okCreatedHandler(c)
	}
	key := "3f9a6a1b3d544fbe8b3a6b3e8d6b2c88"

	for _, uid := range []uint64{1, 2} {
		e := echo.New()
		e.Use(withSession(uid))
		e.Use(Idempotency(rdb, 30*time.Second, nil))
		e.POST("/loans", handler)
		rec := doReq(t, e, http.MethodPost, "/loans", mkJSONBody(t, map[string]int{"amount": 1}), idemHeaders(key))
		if rec.Code != http.StatusCreated {
			t.Fatalf("user %d: expected 201, got %d", uid, rec.Code)
		}
	}
	if calls != 2 {
		t.Fatalf("each user should reach the handler, got %d calls", calls)
	}
}

func Test_ServerError_NotCached(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	calls := 0
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		calls++
		if calls == 1 {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "boom"})
		}
		return okCreatedHandler(c)
	})

	key := "3f9a6a1b3d544fbe8b3a6b3e8d6b2c88"
	rec1 := doReq(t, e, http.MethodPost, "/loans", mkJSONBody(t, map[string]int{"amount": 1}), idemHeaders(key))
	if rec1.Code != http.StatusInternalServerError {
		t.Fatalf("first call expected 500, got %d", rec1.Code)
	}
	if mr.Exists(buildKey(http.MethodPost, "/loans", testUserID, key)) {
		t.Fatalf("5xx response must release the key")
	}

	rec2 := doReq(t, e, http.MethodPost, "/loans", mkJSONBody(t, map[string]int{"amount": 1}), idemHeaders(key))
	if rec2.Code != http.StatusCreated {
		t.Fatalf("retry expected 201, got %d", rec2.Code)
	}
	if calls != 2 {
		t.Fatalf("retry should reach the handler, got %d calls", calls)
	}
}

func Test_RedisDown_ServiceUnavailable(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)
	mr.Close()

	rec := doReq(t, e, http.MethodPost, "/loans", mkJSONBody(t, map[string]int{"amount": 1}), idemHeaders("3f9a6a1b3d544fbe8b3a6b3e8d6b2c88"))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when redis is down, got %d", rec.Code)
	}
}
