package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jusunglee/sutja/internal/db/sqlite"
	"github.com/jusunglee/sutja/internal/keyword"
	"github.com/jusunglee/sutja/internal/story"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "secret"

type fakeLLM struct{ reply string }

func (f fakeLLM) Complete(context.Context, string, string) (string, error) { return f.reply, nil }

func newTestServer(t *testing.T, withStore bool, teller *story.Teller) *httptest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	dict, err := keyword.Default()
	require.NoError(t, err)
	live := keyword.NewLive(dict)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var router *Router
	if withStore {
		repo, err := sqlite.New(ctx, ":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { repo.Close() })
		_, err = keyword.SeedIfEmpty(ctx, repo)
		require.NoError(t, err)
		router = NewRouter(live, repo, teller, log, testAPIKey, nil)
	} else {
		router = NewRouter(live, nil, teller, log, testAPIKey, nil)
	}

	srv := httptest.NewServer(router.Handler(ctx))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path string, body any, headers ...string) (int, map[string]any) {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, srv.URL+path, rdr)
	require.NoError(t, err)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestEncodeEndpoint(t *testing.T) {
	srv := newTestServer(t, false, nil)

	status, body := do(t, srv, http.MethodPost, "/api/v1/encode", map[string]string{"word": "사랑"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "52", body["digits"])
	assert.Equal(t, "ㅅㄴ", body["consonants"])

	status, _ = do(t, srv, http.MethodPost, "/api/v1/encode", map[string]any{"word": "x", "extra": 1})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDeriveEndpoint(t *testing.T) {
	srv := newTestServer(t, false, nil)

	status, body := do(t, srv, http.MethodPost, "/api/v1/derive", map[string]any{"word": "사랑", "length": 6})
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["digits"], 6)

	status, _ = do(t, srv, http.MethodPost, "/api/v1/derive", map[string]any{"word": "사랑", "length": 0})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestChunksEndpoint(t *testing.T) {
	srv := newTestServer(t, false, nil)

	status, body := do(t, srv, http.MethodPost, "/api/v1/chunks", map[string]string{"digits": "52-27-070"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "5227070", body["digits"])

	chunks := body["chunks"].([]any)
	require.Len(t, chunks, 3)
	first := chunks[0].(map[string]any)
	assert.Equal(t, "52", first["digits"])
	assert.Equal(t, false, first["fallback"])
	second := chunks[1].(map[string]any)
	assert.Equal(t, []any{"27"}, second["keywords"])
	assert.Equal(t, true, second["fallback"])
	third := chunks[2].(map[string]any)
	assert.Equal(t, []any{"오징어"}, third["keywords"])

	status, _ = do(t, srv, http.MethodPost, "/api/v1/chunks", map[string]string{"digits": "abc"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCredentialEndpoint(t *testing.T) {
	srv := newTestServer(t, false, nil)

	status, body := do(t, srv, http.MethodPost, "/api/v1/credentials", map[string]any{
		"level": "standard", "word": "사랑", "length": 2, "service": "google", "symbol": "!",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Google52!", body["credential"])

	status, body = do(t, srv, http.MethodPost, "/api/v1/credentials", map[string]any{
		"level": "PIN", "word": "사랑",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Len(t, body["credential"], 6)

	status, _ = do(t, srv, http.MethodPost, "/api/v1/credentials", map[string]any{
		"level": "master", "word": "사랑",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, srv, http.MethodPost, "/api/v1/credentials", map[string]any{
		"level": "ultra", "word": "사랑",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestKeywordEndpoints(t *testing.T) {
	srv := newTestServer(t, true, nil)

	status, body := do(t, srv, http.MethodGet, "/api/v1/keywords/27", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["fallback"])

	status, _ = do(t, srv, http.MethodGet, "/api/v1/keywords/5", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, srv, http.MethodPut, "/api/v1/keywords/27", map[string]any{"keywords": []string{"노조"}})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = do(t, srv, http.MethodPut, "/api/v1/keywords/27", map[string]any{"keywords": []string{"노조"}}, "X-API-Key", testAPIKey)
	assert.Equal(t, http.StatusOK, status)

	status, body = do(t, srv, http.MethodGet, "/api/v1/keywords/27", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"노조"}, body["keywords"])
	assert.Equal(t, false, body["fallback"])

	status, _ = do(t, srv, http.MethodPut, "/api/v1/keywords/27", map[string]any{"keywords": []string{}}, "X-API-Key", testAPIKey)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestKeywordPutWithoutStore(t *testing.T) {
	srv := newTestServer(t, false, nil)
	status, _ := do(t, srv, http.MethodPut, "/api/v1/keywords/27", map[string]any{"keywords": []string{"노조"}}, "X-API-Key", testAPIKey)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestStoryEndpoint(t *testing.T) {
	srv := newTestServer(t, false, nil)
	status, _ := do(t, srv, http.MethodPost, "/api/v1/stories", map[string]string{"digits": "52"})
	assert.Equal(t, http.StatusServiceUnavailable, status)

	teller := story.NewTeller(fakeLLM{reply: `{"title":"t","story":"사랑 이야기"}`})
	srv = newTestServer(t, false, teller)
	status, body := do(t, srv, http.MethodPost, "/api/v1/stories", map[string]string{"digits": "52"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "사랑 이야기", body["story"])
	assert.Equal(t, []any{"사랑"}, body["keywords"])
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, true, nil)
	status, body := do(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
