package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrizzio/chat-agent/internal/agent"
	"github.com/nrizzio/chat-agent/internal/history"
	"github.com/nrizzio/chat-agent/internal/observability"
	"github.com/nrizzio/chat-agent/internal/responses"
	"github.com/nrizzio/chat-agent/internal/weather"
)

type stubProvider struct {
	snap weather.Snapshot
	err  error
}

func (s stubProvider) Name() string { return "stub" }

func (s stubProvider) Current(_ context.Context, _ string) (weather.Snapshot, error) {
	return s.snap, s.err
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ag := agent.New(
		"Test Agent", "0.0.1",
		responses.Defaults(),
		stubProvider{snap: weather.Snapshot{TempF: 72, FeelsLikeF: 72, Humidity: 50, WindMPH: 3, Condition: "Sunny"}},
		history.NewMemoryStore(100, 0),
		logger,
		observability.NewMetricsForTesting(),
		agent.WithPicker(func(n int) int { return 0 }),
	)

	app := fiber.New()
	RegisterRoutes(app, ag, 5000)
	return app
}

func postChat(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestChatReturnsReply(t *testing.T) {
	app := newTestApp(t)

	resp := postChat(t, app, `{"message": "what's the weather in Brooklyn?", "user_id": "alice"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply agent.Reply
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))

	assert.Equal(t, agent.IntentWeatherInfo, reply.Intent)
	assert.Equal(t, "alice", reply.UserID)
	assert.Contains(t, reply.Content, "Brooklyn, NY")
	assert.Contains(t, reply.Content, "72°F")
}

func TestChatDefaultsUserID(t *testing.T) {
	app := newTestApp(t)

	resp := postChat(t, app, `{"message": "hello"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reply agent.Reply
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))
	assert.Equal(t, "default", reply.UserID)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	app := newTestApp(t)

	for _, body := range []string{
		`{"message": ""}`,
		`{"message": "   "}`,
		`{}`,
	} {
		resp := postChat(t, app, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body: %s", body)
	}
}

func TestChatRejectsMalformedJSON(t *testing.T) {
	app := newTestApp(t)

	resp := postChat(t, app, `{"message": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChatRejectsBadUserID(t *testing.T) {
	app := newTestApp(t)

	resp := postChat(t, app, `{"message": "hello", "user_id": "bad user!"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStatus(t *testing.T) {
	app := newTestApp(t)

	resp := postChat(t, app, `{"message": "hello"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status agent.Status
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "Test Agent", status.Name)
	assert.Equal(t, "0.0.1", status.Version)
	assert.Equal(t, 1, status.ConversationCount)
	assert.Equal(t, 100, status.MaxHistory)
}

func TestHistoryRoundtrip(t *testing.T) {
	app := newTestApp(t)

	require.Equal(t, http.StatusOK, postChat(t, app, `{"message": "hello", "user_id": "alice"}`).StatusCode)
	require.Equal(t, http.StatusOK, postChat(t, app, `{"message": "tell me a joke", "user_id": "bob"}`).StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?user_id=alice", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page struct {
		History []history.Entry `json:"history"`
		Count   int             `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	require.Equal(t, 1, page.Count)
	assert.Equal(t, "hello", page.History[0].Message)
	assert.Equal(t, "alice", page.History[0].UserID)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/history?user_id=alice", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, 1, page.Count)
	assert.Equal(t, "bob", page.History[0].UserID)
}

func TestHistoryRejectsBadUserID(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?user_id=no%20spaces", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
