package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/megaverse-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) Client {
	return Client{
		API:         DefaultAPI(server.URL),
		CandidateID: "cand-123",
		HTTPClient:  server.Client(),
	}
}

func TestCreatePolyanetSendsPositionPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/polyanets", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(2), payload["row"])
		assert.Equal(t, float64(8), payload["column"])
		assert.Equal(t, "cand-123", payload["candidateId"])
		assert.NotContains(t, payload, "color")
		assert.NotContains(t, payload, "direction")

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)

	err := client.CreateObject(context.Background(), domain.NewPolyanet(domain.Position{Row: 2, Column: 8}))
	require.NoError(t, err)
}

func TestCreateSoloonIncludesColor(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/soloons", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "blue", payload["color"])
		assert.NotContains(t, payload, "direction")

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)

	err := client.CreateObject(context.Background(), domain.NewSoloon(domain.Position{Row: 1, Column: 4}, domain.ColorBlue))
	require.NoError(t, err)
}

func TestCreateComethIncludesDirection(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/comeths", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "right", payload["direction"])
		assert.NotContains(t, payload, "color")

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)

	err := client.CreateObject(context.Background(), domain.NewCometh(domain.Position{Row: 5, Column: 5}, domain.DirectionRight))
	require.NoError(t, err)
}

func TestCreateObjectRejectsInvalidObjectBeforeSending(t *testing.T) {
	t.Parallel()

	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)

	err := client.CreateObject(context.Background(), domain.PlacementObject{Kind: "asteroid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported object kind")
	assert.Equal(t, int32(0), requests.Load())
}

func TestDeleteObjectUsesDeleteMethod(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/soloons", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(1), payload["row"])
		assert.Equal(t, float64(4), payload["column"])
		assert.Equal(t, "cand-123", payload["candidateId"])

		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)

	err := client.DeleteObject(context.Background(), domain.KindSoloon, domain.Position{Row: 1, Column: 4})
	require.NoError(t, err)
}

func TestCreateObjectReturnsStatusErrorWithBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"row out of bounds"}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)

	err := client.CreateObject(context.Background(), domain.NewPolyanet(domain.Position{Row: 99, Column: 0}))
	require.Error(t, err)

	var statusErr *domain.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Status)
	assert.Contains(t, statusErr.Body, "row out of bounds")
	assert.False(t, domain.IsRateLimit(err))
}

func TestCreateObjectRecognizesRateLimiting(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`Too Many Requests`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)

	err := client.CreateObject(context.Background(), domain.NewPolyanet(domain.Position{Row: 0, Column: 0}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRateLimited))
	assert.True(t, domain.IsRateLimit(err))
}

func TestFetchGoalDecodesGrid(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/map/cand-123/goal", r.URL.Path)

		_, _ = w.Write([]byte(`{"goal":[["SPACE","POLYANET"],["BLUE_SOLOON","UP_COMETH"]]}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)

	grid, err := client.FetchGoal(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, grid.Rows())
	assert.Equal(t, "POLYANET", grid[0][1])
	assert.Equal(t, "BLUE_SOLOON", grid[1][0])
}

func TestFetchGoalRejectsEmptyGoal(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"goal":[]}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)

	_, err := client.FetchGoal(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidGoal))
}

func TestFetchGoalWrapsRemoteFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`goal service unavailable`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)

	_, err := client.FetchGoal(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidGoal))
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "goal service unavailable")
}

func TestFetchGoalTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`{"goal":[["SPACE"]]}`))
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)
	client.RequestTimeout = 20 * time.Millisecond

	_, err := client.FetchGoal(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidGoal))
}

func TestCandidateIDIsRequired(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)
	client.CandidateID = " "

	err := client.CreateObject(context.Background(), domain.NewPolyanet(domain.Position{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidate id is required")

	_, err = client.FetchGoal(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidGoal))
}
