package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/megaverse-cli/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goalFixture = `{"goal":[["POLYANET","SPACE","BLUE_SOLOON"],["SPACE","UP_COMETH","POLYANET"]]}`

func TestVersionPrintsVersion(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, version.Version)
}

func TestPatternDryRunJSONReportsCross(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MEGA_PATTERN_PACE_MS", "1")

	stdout, _, err := executeCLI(t, home, "pattern", "--dry-run", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, `"total": 13`)
	assert.Contains(t, stdout, `"succeeded": 13`)
	assert.Contains(t, stdout, `"failed": 0`)
}

func TestPatternRequiresCandidateWithoutDryRun(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MEGA_CANDIDATE_ID", "")

	_, _, err := executeCLI(t, home, "pattern")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidate id is not configured")
}

func TestApplySubmitsEveryGoalObject(t *testing.T) {
	var (
		mu      sync.Mutex
		creates = map[string]int{}
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/map/cand-123/goal":
			_, _ = fmt.Fprint(w, goalFixture)
		case r.Method == http.MethodPost:
			mu.Lock()
			creates[r.URL.Path]++
			mu.Unlock()
			_, _ = fmt.Fprint(w, `{}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	home := t.TempDir()
	setSubmissionEnv(t, server.URL)

	stdout, _, err := executeCLI(t, home, "apply", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, `"total": 4`)
	assert.Contains(t, stdout, `"succeeded": 4`)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, creates["/api/polyanets"])
	assert.Equal(t, 1, creates["/api/soloons"])
	assert.Equal(t, 1, creates["/api/comeths"])
}

func TestApplyDryRunOnlyFetchesTheGoal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("unexpected %s %s during dry run", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = fmt.Fprint(w, goalFixture)
	}))
	defer server.Close()

	home := t.TempDir()
	setSubmissionEnv(t, server.URL)

	stdout, _, err := executeCLI(t, home, "apply", "--dry-run", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"total": 4`)
	assert.Contains(t, stdout, `"succeeded": 4`)
}

func TestApplyRequiresCandidateID(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MEGA_CANDIDATE_ID", "")

	_, _, err := executeCLI(t, home, "apply", "--dry-run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "candidate id is not configured")
}

func TestApplyReportsFailedSubmissions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = fmt.Fprint(w, `{"goal":[["POLYANET"]]}`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = fmt.Fprint(w, `{"error":"boom"}`)
	}))
	defer server.Close()

	home := t.TempDir()
	setSubmissionEnv(t, server.URL)
	t.Setenv("MEGA_RETRIES", "1")

	stdout, _, err := executeCLI(t, home, "apply", "--json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 submissions failed")
	assert.Contains(t, stdout, `"failed": 1`)
	assert.Contains(t, stdout, "Failed after 1 attempts.")
}

func TestApplyShowsProgressLabelAndSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = fmt.Fprint(w, goalFixture)
			return
		}
		_, _ = fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	home := t.TempDir()
	setSubmissionEnv(t, server.URL)

	stdout, stderr, err := executeCLI(t, home, "apply")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Submitting goal objects")
	assert.Contains(t, stdout, "Submission Summary")
	assert.Contains(t, stdout, "All submissions succeeded.")
}

func TestGoalJSONOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/map/cand-123/goal", r.URL.Path)
		_, _ = fmt.Fprint(w, goalFixture)
	}))
	defer server.Close()

	home := t.TempDir()
	setSubmissionEnv(t, server.URL)

	stdout, _, err := executeCLI(t, home, "goal", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, `"goal"`)
	assert.Contains(t, stdout, `"analysis"`)
	assert.Contains(t, stdout, `"polyanets": 2`)
	assert.Contains(t, stdout, `"soloons": 1`)
	assert.Contains(t, stdout, `"comeths": 1`)
}

func TestGoalRendersGridAndCounts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, goalFixture)
	}))
	defer server.Close()

	home := t.TempDir()
	setSubmissionEnv(t, server.URL)

	stdout, _, err := executeCLI(t, home, "goal")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Megaverse Goal")
	assert.Contains(t, stdout, "2 rows x 3 columns")
	assert.Contains(t, stdout, "polyanets: 2")
}

func TestClearDeletesEveryGoalObject(t *testing.T) {
	var (
		mu      sync.Mutex
		deletes = map[string]int{}
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = fmt.Fprint(w, goalFixture)
		case http.MethodDelete:
			mu.Lock()
			deletes[r.URL.Path]++
			mu.Unlock()
			_, _ = fmt.Fprint(w, `{}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	home := t.TempDir()
	setSubmissionEnv(t, server.URL)

	stdout, _, err := executeCLI(t, home, "clear", "--yes", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"succeeded": 4`)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, deletes["/api/polyanets"])
	assert.Equal(t, 1, deletes["/api/soloons"])
	assert.Equal(t, 1, deletes["/api/comeths"])
}

func TestClearPromptDeclineAborts(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MEGA_CANDIDATE_ID", "cand-123")

	stdout, _, err := executeCLIWithInput(t, home, "n\n", "clear")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[y/N]")
	assert.Contains(t, stdout, "Aborted.")
}

func TestConfigInitWritesDefaults(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote ")

	data, err := os.ReadFile(filepath.Join(home, ".megaverse", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url")
	assert.Contains(t, string(data), "[submission]")

	_, _, err = executeCLI(t, home, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCLI(t, home, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("MEGA_CANDIDATE_ID", "cand-123")

	stdout, _, err := executeCLI(t, home, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cand-123")
	assert.Contains(t, stdout, "[submission]")
	assert.Contains(t, stdout, "retries = 3")
}

func setSubmissionEnv(t *testing.T, baseURL string) {
	t.Helper()
	t.Setenv("MEGA_BASE_URL", baseURL)
	t.Setenv("MEGA_CANDIDATE_ID", "cand-123")
	t.Setenv("MEGA_BASE_DELAY_MS", "1")
	t.Setenv("MEGA_RATE_LIMIT_DELAY_MS", "1")
	t.Setenv("MEGA_PACE_MS", "1")
	t.Setenv("MEGA_PATTERN_PACE_MS", "1")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, "", args...)
}

func executeCLIWithInput(t *testing.T, home string, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(strings.NewReader(input))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
