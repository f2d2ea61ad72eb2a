package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	_ "github.com/vovakirdan/cookie-arcade/internal/games/cookie"
	_ "github.com/vovakirdan/cookie-arcade/internal/games/dodge"
	"github.com/vovakirdan/cookie-arcade/internal/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *storage.Store) {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(NewServer(store, log.New(io.Discard)).Routes())
	t.Cleanup(srv.Close)
	return srv, store
}

func getJSON(t *testing.T, url string, into any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("GET %s: content type %q", url, ct)
	}
	if into != nil {
		if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
			t.Fatalf("GET %s: decode: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	var body map[string]string
	if code := getJSON(t, srv.URL+"/health", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body["status"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestListGames(t *testing.T) {
	srv, store := newTestServer(t)
	store.SaveScore("cookie", 420)

	var games []GameSummary
	if code := getJSON(t, srv.URL+"/api/v1/games", &games); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}

	byID := map[string]GameSummary{}
	for _, g := range games {
		byID[g.ID] = g
	}
	if byID["cookie"].HighScore != 420 || byID["cookie"].Title != "Cookie Runner" {
		t.Errorf("cookie entry = %+v", byID["cookie"])
	}
	if _, ok := byID["dodge"]; !ok {
		t.Error("dodge should be listed")
	}
}

func TestScores(t *testing.T) {
	srv, store := newTestServer(t)
	for _, s := range []int{10, 30, 20} {
		store.SaveRun(storage.Run{GameID: "dodge", Score: s, Ticks: s, Seed: 1})
	}

	var runs []storage.Run
	if code := getJSON(t, srv.URL+"/api/v1/games/dodge/scores?limit=2", &runs); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(runs) != 2 || runs[0].Score != 30 || runs[1].Score != 20 {
		t.Errorf("runs = %+v", runs)
	}
	if runs[0].RunID == "" {
		t.Error("runs should carry their run id")
	}

	var empty []storage.Run
	if code := getJSON(t, srv.URL+"/api/v1/games/cookie/scores", &empty); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("empty leaderboard should be an empty array, got %v", empty)
	}
}

func TestScoresErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		path string
		code int
	}{
		{"/api/v1/games/pong/scores", http.StatusNotFound},
		{"/api/v1/games/pong/stats", http.StatusNotFound},
		{"/api/v1/games/cookie/scores?limit=abc", http.StatusBadRequest},
		{"/api/v1/games/cookie/scores?limit=0", http.StatusBadRequest},
		{"/api/v1/games/cookie/scores?limit=101", http.StatusBadRequest},
		{"/api/v1/runs/not-a-uuid", http.StatusBadRequest},
		{"/api/v1/runs/" + uuid.NewString(), http.StatusNotFound},
	}
	for _, tc := range tests {
		var body map[string]string
		if code := getJSON(t, srv.URL+tc.path, &body); code != tc.code {
			t.Errorf("GET %s: status = %d, expected %d", tc.path, code, tc.code)
		}
		if body["error"] == "" {
			t.Errorf("GET %s: missing error message", tc.path)
		}
	}
}

func TestStats(t *testing.T) {
	srv, store := newTestServer(t)
	store.SaveRun(storage.Run{GameID: "cookie", Score: 100, Ticks: 100})
	store.SaveRun(storage.Run{GameID: "cookie", Score: 300, Ticks: 300})

	var stats storage.GameStats
	if code := getJSON(t, srv.URL+"/api/v1/games/cookie/stats", &stats); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunByID(t *testing.T) {
	srv, store := newTestServer(t)
	saved, err := store.SaveRun(storage.Run{GameID: "cookie", Score: 77, Message: "Monster caught your cookie!"})
	if err != nil {
		t.Fatal(err)
	}

	var run storage.Run
	if code := getJSON(t, srv.URL+"/api/v1/runs/"+saved.RunID, &run); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if run.Score != 77 || run.Message != "Monster caught your cookie!" || run.RunID != saved.RunID {
		t.Errorf("run = %+v", run)
	}
}

type failingStore struct{}

var errBroken = errors.New("disk on fire")

func (failingStore) TopScores(string, int) ([]storage.Run, error)    { return nil, errBroken }
func (failingStore) HighScore(string) (int, error)                   { return 0, errBroken }
func (failingStore) GetGameStats(string) (*storage.GameStats, error) { return nil, errBroken }
func (failingStore) RunByID(string) (*storage.Run, error)            { return nil, errBroken }

func TestStoreFailure(t *testing.T) {
	srv := httptest.NewServer(NewServer(failingStore{}, log.New(io.Discard)).Routes())
	defer srv.Close()

	for _, path := range []string{"/api/v1/games", "/api/v1/games/cookie/scores", "/api/v1/games/cookie/stats"} {
		var body map[string]string
		if code := getJSON(t, srv.URL+path, &body); code != http.StatusInternalServerError {
			t.Errorf("GET %s: status = %d, expected 500", path, code)
		}
		if body["error"] != "internal error" {
			t.Errorf("GET %s: store errors should not leak, got %q", path, body["error"])
		}
	}
}
