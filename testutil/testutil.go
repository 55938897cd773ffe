// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/askia-app/askia/cliparse"
	"github.com/askia-app/askia/db"
	"github.com/askia-app/askia/models"
	"github.com/askia-app/askia/store"
	"github.com/askia-app/askia/view"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. A single connection keeps the in-memory database alive and
// serializes it the way a file-backed sqlite database would be.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore is SetupTestDB plus the store wrapper.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(SetupTestDB(t))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3000,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
		AppToken:     "test-app-token",
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
		HelpFile:     "Help.md",
	}
}

// CreateTestPoll persists an already-posted poll owned by ownerID and
// returns the stored copy.
func CreateTestPoll(t *testing.T, st *store.Store, ownerID, channelID string, labels ...string) models.Poll {
	t.Helper()

	if len(labels) == 0 {
		labels = []string{"Pizza", "Sushi", "Ramen"}
	}
	poll, err := st.CreatePoll(models.NewPoll(ownerID, channelID, models.PollSpec{
		Question: "Lunch?",
		Options:  labels,
	}))
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}

	ts := "1700000000.000100"
	poll, err = st.UpdatePoll(poll.ID, store.Changes{MessageTS: &ts})
	if err != nil {
		t.Fatalf("Failed to record test message timestamp: %v", err)
	}
	return poll
}

// SaveTestTeam persists a workspace token record.
func SaveTestTeam(t *testing.T, st *store.Store, teamID, token string) {
	t.Helper()

	if err := st.SaveTeam(models.Team{ID: teamID, AccessToken: token}); err != nil {
		t.Fatalf("Failed to save test team: %v", err)
	}
}

// FakeSink is a slackapi.Sink that records every outbound call. Error
// fields, when set, make the corresponding operation fail, so tests can
// exercise the transport-failure paths without a network.
type FakeSink struct {
	mu sync.Mutex

	PostTS       string // timestamp returned by Post (default "1700000000.000100")
	PostErr      error
	UpdateErr    error
	DeleteErr    error
	EphemeralErr error

	Posts      []view.Message
	Updates    []UpdateCall
	Deletes    []DeleteCall
	Ephemerals []EphemeralCall
}

type UpdateCall struct {
	Token     string
	Timestamp string
	Msg       view.Message
}

type DeleteCall struct {
	Token     string
	Channel   string
	Timestamp string
}

type EphemeralCall struct {
	Token   string
	Channel string
	User    string
	Text    string
}

func (f *FakeSink) Post(ctx context.Context, token string, msg view.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PostErr != nil {
		return "", f.PostErr
	}
	f.Posts = append(f.Posts, msg)
	if f.PostTS == "" {
		return "1700000000.000100", nil
	}
	return f.PostTS, nil
}

func (f *FakeSink) Update(ctx context.Context, token, timestamp string, msg view.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.Updates = append(f.Updates, UpdateCall{Token: token, Timestamp: timestamp, Msg: msg})
	return nil
}

func (f *FakeSink) Delete(ctx context.Context, token, channel, timestamp string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.Deletes = append(f.Deletes, DeleteCall{Token: token, Channel: channel, Timestamp: timestamp})
	return nil
}

func (f *FakeSink) Ephemeral(ctx context.Context, token, channel, user, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.EphemeralErr != nil {
		return f.EphemeralErr
	}
	f.Ephemerals = append(f.Ephemerals, EphemeralCall{Token: token, Channel: channel, User: user, Text: text})
	return nil
}

// LastEphemeral returns the most recent ephemeral call, failing the test
// when none was sent.
func (f *FakeSink) LastEphemeral(t *testing.T) EphemeralCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Ephemerals) == 0 {
		t.Fatal("Expected an ephemeral message, got none")
	}
	return f.Ephemerals[len(f.Ephemerals)-1]
}

// MakeSlashRequest builds the form-encoded request Slack sends for a slash
// command.
func MakeSlashRequest(token, teamID, channelID, userID, text string) *http.Request {
	form := url.Values{}
	form.Set("token", token)
	form.Set("team_id", teamID)
	form.Set("channel_id", channelID)
	form.Set("user_id", userID)
	form.Set("command", "/askia")
	form.Set("text", text)

	req := httptest.NewRequest("POST", "/post", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// MakeActionRequest builds the form-encoded interactive-message callback
// Slack sends when a button is pressed. payload is raw JSON.
func MakeActionRequest(payload string) *http.Request {
	form := url.Values{}
	form.Set("payload", payload)

	req := httptest.NewRequest("POST", "/actions", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}
