// Copyright (c) 2026 Askia authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/askia-app/askia/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, &testutil.FakeSink{}, cfg, "help text")

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, &testutil.FakeSink{}, cfg, "help text")

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "askia poll bot"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, &testutil.FakeSink{}, cfg, "help text")

	// Test that routes respond (handler is invoked)
	// 400/403 are valid responses for empty bodies; only 405 means the
	// route is missing.
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"POST", "/post"},
		{"POST", "/actions"},
		{"GET", "/slack/auth/redirect"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, &testutil.FakeSink{}, cfg, "help text")

	// Test that unsupported methods on defined routes return 405
	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},              // Only GET is defined
		{"GET", "/post"},                 // Only POST is defined
		{"GET", "/actions"},              // Only POST is defined
		{"POST", "/slack/auth/redirect"}, // Only GET is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}
