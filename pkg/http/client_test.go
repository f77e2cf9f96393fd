package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type echoResponse struct {
	Path  string `json:"path"`
	Query string `json:"query"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func TestRequestExecuteSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(echoResponse{
			Path:  r.URL.Path,
			Query: r.URL.RawQuery,
		})
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	successResp, errResp, status, err := client.Request().
		WithMethod(GET).
		WithPath("/departments/04/records").
		WithQueryParams(map[string]string{"rows": "5"}).
		WithSuccessResp(&echoResponse{}).
		WithErrorResp(&errorResponse{}).
		Execute()

	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if errResp != nil {
		t.Errorf("unexpected error response: %+v", errResp)
	}

	resp := successResp.(*echoResponse)
	if resp.Path != "/departments/04/records" {
		t.Errorf("Path = %q, want /departments/04/records", resp.Path)
	}
	if resp.Query != "rows=5" {
		t.Errorf("Query = %q, want rows=5", resp.Query)
	}
}

func TestRequestExecuteErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(errorResponse{Message: "unknown department"})
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	_, errResp, status, err := client.Request().
		WithMethod(GET).
		WithPath("/departments/99/records").
		WithSuccessResp(&echoResponse{}).
		WithErrorResp(&errorResponse{}).
		Execute()

	if err == nil {
		t.Fatal("Execute() error = nil, want http error")
	}
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}

	resp := errResp.(*errorResponse)
	if resp.Message != "unknown department" {
		t.Errorf("Message = %q, want %q", resp.Message, "unknown department")
	}
}

func TestBackoffRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(echoResponse{Path: r.URL.Path})
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	_, _, status, err := client.Request().
		WithMethod(GET).
		WithPath("/flaky").
		WithSuccessResp(&echoResponse{}).
		WithBackoff(&BackoffConfig{MaxRetries: 3, InitialDelay: time.Millisecond, Multiplier: 2}).
		Execute()

	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d, want 200", status)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestBackoffDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{Backoff: DefaultBackoff()})

	_, _, status, err := client.Get("/bad", nil, nil, nil, nil)
	if err == nil {
		t.Fatal("Get() error = nil, want http error")
	}
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1 (4xx must not retry)", got)
	}
}
