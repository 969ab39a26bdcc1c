package respond_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"pressroom/internal/handler/http/respond"
)

func TestJSON_SetsContentTypeAndBody(t *testing.T) {
	rr := httptest.NewRecorder()
	respond.JSON(rr, 200, map[string]string{"message": "ok"})

	if rr.Code != 200 {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["message"] != "ok" {
		t.Errorf("body = %v", body)
	}
}

func TestJSON_NilBody(t *testing.T) {
	rr := httptest.NewRecorder()
	respond.JSON(rr, 404, nil)

	if rr.Code != 404 {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rr.Body.String())
	}
}

func TestSafeError_SafeMessagePassesThrough(t *testing.T) {
	rr := httptest.NewRecorder()
	respond.SafeError(rr, 404, errors.New("article not found"))

	var body map[string]string
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	if body["error"] != "article not found" {
		t.Errorf("error = %q, want passthrough", body["error"])
	}
}

func TestSafeError_InternalDetailsMasked(t *testing.T) {
	rr := httptest.NewRecorder()
	respond.SafeError(rr, 500, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	var body map[string]string
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	if body["error"] != "internal server error" {
		t.Errorf("error = %q, want generic message", body["error"])
	}
}

func TestSafeError_ValidationAt500StillMasked(t *testing.T) {
	// The contract maps validation failures to 500; the body must not leak
	// even though the message itself would be safe at a 4xx.
	rr := httptest.NewRecorder()
	respond.SafeError(rr, 500, errors.New("validation error on field 'title': cannot be empty"))

	var body map[string]string
	_ = json.Unmarshal(rr.Body.Bytes(), &body)
	if body["error"] != "internal server error" {
		t.Errorf("error = %q, want generic message for 5xx", body["error"])
	}
}

func TestSanitizeError_MasksDSNPassword(t *testing.T) {
	err := errors.New(`connect "postgres://app:hunter2@db:5432/press": refused`)
	got := respond.SanitizeError(err)
	want := `connect "postgres://app:****@db:5432/press": refused`
	if got != want {
		t.Errorf("SanitizeError = %q, want %q", got, want)
	}
}
