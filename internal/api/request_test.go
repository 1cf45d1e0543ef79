package api

import (
	"errors"
	"testing"

	apierrors "github.com/edalrymple/horizon/internal/errors"
)

func TestGetInjectsAPIKey(t *testing.T) {
	mock := &mockHttpClient{Response: jsonResponse(`{}`, "39")}
	client := newTestClient(mock, WithAPIKey("SECRET"))

	if _, err := client.get("planetary/apod", nil); err != nil {
		t.Fatalf("get() error = %v", err)
	}

	req := mock.lastRequest()
	if req == nil {
		t.Fatal("no request was issued")
	}
	if got := req.URL.Query().Get("api_key"); got != "SECRET" {
		t.Errorf("api_key = %q, want %q", got, "SECRET")
	}
	if req.Method != "GET" {
		t.Errorf("method = %q, want GET", req.Method)
	}
}

func TestGetDropsNilParams(t *testing.T) {
	mock := &mockHttpClient{Response: jsonResponse(`{}`, "39")}
	client := newTestClient(mock)

	_, err := client.get("planetary/apod", Params{
		"date":   "2016-01-01",
		"hd":     nil,
		"camera": nil,
	})
	if err != nil {
		t.Fatalf("get() error = %v", err)
	}

	q := mock.lastRequest().URL.Query()
	if got := q.Get("date"); got != "2016-01-01" {
		t.Errorf("date = %q, want 2016-01-01", got)
	}
	if q.Has("hd") {
		t.Error("nil hd param was sent")
	}
	if q.Has("camera") {
		t.Error("nil camera param was sent")
	}
}

func TestGetStatusErrors(t *testing.T) {
	tests := []struct {
		statusCode int
		wantReason string
		wantIs     error
	}{
		{401, "Unauthorized", apierrors.ErrUnauthorized},
		{403, "Forbidden", apierrors.ErrForbidden},
		{404, "Not Found", apierrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.wantReason, func(t *testing.T) {
			mock := &mockHttpClient{Response: statusResponse(tt.statusCode, `{"error":"no"}`)}
			client := newTestClient(mock)

			_, err := client.get("planetary/apod", nil)
			if err == nil {
				t.Fatal("expected an error")
			}

			var statusErr *apierrors.StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error type = %T, want *StatusError", err)
			}
			if statusErr.Error() != tt.wantReason {
				t.Errorf("Error() = %q, want %q", statusErr.Error(), tt.wantReason)
			}
			if !statusErr.MatchesReason(tt.wantReason) {
				t.Errorf("MatchesReason(%q) = false", tt.wantReason)
			}
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("errors.Is(err, %v) = false", tt.wantIs)
			}
			if statusErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.statusCode)
			}
		})
	}
}

func TestGetOtherStatusError(t *testing.T) {
	mock := &mockHttpClient{Response: statusResponse(500, "boom")}
	client := newTestClient(mock)

	_, err := client.get("planetary/apod", nil)
	var statusErr *apierrors.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error type = %T, want *StatusError", err)
	}
	if statusErr.StatusCode != 500 {
		t.Errorf("StatusCode = %d, want 500", statusErr.StatusCode)
	}
	if statusErr.Body != "boom" {
		t.Errorf("Body = %q, want %q", statusErr.Body, "boom")
	}
	// Must not collide with the three named reasons.
	for _, named := range []string{"Unauthorized", "Forbidden", "Not Found"} {
		if statusErr.MatchesReason(named) {
			t.Errorf("500 error matched reason %q", named)
		}
	}
}

func TestGetUpdatesRateLimit(t *testing.T) {
	mock := &mockHttpClient{Response: jsonResponse(`{}`, "0038")}
	client := newTestClient(mock)

	if got := client.RateLimitRemaining(); got != "Unknown" {
		t.Errorf("initial RateLimitRemaining() = %q, want Unknown", got)
	}

	if _, err := client.get("planetary/apod", nil); err != nil {
		t.Fatalf("get() error = %v", err)
	}

	// Stored verbatim, not parsed.
	if got := client.RateLimitRemaining(); got != "0038" {
		t.Errorf("RateLimitRemaining() = %q, want %q", got, "0038")
	}
}

func TestGetRateLimitUnchangedOnFailure(t *testing.T) {
	mock := &mockHttpClient{Response: statusResponse(404, "")}
	client := newTestClient(mock)

	_, _ = client.get("planetary/apod", nil)
	if got := client.RateLimitRemaining(); got != "Unknown" {
		t.Errorf("RateLimitRemaining() = %q, want Unknown", got)
	}
}

func TestGetMissingRateLimitHeader(t *testing.T) {
	resp := statusResponse(200, `{}`)
	mock := &mockHttpClient{Response: resp}
	client := newTestClient(mock)

	_, err := client.get("planetary/apod", nil)
	var missingErr *apierrors.MissingHeaderError
	if !errors.As(err, &missingErr) {
		t.Fatalf("error type = %T, want *MissingHeaderError", err)
	}
	if missingErr.Header != "X-RateLimit-Remaining" {
		t.Errorf("Header = %q, want X-RateLimit-Remaining", missingErr.Header)
	}
}

func TestGetNetworkError(t *testing.T) {
	cause := errors.New("connection refused")
	mock := &mockHttpClient{Err: cause}
	client := newTestClient(mock)

	_, err := client.get("planetary/apod", nil)
	var netErr *apierrors.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("error type = %T, want *NetworkError", err)
	}
	if !errors.Is(err, cause) {
		t.Error("NetworkError does not wrap the transport error")
	}
}

func TestFormatParam(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"fhaz", "fhaz"},
		{1000, "1000"},
		{true, "True"},
		{false, "False"},
		{1.5, "1.5"},
		{100.75, "100.75"},
	}
	for _, tt := range tests {
		if got := formatParam(tt.in); got != tt.want {
			t.Errorf("formatParam(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
