package httpclient

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestRetryPolicy(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		resp *http.Response
		err  error
		want bool
	}{
		{"transport error", nil, errors.New("connection refused"), true},
		{"rate limited", &http.Response{StatusCode: http.StatusTooManyRequests}, nil, true},
		{"server error", &http.Response{StatusCode: http.StatusInternalServerError}, nil, true},
		{"bad gateway", &http.Response{StatusCode: http.StatusBadGateway}, nil, true},
		{"success", &http.Response{StatusCode: http.StatusOK}, nil, false},
		{"not found", &http.Response{StatusCode: http.StatusNotFound}, nil, false},
		{"validation", &http.Response{StatusCode: http.StatusUnprocessableEntity}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := retryPolicy(ctx, tt.resp, tt.err)
			if err != nil {
				t.Fatalf("retryPolicy: %v", err)
			}
			if got != tt.want {
				t.Errorf("retryPolicy = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRetryPolicyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	retry, err := retryPolicy(ctx, &http.Response{StatusCode: http.StatusInternalServerError}, nil)
	if retry {
		t.Error("retry = true after cancellation")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestJitteredBackoffBounds(t *testing.T) {
	min, max := time.Second, 30*time.Second

	for attempt := 0; attempt < 4; attempt++ {
		base := time.Duration(1<<attempt) * min
		for i := 0; i < 50; i++ {
			backoff := jitteredBackoff(min, max, attempt, nil)
			if backoff < base || backoff >= base+maxJitter {
				t.Fatalf("attempt %d: backoff %v outside [%v, %v)", attempt, backoff, base, base+maxJitter)
			}
		}
	}
}

func TestIdempotent(t *testing.T) {
	idempotentMethods := []string{http.MethodGet, http.MethodHead, http.MethodOptions}
	for _, method := range idempotentMethods {
		if !idempotent(method) {
			t.Errorf("idempotent(%s) = false, want true", method)
		}
	}

	mutating := []string{http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
	for _, method := range mutating {
		if idempotent(method) {
			t.Errorf("idempotent(%s) = true, want false", method)
		}
	}
}
