package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler(nil)
	c, rec := newContext(http.MethodGet, "/health", "", nil)
	if err := h.Liveness(c); err != nil || rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", rec.Code, err)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	up := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	c, rec := newContext(http.MethodGet, "/health/ready", "", nil)
	if err := NewHealthHandler(map[string]Pinger{"mongodb": up, "redis": up}).Readiness(c); err != nil || rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", rec.Code, err)
	}

	c, rec = newContext(http.MethodGet, "/health/ready", "", nil)
	if err := NewHealthHandler(map[string]Pinger{"mongodb": up, "redis": down}).Readiness(c); err != nil {
		t.Fatalf("readiness: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "degraded" || resp.Dependencies["redis"].Status != "unhealthy" || resp.Dependencies["mongodb"].Status != "ok" {
		t.Fatalf("unexpected payload %+v", resp)
	}
}
