package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

type stubDelivery struct {
	ads []port.DeliveredAd
	err error
}

func (s stubDelivery) GetAdsForUser(ctx context.Context, userID, placement string, limit int) ([]port.DeliveredAd, error) {
	return s.ads, s.err
}

type stubInteractions struct {
	result    port.InteractionResult
	statusErr error
	lastReq   *port.InteractionRequest
}

func (s *stubInteractions) RecordInteraction(ctx context.Context, req port.InteractionRequest) (port.InteractionResult, error) {
	s.lastReq = &req
	return s.result, nil
}

func (s *stubInteractions) BatchRecordInteraction(ctx context.Context, reqs []port.InteractionRequest) (port.BatchResult, error) {
	return port.BatchResult{Successful: len(reqs)}, nil
}

func (s *stubInteractions) UpdateAdStatus(ctx context.Context, adID int64, actor port.Actor, to domain.AdStatus) error {
	return s.statusErr
}

func (s *stubInteractions) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return &port.StatsResp{}, nil
}

func newTestHandler(d port.DeliveryUseCase, i port.InteractionUseCase) *Handler {
	return NewHandler(d, i, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleAdRequest(t *testing.T) {
	h := newTestHandler(stubDelivery{ads: []port.DeliveredAd{{
		Ad: domain.Ad{
			ID:       42,
			Creative: domain.Creative{Title: "t", LandingURL: "https://example.com"},
		},
		DeliveryScore: 0.75,
	}}}, &stubInteractions{})

	rec := httptest.NewRecorder()
	body := `{"user_id":"u1","placement":"feed","limit":1}`
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/ads/request", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var resp []deliveredAd
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 1 || resp[0].AdID != 42 || resp[0].DeliveryScore != 0.75 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

// TestHandleRecordInteractionFraud checks a fraud rejection is a 200 with
// accepted=false, never an HTTP error.
func TestHandleRecordInteractionFraud(t *testing.T) {
	h := newTestHandler(stubDelivery{}, &stubInteractions{
		result: port.InteractionResult{Accepted: false, FraudScore: 0.9},
	})

	rec := httptest.NewRecorder()
	body := `{"ad_id":1,"user_id":"u1","type":"click"}`
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/interactions", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	var res port.InteractionResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Accepted || res.FraudScore != 0.9 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

// TestHandleRecordInteractionFallbacks checks IP and user-agent are taken
// from the request when the payload omits them.
func TestHandleRecordInteractionFallbacks(t *testing.T) {
	stub := &stubInteractions{result: port.InteractionResult{Accepted: true}}
	h := newTestHandler(stubDelivery{}, stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interactions",
		strings.NewReader(`{"ad_id":1,"user_id":"u1","type":"click"}`))
	req.RemoteAddr = "203.0.113.9:54321"
	req.Header.Set("User-Agent", "test-agent/1.0")
	h.Router().ServeHTTP(httptest.NewRecorder(), req)

	if stub.lastReq == nil {
		t.Fatal("interaction never reached the usecase")
	}
	if stub.lastReq.Context.IP != "203.0.113.9" {
		t.Fatalf("ip fallback: got %q", stub.lastReq.Context.IP)
	}
	if stub.lastReq.Context.UserAgent != "test-agent/1.0" {
		t.Fatalf("user-agent fallback: got %q", stub.lastReq.Context.UserAgent)
	}
}

// TestErrorMapping drives each sentinel through the status update route and
// checks the HTTP status it maps to.
func TestErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: bad status", port.ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: no such ad", port.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: not yours", port.ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: completed is terminal", port.ErrInvalidState), http.StatusConflict},
		{fmt.Errorf("%w: write failed", port.ErrPersistence), http.StatusBadGateway},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		h := newTestHandler(stubDelivery{}, &stubInteractions{statusErr: tc.err})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/ads/1/status",
			strings.NewReader(`{"status":"paused","advertiser_id":1}`))
		h.Router().ServeHTTP(rec, req)

		if rec.Code != tc.want {
			t.Fatalf("error %v: got %d, want %d", tc.err, rec.Code, tc.want)
		}
	}
}

func TestHandleUpdateAdStatusNoContent(t *testing.T) {
	h := newTestHandler(stubDelivery{}, &stubInteractions{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/ads/1/status",
		strings.NewReader(`{"status":"paused","advertiser_id":1}`))
	h.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want 204", rec.Code)
	}
}

func TestHandleStatsOverviewBadPeriod(t *testing.T) {
	h := newTestHandler(stubDelivery{}, &stubInteractions{})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview?from=yesterday", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}
