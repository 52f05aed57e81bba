package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"donation-campaign/internal/adapter/usecase"
	"donation-campaign/internal/core/domain"
	"donation-campaign/internal/core/port"
	"donation-campaign/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(h *Handler, method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	h := NewHandler(mocks.NewMockCampaignUseCase(t), discardLogger())

	rr := serve(h, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestRequestIDIsPropagated(t *testing.T) {
	h := NewHandler(mocks.NewMockCampaignUseCase(t), discardLogger())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()

	h.Router().ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))
}

func TestSummaryEndpoint(t *testing.T) {
	svc := mocks.NewMockCampaignUseCase(t)
	svc.EXPECT().Summary(mock.Anything).Return(port.Summary{
		CurrentAmount:   4200,
		GoalAmount:      10000,
		ProgressPercent: 42,
		RemainingAmount: 5800,
		Currency:        "EUR",
	}, nil)
	h := NewHandler(svc, discardLogger())

	rr := serve(h, http.MethodGet, "/api/v1/campaign", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"current_amount": 4200,
		"goal_amount": 10000,
		"progress_percent": 42,
		"remaining_amount": 5800,
		"donation_count": 0,
		"currency": "EUR"
	}`, rr.Body.String())
}

func TestSummaryEndpointError(t *testing.T) {
	svc := mocks.NewMockCampaignUseCase(t)
	svc.EXPECT().Summary(mock.Anything).Return(port.Summary{}, errors.New("boom"))
	h := NewHandler(svc, discardLogger())

	rr := serve(h, http.MethodGet, "/api/v1/campaign", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestSubmitDonationEndpoint(t *testing.T) {
	svc := mocks.NewMockCampaignUseCase(t)
	want := port.DonationForm{Name: "Alice", Email: "a@x.com", Amount: 800, NewsletterOptIn: true}
	svc.EXPECT().
		SubmitDonation(mock.Anything, want).
		Return(port.Summary{CurrentAmount: 5000, GoalAmount: 10000, ProgressPercent: 50, RemainingAmount: 5000, DonationCount: 1}, nil)
	h := NewHandler(svc, discardLogger())

	rr := serve(h, http.MethodPost, "/api/v1/campaign/donations",
		`{"name":"Alice","email":"a@x.com","amount":800,"newsletter":true}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	var sum port.Summary
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&sum))
	assert.Equal(t, 1, sum.DonationCount)
	assert.Equal(t, 50.0, sum.ProgressPercent)
}

func TestSubmitDonationBadRequests(t *testing.T) {
	cases := map[string]string{
		"malformed":     `{"name":`,
		"unknown field": `{"name":"A","email":"a@x.com","amount":1,"tip":5}`,
		"wrong type":    `{"name":"A","email":"a@x.com","amount":"ten"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			h := NewHandler(mocks.NewMockCampaignUseCase(t), discardLogger())

			rr := serve(h, http.MethodPost, "/api/v1/campaign/donations", body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestSubmitDonationValidationError(t *testing.T) {
	svc := mocks.NewMockCampaignUseCase(t)
	svc.EXPECT().
		SubmitDonation(mock.Anything, mock.AnythingOfType("port.DonationForm")).
		Return(port.Summary{}, fmt.Errorf("%w: amount must be positive", port.ErrInvalidDonation))
	h := NewHandler(svc, discardLogger())

	rr := serve(h, http.MethodPost, "/api/v1/campaign/donations", `{"name":"A","email":"a@x.com","amount":-1}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "amount must be positive")
}

func TestListDonationsOmitsEmail(t *testing.T) {
	at := time.Date(2025, 7, 15, 10, 0, 0, 0, time.UTC)
	svc := mocks.NewMockCampaignUseCase(t)
	svc.EXPECT().ListDonations(mock.Anything).Return([]domain.DonationEntry{
		{Name: "Alice", Email: "a@x.com", Amount: 800, SubmittedAt: at},
		{Name: "Bob", Email: "b@x.com", Amount: 20, NewsletterOptIn: true, SubmittedAt: at.Add(time.Minute)},
	}, nil)
	h := NewHandler(svc, discardLogger())

	rr := serve(h, http.MethodGet, "/api/v1/campaign/donations", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "a@x.com")
	var payload struct {
		Items []donationResponse `json:"items"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload))
	require.Len(t, payload.Items, 2)
	assert.Equal(t, "Alice", payload.Items[0].Name)
	assert.Equal(t, "Bob", payload.Items[1].Name)
	assert.True(t, payload.Items[1].Newsletter)
	assert.True(t, payload.Items[0].SubmittedAt.Equal(at))
}

func TestListDonationsEmpty(t *testing.T) {
	svc := mocks.NewMockCampaignUseCase(t)
	svc.EXPECT().ListDonations(mock.Anything).Return(nil, nil)
	h := NewHandler(svc, discardLogger())

	rr := serve(h, http.MethodGet, "/api/v1/campaign/donations", "")

	assert.JSONEq(t, `{"items":[]}`, rr.Body.String())
}

func TestBarometerLanguageSource(t *testing.T) {
	svc := mocks.NewMockCampaignUseCase(t)
	svc.EXPECT().Barometer(mock.Anything, "en").Return(port.Barometer{Language: "en"}, nil).Once()
	svc.EXPECT().Barometer(mock.Anything, "de-AT").Return(port.Barometer{Language: "de"}, nil).Once()
	h := NewHandler(svc, discardLogger())

	rr := serve(h, http.MethodGet, "/api/v1/campaign/barometer?lang=en", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/campaign/barometer", nil)
	req.Header.Set("Accept-Language", "de-AT")
	rr = httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"language":"de"`)
}

func TestPanicIsRecovered(t *testing.T) {
	svc := mocks.NewMockCampaignUseCase(t)
	svc.EXPECT().Summary(mock.Anything).Run(func(context.Context) { panic("kaboom") })
	h := NewHandler(svc, discardLogger())

	rr := serve(h, http.MethodGet, "/api/v1/campaign", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// TestDonationFlow runs the documented campaign scenario through the real
// use case.
func TestDonationFlow(t *testing.T) {
	state, err := domain.NewCampaignState(4200, 10000)
	require.NoError(t, err)
	svc, err := usecase.NewCampaignUseCase(state, usecase.Options{})
	require.NoError(t, err)
	h := NewHandler(svc, discardLogger())

	rr := serve(h, http.MethodPost, "/api/v1/campaign/donations",
		`{"name":"Alice","email":"a@x.com","amount":800,"newsletter":false}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(h, http.MethodGet, "/api/v1/campaign", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var sum port.Summary
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&sum))
	assert.Equal(t, port.Summary{
		CurrentAmount:   5000,
		GoalAmount:      10000,
		ProgressPercent: 50,
		RemainingAmount: 5000,
		DonationCount:   1,
		Currency:        "EUR",
	}, sum)

	rr = serve(h, http.MethodPost, "/api/v1/campaign/donations", `{"name":"","email":"a@x.com","amount":5}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 1, state.DonationCount())
}

func TestOverflowingDonationKeepsSummaryReadable(t *testing.T) {
	state, err := domain.NewCampaignState(0, 10000)
	require.NoError(t, err)
	svc, err := usecase.NewCampaignUseCase(state, usecase.Options{})
	require.NoError(t, err)
	h := NewHandler(svc, discardLogger())
	body := `{"name":"Huge","email":"h@x.com","amount":1e308}`

	rr := serve(h, http.MethodPost, "/api/v1/campaign/donations", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = serve(h, http.MethodPost, "/api/v1/campaign/donations", body)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = serve(h, http.MethodGet, "/api/v1/campaign", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var sum port.Summary
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&sum))
	assert.Equal(t, 1e308, sum.CurrentAmount)
	assert.Equal(t, 1, sum.DonationCount)
}

func TestUnencodableSummaryIsServerError(t *testing.T) {
	svc := mocks.NewMockCampaignUseCase(t)
	svc.EXPECT().Summary(mock.Anything).Return(port.Summary{CurrentAmount: math.Inf(1), GoalAmount: 1}, nil)
	h := NewHandler(svc, discardLogger())

	rr := serve(h, http.MethodGet, "/api/v1/campaign", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Header().Get("Content-Type"), "application/json")
}
