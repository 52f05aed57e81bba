package port

import (
	"context"
	"errors"
	"time"

	"donation-campaign/internal/core/domain"
)

// ErrInvalidDonation is wrapped by SubmitDonation when the submitted form
// does not pass validation. The campaign state is left untouched.
var ErrInvalidDonation = errors.New("invalid donation")

// CampaignUseCase defines the operations exposed to the donation form and to
// the progress barometer. This is the primary port into the application
// domain. Mock implementations are generated from this interface for testing.
type CampaignUseCase interface {
	// Summary returns a consistent view of the campaign totals.
	Summary(ctx context.Context) (Summary, error)

	// SubmitDonation validates the form and records the donation. It returns
	// the totals as they are right after the donation was recorded.
	SubmitDonation(ctx context.Context, form DonationForm) (Summary, error)

	// ListDonations returns the donation log in insertion order.
	ListDonations(ctx context.Context) ([]domain.DonationEntry, error)

	// Barometer returns display strings for the progress barometer in the
	// requested language. Unsupported languages fall back to the campaign
	// default locale.
	Barometer(ctx context.Context, lang string) (Barometer, error)
}

// DonationForm is the tuple submitted by the donation form.
type DonationForm struct {
	Name            string
	Email           string
	Amount          float64
	NewsletterOptIn bool
}

// Summary contains the campaign totals and derived metrics. Amounts are in
// the campaign currency.
type Summary struct {
	CurrentAmount   float64 `json:"current_amount"`
	GoalAmount      float64 `json:"goal_amount"`
	ProgressPercent float64 `json:"progress_percent"`
	RemainingAmount float64 `json:"remaining_amount"`
	DonationCount   int     `json:"donation_count"`
	Currency        string  `json:"currency"`
}

// Barometer holds localized, ready to render values.
type Barometer struct {
	Language  string    `json:"language"`
	Raised    string    `json:"raised"`
	Goal      string    `json:"goal"`
	Remaining string    `json:"remaining"`
	Progress  string    `json:"progress"`
	Donors    string    `json:"donors"`
	UpdatedAt time.Time `json:"updated_at"`
}
