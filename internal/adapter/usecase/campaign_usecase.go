package usecase

import (
	"context"
	"fmt"
	"math"
	"net/mail"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"donation-campaign/internal/core/domain"
	"donation-campaign/internal/core/port"
)

// Options tune the campaign use case. The zero value accepts any positive
// amount and renders amounts in euros for German readers.
type Options struct {
	// MaxDonation caps a single donation. Zero disables the cap.
	MaxDonation float64
	// Currency is an ISO 4217 code.
	Currency string
	// Locale is the fallback display language.
	Locale string
}

// CampaignUseCase implements port.CampaignUseCase on top of an in-memory
// CampaignState. It plays the role of the donation form: submissions are
// validated here before they reach the state, which trusts its input.
type CampaignUseCase struct {
	state *domain.CampaignState

	// submitMu makes the running-total check and the recording one step.
	submitMu sync.Mutex

	maxDonation float64
	currency    currency.Unit
	fallback    language.Tag
}

// NewCampaignUseCase creates a use case bound to state. It fails when the
// currency code or locale in opts cannot be parsed. A locale without a
// translated barometer falls back to German.
func NewCampaignUseCase(state *domain.CampaignState, opts Options) (*CampaignUseCase, error) {
	code := opts.Currency
	if code == "" {
		code = "EUR"
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}

	fallback := supportedLanguages[0]
	if opts.Locale != "" {
		tag, err := language.Parse(opts.Locale)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", opts.Locale, err)
		}
		if _, idx, conf := languageMatcher.Match(tag); conf != language.No {
			fallback = supportedLanguages[idx]
		}
	}

	return &CampaignUseCase{
		state:       state,
		maxDonation: opts.MaxDonation,
		currency:    unit,
		fallback:    fallback,
	}, nil
}

// Summary returns the campaign totals.
func (u *CampaignUseCase) Summary(_ context.Context) (port.Summary, error) {
	return u.summary(u.state.Snapshot()), nil
}

// SubmitDonation validates the form and records it. Invalid forms produce an
// error wrapping port.ErrInvalidDonation.
func (u *CampaignUseCase) SubmitDonation(ctx context.Context, form port.DonationForm) (port.Summary, error) {
	if err := ctx.Err(); err != nil {
		return port.Summary{}, err
	}
	name, email, err := u.validate(form)
	if err != nil {
		return port.Summary{}, err
	}

	u.submitMu.Lock()
	defer u.submitMu.Unlock()
	if total := u.state.CurrentAmount() + form.Amount; math.IsInf(total, 0) || math.IsNaN(total) {
		return port.Summary{}, fmt.Errorf("%w: amount overflows the campaign total", port.ErrInvalidDonation)
	}
	u.state.RecordDonation(name, email, form.Amount, form.NewsletterOptIn)
	return u.summary(u.state.Snapshot()), nil
}

// ListDonations returns the donation log in insertion order.
func (u *CampaignUseCase) ListDonations(_ context.Context) ([]domain.DonationEntry, error) {
	return u.state.Donations(), nil
}

// Barometer renders the campaign totals for display in lang.
func (u *CampaignUseCase) Barometer(_ context.Context, lang string) (port.Barometer, error) {
	tag := u.matchLanguage(lang)
	return renderBarometer(tag, u.currency, u.state.Snapshot(), time.Now()), nil
}

func (u *CampaignUseCase) summary(s domain.Snapshot) port.Summary {
	return port.Summary{
		CurrentAmount:   s.CurrentAmount,
		GoalAmount:      s.GoalAmount,
		ProgressPercent: s.ProgressPercent,
		RemainingAmount: s.RemainingAmount,
		DonationCount:   s.DonationCount,
		Currency:        u.currency.String(),
	}
}

// validate returns the trimmed name and the bare email address.
func (u *CampaignUseCase) validate(form port.DonationForm) (string, string, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return "", "", fmt.Errorf("%w: name is required", port.ErrInvalidDonation)
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(form.Email))
	if err != nil {
		return "", "", fmt.Errorf("%w: email: %v", port.ErrInvalidDonation, err)
	}

	switch {
	case math.IsNaN(form.Amount) || math.IsInf(form.Amount, 0):
		return "", "", fmt.Errorf("%w: amount must be a finite number", port.ErrInvalidDonation)
	case form.Amount <= 0:
		return "", "", fmt.Errorf("%w: amount must be positive", port.ErrInvalidDonation)
	case u.maxDonation > 0 && form.Amount > u.maxDonation:
		return "", "", fmt.Errorf("%w: amount exceeds %v", port.ErrInvalidDonation, u.maxDonation)
	}
	return name, addr.Address, nil
}
