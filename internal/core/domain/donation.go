package domain

import "time"

// DonationEntry is one submitted donation. Amounts are expressed in the
// campaign currency; SubmittedAt is assigned by CampaignState when the entry
// is recorded, never by the caller.
type DonationEntry struct {
	Name            string
	Email           string
	Amount          float64
	NewsletterOptIn bool
	SubmittedAt     time.Time
}
