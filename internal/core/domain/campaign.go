package domain

import (
	"errors"
	"math"
	"slices"
	"sync"
	"time"
)

// ErrInvalidGoal is returned by NewCampaignState when the goal amount is not
// a positive finite number.
var ErrInvalidGoal = errors.New("goal amount must be positive")

// CampaignState holds the totals of a fundraising campaign and its donation
// log. The goal is fixed at construction. The current amount only changes
// through RecordDonation, so it always equals the seed plus the sum of every
// recorded amount.
//
// A CampaignState is safe for concurrent use.
type CampaignState struct {
	mu        sync.RWMutex
	seed      float64
	current   float64
	goal      float64
	donations []DonationEntry
}

// NewCampaignState returns a state seeded with the given current amount and
// goal. Initial entries are copied into the log and count as donations; their
// amounts are assumed to be included in seed already.
func NewCampaignState(seed, goal float64, initial ...DonationEntry) (*CampaignState, error) {
	if goal <= 0 || math.IsInf(goal, 0) || math.IsNaN(goal) {
		return nil, ErrInvalidGoal
	}
	return &CampaignState{
		seed:      seed,
		current:   seed,
		goal:      goal,
		donations: slices.Clone(initial),
	}, nil
}

// RecordDonation appends a donation stamped with the current time and adds
// its amount to the running total. The input is not validated.
func (s *CampaignState) RecordDonation(name, email string, amount float64, newsletterOptIn bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// stamped under the lock so log order and timestamps agree
	s.donations = append(s.donations, DonationEntry{
		Name:            name,
		Email:           email,
		Amount:          amount,
		NewsletterOptIn: newsletterOptIn,
		SubmittedAt:     time.Now(),
	})
	s.current += amount
}

// ProgressPercent reports how much of the goal has been raised, capped at 100.
func (s *CampaignState) ProgressPercent() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return progress(s.current, s.goal)
}

// RemainingAmount reports how much is still missing to reach the goal. It
// never goes below zero.
func (s *CampaignState) RemainingAmount() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return remaining(s.current, s.goal)
}

// DonationCount returns the number of entries in the donation log.
func (s *CampaignState) DonationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.donations)
}

func (s *CampaignState) CurrentAmount() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *CampaignState) GoalAmount() float64 {
	return s.goal
}

func (s *CampaignState) SeedAmount() float64 {
	return s.seed
}

// Donations returns a copy of the donation log in insertion order.
func (s *CampaignState) Donations() []DonationEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.donations)
}

// Snapshot captures every derived value under a single read lock.
func (s *CampaignState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		CurrentAmount:   s.current,
		GoalAmount:      s.goal,
		ProgressPercent: progress(s.current, s.goal),
		RemainingAmount: remaining(s.current, s.goal),
		DonationCount:   len(s.donations),
	}
}

// Snapshot is a consistent point-in-time view of a CampaignState.
type Snapshot struct {
	CurrentAmount   float64
	GoalAmount      float64
	ProgressPercent float64
	RemainingAmount float64
	DonationCount   int
}

// multiply first so whole amounts give exact percentages
func progress(current, goal float64) float64 {
	return math.Min(current*100/goal, 100)
}

func remaining(current, goal float64) float64 {
	return math.Max(goal-current, 0)
}
