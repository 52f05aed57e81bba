package usecase

import (
	"math"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"donation-campaign/internal/core/domain"
	"donation-campaign/internal/core/port"
)

const donorsKey = "%d donations"

// supportedLanguages lists the languages with a translated barometer. The
// first entry wins when nothing matches.
var supportedLanguages = []language.Tag{language.German, language.English}

var languageMatcher = language.NewMatcher(supportedLanguages)

func init() {
	_ = message.Set(language.German, donorsKey,
		plural.Selectf(1, "%d", "=1", "eine Spende", "other", "%d Spenden"))
	_ = message.Set(language.English, donorsKey,
		plural.Selectf(1, "%d", "=1", "one donation", "other", "%d donations"))
}

// matchLanguage resolves a language name or an Accept-Language header value.
func (u *CampaignUseCase) matchLanguage(lang string) language.Tag {
	if lang == "" {
		return u.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return u.fallback
	}
	_, idx, conf := languageMatcher.Match(tags...)
	if conf == language.No {
		return u.fallback
	}
	return supportedLanguages[idx]
}

func renderBarometer(tag language.Tag, unit currency.Unit, s domain.Snapshot, now time.Time) port.Barometer {
	p := message.NewPrinter(tag)
	// floor so an almost funded campaign never shows 100%
	progress := math.Floor(s.ProgressPercent)
	return port.Barometer{
		Language:  tag.String(),
		Raised:    formatMoney(p, tag, unit, s.CurrentAmount),
		Goal:      formatMoney(p, tag, unit, s.GoalAmount),
		Remaining: formatMoney(p, tag, unit, s.RemainingAmount),
		Progress:  p.Sprintf("%.0f%%", progress),
		Donors:    p.Sprintf(donorsKey, s.DonationCount),
		UpdatedAt: now.UTC(),
	}
}

// formatMoney prints amount with the locale's separators. English puts the
// symbol first, everything else after the number.
func formatMoney(p *message.Printer, tag language.Tag, unit currency.Unit, amount float64) string {
	sym := p.Sprint(currency.Symbol(unit))
	num := p.Sprintf("%.2f", amount)
	if base, _ := tag.Base(); base.String() == "en" {
		return sym + " " + num
	}
	return num + " " + sym
}
