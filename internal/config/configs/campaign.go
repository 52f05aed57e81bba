package configs

// Campaign configures the fundraising campaign served by this process. The
// seed and goal are fixed for the lifetime of the process; donations received
// while it runs are kept in memory only.
type Campaign struct {
	// SeedAmount is the amount already raised when the process starts.
	SeedAmount float64 `env:"SEED_AMOUNT" envDefault:"4200"`
	// GoalAmount is the campaign target. It must be positive.
	GoalAmount float64 `env:"GOAL_AMOUNT" envDefault:"10000"`
	// MaxDonation caps a single donation accepted through the form. Zero
	// disables the cap.
	MaxDonation float64 `env:"MAX_DONATION" envDefault:"0"`
	// Currency is the ISO 4217 code every amount is expressed in.
	Currency string `env:"CURRENCY" envDefault:"EUR"`
	// Locale is the BCP 47 tag used for display strings when a request does
	// not ask for a supported language.
	Locale string `env:"LOCALE" envDefault:"de"`
}
