package jobs

import (
	"log/slog"
	"time"
)

// Sweeper drops expired entries from an in-process OTP store.
type Sweeper interface {
	Sweep(now time.Time) int
}

// OTPSweep returns a task that sweeps store and logs how much it removed.
func OTPSweep(store Sweeper, logger *slog.Logger, now func() time.Time) func() {
	return func() {
		if n := store.Sweep(now()); n > 0 {
			logger.Debug("expired otps swept", "removed", n)
		}
	}
}
