package scheduler

import (
	"github.com/tendrilgames/chronoframe/logger"
	"github.com/tendrilgames/chronoframe/notifications"
)

// skewThresholdUs is a few microseconds: a negative delta smaller in
// magnitude than this is ordinary scheduling noise, not a sign the clock
// went backwards.
const skewThresholdUs = 5

// reportSkew logs and, if a broadcaster is attached, notifies observers of
// a TimeSkewWarning when deltaUs is negative beyond skewThresholdUs.
// Execution always proceeds regardless — this is purely observational.
func reportSkew(notify *notifications.Broadcaster, scheduledUs, deltaUs int64) {
	if deltaUs > -skewThresholdUs {
		return
	}
	logger.Logf(logger.Allow, "scheduler", "time skew: trigger scheduled for %d fired %dus early", scheduledUs, -deltaUs)
	if notify != nil {
		_ = notify.Notify(notifications.NotifyTimeSkew, scheduledUs, deltaUs)
	}
}
