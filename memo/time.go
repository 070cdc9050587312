package memo

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan reports the wall-clock extent of a run.
type TimeSpan = timespan.TimeSpan

// NewTimeSpan builds the span between two instants.
func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}
