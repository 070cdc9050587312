package memo

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Run drives one end-to-end evaluation of c against s: it builds the initial
// Context at the root storage node, evaluates the computation, then sweeps
// unused slots and scopes. The sweep runs only after a successful evaluation;
// on failure every usage flag is cleared instead, leaving all cached values in
// place so the caller may retry against the same storage.
func Run[R any](s *Storage, c Comp[R]) (R, error) {
	runID := uuid.NewString()
	started := time.Now()

	ctx := &Context{storage: s, node: s.root, pos: posOutside}
	out, err := c.eval(ctx)
	if err != nil {
		s.clearFlags()
		s.logger.Debug("run failed",
			zap.String("run_id", runID),
			zap.Error(err),
		)
		var zero R
		return zero, err
	}

	slots, scopes := s.sweep()
	s.rec.evicted(slots, scopes)
	s.lastRun = NewTimeSpan(started, time.Now())
	s.logger.Debug("run complete",
		zap.String("run_id", runID),
		zap.Int("evicted_slots", slots),
		zap.Int("evicted_scopes", scopes),
		zap.Duration("elapsed", s.lastRun.Duration()),
	)
	return out, nil
}
