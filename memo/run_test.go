package memo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/rememo-dev/rememo/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func TestRun_EvictsSlotNotRevisited(t *testing.T) {
	storage := memo.NewStorage(memo.WithLogger(zap.NewNop()))

	calls := 0
	cached := memo.Bind(
		memo.CellKeyed("answer", func() int {
			calls++
			return 40 + calls
		}),
		memo.Return[int],
	)
	unrelated := memo.Bind(memo.Cell(func() int { return 0 }), memo.Return[int])

	v, err := memo.Run(storage, cached)
	require.NoError(t, err)
	assert.Equal(t, 41, v)

	// Run N+1 never visits the address, so the sweep drops it.
	_, err = memo.Run(storage, unrelated)
	require.NoError(t, err)

	// Run N+2 visits it again: a fresh value, not a stale one.
	v, err = memo.Run(storage, cached)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, calls)
}

func TestRun_FailedRunKeepsStorageConsistent(t *testing.T) {
	storage := memo.NewStorage()

	calls := 0
	cached := memo.Bind(
		memo.Cell(func() int {
			calls++
			return calls
		}),
		memo.Return[int],
	)

	v, err := memo.Run(storage, cached)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// This run reads the slot, then trips a double use and fails.
	cell := memo.Cell(func() int {
		calls++
		return calls
	})
	failing := memo.Bind(cell, func(int) memo.Comp[int] {
		return memo.From(cell)
	})
	_, err = memo.Run(storage, failing)
	require.Error(t, err)

	// Usage flags were cleared without a sweep: the cached slot is intact
	// and a retry against the same storage succeeds.
	v, err = memo.Run(storage, cached)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, calls)
}

func TestRun_RecordsLastRunSpan(t *testing.T) {
	storage := memo.NewStorage()

	assert.Equal(t, memo.TimeSpan{}, storage.LastRun())

	_, err := memo.Run(storage, memo.Return("ok"))
	require.NoError(t, err)

	span := storage.LastRun()
	assert.False(t, span.Start().IsZero())
	assert.GreaterOrEqual(t, span.Duration(), time.Duration(0))
}

func TestRun_IndependentStoragesRunConcurrently(t *testing.T) {
	var g errgroup.Group

	for i := 0; i < 8; i++ {
		g.Go(func() error {
			storage := memo.NewStorage()
			calls := 0
			comp := memo.Bind(
				memo.Cell(func() int {
					calls++
					return calls
				}),
				memo.Return[int],
			)
			for run := 0; run < 3; run++ {
				v, err := memo.Run(storage, comp)
				if err != nil {
					return err
				}
				if v != 1 {
					return errors.New("cached value drifted across runs")
				}
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
