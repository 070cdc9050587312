package memo_test

import (
	"testing"

	"github.com/rememo-dev/rememo/memo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_StableAcrossIdenticalRuns(t *testing.T) {
	comp := memo.Bind(memo.Scoped("panel", memo.Bind(
		memo.CellKeyed("text", func() string { return "hello" }),
		memo.Return[string],
	)), memo.Return[string])

	left := memo.NewStorage()
	right := memo.NewStorage()

	_, err := memo.Run(left, comp)
	require.NoError(t, err)
	_, err = memo.Run(right, comp)
	require.NoError(t, err)

	assert.Equal(t, left.Fingerprint(), right.Fingerprint(),
		"same retained shape must fingerprint identically")

	before := left.Fingerprint()
	_, err = memo.Run(left, comp)
	require.NoError(t, err)
	assert.Equal(t, before, left.Fingerprint(), "an unchanged run must keep the shape")
}

func TestFingerprint_ChangesWhenShapeChanges(t *testing.T) {
	storage := memo.NewStorage()

	wide := memo.Bind(memo.CellKeyed("a", func() int { return 1 }), func(int) memo.Comp[int] {
		return memo.Bind(memo.CellKeyed("b", func() int { return 2 }), memo.Return[int])
	})
	narrow := memo.Bind(memo.CellKeyed("a", func() int { return 1 }), memo.Return[int])

	_, err := memo.Run(storage, wide)
	require.NoError(t, err)
	before := storage.Fingerprint()

	_, err = memo.Run(storage, narrow)
	require.NoError(t, err)
	assert.NotEqual(t, before, storage.Fingerprint(),
		"evicting a slot must change the fingerprint")
}

func TestFingerprint_EmptyStorage(t *testing.T) {
	assert.Equal(t, memo.NewStorage().Fingerprint(), memo.NewStorage().Fingerprint())
}
