package quark_test

import (
	"errors"
	"runtime"
	"testing"

	"github.com/delaneyj/quark/quark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestBatchedFailureRestoresValues(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 1)
	b := quark.NewAtom(sys, 1)

	err := quark.Batch(sys, func() error {
		a.Set(5)
		b.Set(6)
		return errBoom
	})

	assert.Same(t, errBoom, err)
	assert.Equal(t, 1, a.Get())
	assert.Equal(t, 1, b.Get())
	assert.Nil(t, sys.Ambient())
}

func TestBatchedSuccessCommits(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 1)
	b := quark.NewAtom(sys, 1)

	err := quark.Batch(sys, func() error {
		a.Set(5)
		require.NoError(t, b.Update(increment))
		require.NoError(t, b.Update(increment))
		assert.Equal(t, 1, a.Get(), "committed value untouched inside the batch")
		assert.Equal(t, 3, b.GetTx(sys.Ambient()))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 5, a.Get())
	assert.Equal(t, 3, b.Get())
	assert.Nil(t, sys.Ambient())
}

func TestBatchedReturnsResult(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 2)
	square := quark.Batched(sys, func() (int, error) {
		a.Set(a.Get() * a.Get())
		return a.GetTx(sys.Ambient()), nil
	})

	got, err := square()
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = square()
	require.NoError(t, err)
	assert.Equal(t, 16, got)
}

func TestBatchedNestedCommitsOnce(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 0)
	commits := 0

	err := quark.Batch(sys, func() error {
		outer := sys.Ambient()
		require.NotNil(t, outer)
		outer.OnCommit(func(*quark.Transaction) { commits++ })

		a.Set(1)
		err := quark.Batch(sys, func() error {
			assert.Same(t, outer, sys.Ambient())
			a.Set(2)
			return nil
		})
		require.NoError(t, err)

		assert.Same(t, outer, sys.Ambient())
		assert.Equal(t, 0, commits)
		assert.Equal(t, 0, a.Get())
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, commits)
	assert.Equal(t, 2, a.Get())
}

func TestBatchedNestedFailureRollsBackOnce(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 0)
	commits, rollbacks := 0, 0

	err := quark.Batch(sys, func() error {
		tx := sys.Ambient()
		tx.OnCommit(func(*quark.Transaction) { commits++ })
		tx.OnRollback(func(*quark.Transaction) { rollbacks++ })

		a.Set(1)
		err := quark.Batch(sys, func() error {
			a.Set(2)
			return errBoom
		})
		assert.ErrorIs(t, err, errBoom)
		assert.Nil(t, sys.Ambient())
		return err
	})

	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 0, commits)
	assert.Equal(t, 1, rollbacks)
	assert.Equal(t, 0, a.Get())
}

func TestBatchedPanicRollsBack(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 1)

	assert.PanicsWithValue(t, "boom", func() {
		quark.Batch(sys, func() error {
			a.Set(5)
			panic("boom")
		})
	})
	assert.Equal(t, 1, a.Get())
	assert.Nil(t, sys.Ambient())
}

func TestBatchedExplicitTransactionIgnoresAmbient(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 0)
	tx := quark.NewTransaction()

	err := quark.Batch(sys, func() error {
		a.SetTx(tx, 7)
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 7, a.GetTx(tx))

	tx.Commit()
	assert.Equal(t, 7, a.Get())
}

func TestBatchedGoexitRollsBack(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 0)
	rollbacks := 0

	done := make(chan struct{})
	go func() {
		defer close(done)
		quark.Batch(sys, func() error {
			sys.Ambient().OnRollback(func(*quark.Transaction) { rollbacks++ })
			a.Set(5)
			runtime.Goexit()
			return nil
		})
	}()
	<-done

	assert.Nil(t, sys.Ambient())
	assert.Equal(t, 1, rollbacks)
	assert.Equal(t, 0, a.Get())

	a.Set(9)
	assert.Equal(t, 9, a.Get(), "later writes commit immediately")
}

func TestBatched2PassesArguments(t *testing.T) {
	sys := quark.NewSystem()
	first := quark.NewAtom(sys, "")
	last := quark.NewAtom(sys, "")

	rename := quark.Batched2(sys, func(f, l string) (string, error) {
		first.Set(f)
		last.Set(l)
		assert.Equal(t, "", first.Get(), "committed value untouched inside the batch")
		return first.GetTx(sys.Ambient()) + " " + last.GetTx(sys.Ambient()), nil
	})

	got, err := rename("Ada", "Lovelace")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got)
	assert.Equal(t, "Ada", first.Get())
	assert.Equal(t, "Lovelace", last.Get())
	assert.Nil(t, sys.Ambient())
}

func TestBatched3FailureRollsBack(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 1)
	b := quark.NewAtom(sys, 1)

	var seen []int
	assign := quark.Batched3(sys, func(x, y int, fail bool) (int, error) {
		seen = append(seen, x, y)
		a.Set(x)
		b.Set(y)
		if fail {
			return x + y, errBoom
		}
		return x + y, nil
	})

	got, err := assign(5, 6, true)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 11, got)
	assert.Equal(t, []int{5, 6}, seen)
	assert.Equal(t, 1, a.Get())
	assert.Equal(t, 1, b.Get())
	assert.Nil(t, sys.Ambient())

	got, err = assign(7, 8, false)
	require.NoError(t, err)
	assert.Equal(t, 15, got)
	assert.Equal(t, 7, a.Get())
	assert.Equal(t, 8, b.Get())
}
