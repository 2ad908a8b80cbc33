package quark_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/delaneyj/quark/quark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func increment(v int) (int, error) {
	return v + 1, nil
}

func TestAtomSetGet(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 0)

	a.Set(7)
	assert.Equal(t, 7, a.Get())

	require.NoError(t, a.Update(increment))
	require.NoError(t, a.Update(increment))
	assert.Equal(t, 9, a.Get())
}

func TestAtomUpdateErrorKeepsValue(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 1)
	errBad := errors.New("bad")
	notified := 0
	a.Subscribe(func(*quark.Transaction) { notified++ })

	err := a.Update(func(int) (int, error) { return 99, errBad })
	assert.ErrorIs(t, err, errBad)
	assert.Equal(t, 1, a.Get())
	assert.Equal(t, 0, notified)

	tx := quark.NewTransaction()
	a.SetTx(tx, 2)
	err = a.UpdateTx(tx, func(int) (int, error) { return 99, errBad })
	assert.ErrorIs(t, err, errBad)
	assert.Equal(t, 2, a.GetTx(tx))
	tx.Commit()
	assert.Equal(t, 2, a.Get())
}

func TestAtomOverlayIsolation(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 1)
	tx := quark.NewTransaction()

	a.SetTx(tx, 5)
	require.NoError(t, a.UpdateTx(tx, increment))

	assert.Equal(t, 6, a.GetTx(tx))
	assert.Equal(t, 1, a.Get())
	assert.Equal(t, 1, a.GetTx(quark.NewTransaction()), "unrelated transaction sees committed value")

	tx.Commit()
	assert.Equal(t, 6, a.Get())
	assert.Equal(t, 6, a.GetTx(tx))
}

func TestAtomRollback(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 1)
	tx := quark.NewTransaction()

	a.SetTx(tx, 5)
	tx.Rollback()
	assert.Equal(t, 1, a.Get())
	assert.Equal(t, 1, a.GetTx(tx))
}

func TestAtomIndependentTransactions(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 0)
	tx1, tx2 := quark.NewTransaction(), quark.NewTransaction()

	a.SetTx(tx1, 10)
	a.SetTx(tx2, 20)
	assert.Equal(t, 10, a.GetTx(tx1))
	assert.Equal(t, 20, a.GetTx(tx2))
	assert.Equal(t, 0, a.Get())

	tx2.Rollback()
	tx1.Commit()
	assert.Equal(t, 10, a.Get())
}

func TestAtomNotifiesEveryTransactionalWrite(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 0)
	tx := quark.NewTransaction()
	var seen []*quark.Transaction
	a.Subscribe(func(tx *quark.Transaction) { seen = append(seen, tx) })

	a.SetTx(tx, 1)
	a.SetTx(tx, 2)
	a.Set(3)

	assert.Equal(t, []*quark.Transaction{tx, tx, nil}, seen)
}

func TestAtomUnsubscribe(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 0)
	calls := 0
	stop := a.Subscribe(func(*quark.Transaction) { calls++ })

	a.Set(1)
	stop()
	a.Set(2)
	assert.Equal(t, 1, calls)
}

func TestSelect(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtom(sys, 42)
	tx := quark.NewTransaction()
	a.SetTx(tx, 7)

	assert.Equal(t, "42", quark.Select(a, nil, strconv.Itoa))
	assert.Equal(t, "7", quark.Select(a, tx, strconv.Itoa))
}

type counterActions struct {
	Increment func() error
	Reset     func()
}

func TestAtomWithActions(t *testing.T) {
	sys := quark.NewSystem()
	binds := 0
	counter := quark.NewAtomWithActions(sys, 0, func(set quark.Setter[int]) counterActions {
		binds++
		return counterActions{
			Increment: func() error { return set.Update(increment) },
			Reset:     func() { set.Set(0) },
		}
	})

	require.NoError(t, counter.Actions().Increment())
	require.NoError(t, counter.Actions().Increment())
	assert.Equal(t, 2, counter.Get())

	counter.Actions().Reset()
	assert.Equal(t, 0, counter.Get())
	assert.Equal(t, 1, binds)
}

func TestAtomWithoutActions(t *testing.T) {
	sys := quark.NewSystem()
	a := quark.NewAtomWithActions[int, struct{}](sys, 3, nil)
	assert.Equal(t, struct{}{}, a.Actions())
	assert.Equal(t, 3, a.Get())
}
