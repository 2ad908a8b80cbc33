package quark

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Observe runs effect with o's current value, then again whenever o's
// committed value changes. Writes made under a transaction run the effect
// once, after that transaction commits; a rollback runs nothing. Effect errors
// and panics are logged and never reach the caller.
func Observe[T any](o Observable[T], effect func(value T) error) (unsubscribe func()) {
	sys := o.system()
	run := func() {
		defer func() {
			if r := recover(); r != nil {
				sys.reportEffectError(o, fmt.Errorf("%w: %v", ErrEffectPanic, r))
			}
		}()
		if err := effect(o.Get()); err != nil {
			sys.reportEffectError(o, err)
		}
	}

	run()

	pending := mapset.NewThreadUnsafeSet[*Transaction]()
	return o.Subscribe(func(tx *Transaction) {
		if tx == nil {
			run()
			return
		}
		if !pending.Add(tx) {
			return
		}
		tx.OnCommit(func(tx *Transaction) {
			if !pending.Contains(tx) {
				return
			}
			run()
			pending.Remove(tx)
		})
		tx.OnRollback(func(tx *Transaction) {
			pending.Remove(tx)
		})
	})
}
