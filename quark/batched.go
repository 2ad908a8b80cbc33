package quark

// Batched wraps fn so that every unqualified atom write it makes lands in one
// transaction. The outermost call owns that transaction: it commits when fn
// succeeds. A failure at any depth, an error or a panic, rolls the ambient
// transaction back at once and clears the slot, so the transaction resolves
// exactly once. Errors are returned unchanged and panics are re-raised. An
// fn that never returns, such as one calling runtime.Goexit, also rolls back.
//
// Only atoms built on sys are batched; writes to atoms of another System
// commit immediately.
func Batched[R any](sys *System, fn func() (R, error)) func() (R, error) {
	return func() (result R, err error) {
		var owned *Transaction
		if sys.ambient == nil {
			owned = NewTransaction()
			sys.ambient = owned
			sys.logger.Debug("transaction started", "tx", owned.ID())
		}

		completed := false
		defer func() {
			if completed {
				return
			}
			r := recover()
			sys.abort()
			if r != nil {
				panic(r)
			}
		}()

		result, err = fn()
		completed = true
		if err != nil {
			sys.abort()
			return result, err
		}

		if owned != nil && sys.ambient == owned {
			sys.ambient = nil
			owned.Commit()
			sys.logger.Debug("transaction committed", "tx", owned.ID())
		}
		return result, nil
	}
}

// Batch runs fn immediately as a batched call.
func Batch(sys *System, fn func() error) error {
	_, err := Batched(sys, func() (struct{}, error) {
		return struct{}{}, fn()
	})()
	return err
}

func (sys *System) abort() {
	tx := sys.ambient
	if tx == nil {
		return
	}
	sys.ambient = nil
	tx.Rollback()
	sys.logger.Debug("transaction rolled back", "tx", tx.ID())
}
