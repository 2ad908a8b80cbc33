package quark

import "sync/atomic"

var lastTransactionID atomic.Uint64

// Transaction coordinates a set of tentative writes. Atoms and computeds keep
// an overlay value per transaction until it is committed or rolled back.
//
// Commit and Rollback are not guarded: resolving a transaction twice fires its
// listeners twice. Every transaction created must eventually be resolved or
// the overlays that reference it are never released.
type Transaction struct {
	id         uint64
	onCommit   Notifier[*Transaction]
	onRollback Notifier[*Transaction]
}

func NewTransaction() *Transaction {
	return &Transaction{id: lastTransactionID.Add(1)}
}

func (tx *Transaction) ID() uint64 {
	return tx.id
}

// Commit fires the commit listeners. Calling it twice fires them twice, but an
// atom or computed swaps in its overlay value only once and an Observe effect
// runs only once per transaction.
func (tx *Transaction) Commit() {
	tx.onCommit.Dispatch(tx)
}

// Rollback fires the rollback listeners. Overlays are dropped on the first call.
func (tx *Transaction) Rollback() {
	tx.onRollback.Dispatch(tx)
}

func (tx *Transaction) OnCommit(fn func(tx *Transaction)) (unsubscribe func()) {
	return tx.onCommit.Add(fn)
}

func (tx *Transaction) OnRollback(fn func(tx *Transaction)) (unsubscribe func()) {
	return tx.onRollback.Add(fn)
}
