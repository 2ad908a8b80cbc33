package quark

// Dependency is the untyped view of an observable that computeds and
// molecules subscribe to. A dependency belongs to the System it was built on.
type Dependency interface {
	Subscribe(fn func(tx *Transaction)) (unsubscribe func())
	anyValue(tx *Transaction) any
	system() *System
}

type Observable[T any] interface {
	Dependency
	Get() T
	GetTx(tx *Transaction) T
}

// Select reads o through fn. A nil tx, or one that never wrote to o, reads
// the committed value.
func Select[T, R any](o Observable[T], tx *Transaction, fn func(T) R) R {
	return fn(o.GetTx(tx))
}

// cell holds a committed value and the per-transaction overlays on top of it.
type cell[T any] struct {
	sys     *System
	value   T
	overlay map[*Transaction]T
	subs    Notifier[*Transaction]
}

func newCell[T any](sys *System, value T) cell[T] {
	return cell[T]{
		sys:     sys,
		value:   value,
		overlay: map[*Transaction]T{},
	}
}

func (c *cell[T]) system() *System {
	return c.sys
}

func (c *cell[T]) Get() T {
	return c.value
}

func (c *cell[T]) GetTx(tx *Transaction) T {
	if tx != nil {
		if v, ok := c.overlay[tx]; ok {
			return v
		}
	}
	return c.value
}

func (c *cell[T]) anyValue(tx *Transaction) any {
	return c.GetTx(tx)
}

func (c *cell[T]) Subscribe(fn func(tx *Transaction)) (unsubscribe func()) {
	return c.subs.Add(fn)
}

// enlist returns the overlay value for tx. The first call for a transaction
// seeds the overlay from the committed value and hooks its resolution.
func (c *cell[T]) enlist(tx *Transaction) T {
	if v, ok := c.overlay[tx]; ok {
		return v
	}
	c.overlay[tx] = c.value
	tx.OnCommit(func(tx *Transaction) {
		if v, ok := c.overlay[tx]; ok {
			c.value = v
			delete(c.overlay, tx)
		}
	})
	tx.OnRollback(func(tx *Transaction) {
		delete(c.overlay, tx)
	})
	return c.value
}

func (c *cell[T]) pending() int {
	return len(c.overlay)
}
