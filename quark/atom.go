package quark

// Setter is the write half of an atom, handed to action builders.
type Setter[T any] interface {
	Set(value T)
	SetTx(tx *Transaction, value T)
	Update(fn func(oldValue T) (T, error)) error
	UpdateTx(tx *Transaction, fn func(oldValue T) (T, error)) error
}

type Atom[T any] struct {
	cell[T]
}

func NewAtom[T any](sys *System, initialValue T) *Atom[T] {
	return &Atom[T]{cell: newCell(sys, initialValue)}
}

// Set writes value into the ambient transaction, or commits it directly when
// no batched call is running.
func (a *Atom[T]) Set(value T) {
	a.SetTx(a.sys.ambient, value)
}

func (a *Atom[T]) SetTx(tx *Transaction, value T) {
	a.UpdateTx(tx, func(T) (T, error) {
		return value, nil
	})
}

func (a *Atom[T]) Update(fn func(oldValue T) (T, error)) error {
	return a.UpdateTx(a.sys.ambient, fn)
}

// UpdateTx derives the next value from the current one. With a non-nil tx the
// result is stored as that transaction's overlay and subscribers are told on
// every write, not just at commit. An error from fn leaves the value as it
// was and is returned unchanged.
func (a *Atom[T]) UpdateTx(tx *Transaction, fn func(oldValue T) (T, error)) error {
	if tx == nil {
		next, err := fn(a.value)
		if err != nil {
			return err
		}
		a.value = next
		a.subs.Dispatch(nil)
		return nil
	}

	next, err := fn(a.enlist(tx))
	if err != nil {
		return err
	}
	a.overlay[tx] = next
	a.subs.Dispatch(tx)
	return nil
}

type AtomWithActions[T, A any] struct {
	*Atom[T]
	actions A
}

// NewAtomWithActions builds the atom's actions once, bound to its own setter.
func NewAtomWithActions[T, A any](
	sys *System,
	initialValue T,
	bind func(set Setter[T]) A,
) *AtomWithActions[T, A] {
	a := &AtomWithActions[T, A]{Atom: NewAtom(sys, initialValue)}
	if bind != nil {
		a.actions = bind(a.Atom)
	}
	return a
}

func (a *AtomWithActions[T, A]) Actions() A {
	return a.actions
}
