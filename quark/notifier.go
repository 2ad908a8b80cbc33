package quark

type notifierEntry[A any] struct {
	fn func(A)
}

// Notifier is an ordered list of callbacks. The same function added twice is
// called twice.
type Notifier[A any] struct {
	subs []*notifierEntry[A]
}

// Add appends fn and returns a function removing that registration.
func (n *Notifier[A]) Add(fn func(A)) (remove func()) {
	e := &notifierEntry[A]{fn: fn}
	n.subs = append(n.subs, e)
	return func() {
		n.remove(e)
	}
}

// remove swaps in a fresh slice so a dispatch already iterating the old one
// is unaffected.
func (n *Notifier[A]) remove(e *notifierEntry[A]) {
	for i, sub := range n.subs {
		if sub == e {
			next := make([]*notifierEntry[A], 0, len(n.subs)-1)
			next = append(next, n.subs[:i]...)
			next = append(next, n.subs[i+1:]...)
			n.subs = next
			return
		}
	}
}

// Dispatch calls the callbacks registered when it starts, in order. A
// panicking callback aborts the remaining calls.
func (n *Notifier[A]) Dispatch(arg A) {
	subs := n.subs[:len(n.subs):len(n.subs)]
	for _, sub := range subs {
		sub.fn(arg)
	}
}

func (n *Notifier[A]) Len() int {
	return len(n.subs)
}
