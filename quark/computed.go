package quark

import "fmt"

// Computed is a read-only value derived from a fixed list of dependencies.
// It subscribes to each dependency once, at construction, for its whole
// lifetime unless Dispose is called.
type Computed[T any] struct {
	cell[T]
	deps   []Dependency
	getter func(args []any) T
	stops  []func()
}

// NewComputed panics if a dependency was built on a System other than sys.
func NewComputed[T any](sys *System, deps []Dependency, getter func(args []any) T) *Computed[T] {
	for i, dep := range deps {
		if dep.system() != sys {
			panic(fmt.Sprintf("quark: computed dependency %d belongs to another System", i))
		}
	}

	c := &Computed[T]{
		deps:   deps,
		getter: getter,
	}
	c.cell = newCell(sys, c.compute(nil))
	c.stops = make([]func(), len(deps))
	for i, dep := range deps {
		c.stops[i] = dep.Subscribe(c.onDependency)
	}
	return c
}

func (c *Computed[T]) compute(tx *Transaction) T {
	args := make([]any, len(c.deps))
	for i, dep := range c.deps {
		args[i] = dep.anyValue(tx)
	}
	return c.getter(args)
}

// onDependency refreshes the overlay for tx, if any, and then always
// recomputes the committed value from the dependencies' committed values.
// The committed value can therefore move while tx is still open.
func (c *Computed[T]) onDependency(tx *Transaction) {
	if tx != nil {
		c.enlist(tx)
		c.overlay[tx] = c.compute(tx)
	}
	c.value = c.compute(nil)
	c.subs.Dispatch(tx)
}

// Dispose drops the dependency subscriptions. The computed keeps its last
// values but no longer follows its dependencies.
func (c *Computed[T]) Dispose() {
	for _, stop := range c.stops {
		stop()
	}
	c.stops = nil
}
