package quark

import (
	"fmt"
	"slices"
)

// Children names the atoms and molecules a molecule is built from.
type Children map[string]Dependency

// Snapshot holds one value per child, keyed like Children.
type Snapshot map[string]any

type MoleculeOptions[T, A any] struct {
	// Actions is called once with the molecule's children.
	Actions func(children Children) A
	// Computer derives the molecule's value. When nil the snapshot itself is
	// the value, which requires T to be Snapshot.
	Computer func(values Snapshot) T
}

// Molecule is a computed over named children with actions scoped to them.
type Molecule[T, A any] struct {
	*Computed[T]
	children Children
	actions  A
}

// NewMolecule panics if a child was built on a System other than sys. Batched
// calls only collect writes to atoms of their own System.
func NewMolecule[T, A any](sys *System, children Children, opts MoleculeOptions[T, A]) *Molecule[T, A] {
	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	slices.Sort(names)

	deps := make([]Dependency, len(names))
	for i, name := range names {
		if children[name].system() != sys {
			panic(fmt.Sprintf("quark: molecule child %q belongs to another System", name))
		}
		deps[i] = children[name]
	}

	computer := opts.Computer
	if computer == nil {
		var zero T
		if _, ok := any(Snapshot(nil)).(T); !ok {
			panic(fmt.Sprintf("quark: molecule without a computer must hold Snapshot, not %T", zero))
		}
		computer = func(values Snapshot) T {
			return any(values).(T)
		}
	}

	m := &Molecule[T, A]{
		children: children,
		Computed: NewComputed(sys, deps, func(args []any) T {
			values := make(Snapshot, len(args))
			for i, name := range names {
				values[name] = args[i]
			}
			return computer(values)
		}),
	}
	if opts.Actions != nil {
		m.actions = opts.Actions(children)
	}
	return m
}

func (m *Molecule[T, A]) Children() Children {
	return m.children
}

func (m *Molecule[T, A]) Actions() A {
	return m.actions
}
