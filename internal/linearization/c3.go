// Package linearization implements the C3 algorithm: given a set
// of contract definitions with explicit base lists, it computes each
// contract's method resolution order (MRO) and exposes per-class function
// and variable registration side tables. Grounded on the original
// nysa/src/c3.rs and nysa/src/linearization.rs, which in turn wrap the
// c3_lang_linearization crate's `C3` type; this package reimplements the
// same two-table (class graph + fn/var registry) shape natively.
package linearization

import "fmt"

// ErrInconsistentHierarchy is returned when no linearization respecting
// every parent's local precedence order and every direct-parent list exists
// (a diamond with incompatible ancestors).
type ErrInconsistentHierarchy struct {
	Class string
}

func (e *ErrInconsistentHierarchy) Error() string {
	return fmt.Sprintf("cannot linearize %q: inconsistent hierarchy", e.Class)
}

// ErrMissingBase is returned when a contract declares a base that was never
// registered.
type ErrMissingBase struct {
	Class, Base string
}

func (e *ErrMissingBase) Error() string {
	return fmt.Sprintf("contract %q: missing base contract %q", e.Class, e.Base)
}

// C3 holds the class graph plus per-class function/variable registries
// accumulated after linearization.
type C3 struct {
	bases     map[string][]string // class -> direct parents, in Solidity declaration order
	order     []string            // registration order, for deterministic all_classes()
	mro       map[string][]string // memoized linearize() result per class
	functions map[string]map[string]bool
	variables map[string]map[string]bool
}

// New returns an empty C3 graph.
func New() *C3 {
	return &C3{
		bases:     map[string][]string{},
		mro:       map[string][]string{},
		functions: map[string]map[string]bool{},
		variables: map[string]map[string]bool{},
	}
}

// Add registers a class and its direct parents (leftmost-first, matching
// Solidity's `contract C is A, B` declaration order). Calling Add twice for
// the same class overwrites its parent list.
func (c *C3) Add(class string, bases []string) {
	if _, exists := c.bases[class]; !exists {
		c.order = append(c.order, class)
	}
	cp := make([]string, len(bases))
	copy(cp, bases)
	c.bases[class] = cp
}

// AllClasses returns every registered class, in registration order.
func (c *C3) AllClasses() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Path returns class's MRO, starting with class itself and ending with its
// most abstract ancestor.
// The result is memoized: linearization is deterministic.
func (c *C3) Path(class string) ([]string, error) {
	if p, ok := c.mro[class]; ok {
		return p, nil
	}
	p, err := c.linearize(class, map[string]bool{})
	if err != nil {
		return nil, err
	}
	c.mro[class] = p
	return p, nil
}

func (c *C3) linearize(class string, visiting map[string]bool) ([]string, error) {
	if visiting[class] {
		return nil, &ErrInconsistentHierarchy{Class: class}
	}
	bases, ok := c.bases[class]
	if !ok {
		return nil, &ErrMissingBase{Class: class, Base: class}
	}
	if len(bases) == 0 {
		return []string{class}, nil
	}

	visiting[class] = true
	defer delete(visiting, class)

	sequences := make([][]string, 0, len(bases)+1)
	for _, b := range bases {
		if _, ok := c.bases[b]; !ok {
			return nil, &ErrMissingBase{Class: class, Base: b}
		}
		p, err := c.linearize(b, visiting)
		if err != nil {
			return nil, err
		}
		sequences = append(sequences, p)
	}
	sequences = append(sequences, append([]string{}, bases...))

	merged, err := merge(sequences)
	if err != nil {
		return nil, &ErrInconsistentHierarchy{Class: class}
	}
	return append([]string{class}, merged...), nil
}

// merge implements the C3 merge step: repeatedly take a head that appears
// in no other sequence's tail.
func merge(sequences [][]string) ([]string, error) {
	var result []string
	seqs := make([][]string, 0, len(sequences))
	for _, s := range sequences {
		if len(s) > 0 {
			seqs = append(seqs, append([]string{}, s...))
		}
	}

	for len(seqs) > 0 {
		var head string
		found := false
		for _, s := range seqs {
			head = s[0]
			inTail := false
			for _, other := range seqs {
				if containsInTail(other, head) {
					inTail = true
					break
				}
			}
			if !inTail {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("inconsistent hierarchy")
		}

		result = append(result, head)
		next := seqs[:0]
		for _, s := range seqs {
			filtered := removeHead(s, head)
			if len(filtered) > 0 {
				next = append(next, filtered)
			}
		}
		seqs = next
	}
	return result, nil
}

func containsInTail(seq []string, v string) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i] == v {
			return true
		}
	}
	return false
}

func removeHead(seq []string, v string) []string {
	if len(seq) > 0 && seq[0] == v {
		return seq[1:]
	}
	return seq
}

// RegisterFn records that class declares a function with the given logical
// name.
func (c *C3) RegisterFn(class, fnName string) {
	if c.functions[class] == nil {
		c.functions[class] = map[string]bool{}
	}
	c.functions[class][fnName] = true
}

// RegisterVar records that class declares a state variable with the given
// name.
func (c *C3) RegisterVar(class, varName string) {
	if c.variables[class] == nil {
		c.variables[class] = map[string]bool{}
	}
	c.variables[class][varName] = true
}

// Functions returns the union of function names declared anywhere along
// class's MRO.
func (c *C3) Functions(class string) ([]string, error) {
	path, err := c.Path(class)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var out []string
	for _, cls := range path {
		for name := range c.functions[cls] {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out, nil
}

// FindTopLevelContracts applies the spec's heuristic (§4.1): the
// last-declared class is the primary; repeatedly subtract its MRO from the
// remaining class set and pick another until the set is empty.
func (c *C3) FindTopLevelContracts(classes []string) ([]string, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("no contract found")
	}

	remaining := map[string]bool{}
	for _, cl := range classes {
		remaining[cl] = true
	}

	current := classes[len(classes)-1]
	result := []string{current}

	for len(remaining) > 0 {
		path, err := c.Path(current)
		if err != nil {
			return nil, err
		}
		for _, p := range path {
			delete(remaining, p)
		}
		if len(remaining) == 0 {
			break
		}
		// pick any remaining class deterministically: the last one in the
		// original declaration order that's still present.
		next := ""
		for _, cl := range classes {
			if remaining[cl] {
				next = cl
			}
		}
		if next == "" {
			break
		}
		current = next
		result = append(result, current)
	}
	return result, nil
}
