package decls

import (
	"github.com/lhaig/hs2v/internal/gallina"
)

// GroupKind classifies a mutually recursive cluster
type GroupKind int

const (
	// Inductives is one or more data types and no synonyms
	Inductives GroupKind = iota
	// Synonym is a single type synonym
	Synonym
	// Synonyms is several mutually recursive synonyms and no data types
	Synonyms
	// Mixed has at least one data type and at least one synonym
	Mixed
)

// String returns the string representation of the group kind
func (k GroupKind) String() string {
	switch k {
	case Inductives:
		return "inductives"
	case Synonym:
		return "synonym"
	case Synonyms:
		return "synonyms"
	case Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Group is one maximal mutually recursive cluster of declarations
type Group struct {
	Kind       GroupKind
	Inductives []*gallina.IndBody
	Synonyms   []*SynBody
}

// Names lists the names the group introduces, inductives first
func (g *Group) Names() []string {
	names := make([]string, 0, len(g.Inductives)+len(g.Synonyms))
	for _, ind := range g.Inductives {
		names = append(names, ind.Name)
	}
	for _, syn := range g.Synonyms {
		names = append(names, syn.Name)
	}
	return names
}

// GroupDeclarations clusters decls into strongly connected components of
// their reference graph. An edge u -> v exists when u references v's name
// and v is part of decls. Groups are ordered so that a group only
// references names of groups at or before its own position; members of a
// group appear in depth-first discovery order.
func GroupDeclarations(decls []Declaration) []*Group {
	index := make(map[string]int, len(decls))
	for i, d := range decls {
		if _, dup := index[d.Name()]; !dup {
			index[d.Name()] = i
		}
	}

	edges := make([][]int, len(decls))
	for u, d := range decls {
		fv := d.FreeVars()
		for v, other := range decls {
			if fv.Has(other.Name()) && index[other.Name()] == v {
				edges[u] = append(edges[u], v)
			}
		}
	}

	var groups []*Group
	for _, comp := range stronglyConnected(len(decls), edges) {
		members := make([]Declaration, len(comp))
		for i, n := range comp {
			members[i] = decls[n]
		}
		groups = append(groups, classify(members))
	}
	return groups
}

// stronglyConnected runs Tarjan's algorithm. Components are returned in
// completion order, which puts every component after the components it
// has edges into.
func stronglyConnected(n int, edges [][]int) [][]int {
	const unvisited = -1
	order := make([]int, n)
	low := make([]int, n)
	onStack := make([]bool, n)
	for i := range order {
		order[i] = unvisited
	}
	var stack []int
	var comps [][]int
	counter := 0

	var visit func(u int)
	visit = func(u int) {
		order[u] = counter
		low[u] = counter
		counter++
		stack = append(stack, u)
		onStack[u] = true

		for _, v := range edges[u] {
			switch {
			case order[v] == unvisited:
				visit(v)
				low[u] = min(low[u], low[v])
			case onStack[v]:
				low[u] = min(low[u], order[v])
			}
		}

		if low[u] != order[u] {
			return
		}
		start := len(stack) - 1
		for stack[start] != u {
			start--
		}
		comp := append([]int(nil), stack[start:]...)
		for _, w := range comp {
			onStack[w] = false
		}
		stack = stack[:start]
		comps = append(comps, comp)
	}

	for u := 0; u < n; u++ {
		if order[u] == unvisited {
			visit(u)
		}
	}
	return comps
}

// classify folds the members of one component into a group
func classify(members []Declaration) *Group {
	g := &Group{}
	empty := true
	for _, m := range members {
		if m.Ind != nil {
			switch {
			case empty:
				g.Kind = Inductives
			case g.Kind == Synonym || g.Kind == Synonyms:
				g.Kind = Mixed
			}
			g.Inductives = append(g.Inductives, m.Ind)
		} else {
			switch {
			case empty:
				g.Kind = Synonym
			case g.Kind == Synonym:
				g.Kind = Synonyms
			case g.Kind == Inductives:
				g.Kind = Mixed
			}
			g.Synonyms = append(g.Synonyms, m.Syn)
		}
		empty = false
	}
	return g
}
