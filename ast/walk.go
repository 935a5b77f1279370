package ast

// Children returns the direct sub-expressions of e in order.
func Children(e Expr) []Expr {
	switch n := e.(type) {
	case Seq:
		return n.Exprs
	case Or:
		return n.Exprs
	case ZeroOrOne:
		return n.Exprs
	case ZeroOrMore:
		return n.Exprs
	case ZeroOrMoreReluctant:
		return n.Exprs
	case OneOrMore:
		return n.Exprs
	case OneOrMoreReluctant:
		return n.Exprs
	case Exactly:
		return n.Exprs
	case AtLeast:
		return n.Exprs
	case Between:
		return n.Exprs
	case Group:
		return n.Exprs
	case GroupN:
		return n.Exprs
	case Not:
		return []Expr{n.Atom}
	case Any:
		exprs := make([]Expr, len(n.Atoms))
		for i, a := range n.Atoms {
			exprs[i] = a
		}
		return exprs
	}
	return nil
}

// Walk traverses e in pre-order, calling fn for every node. Children of a
// node are skipped when fn returns false for it.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, c := range Children(e) {
		Walk(c, fn)
	}
}
