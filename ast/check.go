package ast

import (
	"fmt"
	"strconv"
)

// DiagnosticKind classifies a Check finding.
type DiagnosticKind int

const (
	InvertedBounds DiagnosticKind = iota
	DuplicateGroup
	MissingGroup
)

func (k DiagnosticKind) String() string {
	switch k {
	case InvertedBounds:
		return "inverted-bounds"
	case DuplicateGroup:
		return "duplicate-group"
	case MissingGroup:
		return "missing-group"
	}
	return "unknown"
}

// Diagnostic is a finding about a tree that parses but is likely wrong.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

func (d Diagnostic) String() string {
	return d.Kind.String() + ": " + d.Message
}

// Check reviews e for constructs the grammar accepts without question:
// inverted repetition bounds, reused group numbers and backreferences that
// no group in the tree can satisfy. It never modifies e.
func Check(e Expr) []Diagnostic {
	var (
		diags    []Diagnostic
		groups   int
		numbered = make(map[int]int)
		refs     []string
	)

	Walk(e, func(n Expr) bool {
		switch n := n.(type) {
		case Between:
			if n.Low > n.High {
				diags = append(diags, Diagnostic{
					Kind:    InvertedBounds,
					Message: fmt.Sprintf("repetition lower bound %d exceeds upper bound %d", n.Low, n.High),
				})
			}
		case Group:
			groups++
		case GroupN:
			groups++
			numbered[n.Number]++
			if numbered[n.Number] == 2 {
				diags = append(diags, Diagnostic{
					Kind:    DuplicateGroup,
					Message: fmt.Sprintf("group number %d is used more than once", n.Number),
				})
			}
		case BackRef:
			refs = append(refs, n.Ref)
		}
		return true
	})

	for _, ref := range refs {
		if IsNumericRef(ref) {
			idx, err := strconv.Atoi(ref)
			if err != nil || idx == 0 || idx > groups {
				diags = append(diags, Diagnostic{
					Kind:    MissingGroup,
					Message: fmt.Sprintf("backreference \\%s has no matching group (%d defined)", ref, groups),
				})
			}
			continue
		}
		if !hasGroupNamed(numbered, ref) {
			diags = append(diags, Diagnostic{
				Kind:    MissingGroup,
				Message: fmt.Sprintf("backreference %q has no group of that name", ref),
			})
		}
	}

	return diags
}

func hasGroupNamed(numbered map[int]int, name string) bool {
	for n := range numbered {
		if GroupName(n) == name {
			return true
		}
	}
	return false
}
