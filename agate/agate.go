// Package agate declares the catalog of arithmetic gate operation labels used
// by circuit producers in this ecosystem. The Bristol codec treats operation
// labels as opaque strings; this catalog exists for tools that want to check
// a circuit against the known set before handing it to an evaluator.
package agate

// Known arithmetic gate operation labels.
const (
	AAdd     = "AAdd"
	ADiv     = "ADiv"
	AEq      = "AEq"
	AGEq     = "AGEq"
	AGt      = "AGt"
	ALEq     = "ALEq"
	ALt      = "ALt"
	AMul     = "AMul"
	ANeq     = "ANeq"
	ASub     = "ASub"
	AXor     = "AXor"
	APow     = "APow"
	AIntDiv  = "AIntDiv"
	AMod     = "AMod"
	AShiftL  = "AShiftL"
	AShiftR  = "AShiftR"
	ABoolOr  = "ABoolOr"
	ABoolAnd = "ABoolAnd"
	ABitOr   = "ABitOr"
	ABitAnd  = "ABitAnd"
)

var list = []string{
	AAdd, ADiv, AEq, AGEq, AGt, ALEq, ALt, AMul, ANeq, ASub,
	AXor, APow, AIntDiv, AMod, AShiftL, AShiftR, ABoolOr, ABoolAnd, ABitOr, ABitAnd,
}

var known = func() map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, op := range list {
		m[op] = struct{}{}
	}
	return m
}()

// IsKnown reports whether op is in the catalog.
func IsKnown(op string) bool {
	_, ok := known[op]
	return ok
}

// List returns the catalog in declaration order. The caller must not modify
// the returned slice.
func List() []string {
	return list
}
