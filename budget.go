package dashmcp

import "reflect"

// Token budget defaults shared by the list-shaped operations.
// One token is roughly TokenCharRatio characters of serialized output.
const (
	DefaultTokenLimit   = 25000
	DefaultBaseOverhead = 100
	TokenCharRatio      = 4
)

// Budgeted is an ordered prefix of a result list capped by a token
// budget. Invariants: Returned <= Total, Items holds exactly the first
// Returned input items in original order, and Truncated is true iff
// Returned < Total.
type Budgeted[T any] struct {
	Items     []T
	Truncated bool
	Returned  int
	Total     int
}

// BudgetItems caps items under a token budget. Starting from
// baseOverhead, items are admitted in original order until the next one
// would push the running total past limit; everything after the cutoff
// is dropped. The prefix cutoff is deliberate: it is stable and
// reproducible, unlike sampling or proportional downsizing.
//
// Running BudgetItems on its own output with the same limit returns the
// output unchanged.
func BudgetItems[T any](items []T, limit, baseOverhead int) Budgeted[T] {
	used := baseOverhead
	kept := make([]T, 0, len(items))
	for _, item := range items {
		cost := EstimateTokens(item)
		if used+cost > limit {
			break
		}
		kept = append(kept, item)
		used += cost
	}
	return Budgeted[T]{
		Items:     kept,
		Truncated: len(kept) < len(items),
		Returned:  len(kept),
		Total:     len(items),
	}
}

// EstimateTokens approximates the serialized size of v in tokens without
// an exact serialization pass. Every string contributes its character
// count divided by TokenCharRatio, rounded up; structs, slices, maps,
// and pointers are walked recursively. The estimate is never below one
// token per item.
func EstimateTokens(v any) int {
	n := estimate(reflect.ValueOf(v))
	if n < 1 {
		n = 1
	}
	return n
}

func estimate(v reflect.Value) int {
	switch v.Kind() {
	case reflect.String:
		l := v.Len()
		if l == 0 {
			return 0
		}
		return (l + TokenCharRatio - 1) / TokenCharRatio
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return estimate(v.Elem())
	case reflect.Struct:
		n := 0
		for i := 0; i < v.NumField(); i++ {
			n += estimate(v.Field(i))
		}
		return n
	case reflect.Slice, reflect.Array:
		n := 0
		for i := 0; i < v.Len(); i++ {
			n += estimate(v.Index(i))
		}
		return n
	case reflect.Map:
		n := 0
		iter := v.MapRange()
		for iter.Next() {
			n += estimate(iter.Key()) + estimate(iter.Value())
		}
		return n
	default:
		return 0
	}
}
