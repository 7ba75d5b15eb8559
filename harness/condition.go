package harness

import (
	"fmt"
	"strings"
)

// Evaluate runs pred over operands and panics with a *Failure when the
// predicate reports false. It is the single failure-reporting mechanism
// every assertion in the assert package is built on.
//
// The failure message is "Condition {name} not met. " and, when verbose is
// true, additionally embeds the operand values in invocation order,
// comma-separated and parenthesized: "Values were (3, 4).".
//
// The predicate must not panic. If it does, the panic propagates
// unmodified: a broken comparison is a defect, not an assertion failure.
func Evaluate[T any](name string, pred func(operands ...T) bool, verbose bool, operands ...T) {
	if pred(operands...) {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Condition %s not met. ", name)
	if verbose {
		values := make([]string, len(operands))
		for i, op := range operands {
			values[i] = fmt.Sprintf("%v", op)
		}
		fmt.Fprintf(&b, "Values were (%s).", strings.Join(values, ", "))
	}

	panic(&Failure{Message: b.String()})
}
