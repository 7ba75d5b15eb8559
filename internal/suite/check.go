package suite

import (
	"cmp"

	"github.com/roach88/attest/assert"
	"github.com/roach88/attest/harness"
)

// action builds the harness action for a case. Dispatch happens inside the
// returned closure so a check's failure is raised at run time, through the
// same assertion path an embedded caller would use.
func (c Case) action() harness.Action {
	check := c.Check
	left, right := normalize(c.Left), normalize(c.Right)
	value := c.Value

	return func() {
		switch check {
		case CheckTrue:
			assert.True(value.(bool))
		case CheckFalse:
			assert.False(value.(bool))
		default:
			binary(check, left, right)
		}
	}
}

// binary dispatches a two-operand check over the common scalar kind of the
// operands. Validation has already guaranteed the kinds line up.
func binary(check string, left, right any) {
	switch l := left.(type) {
	case int64:
		ordered(check, l, right.(int64))
	case float64:
		ordered(check, l, right.(float64))
	case string:
		ordered(check, l, right.(string))
	case bool:
		// Only the equality checks admit bools.
		if check == CheckEqual {
			assert.Equal(l, right.(bool))
		} else {
			assert.NotEqual(l, right.(bool))
		}
	}
}

func ordered[T cmp.Ordered](check string, left, right T) {
	switch check {
	case CheckEqual:
		assert.Equal(left, right)
	case CheckNotEqual:
		assert.NotEqual(left, right)
	case CheckLt:
		assert.Lt(left, right)
	case CheckLte:
		assert.Lte(left, right)
	case CheckGt:
		assert.Gt(left, right)
	case CheckGte:
		assert.Gte(left, right)
	}
}
