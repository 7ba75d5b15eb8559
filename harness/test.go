package harness

import (
	"fmt"
	"io"
)

// Action is the body of a single test case. It signals an assertion failure
// by panicking with *Failure (the assert package does this); any other
// panic is treated as a defect in the test itself.
type Action func()

// testCase pairs a display name with its action. Cases are immutable once
// registered and owned exclusively by their registry.
type testCase struct {
	name   string
	action Action
}

// run executes the case and reports the outcome as one line on w.
//
// A *Failure panic is fully absorbed here; it never travels past run.
// Anything else re-panics so the defect surfaces to the registry caller
// without a per-case failure line.
func (c testCase) run(w io.Writer) (passed bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		f, ok := r.(*Failure)
		if !ok {
			panic(r)
		}
		fmt.Fprintf(w, "Test %s failed: %s\n", c.name, f.Message)
	}()

	c.action()
	fmt.Fprintf(w, "Test %s passed.\n", c.name)
	return true
}
