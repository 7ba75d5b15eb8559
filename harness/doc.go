// Package harness is a minimal, embeddable test harness for in-process
// test programs.
//
// A program registers named test cases, runs them in registration order,
// and gets one plain-text pass/fail line per case on standard output. There
// is no test discovery, no parallelism, and no lifecycle hooks: the whole
// surface is register, run, report.
//
// # Usage
//
// Register cases against the package-level default registry, typically at
// program start, then run them all:
//
//	harness.Add("addition", func() {
//	    assert.Equal(2+2, 4)
//	})
//
//	harness.NewGroup("Math").
//	    Add("ordering", func() { assert.Lt(1, 2) }).
//	    Add("identity", func() { assert.Equal(7, 7) })
//
//	if err := harness.RunAll(); err != nil {
//	    os.Exit(1)
//	}
//
// An explicitly constructed Registry works the same way and is what tests
// of the harness itself (and the CLI suite runner) use; the default
// registry exists for the common single-registry program.
//
// # Failure model
//
// Assertions signal an unmet condition by panicking with *Failure. The case
// runner absorbs exactly that panic kind, prints the failure line, and the
// run stops at the first failed case. Any other panic is a defect in the
// test code itself and propagates out of Run uncaught, deliberately without
// a per-case failure line: "the assertion failed" and "the test is broken"
// are different outcomes.
//
// # Concurrency
//
// The harness is single-threaded by design. Registration and execution are
// expected to happen from one goroutine; nothing is synchronized.
package harness
