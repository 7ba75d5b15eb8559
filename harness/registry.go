package harness

import (
	"errors"
	"io"
	"log/slog"
	"os"
)

// ErrFailed is returned by Run when a case fails. Remaining cases are not
// executed.
var ErrFailed = errors.New("harness: test failed")

// Registry is an ordered collection of test cases.
//
// Insertion order is preserved and significant: execution order is
// registration order. Cases are never reordered or deduplicated; two cases
// registered under the same name are simply run as two independent entries.
//
// A Registry is not safe for concurrent use. Registration typically happens
// at program initialization, execution in a single driver call; callers
// wanting concurrent access must synchronize externally.
type Registry struct {
	tests  []testCase
	out    io.Writer
	logger *slog.Logger
}

// NewRegistry returns an empty registry reporting to os.Stdout.
func NewRegistry() *Registry {
	return &Registry{
		out:    os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetOutput redirects the per-case report lines. The default is os.Stdout.
func (r *Registry) SetOutput(w io.Writer) {
	r.out = w
}

// SetLogger replaces the diagnostic logger. The default discards
// everything; the report lines on the output writer are the contract,
// logging is ambient detail.
func (r *Registry) SetLogger(logger *slog.Logger) {
	r.logger = logger
}

// Add appends a case to the registry. No name validation, no deduplication.
func (r *Registry) Add(name string, action Action) {
	r.tests = append(r.tests, testCase{name: name, action: action})
}

// Len reports the number of registered cases.
func (r *Registry) Len() int {
	return len(r.tests)
}

// Run executes every registered case in registration order.
//
// One line per executed case is written to the output writer. The run stops
// at the first failing case and returns ErrFailed; if every case passes
// (or the registry is empty) Run returns nil. A defect panic raised by an
// action escapes Run uncaught.
//
// Running does not mutate the registry: two Run calls over the same
// registrations produce the same ordered output.
func (r *Registry) Run() error {
	for _, tc := range r.tests {
		r.logger.Info("running test", "name", tc.name)
		if !tc.run(r.out) {
			r.logger.Info("test failed, stopping run", "name", tc.name)
			return ErrFailed
		}
	}
	return nil
}

// Default is the process-wide registry behind the package-level Add,
// NewGroup, and RunAll. It is created once at package initialization and
// lives for the process duration.
var Default = NewRegistry()

// Add registers a top-level test case in the default registry.
func Add(name string, action Action) {
	Default.Add(name, action)
}

// RunAll runs every case registered in the default registry, in
// registration order. It returns ErrFailed when a case fails, which is the
// hook for callers that want to derive a process exit code.
func RunAll() error {
	return Default.Run()
}
