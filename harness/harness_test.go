package harness

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recoverFailure runs fn and returns the *Failure it panics with.
// The test fails if fn does not panic or panics with something else.
func recoverFailure(t *testing.T, fn func()) *Failure {
	t.Helper()

	var failure *Failure
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a failure panic")
			f, ok := r.(*Failure)
			require.True(t, ok, "panic value should be *Failure, got %T", r)
			failure = f
		}()
		fn()
	}()
	return failure
}

func TestEvaluate_TruepredicateHasNoEffect(t *testing.T) {
	Evaluate("check", func(v ...int) bool { return v[0] == v[1] }, true, 3, 3)
}

func TestEvaluate_VerboseMessage(t *testing.T) {
	f := recoverFailure(t, func() {
		Evaluate("check", func(v ...int) bool { return v[0] == v[1] }, true, 3, 4)
	})

	assert.Equal(t, "Condition check not met. Values were (3, 4).", f.Message)
}

func TestEvaluate_QuietMessageKeepsTrailingSpace(t *testing.T) {
	f := recoverFailure(t, func() {
		Evaluate("check", func(v ...int) bool { return false }, false, 1, 2)
	})

	assert.Equal(t, "Condition check not met. ", f.Message)
}

func TestEvaluate_SingleOperand(t *testing.T) {
	f := recoverFailure(t, func() {
		Evaluate("check", func(v ...bool) bool { return v[0] }, true, false)
	})

	assert.Equal(t, "Condition check not met. Values were (false).", f.Message)
}

func TestEvaluate_PredicatePanicPropagates(t *testing.T) {
	boom := errors.New("broken predicate")

	assert.PanicsWithValue(t, boom, func() {
		Evaluate("check", func(v ...int) bool { panic(boom) }, true, 1, 2)
	})
}

func TestRegistry_AllPass(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry()
	reg.SetOutput(&buf)

	reg.Add("first", func() {})
	reg.Add("second", func() {})

	err := reg.Run()
	require.NoError(t, err)
	assert.Equal(t, "Test first passed.\nTest second passed.\n", buf.String())
}

func TestRegistry_StopsAtFirstFailure(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry()
	reg.SetOutput(&buf)

	thirdRan := false
	reg.Add("first", func() {})
	reg.Add("second", func() { panic(&Failure{Message: "Condition check not met. "}) })
	reg.Add("third", func() { thirdRan = true })

	err := reg.Run()
	require.ErrorIs(t, err, ErrFailed)

	assert.False(t, thirdRan, "cases after the first failure must not run")
	assert.Equal(t,
		"Test first passed.\nTest second failed: Condition check not met. \n",
		buf.String())
}

func TestRegistry_EmptyRunSucceeds(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Run())
}

func TestRegistry_DefectPanicPropagates(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry()
	reg.SetOutput(&buf)

	boom := errors.New("test code is broken")
	reg.Add("first", func() {})
	reg.Add("defective", func() { panic(boom) })

	assert.PanicsWithValue(t, boom, func() { _ = reg.Run() })

	// The defective case produced no report line of its own.
	assert.Equal(t, "Test first passed.\n", buf.String())
}

func TestRegistry_DuplicateNamesBothRun(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry()
	reg.SetOutput(&buf)

	runs := 0
	reg.Add("same", func() { runs++ })
	reg.Add("same", func() { runs++ })

	require.NoError(t, reg.Run())
	assert.Equal(t, 2, runs)
	assert.Equal(t, "Test same passed.\nTest same passed.\n", buf.String())
}

func TestRegistry_RunIsIdempotent(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry()
	reg.SetOutput(&buf)

	reg.Add("steady", func() {})
	reg.Add("shaky", func() { panic(&Failure{Message: "Condition check not met. "}) })

	err := reg.Run()
	require.ErrorIs(t, err, ErrFailed)
	first := buf.String()

	buf.Reset()
	err = reg.Run()
	require.ErrorIs(t, err, ErrFailed)

	assert.Equal(t, first, buf.String(), "execution must not mutate the registry")
	assert.Equal(t, 2, reg.Len())
}

func TestDefaultRegistryFacade(t *testing.T) {
	var buf bytes.Buffer
	Default.SetOutput(&buf)
	t.Cleanup(func() { Default.SetOutput(os.Stdout) })

	Add("top", func() {})
	NewGroup("Facade").Add("grouped", func() {})

	require.NoError(t, RunAll())
	assert.Equal(t,
		"Test top passed.\nTest Facade::grouped passed.\n",
		buf.String())
	assert.Equal(t, 2, Default.Len())
}

func TestGroup_PrefixesName(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry()
	reg.SetOutput(&buf)

	reg.Group("Math").
		Add("addition", func() {}).
		Add("subtraction", func() {})

	require.NoError(t, reg.Run())
	assert.Equal(t,
		"Test Math::addition passed.\nTest Math::subtraction passed.\n",
		buf.String())
}

func TestGroup_InterleavesWithTopLevelCases(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry()
	reg.SetOutput(&buf)

	reg.Add("plain", func() {})
	g := reg.Group("Grouped")
	g.Add("inner", func() {})
	reg.Add("after", func() {})

	require.NoError(t, reg.Run())
	assert.Equal(t,
		"Test plain passed.\nTest Grouped::inner passed.\nTest after passed.\n",
		buf.String())
}
