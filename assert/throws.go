package assert

import (
	"errors"
	"reflect"

	"github.com/roach88/attest/harness"
)

// errUnclassified stands in for a recovered panic value that does not
// implement error. It matches no caller-supplied kind, so the assertion
// reports failure.
var errUnclassified = errors.New("assert: panic value does not implement error")

// Throws runs action and succeeds only when it raises an error matching one
// of kinds. An error is "raised" either by being returned or by arriving as
// a panic value that implements error.
//
// Kinds are checked in listed order; the first match wins. An error matches
// a kind when errors.Is holds (sentinel identity, including wrapped errors)
// or when the two have the same dynamic type.
//
// Throws fails in two cases: action raises nothing, or the raised error
// matches none of the listed kinds. A non-matching error is swallowed and
// converted into the assertion failure rather than propagated: the caller
// is testing for specific failure kinds only. The failure message carries
// no value dump.
func Throws(action func() error, kinds ...error) {
	harness.Evaluate("assertThrows", func(actions ...func() error) bool {
		err := capture(actions[0])
		if err == nil {
			return false
		}
		for _, kind := range kinds {
			if matchesKind(err, kind) {
				return true
			}
		}
		return false
	}, false, action)
}

// capture runs fn, folding a panicking error value into the returned error.
func capture(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = errUnclassified
	}()
	return fn()
}

func matchesKind(err, kind error) bool {
	if errors.Is(err, kind) {
		return true
	}
	return reflect.TypeOf(err) == reflect.TypeOf(kind)
}
