// Package assert provides a single invariant-checking helper shared across
// the tree implementation.
package assert

import "fmt"

// Assert panics with a formatted message if the given condition is false.
func Assert(condition bool, msg string, v ...any) {
	if !condition {
		panic(fmt.Sprintf("assertion failed: "+msg, v...))
	}
}
