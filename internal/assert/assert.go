package assert

import (
	"fmt"
)

// Unreachable panics with a message naming the unexpected value. It guards
// the default branch of switches that are exhaustive by construction.
func Unreachable(what string, value any) {
	panic(fmt.Sprintf("unexpected %s: %#v", what, value))
}
