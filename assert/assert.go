package assert

import "github.com/oomph-ac/platsim/oerror"

// IsTrue panics with a formatted OomphError if ok is false.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
