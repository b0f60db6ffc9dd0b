package assert

import "github.com/oomph-ac/entsim/oerror"

// IsTrue panics with an *oerror.OomphError built from message and args if ok is false.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
