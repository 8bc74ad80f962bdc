package assert

import "github.com/oomph-ac/groundwork/oerror"

// IsTrue panics with an *oerror.Error when ok is false. It is used for states that are unreachable
// unless there is a programming error.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
