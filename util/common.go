package util

import (
	"fmt"
	"os"
)

func NoError(err error, msg string) {
	if err != nil {
		if msg != "" {
			fmt.Fprintf(os.Stderr, "\nfatal error: %s - %v\n\n", msg, err)
		} else {
			fmt.Fprintf(os.Stderr, "\nfatal error: %v\n\n", err)
		}
		os.Exit(3)
	}
}

func Try[T any](input T, err error) T {
	NoError(err, "")
	return input
}

// Panics with the given message if the condition does not hold.
//
// Used for broken invariants only. Recoverable conditions are reported as
// errors.
func Assert(cond bool, msgAndArgs ...interface{}) {
	if !cond {
		msg := fmt.Sprint(msgAndArgs...)
		if msg == "" {
			msg = "assertion failed"
		}
		panic(msg)
	}
}

type msgWithArgs struct {
	msg  string
	args []any
}

func (m msgWithArgs) String() string {
	if len(m.args) == 0 {
		return m.msg
	} else {
		return fmt.Sprintf(m.msg, m.args...)
	}
}

// Lazily formatted message for `Assert`.
func Msg(msg string, args ...any) fmt.Stringer {
	return msgWithArgs{msg, args}
}
