package core

import (
	"errors"
	"fmt"
)

type FailureKind uint8

const (
	// Deliberate stop requested by the program, carrying its result.
	Halt FailureKind = iota
	NotBool
	NotFloat
	NotInt
	NotPositiveInt
	NotNonZeroInt
)

var failureNames = [...]string{
	Halt:           "halt",
	NotBool:        "not a bool",
	NotFloat:       "not a float",
	NotInt:         "not an int",
	NotPositiveInt: "not a non-negative int",
	NotNonZeroInt:  "not a non-zero int",
}

func (k FailureKind) String() string {
	if int(k) < len(failureNames) {
		return failureNames[k]
	}
	return fmt.Sprintf("FailureKind(%d)", k)
}

// Abnormal outcome of a core primitive. Host natives report their own
// failures as any other error.
type Failure struct {
	Kind  FailureKind
	Value Value
}

func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Value.String())
}

func fail(kind FailureKind, v Value) error {
	return &Failure{Kind: kind, Value: v}
}

// Core failure inside `err`, if any.
func AsFailure(err error) (*Failure, bool) {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}

// Value carried by a halt failure.
func IsHalt(err error) (Value, bool) {
	if failure, ok := AsFailure(err); ok && failure.Kind == Halt {
		return failure.Value, true
	}
	return Value{}, false
}
