package errors

import (
	"errors"
	"fmt"
)

const (
	// InvalidDistribution is the error type that occurs when a caller supplies
	// a distribution the engine cannot summarize, such as an empty one.
	InvalidDistribution = iota
	// Friendly represents an expected error
	Friendly
	// Unexpected errors should not occur.
	Unexpected = 999
)

//CalcError represents a custom error thrown by the combat engine's service surface
type CalcError struct {
	Err   string
	Code  int32
	Inner error
}

//Error returns the message string
func (e CalcError) Error() string {
	return e.Err
}

//NewCalcError creates a new CalcError
func NewCalcError(text string, code int32, inner error) *CalcError {
	return &CalcError{
		Err:   text,
		Code:  code,
		Inner: inner,
	}
}

//New creates a new simple error
func New(text string) error {
	return errors.New(text)
}

//Newf creates a new simple error with fmt.Sprintf
func Newf(text string, a ...interface{}) error {
	return fmt.Errorf(text, a...)
}
