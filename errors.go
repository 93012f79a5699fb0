package mackay

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction is matched by every *ConstructionError.
	ErrConstruction = errors.New("mackay: invalid code parameter")
	// ErrAlignment is matched by every *AlignmentError.
	ErrAlignment = errors.New("mackay: input not aligned to block size")
)

// ConstructionError reports a rejected constructor argument. No instance is
// produced alongside it.
type ConstructionError struct {
	Param  string
	Value  int
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("mackay: invalid %s %d: %s", e.Param, e.Value, e.Reason)
}

func (e *ConstructionError) Unwrap() error { return ErrConstruction }

// AlignmentError reports a decode input whose length is not a multiple of the
// code's block size.
type AlignmentError struct {
	Codec  string
	Length int
	Block  int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("mackay: %s decode: length %d is not a multiple of %d", e.Codec, e.Length, e.Block)
}

func (e *AlignmentError) Unwrap() error { return ErrAlignment }

// StageError wraps a failure of one Composition stage during DecodeStrict.
// Index is the stage position in Append order.
type StageError struct {
	Index int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("mackay: stage %d: %v", e.Index, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
