// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dapi

// Outcome tags the result of one remote call.
type Outcome uint8

const (
	OutcomeOK Outcome = iota
	OutcomeNotFound
	OutcomeTransportError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

// Result is the outcome of a call: a value, a normalized absence, or an
// error. Err is set only for OutcomeTransportError.
type Result[T any] struct {
	Outcome Outcome
	Value   T
	Err     error
}

func okResult[T any](v T) Result[T] {
	return Result[T]{Outcome: OutcomeOK, Value: v}
}

func notFoundResult[T any]() Result[T] {
	return Result[T]{Outcome: OutcomeNotFound}
}

func failedResult[T any](err error) Result[T] {
	return Result[T]{Outcome: OutcomeTransportError, Err: err}
}

// Get flattens the result for callers: absence is the zero value with a nil
// error.
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Err
}

// Found reports whether the call produced a value.
func (r Result[T]) Found() bool {
	return r.Outcome == OutcomeOK
}

// Normalize maps the value of a successful result through fn. When fn
// reports the payload as absent the result becomes OutcomeNotFound. Other
// outcomes pass through unchanged.
func Normalize[T, U any](r Result[T], fn func(T) (U, bool)) Result[U] {
	switch r.Outcome {
	case OutcomeOK:
		v, ok := fn(r.Value)
		if !ok {
			return notFoundResult[U]()
		}
		return okResult(v)
	case OutcomeNotFound:
		return notFoundResult[U]()
	default:
		return failedResult[U](r.Err)
	}
}

// nonEmpty treats an empty payload as absent.
func nonEmpty(b []byte) ([]byte, bool) {
	return b, len(b) > 0
}
