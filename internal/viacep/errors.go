package viacep

import (
	"errors"
	"fmt"
)

// Kind is the category of a failed lookup.
type Kind int

const (
	// KindNetwork: the request could not be built or completed.
	KindNetwork Kind = iota + 1
	// KindStatus: the server answered with a non-2xx status.
	KindStatus
	// KindDecode: the body is not the expected JSON object.
	KindDecode
	// KindNotFound: the server answered with its "erro" shape.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// ErrNotFound matches any lookup error of KindNotFound via errors.Is.
var ErrNotFound = errors.New("cep not found")

// Error is returned by Client.Lookup for every failure.
type Error struct {
	Kind   Kind
	Code   string
	Status int
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("viacep %s: unexpected status %d", e.Code, e.Status)
	case KindNotFound:
		return fmt.Sprintf("viacep %s: %s", e.Code, ErrNotFound)
	}
	if e.Err != nil {
		return fmt.Sprintf("viacep %s: %s: %v", e.Code, e.Kind, e.Err)
	}
	return fmt.Sprintf("viacep %s: %s", e.Code, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrNotFound) match not-found lookups.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

// KindOf extracts the Kind of err, or 0 when err is not a lookup error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
