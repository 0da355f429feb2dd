package errorx

import "errors"

type Kind int

const (
	Other Kind = iota
	Authn
	Invalid
	NotExist
	RateLimiting
	Service
	Unavailable
)

type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string {
	if e.err == nil {
		return "unknown error"
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

func Wrap(err error, kind Kind) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, err: err}
}

// KindOf walks the chain and returns the outermost kind, Other if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return Other
}
