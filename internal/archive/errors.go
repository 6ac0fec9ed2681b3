// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"errors"
	"fmt"

	"github.com/pdiddy/archive-search/internal/httputil"
)

// Kind groups client failures by what the caller can do about them.
type Kind int

const (
	KindInvalidArgument Kind = iota + 1
	KindHTTP
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindHTTP:
		return "http"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error is returned by every Client operation.
type Error struct {
	Op         string // "search", "downloads"
	Kind       Kind
	StatusCode int // set for KindHTTP when the server answered
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same Kind, so callers can test
// errors.Is(err, archive.ErrInvalidArgument).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}

var (
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrHTTP            = &Error{Kind: KindHTTP}
	ErrParse           = &Error{Kind: KindParse}
)

func invalid(op, format string, args ...any) error {
	return &Error{Op: op, Kind: KindInvalidArgument, Err: fmt.Errorf(format, args...)}
}

// httpError wraps a transport or status failure, keeping the status code.
func httpError(op string, err error) error {
	e := &Error{Op: op, Kind: KindHTTP, Err: err}
	var se *httputil.StatusError
	if errors.As(err, &se) {
		e.StatusCode = se.StatusCode
	}
	return e
}
