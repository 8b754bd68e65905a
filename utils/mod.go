package utils

import "github.com/pkg/errors"

// ErrNotImplemented is raised by contract methods a concrete type did not provide.
var ErrNotImplemented = errors.New("not implemented")

// NotImplemented returns an error naming the missing method, wrapping ErrNotImplemented.
func NotImplemented(method string) error {
	return errors.Wrap(ErrNotImplemented, method)
}
