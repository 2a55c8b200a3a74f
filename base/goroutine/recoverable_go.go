package goroutine

import (
	"runtime/debug"

	"golang.org/x/xerrors"

	"github.com/mandinga/gateway/base/log"
)

// ErrPanic is returned by Run when f panicked
var ErrPanic = xerrors.New("goroutine panicked")

// Run calls f in a new goroutine. The returned channel receives the error of
// f, or ErrPanic when f panicked, and is closed afterwards.
func Run(name string, f func() error) <-chan error {
	errChan := make(chan error, 1)

	go func() {
		defer close(errChan)
		defer func() {
			if p := recover(); p != nil {
				log.Log().WithFields(log.Fields{
					"goroutine": name,
					"err":       p,
					"stack":     string(debug.Stack()),
				}).Error("panic")
				errChan <- xerrors.Errorf("%s: %v: %w", name, p, ErrPanic)
			}
		}()

		if err := f(); err != nil {
			errChan <- err
		}
	}()

	return errChan
}
