package retry

import (
	"fmt"
	"io"
	"time"
)

// Policy bounds the retry loop for a single asset: Attempts is the total
// number of tries including the first, BaseDelay the wait before the
// first retry. The delay doubles after every failed attempt.
type Policy struct {
	Attempts  int
	BaseDelay time.Duration
}

// Delay returns the backoff for the given zero-based attempt.
func (p Policy) Delay(attempt int) time.Duration {
	return p.BaseDelay << uint(attempt)
}

// Retryable returns a shouldRetry func for Retry that honors the policy.
// Only errors wrapped by WrapAsRetryable are retried; anything else is
// terminal on the first occurrence. If writer is non-nil a notice is
// printed before each wait.
func (p Policy) Retryable(writer io.Writer) func(error) bool {
	counter := 0
	return func(e error) bool {
		if _, isRetryable := e.(*retryable); !isRetryable {
			return false
		}
		if counter >= p.Attempts-1 {
			return false
		}
		delay := p.Delay(counter)
		counter++
		if writer != nil {
			fmt.Fprintf(writer, "\n------- Failed: retrying (%d) in %s -----\n", counter, delay)
		}
		time.Sleep(delay)
		return true
	}
}

func Retry(fn func() error, shouldRetry func(error) bool) error {
	for {
		err := fn()
		if err == nil {
			return nil
		} else if !shouldRetry(err) {
			return err
		}
	}
}

type retryable struct {
	err error
}

func (e *retryable) Error() string {
	return e.err.Error()
}

func (e *retryable) Unwrap() error {
	return e.err
}

func WrapAsRetryable(err error) error {
	return &retryable{err}
}
