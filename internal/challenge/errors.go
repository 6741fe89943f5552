package challenge

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrSiteKeyNotFound = errors.New("reCAPTCHA site key not found")
	ErrNoChallenge     = errors.New("no solvable challenge on page")
	ErrEmptyToken      = errors.New("challenge returned an empty token")
	ErrProvider        = errors.New("solving provider failed")
	ErrUnknownStrategy = errors.New("unknown challenge strategy")
)

// TokenAcquisitionError reports that no token could be produced: the site
// key was missing, the challenge returned nothing, or the solving provider
// failed.
type TokenAcquisitionError struct {
	Strategy string
	Err      error
}

func (e *TokenAcquisitionError) Error() string {
	return fmt.Sprintf("token acquisition (%s): %v", e.Strategy, e.Err)
}

func (e *TokenAcquisitionError) Unwrap() error {
	return e.Err
}

// TimeoutError reports that a bounded wait expired: the challenge library
// never loaded or the provider did not answer in time.
type TimeoutError struct {
	What  string
	After time.Duration
	Err   error
}

func (e *TimeoutError) Error() string {
	if e.After > 0 {
		return fmt.Sprintf("timed out after %s waiting for %s", e.After, e.What)
	}
	return fmt.Sprintf("timed out waiting for %s", e.What)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}
