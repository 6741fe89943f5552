package service

import (
	"errors"
	"fmt"
)

var (
	ErrNoLauncher = errors.New("no browser launcher configured")
	ErrNoAcquirer = errors.New("no challenge acquirer configured")
	ErrNoAdapter  = errors.New("no research adapter configured")

	ErrNoResults = errors.New("no results in relay response")
)

// Stage names one step of a relay cycle.
type Stage string

const (
	StageValidating       Stage = "validating"
	StageAcquiringBrowser Stage = "acquiring_browser"
	StageNavigating       Stage = "navigating"
	StageSolvingChallenge Stage = "solving_challenge"
	StageAssembling       Stage = "assembling"
	StageRelaying         Stage = "relaying"
	StageResponding       Stage = "responding"
)

// StageError carries the stage a relay cycle failed in. The originating
// error stays reachable through Unwrap.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// FailedStage returns the stage err was raised in, or "" when err did not
// come out of a relay cycle.
func FailedStage(err error) Stage {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage
	}
	return ""
}

// Client-side errors shown by the terminal client.
var (
	ErrRelayRejected     = errors.New("relay rejected the query")
	ErrRelayUnauthorized = errors.New("relay rejected the client credentials")
	ErrRelayFailed       = errors.New("relay could not complete the query")
	ErrRelayUnreachable  = errors.New("relay is unreachable")
)
