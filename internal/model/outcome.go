package model

import (
	"time"
)

// Status is the terminal state of one action invocation.
type Status string

const (
	// StatusSucceeded marks a document that was written.
	StatusSucceeded Status = "succeeded"
	// StatusFailedSoft marks a serialize or write failure that was logged and
	// swallowed because failOnError was false.
	StatusFailedSoft Status = "failed_soft"
	// StatusFailedHard marks a serialize or write failure propagated to the
	// runner because failOnError was true.
	StatusFailedHard Status = "failed_hard"
)

// Outcome captures the result of the serialize+write phase.
type Outcome struct {
	Status     Status
	OutputPath string
	// Err is set for both failure states, even when it is not propagated.
	Err       error
	Duration  time.Duration
	Timestamp time.Time
}

// Failed reports whether the document may be missing or stale.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailedSoft || o.Status == StatusFailedHard
}

// Propagated returns the error the runner must see, nil unless the failure
// was hard.
func (o Outcome) Propagated() error {
	if o.Status == StatusFailedHard {
		return o.Err
	}
	return nil
}
