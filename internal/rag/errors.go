// ABOUTME: Error types distinguishing malformed model output from failures
// ABOUTME: MalformedResponseError triggers a retry; anything else aborts
package rag

import (
	"errors"
	"fmt"
)

var (
	errNoMCQs         = errors.New("response has no mcqs")
	errAllMCQsInvalid = errors.New("every question failed validation")
)

// MalformedResponseError marks a model response that failed JSON parsing,
// shape checking, or per-item validation. Stage is one of "parse", "shape",
// "validate".
type MalformedResponseError struct {
	Stage string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed quiz response (%s): %v", e.Stage, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
