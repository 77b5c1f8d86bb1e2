// ABOUTME: QuizResult is the tagged outcome of one quiz generation request
// ABOUTME: Distinguishes no-content, exhausted-retries, and hard failure
package models

import "errors"

// MCQ validation errors. Individual invalid questions are dropped, not fatal.
var (
	ErrMCQEmptyQuestion       = errors.New("mcq has empty question text")
	ErrMCQTooFewOptions       = errors.New("mcq has fewer than two options")
	ErrMCQAnswerNotInOptions  = errors.New("mcq answer is not an option key")
	ErrMCQDifficultyOutOfBand = errors.New("mcq difficulty outside requested band")
)

// QuizOutcome tags the terminal state of a quiz pipeline run.
type QuizOutcome string

const (
	// QuizSuccess: at least one valid MCQ was produced.
	QuizSuccess QuizOutcome = "success"
	// QuizNoContext: retrieval found nothing relevant; the generator was never called.
	QuizNoContext QuizOutcome = "no_context"
	// QuizExhausted: every generation attempt produced malformed or invalid output.
	QuizExhausted QuizOutcome = "exhausted"
	// QuizFailed: an upstream error aborted the run.
	QuizFailed QuizOutcome = "failed"
)

// QuizResult carries the outcome of one quiz request. MCQs is non-empty only
// when Outcome is QuizSuccess; Err is set only for QuizExhausted (last seen
// parse/shape error) and QuizFailed (the aborting error).
type QuizResult struct {
	Outcome    QuizOutcome `json:"outcome"`
	Topic      string      `json:"topic"`
	Difficulty Difficulty  `json:"difficulty"`
	MCQs       []MCQ       `json:"mcqs"`
	Err        error       `json:"-"`
}
