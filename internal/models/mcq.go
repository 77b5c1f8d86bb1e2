// ABOUTME: MCQ and Difficulty types for the quiz generation pipeline
// ABOUTME: Difficulty bands map Easy/Medium/Hard to disjoint numeric ranges
package models

import "strings"

// Difficulty is a named quiz difficulty bound to a numeric score band.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Band returns the inclusive numeric score range for the difficulty.
// Easy is 1-3, Medium is 4-6, Hard is 7-10.
func (d Difficulty) Band() (min, max int) {
	switch d {
	case DifficultyEasy:
		return 1, 3
	case DifficultyHard:
		return 7, 10
	default:
		return 4, 6
	}
}

// Contains reports whether score falls inside the difficulty's band.
func (d Difficulty) Contains(score int) bool {
	min, max := d.Band()
	return score >= min && score <= max
}

// ParseDifficulty matches a difficulty keyword case-insensitively.
// Returns DifficultyMedium and false when s is not a known keyword.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	}
	return DifficultyMedium, false
}

// MCQ is one multiple-choice question as produced by the generator.
// Invariants checked by Validate: Answer is a key of Options, Options has
// at least two entries, and Difficulty falls inside the requested band.
type MCQ struct {
	Question   string            `json:"question"`
	Options    map[string]string `json:"options"`
	Answer     string            `json:"answer"`
	Difficulty int               `json:"difficulty"`
}

// Validate checks the MCQ's cross-field invariants against the requested band.
func (m MCQ) Validate(band Difficulty) error {
	if strings.TrimSpace(m.Question) == "" {
		return ErrMCQEmptyQuestion
	}
	if len(m.Options) < 2 {
		return ErrMCQTooFewOptions
	}
	if _, ok := m.Options[m.Answer]; !ok {
		return ErrMCQAnswerNotInOptions
	}
	if !band.Contains(m.Difficulty) {
		return ErrMCQDifficultyOutOfBand
	}
	return nil
}
