// Package quiz generates multiple-choice protein quizzes, runs a quiz
// session and answers free-form tutor questions. Text generation is
// best-effort: every failure degrades to fixed local content.
package quiz

import (
	"fmt"
	"strings"
)

// OptionCount is the number of options every question carries.
const OptionCount = 4

// DefaultTopic is the topic the quiz screen asks for.
const DefaultTopic = "Proteins"

// Question is one multiple-choice question. The JSON field names are the
// wire format shared with the text generator and the HTTP API.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// IsCorrect reports whether option i is the right answer.
func (q Question) IsCorrect(i int) bool {
	return i == q.CorrectAnswer
}

// Difficulty is the exam syllabus the questions target.
type Difficulty string

const (
	DifficultyIB Difficulty = "IB"
	DifficultyAP Difficulty = "AP"
)

// ParseDifficulty accepts "IB" or "AP" in any case. The empty string
// selects IB.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "IB":
		return DifficultyIB, nil
	case "AP":
		return DifficultyAP, nil
	default:
		return "", fmt.Errorf("invalid difficulty %q: must be IB or AP", s)
	}
}

// Source records where a question set came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)
