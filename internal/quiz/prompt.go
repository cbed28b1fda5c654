package quiz

import (
	"fmt"
	"strings"
)

const quizSystemPrompt = `You write exam-style multiple-choice questions for high school biology.
Each question has exactly 4 options and one correct answer. Options must be
plausible and mutually exclusive. Use plain text only.`

const tutorSystemPrompt = "You are an expert IB/AP Biology teacher."

func buildQuizPrompt(topic string, d Difficulty, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create %d multiple-choice questions for %s Biology students about the topic: %q related to Proteins.\n", n, d, topic)
	b.WriteString("The questions should test deep understanding, not just memorization.\n")
	b.WriteString("Return strictly JSON format.")
	return b.String()
}

func buildTutorPrompt(question string) string {
	return fmt.Sprintf("Answer this student's question about proteins clearly and concisely (max 3 sentences): %q", question)
}
