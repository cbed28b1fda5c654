package quiz

import "github.com/abhisek/proteinlab/internal/llm"

// QuizSchema is the structured output requested for a question set.
var QuizSchema = &llm.Schema{
	Name:        "protein-quiz",
	Description: "A set of multiple-choice biology questions about proteins",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt shown to the student",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer options",
						},
						"correctAnswer": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "Index of the correct option (0-3)",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is right, in one or two sentences",
						},
					},
					"required":             []any{"question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// TutorSchema wraps the tutor's free-text answer.
var TutorSchema = &llm.Schema{
	Name:        "tutor-answer",
	Description: "A short answer to a student's biology question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "At most three sentences, plain text",
			},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}
