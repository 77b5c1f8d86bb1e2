// ABOUTME: Prompt templates for the answer and quiz generation pipelines
// ABOUTME: The MCQ prompt carries the strict JSON contract and band rules
package rag

import (
	"fmt"
	"strings"

	"github.com/tutorstack/tutor/internal/models"
)

// NoAnswerFallback is returned when the model produces an empty answer.
const NoAnswerFallback = "I couldn't find an answer from your documents."

const answerSystemPrompt = `You are an AI assistant designed for in-depth Q&A based on the provided context. ` +
	`Use the retrieved information to generate detailed and structured responses. ` +
	`Expand on key concepts, provide explanations, and include relevant examples where necessary. ` +
	`If the context is insufficient, acknowledge it and suggest possible directions.

Context:
%s`

func buildAnswerSystemPrompt(contextBlock string) string {
	return fmt.Sprintf(answerSystemPrompt, contextBlock)
}

const mcqSystemPrompt = "You are an AI MCQ generator. Your response MUST be STRICT JSON."

const mcqUserPrompt = `Generate multiple-choice questions (MCQs) on the topic "%s" with %s difficulty.
Generate a dynamic number of questions based on content richness.

**Strict Difficulty Assignment:**
- If 'Easy', all MCQs must be in range (1-3).
- If 'Medium', all MCQs must be in range (4-6).
- If 'Hard', all MCQs must be in range (7-10).

**Context:**
%s

**Format Response as JSON:**
{
  "mcqs": [
    {
      "question": "What is AI?",
      "options": {"A": "Artificial Intelligence", "B": "Automated Input", "C": "Analog Information", "D": "None"},
      "answer": "A",
      "difficulty": 7
    }
  ]
}

**IMPORTANT:**
- Return JSON ONLY.
- No explanations, comments, or extra text.`

func buildMCQPrompt(topic string, difficulty models.Difficulty, contextBlock string) string {
	return fmt.Sprintf(mcqUserPrompt, topic, difficulty, contextBlock)
}

// joinChunkText concatenates retrieved chunk text in retrieval order.
func joinChunkText(chunks []models.ScoredChunk, sep string) string {
	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, c.Chunk.Text)
	}
	return strings.Join(parts, sep)
}

// stripCodeFences removes a surrounding markdown code fence that models
// sometimes wrap around JSON payloads despite instructions.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
