package service

import (
	"math/rand"

	"quizhub_backend/internal/model"
)

// ShuffleForPresentation returns a copy of the question set with the question
// order and each question's option order randomized. The stored rows are left
// untouched and the order is recomputed on every call, so two renderings of
// the same quiz will usually differ. Grading keys off option IDs, so the
// presentation order never affects correctness.
func ShuffleForPresentation(questions []model.Question) []model.Question {
	out := make([]model.Question, len(questions))
	copy(out, questions)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	for i := range out {
		if len(out[i].Answers) == 0 {
			continue
		}
		opts := make([]model.Answer, len(out[i].Answers))
		copy(opts, out[i].Answers)
		rand.Shuffle(len(opts), func(a, b int) {
			opts[a], opts[b] = opts[b], opts[a]
		})
		out[i].Answers = opts
	}
	return out
}

// SanitizeForTaking strips grading information from a presentation copy so
// the client never sees which option is correct or the reference answer.
func SanitizeForTaking(questions []model.Question) []model.Question {
	for i := range questions {
		questions[i].CorrectAnswerText = ""
		questions[i].Explanation = ""
		for j := range questions[i].Answers {
			questions[i].Answers[j].IsCorrect = false
		}
	}
	return questions
}
