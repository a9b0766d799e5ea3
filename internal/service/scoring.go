package service

import (
	"math"

	"quizhub_backend/internal/model"
)

// Submission is one answer as sent by the client. Choice questions fill
// SelectedOptionIDs; short-answer questions fill Text.
type Submission struct {
	QuestionID        uint   `json:"questionId" binding:"required"`
	SelectedOptionIDs []uint `json:"selectedOptionIds"`
	Text              string `json:"text"`
}

// ScoreSummary is the outcome of grading one attempt.
type ScoreSummary struct {
	// Percentage over auto-gradable questions, rounded to two decimals.
	// 0 when the quiz has no auto-gradable questions.
	Score          float64 `json:"score"`
	TotalQuestions int     `json:"totalQuestions"`
	AutoGradable   int     `json:"autoGradable"`
	CorrectAnswers int     `json:"correctAnswers"`
	HasShortAnswer bool    `json:"hasShortAnswer"`
}

// IsChoiceCorrect grades a single choice-type question against the selected
// option IDs. Correctness is decided by the is_correct flag on the options,
// never by their position, so shuffled renderings grade identically.
//
// SINGLE_CHOICE and TRUE_FALSE require exactly one selection that is flagged
// correct. MULTIPLE_CHOICE requires the selected set to equal the correct set
// exactly; missing or extra selections both fail.
func IsChoiceCorrect(q *model.Question, selected []uint) bool {
	switch q.Type {
	case model.SingleChoice, model.TrueFalse:
		if len(selected) != 1 {
			return false
		}
		for _, opt := range q.Answers {
			if opt.ID == selected[0] {
				return opt.IsCorrect
			}
		}
		return false
	case model.MultipleChoice:
		correct := make(map[uint]bool)
		for _, opt := range q.Answers {
			if opt.IsCorrect {
				correct[opt.ID] = true
			}
		}
		if len(selected) != len(correct) || len(correct) == 0 {
			return false
		}
		seen := make(map[uint]bool, len(selected))
		for _, id := range selected {
			if !correct[id] || seen[id] {
				return false
			}
			seen[id] = true
		}
		return true
	}
	return false
}

// ComputeScore grades an attempt. Short-answer questions are excluded from
// the denominator; they are graded manually later and never influence the
// percentage. An unanswered auto-gradable question counts as incorrect.
func ComputeScore(questions []model.Question, subs map[uint]Submission) ScoreSummary {
	summary := ScoreSummary{TotalQuestions: len(questions)}
	for i := range questions {
		q := &questions[i]
		if !q.IsAutoGradable() {
			summary.HasShortAnswer = true
			continue
		}
		summary.AutoGradable++
		sub, ok := subs[q.ID]
		if ok && IsChoiceCorrect(q, sub.SelectedOptionIDs) {
			summary.CorrectAnswers++
		}
	}
	if summary.AutoGradable > 0 {
		summary.Score = Round2(float64(summary.CorrectAnswers) / float64(summary.AutoGradable) * 100)
	}
	return summary
}

// ComputePracticeScore grades a practice attempt. Practice has no manual
// grading step, so short-answer questions count as answered correctly and
// every question joins the denominator.
func ComputePracticeScore(questions []model.Question, subs map[uint]Submission) ScoreSummary {
	summary := ScoreSummary{TotalQuestions: len(questions)}
	for i := range questions {
		q := &questions[i]
		if !q.IsAutoGradable() {
			summary.HasShortAnswer = true
			summary.CorrectAnswers++
			continue
		}
		sub, ok := subs[q.ID]
		if ok && IsChoiceCorrect(q, sub.SelectedOptionIDs) {
			summary.CorrectAnswers++
		}
	}
	if summary.TotalQuestions > 0 {
		summary.Score = Round2(float64(summary.CorrectAnswers) / float64(summary.TotalQuestions) * 100)
	}
	return summary
}

// Improvement returns the percentage delta of the current practice score over
// the previous one, rounded to one decimal. It is 0 when there is no previous
// score or the previous score was 0.
func Improvement(current float64, previous *float64) float64 {
	if previous == nil || *previous == 0 {
		return 0
	}
	return Round1((current - *previous) / *previous * 100)
}

func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
