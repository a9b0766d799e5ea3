package service

import (
	"testing"

	"quizhub_backend/internal/model"
)

func makeQuestion(id uint, qType model.QuestionType, correct ...uint) model.Question {
	q := model.Question{
		BaseModel: model.BaseModel{ID: id},
		Type:      qType,
	}
	correctSet := make(map[uint]bool)
	for _, c := range correct {
		correctSet[c] = true
	}
	// Four options with IDs derived from the question ID.
	for i := uint(1); i <= 4; i++ {
		optID := id*10 + i
		q.Answers = append(q.Answers, model.Answer{
			BaseModel: model.BaseModel{ID: optID},
			IsCorrect: correctSet[optID],
		})
	}
	if qType == model.TrueFalse {
		q.Answers = q.Answers[:2]
	}
	return q
}

func TestIsChoiceCorrect(t *testing.T) {
	single := makeQuestion(1, model.SingleChoice, 12)
	multi := makeQuestion(2, model.MultipleChoice, 21, 23)
	tf := makeQuestion(3, model.TrueFalse, 31)

	tests := []struct {
		name     string
		question *model.Question
		selected []uint
		want     bool
	}{
		{"single correct", &single, []uint{12}, true},
		{"single wrong", &single, []uint{11}, false},
		{"single none", &single, nil, false},
		{"single two selections", &single, []uint{11, 12}, false},
		{"single unknown option", &single, []uint{99}, false},

		{"multi exact set", &multi, []uint{21, 23}, true},
		{"multi order ignored", &multi, []uint{23, 21}, true},
		{"multi missing one", &multi, []uint{21}, false},
		{"multi extra wrong", &multi, []uint{21, 23, 22}, false},
		{"multi superset size via duplicate", &multi, []uint{21, 21}, false},
		{"multi none", &multi, nil, false},

		{"true false correct", &tf, []uint{31}, true},
		{"true false wrong", &tf, []uint{32}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsChoiceCorrect(tt.question, tt.selected); got != tt.want {
				t.Errorf("IsChoiceCorrect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeScore(t *testing.T) {
	questions := []model.Question{
		makeQuestion(1, model.SingleChoice, 12),
		makeQuestion(2, model.MultipleChoice, 21, 23),
		makeQuestion(3, model.TrueFalse, 31),
		{BaseModel: model.BaseModel{ID: 4}, Type: model.ShortAnswer},
	}

	subs := map[uint]Submission{
		1: {QuestionID: 1, SelectedOptionIDs: []uint{12}},
		2: {QuestionID: 2, SelectedOptionIDs: []uint{21, 23}},
		3: {QuestionID: 3, SelectedOptionIDs: []uint{32}},
		4: {QuestionID: 4, Text: "free text"},
	}

	got := ComputeScore(questions, subs)
	if got.AutoGradable != 3 {
		t.Fatalf("AutoGradable = %d, want 3", got.AutoGradable)
	}
	if got.CorrectAnswers != 2 {
		t.Fatalf("CorrectAnswers = %d, want 2", got.CorrectAnswers)
	}
	// 2/3 rounds to two decimals.
	if got.Score != 66.67 {
		t.Errorf("Score = %v, want 66.67", got.Score)
	}
	if !got.HasShortAnswer {
		t.Error("HasShortAnswer = false, want true")
	}
}

func TestComputeScoreUnanswered(t *testing.T) {
	questions := []model.Question{
		makeQuestion(1, model.SingleChoice, 12),
		makeQuestion(2, model.TrueFalse, 21),
	}
	got := ComputeScore(questions, map[uint]Submission{})
	if got.Score != 0 || got.CorrectAnswers != 0 {
		t.Errorf("empty submission scored %v/%d, want 0/0", got.Score, got.CorrectAnswers)
	}
}

func TestComputeScoreNoAutoGradable(t *testing.T) {
	questions := []model.Question{
		{BaseModel: model.BaseModel{ID: 1}, Type: model.ShortAnswer},
		{BaseModel: model.BaseModel{ID: 2}, Type: model.ShortAnswer},
	}
	got := ComputeScore(questions, map[uint]Submission{
		1: {QuestionID: 1, Text: "a"},
	})
	if got.Score != 0 {
		t.Errorf("Score = %v, want 0 when nothing is auto-gradable", got.Score)
	}
	if got.AutoGradable != 0 {
		t.Errorf("AutoGradable = %d, want 0", got.AutoGradable)
	}
	if !got.HasShortAnswer {
		t.Error("HasShortAnswer = false, want true")
	}
}

// Scores must not depend on the order questions or options are presented in.
func TestComputeScoreOrderInvariant(t *testing.T) {
	questions := []model.Question{
		makeQuestion(1, model.SingleChoice, 12),
		makeQuestion(2, model.MultipleChoice, 21, 23),
		makeQuestion(3, model.TrueFalse, 31),
	}
	subs := map[uint]Submission{
		1: {QuestionID: 1, SelectedOptionIDs: []uint{12}},
		2: {QuestionID: 2, SelectedOptionIDs: []uint{23, 21}},
		3: {QuestionID: 3, SelectedOptionIDs: []uint{31}},
	}

	base := ComputeScore(questions, subs)

	shuffled := ShuffleForPresentation(questions)
	got := ComputeScore(shuffled, subs)

	if got.Score != base.Score || got.CorrectAnswers != base.CorrectAnswers {
		t.Errorf("shuffled grading %v/%d differs from base %v/%d",
			got.Score, got.CorrectAnswers, base.Score, base.CorrectAnswers)
	}
	if base.Score != 100 {
		t.Errorf("Score = %v, want 100", base.Score)
	}
}

func TestComputePracticeScore(t *testing.T) {
	questions := []model.Question{
		makeQuestion(1, model.SingleChoice, 12),
		{BaseModel: model.BaseModel{ID: 2}, Type: model.ShortAnswer},
	}
	got := ComputePracticeScore(questions, map[uint]Submission{
		1: {QuestionID: 1, SelectedOptionIDs: []uint{11}},
	})
	// Short answers always count as correct in practice; the wrong choice
	// does not, so one out of two.
	if got.CorrectAnswers != 1 {
		t.Fatalf("CorrectAnswers = %d, want 1", got.CorrectAnswers)
	}
	if got.Score != 50 {
		t.Errorf("Score = %v, want 50", got.Score)
	}
	if got.TotalQuestions != 2 {
		t.Errorf("TotalQuestions = %d, want 2", got.TotalQuestions)
	}
}

func TestImprovement(t *testing.T) {
	prev := func(v float64) *float64 { return &v }

	tests := []struct {
		name     string
		current  float64
		previous *float64
		want     float64
	}{
		{"no previous attempt", 80, nil, 0},
		{"previous score zero", 80, prev(0), 0},
		{"improved", 75, prev(50), 50},
		{"declined", 40, prev(50), -20},
		{"rounded to one decimal", 50, prev(60), -16.7},
		{"unchanged", 50, prev(50), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Improvement(tt.current, tt.previous); got != tt.want {
				t.Errorf("Improvement(%v, prev) = %v, want %v", tt.current, got, tt.want)
			}
		})
	}
}
