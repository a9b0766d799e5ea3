package service

import (
	"testing"

	"quizhub_backend/internal/model"
)

func TestShuffleForPresentationKeepsContent(t *testing.T) {
	questions := []model.Question{
		makeQuestion(1, model.SingleChoice, 12),
		makeQuestion(2, model.MultipleChoice, 21, 23),
		makeQuestion(3, model.TrueFalse, 31),
		{BaseModel: model.BaseModel{ID: 4}, Type: model.ShortAnswer},
	}

	shuffled := ShuffleForPresentation(questions)

	if len(shuffled) != len(questions) {
		t.Fatalf("len = %d, want %d", len(shuffled), len(questions))
	}

	seen := make(map[uint]model.Question, len(shuffled))
	for _, q := range shuffled {
		seen[q.ID] = q
	}
	for _, orig := range questions {
		got, ok := seen[orig.ID]
		if !ok {
			t.Fatalf("question %d missing after shuffle", orig.ID)
		}
		if len(got.Answers) != len(orig.Answers) {
			t.Fatalf("question %d has %d options, want %d", orig.ID, len(got.Answers), len(orig.Answers))
		}
		optSeen := make(map[uint]bool, len(got.Answers))
		for _, opt := range got.Answers {
			optSeen[opt.ID] = true
		}
		for _, opt := range orig.Answers {
			if !optSeen[opt.ID] {
				t.Errorf("question %d lost option %d", orig.ID, opt.ID)
			}
		}
	}
}

func TestShuffleForPresentationLeavesInputAlone(t *testing.T) {
	questions := []model.Question{
		makeQuestion(1, model.SingleChoice, 12),
		makeQuestion(2, model.MultipleChoice, 21, 23),
	}
	wantOrder := []uint{questions[0].ID, questions[1].ID}
	wantOpts := []uint{}
	for _, opt := range questions[0].Answers {
		wantOpts = append(wantOpts, opt.ID)
	}

	for i := 0; i < 20; i++ {
		ShuffleForPresentation(questions)
	}

	for i, id := range wantOrder {
		if questions[i].ID != id {
			t.Fatalf("input question order changed at %d", i)
		}
	}
	for i, id := range wantOpts {
		if questions[0].Answers[i].ID != id {
			t.Fatalf("input option order changed at %d", i)
		}
	}
}

func TestSanitizeForTaking(t *testing.T) {
	questions := []model.Question{
		makeQuestion(1, model.SingleChoice, 12),
		{
			BaseModel:         model.BaseModel{ID: 2},
			Type:              model.ShortAnswer,
			CorrectAnswerText: "reference",
			Explanation:       "because",
		},
	}

	got := SanitizeForTaking(ShuffleForPresentation(questions))

	for _, q := range got {
		if q.CorrectAnswerText != "" {
			t.Errorf("question %d leaked reference answer", q.ID)
		}
		if q.Explanation != "" {
			t.Errorf("question %d leaked explanation", q.ID)
		}
		for _, opt := range q.Answers {
			if opt.IsCorrect {
				t.Errorf("question %d leaked correct flag on option %d", q.ID, opt.ID)
			}
		}
	}
}
