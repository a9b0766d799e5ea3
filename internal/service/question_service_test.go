package service

import (
	"testing"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/util"
)

func TestParseImportRow(t *testing.T) {
	tests := []struct {
		name    string
		cells   []string
		wantErr bool
	}{
		{"valid full row", []string{"Math", "2+2?", "EASY", "3", "4", "5", "6", "2"}, false},
		{"valid two options", []string{"Math", "2+2?", "easy", "3", "4", "", "", "2"}, false},
		{"short row padded", []string{"Math", "2+2?", "EASY", "3", "4"}, true},
		{"missing subject", []string{"", "2+2?", "EASY", "3", "4", "", "", "1"}, true},
		{"missing text", []string{"Math", "", "EASY", "3", "4", "", "", "1"}, true},
		{"bad difficulty", []string{"Math", "2+2?", "IMPOSSIBLE", "3", "4", "", "", "1"}, true},
		{"one option only", []string{"Math", "2+2?", "EASY", "4", "", "", "", "1"}, true},
		{"correct index zero", []string{"Math", "2+2?", "EASY", "3", "4", "", "", "0"}, true},
		{"correct index out of range", []string{"Math", "2+2?", "EASY", "3", "4", "", "", "3"}, true},
		{"correct index not a number", []string{"Math", "2+2?", "EASY", "3", "4", "", "", "two"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := ParseImportRow(tt.cells)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseImportRow() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if row.Difficulty != model.Easy {
				t.Errorf("Difficulty = %q, want EASY", row.Difficulty)
			}
			if row.CorrectIndex != 2 {
				t.Errorf("CorrectIndex = %d, want 2", row.CorrectIndex)
			}
		})
	}
}

func TestParseImportRowTrimsOptions(t *testing.T) {
	row, err := ParseImportRow([]string{"Math", "Pick one", "MEDIUM", " a ", "b", "  ", "c", "3"})
	if err != nil {
		t.Fatalf("ParseImportRow() error = %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(row.Options) != len(want) {
		t.Fatalf("Options = %v, want %v", row.Options, want)
	}
	for i := range want {
		if row.Options[i] != want[i] {
			t.Errorf("Options[%d] = %q, want %q", i, row.Options[i], want[i])
		}
	}
	// Index 3 points at "c" after the blank cell is dropped.
	if row.CorrectIndex != 3 {
		t.Errorf("CorrectIndex = %d, want 3", row.CorrectIndex)
	}
}

func TestBuildAnswers(t *testing.T) {
	trueCorrect := true

	tests := []struct {
		name    string
		input   QuestionInput
		wantLen int
		wantErr error
	}{
		{
			"true false builds fixed options",
			QuestionInput{Type: model.TrueFalse, TrueIsCorrect: &trueCorrect},
			2, nil,
		},
		{
			"true false without answer",
			QuestionInput{Type: model.TrueFalse},
			0, util.ErrNoCorrectOption,
		},
		{
			"short answer needs reference",
			QuestionInput{Type: model.ShortAnswer, CorrectAnswerText: "  "},
			0, util.ErrShortAnswerRequired,
		},
		{
			"short answer has no options",
			QuestionInput{Type: model.ShortAnswer, CorrectAnswerText: "because"},
			0, nil,
		},
		{
			"single choice valid",
			QuestionInput{Type: model.SingleChoice, Options: []OptionInput{
				{Text: "a", IsCorrect: true}, {Text: "b"},
			}},
			2, nil,
		},
		{
			"single choice no correct option",
			QuestionInput{Type: model.SingleChoice, Options: []OptionInput{
				{Text: "a"}, {Text: "b"},
			}},
			0, util.ErrNoCorrectOption,
		},
		{
			"multiple choice several correct",
			QuestionInput{Type: model.MultipleChoice, Options: []OptionInput{
				{Text: "a", IsCorrect: true}, {Text: "b", IsCorrect: true}, {Text: "c"},
			}},
			3, nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers, err := buildAnswers(tt.input)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Fatalf("buildAnswers() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildAnswers() error = %v", err)
			}
			if len(answers) != tt.wantLen {
				t.Errorf("len(answers) = %d, want %d", len(answers), tt.wantLen)
			}
		})
	}
}

// Converting a choice question to SHORT_ANSWER must clear its old options, so
// the empty answer set has to be non-nil: the repository treats nil as "keep".
func TestBuildAnswersShortAnswerClearsOptions(t *testing.T) {
	answers, err := buildAnswers(QuestionInput{Type: model.ShortAnswer, CorrectAnswerText: "because"})
	if err != nil {
		t.Fatalf("buildAnswers() error = %v", err)
	}
	if answers == nil {
		t.Fatal("answers = nil, want an empty non-nil slice")
	}
	if len(answers) != 0 {
		t.Fatalf("len(answers) = %d, want 0", len(answers))
	}
}

func TestBuildAnswersSingleChoiceRejectsTwoCorrect(t *testing.T) {
	_, err := buildAnswers(QuestionInput{Type: model.SingleChoice, Options: []OptionInput{
		{Text: "a", IsCorrect: true}, {Text: "b", IsCorrect: true},
	}})
	if err == nil {
		t.Fatal("expected error for two correct options on single choice")
	}
}

func TestBuildAnswersTrueFalseFlags(t *testing.T) {
	falseCorrect := false
	answers, err := buildAnswers(QuestionInput{Type: model.TrueFalse, TrueIsCorrect: &falseCorrect})
	if err != nil {
		t.Fatalf("buildAnswers() error = %v", err)
	}
	if answers[0].Text != model.TrueOptionText || answers[0].IsCorrect {
		t.Errorf("true option = %+v, want incorrect %q", answers[0], model.TrueOptionText)
	}
	if answers[1].Text != model.FalseOptionText || !answers[1].IsCorrect {
		t.Errorf("false option = %+v, want correct %q", answers[1], model.FalseOptionText)
	}
}
