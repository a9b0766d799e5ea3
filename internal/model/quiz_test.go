package model

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateAccessCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateAccessCode()
		if len(code) != 6 {
			t.Fatalf("len(code) = %d, want 6", len(code))
		}
		if code != strings.ToUpper(code) {
			t.Fatalf("code %q is not uppercase", code)
		}
		seen[code] = true
	}
	// Collisions over 100 draws from a 16^6 space would indicate a broken generator.
	if len(seen) < 95 {
		t.Errorf("only %d distinct codes out of 100", len(seen))
	}
}

func TestQuizIsOpenAt(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	quiz := Quiz{StartTime: start, EndTime: end}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"before window", start.Add(-time.Minute), false},
		{"at start", start, true},
		{"inside window", start.Add(time.Hour), true},
		{"at end", end, true},
		{"after window", end.Add(time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := quiz.IsOpenAt(tt.at); got != tt.want {
				t.Errorf("IsOpenAt(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

func TestQuestionGradability(t *testing.T) {
	tests := []struct {
		qType        QuestionType
		autoGradable bool
		hasOptions   bool
	}{
		{SingleChoice, true, true},
		{MultipleChoice, true, true},
		{TrueFalse, true, true},
		{ShortAnswer, false, false},
	}

	for _, tt := range tests {
		q := Question{Type: tt.qType}
		if got := q.IsAutoGradable(); got != tt.autoGradable {
			t.Errorf("%s IsAutoGradable() = %v, want %v", tt.qType, got, tt.autoGradable)
		}
		if got := q.HasOptions(); got != tt.hasOptions {
			t.Errorf("%s HasOptions() = %v, want %v", tt.qType, got, tt.hasOptions)
		}
	}
}
