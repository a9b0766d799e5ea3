package service

import (
	"os"
	"testing"
	"time"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type stubQuizReader struct {
	quiz    *model.Quiz
	allowed bool
}

func (s *stubQuizReader) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	if s.quiz == nil || s.quiz.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.quiz, nil
}

func (s *stubQuizReader) IsStudentAllowed(quizID, studentID uint) (bool, error) {
	return s.allowed, nil
}

type stubResultStore struct {
	existing     *model.Result
	createErr    error
	savedAnswers []model.StudentAnswer
}

func (s *stubResultStore) CreateWithAnswers(result *model.Result, answers []model.StudentAnswer) (*model.Result, error) {
	if s.createErr != nil {
		return s.existing, s.createErr
	}
	s.savedAnswers = answers
	result.ID = 1
	return result, nil
}

func (s *stubResultStore) FindByID(id uint) (*model.Result, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubResultStore) FindByStudentAndQuiz(studentID, quizID uint) (*model.Result, error) {
	if s.existing != nil {
		return s.existing, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubResultStore) ListByStudent(studentID uint) ([]model.Result, error) {
	return nil, nil
}

func openQuiz(questions ...model.Question) *model.Quiz {
	now := time.Now()
	return &model.Quiz{
		BaseModel: model.BaseModel{ID: 7},
		Title:     "Graded quiz",
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
		IsPublic:  true,
		Questions: questions,
	}
}

func TestBuildAnswerRowsDropsUnknownOptions(t *testing.T) {
	questions := []model.Question{
		makeQuestion(1, model.SingleChoice, 12),
		makeQuestion(2, model.MultipleChoice, 21, 23),
		{BaseModel: model.BaseModel{ID: 3}, Type: model.ShortAnswer},
		makeQuestion(4, model.TrueFalse, 41),
	}
	subs := map[uint]Submission{
		// 9999 does not exist anywhere; 21 belongs to question 2, not 1.
		1: {QuestionID: 1, SelectedOptionIDs: []uint{12, 9999, 21}},
		2: {QuestionID: 2, SelectedOptionIDs: []uint{21, 23}},
		3: {QuestionID: 3, Text: "free text"},
		// Question 4 left unanswered.
	}

	rows := buildAnswerRows(questions, subs)

	wantOptions := map[uint]map[uint]bool{
		1: {12: true},
		2: {21: true, 23: true},
	}
	var shortRows int
	for _, row := range rows {
		if row.SelectedAnswerID == nil {
			if row.QuestionID != 3 || row.CustomAnswer != "free text" {
				t.Errorf("unexpected free-text row %+v", row)
			}
			shortRows++
			continue
		}
		if !wantOptions[row.QuestionID][*row.SelectedAnswerID] {
			t.Errorf("row references option %d on question %d, which the question does not have",
				*row.SelectedAnswerID, row.QuestionID)
		}
	}
	if shortRows != 1 {
		t.Errorf("free-text rows = %d, want 1", shortRows)
	}
	// One row for question 1, two for question 2, one free text.
	if len(rows) != 4 {
		t.Errorf("len(rows) = %d, want 4", len(rows))
	}
}

func TestSubmitPersistsOnlyKnownOptions(t *testing.T) {
	quiz := openQuiz(makeQuestion(1, model.SingleChoice, 12))
	store := &stubResultStore{}
	svc := NewExamService(&stubQuizReader{quiz: quiz}, store, nil)

	got, err := svc.Submit(42, quiz.ID, []Submission{
		{QuestionID: 1, SelectedOptionIDs: []uint{9999}},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if got.Result == nil || got.AlreadyComplete {
		t.Fatalf("Submit() = %+v, want a fresh result", got)
	}
	if got.Result.Score != 0 {
		t.Errorf("Score = %v, want 0 for an unknown option", got.Result.Score)
	}
	if len(store.savedAnswers) != 0 {
		t.Errorf("saved %d answer rows, want none for an unknown option", len(store.savedAnswers))
	}
}

func TestSubmitDuplicateReturnsExistingResult(t *testing.T) {
	quiz := openQuiz(makeQuestion(1, model.SingleChoice, 12))
	existing := &model.Result{
		BaseModel: model.BaseModel{ID: 5},
		StudentID: 42,
		QuizID:    quiz.ID,
		Score:     100,
	}
	store := &stubResultStore{existing: existing, createErr: util.ErrQuizAlreadyTaken}
	svc := NewExamService(&stubQuizReader{quiz: quiz}, store, nil)

	got, err := svc.Submit(42, quiz.ID, []Submission{
		{QuestionID: 1, SelectedOptionIDs: []uint{12}},
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if !got.AlreadyComplete {
		t.Error("AlreadyComplete = false, want true")
	}
	if got.Result != existing {
		t.Errorf("Result = %+v, want the prior attempt", got.Result)
	}
}

func TestTakeRejectsSecondAttempt(t *testing.T) {
	quiz := openQuiz(makeQuestion(1, model.SingleChoice, 12))
	store := &stubResultStore{existing: &model.Result{BaseModel: model.BaseModel{ID: 5}}}
	svc := NewExamService(&stubQuizReader{quiz: quiz}, store, nil)

	if _, err := svc.Take(42, quiz.ID); err != util.ErrQuizAlreadyTaken {
		t.Fatalf("Take() error = %v, want ErrQuizAlreadyTaken", err)
	}
}

func TestSubmitGateErrors(t *testing.T) {
	past := openQuiz(makeQuestion(1, model.SingleChoice, 12))
	past.StartTime = time.Now().Add(-2 * time.Hour)
	past.EndTime = time.Now().Add(-time.Hour)

	private := openQuiz(makeQuestion(1, model.SingleChoice, 12))
	private.IsPublic = false

	tests := []struct {
		name    string
		reader  *stubQuizReader
		wantErr error
	}{
		{"missing quiz", &stubQuizReader{}, util.ErrQuizNotFound},
		{"closed quiz", &stubQuizReader{quiz: past}, util.ErrQuizClosed},
		{"not on allow list", &stubQuizReader{quiz: private}, util.ErrQuizNotAccessible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewExamService(tt.reader, &stubResultStore{}, nil)
			if _, err := svc.Submit(42, 7, nil); err != tt.wantErr {
				t.Fatalf("Submit() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
