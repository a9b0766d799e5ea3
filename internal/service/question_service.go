package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"

	"quizhub_backend/internal/model"
	"quizhub_backend/internal/repository"
	"quizhub_backend/internal/util"
	"quizhub_backend/pkg/logger"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type QuestionService struct {
	questionRepo *repository.QuestionRepository
	subjectRepo  *repository.SubjectRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, subjectRepo *repository.SubjectRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo, subjectRepo: subjectRepo}
}

type OptionInput struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

type QuestionInput struct {
	SubjectID  uint               `json:"subjectId" binding:"required"`
	Text       string             `json:"text" binding:"required"`
	Type       model.QuestionType `json:"type" binding:"required,oneof=SINGLE_CHOICE MULTIPLE_CHOICE TRUE_FALSE SHORT_ANSWER"`
	Difficulty model.Difficulty   `json:"difficulty" binding:"required,oneof=EASY MEDIUM HARD"`
	Options    []OptionInput      `json:"options"`
	// For TRUE_FALSE: whether "True" is the correct option.
	TrueIsCorrect     *bool  `json:"trueIsCorrect"`
	CorrectAnswerText string `json:"correctAnswerText"`
	Explanation       string `json:"explanation"`
}

// buildAnswers turns the validated input into option rows for the question
// type. TRUE_FALSE always gets the two fixed options; SHORT_ANSWER gets none.
func buildAnswers(input QuestionInput) ([]model.Answer, error) {
	switch input.Type {
	case model.TrueFalse:
		if input.TrueIsCorrect == nil {
			return nil, util.ErrNoCorrectOption
		}
		return []model.Answer{
			{Text: model.TrueOptionText, IsCorrect: *input.TrueIsCorrect},
			{Text: model.FalseOptionText, IsCorrect: !*input.TrueIsCorrect},
		}, nil
	case model.ShortAnswer:
		if strings.TrimSpace(input.CorrectAnswerText) == "" {
			return nil, util.ErrShortAnswerRequired
		}
		// Non-nil so an update replaces (clears) any options left over from
		// a previous choice type.
		return []model.Answer{}, nil
	case model.SingleChoice, model.MultipleChoice:
		if len(input.Options) < 2 {
			return nil, fmt.Errorf("choice questions need at least two options")
		}
		correct := 0
		answers := make([]model.Answer, 0, len(input.Options))
		for _, opt := range input.Options {
			if opt.IsCorrect {
				correct++
			}
			answers = append(answers, model.Answer{Text: opt.Text, IsCorrect: opt.IsCorrect})
		}
		if correct == 0 {
			return nil, util.ErrNoCorrectOption
		}
		if input.Type == model.SingleChoice && correct != 1 {
			return nil, fmt.Errorf("single choice questions need exactly one correct option")
		}
		return answers, nil
	}
	return nil, fmt.Errorf("unknown question type %q", input.Type)
}

func (s *QuestionService) Create(creatorID uint, input QuestionInput) (*model.Question, error) {
	answers, err := buildAnswers(input)
	if err != nil {
		return nil, err
	}
	if _, err := s.subjectRepo.FindByID(input.SubjectID); err != nil {
		return nil, err
	}

	question := &model.Question{
		SubjectID:   input.SubjectID,
		Text:        input.Text,
		Type:        input.Type,
		Difficulty:  input.Difficulty,
		Explanation: input.Explanation,
		CreatedByID: creatorID,
		Answers:     answers,
	}
	if input.Type == model.ShortAnswer {
		question.CorrectAnswerText = input.CorrectAnswerText
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *QuestionService) Update(id, creatorID uint, input QuestionInput) (*model.Question, error) {
	question, err := s.questionRepo.FindByIDAndCreator(id, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPermissionDenied
		}
		return nil, err
	}
	answers, err := buildAnswers(input)
	if err != nil {
		return nil, err
	}

	question.SubjectID = input.SubjectID
	question.Text = input.Text
	question.Type = input.Type
	question.Difficulty = input.Difficulty
	question.Explanation = input.Explanation
	question.CorrectAnswerText = ""
	if input.Type == model.ShortAnswer {
		question.CorrectAnswerText = input.CorrectAnswerText
	}
	if err := s.questionRepo.Update(question, answers); err != nil {
		return nil, err
	}
	return s.questionRepo.FindByID(question.ID)
}

// Delete removes a question from the bank. Questions referenced by a quiz are
// protected; the quiz has to drop them first.
func (s *QuestionService) Delete(id, creatorID uint) error {
	if _, err := s.questionRepo.FindByIDAndCreator(id, creatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrPermissionDenied
		}
		return err
	}
	used, err := s.questionRepo.QuizUsageCount(id)
	if err != nil {
		return err
	}
	if used > 0 {
		return util.ErrQuestionInUse
	}
	return s.questionRepo.Delete(id)
}

func (s *QuestionService) Get(id, creatorID uint) (*model.Question, error) {
	question, err := s.questionRepo.FindByIDAndCreator(id, creatorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPermissionDenied
	}
	return question, err
}

func (s *QuestionService) List(f repository.QuestionFilter, page, limit int) ([]model.Question, int64, error) {
	return s.questionRepo.List(f, page, limit)
}

func (s *QuestionService) CountByType(f repository.QuestionFilter) (*repository.QuestionTypeCounts, error) {
	return s.questionRepo.CountByType(f)
}

// ImportRow is one parsed spreadsheet row before it becomes a question.
type ImportRow struct {
	Subject    string
	Text       string
	Difficulty model.Difficulty
	Options    []string
	// 1-based index into Options.
	CorrectIndex int
}

// ImportReport summarizes a spreadsheet import.
type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// ParseImportRow validates one spreadsheet row. Expected columns:
// subject, question text, difficulty, option 1..4, correct option number.
// Empty trailing option cells are allowed; at least two options are required.
func ParseImportRow(cells []string) (*ImportRow, error) {
	for len(cells) < 8 {
		cells = append(cells, "")
	}
	row := &ImportRow{
		Subject: strings.TrimSpace(cells[0]),
		Text:    strings.TrimSpace(cells[1]),
	}
	if row.Subject == "" || row.Text == "" {
		return nil, fmt.Errorf("subject and question text are required")
	}

	switch d := model.Difficulty(strings.ToUpper(strings.TrimSpace(cells[2]))); d {
	case model.Easy, model.Medium, model.Hard:
		row.Difficulty = d
	default:
		return nil, fmt.Errorf("unknown difficulty %q", cells[2])
	}

	for _, cell := range cells[3:7] {
		if text := strings.TrimSpace(cell); text != "" {
			row.Options = append(row.Options, text)
		}
	}
	if len(row.Options) < 2 {
		return nil, fmt.Errorf("at least two options are required")
	}

	idx, err := strconv.Atoi(strings.TrimSpace(cells[7]))
	if err != nil || idx < 1 || idx > len(row.Options) {
		return nil, fmt.Errorf("correct option number must be between 1 and %d", len(row.Options))
	}
	row.CorrectIndex = idx
	return row, nil
}

// ImportFromExcel reads an .xlsx file and creates a SINGLE_CHOICE question per
// valid row. Invalid rows are skipped and reported, never fatal; the header
// row is ignored.
func (s *QuestionService) ImportFromExcel(creatorID uint, file *multipart.FileHeader) (*ImportReport, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	wb, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("not a valid spreadsheet: %w", err)
	}
	defer wb.Close()

	sheet := wb.GetSheetName(0)
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{}
	for i, cells := range rows {
		if i == 0 {
			continue
		}
		row, err := ParseImportRow(cells)
		if err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if err := s.createFromRow(creatorID, row); err != nil {
			report.Skipped++
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		report.Imported++
	}

	logger.Log.Info("question import finished",
		zap.Uint("creator_id", creatorID),
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped))
	return report, nil
}

func (s *QuestionService) createFromRow(creatorID uint, row *ImportRow) error {
	subject, err := s.subjectRepo.GetOrCreate(row.Subject)
	if err != nil {
		return err
	}
	question := &model.Question{
		SubjectID:   subject.ID,
		Text:        row.Text,
		Type:        model.SingleChoice,
		Difficulty:  row.Difficulty,
		CreatedByID: creatorID,
	}
	for i, text := range row.Options {
		question.Answers = append(question.Answers, model.Answer{
			Text:      text,
			IsCorrect: i+1 == row.CorrectIndex,
		})
	}
	return s.questionRepo.Create(question)
}
