// Seeds a demo teacher, two students, a question bank and one open quiz.
//
// Intended for a fresh local database only; running it twice will fail on the
// unique email constraint.
//
// Usage: go run scripts/seed_demo.go
package main

import (
	"log"
	"os"
	"time"

	"quizhub_backend/internal/config"
	"quizhub_backend/internal/model"
	"quizhub_backend/pkg/database"
	"quizhub_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("cannot read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, true)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash failed: %v", err)
		}
		return string(h)
	}

	teacher := model.User{Name: "Demo Teacher", Email: "teacher@example.com", Password: hash("teacher123"), Role: model.Teacher}
	alice := model.User{Name: "Alice", Email: "alice@example.com", Password: hash("student123"), Role: model.Student, ClassName: "10A"}
	bob := model.User{Name: "Bob", Email: "bob@example.com", Password: hash("student123"), Role: model.Student, ClassName: "10A"}
	for _, u := range []*model.User{&teacher, &alice, &bob} {
		if err := db.Create(u).Error; err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
	}

	var math model.Subject
	if err := db.Where("name = ?", "Mathematics").First(&math).Error; err != nil {
		log.Fatalf("subjects not seeded: %v", err)
	}

	questions := []model.Question{
		{
			SubjectID: math.ID, CreatedByID: teacher.ID,
			Text: "What is 7 x 8?", Type: model.SingleChoice, Difficulty: model.Easy,
			Answers: []model.Answer{
				{Text: "54"}, {Text: "56", IsCorrect: true}, {Text: "58"}, {Text: "64"},
			},
		},
		{
			SubjectID: math.ID, CreatedByID: teacher.ID,
			Text: "Which of these are prime numbers?", Type: model.MultipleChoice, Difficulty: model.Medium,
			Answers: []model.Answer{
				{Text: "2", IsCorrect: true}, {Text: "9"}, {Text: "13", IsCorrect: true}, {Text: "21"},
			},
		},
		{
			SubjectID: math.ID, CreatedByID: teacher.ID,
			Text: "The square root of 2 is rational.", Type: model.TrueFalse, Difficulty: model.Medium,
			Answers: []model.Answer{
				{Text: model.TrueOptionText}, {Text: model.FalseOptionText, IsCorrect: true},
			},
		},
		{
			SubjectID: math.ID, CreatedByID: teacher.ID,
			Text: "Explain why the sum of two even numbers is even.", Type: model.ShortAnswer, Difficulty: model.Hard,
			CorrectAnswerText: "2a + 2b = 2(a + b), which is divisible by 2.",
		},
	}
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			log.Fatalf("seed question: %v", err)
		}
	}

	quiz := model.Quiz{
		Title:           "Arithmetic warm-up",
		SubjectID:       math.ID,
		CreatedByID:     teacher.ID,
		DurationMinutes: 15,
		StartTime:       time.Now(),
		EndTime:         time.Now().Add(30 * 24 * time.Hour),
		IsPublic:        true,
	}
	if err := db.Create(&quiz).Error; err != nil {
		log.Fatalf("seed quiz: %v", err)
	}
	if err := db.Model(&quiz).Association("Questions").Replace(questions); err != nil {
		log.Fatalf("attach questions: %v", err)
	}

	log.Printf("done: quiz %q with access code %s", quiz.Title, quiz.AccessCode)
}
