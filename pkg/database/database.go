package database

import (
	"fmt"
	"log"

	"quizhub_backend/internal/config"
	"quizhub_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL connection and, when migrate is set, runs the schema
// migration and seeds the default subjects. TranslateError is on so duplicate
// key violations surface as gorm.ErrDuplicatedKey.
func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !migrate {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Question{},
		&model.Answer{},
		&model.Quiz{},
		&model.Result{},
		&model.StudentAnswer{},
		&model.PracticeResult{},
		&model.SupportTicket{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed a few subjects so a fresh install has something to attach questions to.
	var count int64
	db.Model(&model.Subject{}).Count(&count)
	if count == 0 {
		defaultSubjects := []string{"Mathematics", "Physics", "Chemistry", "Biology", "English", "History"}
		for _, name := range defaultSubjects {
			db.Create(&model.Subject{Name: name})
		}
	}

	return db, nil
}
