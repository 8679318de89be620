package database

import (
	"fmt"
	"log"

	config "github.com/propsetu/realestate_guru/configs"
	"github.com/propsetu/realestate_guru/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:                              false,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
		TranslateError:                           true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Module{},
		&models.Question{},
		&models.QuizSession{},
		&models.UserProgress{},
		&models.UserAchievement{},
		&models.ResearchNote{},
		&models.Certificate{},
		&models.ChatMessage{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminUsername := config.Config("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}
	adminPassword := config.Config("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}
	adminEmail := config.Config("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@realestateguruapp.com"
	}

	var count int64
	err := DB.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		Username:   adminUsername,
		Email:      adminEmail,
		Password:   string(hashedPassword),
		Role:       "admin",
		Points:     1000,
		Badges:     datatypes.JSON(`["Admin Master", "System Creator"]`),
		StreakDays: 1,
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

// SeedContent inserts the default learning modules and quiz questions when
// the tables are empty.
func SeedContent() {
	var moduleCount int64
	if err := DB.Model(&models.Module{}).Count(&moduleCount).Error; err != nil {
		log.Fatalf("🔥 Failed to check for seed modules: %v", err)
		return
	}

	if moduleCount == 0 {
		sampleVideo := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
		defaultModules := []models.Module{
			{
				Title:         "Real Estate Fundamentals",
				Description:   "Introduction to real estate basics, stakeholders, and market overview",
				Difficulty:    "Beginner",
				Category:      "Fundamentals",
				Content:       "Complete introduction to real estate industry in India...",
				YouTubeURL:    &sampleVideo,
				VideoDuration: "PT3M33S",
				OrderIndex:    1,
			},
			{
				Title:         "Legal Framework & RERA",
				Description:   "Comprehensive guide to RERA, legal compliance, and regulatory framework",
				Difficulty:    "Intermediate",
				Category:      "Legal Framework",
				Content:       "Understanding RERA Act 2016 and its implications...",
				YouTubeURL:    &sampleVideo,
				VideoDuration: "PT3M33S",
				OrderIndex:    2,
			},
			{
				Title:       "Property Measurements & Standards",
				Description: "Carpet area vs built-up area, BIS standards, and floor plan reading",
				Difficulty:  "Beginner",
				Category:    "Measurements",
				Content:     "Learn about different property measurement standards...",
				OrderIndex:  3,
			},
			{
				Title:       "Valuation & Finance",
				Description: "Property valuation methods, home loans, and taxation",
				Difficulty:  "Intermediate",
				Category:    "Finance",
				Content:     "Master property valuation techniques and financing options...",
				OrderIndex:  4,
			},
			{
				Title:       "Land & Development Laws",
				Description: "GDCR, municipal bylaws, FSI/TDR calculations, and zoning",
				Difficulty:  "Advanced",
				Category:    "Legal Framework",
				Content:     "Deep dive into land development regulations...",
				OrderIndex:  5,
			},
		}

		if err := DB.Create(&defaultModules).Error; err != nil {
			log.Fatalf("🔥 Failed to seed modules: %v", err)
			return
		}
		log.Println("✅ Default modules seeded successfully")
	}

	var questionCount int64
	if err := DB.Model(&models.Question{}).Count(&questionCount).Error; err != nil {
		log.Fatalf("🔥 Failed to check for seed questions: %v", err)
		return
	}

	if questionCount == 0 {
		var fundamentals, legal models.Module
		if err := DB.Where("order_index = ?", 1).First(&fundamentals).Error; err != nil {
			log.Printf("⚠️ Skipping question seed, fundamentals module missing: %v", err)
			return
		}
		if err := DB.Where("order_index = ?", 2).First(&legal).Error; err != nil {
			log.Printf("⚠️ Skipping question seed, legal module missing: %v", err)
			return
		}

		defaultQuestions := []models.Question{
			{
				ModuleID:      fundamentals.ID,
				QuestionText:  "What is the primary focus of real estate?",
				OptionA:       "Land only",
				OptionB:       "Land and structures",
				OptionC:       "Buildings only",
				OptionD:       "Financial aspects",
				CorrectAnswer: "B",
				Explanation:   "Real estate includes land and permanent structures",
			},
			{
				ModuleID:      fundamentals.ID,
				QuestionText:  "Which year was RERA enacted?",
				OptionA:       "2015",
				OptionB:       "2016",
				OptionC:       "2017",
				OptionD:       "2018",
				CorrectAnswer: "B",
				Explanation:   "RERA was enacted in 2016",
			},
			{
				ModuleID:      legal.ID,
				QuestionText:  "What does RERA stand for?",
				OptionA:       "Real Estate Regulation Act",
				OptionB:       "Real Estate Regulatory Authority",
				OptionC:       "Real Estate Registration Act",
				OptionD:       "Real Estate Rights Act",
				CorrectAnswer: "A",
				Explanation:   "Real Estate Regulation Act",
			},
			{
				ModuleID:      legal.ID,
				QuestionText:  "What percentage must developers deposit in escrow?",
				OptionA:       "50%",
				OptionB:       "60%",
				OptionC:       "70%",
				OptionD:       "80%",
				CorrectAnswer: "C",
				Explanation:   "70% must be deposited",
			},
		}

		if err := DB.Create(&defaultQuestions).Error; err != nil {
			log.Fatalf("🔥 Failed to seed questions: %v", err)
			return
		}
		log.Println("✅ Default quiz questions seeded successfully")
	}
}
