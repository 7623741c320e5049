package main

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"referee-scheduler-backend/internal/config"
	"referee-scheduler-backend/internal/database"
	"referee-scheduler-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type RefereeData struct {
	Name                string  `yaml:"name"`
	Email               string  `yaml:"email"`
	LevelWage           float64 `yaml:"level_wage"`
	YearsExperience     int     `yaml:"years_experience"`
	GamesRefereedSeason int     `yaml:"games_refereed_season"`
	EvaluationScore     float64 `yaml:"evaluation_score"`
	MaxDistanceKm       float64 `yaml:"max_distance_km"`
	IsAvailable         bool    `yaml:"is_available"`
	LocationLat         float64 `yaml:"location_lat,omitempty"`
	LocationLng         float64 `yaml:"location_lng,omitempty"`
}

type GameData struct {
	Date           string   `yaml:"date"`
	StartTime      string   `yaml:"start_time"`
	EndTime        string   `yaml:"end_time,omitempty"`
	Location       string   `yaml:"location"`
	Level          string   `yaml:"level"`
	GameType       string   `yaml:"game_type"`
	RefsNeeded     int      `yaml:"refs_needed"`
	WageMultiplier float64  `yaml:"wage_multiplier"`
	LocationLat    float64  `yaml:"location_lat,omitempty"`
	LocationLng    float64  `yaml:"location_lng,omitempty"`
	Positions      []string `yaml:"positions,omitempty"`
}

type WindowData struct {
	RefereeEmail string `yaml:"referee_email"`
	Date         string `yaml:"date"`
	StartTime    string `yaml:"start_time"`
	EndTime      string `yaml:"end_time"`
	IsAvailable  bool   `yaml:"is_available"`
	Reason       string `yaml:"reason,omitempty"`
}

// File structures
type RefereesFile struct {
	Referees []RefereeData `yaml:"referees"`
}

type GamesFile struct {
	Games []GameData `yaml:"games"`
}

type WindowsFile struct {
	Windows []WindowData `yaml:"availability_windows"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	referees, err := loadReferees(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load referees: %w", err)
	}

	games, err := loadGames(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load games: %w", err)
	}

	windows, err := loadWindows(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load availability windows: %w", err)
	}

	// Create referees first, keyed by email for window lookup
	refereeMap := make(map[string]*models.Referee)
	refereeCreated := 0
	for _, refData := range referees {
		ref, created, err := createReferee(db, refData)
		if err != nil {
			return fmt.Errorf("failed to create referee %s: %w", refData.Email, err)
		}
		refereeMap[refData.Email] = ref
		if created {
			refereeCreated++
		}
	}
	log.Printf("📋 Referees: %d created, %d total", refereeCreated, len(referees))

	// Create games with their positions
	gameCreated := 0
	for _, gameData := range games {
		_, created, err := createGame(db, gameData)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create game at %s on %s: %v", gameData.Location, gameData.Date, err)
			continue
		}
		if created {
			gameCreated++
		}
	}
	log.Printf("📋 Games: %d created, %d total", gameCreated, len(games))

	// Create availability windows
	windowCreated := 0
	for _, windowData := range windows {
		created, err := createWindow(db, windowData, refereeMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create availability window for %s: %v", windowData.RefereeEmail, err)
			continue
		}
		if created {
			windowCreated++
		}
	}
	log.Printf("📋 Availability windows: %d created, %d total", windowCreated, len(windows))

	return nil
}

func loadReferees(dataDir string) ([]RefereeData, error) {
	var allReferees []RefereeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "referees") {
			var file RefereesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allReferees = append(allReferees, file.Referees...)
		}
		return nil
	})

	return allReferees, err
}

func loadGames(dataDir string) ([]GameData, error) {
	var allGames []GameData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "games") {
			var file GamesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allGames = append(allGames, file.Games...)
		}
		return nil
	})

	return allGames, err
}

func loadWindows(dataDir string) ([]WindowData, error) {
	var allWindows []WindowData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "availability") {
			var file WindowsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allWindows = append(allWindows, file.Windows...)
		}
		return nil
	})

	return allWindows, err
}

func createReferee(db *gorm.DB, refData RefereeData) (*models.Referee, bool, error) {
	var referee models.Referee
	if err := db.Where("email = ?", refData.Email).First(&referee).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			referee = models.Referee{
				Name:                refData.Name,
				Email:               refData.Email,
				LevelWage:           refData.LevelWage,
				YearsExperience:     refData.YearsExperience,
				GamesRefereedSeason: refData.GamesRefereedSeason,
				EvaluationScore:     refData.EvaluationScore,
				MaxDistanceKm:       refData.MaxDistanceKm,
				IsAvailable:         refData.IsAvailable,
				LocationLat:         refData.LocationLat,
				LocationLng:         refData.LocationLng,
			}
			if referee.MaxDistanceKm == 0 {
				referee.MaxDistanceKm = 50
			}

			if err := db.Create(&referee).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create referee: %w", err)
			}
			return &referee, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query referee: %w", err)
		}
	}

	return &referee, false, nil // created = false (existing)
}

func createGame(db *gorm.DB, gameData GameData) (*models.Game, bool, error) {
	date, err := time.Parse(time.DateOnly, gameData.Date)
	if err != nil {
		return nil, false, fmt.Errorf("invalid date %q: %w", gameData.Date, err)
	}

	var game models.Game
	err = db.Where("date = ? AND start_time = ? AND location = ?", date, gameData.StartTime, gameData.Location).First(&game).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			refsNeeded := gameData.RefsNeeded
			if refsNeeded == 0 {
				refsNeeded = 1
			}
			wageMultiplier := gameData.WageMultiplier
			if wageMultiplier == 0 {
				wageMultiplier = 1
			}

			game = models.Game{
				Date:           date,
				StartTime:      gameData.StartTime,
				EndTime:        gameData.EndTime,
				Location:       gameData.Location,
				Level:          models.GameLevel(gameData.Level),
				GameType:       models.GameType(gameData.GameType),
				RefsNeeded:     refsNeeded,
				WageMultiplier: wageMultiplier,
				Status:         models.GameStatusUnassigned,
				LocationLat:    gameData.LocationLat,
				LocationLng:    gameData.LocationLng,
			}

			err := db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&game).Error; err != nil {
					return err
				}
				for i := 0; i < refsNeeded; i++ {
					name := fmt.Sprintf("Referee %d", i+1)
					if i < len(gameData.Positions) {
						name = gameData.Positions[i]
					}
					position := models.Position{
						GameID: game.ID,
						Name:   name,
					}
					if err := tx.Create(&position).Error; err != nil {
						return err
					}
				}
				return nil
			})
			if err != nil {
				return nil, false, fmt.Errorf("failed to create game: %w", err)
			}

			return &game, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query game: %w", err)
		}
	}

	return &game, false, nil // created = false (existing)
}

func createWindow(db *gorm.DB, windowData WindowData, refereeMap map[string]*models.Referee) (bool, error) {
	referee := refereeMap[windowData.RefereeEmail]
	if referee == nil {
		// Referee may already exist from a previous run
		var existing models.Referee
		if err := db.Where("email = ?", windowData.RefereeEmail).First(&existing).Error; err != nil {
			return false, fmt.Errorf("referee %s not found", windowData.RefereeEmail)
		}
		referee = &existing
	}

	date, err := time.Parse(time.DateOnly, windowData.Date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q: %w", windowData.Date, err)
	}

	var window models.AvailabilityWindow
	err = db.Where("referee_id = ? AND date = ? AND start_time = ?", referee.ID, date, windowData.StartTime).First(&window).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			window = models.AvailabilityWindow{
				RefereeID:   referee.ID,
				Date:        date,
				StartTime:   windowData.StartTime,
				EndTime:     windowData.EndTime,
				IsAvailable: windowData.IsAvailable,
				Reason:      windowData.Reason,
			}

			if err := db.Create(&window).Error; err != nil {
				return false, fmt.Errorf("failed to create availability window: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query availability window: %w", err)
	}

	return false, nil // created = false (existing)
}
