package testutils

import (
	"testing"

	"referee-scheduler-backend/internal/config"
	"referee-scheduler-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BaseTestSuite carries a per-suite in-memory database. Each suite gets its
// own connection so parallel suites never share state.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite opens an in-memory SQLite database with the full schema
// migrated. Call this in SetupSuite of your tests before using the DB.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	// A named in-memory database with a shared cache: GORM's pooled
	// connections all see the same data, while a fresh name per suite keeps
	// suites isolated from each other.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(database.AllModels()...); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}
	// same partial unique indexes production runs with, so slot races are
	// decided the same way here
	if err := database.CreatePartialIndexes(db); err != nil {
		t.Fatalf("failed to create unique indexes: %v", err)
	}

	return &BaseTestSuite{
		DB: db,
		Config: &config.Config{
			Environment:         "test",
			Port:                "8080",
			LogLevel:            "debug",
			SuggestionTTLMin:    60,
			ChunkMaxGapMin:      60,
			ChunkMinGames:       2,
			PatternMinFrequency: 2,
		},
	}
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// CleanTestDB deletes all rows in dependency order. Safe even if schema changes.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := []string{
		"rule_runs",
		"partner_preferences",
		"assignment_rules",
		"historic_patterns",
		"ai_suggestions",
		"assignments",
		"availability_windows",
		"positions",
		"games",
		"chunks",
		"referees",
	}
	m := s.DB.Migrator()
	for _, t := range tables {
		if m.HasTable(t) {
			s.DB.Exec(`DELETE FROM "` + t + `"`)
		}
	}
}
