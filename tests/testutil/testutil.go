package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ali694519/order/config"
	"github.com/ali694519/order/models"
)

// RequireTestEnvironment fails the test unless GO_ENV is "test". Integration
// suites touch the globally configured database, so this guard keeps them
// away from a development or production configuration.
func RequireTestEnvironment(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Fatalf("tests must run with GO_ENV=test, got GO_ENV=%q", env)
	}
}

// RequireTestEnvironmentOrSkip skips the test instead of failing it when
// GO_ENV is not "test"
func RequireTestEnvironmentOrSkip(t *testing.T) {
	t.Helper()

	if env := os.Getenv("GO_ENV"); env != "test" {
		t.Skipf("skipping: GO_ENV must be 'test' (current: %q)", env)
	}
}

// SetupDatabase opens an in-memory database, migrates the full schema and
// installs it as the global connection
func SetupDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Catalog{},
		&models.Color{},
		&models.Order{},
		&models.Item{},
		&models.Payment{},
	), "failed to migrate test database")

	config.SetDB(db)
	return db
}

// SetupConfig installs a test configuration and returns it
func SetupConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		GoEnv:         "test",
		JWTSecret:     "integration-test-secret",
		JWTTTLMinutes: 60,
	}
	config.SetConfig(cfg)
	return cfg
}
