// Package config loads application settings from a .env file and environment variables.
// Environment variables always take precedence over .env file values.
package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/padraicbc/umaplan/schedule"
)

// Config holds the API server configuration.
type Config struct {
	// PostgreSQL – either set DatabaseURL directly, or the individual fields.
	DatabaseURL string
	DBUser      string
	DBPass      string
	DBHost      string
	DBPort      string
	DBName      string
	DBSSLMode   string

	// JWT signing secret (required in production).
	JWTSecret string

	// Server
	Debug      bool
	Port       string
	TLSDomains []string

	Planner PlannerConfig
}

// PlannerConfig holds the settings the offline planner and the import
// command need, none of which require a database.
type PlannerConfig struct {
	// TargetFans is the fan count to reach before the URA Finale.
	TargetFans int
	// MinRating is the worst aptitude letter a scheduled race may need.
	MinRating string

	RacesFile      string
	CharactersFile string

	Debug bool
}

// Load reads configuration from a .env file (if present) and then from
// environment variables. Environment variables always win.
func Load() *Config {
	v := newViper()

	// Defaults
	v.SetDefault("DB_USER", "umaplan")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "umaplan")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("PORT", ":9000")
	v.SetDefault("TLS_DOMAINS", "")
	v.SetDefault("DEBUG", false)

	cfg := &Config{
		DatabaseURL: v.GetString("DATABASE_URL"),
		DBUser:      v.GetString("DB_USER"),
		DBPass:      v.GetString("DB_PASS"),
		DBHost:      v.GetString("DB_HOST"),
		DBPort:      v.GetString("DB_PORT"),
		DBName:      v.GetString("DB_NAME"),
		DBSSLMode:   v.GetString("DB_SSLMODE"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		Debug:       v.GetBool("DEBUG"),
		Port:        v.GetString("PORT"),
		TLSDomains:  splitTrimmed(v.GetString("TLS_DOMAINS")),
		Planner:     plannerFrom(v),
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	return cfg
}

// LoadPlanner reads only the planner settings.
func LoadPlanner() (*PlannerConfig, error) {
	cfg := plannerFrom(newViper())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func plannerFrom(v *viper.Viper) PlannerConfig {
	v.SetDefault("TARGET_FANS", schedule.DefaultTargetFans)
	v.SetDefault("MIN_RATING", string(schedule.DefaultMinRating))
	v.SetDefault("RACES_FILE", "data/races.json")
	v.SetDefault("CHARACTERS_FILE", "data/characters.json")
	v.SetDefault("DEBUG", false)

	return PlannerConfig{
		TargetFans:     v.GetInt("TARGET_FANS"),
		MinRating:      strings.ToUpper(strings.TrimSpace(v.GetString("MIN_RATING"))),
		RacesFile:      v.GetString("RACES_FILE"),
		CharactersFile: v.GetString("CHARACTERS_FILE"),
		Debug:          v.GetBool("DEBUG"),
	}
}

// PostgresDSN returns the full PostgreSQL connection string.
// DATABASE_URL takes precedence over individual fields.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPass,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// JWTKey returns the JWT signing key as a byte slice.
func (c *Config) JWTKey() []byte {
	return []byte(c.JWTSecret)
}

// Validate reports the first missing or malformed setting.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" && c.DBPass == "" {
		return fmt.Errorf("config: DATABASE_URL or DB_PASS must be set")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET must be set")
	}
	if !c.Debug && len(c.TLSDomains) == 0 {
		return fmt.Errorf("config: TLS_DOMAINS must be set unless DEBUG is on")
	}
	return c.Planner.Validate()
}

// Schedule returns the scheduler settings.
func (c *PlannerConfig) Schedule() schedule.Config {
	return schedule.Config{
		TargetFans: c.TargetFans,
		MinRating:  schedule.Rating(c.MinRating),
	}
}

// Validate checks the scheduler settings.
func (c *PlannerConfig) Validate() error {
	if err := c.Schedule().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func newViper() *viper.Viper {
	// Silently load .env – OK if the file doesn't exist (production uses real env vars).
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file found, using environment variables only")
	}

	v := viper.New()
	v.AutomaticEnv()
	return v
}

func splitTrimmed(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
